package osinfo

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

var (
	errNoTerminator = errors.New("missing NUL terminator")
	errInteriorNUL  = errors.New("interior NUL byte")
)

// decodeCString interprets b as a single NUL-terminated UTF-8 string.
func decodeCString(b []byte) (string, error) {
	i := bytes.IndexByte(b, 0)
	switch {
	case i < 0:
		return "", errNoTerminator
	case i != len(b)-1:
		return "", errInteriorNUL
	}
	s := b[:i]
	if !utf8.Valid(s) {
		return "", errNotUTF8
	}
	return string(s), nil
}
