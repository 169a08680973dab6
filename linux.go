package osinfo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/jeanhaley32/osinfo/internal/constants"
)

var errNotUTF8 = errors.New("content is not valid UTF-8")

// linuxProvider reads the distribution name and version from an os-release file.
type linuxProvider struct {
	path string
	log  logrus.FieldLogger
}

func (l *linuxProvider) SystemInfo() Info {
	info := Info{Kind: Linux}

	data, err := readOSRelease(l.path)
	if err != nil {
		l.log.WithFields(logrus.Fields{"kind": Linux, "source": l.path}).
			Debugf("os-release unavailable: %v", err)
		return info
	}

	info.Name, info.Version = parseOSRelease(data)
	return info
}

func readOSRelease(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("failed to read %s: %w", path, errNotUTF8)
	}
	return string(b), nil
}

// parseOSRelease extracts NAME and VERSION_ID. Every double quote is removed
// from a value, so escaped quotes inside values are not preserved.
func parseOSRelease(data string) (name, version *string) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if v, ok := strings.CutPrefix(line, constants.OSReleaseNameKey); ok {
			name = stringPtr(strings.ReplaceAll(v, `"`, ""))
		} else if v, ok := strings.CutPrefix(line, constants.OSReleaseVersionKey); ok {
			version = stringPtr(strings.ReplaceAll(v, `"`, ""))
		}
	}
	return name, version
}
