package osinfo

import (
	"fmt"
	"runtime"
)

// Kind represents a supported operating system family.
type Kind string

const (
	Linux   Kind = "linux"
	Macos   Kind = "macos"
	Windows Kind = "windows"
)

// CurrentKind returns the Kind of the host operating system.
// ok is false when the host is not one of the supported kinds.
func CurrentKind() (kind Kind, ok bool) {
	return kindFromGOOS(runtime.GOOS)
}

func kindFromGOOS(goos string) (Kind, bool) {
	switch goos {
	case "linux":
		return Linux, true
	case "darwin":
		return Macos, true
	case "windows":
		return Windows, true
	default:
		return "", false
	}
}

// IsSupported returns true if the host operating system is supported.
func IsSupported() bool {
	_, ok := CurrentKind()
	return ok
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case Linux, Macos, Windows:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown kinds.
func (k *Kind) UnmarshalText(text []byte) error {
	v := Kind(text)
	if !v.Valid() {
		return fmt.Errorf("unknown os kind %q", text)
	}
	*k = v
	return nil
}
