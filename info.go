package osinfo

import "strings"

// Info describes the running operating system. Name and Version are nil
// when they could not be determined.
type Info struct {
	Kind    Kind    `json:"kind" yaml:"kind" toml:"kind"`
	Name    *string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Version *string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
}

// NameOr returns the name, or def when it is absent.
func (i Info) NameOr(def string) string {
	if i.Name == nil {
		return def
	}
	return *i.Name
}

// VersionOr returns the version, or def when it is absent.
func (i Info) VersionOr(def string) string {
	if i.Version == nil {
		return def
	}
	return *i.Version
}

// String returns a one-line summary such as "Ubuntu 22.04 (linux)".
func (i Info) String() string {
	parts := make([]string, 0, 3)
	if i.Name != nil && *i.Name != "" {
		parts = append(parts, *i.Name)
	}
	if i.Version != nil && *i.Version != "" {
		parts = append(parts, *i.Version)
	}
	if len(parts) == 0 {
		return "unknown (" + string(i.Kind) + ")"
	}
	return strings.Join(parts, " ") + " (" + string(i.Kind) + ")"
}

func stringPtr(s string) *string {
	return &s
}
