// Package render encodes and decodes osinfo.Info for the command line.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/jeanhaley32/osinfo"
)

// Format names an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists every supported format.
var Formats = []Format{Text, JSON, YAML, TOML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of text, json, yaml, toml)", s)
}

// absent is shown in text output for fields that could not be determined.
const absent = "unknown"

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	absentStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Options controls text rendering.
type Options struct {
	// Styled enables terminal colors in text output.
	Styled bool
}

// Encode writes info to w in the given format.
func Encode(w io.Writer, info osinfo.Info, f Format, opts Options) error {
	switch f {
	case Text:
		return encodeText(w, info, opts)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(info)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func encodeText(w io.Writer, info osinfo.Info, opts Options) error {
	rows := []struct {
		label string
		value *string
	}{
		{"Kind", stringPtr(info.Kind.String())},
		{"Name", info.Name},
		{"Version", info.Version},
	}
	for _, r := range rows {
		label := fmt.Sprintf("%-8s", r.label+":")
		value := absent
		if r.value != nil {
			value = *r.value
		}
		if opts.Styled {
			label = labelStyle.Render(label)
			if r.value == nil {
				value = absentStyle.Render(value)
			}
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", label, value); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a record previously written by Encode. Text output is not decodable.
func Decode(r io.Reader, f Format) (osinfo.Info, error) {
	var info osinfo.Info

	data, err := io.ReadAll(r)
	if err != nil {
		return info, fmt.Errorf("failed to read input: %w", err)
	}

	switch f {
	case JSON:
		err = json.Unmarshal(data, &info)
	case YAML:
		err = yaml.Unmarshal(data, &info)
	case TOML:
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&info)
	default:
		return info, fmt.Errorf("format %q cannot be decoded", f)
	}
	if err != nil {
		return info, fmt.Errorf("failed to decode %s: %w", f, err)
	}
	if !info.Kind.Valid() {
		return info, fmt.Errorf("failed to decode %s: missing kind", f)
	}
	return info, nil
}

func stringPtr(s string) *string {
	return &s
}
