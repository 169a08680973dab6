package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanhaley32/osinfo"
)

func sampleInfos() map[string]osinfo.Info {
	return map[string]osinfo.Info{
		"full":    {Kind: osinfo.Linux, Name: stringPtr("Foo Linux"), Version: stringPtr("9.1")},
		"no name": {Kind: osinfo.Macos, Version: stringPtr("26.0")},
		"empty":   {Kind: osinfo.Windows},
		"numeric": {Kind: osinfo.Windows, Name: stringPtr("Windows 11 Pro"), Version: stringPtr("11")},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, f := range []Format{JSON, YAML, TOML} {
		for name, info := range sampleInfos() {
			t.Run(string(f)+"/"+name, func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, Encode(&buf, info, f, Options{}))

				got, err := Decode(&buf, f)
				require.NoError(t, err)
				assert.Equal(t, info, got)
			})
		}
	}
}

func TestEncode_JSONKeys(t *testing.T) {
	var buf bytes.Buffer
	info := osinfo.Info{Kind: osinfo.Linux, Name: stringPtr("Foo Linux")}
	require.NoError(t, Encode(&buf, info, JSON, Options{}))
	assert.JSONEq(t, `{"kind":"linux","name":"Foo Linux"}`, buf.String())
}

func TestEncode_Text(t *testing.T) {
	var buf bytes.Buffer
	info := osinfo.Info{Kind: osinfo.Linux, Name: stringPtr("Foo Linux"), Version: stringPtr("9.1")}
	require.NoError(t, Encode(&buf, info, Text, Options{}))
	assert.Equal(t, "Kind:    linux\nName:    Foo Linux\nVersion: 9.1\n", buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, osinfo.Info{Kind: osinfo.Macos}, Text, Options{}))
	assert.Equal(t, "Kind:    macos\nName:    unknown\nVersion: unknown\n", buf.String())
}

func TestEncode_TextStyled(t *testing.T) {
	var buf bytes.Buffer
	info := osinfo.Info{Kind: osinfo.Windows, Name: stringPtr("Windows 10 Home")}
	require.NoError(t, Encode(&buf, info, Text, Options{Styled: true}))

	out := buf.String()
	assert.Contains(t, out, "Windows 10 Home")
	assert.Contains(t, out, "windows")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		f     Format
	}{
		{"unknown kind", `{"kind":"darwin"}`, JSON},
		{"missing kind", `{"name":"Foo"}`, JSON},
		{"malformed json", `{"kind":`, JSON},
		{"unknown kind yaml", "kind: bsd\n", YAML},
		{"unknown kind toml", "kind = \"bsd\"\n", TOML},
		{"text", "Kind: linux\n", Text},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.f)
			assert.Error(t, err)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
