package osinfo

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWindows11(t *testing.T) {
	tests := []struct {
		major, build uint32
		want         bool
	}{
		{6, 9600, false},
		{10, 19045, false},
		{10, 21999, false},
		{10, 22000, true},
		{10, 22631, true},
		{11, 0, true},
		{12, 100, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isWindows11(tt.major, tt.build), "isWindows11(%d, %d)", tt.major, tt.build)
	}
}

func TestWindowsName(t *testing.T) {
	tests := []struct {
		product string
		win11   bool
		want    string
	}{
		{"Windows 10 Pro", true, "Windows 11 Pro"},
		{"Windows 10 Home", false, "Windows 10 Home"},
		{"Windows 10", true, "Windows 11"},
		{"Windows 11 Enterprise", true, "Windows 11 Enterprise"},
		{"Windows Server 2022 Datacenter", true, "Windows Server 2022 Datacenter"},
		{"Windows 8.1 Pro", false, "Windows 8.1 Pro"},
		{"Windows 1", true, "Windows 1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, windowsName(tt.product, tt.win11), "windowsName(%q, %v)", tt.product, tt.win11)
	}
}

func fakeWindows(major, build uint32, product string, err error) *windowsProvider {
	logger, _ := logtest.NewNullLogger()
	return &windowsProvider{
		version:     func() (uint32, uint32) { return major, build },
		productName: func() (string, error) { return product, err },
		log:         logger,
	}
}

func TestWindowsProvider_SystemInfo(t *testing.T) {
	tests := []struct {
		name         string
		major, build uint32
		product      string
		want         Info
	}{
		{
			name: "windows 10", major: 10, build: 19045, product: "Windows 10 Home",
			want: Info{Kind: Windows, Name: stringPtr("Windows 10 Home"), Version: stringPtr("10")},
		},
		{
			name: "windows 11 stale name", major: 10, build: 22631, product: "Windows 10 Pro",
			want: Info{Kind: Windows, Name: stringPtr("Windows 11 Pro"), Version: stringPtr("11")},
		},
		{
			name: "major 11", major: 11, build: 1, product: "Windows 11 Home",
			want: Info{Kind: Windows, Name: stringPtr("Windows 11 Home"), Version: stringPtr("11")},
		},
		{
			name: "unprefixed name untouched", major: 10, build: 22631, product: "Microsoft Windows 10 Pro",
			want: Info{Kind: Windows, Name: stringPtr("Microsoft Windows 10 Pro"), Version: stringPtr("11")},
		},
		{
			name: "windows 8.1", major: 6, build: 9600, product: "Windows 8.1 Pro",
			want: Info{Kind: Windows, Name: stringPtr("Windows 8.1 Pro"), Version: stringPtr("6")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fakeWindows(tt.major, tt.build, tt.product, nil)
			assert.Equal(t, tt.want, p.SystemInfo())
		})
	}
}

func TestWindowsProvider_SystemInfo_RegistryUnavailable(t *testing.T) {
	p := fakeWindows(10, 22631, "", errors.New("key not found"))
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	p.log = logger

	assert.Equal(t, Info{Kind: Windows, Version: stringPtr("11")}, p.SystemInfo())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, Windows, hook.LastEntry().Data["kind"])
}
