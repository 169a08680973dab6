package osinfo

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jeanhaley32/osinfo/internal/constants"
)

// macosReleases maps version prefixes to marketing names, newest first.
// Big Sur appears twice because some systems still report it as 10.16.
// Releases newer than the first entry resolve to no name until added here.
var macosReleases = []struct {
	prefix string
	name   string
}{
	{"15", "Sequoia"},
	{"14", "Sonoma"},
	{"13", "Ventura"},
	{"12", "Monterey"},
	{"11", "Big Sur"},
	{"10.16", "Big Sur"},
	{"10.15", "Catalina"},
	{"10.14", "Mojave"},
	{"10.13", "High Sierra"},
	{"10.12", "Sierra"},
}

// macosName returns the marketing name for a product version, or nil if unknown.
func macosName(version string) *string {
	for _, r := range macosReleases {
		if strings.HasPrefix(version, r.prefix) {
			return stringPtr(r.name)
		}
	}
	return nil
}

// macosProvider reads the product version through sysctl.
type macosProvider struct {
	sysctl func(name string) ([]byte, error)
	log    logrus.FieldLogger
}

func (m *macosProvider) SystemInfo() Info {
	info := Info{Kind: Macos}

	version, err := m.productVersion()
	if err != nil {
		m.log.WithFields(logrus.Fields{"kind": Macos, "source": constants.MacOSVersionSysctl}).
			Debugf("product version unavailable: %v", err)
		return info
	}

	info.Version = stringPtr(version)
	info.Name = macosName(version)
	return info
}

func (m *macosProvider) productVersion() (string, error) {
	raw, err := m.sysctl(constants.MacOSVersionSysctl)
	if err != nil {
		return "", fmt.Errorf("sysctl %s: %w", constants.MacOSVersionSysctl, err)
	}
	s, err := decodeCString(raw)
	if err != nil {
		return "", fmt.Errorf("sysctl %s: %w", constants.MacOSVersionSysctl, err)
	}
	return s, nil
}
