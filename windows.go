package osinfo

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jeanhaley32/osinfo/internal/constants"
)

const windows10Prefix = "Windows 10"

// windowsProvider combines the kernel version with the registry product name.
type windowsProvider struct {
	version     func() (major, build uint32)
	productName func() (string, error)
	log         logrus.FieldLogger
}

func (w *windowsProvider) SystemInfo() Info {
	major, build := w.version()
	win11 := isWindows11(major, build)

	info := Info{
		Kind:    Windows,
		Version: stringPtr(windowsVersion(major, win11)),
	}

	name, err := w.productName()
	if err != nil {
		w.log.WithFields(logrus.Fields{
			"kind":   Windows,
			"source": `HKLM\` + constants.WindowsCurrentVersionKey,
		}).Debugf("product name unavailable: %v", err)
		return info
	}
	info.Name = stringPtr(windowsName(name, win11))
	return info
}

// isWindows11 reports whether the version belongs to Windows 11. Windows 11
// keeps major version 10, so the build number is the only discriminator.
func isWindows11(major, build uint32) bool {
	return major > 10 || (major == 10 && build >= constants.Windows11MinBuild)
}

func windowsVersion(major uint32, win11 bool) string {
	if win11 {
		return "11"
	}
	return strconv.FormatUint(uint64(major), 10)
}

// windowsName fixes the stale "Windows 10" product name that Windows 11
// installs keep in the registry. Localized names are returned untouched.
func windowsName(product string, win11 bool) string {
	if win11 && strings.HasPrefix(product, windows10Prefix) {
		return product[:9] + "1" + product[10:]
	}
	return product
}
