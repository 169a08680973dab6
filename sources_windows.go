package osinfo

import (
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/jeanhaley32/osinfo/internal/constants"
)

func rtlVersion() (major, build uint32) {
	v := windows.RtlGetVersion()
	return v.MajorVersion, v.BuildNumber
}

func registryProductName() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, constants.WindowsCurrentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open key %s: %w", constants.WindowsCurrentVersionKey, err)
	}
	defer k.Close() // nolint

	name, _, err := k.GetStringValue(constants.WindowsProductNameValue)
	if err != nil {
		return "", fmt.Errorf("read value %s: %w", constants.WindowsProductNameValue, err)
	}
	return name, nil
}
