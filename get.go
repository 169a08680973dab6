//go:build linux || darwin || windows

package osinfo

// Get returns the identity of the running operating system using the
// default sources. Fields that cannot be determined are nil.
func Get() Info {
	return newPlatformProvider(newOptions(nil)).SystemInfo()
}
