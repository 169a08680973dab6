package constants

// Linux release file
const (
	// OSReleasePath is the default location of the os-release file.
	OSReleasePath = "/etc/os-release"

	// OSReleaseNameKey marks the line holding the distribution's display name.
	OSReleaseNameKey = "NAME="

	// OSReleaseVersionKey marks the line holding the distribution's version id.
	OSReleaseVersionKey = "VERSION_ID="
)

// macOS sysctl
const (
	// MacOSVersionSysctl is the sysctl name holding the product version, e.g. "14.4.1".
	MacOSVersionSysctl = "kern.osproductversion"
)

// Windows version and registry
const (
	// WindowsCurrentVersionKey is the HKLM subkey describing the installed OS.
	WindowsCurrentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

	// WindowsProductNameValue is the registry value holding the edition name.
	WindowsProductNameValue = "ProductName"

	// Windows11MinBuild is the first public Windows 11 build number.
	Windows11MinBuild = 22000
)

// CLI environment variables
const (
	// FormatEnvVar overrides the default output format.
	FormatEnvVar = "OSINFO_FORMAT"

	// OSReleaseEnvVar overrides the Linux os-release path.
	OSReleaseEnvVar = "OSINFO_OS_RELEASE"
)
