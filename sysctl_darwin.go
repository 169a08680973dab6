package osinfo

import "golang.org/x/sys/unix"

// sysctlRaw returns the raw value of a sysctl by name. The length is queried
// first and the value fetched into a buffer of that size, so the result keeps
// any trailing NUL the kernel reports.
func sysctlRaw(name string) ([]byte, error) {
	return unix.SysctlRaw(name)
}
