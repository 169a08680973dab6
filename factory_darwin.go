package osinfo

func newPlatformProvider(o *options) Provider {
	return &macosProvider{sysctl: sysctlRaw, log: o.logger}
}
