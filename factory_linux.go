package osinfo

func newPlatformProvider(o *options) Provider {
	return &linuxProvider{path: o.osReleasePath, log: o.logger}
}
