package osinfo

func newPlatformProvider(o *options) Provider {
	return &windowsProvider{
		version:     rtlVersion,
		productName: registryProductName,
		log:         o.logger,
	}
}
