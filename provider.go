package osinfo

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/jeanhaley32/osinfo/internal/constants"
)

// ErrUnsupported is returned by New on hosts that are not Linux, macOS or Windows.
var ErrUnsupported = errors.New("unsupported operating system")

// Provider reports the identity of the operating system it was built for.
type Provider interface {
	// SystemInfo queries the OS afresh on every call. It never fails;
	// fields that cannot be determined are left nil.
	SystemInfo() Info
}

type options struct {
	osReleasePath string
	logger        logrus.FieldLogger
}

// Option configures a Provider returned by New.
type Option func(*options)

// WithOSReleasePath makes the Linux provider read path instead of /etc/os-release.
// It has no effect on other platforms.
func WithOSReleasePath(path string) Option {
	return func(o *options) {
		o.osReleasePath = path
	}
}

// WithLogger sets the logger used to report unavailable data sources.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		osReleasePath: constants.OSReleasePath,
		logger:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New creates a Provider appropriate for the current operating system.
func New(opts ...Option) (Provider, error) {
	p := newPlatformProvider(newOptions(opts))
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)
	}
	return p, nil
}
