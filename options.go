package port

type options struct {
	logger        *Logger
	disabled      []Compression
	crc32cAccel   bool
	useEnv        bool
	maxBlockBytes int
}

// defaultMaxBlockBytes bounds the allocation DecompressBlock makes for a
// block header it has not verified yet.
const defaultMaxBlockBytes = 256 << 20

// Option configures NewPlatform.
type Option func(*options)

// WithLogger configures the logger used for capability and corruption
// reports.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithoutCompression replaces the given codecs with the null backend, as
// if their libraries were absent. With no arguments every codec is
// disabled.
func WithoutCompression(types ...Compression) Option {
	return func(o *options) {
		if len(types) == 0 {
			types = allCompressions
		}
		o.disabled = append(o.disabled, types...)
	}
}

// WithCRC32CAcceleration allows or forbids the hardware CRC32C path.
// Enabling it has no effect on CPUs without CRC instructions.
func WithCRC32CAcceleration(enabled bool) Option {
	return func(o *options) {
		o.crc32cAccel = enabled
	}
}

// WithEnv controls whether PORT_CRC32C and PORT_COMPRESSION are honoured.
// Enabled by default. Options always take precedence over the environment.
func WithEnv(enabled bool) Option {
	return func(o *options) {
		o.useEnv = enabled
	}
}

// WithMaxBlockSize bounds the uncompressed size DecompressBlock accepts.
// Larger headers are reported as corruption. Values <= 0 keep the default
// of 256 MiB.
func WithMaxBlockSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBlockBytes = n
		}
	}
}
