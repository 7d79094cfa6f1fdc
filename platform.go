package port

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hupe1980/port/internal/compress"
	"github.com/hupe1980/port/internal/cpu"
)

// Environment overrides probed by NewPlatform.
const (
	// EnvCRC32C selects the CRC32C path: "software" or "hardware".
	EnvCRC32C = "PORT_CRC32C"
	// EnvCompression is "none" or a comma separated list of codecs to keep.
	EnvCompression = "PORT_COMPRESSION"
)

var nativeBackends = map[Compression]compress.Codec{
	SnappyCompression: compress.Snappy,
	LZ4Compression:    compress.LZ4,
	ZstdCompression:   compress.Zstd,
}

// Capabilities is a snapshot of what a Platform selected.
type Capabilities struct {
	// CRC32C names the CRC32C implementation in use.
	CRC32C string
	// CRC32CAccelerated reports whether CRC32C runs on CRC instructions.
	CRC32CAccelerated bool
	// Codecs lists the codecs with a real backend.
	Codecs []Compression
	// LittleEndian reports the host byte order.
	LittleEndian bool
}

// Platform holds the backends chosen by a one-time capability probe.
// It is immutable after construction and safe for concurrent use.
type Platform struct {
	logger        *Logger
	codecs        [ZstdCompression + 1]Codec
	crc32c        cpu.CRC32CImpl
	maxBlockBytes int
}

// NewPlatform probes the CPU and the environment and selects a backend for
// every codec and for CRC32C.
func NewPlatform(optFns ...Option) *Platform {
	o := options{
		logger:        NoopLogger(),
		crc32cAccel:   true,
		useEnv:        true,
		maxBlockBytes: defaultMaxBlockBytes,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	ctx := context.Background()
	enabled := make(map[Compression]bool, len(allCompressions))
	for _, c := range allCompressions {
		enabled[c] = true
	}
	reasons := make(map[Compression]string)

	crc := cpu.BestCRC32C()
	if o.useEnv {
		crc = applyCRC32CEnv(ctx, o.logger, crc)
		applyCompressionEnv(ctx, o.logger, enabled, reasons)
	}
	if !o.crc32cAccel {
		crc = cpu.Software
	}
	for _, c := range o.disabled {
		if enabled[c] {
			enabled[c] = false
			reasons[c] = "disabled by option"
		}
	}

	p := &Platform{
		logger:        o.logger,
		crc32c:        crc,
		maxBlockBytes: o.maxBlockBytes,
	}
	p.codecs[NoCompression] = nullCodec{typ: NoCompression}
	for _, c := range allCompressions {
		impl, ok := nativeBackends[c]
		if !ok || !enabled[c] {
			if !ok {
				reasons[c] = "no backend"
			}
			p.codecs[c] = nullCodec{typ: c}
			o.logger.LogCodecDisabled(ctx, c, reasons[c])
			continue
		}
		p.codecs[c] = &nativeCodec{typ: c, impl: impl, logger: o.logger}
	}

	o.logger.LogCapabilities(ctx, p.Capabilities())
	return p
}

func applyCRC32CEnv(ctx context.Context, logger *Logger, crc cpu.CRC32CImpl) cpu.CRC32CImpl {
	v, ok := os.LookupEnv(EnvCRC32C)
	if !ok || v == "" {
		return crc
	}
	impl, ok := cpu.ParseCRC32CImpl(v)
	if !ok || !cpu.Available(impl) {
		logger.LogOverrideIgnored(ctx, EnvCRC32C, v)
		return crc
	}
	return impl
}

func applyCompressionEnv(ctx context.Context, logger *Logger, enabled map[Compression]bool, reasons map[Compression]string) {
	v, ok := os.LookupEnv(EnvCompression)
	if !ok || v == "" {
		return
	}

	keep := make(map[Compression]bool)
	for _, name := range strings.Split(v, ",") {
		c, ok := ParseCompression(name)
		if !ok {
			logger.LogOverrideIgnored(ctx, EnvCompression, name)
			continue
		}
		keep[c] = true
	}
	for _, c := range allCompressions {
		if !keep[c] {
			enabled[c] = false
			reasons[c] = "disabled by " + EnvCompression
		}
	}
}

var (
	defaultOnce     OnceGuard
	defaultPlatform *Platform
)

// Default returns the process-wide Platform, probing on first use.
func Default() *Platform {
	InitOnce(&defaultOnce, func() {
		defaultPlatform = NewPlatform()
	})
	return defaultPlatform
}

// Codec returns the backend for c. Unknown or disabled types get a codec
// that reports StatusUnsupported.
func (p *Platform) Codec(c Compression) Codec {
	if int(c) < len(p.codecs) {
		return p.codecs[c]
	}
	return nullCodec{typ: c}
}

// CanAccelerateCRC32C reports whether AcceleratedCRC32C may be used.
func (p *Platform) CanAccelerateCRC32C() bool {
	return p.crc32c.Accelerated()
}

// Capabilities returns what p selected.
func (p *Platform) Capabilities() Capabilities {
	caps := Capabilities{
		CRC32C:            p.crc32c.String(),
		CRC32CAccelerated: p.crc32c.Accelerated(),
		LittleEndian:      LittleEndian,
	}
	for _, c := range allCompressions {
		if p.codecs[c].Supported() {
			caps.Codecs = append(caps.Codecs, c)
		}
	}
	return caps
}

// CompressBlock compresses input with codec c and applies the storage
// policy: the compressed form is kept only if it saves at least 12.5%.
// Otherwise, or when c has no backend, input is returned unchanged with
// NoCompression so the caller stores the literal bytes.
func (p *Platform) CompressBlock(c Compression, input []byte) ([]byte, Compression) {
	if c == NoCompression {
		return input, NoCompression
	}
	out, st := p.Codec(c).Compress(nil, input)
	if st != StatusOK || len(out) >= len(input)-len(input)/8 {
		return input, NoCompression
	}
	return out, c
}

// DecompressBlock returns the contents of a block tagged with c. A
// NoCompression block is returned as-is. Failures wrap ErrUnsupported or
// are a *CorruptionError; either way the read must fail.
func (p *Platform) DecompressBlock(c Compression, block []byte) ([]byte, error) {
	if c == NoCompression {
		return block, nil
	}

	codec := p.Codec(c)
	if !codec.Supported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, c)
	}

	n, st := codec.UncompressedLength(block)
	if st != StatusOK {
		return nil, &CorruptionError{Codec: c}
	}
	if n > p.maxBlockBytes {
		return nil, &CorruptionError{Codec: c, cause: fmt.Errorf("uncompressed length %d exceeds limit %d", n, p.maxBlockBytes)}
	}

	out := make([]byte, n)
	if st := codec.Decompress(out, block); st != StatusOK {
		return nil, &CorruptionError{Codec: c}
	}
	return out, nil
}

// CRC32C extends seed with buf, using AcceleratedCRC32C when p allows it
// and the software implementation otherwise.
func (p *Platform) CRC32C(seed uint32, buf []byte) uint32 {
	if p.CanAccelerateCRC32C() {
		return AcceleratedCRC32C(seed, buf)
	}
	return SoftwareCRC32C(seed, buf)
}
