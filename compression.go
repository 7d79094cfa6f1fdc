package port

import (
	"context"
	"strings"

	"github.com/hupe1980/port/internal/compress"
)

// Compression identifies a block compression format. Values are stored in
// block trailers by the engine and must not be renumbered.
type Compression uint8

const (
	// NoCompression marks a block stored as-is.
	NoCompression Compression = 0
	// SnappyCompression marks a snappy block.
	SnappyCompression Compression = 1
	// LZ4Compression marks an LZ4 block.
	LZ4Compression Compression = 2
	// ZstdCompression marks a zstd block.
	ZstdCompression Compression = 3
)

// allCompressions lists every real codec in probe order.
var allCompressions = []Compression{SnappyCompression, LZ4Compression, ZstdCompression}

// String returns the string representation of a Compression.
func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case SnappyCompression:
		return "snappy"
	case LZ4Compression:
		return "lz4"
	case ZstdCompression:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseCompression parses a string into a Compression value.
func ParseCompression(s string) (Compression, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return NoCompression, true
	case "snappy":
		return SnappyCompression, true
	case "lz4":
		return LZ4Compression, true
	case "zstd":
		return ZstdCompression, true
	default:
		return NoCompression, false
	}
}

// Status is the outcome of a codec operation.
type Status uint8

const (
	// StatusOK means the operation succeeded.
	StatusOK Status = iota
	// StatusUnsupported means no backend is available for the codec.
	StatusUnsupported
	// StatusCorrupt means the input is not a valid block.
	StatusCorrupt
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnsupported:
		return "unsupported"
	case StatusCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Err maps s to nil, ErrUnsupported or ErrCorrupt.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusUnsupported:
		return ErrUnsupported
	default:
		return ErrCorrupt
	}
}

// Codec is a compression backend. Implementations are stateless and safe
// for concurrent use.
type Codec interface {
	// Type returns the format this codec reads and writes.
	Type() Compression

	// Supported reports whether a real backend is present.
	Supported() bool

	// Compress compresses src, reusing dst's storage when large enough.
	// The result is trimmed to the produced length. On any status other
	// than StatusOK the output must not be used and the caller stores src
	// uncompressed instead.
	Compress(dst, src []byte) ([]byte, Status)

	// UncompressedLength reads the original length from the block header
	// without decompressing.
	UncompressedLength(src []byte) (int, Status)

	// Decompress expands src into dst. len(dst) must equal the value
	// reported by UncompressedLength.
	Decompress(dst, src []byte) Status
}

// nativeCodec adapts an internal block codec.
type nativeCodec struct {
	typ    Compression
	impl   compress.Codec
	logger *Logger
}

func (c *nativeCodec) Type() Compression { return c.typ }

func (c *nativeCodec) Supported() bool { return true }

func (c *nativeCodec) Compress(dst, src []byte) ([]byte, Status) {
	out, err := c.impl.Encode(dst, src)
	if err != nil {
		// Oversized input cannot be compressed; the caller stores it raw.
		return nil, StatusUnsupported
	}
	return out, StatusOK
}

func (c *nativeCodec) UncompressedLength(src []byte) (int, Status) {
	n, err := c.impl.DecodedLen(src)
	if err != nil {
		return 0, StatusCorrupt
	}
	return n, StatusOK
}

func (c *nativeCodec) Decompress(dst, src []byte) Status {
	if err := c.impl.Decode(dst, src); err != nil {
		c.logger.LogCorruptBlock(context.Background(), c.typ, len(src), err)
		return StatusCorrupt
	}
	return StatusOK
}

// nullCodec stands in for a codec whose backend is absent or disabled.
type nullCodec struct {
	typ Compression
}

func (c nullCodec) Type() Compression { return c.typ }

func (nullCodec) Supported() bool { return false }

func (nullCodec) Compress(_, _ []byte) ([]byte, Status) { return nil, StatusUnsupported }

func (nullCodec) UncompressedLength(_ []byte) (int, Status) { return 0, StatusUnsupported }

func (nullCodec) Decompress(_, _ []byte) Status { return StatusUnsupported }

// Compress compresses input with the default snappy codec. ok is false
// when no snappy backend is available; the caller then stores input
// uncompressed.
func Compress(input []byte) (output []byte, ok bool) {
	out, st := Default().Codec(SnappyCompression).Compress(nil, input)
	return out, st == StatusOK
}

// GetUncompressedLength returns the original length of a snappy block.
// ok is false when snappy is unavailable or the block is malformed.
func GetUncompressedLength(compressed []byte) (length int, ok bool) {
	n, st := Default().Codec(SnappyCompression).UncompressedLength(compressed)
	return n, st == StatusOK
}

// Decompress expands a snappy block into output, which must be sized by
// GetUncompressedLength. A false result means the block cannot be trusted
// (or snappy is unavailable) and must fail the read.
func Decompress(compressed, output []byte) bool {
	return Default().Codec(SnappyCompression).Decompress(output, compressed) == StatusOK
}

// CompressBlock compresses input with the default platform. See
// Platform.CompressBlock.
func CompressBlock(c Compression, input []byte) ([]byte, Compression) {
	return Default().CompressBlock(c, input)
}

// DecompressBlock decodes a block with the default platform. See
// Platform.DecompressBlock.
func DecompressBlock(c Compression, block []byte) ([]byte, error) {
	return Default().DecompressBlock(c, block)
}
