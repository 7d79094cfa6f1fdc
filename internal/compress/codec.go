package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrCorrupt is returned when a block cannot be decoded.
	ErrCorrupt = errors.New("compress: corrupt block")
	// ErrTooLarge is returned when the input exceeds what a block can hold.
	ErrTooLarge = errors.New("compress: input too large")
)

// maxBlockLen bounds the uncompressed length a block header may claim.
const maxBlockLen = math.MaxInt32

// Codec compresses and decompresses self-describing blocks.
type Codec interface {
	// Name returns the codec name.
	Name() string
	// Encode compresses src, reusing dst's storage when large enough.
	Encode(dst, src []byte) ([]byte, error)
	// DecodedLen returns the uncompressed length recorded in src.
	DecodedLen(src []byte) (int, error)
	// Decode decompresses src into dst; len(dst) must equal DecodedLen(src).
	Decode(dst, src []byte) error
}

var (
	// Snappy is the snappy block codec.
	Snappy Codec = snappyCodec{}
	// LZ4 is the LZ4 block codec.
	LZ4 Codec = lz4Codec{}
	// Zstd is the zstd frame codec.
	Zstd Codec = zstdCodec{}
)

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}

// grow returns dst resliced to n bytes, allocating if its capacity is short.
func grow(dst []byte, n int) []byte {
	if cap(dst) < n {
		return make([]byte, n)
	}
	return dst[:n]
}

// readLength parses the uvarint length prefix shared by the LZ4 and zstd
// formats and returns it with the remaining payload.
func readLength(src []byte) (int, []byte, error) {
	v, n := binary.Uvarint(src)
	if n <= 0 {
		return 0, nil, corruptf("bad length header")
	}
	if v > maxBlockLen {
		return 0, nil, corruptf("length %d exceeds block limit", v)
	}
	return int(v), src[n:], nil
}

// checkLen verifies len(src) against the maximum block size.
func checkLen(src []byte) error {
	if uint64(len(src)) > maxBlockLen {
		return ErrTooLarge
	}
	return nil
}
