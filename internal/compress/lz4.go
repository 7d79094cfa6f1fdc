package compress

import (
	"encoding/binary"

	"github.com/pierrec/lz4/v4"
)

const (
	lz4Stored     byte = 0
	lz4Compressed byte = 1
)

type lz4Codec struct{}

func (lz4Codec) Name() string { return "lz4" }

func (lz4Codec) Encode(dst, src []byte) ([]byte, error) {
	if err := checkLen(src); err != nil {
		return nil, err
	}

	bound := lz4.CompressBlockBound(len(src))
	buf := grow(dst, binary.MaxVarintLen64+1+bound)
	off := binary.PutUvarint(buf, uint64(len(src)))

	n, err := lz4.CompressBlock(src, buf[off+1:], nil)
	if err != nil {
		return nil, err
	}

	if n == 0 || n >= len(src) {
		// Incompressible: store raw behind the header.
		buf[off] = lz4Stored
		n = copy(buf[off+1:], src)
	} else {
		buf[off] = lz4Compressed
	}
	return buf[:off+1+n], nil
}

func (lz4Codec) DecodedLen(src []byte) (int, error) {
	n, _, err := readLength(src)
	return n, err
}

func (lz4Codec) Decode(dst, src []byte) error {
	n, rest, err := readLength(src)
	if err != nil {
		return err
	}
	if n != len(dst) {
		return corruptf("lz4 length %d, buffer %d", n, len(dst))
	}
	if len(rest) == 0 {
		return corruptf("lz4 block missing flag")
	}

	flag, payload := rest[0], rest[1:]
	switch flag {
	case lz4Stored:
		if len(payload) != n {
			return corruptf("lz4 stored payload %d bytes, want %d", len(payload), n)
		}
		copy(dst, payload)
		return nil
	case lz4Compressed:
		got, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return corruptf("lz4: %v", err)
		}
		if got != n {
			return corruptf("lz4 decoded %d bytes, want %d", got, n)
		}
		return nil
	default:
		return corruptf("lz4 unknown flag %d", flag)
	}
}
