package compress

import (
	"encoding/binary"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	// DecodeAll never grows past cap(dst), so a frame longer than its
	// header claims fails instead of allocating.
	dec, _ := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecodeAllCapLimit(true),
		zstd.WithDecoderMaxMemory(maxBlockLen),
	)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

type zstdCodec struct{}

func (zstdCodec) Name() string { return "zstd" }

func (zstdCodec) Encode(dst, src []byte) ([]byte, error) {
	if err := checkLen(src); err != nil {
		return nil, err
	}

	hdr := grow(dst, binary.MaxVarintLen64)
	hdr = hdr[:binary.PutUvarint(hdr, uint64(len(src)))]
	if len(src) == 0 {
		return hdr, nil
	}

	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(src, hdr), nil
}

func (zstdCodec) DecodedLen(src []byte) (int, error) {
	n, _, err := readLength(src)
	return n, err
}

func (zstdCodec) Decode(dst, src []byte) error {
	n, payload, err := readLength(src)
	if err != nil {
		return err
	}
	if n != len(dst) {
		return corruptf("zstd length %d, buffer %d", n, len(dst))
	}
	if n == 0 {
		if len(payload) != 0 {
			return corruptf("zstd trailing %d bytes on empty block", len(payload))
		}
		return nil
	}

	dec := getZstdDecoder()
	defer putZstdDecoder(dec)

	out, err := dec.DecodeAll(payload, dst[:0:n])
	if err != nil {
		return corruptf("zstd: %v", err)
	}
	if len(out) != n {
		return corruptf("zstd decoded %d bytes, want %d", len(out), n)
	}
	copy(dst, out)
	return nil
}
