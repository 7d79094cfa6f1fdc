package compress

import (
	"github.com/klauspost/compress/s2"
)

// snappyCodec emits Snappy-compatible blocks through the s2 package. Its
// decoder reads both formats, so S2-only blocks are accepted too.
type snappyCodec struct{}

func (snappyCodec) Name() string { return "snappy" }

func (snappyCodec) Encode(dst, src []byte) ([]byte, error) {
	bound := s2.MaxEncodedLen(len(src))
	if bound < 0 {
		return nil, ErrTooLarge
	}
	return s2.EncodeSnappy(grow(dst, bound), src), nil
}

func (snappyCodec) DecodedLen(src []byte) (int, error) {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return 0, corruptf("snappy header: %v", err)
	}
	return n, nil
}

func (c snappyCodec) Decode(dst, src []byte) error {
	n, err := c.DecodedLen(src)
	if err != nil {
		return err
	}
	if n != len(dst) {
		return corruptf("snappy length %d, buffer %d", n, len(dst))
	}
	out, err := s2.Decode(dst, src)
	if err != nil {
		return corruptf("snappy: %v", err)
	}
	if len(out) != n {
		return corruptf("snappy decoded %d bytes, want %d", len(out), n)
	}
	return nil
}
