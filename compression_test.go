package port

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/port/testutil"
)

func roundTripInputs() map[string][]byte {
	rng := testutil.NewRNG(4711)
	return map[string][]byte{
		"empty":        {},
		"single":       {0x42},
		"skewed":       rng.SkewedBytes(64*1024, 16, 1.5),
		"large-random": rng.Bytes(1 << 20),
		"repetitive":   bytes.Repeat([]byte("memtable"), 8192),
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	p := NewPlatform(WithEnv(false))

	for _, c := range allCompressions {
		codec := p.Codec(c)
		require.True(t, codec.Supported(), c.String())
		require.Equal(t, c, codec.Type())

		for name, in := range roundTripInputs() {
			t.Run(c.String()+"/"+name, func(t *testing.T) {
				compressed, st := codec.Compress(nil, in)
				require.Equal(t, StatusOK, st)

				n, st := codec.UncompressedLength(compressed)
				require.Equal(t, StatusOK, st)
				require.Equal(t, len(in), n)

				out := make([]byte, n)
				require.Equal(t, StatusOK, codec.Decompress(out, compressed))
				assert.True(t, bytes.Equal(in, out))
			})
		}
	}
}

func TestCodec_Unsupported(t *testing.T) {
	p := NewPlatform(WithEnv(false), WithoutCompression())
	in := bytes.Repeat([]byte("abc"), 100)

	for _, c := range append([]Compression{NoCompression}, allCompressions...) {
		codec := p.Codec(c)
		assert.False(t, codec.Supported(), c.String())
		assert.Equal(t, c, codec.Type())

		_, st := codec.Compress(nil, in)
		assert.Equal(t, StatusUnsupported, st)
		_, st = codec.UncompressedLength(in)
		assert.Equal(t, StatusUnsupported, st)
		assert.Equal(t, StatusUnsupported, codec.Decompress(make([]byte, 3), in))
	}

	// Unknown tags behave like an absent backend.
	_, st := p.Codec(Compression(200)).Compress(nil, in)
	assert.Equal(t, StatusUnsupported, st)
}

func TestCodec_Corrupt(t *testing.T) {
	p := NewPlatform(WithEnv(false))
	in := bytes.Repeat([]byte("block"), 1000)

	for _, c := range allCompressions {
		codec := p.Codec(c)
		compressed, st := codec.Compress(nil, in)
		require.Equal(t, StatusOK, st)

		_, st = codec.UncompressedLength(nil)
		assert.Equal(t, StatusCorrupt, st, c.String())

		assert.Equal(t, StatusCorrupt, codec.Decompress(make([]byte, len(in)), compressed[:len(compressed)-3]), c.String())
		assert.Equal(t, StatusCorrupt, codec.Decompress(make([]byte, len(in)+1), compressed), c.String())
	}
}

func TestSnappyHooks(t *testing.T) {
	if !Default().Codec(SnappyCompression).Supported() {
		t.Skip("snappy disabled by environment")
	}

	for name, in := range roundTripInputs() {
		t.Run(name, func(t *testing.T) {
			compressed, ok := Compress(in)
			require.True(t, ok)

			n, ok := GetUncompressedLength(compressed)
			require.True(t, ok)
			require.Equal(t, len(in), n)

			out := make([]byte, n)
			require.True(t, Decompress(compressed, out))
			assert.True(t, bytes.Equal(in, out))
		})
	}

	_, ok := GetUncompressedLength([]byte{0xff})
	assert.False(t, ok)
	assert.False(t, Decompress([]byte{0x05, 0x00}, make([]byte, 5)))
}

func TestPlatform_CompressBlock(t *testing.T) {
	p := NewPlatform(WithEnv(false))
	rng := testutil.NewRNG(1)

	compressible := rng.SkewedBytes(32*1024, 8, 2)
	for _, c := range allCompressions {
		block, used := p.CompressBlock(c, compressible)
		require.Equal(t, c, used)
		assert.Less(t, len(block), len(compressible))

		out, err := p.DecompressBlock(used, block)
		require.NoError(t, err)
		assert.Equal(t, compressible, out)
	}

	// Incompressible input is stored literally.
	random := rng.Bytes(4096)
	for _, c := range allCompressions {
		block, used := p.CompressBlock(c, random)
		assert.Equal(t, NoCompression, used)
		assert.Same(t, &random[0], &block[0])
	}

	block, used := p.CompressBlock(NoCompression, compressible)
	assert.Equal(t, NoCompression, used)
	assert.Equal(t, compressible, block)
}

func TestPlatform_CompressBlock_Unsupported(t *testing.T) {
	p := NewPlatform(WithEnv(false), WithoutCompression(SnappyCompression))
	in := bytes.Repeat([]byte("x"), 4096)

	block, used := p.CompressBlock(SnappyCompression, in)
	assert.Equal(t, NoCompression, used)
	assert.Equal(t, in, block)

	_, used = p.CompressBlock(LZ4Compression, in)
	assert.Equal(t, LZ4Compression, used)
}

func TestPlatform_DecompressBlock_Errors(t *testing.T) {
	p := NewPlatform(WithEnv(false))
	in := bytes.Repeat([]byte("sst"), 1000)

	block, used := p.CompressBlock(ZstdCompression, in)
	require.Equal(t, ZstdCompression, used)

	_, err := p.DecompressBlock(ZstdCompression, block[:len(block)/2])
	require.ErrorIs(t, err, ErrCorrupt)
	var ce *CorruptionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ZstdCompression, ce.Codec)

	_, err = p.DecompressBlock(SnappyCompression, []byte{0xff})
	assert.ErrorIs(t, err, ErrCorrupt)

	off := NewPlatform(WithEnv(false), WithoutCompression(ZstdCompression))
	_, err = off.DecompressBlock(ZstdCompression, block)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.NotErrorIs(t, err, ErrCorrupt)

	small := NewPlatform(WithEnv(false), WithMaxBlockSize(100))
	_, err = small.DecompressBlock(ZstdCompression, block)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Contains(t, err.Error(), "exceeds limit")

	out, err := p.DecompressBlock(NoCompression, in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCompression_Parse(t *testing.T) {
	for _, c := range append([]Compression{NoCompression}, allCompressions...) {
		got, ok := ParseCompression(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ParseCompression("brotli")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Compression(99).String())
}

func TestStatus_Err(t *testing.T) {
	assert.NoError(t, StatusOK.Err())
	assert.ErrorIs(t, StatusUnsupported.Err(), ErrUnsupported)
	assert.ErrorIs(t, StatusCorrupt.Err(), ErrCorrupt)
	assert.Equal(t, "corrupt", StatusCorrupt.String())
	assert.Equal(t, "unsupported", StatusUnsupported.String())
	assert.Equal(t, "ok", StatusOK.String())
}
