package port

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/port/testutil"
)

func TestAcceleratedCRC32C_MatchesSoftware(t *testing.T) {
	rng := testutil.NewRNG(4711)

	inputs := map[string][]byte{
		"empty":            nil,
		"single":           {0xa5},
		"cache-line":       bytes.Repeat([]byte{0x11}, 64),
		"past-cache-line":  rng.Bytes(65),
		"page-unaligned":   rng.Bytes(4096 + 3),
		"large":            rng.Bytes(1 << 20),
		"unaligned-offset": rng.Bytes(1027)[3:],
	}
	seeds := []uint32{0, 1, 0xffffffff, SoftwareCRC32C(0, []byte("prefix"))}

	for name, in := range inputs {
		for _, seed := range seeds {
			assert.Equal(t, SoftwareCRC32C(seed, in), AcceleratedCRC32C(seed, in), "%s seed=%#x", name, seed)
		}
	}
}

func TestCRC32C_KnownValues(t *testing.T) {
	assert.Equal(t, uint32(0xe3069283), SoftwareCRC32C(0, []byte("123456789")))
	assert.Equal(t, uint32(0xe3069283), AcceleratedCRC32C(0, []byte("123456789")))
	assert.Equal(t, uint32(0x8a9136aa), CRC32C(0, make([]byte, 32)))
}

func TestCRC32C_ExtendsSeed(t *testing.T) {
	whole := CRC32C(0, []byte("hello world"))
	assert.Equal(t, whole, CRC32C(CRC32C(0, []byte("hello ")), []byte("world")))
	assert.Equal(t, whole, SoftwareCRC32C(SoftwareCRC32C(0, []byte("hello ")), []byte("world")))
}

func TestPlatform_CRC32C_BothPathsAgree(t *testing.T) {
	hw := NewPlatform(WithEnv(false))
	sw := NewPlatform(WithEnv(false), WithCRC32CAcceleration(false))

	assert.False(t, sw.CanAccelerateCRC32C())

	data := testutil.NewRNG(9).Bytes(1000)
	for i := 0; i <= len(data); i += 97 {
		assert.Equal(t, sw.CRC32C(7, data[:i]), hw.CRC32C(7, data[:i]))
	}
}

func TestMaskCRC32C(t *testing.T) {
	crc := CRC32C(0, []byte("foo"))
	assert.NotEqual(t, crc, MaskCRC32C(crc))
	assert.Equal(t, crc, UnmaskCRC32C(MaskCRC32C(crc)))
}
