package port

import "github.com/hupe1980/port/internal/hash"

// AcceleratedCRC32C returns the CRC32C of concat(A, buf) where seed is the
// CRC32C of A, computed with CPU CRC instructions.
//
// It is bit-identical to SoftwareCRC32C. Callers must check
// CanAccelerateCRC32C first and use SoftwareCRC32C when it reports false;
// CRC32C does that dispatch.
func AcceleratedCRC32C(seed uint32, buf []byte) uint32 {
	return hash.Extend(seed, buf)
}

// SoftwareCRC32C is the portable reference implementation of CRC32C.
func SoftwareCRC32C(seed uint32, buf []byte) uint32 {
	return hash.ExtendSoftware(seed, buf)
}

// CanAccelerateCRC32C reports whether the default platform allows
// AcceleratedCRC32C.
func CanAccelerateCRC32C() bool {
	return Default().CanAccelerateCRC32C()
}

// CRC32C extends seed with buf on the default platform.
func CRC32C(seed uint32, buf []byte) uint32 {
	return Default().CRC32C(seed, buf)
}

// MaskCRC32C returns the masked form of crc used when a checksum is
// stored inside checksummed data.
func MaskCRC32C(crc uint32) uint32 {
	return hash.Mask(crc)
}

// UnmaskCRC32C reverses MaskCRC32C.
func UnmaskCRC32C(masked uint32) uint32 {
	return hash.Unmask(masked)
}
