package hash

import "hash/crc32"

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// maskDelta is added to rotated checksums by Mask.
const maskDelta = 0xa282ead8

// Extend returns the CRC32C of concat(A, data) where crc is the CRC32C of
// some byte string A. Uses hardware acceleration when available (SSE4.2,
// ARM CRC).
func Extend(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, crc32cTable, data)
}

// ExtendSoftware is the reference implementation of Extend. It walks the
// table one byte at a time and never touches CRC instructions, so it is the
// yardstick accelerated paths are checked against.
func ExtendSoftware(crc uint32, data []byte) uint32 {
	crc = ^crc
	for _, b := range data {
		crc = crc32cTable[byte(crc)^b] ^ (crc >> 8)
	}
	return ^crc
}

// Value returns the CRC32C of data.
func Value(data []byte) uint32 {
	return Extend(0, data)
}

// Mask returns a masked representation of crc.
//
// Computing the CRC of a string that contains embedded CRCs is
// problematic, so stored checksums are masked first.
func Mask(crc uint32) uint32 {
	// Rotate right by 15 bits and add a constant.
	return ((crc >> 15) | (crc << 17)) + maskDelta
}

// Unmask returns the crc whose masked representation is masked.
func Unmask(masked uint32) uint32 {
	rot := masked - maskDelta
	return (rot >> 17) | (rot << 15)
}
