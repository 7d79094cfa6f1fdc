// Package hash provides fast, hardware-accelerated hashing utilities for data integrity.
//
// # CRC32-Castagnoli (CRC32C)
//
// Block and log-record checksums use CRC32-Castagnoli (CRC32C) which provides:
//
//   - Hardware acceleration on x86 (SSE4.2) and ARM (CRC extension)
//   - 10-20 GB/s throughput on modern CPUs
//   - Superior error detection compared to CRC32-IEEE
//   - Industry standard (iSCSI, Btrfs, RocksDB, LevelDB)
//
// # Usage
//
// For one-shot checksums:
//
//	checksum := hash.Value(data)
//
// For extending a checksum across chunks:
//
//	crc := hash.Value(header)
//	crc = hash.Extend(crc, payload)
//
// Checksums embedded in data that is itself checksummed are stored masked:
//
//	stored := hash.Mask(crc)
//	crc = hash.Unmask(stored)
//
// # Software Reference
//
// ExtendSoftware never uses CRC instructions. Extend goes through
// hash/crc32, which picks hardware instructions when the CPU has them.
// Both must agree bit for bit.
package hash
