// Package port is the platform layer of the storage engine.
//
// It supplies the synchronization primitives the engine's log writer,
// memtable and compaction goroutines rely on, and the hooks through which
// the table format calls block compression and CRC32C.
//
// # Synchronization
//
//   - Mutex: exclusive lock with an always-on owner check (AssertHeld)
//   - CondVar: condition variable bound to one Mutex; Wait, Signal, SignalAll
//   - OnceGuard: run-once initializer; late callers block until it finishes
//
// There are no read/write locks, recursive locks or timed waits. Callers
// that need a bounded wait check a shared deadline flag in their wait loop.
//
// # Compression
//
// Each Compression type is served by a Codec chosen once by a capability
// probe: a native backend (snappy via s2, LZ4, zstd) or a null backend that
// reports StatusUnsupported. Statuses separate a missing backend from a
// corrupt block:
//
//	n, st := codec.UncompressedLength(block)
//	switch st {
//	case port.StatusUnsupported: // configuration problem
//	case port.StatusCorrupt:     // fail the read
//	}
//
// Compress, GetUncompressedLength and Decompress keep the boolean snappy
// hooks for callers that only need ok/not-ok.
//
// # Checksums
//
// AcceleratedCRC32C uses CPU CRC instructions and must only be called when
// CanAccelerateCRC32C reports true; SoftwareCRC32C is the reference. CRC32C
// picks between them.
//
// # Configuration
//
// NewPlatform takes functional options. The environment variables
// PORT_CRC32C ("software", "hardware") and PORT_COMPRESSION ("none" or a
// comma separated list of codecs to keep) override detection unless
// WithEnv(false) is passed. Default returns a lazily probed process-wide
// Platform.
package port
