// Package testutil provides testing utilities for the port layer.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating block
// payloads with controlled compressibility.
//
// # Random Payload Generation
//
//	rng := testutil.NewRNG(seed)
//	random := rng.Bytes(64 << 10)            // incompressible
//	skewed := rng.SkewedBytes(64<<10, 16, 1.5) // compressible
//	recs := rng.Records(100, 4096)           // log-record shaped
package testutil
