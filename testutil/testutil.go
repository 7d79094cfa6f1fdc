package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns n uniformly random bytes. Output is effectively
// incompressible.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, n)
	r.rand.Read(buf)
	return buf
}

// SkewedBytes returns n bytes drawn from a Zipf distribution over an
// alphabet of the given size, which compresses well but not trivially.
// s is the skew parameter (s > 1).
func (r *RNG) SkewedBytes(n, alphabet int, s float64) []byte {
	if alphabet < 2 {
		alphabet = 2
	}
	if alphabet > 256 {
		alphabet = 256
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	z := rand.NewZipf(r.rand, s, 1, uint64(alphabet-1))
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(z.Uint64())
	}
	return buf
}

// Records returns count byte strings of random length in [0, maxLen],
// shaped like log records: a skewed body with a random header.
func (r *RNG) Records(count, maxLen int) [][]byte {
	out := make([][]byte, count)
	for i := range out {
		n := r.Intn(maxLen + 1)
		hdr := min(n, 8)
		rec := append(r.Bytes(hdr), r.SkewedBytes(n-hdr, 16, 1.5)...)
		out[i] = rec
	}
	return out
}
