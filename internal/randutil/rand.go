// Package randutil builds reproducible, non-cryptographic PRNGs for
// simulations. Never use it for commitment keys.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// ForWorker returns an independent stream for worker w of a run seeded
// with seed, so parallel workers stay reproducible.
func ForWorker(seed int64, w int) *rand.Rand {
	return New(int64(mix(uint64(seed) ^ mix(uint64(w)+1))))
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
