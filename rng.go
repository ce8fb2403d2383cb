package main

import (
	"math/rand"
	"time"
)

// newRootRNG builds the engine's master random source. A zero seed picks a
// clock-based one; any other value gives a fully reproducible world.
func newRootRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// substream derives an independent deterministic stream from the master seed
// and a set of coordinates (season, week, division index, match index).
// Matches resolved in parallel each draw from their own substream, so the
// final world is identical to a sequential run for a fixed seed.
func substream(seed int64, coords ...int64) *rand.Rand {
	h := uint64(seed)
	for _, c := range coords {
		h ^= uint64(c) + 0x9e3779b97f4a7c15
		h = splitmix64(h)
	}
	return rand.New(rand.NewSource(int64(h)))
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// randBetween returns a uniform int in [lo, hi] inclusive
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// gauss returns a normal sample with the given mean and deviation
func gauss(rng *rand.Rand, mean, std float64) float64 {
	return rng.NormFloat64()*std + mean
}

func randomName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}
