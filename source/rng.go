package source

import "math/rand"

// defaultSeed replaces a zero seed so the zero-valued Synthetic is reproducible.
const defaultSeed int64 = 1

// Stream identifiers for derived generators.
const (
	streamShared uint64 = iota
	streamSC
	streamFC
)

// rngFromSeed returns a deterministic *rand.Rand; seed==0 uses defaultSeed.
// A *rand.Rand is not safe for concurrent use.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finaliser), so
// each connectivity type draws from an independent reproducible stream.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
