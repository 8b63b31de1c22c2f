// Package randutil builds the seeded random sources used for word selection.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a PCG-backed *rand.Rand derived from seed. Equal seeds give
// equal sequences, which is what makes word selection replayable.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Resolve returns seed when it is set, otherwise one taken from the clock.
func Resolve(seed *int64, clock quartz.Clock) int64 {
	if seed != nil {
		return *seed
	}
	return clock.Now().UnixNano()
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
