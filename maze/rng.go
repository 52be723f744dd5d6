package maze

import "math/rand"

// defaultSeed is used when a Generator is built with seed 0 and no WithRand.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic source; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
