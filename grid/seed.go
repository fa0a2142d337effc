package grid

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG-backed source; seed 0 picks one from the clock
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1))
}

// Seed builds a fresh grid for a termW x termH terminal
// Each cell is independently alive with probability one half
func Seed(termW, termH int, mode FidelityMode, rng *rand.Rand) (*Grid, error) {
	g, err := New(termW, RowsFor(mode, termH), mode)
	if err != nil {
		return nil, err
	}
	for x := range g.cells {
		fillBinary(rng, g.cells[x])
	}
	return g, nil
}

func fillBinary(rng *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(rng.IntN(2))
	}
}
