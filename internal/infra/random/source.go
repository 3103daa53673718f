// Package random provides the RandomSource used for workout sampling.
package random

import (
	"math/rand/v2"
	"sync"

	"healthplanner/config"
	"healthplanner/internal/domain/service"

	"go.uber.org/fx"
)

// Source is a mutex-guarded PCG generator, safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source. A zero seed draws a seed from the runtime generator,
// so plans differ between runs; any other seed makes the sequence repeatable.
func New(seed uint64) *Source {
	var pcg *rand.PCG
	if seed == 0 {
		pcg = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		pcg = rand.NewPCG(seed, seed)
	}

	return &Source{rng: rand.New(pcg)}
}

// Shuffle permutes n elements through swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng.Shuffle(n, swap)
}

// Params holds dependencies for the fx provider.
type Params struct {
	fx.In

	Config *config.Config
}

// NewSource builds the process-wide source from config.
func NewSource(params Params) service.RandomSource {
	var seed uint64
	if params.Config != nil && params.Config.Planner != nil {
		seed = params.Config.Planner.RandomSeed
	}

	return New(seed)
}
