package service

// RandomSource is the only source of non-determinism in plan generation.
type RandomSource interface {
	// Shuffle permutes n elements through swap.
	Shuffle(n int, swap func(i, j int))
}
