package ports

import "math/rand/v2"

type Random interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

type SystemRandom struct{}

func (SystemRandom) IntN(n int) int {
	return rand.IntN(n)
}
