// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел, чтобы игра могла
// работать на предсказуемом (seeded) рандоме.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a generator for seed. Seed 0 means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Bool is a fair coin flip.
func (s *PRNGService) Bool() bool {
	return s.rng.Intn(2) == 1
}
