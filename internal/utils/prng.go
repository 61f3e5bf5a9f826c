// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над стандартным генератором случайных чисел Go,
// дающая воспроизводимый (seeded) рандом для генерации сцены.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float32 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float32() float32 {
	return s.rng.Float32()
}

// Range returns a value uniformly drawn from [lo, hi).
func (s *PRNGService) Range(lo, hi float32) float32 {
	return lo + (hi-lo)*s.rng.Float32()
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float32) bool {
	return s.rng.Float32() < p
}

// ChooseWeighted выполняет взвешенный случайный выбор индекса.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит индекс, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(weights []int) int {
	if len(weights) == 0 {
		return -1
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight <= 0 {
		return 0
	}

	r := s.Intn(totalWeight)
	upto := 0
	for i, w := range weights {
		if upto+w > r {
			return i
		}
		upto += w
	}
	return len(weights) - 1
}
