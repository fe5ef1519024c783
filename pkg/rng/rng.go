// Package rng содержит сидируемый источник случайности для генерации
// комнат и боевых бросков. Все решения ядра проходят через один Service,
// поэтому одинаковый сид и одинаковый поток команд дают идентичную сессию.
package rng

import "math/rand"

// Service оборачивает *rand.Rand с семантикой целочисленного Range
// с ИСКЛЮЧАЮЩЕЙ верхней границей. Именно от этой границы зависят все
// распределения генератора, менять ее нельзя.
type Service struct {
	src *rand.Rand
}

// NewService создает источник с явным сидом.
func NewService(seed int64) *Service {
	return &Service{src: rand.New(rand.NewSource(seed))}
}

// Range возвращает равномерное целое из [min, max). Вырожденный интервал
// (max <= min) возвращает min, чтобы пустые диапазоны не паниковали.
func (s *Service) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.src.Intn(max-min)
}

// Pick возвращает индекс из [0, n). Для n <= 0 возвращает 0.
func (s *Service) Pick(n int) int {
	return s.Range(0, n)
}

// Coin бросает монету: 0 или 1.
func (s *Service) Coin() int {
	return s.src.Intn(2)
}

// Float возвращает число из [0.0, 1.0). Нужен для процентных шансов дропа.
func (s *Service) Float() float64 {
	return s.src.Float64()
}

// Uint64 отдает сырые биты. Используется для детерминированных ID
// сущностей: при одном сиде все ID совпадают между запусками.
func (s *Service) Uint64() uint64 {
	return s.src.Uint64()
}
