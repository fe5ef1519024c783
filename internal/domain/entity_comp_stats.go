package domain

// TakeDamage наносит урон. Возвращает true, если цель погибла
// именно от этого вызова. По мертвой цели повторно не срабатывает.
func (s *StatsComponent) TakeDamage(amount int) bool {
	if s.IsDead {
		return false
	}

	if amount < 0 {
		amount = 0
	}

	s.HP -= amount

	if s.HP <= 0 {
		s.HP = 0
		s.IsDead = true
		return true
	}
	return false
}

// Heal лечит сущность
func (s *StatsComponent) Heal(amount int) {
	if s.IsDead {
		return // Не лечим трупы! Нет некромантии!
	}
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}

// HPFraction возвращает долю оставшегося здоровья [0.0, 1.0].
func (s *StatsComponent) HPFraction() float64 {
	if s.MaxHP <= 0 || s.HP <= 0 {
		return 0
	}
	return float64(s.HP) / float64(s.MaxHP)
}
