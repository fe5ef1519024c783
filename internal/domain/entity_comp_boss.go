package domain

// Пороги фаз босса в процентах от максимального HP.
// Каждый порог срабатывает не более одного раза.
var bossPhaseThresholds = [3]int{76, 51, 26}

// AdvancePhase проверяет пороги HP и продвигает фазу босса.
// Возвращает число подкреплений для спавна (0 - порог не пересечен).
// Фаза растет строго монотонно: порог выше текущей фазы не
// срабатывает повторно, даже если босса вылечили бы обратно.
func (b *BossComponent) AdvancePhase(stats *StatsComponent) int {
	if stats.IsDead || stats.MaxHP <= 0 {
		return 0
	}

	spawned := 0
	pct := stats.HP * 100 / stats.MaxHP
	for b.Phase < len(bossPhaseThresholds) && pct < bossPhaseThresholds[b.Phase] {
		b.Phase++
		// Каждая следующая фаза зовет на одно подкрепление больше.
		spawned += b.Phase
	}
	return spawned
}
