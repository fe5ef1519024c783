package systems

import (
	"ancestor-server/internal/domain"
	"ancestor-server/pkg/dungeon"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewPos    domain.Position
	HasMoved  bool
	BlockedBy *domain.Entity // Если врезались в кого-то (для атаки)
	IsWall    bool           // Если уперлись в границу комнаты
}

// CalculateMove вычисляет шаг на (dx, dy). Не меняет состояние мира!
// Рамка внешних стен непроходима, блокирующая сущность возвращается
// вызывающему: он сам решает, атака это или отказ.
func CalculateMove(actor *domain.Entity, dx, dy int, l *dungeon.RoomLayout) MovementResult {
	target := actor.Pos.Add(dx, dy)
	res := MovementResult{NewPos: target}

	if !l.Walkable(target) {
		res.IsWall = true
		return res
	}

	if blocker := l.BlockerAt(target); blocker != nil && blocker.ID != actor.ID {
		res.BlockedBy = blocker
		return res
	}

	res.HasMoved = true
	return res
}

// SlideDirection возвращает следующее направление обхода препятствия
// по часовой стрелке: уперся вниз - пробуй вправо, вправо - вверх,
// вверх - влево, влево - вниз. Вызывающий ограничивает число попыток.
func SlideDirection(dx, dy int) (int, int) {
	switch {
	case dy < 0: // препятствие снизу
		return 1, 0
	case dx > 0: // препятствие справа
		return 0, 1
	case dy > 0: // препятствие сверху
		return -1, 0
	default: // препятствие слева
		return 0, -1
	}
}

// MaxSlideTries - лимит попыток обхода за один ход.
const MaxSlideTries = 4
