package dungeon

import (
	"errors"

	"ancestor-server/internal/domain"
	"ancestor-server/pkg/rng"
)

// ErrNoFreeCells - генерация запросила больше объектов, чем осталось
// свободных клеток. Это логическая ошибка и она должна всплыть громко,
// а не свернуться в бесконечный цикл.
var ErrNoFreeCells = errors.New("dungeon: free cell pool exhausted")

// cellPool - пул свободных клеток для случайной расстановки.
// Клетки тянутся БЕЗ возврата, по одной на каждый объект.
// Пул покрывает [1, columns-1) x [1, rows-1): кромка интерьера
// остается свободной, чтобы спавн игрока и выход не перекрывались.
type cellPool struct {
	cells []domain.Position
}

func newCellPool(columns, rows int) *cellPool {
	p := &cellPool{}
	for x := 1; x < columns-1; x++ {
		for y := 1; y < rows-1; y++ {
			p.cells = append(p.cells, domain.Position{X: x, Y: y})
		}
	}
	return p
}

// Draw выдает случайную свободную клетку и исключает ее из пула.
func (p *cellPool) Draw(r *rng.Service) (domain.Position, error) {
	if len(p.cells) == 0 {
		return domain.Position{}, ErrNoFreeCells
	}
	i := r.Range(0, len(p.cells))
	pos := p.cells[i]
	p.cells = append(p.cells[:i], p.cells[i+1:]...)
	return pos, nil
}

// Remaining - сколько клеток осталось в пуле.
func (p *cellPool) Remaining() int {
	return len(p.cells)
}
