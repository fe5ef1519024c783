package domain

// EntityID - уникальный идентификатор сущности в рамках сессии.
type EntityID string

func (id EntityID) String() string {
	return string(id)
}

// Position - целочисленная позиция на сетке комнаты.
// Интерьер комнаты занимает [0, columns) x [0, rows),
// внешняя стена стоит на -1 и на columns/rows.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add возвращает позицию, смещенную на (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ClampInto прижимает позицию к границам интерьера [0, cols) x [0, rows).
func (p Position) ClampInto(cols, rows int) Position {
	q := p
	if q.X < 0 {
		q.X = 0
	}
	if q.X > cols-1 {
		q.X = cols - 1
	}
	if q.Y < 0 {
		q.Y = 0
	}
	if q.Y > rows-1 {
		q.Y = rows - 1
	}
	return q
}

// Dist возвращает манхэттенское расстояние между позициями.
func (p Position) Dist(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Sign экспортирует знак смещения для систем движения.
func Sign(v int) int { return sign(v) }

// Abs экспортирует модуль для систем движения и AI.
func Abs(v int) int { return abs(v) }
