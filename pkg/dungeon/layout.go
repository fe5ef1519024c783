package dungeon

import "ancestor-server/internal/domain"

// Placement - один визуальный тайл (пол, внешняя стена, факел).
// Интерактивные объекты комнаты живут в Entities, не здесь.
type Placement struct {
	Kind string          `json:"kind"`
	Pos  domain.Position `json:"pos"`
}

// RoomLayout - результат генерации одной комнаты. Комната владеет
// всеми сущностями до выхода игрока; лист прогресса игрока сюда
// не входит и переживает комнату.
type RoomLayout struct {
	Floor   int  `json:"floor"`
	Room    int  `json:"room"`
	Columns int  `json:"columns"`
	Rows    int  `json:"rows"`
	Secret  bool `json:"secret"`
	Final   bool `json:"final"` // комната финального босса

	// Tiles - пол интерьера и рамка внешних стен (на -1 и columns/rows).
	Tiles []Placement `json:"tiles"`

	// Entities - стены, сундуки, враги, боссы, предметы, ловушки, выходы.
	// Порядок спавна врагов фиксирует порядок их ходов на всю комнату.
	Entities []*domain.Entity `json:"entities"`

	PlayerSpawn domain.Position `json:"playerSpawn"`

	// ExitPos - клетка выхода, nil для тайной и финальной комнат.
	ExitPos *domain.Position `json:"exitPos,omitempty"`

	// KeyPos - пьедестал ключа в комнатах с запертым выходом.
	// Сам ключ спавнит движок, когда падет последний враг.
	KeyPos *domain.Position `json:"keyPos,omitempty"`

	// extraFloor - проходимые клетки за пределами прямоугольника
	// интерьера: коридор тайной комнаты.
	extraFloor map[domain.Position]bool
}

// MarkWalkable объявляет клетку вне интерьера проходимой.
func (l *RoomLayout) MarkWalkable(pos domain.Position) {
	if l.extraFloor == nil {
		l.extraFloor = make(map[domain.Position]bool)
	}
	l.extraFloor[pos] = true
}

// Walkable - по клетке можно ходить: интерьер плюс коридоры.
func (l *RoomLayout) Walkable(pos domain.Position) bool {
	return l.InBounds(pos) || l.extraFloor[pos]
}

// Enemies возвращает живых врагов и боссов в порядке спавна.
func (l *RoomLayout) Enemies() []*domain.Entity {
	out := make([]*domain.Entity, 0, 8)
	for _, e := range l.Entities {
		if e.Type == domain.EntityTypeEnemy || e.Type == domain.EntityTypeBoss {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesAt возвращает активные сущности на клетке.
func (l *RoomLayout) EntitiesAt(pos domain.Position) []*domain.Entity {
	var out []*domain.Entity
	for _, e := range l.Entities {
		if e.Active && e.Pos == pos {
			out = append(out, e)
		}
	}
	return out
}

// BlockerAt возвращает первую блокирующую сущность на клетке, либо nil.
func (l *RoomLayout) BlockerAt(pos domain.Position) *domain.Entity {
	for _, e := range l.Entities {
		if e.Pos == pos && e.Blocks() {
			return e
		}
	}
	return nil
}

// InBounds - клетка внутри интерьера (внешняя стена не входит).
func (l *RoomLayout) InBounds(pos domain.Position) bool {
	return pos.X >= 0 && pos.X < l.Columns && pos.Y >= 0 && pos.Y < l.Rows
}

// AliveWalls считает активные внутренние стены. Нужен для
// скриптового события "тайный выход под последней стеной".
func (l *RoomLayout) AliveWalls() int {
	n := 0
	for _, e := range l.Entities {
		if e.Type == domain.EntityTypeWall && e.IsAlive() {
			n++
		}
	}
	return n
}

// AliveEnemies считает живых врагов и боссов.
func (l *RoomLayout) AliveEnemies() int {
	n := 0
	for _, e := range l.Enemies() {
		if e.IsAlive() {
			n++
		}
	}
	return n
}

// Add регистрирует сущность, заспавненную уже после генерации
// (подкрепления босса, ключ, бонусный сундук).
func (l *RoomLayout) Add(e *domain.Entity) {
	l.Entities = append(l.Entities, e)
}
