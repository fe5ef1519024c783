package dungeon

import "ancestor-server/internal/domain"

// CreatePlayer создает сущность игрока. Здоровье и боевые параметры
// живут в листе прогресса, сущность хранит только позицию и облик.
func CreatePlayer(id domain.EntityID, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypePlayer,
		Name:   "Потомок",
		Pos:    pos,
		Active: true,
		Render: &domain.RenderComponent{Symbol: "@", Color: "#4ADE80"},
	}
}
