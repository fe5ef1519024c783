package systems

import (
	"testing"

	"ancestor-server/internal/domain"
	"ancestor-server/pkg/dungeon"
)

func testRoom() *dungeon.RoomLayout {
	return &dungeon.RoomLayout{Columns: 8, Rows: 8}
}

func TestCalculateMoveFree(t *testing.T) {
	l := testRoom()
	actor := &domain.Entity{ID: "p", Pos: domain.Position{X: 3, Y: 3}, Active: true}
	res := CalculateMove(actor, 1, 0, l)
	if !res.HasMoved || res.NewPos != (domain.Position{X: 4, Y: 3}) {
		t.Errorf("free step failed: %+v", res)
	}
}

func TestCalculateMoveBorder(t *testing.T) {
	l := testRoom()
	actor := &domain.Entity{ID: "p", Pos: domain.Position{X: 0, Y: 0}, Active: true}
	res := CalculateMove(actor, -1, 0, l)
	if !res.IsWall || res.HasMoved {
		t.Errorf("outer wall must block: %+v", res)
	}
}

func TestCalculateMoveBlockedByEntity(t *testing.T) {
	l := testRoom()
	wall := &domain.Entity{ID: "w", Type: domain.EntityTypeWall, Active: true,
		Pos:   domain.Position{X: 4, Y: 3},
		Stats: &domain.StatsComponent{HP: 4, MaxHP: 4}}
	l.Add(wall)
	actor := &domain.Entity{ID: "p", Pos: domain.Position{X: 3, Y: 3}, Active: true}
	res := CalculateMove(actor, 1, 0, l)
	if res.HasMoved || res.BlockedBy != wall {
		t.Errorf("wall must block: %+v", res)
	}

	// Разрушенная стена пропускает.
	wall.Stats.TakeDamage(10)
	wall.Active = false
	res = CalculateMove(actor, 1, 0, l)
	if !res.HasMoved {
		t.Error("broken wall must not block")
	}
}

func TestCalculateMovePassesOverItems(t *testing.T) {
	l := testRoom()
	l.Add(&domain.Entity{ID: "i", Type: domain.EntityTypeItem, Active: true,
		Pos: domain.Position{X: 4, Y: 3}})
	actor := &domain.Entity{ID: "p", Pos: domain.Position{X: 3, Y: 3}, Active: true}
	res := CalculateMove(actor, 1, 0, l)
	if !res.HasMoved {
		t.Error("items must be walkable")
	}
}

func TestSlideDirectionClockwise(t *testing.T) {
	cases := []struct {
		dx, dy, wantDX, wantDY int
	}{
		{0, -1, 1, 0},  // снизу -> вправо
		{1, 0, 0, 1},   // справа -> вверх
		{0, 1, -1, 0},  // сверху -> влево
		{-1, 0, 0, -1}, // слева -> вниз
	}
	for _, c := range cases {
		dx, dy := SlideDirection(c.dx, c.dy)
		if dx != c.wantDX || dy != c.wantDY {
			t.Errorf("SlideDirection(%d,%d) = (%d,%d), want (%d,%d)",
				c.dx, c.dy, dx, dy, c.wantDX, c.wantDY)
		}
	}

	// Полный оборот возвращается к исходному направлению за 4 шага.
	dx, dy := 0, -1
	for i := 0; i < MaxSlideTries; i++ {
		dx, dy = SlideDirection(dx, dy)
	}
	if dx != 0 || dy != -1 {
		t.Errorf("four slides must complete the circle, got (%d,%d)", dx, dy)
	}
}
