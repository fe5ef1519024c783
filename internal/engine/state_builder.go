package engine

import (
	"fmt"
	"time"

	"ancestor-server/internal/domain"
	"ancestor-server/pkg/api"
)

// BuildState собирает полный слепок сессии для клиента. Комнаты
// крошечные, поэтому никакого тумана войны: доска уходит целиком.
// Вызов сбрасывает буферы логов и эффектов сессии.
func BuildState(s *Session) *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:       "UPDATE",
		Tick:       s.Tick,
		Floor:      s.Floor,
		Room:       s.Room,
		Secret:     s.Secret,
		MyEntityID: s.Player.ID.String(),
		PlayerTurn: !s.Finished(),
		GameOver:   s.GameOver,
		GameWon:    s.GameWon,
		Grid: &api.GridMeta{
			Width:  s.Layout.Columns + 2,
			Height: s.Layout.Rows + 2,
		},
		Sheet: buildSheetView(s.Sheet),
	}

	for _, t := range s.Layout.Tiles {
		resp.Map = append(resp.Map, api.TileView{
			X:      t.Pos.X,
			Y:      t.Pos.Y,
			Symbol: t.Kind,
			IsWall: !s.Layout.Walkable(t.Pos),
		})
	}

	resp.Entities = append(resp.Entities, toEntityView(s.Player))
	if s.Player.Stats == nil {
		// Здоровье игрока живет в листе, не в сущности.
		resp.Entities[0].Stats = &api.StatsView{
			HP:     s.Sheet.HP,
			MaxHP:  s.Sheet.MaxHP(),
			IsDead: s.Sheet.Dead,
		}
	}

	for _, e := range s.Layout.Entities {
		if !e.Active {
			continue
		}
		resp.Entities = append(resp.Entities, toEntityView(e))
	}

	entries, effects := s.FlushOutput()
	for i, le := range entries {
		resp.Logs = append(resp.Logs, api.LogEntry{
			ID:        fmt.Sprintf("%d_%d", time.Now().UnixNano(), i),
			Text:      le.Text,
			Type:      le.Type,
			Timestamp: le.Timestamp,
		})
	}
	for _, ef := range effects {
		resp.Effects = append(resp.Effects, api.EffectView{
			Kind:   ef.Kind,
			Entity: ef.Entity.String(),
			X:      ef.Pos.X,
			Y:      ef.Pos.Y,
			Value:  ef.Value,
			Text:   ef.Text,
		})
	}

	return resp
}

func buildSheetView(p *domain.PlayerSheet) *api.SheetView {
	inv := make([]int, domain.InventorySlots)
	copy(inv, p.Inventory[:])

	return &api.SheetView{
		Strength:     p.Strength,
		Dexterity:    p.Dexterity,
		Intelligence: p.Intelligence,
		Constitution: p.Constitution,
		TempStr:      p.TempStr,
		HP:           p.HP,
		MaxHP:        p.MaxHP(),
		Exp:          p.Exp,
		Damage:       p.Damage(),
		ArmorBonus:   p.ArmorBonus(),
		Find:         p.Find(),
		XPMod:        p.XPMod(),
		Inventory:    inv,
		Weapon:       p.Weapon,
		Armor:        p.Armor,
		Dead:         p.Dead,
	}
}

func toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   e.ID.String(),
		Type: e.Type,
		Name: e.Name,
		Kind: e.Kind,
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y

	if e.Render != nil {
		view.Render.Symbol = e.Render.Symbol
		view.Render.Color = e.Render.Color
	} else {
		view.Render.Symbol = "?"
		view.Render.Color = "#fff"
	}

	if e.Stats != nil {
		view.Stats = &api.StatsView{
			HP:     e.Stats.HP,
			MaxHP:  e.Stats.MaxHP,
			Damage: e.Stats.Damage,
			IsDead: e.Stats.IsDead,
		}
	}

	return view
}
