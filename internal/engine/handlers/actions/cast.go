package actions

import (
	"ancestor-server/internal/domain"
	"ancestor-server/internal/engine/handlers"
	"ancestor-server/internal/systems"
)

// HandleCast применяет особый предмет: сферы бьют по площади,
// мантия телепортирует. Тяжелые касты стоят двух ходов.
func HandleCast(ctx handlers.Context, cmd domain.InternalCommand) handlers.Result {
	spell := systems.ResolvePlayerCast(ctx.Sheet, cmd.Target)
	if spell == nil {
		return handlers.Reject("Нечем колдовать.")
	}

	if spell.Teleport {
		if !ctx.Layout.Walkable(cmd.Target) || ctx.Layout.BlockerAt(cmd.Target) != nil {
			return handlers.Reject("Туда не перенестись.")
		}
		ctx.Player.Pos = cmd.Target
		out := handlers.Result{
			Msg:       "Мантия переносит вас сквозь тьму.",
			MsgType:   "INFO",
			TurnSpent: true,
			Slow:      spell.Slows,
			Effects: []domain.Effect{{
				Kind:   domain.EffectSpell,
				Entity: ctx.Player.ID,
				Pos:    cmd.Target,
			}},
		}
		applyArrival(ctx, &out)
		return out
	}

	out := handlers.Result{
		TurnSpent: true,
		Slow:      spell.Slows,
		Effects: []domain.Effect{{
			Kind:   domain.EffectSpell,
			Entity: ctx.Player.ID,
			Pos:    cmd.Target,
			Text:   spell.DamageKind,
		}},
	}

	dmg := systems.ProjectileDamage(spell.DamageKind, ctx.Sheet.Intelligence)
	for _, cell := range spell.Cells {
		for _, e := range ctx.Layout.EntitiesAt(cell) {
			if !e.Damageable() || !e.IsAlive() {
				continue
			}
			resolvePlayerHit(ctx, e, dmg, &out)
		}
	}
	return out
}
