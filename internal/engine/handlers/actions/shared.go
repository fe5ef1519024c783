package actions

import (
	"encoding/json"
	"fmt"

	"ancestor-server/internal/domain"
	"ancestor-server/internal/engine/handlers"
	"ancestor-server/internal/systems"
	"ancestor-server/pkg/dungeon"
)

// resolvePlayerHit бьет цель уроном игрока и доводит смерть до конца:
// опыт, дроп с трупа, сломанные стены и победа над финальным боссом.
func resolvePlayerHit(ctx handlers.Context, target *domain.Entity, damage int, out *handlers.Result) {
	atk := systems.ResolveAttack(ctx.Player.Name, damage, target)
	appendMsg(out, atk.Message, "COMBAT")
	out.Effects = append(out.Effects, atk.Effects...)

	if !atk.Died {
		return
	}

	switch target.Type {
	case domain.EntityTypeEnemy, domain.EntityTypeBoss:
		gained := ctx.Sheet.GainExp(target.Stats.ExpValue)
		appendMsg(out, fmt.Sprintf("Получено %d опыта.", gained), "INFO")
		for _, kind := range systems.RollKillDrop(ctx.Sheet, ctx.Rng) {
			ctx.Layout.Add(dungeon.NewPickup(kind, target.Pos, ctx.Rng))
		}
		if target.Boss != nil && target.Boss.IsFinal {
			out.Won = true
		}

	case domain.EntityTypeContainer:
		for _, kind := range systems.RollContainerDrop(ctx.Sheet, ctx.Rng) {
			ctx.Layout.Add(dungeon.NewPickup(kind, target.Pos, ctx.Rng))
		}

	case domain.EntityTypeWall:
		pos := target.Pos
		out.WallBreak = &pos
	}
}

// applyArrival прогоняет триггеры клетки, на которую встал игрок:
// предметы, ловушки и выходы.
func applyArrival(ctx handlers.Context, out *handlers.Result) {
	for _, e := range ctx.Layout.EntitiesAt(ctx.Player.Pos) {
		if e.Trigger == nil {
			continue
		}
		var ev domain.TriggerEvent
		if err := json.Unmarshal(e.Trigger.OnEnter, &ev); err != nil {
			continue
		}

		switch ev.Event {
		case domain.EventPickup:
			res := systems.ApplyPickup(ctx.Sheet, ctx.Drops, e.Kind, ctx.Rng)
			if res.Consumed {
				e.Active = false
			}
			appendMsg(out, res.Message, "INFO")
			if res.UnlockExit {
				unlockExit(ctx, out)
			}
			out.Died = out.Died || res.Died

		case domain.EventHazard:
			res := systems.ApplyHazard(ctx.Sheet, e.Kind)
			appendMsg(out, res.Message, "COMBAT")
			out.Slow = out.Slow || res.Slowed
			out.Died = out.Died || res.Died

		case domain.EventRoomExit:
			if e.Kind == domain.ExitKindLocked {
				appendMsg(out, "Дверь заперта. Нужен ключ.", "INFO")
				continue
			}
			out.Transition = handlers.TransitionNext

		case domain.EventSecretExit:
			out.Transition = handlers.TransitionSecret
		}
	}
}

// unlockExit превращает запертый выход комнаты в открытый.
func unlockExit(ctx handlers.Context, out *handlers.Result) {
	for _, e := range ctx.Layout.Entities {
		if e.Type == domain.EntityTypeExit && e.Kind == domain.ExitKindLocked {
			e.Kind = domain.ExitKindOpen
			e.Name = "Выход"
			if e.Render != nil {
				e.Render.Color = "#FDE047"
			}
			out.Effects = append(out.Effects, domain.Effect{
				Kind: domain.EffectUnlockExit,
				Pos:  e.Pos,
			})
			return
		}
	}
}

func appendMsg(out *handlers.Result, msg, msgType string) {
	if msg == "" {
		return
	}
	if out.Msg == "" {
		out.Msg = msg
		out.MsgType = msgType
		return
	}
	out.Msg += " " + msg
}
