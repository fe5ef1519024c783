package actions

import (
	"ancestor-server/internal/domain"
	"ancestor-server/internal/engine/handlers"
	"ancestor-server/internal/systems"
)

// HandleMove - шаг игрока на одну клетку. Шаг в блокирующую сущность
// становится атакой, в рамку комнаты - отказом без траты хода.
func HandleMove(ctx handlers.Context, cmd domain.InternalCommand) handlers.Result {
	if cmd.DX == 0 && cmd.DY == 0 {
		return handlers.Reject("Куда идти?")
	}

	res := systems.CalculateMove(ctx.Player, cmd.DX, cmd.DY, ctx.Layout)

	if res.IsWall {
		return handlers.Reject("Путь прегражден.")
	}

	if res.BlockedBy != nil {
		out := handlers.Result{TurnSpent: true}
		resolvePlayerHit(ctx, res.BlockedBy, ctx.Sheet.Damage(), &out)
		return out
	}

	ctx.Player.Pos = res.NewPos
	out := handlers.Result{TurnSpent: true}
	applyArrival(ctx, &out)
	return out
}
