package actions

import (
	"fmt"

	"ancestor-server/internal/domain"
	"ancestor-server/internal/engine/handlers"
)

var statNames = map[int]string{
	domain.StatStrength:     "Сила",
	domain.StatDexterity:    "Ловкость",
	domain.StatIntelligence: "Интеллект",
	domain.StatConstitution: "Телосложение",
}

// HandleLevelUp поднимает базовую характеристику за опыт.
// Прокачка происходит в меню и ход не тратит.
func HandleLevelUp(ctx handlers.Context, cmd domain.InternalCommand) handlers.Result {
	name, ok := statNames[cmd.Slot]
	if !ok {
		return handlers.Reject("Нет такой характеристики.")
	}
	if !ctx.Sheet.LevelUp(cmd.Slot) {
		return handlers.Reject("Недостаточно опыта.")
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s повышена!", name),
		MsgType: "INFO",
	}
}
