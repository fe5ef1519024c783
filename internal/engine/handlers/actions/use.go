package actions

import (
	"ancestor-server/internal/domain"
	"ancestor-server/internal/engine/handlers"
)

var slotNames = map[int]string{
	domain.SlotDrinks:         "лечебный напиток",
	domain.SlotStrPotions:     "зелье силы",
	domain.SlotXPPotions:      "зелье опыта",
	domain.SlotHealthPlus:     "зелье здоровья+",
	domain.SlotHealthPlusPlus: "зелье здоровья++",
}

// HandleUse - выпить зелье из слота инвентаря. Лечение при полном
// здоровье и пустые слоты отклоняются без траты хода.
func HandleUse(ctx handlers.Context, cmd domain.InternalCommand) handlers.Result {
	if !ctx.Sheet.UseItem(cmd.Slot) {
		return handlers.Reject("Это сейчас не использовать.")
	}

	name := slotNames[cmd.Slot]
	return handlers.Result{
		Msg:       "Использовано: " + name + ".",
		MsgType:   "INFO",
		TurnSpent: true,
	}
}
