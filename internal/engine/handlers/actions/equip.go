package actions

import (
	"fmt"

	"ancestor-server/internal/domain"
	"ancestor-server/internal/engine/handlers"
)

// HandleEquip надевает или снимает снаряжение. Смена оружия бесплатна,
// возня с броней тратит ход: затянуть ремни посреди боя небыстро.
func HandleEquip(ctx handlers.Context, cmd domain.InternalCommand) handlers.Result {
	if cmd.ArmorSlot {
		if !ctx.Sheet.EquipArmor(cmd.Slot) {
			return handlers.Reject("Такой брони нет.")
		}
		return handlers.Result{
			Msg:       fmt.Sprintf("Броня: уровень %d.", ctx.Sheet.Armor),
			MsgType:   "INFO",
			TurnSpent: true,
		}
	}

	if !ctx.Sheet.EquipWeapon(cmd.Slot) {
		return handlers.Reject("Такого оружия нет.")
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Оружие: уровень %d.", ctx.Sheet.Weapon),
		MsgType: "INFO",
	}
}
