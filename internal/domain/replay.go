package domain

// ReplayAction - одна команда игрока в записи партии. Все поля
// фиксированного размера: формат файла не тащит JSON.
type ReplayAction struct {
	Tick      int
	Action    ActionType
	DX, DY    int
	Slot      int
	Target    Position
	ArmorSlot bool
}

// ReplaySession - запись одной партии: зерно плюс поток команд.
// Этого достаточно для побитового воспроизведения: вся случайность
// партии детерминирована зерном.
type ReplaySession struct {
	Token     string
	Seed      int64
	Timestamp int64
	Actions   []ReplayAction
}

// RecordCommand добавляет команду в запись. INIT не записывается:
// воспроизведение само создает сессию.
func (rs *ReplaySession) RecordCommand(tick int, cmd InternalCommand) {
	if cmd.Action == ActionInit {
		return
	}
	rs.Actions = append(rs.Actions, ReplayAction{
		Tick:      tick,
		Action:    cmd.Action,
		DX:        cmd.DX,
		DY:        cmd.DY,
		Slot:      cmd.Slot,
		Target:    cmd.Target,
		ArmorSlot: cmd.ArmorSlot,
	})
}

// Command восстанавливает команду движка из записи.
func (a ReplayAction) Command(token string) InternalCommand {
	return InternalCommand{
		Token:     token,
		Action:    a.Action,
		DX:        a.DX,
		DY:        a.DY,
		Slot:      a.Slot,
		Target:    a.Target,
		ArmorSlot: a.ArmorSlot,
	}
}
