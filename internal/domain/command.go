package domain

// InternalCommand - команда игрока, уже распарсенная транспортом
// и положенная в канал движка.
type InternalCommand struct {
	Token  string
	Action ActionType
	// DX, DY - шаг для MOVE (ровно одна ось, значение -1/0/1).
	DX, DY int
	// Slot - слот инвентаря для USE, идентификатор экипировки для EQUIP,
	// номер стата для LEVELUP.
	Slot int
	// Target - клетка цели для CAST.
	Target Position
	// ArmorSlot=true значит EQUIP относится к броне, иначе к оружию.
	ArmorSlot bool
}
