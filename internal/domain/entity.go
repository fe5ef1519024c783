package domain

// Entity - игровая сущность комнаты: враг, босс, стена, сундук,
// предмет, ловушка или выход. Состав определяется компонентами,
// отсутствующий компонент равен nil.
type Entity struct {
	ID   EntityID `json:"id"`
	Type string   `json:"type"`
	// Name - явное отображаемое имя. Имя всегда хранится здесь,
	// а не восстанавливается из типа.
	Name string   `json:"name"`
	Kind string   `json:"kind,omitempty"` // подвид: вид ловушки, вид выхода, вид предмета
	Pos  Position `json:"pos"`

	// Active=false - сущность деактивирована (труп убран, стена разрушена).
	Active bool `json:"active"`

	Render  *RenderComponent  `json:"render,omitempty"`
	Stats   *StatsComponent   `json:"stats,omitempty"`
	AI      *AIComponent      `json:"ai,omitempty"`
	Boss    *BossComponent    `json:"boss,omitempty"`
	Item    *ItemComponent    `json:"item,omitempty"`
	Trigger *TriggerComponent `json:"trigger,omitempty"`
}

// IsAlive - активная сущность с ненулевым HP.
func (e *Entity) IsAlive() bool {
	return e.Active && e.Stats != nil && !e.Stats.IsDead
}

// Blocks - занимает ли сущность клетку для движения.
// Предметы, ловушки и выходы проходимы.
func (e *Entity) Blocks() bool {
	if !e.Active {
		return false
	}
	switch e.Type {
	case EntityTypeItem, EntityTypeHazard, EntityTypeExit, EntityTypeProjectile:
		return false
	}
	if e.Stats != nil && e.Stats.IsDead {
		return false
	}
	return true
}

// Damageable - можно ли атаковать сущность.
func (e *Entity) Damageable() bool {
	return e.Active && e.Stats != nil && !e.Stats.IsDead
}
