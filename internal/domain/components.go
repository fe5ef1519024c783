package domain

import "encoding/json"

// --- КОМПОНЕНТЫ ---

// RenderComponent - Визуализация (Клиент)
type RenderComponent struct {
	Symbol string `json:"symbol"` // Символ отображения (g-гоблин, >-выход)
	Color  string `json:"color"`
}

// StatsComponent - Очки здоровья и боевые параметры
type StatsComponent struct {
	HP       int  `json:"hp"`
	MaxHP    int  `json:"maxHp"`
	Damage   int  `json:"damage"`   // урон по игроку за удар
	Armor    int  `json:"armor"`    // вычитается из входящего урона
	ExpValue int  `json:"expValue"` // награда за убийство
	IsDead   bool `json:"isDead"`
}

// AIComponent - Поведение врага в пошаговом цикле.
// SkipMove реализует шаг через ход: взведен - враг пропускает вызов.
type AIComponent struct {
	SkipMove  bool `json:"skipMove"`
	TurnCount int  `json:"turnCount"` // пропуски против "быстрого" игрока
	FastMover bool `json:"fastMover"` // Flayer и Displacer ходят каждый ход
}

// BossComponent - Фазы босса и цикл каста заклинаний.
type BossComponent struct {
	// Phase растет монотонно 0 -> 3, по одному разу на порог HP.
	Phase int `json:"phase"`
	// Casting=true значит цель захвачена, на следующем ходу будет каст.
	Casting     bool     `json:"casting"`
	CastTarget  Position `json:"castTarget"`
	SpellChoice int      `json:"spellChoice"` // 0 - осколки льда, 1 - файербол
	IsFinal     bool     `json:"isFinal"`     // смерть завершает сессию победой
}

// ItemComponent - Предмет, лежащий на полу.
type ItemComponent struct {
	Kind string `json:"kind"` // PickupFood, PickupSoda, ...
}

// TriggerComponent описывает событие, срабатывающее при входе в клетку.
// Например: {"event": "ROOM_EXIT"} или {"event": "SECRET_EXIT"}.
type TriggerComponent struct {
	OnEnter json.RawMessage `json:"onEnter,omitempty"`
}
