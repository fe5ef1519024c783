package domain

// Токены эффектов для презентационного слоя. Ядро не ждет их
// завершения по часам: оно эмитит токен, а презентация сама
// решает, как его проиграть.
const (
	EffectDeathAnim     = "PLAY_DEATH_ANIM"
	EffectHit           = "PLAY_HIT"
	EffectReinforcement = "SPAWN_REINFORCEMENTS"
	EffectKeySpawn      = "SPAWN_KEY"
	EffectSecretExit    = "SPAWN_SECRET_EXIT"
	EffectBonusChest    = "SPAWN_BONUS_CHEST"
	EffectCastTelegraph = "CAST_TELEGRAPH"
	EffectSpell         = "CAST_SPELL"
	EffectUnlockExit    = "UNLOCK_EXIT"
	EffectGameOver      = "GAME_OVER"
	EffectGameWon       = "GAME_WON"
	EffectRejected      = "ACTION_REJECTED"
)

// Effect - одно событие для презентационного слоя.
type Effect struct {
	Kind   string   `json:"kind"`
	Entity EntityID `json:"entity,omitempty"`
	Pos    Position `json:"pos,omitempty"`
	Value  int      `json:"value,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// События триггеров клеток (TriggerComponent.OnEnter).
const (
	EventRoomExit   = "ROOM_EXIT"
	EventSecretExit = "SECRET_EXIT"
	EventPickup     = "PICKUP"
	EventHazard     = "HAZARD"
)

// TriggerEvent - распакованное содержимое OnEnter.
type TriggerEvent struct {
	Event string `json:"event"`
}
