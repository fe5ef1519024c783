package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" комнаты: подземелья крошечные,
// поэтому туман войны не нужен и клиент всегда видит всю доску.
// Отправляется после каждого разрешенного хода.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Tick текущий номер хода в сессии. Увеличивается с каждым ходом.
	Tick int `json:"tick"`

	// Floor и Room - текущий адрес комнаты в подземелье.
	Floor int `json:"floor"`
	Room  int `json:"room"`

	// Secret true, если игрок находится в потайной комнате.
	Secret bool `json:"secret,omitempty"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// PlayerTurn true, когда сервер готов принимать ввод.
	// Ложь, пока враги еще доигрывают свою фазу или партия окончена.
	PlayerTurn bool `json:"playerTurn"`

	// GameOver и GameWon - терминальные флаги партии.
	GameOver bool `json:"gameOver,omitempty"`
	GameWon  bool `json:"gameWon,omitempty"`

	// Grid метаданные о размере доски текущей комнаты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех тайлов доски, включая внешние стены.
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех сущностей комнаты.
	Entities []EntityView `json:"entities,omitempty"`

	// Sheet лист персонажа клиента.
	Sheet *SheetView `json:"sheet,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`

	// Effects токены анимаций для клиента (смерти, касты, ключ).
	Effects []EffectView `json:"effects,omitempty"`
}

// GridMeta содержит размеры доски, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO (Data Transfer Object) для одного тайла доски.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol - имя спрайта тайла (e.g. "OuterWall3", "Floor5").
	Symbol string `json:"symbol"`

	// IsWall true для внешней стены, через которую нельзя пройти.
	IsWall bool `json:"isWall"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, ENEMY, BOSS, WALL, ITEM, HAZARD, EXIT, NPC
	Name string `json:"name,omitempty"`
	Kind string `json:"kind,omitempty"` // уточнение типа: FOOD, SPIKES, SODA...

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats характеристики сущности. Поле может отсутствовать (omitempty)
	// у предметов и ловушек, у которых нет здоровья.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для боевых характеристик сущности.
type StatsView struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	Damage int  `json:"damage,omitempty"`
	IsDead bool `json:"isDead"`
}

// SheetView - лист персонажа: базовые статы, производные значения
// и счетчики инвентаря. Клиент ничего не вычисляет сам.
type SheetView struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Constitution int `json:"constitution"`
	TempStr      int `json:"tempStr,omitempty"`

	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	Exp   int `json:"exp"`

	// Derived - посчитанные сервером значения, чистая витрина.
	Damage     int     `json:"damage"`
	ArmorBonus int     `json:"armorBonus"`
	Find       int     `json:"find"`
	XPMod      float64 `json:"xpMod"`

	// Inventory счетчики по слотам в фиксированном порядке:
	// напитки, оружие, зелья силы, броня, зелья опыта,
	// здоровье+, здоровье++, особый предмет.
	Inventory []int `json:"inventory"`

	// Weapon и Armor - экипированные уровни (0 = ничего).
	Weapon int `json:"weapon"`
	Armor  int `json:"armor"`

	Dead bool `json:"dead,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// EffectView - токен события для клиентских анимаций. Сервер не ждет
// анимации: клиент проигрывает их сам в своем темпе.
type EffectView struct {
	Kind   string `json:"kind"`
	Entity string `json:"entity,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Value  int    `json:"value,omitempty"`
	Text   string `json:"text,omitempty"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token идентификатор сессии клиента. Обязателен для "INIT";
	// из него же выводится зерно генератора партии.
	Token string `json:"token,omitempty"`

	// Action название действия: INIT, MOVE, USE, EQUIP, LEVELUP, CAST, WAIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// SlotPayload используется для USE (номер слота инвентаря)
// и LEVELUP (номер базовой характеристики).
type SlotPayload struct {
	Slot int `json:"slot"`
}

// EquipPayload используется для EQUIP. Нулевое значение оставляет
// соответствующий слот как есть, повтор текущего уровня снимает вещь.
type EquipPayload struct {
	Weapon int `json:"weapon,omitempty"`
	Armor  int `json:"armor,omitempty"`
}

// PositionPayload используется для CAST - точка прицеливания на доске.
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}
