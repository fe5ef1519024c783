package dungeon

import (
	"encoding/json"

	"ancestor-server/internal/domain"
	"ancestor-server/pkg/rng"
	"ancestor-server/pkg/utils"
)

// EnemyTemplate определяет шаблон для создания врага или босса.
type EnemyTemplate struct {
	Name      string
	Kind      string
	Render    domain.RenderComponent
	HP        int
	Damage    int
	ExpValue  int
	FastMover bool // ходит каждый ход, без пропусков
	Boss      bool
	Final     bool
}

// Spawn создает сущность из шаблона на заданной позиции.
func (t EnemyTemplate) Spawn(pos domain.Position, r *rng.Service) *domain.Entity {
	entType := domain.EntityTypeEnemy
	if t.Boss {
		entType = domain.EntityTypeBoss
	}
	e := &domain.Entity{
		ID:     domain.EntityID(utils.DeterministicID(r, "e_")),
		Type:   entType,
		Name:   t.Name,
		Kind:   t.Kind,
		Pos:    pos,
		Active: true,
		Render: &domain.RenderComponent{
			Symbol: t.Render.Symbol,
			Color:  t.Render.Color,
		},
		Stats: &domain.StatsComponent{
			HP:       t.HP,
			MaxHP:    t.HP,
			Damage:   t.Damage,
			ExpValue: t.ExpValue,
		},
		AI: &domain.AIComponent{
			// Все враги начинают со взведенным пропуском:
			// первый вызов после спавна они стоят.
			SkipMove:  true,
			FastMover: t.FastMover,
		},
	}
	if t.Boss {
		e.Boss = &domain.BossComponent{IsFinal: t.Final}
	}
	return e
}

// --- ВРАГИ (ярусы 1..8) ---

// EnemyTiers - каталог врагов по ярусам. Порядок и есть сложность:
// ростер комнаты собирается срезами этого массива.
var EnemyTiers = []EnemyTemplate{
	{Name: "Гнилой Зомби", Kind: "ZOMBIE",
		Render: domain.RenderComponent{Symbol: "z", Color: "#84CC16"},
		HP:     8, Damage: 5, ExpValue: 10},
	{Name: "Скелет-Страж", Kind: "SKELETON",
		Render: domain.RenderComponent{Symbol: "s", Color: "#E7E5E4"},
		HP:     14, Damage: 8, ExpValue: 20},
	{Name: "Могильный Упырь", Kind: "GHOUL",
		Render: domain.RenderComponent{Symbol: "u", Color: "#A3A3A3"},
		HP:     22, Damage: 12, ExpValue: 35},
	{Name: "Свежеватель", Kind: "FLAYER",
		Render: domain.RenderComponent{Symbol: "f", Color: "#F472B6"},
		HP:     26, Damage: 15, ExpValue: 55, FastMover: true},
	{Name: "Кладбищенский Призрак", Kind: "WRAITH",
		Render: domain.RenderComponent{Symbol: "w", Color: "#94A3B8"},
		HP:     34, Damage: 19, ExpValue: 80},
	{Name: "Смещатель", Kind: "DISPLACER",
		Render: domain.RenderComponent{Symbol: "d", Color: "#A78BFA"},
		HP:     38, Damage: 23, ExpValue: 110, FastMover: true},
	{Name: "Костяной Голем", Kind: "GOLEM",
		Render: domain.RenderComponent{Symbol: "G", Color: "#78716C"},
		HP:     55, Damage: 28, ExpValue: 150},
	{Name: "Проклятый Лич", Kind: "LICH",
		Render: domain.RenderComponent{Symbol: "L", Color: "#38BDF8"},
		HP:     70, Damage: 34, ExpValue: 200},
}

// --- БОССЫ (по одному на этаж 1..8) ---

var BossTiers = []EnemyTemplate{
	{Name: "Вожак Упырей", Kind: "GHOUL_KING", Boss: true,
		Render: domain.RenderComponent{Symbol: "U", Color: "#DC2626"},
		HP:     60, Damage: 15, ExpValue: 100},
	{Name: "Костяной Колосс", Kind: "BONE_COLOSSUS", Boss: true,
		Render: domain.RenderComponent{Symbol: "C", Color: "#E7E5E4"},
		HP:     80, Damage: 20, ExpValue: 160},
	{Name: "Пожиратель Могил", Kind: "GRAVE_EATER", Boss: true,
		Render: domain.RenderComponent{Symbol: "E", Color: "#A16207"},
		HP:     100, Damage: 25, ExpValue: 230},
	{Name: "Мать Свежевателей", Kind: "FLAYER_MATRON", Boss: true,
		Render: domain.RenderComponent{Symbol: "M", Color: "#F472B6"},
		HP:     120, Damage: 30, ExpValue: 310},
	{Name: "Повелитель Призраков", Kind: "WRAITH_LORD", Boss: true,
		Render: domain.RenderComponent{Symbol: "W", Color: "#94A3B8"},
		HP:     140, Damage: 35, ExpValue: 400},
	{Name: "Теневой Смещатель", Kind: "SHADOW_DISPLACER", Boss: true,
		Render: domain.RenderComponent{Symbol: "D", Color: "#A78BFA"},
		HP:     160, Damage: 40, ExpValue: 500},
	{Name: "Голем-Усыпальница", Kind: "TOMB_GOLEM", Boss: true,
		Render: domain.RenderComponent{Symbol: "T", Color: "#78716C"},
		HP:     185, Damage: 45, ExpValue: 620},
	{Name: "Архилич", Kind: "ARCHLICH", Boss: true,
		Render: domain.RenderComponent{Symbol: "A", Color: "#38BDF8"},
		HP:     210, Damage: 50, ExpValue: 750},
}

// FinalBoss ждет в последней комнате девятого этажа.
var FinalBoss = EnemyTemplate{
	Name: "Прародитель", Kind: "ANCESTOR", Boss: true, Final: true,
	Render: domain.RenderComponent{Symbol: "@", Color: "#FACC15"},
	HP:     400, Damage: 60, ExpValue: 2000,
}

// enemyRoster собирает под-палитру врагов комнаты: 1-2 яруса
// вокруг номера этажа.
func enemyRoster(floor int) []EnemyTemplate {
	switch {
	case floor > len(EnemyTiers):
		return EnemyTiers[len(EnemyTiers)-1:]
	case floor < 3:
		return EnemyTiers[:floor]
	default:
		return EnemyTiers[floor-2 : floor]
	}
}

// RosterFor - публичный доступ к ростеру этажа. Подкрепления босса
// спавнятся движком из того же ростера, что и обычные враги.
func RosterFor(floor int) []EnemyTemplate {
	return enemyRoster(floor)
}

// bossTemplate выбирает босса этажа.
func bossTemplate(floor int, final bool) EnemyTemplate {
	switch {
	case final:
		return FinalBoss
	case floor > len(BossTiers):
		return BossTiers[len(BossTiers)-1]
	default:
		return BossTiers[floor-1]
	}
}

// --- ПРЕДМЕТЫ И ОБЪЕКТЫ ---

// healthCatalog - единый каталог "предметов здоровья" для случайной
// расстановки. Индексы от chestCatalogStart и выше - сундуки; именно
// из этого хвоста тянутся гарантированные контейнеры тайной комнаты.
var healthCatalog = []string{
	domain.PickupFood,
	domain.PickupSoda,
	domain.PickupMushroom,
	domain.PickupFood,
	domain.PickupSoda,
	domain.PickupStrPotion,
	domain.PickupEquipChest,
	domain.PickupPotionChest,
	domain.PickupSpecialChest,
}

const chestCatalogStart = 6

var pickupRender = map[string]domain.RenderComponent{
	domain.PickupFood:           {Symbol: "%", Color: "#FB923C"},
	domain.PickupSoda:           {Symbol: "!", Color: "#60A5FA"},
	domain.PickupMushroom:       {Symbol: ",", Color: "#8B5CF6"},
	domain.PickupStrPotion:      {Symbol: "!", Color: "#2563EB"},
	domain.PickupXPPotion:       {Symbol: "!", Color: "#FDE047"},
	domain.PickupHealthPlus:     {Symbol: "!", Color: "#F87171"},
	domain.PickupHealthPlusPlus: {Symbol: "!", Color: "#DC2626"},
	domain.PickupWeapon:         {Symbol: ")", Color: "#D4D4D8"},
	domain.PickupArmor:          {Symbol: "[", Color: "#A8A29E"},
	domain.PickupKey:            {Symbol: "k", Color: "#FACC15"},
	domain.PickupEquipChest:     {Symbol: "=", Color: "#B45309"},
	domain.PickupPotionChest:    {Symbol: "=", Color: "#7C3AED"},
	domain.PickupSpecialChest:   {Symbol: "=", Color: "#FACC15"},
}

var pickupNames = map[string]string{
	domain.PickupFood:           "Еда",
	domain.PickupSoda:           "Напиток",
	domain.PickupMushroom:       "Гнилой гриб",
	domain.PickupStrPotion:      "Зелье силы",
	domain.PickupXPPotion:       "Зелье опыта",
	domain.PickupHealthPlus:     "Зелье здоровья+",
	domain.PickupHealthPlusPlus: "Зелье здоровья++",
	domain.PickupWeapon:         "Оружие",
	domain.PickupArmor:          "Броня",
	domain.PickupKey:            "Ключ",
	domain.PickupEquipChest:     "Сундук со снаряжением",
	domain.PickupPotionChest:    "Сундук с зельями",
	domain.PickupSpecialChest:   "Особый сундук",
}

// NewPickup создает подбираемый предмет на полу.
func NewPickup(kind string, pos domain.Position, r *rng.Service) *domain.Entity {
	render := pickupRender[kind]
	trigger, _ := json.Marshal(domain.TriggerEvent{Event: domain.EventPickup})
	return &domain.Entity{
		ID:      domain.EntityID(utils.DeterministicID(r, "i_")),
		Type:    domain.EntityTypeItem,
		Name:    pickupNames[kind],
		Kind:    kind,
		Pos:     pos,
		Active:  true,
		Render:  &render,
		Item:    &domain.ItemComponent{Kind: kind},
		Trigger: &domain.TriggerComponent{OnEnter: trigger},
	}
}

// Живучесть препятствий.
const (
	innerWallHP = 4
	containerHP = 2
)

// NewInnerWall создает разрушаемую стену выбранного вида.
func NewInnerWall(kind string, pos domain.Position, r *rng.Service) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.DeterministicID(r, "w_")),
		Type:   domain.EntityTypeWall,
		Name:   "Стена",
		Kind:   kind,
		Pos:    pos,
		Active: true,
		Render: &domain.RenderComponent{Symbol: "#", Color: "#57534E"},
		Stats:  &domain.StatsComponent{HP: innerWallHP, MaxHP: innerWallHP},
	}
}

// NewContainer создает разбиваемый контейнер (бочку или ящик).
func NewContainer(pos domain.Position, r *rng.Service) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.DeterministicID(r, "c_")),
		Type:   domain.EntityTypeContainer,
		Name:   "Бочка",
		Pos:    pos,
		Active: true,
		Render: &domain.RenderComponent{Symbol: "0", Color: "#B45309"},
		Stats:  &domain.StatsComponent{HP: containerHP, MaxHP: containerHP},
	}
}

// NewHazard создает ловушку: шипы или лед.
func NewHazard(kind string, pos domain.Position, r *rng.Service) *domain.Entity {
	render := domain.RenderComponent{Symbol: "^", Color: "#9CA3AF"}
	name := "Шипы"
	if kind == domain.HazardIce {
		render = domain.RenderComponent{Symbol: "~", Color: "#7DD3FC"}
		name = "Лед"
	}
	trigger, _ := json.Marshal(domain.TriggerEvent{Event: domain.EventHazard})
	return &domain.Entity{
		ID:      domain.EntityID(utils.DeterministicID(r, "h_")),
		Type:    domain.EntityTypeHazard,
		Name:    name,
		Kind:    kind,
		Pos:     pos,
		Active:  true,
		Render:  &render,
		Trigger: &domain.TriggerComponent{OnEnter: trigger},
	}
}

// NewExit создает выход из комнаты.
func NewExit(kind string, pos domain.Position, r *rng.Service) *domain.Entity {
	event := domain.EventRoomExit
	render := domain.RenderComponent{Symbol: ">", Color: "#FDE047"}
	name := "Выход"
	switch kind {
	case domain.ExitKindLocked:
		render.Color = "#9CA3AF"
		name = "Запертый выход"
	case domain.ExitKindSecret:
		event = domain.EventSecretExit
		render.Color = "#A78BFA"
		name = "Тайный ход"
	}
	trigger, _ := json.Marshal(domain.TriggerEvent{Event: event})
	return &domain.Entity{
		ID:      domain.EntityID(utils.DeterministicID(r, "x_")),
		Type:    domain.EntityTypeExit,
		Name:    name,
		Kind:    kind,
		Pos:     pos,
		Active:  true,
		Render:  &render,
		Trigger: &domain.TriggerComponent{OnEnter: trigger},
	}
}

// NewHermit создает отшельника тайной комнаты.
func NewHermit(pos domain.Position, r *rng.Service) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.DeterministicID(r, "n_")),
		Type:   domain.EntityTypeNPC,
		Name:   "Добрый отшельник",
		Kind:   "HERMIT",
		Pos:    pos,
		Active: true,
		Render: &domain.RenderComponent{Symbol: "H", Color: "#FCD34D"},
	}
}
