package domain

// Типы сущностей
const (
	EntityTypePlayer     = "PLAYER"
	EntityTypeEnemy      = "ENEMY"
	EntityTypeBoss       = "BOSS"
	EntityTypeWall       = "WALL"      // разрушаемая внутренняя стена
	EntityTypeContainer  = "CONTAINER" // сундуки и бочки
	EntityTypeItem       = "ITEM"      // подбираемый предмет на полу
	EntityTypeHazard     = "HAZARD"    // шипы и лед
	EntityTypeExit       = "EXIT"
	EntityTypeNPC        = "NPC"
	EntityTypeProjectile = "PROJECTILE"
)

// Виды ловушек
const (
	HazardSpikes = "SPIKES"
	HazardIce    = "ICE"
)

// Виды выходов
const (
	ExitKindOpen   = "OPEN"
	ExitKindLocked = "LOCKED" // каждая 10-я комната, открывается ключом
	ExitKindSecret = "SECRET" // проход в тайную комнату
)

// Слоты инвентаря (8 параллельных счетчиков, как в оригинальной сессии)
const (
	SlotDrinks = iota
	SlotWeapons
	SlotStrPotions
	SlotArmor
	SlotXPPotions
	SlotHealthPlus
	SlotHealthPlusPlus
	SlotSpecial // тут лежит ID особого предмета, а не количество
	InventorySlots
)

// Особые предметы (значение слота SlotSpecial)
const (
	SpecialNone    = 0
	SpecialFireOrb = 1
	SpecialIceOrb  = 2
	SpecialRobes   = 3
	SpecialCloak   = 4
)

// Идентификаторы экипировки. 1..8 - обычные ярусы,
// 9 и 10 - особые предметы без собственного бонуса.
const (
	EquipNone      = 0
	WeaponFireOrb  = 9
	WeaponIceOrb   = 10
	ArmorRobes     = 9
	ArmorCloak     = 10
	EquipTierCount = 10
)

// Урон окружения
const (
	SpikeDamage       = 25
	FireballBase      = 150 // урон по игроку: FireballBase - int*10
	IceShardsBase     = 100 // урон по игроку: IceShardsBase - int*10
	FireballPerInt    = 10  // урон файербола по сущностям: int*10
	IceShardsPerInt   = 5   // урон осколков по сущностям: int*5
	ConLevelUpHeal    = 20
	PointsPerDrink    = 10
	PointsPerFood     = 5
	MushroomDamage    = 5
	HealthPlusHeal    = 25
	HealthPlusPlusHeal = 50
)

// Пределы
const (
	MaxCarriedWeapons = 8
	MaxCarriedArmor   = 8
	FinalFloor        = 9
	RoomsPerFloor     = 10
)

// Виды подбираемых предметов и сундуков (ItemComponent.Kind)
const (
	PickupFood           = "FOOD"
	PickupSoda           = "SODA"
	PickupMushroom       = "MUSHROOM"
	PickupStrPotion      = "STR_POTION"
	PickupXPPotion       = "XP_POTION"
	PickupHealthPlus     = "HEALTH_PLUS"
	PickupHealthPlusPlus = "HEALTH_PLUS_PLUS"
	PickupWeapon         = "WEAPON"
	PickupArmor          = "ARMOR"
	PickupKey            = "KEY"
	PickupEquipChest     = "EQUIP_CHEST"
	PickupPotionChest    = "POTION_CHEST"
	PickupSpecialChest   = "SPECIAL_CHEST"
)

// Причины потери здоровья (для журнала боя)
const (
	CauseSpikes    = "spikes"
	CauseFireball  = "fireball"
	CauseIceShards = "ice shards"
	CauseMushroom  = "mushroom"
)
