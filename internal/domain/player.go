package domain

import "math"

// Статы игрока для LevelUp.
const (
	StatStrength = iota
	StatDexterity
	StatIntelligence
	StatConstitution
)

// Таблицы бонусов экипировки, индекс - идентификатор 1..10.
// Ярусы 9 и 10 заняты особыми предметами и не дают бонуса.
var weaponDamageTable = [EquipTierCount + 1]int{0, 1, 3, 6, 10, 15, 21, 28, 36, 0, 0}
var armorBonusTable = [EquipTierCount + 1]int{0, 1, 3, 6, 10, 15, 21, 28, 36, 0, 0}

// PlayerSheet - сессионная запись прогресса игрока. Переживает
// переходы между комнатами; сама комната владеет всем остальным.
type PlayerSheet struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Constitution int `json:"constitution"`

	// TempStr - временная сила от зелий. Утекает по одному пункту
	// в конец каждого хода игрока, полностью - при выходе из комнаты.
	TempStr int `json:"tempStr"`

	HP       int `json:"hp"`
	Exp      int `json:"exp"`
	ExpSpent int `json:"expSpent"` // количество прокачек, не очки

	// Inventory - 8 параллельных счетчиков. SlotSpecial хранит
	// идентификатор особого предмета, а не количество.
	Inventory [InventorySlots]int `json:"inventory"`

	// Экипированные ярусы, 0 - пусто.
	Weapon int `json:"weapon"`
	Armor  int `json:"armor"`

	Dead bool `json:"dead"`
}

// NewPlayerSheet создает стартовую запись: все статы по единице,
// 50 HP и один нож в инвентаре.
func NewPlayerSheet() *PlayerSheet {
	p := &PlayerSheet{
		Strength:     1,
		Dexterity:    1,
		Intelligence: 1,
		Constitution: 1,
	}
	p.Inventory[SlotWeapons] = 1
	p.HP = p.MaxHP()
	return p
}

// --- Производные характеристики ---

func (p *PlayerSheet) WeaponDamage() int {
	if p.Weapon < 1 || p.Weapon > EquipTierCount {
		return 0
	}
	return weaponDamageTable[p.Weapon]
}

func (p *PlayerSheet) ArmorBonus() int {
	if p.Armor < 1 || p.Armor > EquipTierCount {
		return 0
	}
	return armorBonusTable[p.Armor]
}

// Damage - урон за удар: сила плюс урон оружия.
func (p *PlayerSheet) Damage() int {
	return p.Strength + p.WeaponDamage()
}

// Find - навык поиска, влияет на броски дропа.
func (p *PlayerSheet) Find() int {
	return p.Dexterity * 10
}

// XPMod - множитель получаемого опыта.
func (p *PlayerSheet) XPMod() float64 {
	return 1.0 + 0.01*float64(p.Intelligence-1)
}

// MaxHP - 50 базовых плюс 10 за каждый пункт телосложения сверх первого.
func (p *PlayerSheet) MaxHP() int {
	return 50 + 10*(p.Constitution-1)
}

// Quick - плащ дает дополнительное действие, пока надет.
func (p *PlayerSheet) Quick() bool {
	return p.Armor == ArmorCloak
}

// --- Операции ---

// GainExp начисляет опыт с учетом множителя интеллекта.
// 0.01 перед округлением тянет ровно половину вверх.
func (p *PlayerSheet) GainExp(amount int) int {
	gained := int(math.Round(float64(amount)*p.XPMod() + 0.01))
	p.Exp += gained
	return gained
}

// LoseHealth снимает здоровье. Отрицательный урон обнуляется,
// лечиться "отрицательным уроном" нельзя. Возвращает true, если
// игрок погиб именно от этого вызова.
func (p *PlayerSheet) LoseHealth(amount int) bool {
	if p.Dead {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	p.HP -= amount
	if p.HP <= 0 {
		p.HP = 0
		p.Dead = true
		return true
	}
	return false
}

// GainHealth лечит до максимума. Мертвого игрока не лечит.
func (p *PlayerSheet) GainHealth(amount int) {
	if p.Dead {
		return
	}
	p.HP += amount
	if max := p.MaxHP(); p.HP > max {
		p.HP = max
	}
}

// LevelUp пытается поднять стат. Стоимость равна текущему значению
// стата, умноженному на 100. При нехватке опыта состояние не
// меняется и возвращается false (отказ, не ошибка).
func (p *PlayerSheet) LevelUp(stat int) bool {
	var value *int
	switch stat {
	case StatStrength:
		value = &p.Strength
	case StatDexterity:
		value = &p.Dexterity
	case StatIntelligence:
		value = &p.Intelligence
	case StatConstitution:
		value = &p.Constitution
	default:
		return false
	}

	cost := *value * 100
	if p.Exp < cost {
		return false
	}

	p.Exp -= cost
	*value++
	p.ExpSpent++

	if stat == StatConstitution {
		p.GainHealth(ConLevelUpHeal)
	}
	return true
}

// EquipWeapon экипирует оружие с семантикой переключателя:
// повторный выбор текущего снимает его. Ярусы 1..8 требуют
// соответствующего количества найденного оружия, 9 и 10 -
// подходящего особого предмета.
func (p *PlayerSheet) EquipWeapon(id int) bool {
	if id < 1 || id > EquipTierCount {
		return false
	}
	switch id {
	case WeaponFireOrb:
		if p.Inventory[SlotSpecial] != SpecialFireOrb {
			return false
		}
	case WeaponIceOrb:
		if p.Inventory[SlotSpecial] != SpecialIceOrb {
			return false
		}
	default:
		if p.Inventory[SlotWeapons] < id {
			return false
		}
	}

	if p.Weapon == id {
		p.Weapon = EquipNone
	} else {
		p.Weapon = id
	}
	return true
}

// EquipArmor - то же для брони. Надевание брони завершает ход
// игрока, это решает планировщик, не модель.
func (p *PlayerSheet) EquipArmor(id int) bool {
	if id < 1 || id > EquipTierCount {
		return false
	}
	switch id {
	case ArmorRobes:
		if p.Inventory[SlotSpecial] != SpecialRobes {
			return false
		}
	case ArmorCloak:
		if p.Inventory[SlotSpecial] != SpecialCloak {
			return false
		}
	default:
		if p.Inventory[SlotArmor] < id {
			return false
		}
	}

	if p.Armor == id {
		p.Armor = EquipNone
	} else {
		p.Armor = id
	}
	return true
}

// UseItem применяет расходник из слота инвентаря.
// Возвращает false при пустом слоте или бесполезном применении.
func (p *PlayerSheet) UseItem(slot int) bool {
	if slot < 0 || slot >= InventorySlots || slot == SlotSpecial {
		return false
	}
	if p.Inventory[slot] < 1 {
		return false
	}

	switch slot {
	case SlotDrinks:
		if p.HP >= p.MaxHP() {
			return false
		}
		p.GainHealth(PointsPerDrink)
	case SlotStrPotions:
		p.Strength++
		p.TempStr++
	case SlotXPPotions:
		// Номинал зелья компенсирует множитель, итог около 100.
		p.GainExp(int(100 / p.XPMod()))
	case SlotHealthPlus:
		if p.HP >= p.MaxHP() {
			return false
		}
		p.GainHealth(HealthPlusHeal)
	case SlotHealthPlusPlus:
		if p.HP >= p.MaxHP() {
			return false
		}
		p.GainHealth(HealthPlusPlusHeal)
	default:
		// Оружие и броня не "используются", они экипируются.
		return false
	}

	p.Inventory[slot]--
	return true
}

// LeakTempStr снимает один пункт временной силы в конце хода.
func (p *PlayerSheet) LeakTempStr() {
	if p.TempStr > 0 {
		p.TempStr--
		p.Strength--
	}
}

// DrainTempStr снимает всю временную силу при выходе из комнаты.
func (p *PlayerSheet) DrainTempStr() {
	p.Strength -= p.TempStr
	p.TempStr = 0
}
