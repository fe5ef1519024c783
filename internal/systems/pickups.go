package systems

import (
	"ancestor-server/internal/domain"
	"ancestor-server/pkg/rng"
)

// PickupResult - исход подбора предмета.
type PickupResult struct {
	// Consumed=false - предмет остается лежать (еда при полном HP).
	Consumed   bool
	Message    string
	Slowed     bool // лед замедлил игрока
	UnlockExit bool // подобран ключ
	Died       bool // гриб или ловушка добили игрока
}

// ApplyPickup применяет предмет или ловушку, на которую наступил
// игрок. Сундуки раскрываются сразу в счетчики инвентаря.
func ApplyPickup(p *domain.PlayerSheet, drops *domain.FloorDrops, kind string, r *rng.Service) PickupResult {
	switch kind {
	case domain.PickupFood:
		if p.HP >= p.MaxHP() {
			return PickupResult{Message: "Вы сыты."}
		}
		p.GainHealth(domain.PointsPerFood)
		return PickupResult{Consumed: true, Message: "Немного еды восстанавливает силы."}

	case domain.PickupMushroom:
		died := p.LoseHealth(domain.MushroomDamage)
		return PickupResult{Consumed: true, Died: died, Message: "Гнилой гриб! Вас мутит."}

	case domain.PickupSoda:
		p.Inventory[domain.SlotDrinks]++
		return PickupResult{Consumed: true, Message: "Найден лечебный напиток!"}

	case domain.PickupStrPotion:
		p.Inventory[domain.SlotStrPotions]++
		return PickupResult{Consumed: true, Message: "Найдено зелье силы!"}

	case domain.PickupXPPotion:
		p.Inventory[domain.SlotXPPotions]++
		return PickupResult{Consumed: true, Message: "Найдено зелье опыта!"}

	case domain.PickupHealthPlus:
		p.Inventory[domain.SlotHealthPlus]++
		return PickupResult{Consumed: true, Message: "Найдено зелье здоровья+!"}

	case domain.PickupHealthPlusPlus:
		p.Inventory[domain.SlotHealthPlusPlus]++
		return PickupResult{Consumed: true, Message: "Найдено зелье здоровья++!"}

	case domain.PickupWeapon:
		if p.Inventory[domain.SlotWeapons] < domain.MaxCarriedWeapons {
			p.Inventory[domain.SlotWeapons]++
		}
		return PickupResult{Consumed: true, Message: "Найдено оружие!"}

	case domain.PickupArmor:
		if p.Inventory[domain.SlotArmor] < domain.MaxCarriedArmor {
			p.Inventory[domain.SlotArmor]++
		}
		return PickupResult{Consumed: true, Message: "Найдена броня!"}

	case domain.PickupKey:
		return PickupResult{Consumed: true, UnlockExit: true, Message: "Дверь открылась!"}

	case domain.PickupEquipChest:
		return openEquipChest(p, drops, r)

	case domain.PickupPotionChest:
		return openPotionChest(p, r)

	case domain.PickupSpecialChest:
		return openSpecialChest(p, r)
	}

	return PickupResult{}
}

// openEquipChest раздает снаряжение с учетом этажных флагов: монета
// выбирает между оружием и броней, но каждого вида не больше одного
// за этаж и не больше восьми за игру. Иначе - утешительное зелье.
func openEquipChest(p *domain.PlayerSheet, drops *domain.FloorDrops, r *rng.Service) PickupResult {
	coin := r.Coin()

	switch {
	case (coin == 0 || drops.ArmorDropped) && !drops.WeaponDropped &&
		p.Inventory[domain.SlotWeapons] < domain.MaxCarriedWeapons:
		p.Inventory[domain.SlotWeapons]++
		drops.WeaponDropped = true
		return PickupResult{Consumed: true, Message: "Найдено оружие!"}

	case (coin == 1 || drops.WeaponDropped) && !drops.ArmorDropped &&
		p.Inventory[domain.SlotArmor] < domain.MaxCarriedArmor:
		p.Inventory[domain.SlotArmor]++
		drops.ArmorDropped = true
		return PickupResult{Consumed: true, Message: "Найдена броня!"}

	default:
		return grantTieredPotion(p)
	}
}

// openPotionChest дает ярусное зелье здоровья и монетой - зелье
// силы либо опыта.
func openPotionChest(p *domain.PlayerSheet, r *rng.Service) PickupResult {
	res := grantTieredPotion(p)
	if r.Coin() == 0 {
		p.Inventory[domain.SlotStrPotions]++
		res.Message += " И зелье силы!"
	} else {
		p.Inventory[domain.SlotXPPotions]++
		res.Message += " И зелье опыта!"
	}
	return res
}

// openSpecialChest выдает один из четырех особых предметов.
func openSpecialChest(p *domain.PlayerSheet, r *rng.Service) PickupResult {
	special := r.Range(1, 5)
	p.Inventory[domain.SlotSpecial] = special

	msg := map[int]string{
		domain.SpecialFireOrb: "Найдена Огненная Сфера!",
		domain.SpecialIceOrb:  "Найдена Ледяная Сфера!",
		domain.SpecialRobes:   "Найдена Мантия!",
		domain.SpecialCloak:   "Найден Плащ!",
	}[special]
	return PickupResult{Consumed: true, Message: msg}
}

// grantTieredPotion кладет в инвентарь зелье под максимум здоровья;
// новичкам вместо него достаются два напитка.
func grantTieredPotion(p *domain.PlayerSheet) PickupResult {
	switch TieredPotionKind(p.MaxHP()) {
	case domain.PickupHealthPlusPlus:
		p.Inventory[domain.SlotHealthPlusPlus]++
		return PickupResult{Consumed: true, Message: "Найдено зелье здоровья++!"}
	case domain.PickupHealthPlus:
		p.Inventory[domain.SlotHealthPlus]++
		return PickupResult{Consumed: true, Message: "Найдено зелье здоровья+!"}
	default:
		p.Inventory[domain.SlotDrinks] += 2
		return PickupResult{Consumed: true, Message: "Найдены лечебные напитки!"}
	}
}

// ApplyHazard применяет ловушку под ногами игрока.
func ApplyHazard(p *domain.PlayerSheet, kind string) PickupResult {
	switch kind {
	case domain.HazardSpikes:
		died := p.LoseHealth(domain.SpikeDamage)
		return PickupResult{Died: died, Message: "Шипы впиваются в ноги!"}
	case domain.HazardIce:
		return PickupResult{Slowed: true, Message: "Лед сковывает движения!"}
	}
	return PickupResult{}
}
