package systems

import (
	"github.com/sirupsen/logrus"

	"ancestor-server/internal/domain"
	"ancestor-server/pkg/logger"
	"ancestor-server/pkg/rng"
)

// TieredPotionKind подбирает зелье под максимум здоровья игрока:
// чем толще герой, тем крепче зелье.
func TieredPotionKind(maxHP int) string {
	switch {
	case maxHP > 149:
		return domain.PickupHealthPlusPlus
	case maxHP > 99:
		return domain.PickupHealthPlus
	default:
		return domain.PickupSoda
	}
}

// RollKillDrop бросает навык поиска после убийства врага или босса.
// Бросок Range(0, 51+find) должен перевалить за 30, чтобы выпало
// хотя бы базовое зелье; глубокие пороги добавляют один лучший
// бонусный дроп. Особый предмет падает только пока его нет.
func RollKillDrop(p *domain.PlayerSheet, r *rng.Service) []string {
	check := r.Range(0, 51+p.Find())

	dropLogger := logger.Log.WithFields(logrus.Fields{
		"component": "drop_system",
		"find":      p.Find(),
		"check":     check,
	})

	if check <= 30 {
		dropLogger.Debug("Find check failed, no drop")
		return nil
	}

	drops := []string{TieredPotionKind(p.MaxHP())}

	switch {
	case check > 124 && p.Inventory[domain.SlotSpecial] == domain.SpecialNone:
		drops = append(drops, domain.PickupSpecialChest)
	case check > 100:
		drops = append(drops, domain.PickupXPPotion)
	case check > 90:
		drops = append(drops, domain.PickupArmor)
	case check > 75:
		drops = append(drops, domain.PickupStrPotion)
	case check > 60:
		drops = append(drops, domain.PickupWeapon)
	}

	dropLogger.WithField("drops", drops).Debug("Kill drop rolled")
	return drops
}

// RollContainerDrop - разбитая бочка с шансом в монету отдает зелье.
func RollContainerDrop(p *domain.PlayerSheet, r *rng.Service) []string {
	if r.Coin() == 0 {
		return []string{TieredPotionKind(p.MaxHP())}
	}
	return nil
}
