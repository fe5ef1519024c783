package systems

import "ancestor-server/internal/domain"

// PlusShape - центр и четыре соседа по сторонам света.
// Рисунок залпа ледяных осколков.
func PlusShape(center domain.Position) []domain.Position {
	return []domain.Position{
		center,
		center.Add(0, 1),
		center.Add(0, -1),
		center.Add(1, 0),
		center.Add(-1, 0),
	}
}

// XShape - центр и четыре диагонали. Рисунок залпа файерболов.
func XShape(center domain.Position) []domain.Position {
	return []domain.Position{
		center,
		center.Add(1, 1),
		center.Add(1, -1),
		center.Add(-1, 1),
		center.Add(-1, -1),
	}
}

// PlayerSpell - что может скастовать игрок особым предметом.
type PlayerSpell struct {
	// Cells - клетки поражения (пустые для телепорта).
	Cells []domain.Position
	// DamageKind - вид урона по сущностям в клетках.
	DamageKind string
	// Teleport=true - игрок переносится в цель вместо удара.
	Teleport bool
	// Slows=true - каст стоит двух действий, следующий ход пропускается.
	Slows bool
}

// ResolvePlayerCast собирает заклинание по экипированному особому
// предмету. Возвращает nil, если кастовать нечем.
func ResolvePlayerCast(p *domain.PlayerSheet, target domain.Position) *PlayerSpell {
	switch {
	case p.Weapon == domain.WeaponFireOrb:
		return &PlayerSpell{
			Cells:      XShape(target),
			DamageKind: domain.CauseFireball,
			Slows:      true,
		}
	case p.Weapon == domain.WeaponIceOrb:
		return &PlayerSpell{
			Cells:      PlusShape(target),
			DamageKind: domain.CauseIceShards,
		}
	case p.Armor == domain.ArmorRobes:
		return &PlayerSpell{
			Teleport: true,
			Slows:    true,
		}
	}
	return nil
}

// BossSpellCells - клетки поражения вражеского каста.
// Выбор 0 - осколки льда крестом, 1 - файерболы иксом.
func BossSpellCells(choice int, target domain.Position) ([]domain.Position, string) {
	if choice == 0 {
		return PlusShape(target), domain.CauseIceShards
	}
	return XShape(target), domain.CauseFireball
}
