package domain

// FloorDrops - флаги "на этом этаже уже выпадало" для сундуков со
// снаряжением: не больше одного оружия и одного комплекта брони на
// этаж. Взведенный флаг означает, что дроп этого вида заблокирован.
// Партия начинается с заблокированным оружием: на первом этаже
// сундуки его не дают.
type FloorDrops struct {
	WeaponDropped bool `json:"weaponDropped"`
	ArmorDropped  bool `json:"armorDropped"`
}

// ResetForNextFloor сбрасывает оба флага: новый этаж снова может
// выдать по одному оружию и одному комплекту брони.
func (d *FloorDrops) ResetForNextFloor() {
	d.WeaponDropped = false
	d.ArmorDropped = false
}
