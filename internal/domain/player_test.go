package domain

import "testing"

func TestNewPlayerSheetBaseline(t *testing.T) {
	p := NewPlayerSheet()
	if p.Strength != 1 || p.Dexterity != 1 || p.Intelligence != 1 || p.Constitution != 1 {
		t.Fatalf("base stats must all be 1, got %d/%d/%d/%d",
			p.Strength, p.Dexterity, p.Intelligence, p.Constitution)
	}
	if p.MaxHP() != 50 {
		t.Errorf("MaxHP = %d, want 50", p.MaxHP())
	}
	if p.HP != 50 {
		t.Errorf("HP = %d, want 50", p.HP)
	}
	if p.Inventory[SlotWeapons] != 1 {
		t.Errorf("starting inventory must hold one weapon")
	}
	if p.Damage() != 1 {
		t.Errorf("unarmed damage = %d, want 1", p.Damage())
	}
}

func TestDerivedStats(t *testing.T) {
	p := NewPlayerSheet()
	p.Strength = 3
	p.Dexterity = 4
	p.Intelligence = 6
	p.Constitution = 5

	if got := p.Find(); got != 40 {
		t.Errorf("Find = %d, want 40", got)
	}
	if got := p.MaxHP(); got != 90 {
		t.Errorf("MaxHP = %d, want 90", got)
	}
	if got := p.XPMod(); got != 1.05 {
		t.Errorf("XPMod = %v, want 1.05", got)
	}
	p.Weapon = 4
	p.Inventory[SlotWeapons] = 4
	if got := p.Damage(); got != 13 {
		t.Errorf("Damage = %d, want 3+10=13", got)
	}
}

func TestGainExpRoundsHalfUp(t *testing.T) {
	p := NewPlayerSheet()
	p.Intelligence = 51 // xpMod = 1.5
	gained := p.GainExp(1)
	if gained != 2 {
		t.Errorf("1 * 1.5 must round up to 2, got %d", gained)
	}
	if p.Exp != 2 {
		t.Errorf("Exp = %d, want 2", p.Exp)
	}
}

func TestLevelUpRejectsWhenPoor(t *testing.T) {
	p := NewPlayerSheet()
	p.Exp = 99
	if p.LevelUp(StatStrength) {
		t.Fatal("level up must fail with 99 exp against cost 100")
	}
	if p.Exp != 99 || p.Strength != 1 || p.ExpSpent != 0 {
		t.Errorf("rejected level up must not mutate state: exp=%d str=%d spent=%d",
			p.Exp, p.Strength, p.ExpSpent)
	}
}

func TestLevelUpCostScalesWithStat(t *testing.T) {
	p := NewPlayerSheet()
	p.Exp = 300
	if !p.LevelUp(StatStrength) {
		t.Fatal("first raise must succeed")
	}
	if p.Exp != 200 || p.Strength != 2 {
		t.Fatalf("after first raise: exp=%d str=%d", p.Exp, p.Strength)
	}
	if !p.LevelUp(StatStrength) {
		t.Fatal("second raise costs 200 and must succeed")
	}
	if p.Exp != 0 || p.Strength != 3 {
		t.Fatalf("after second raise: exp=%d str=%d", p.Exp, p.Strength)
	}
	if p.LevelUp(StatStrength) {
		t.Fatal("third raise costs 300 and must fail at 0 exp")
	}
	if p.ExpSpent != 2 {
		t.Errorf("ExpSpent = %d, want 2", p.ExpSpent)
	}
}

func TestLevelUpConstitutionHeals(t *testing.T) {
	p := NewPlayerSheet()
	p.Exp = 100
	p.HP = 10
	if !p.LevelUp(StatConstitution) {
		t.Fatal("con raise must succeed")
	}
	if p.MaxHP() != 60 {
		t.Errorf("MaxHP = %d, want 60", p.MaxHP())
	}
	if p.HP != 30 {
		t.Errorf("HP = %d, want 10+20=30", p.HP)
	}
}

func TestLoseHealthClampsAndDiesOnce(t *testing.T) {
	p := NewPlayerSheet()
	p.HP = 30
	died := p.LoseHealth(45)
	if !died {
		t.Fatal("45 damage at 30 hp must kill")
	}
	if p.HP != 0 {
		t.Errorf("HP = %d, must clamp to 0", p.HP)
	}
	if p.LoseHealth(10) {
		t.Error("death must fire exactly once")
	}
}

func TestLoseHealthNegativeIsNoop(t *testing.T) {
	p := NewPlayerSheet()
	p.HP = 30
	p.LoseHealth(-15)
	if p.HP != 30 {
		t.Errorf("negative damage must not heal: HP = %d", p.HP)
	}
}

func TestGainHealthClampsToMax(t *testing.T) {
	p := NewPlayerSheet()
	p.HP = 45
	p.GainHealth(100)
	if p.HP != 50 {
		t.Errorf("HP = %d, want clamp at 50", p.HP)
	}
}

func TestEquipToggleRoundTrip(t *testing.T) {
	p := NewPlayerSheet()
	p.Inventory[SlotWeapons] = 3
	base := p.Damage()

	if !p.EquipWeapon(3) {
		t.Fatal("equip tier 3 must succeed with 3 weapons found")
	}
	if p.Damage() != base+6 {
		t.Errorf("tier 3 weapon adds 6 damage, got %d", p.Damage()-base)
	}
	if !p.EquipWeapon(3) {
		t.Fatal("re-equip must toggle off")
	}
	if p.Weapon != EquipNone || p.Damage() != base {
		t.Errorf("toggle must restore baseline: weapon=%d damage=%d", p.Weapon, p.Damage())
	}
}

func TestEquipGating(t *testing.T) {
	p := NewPlayerSheet()
	if p.EquipWeapon(2) {
		t.Error("tier 2 must be locked with a single weapon found")
	}
	if p.EquipWeapon(WeaponFireOrb) {
		t.Error("fire orb locked without the special item")
	}
	p.Inventory[SlotSpecial] = SpecialFireOrb
	if !p.EquipWeapon(WeaponFireOrb) {
		t.Error("fire orb must equip once owned")
	}
	if p.WeaponDamage() != 0 {
		t.Error("orbs carry no weapon damage of their own")
	}
}

func TestCloakGrantsQuick(t *testing.T) {
	p := NewPlayerSheet()
	p.Inventory[SlotSpecial] = SpecialCloak
	if !p.EquipArmor(ArmorCloak) {
		t.Fatal("cloak must equip")
	}
	if !p.Quick() {
		t.Error("cloak must grant the quick modifier")
	}
	p.EquipArmor(ArmorCloak)
	if p.Quick() {
		t.Error("quick must vanish when the cloak comes off")
	}
}

func TestStrengthPotionAndLeak(t *testing.T) {
	p := NewPlayerSheet()
	p.Inventory[SlotStrPotions] = 1
	if !p.UseItem(SlotStrPotions) {
		t.Fatal("potion use must succeed")
	}
	if p.Strength != 2 || p.TempStr != 1 {
		t.Fatalf("after potion: str=%d tempStr=%d", p.Strength, p.TempStr)
	}
	p.LeakTempStr()
	if p.Strength != 1 || p.TempStr != 0 {
		t.Errorf("leak must return to baseline: str=%d tempStr=%d", p.Strength, p.TempStr)
	}
	p.LeakTempStr()
	if p.Strength != 1 {
		t.Errorf("leak with no tempStr must be a no-op")
	}
}

func TestDrainTempStrOnRoomExit(t *testing.T) {
	p := NewPlayerSheet()
	p.Inventory[SlotStrPotions] = 3
	for i := 0; i < 3; i++ {
		p.UseItem(SlotStrPotions)
	}
	if p.Strength != 4 || p.TempStr != 3 {
		t.Fatalf("after three potions: str=%d tempStr=%d", p.Strength, p.TempStr)
	}
	p.DrainTempStr()
	if p.Strength != 1 || p.TempStr != 0 {
		t.Errorf("room exit must drain all tempered strength: str=%d tempStr=%d",
			p.Strength, p.TempStr)
	}
}

func TestUseItemRejections(t *testing.T) {
	p := NewPlayerSheet()
	if p.UseItem(SlotDrinks) {
		t.Error("empty slot must reject")
	}
	p.Inventory[SlotDrinks] = 1
	if p.UseItem(SlotDrinks) {
		t.Error("drink at full health must reject")
	}
	if p.Inventory[SlotDrinks] != 1 {
		t.Error("rejected use must not consume the item")
	}
	p.HP = 30
	if !p.UseItem(SlotDrinks) {
		t.Error("drink while hurt must succeed")
	}
	if p.HP != 40 || p.Inventory[SlotDrinks] != 0 {
		t.Errorf("after drink: hp=%d count=%d", p.HP, p.Inventory[SlotDrinks])
	}
}
