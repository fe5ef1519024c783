package systems

import (
	"testing"

	"ancestor-server/internal/domain"
)

func newDummy(hp, armor int) *domain.Entity {
	return &domain.Entity{
		ID:     "dummy",
		Type:   domain.EntityTypeEnemy,
		Name:   "Чучело",
		Active: true,
		Render: &domain.RenderComponent{Symbol: "z"},
		Stats:  &domain.StatsComponent{HP: hp, MaxHP: hp, Armor: armor},
	}
}

func TestResolveAttackArmorSubtraction(t *testing.T) {
	target := newDummy(20, 3)
	res := ResolveAttack("Потомок", 10, target)
	if res.Damage != 7 {
		t.Errorf("damage = %d, want 10-3=7", res.Damage)
	}
	if target.Stats.HP != 13 {
		t.Errorf("hp = %d, want 13", target.Stats.HP)
	}
	if res.Died {
		t.Error("target must survive")
	}
}

func TestResolveAttackNeverHeals(t *testing.T) {
	target := newDummy(20, 50)
	res := ResolveAttack("Потомок", 10, target)
	if res.Damage != 0 {
		t.Errorf("over-armored target takes %d, want 0", res.Damage)
	}
	if target.Stats.HP != 20 {
		t.Errorf("hp = %d, armor must not heal", target.Stats.HP)
	}
}

func TestResolveAttackDeathEffects(t *testing.T) {
	target := newDummy(5, 0)
	res := ResolveAttack("Потомок", 10, target)
	if !res.Died {
		t.Fatal("target must die")
	}
	found := false
	for _, ef := range res.Effects {
		if ef.Kind == domain.EffectDeathAnim {
			found = true
		}
	}
	if !found {
		t.Error("death must emit a death animation token")
	}
	// Труп не бьется второй раз.
	res2 := ResolveAttack("Потомок", 10, target)
	if res2.Died || res2.Damage != 0 {
		t.Error("corpse must not die again")
	}
}

func TestResolveAttackBossReinforcements(t *testing.T) {
	boss := newDummy(100, 0)
	boss.Type = domain.EntityTypeBoss
	boss.Boss = &domain.BossComponent{}

	res := ResolveAttack("Потомок", 30, boss) // 70%
	var reinf *domain.Effect
	for i := range res.Effects {
		if res.Effects[i].Kind == domain.EffectReinforcement {
			reinf = &res.Effects[i]
		}
	}
	if reinf == nil {
		t.Fatal("crossing 76% must emit reinforcements")
	}
	if reinf.Value != 1 {
		t.Errorf("reinforcement count = %d, want 1", reinf.Value)
	}
	if boss.Boss.Phase != 1 {
		t.Errorf("phase = %d, want 1", boss.Boss.Phase)
	}

	// Повторный удар без пересечения порога молчит.
	res = ResolveAttack("Потомок", 1, boss)
	for _, ef := range res.Effects {
		if ef.Kind == domain.EffectReinforcement {
			t.Error("threshold fired twice")
		}
	}
}

func TestMarkCorpseDeactivatesObstacles(t *testing.T) {
	wall := &domain.Entity{Type: domain.EntityTypeWall, Active: true,
		Stats: &domain.StatsComponent{HP: 0, MaxHP: 4, IsDead: true}}
	MarkCorpse(wall)
	if wall.Active {
		t.Error("broken wall must deactivate")
	}

	enemy := newDummy(0, 0)
	enemy.Stats.IsDead = true
	MarkCorpse(enemy)
	if !enemy.Active {
		t.Error("enemy corpse stays until the death effect completes")
	}
	if enemy.Render.Symbol != "%" {
		t.Error("corpse must change its symbol")
	}
}

func TestSpellDamageTables(t *testing.T) {
	if d := SpellDamageToPlayer(domain.CauseFireball, 1); d != 140 {
		t.Errorf("fireball vs int 1 = %d, want 140", d)
	}
	if d := SpellDamageToPlayer(domain.CauseIceShards, 5); d != 50 {
		t.Errorf("ice shards vs int 5 = %d, want 50", d)
	}
	if d := SpellDamageToPlayer(domain.CauseFireball, 20); d != 0 {
		t.Errorf("high intelligence must floor spell damage at 0, got %d", d)
	}
	if d := ProjectileDamage(domain.CauseFireball, 3); d != 30 {
		t.Errorf("player fireball with int 3 = %d, want 30", d)
	}
	if d := ProjectileDamage(domain.CauseIceShards, 3); d != 15 {
		t.Errorf("player ice shards with int 3 = %d, want 15", d)
	}
}
