package engine

import (
	"testing"

	"ancestor-server/internal/domain"
	"ancestor-server/pkg/dungeon"
)

func TestEnemyMovesEveryOtherPhase(t *testing.T) {
	s := blankSession(1)
	e := dungeon.EnemyTiers[0].Spawn(domain.Position{X: 4, Y: 0}, s.Rng)
	s.Layout.Add(e)

	// Свежий враг стоит первую фазу: пропуск взведен со спавна.
	s.enemyPhase()
	if e.Pos != (domain.Position{X: 4, Y: 0}) {
		t.Fatalf("fresh enemy must idle its first phase, at %+v", e.Pos)
	}

	s.enemyPhase()
	if e.Pos != (domain.Position{X: 3, Y: 0}) {
		t.Fatalf("second phase must step toward the player, at %+v", e.Pos)
	}

	s.enemyPhase()
	if e.Pos != (domain.Position{X: 3, Y: 0}) {
		t.Errorf("third phase must be a skip again, at %+v", e.Pos)
	}
}

func TestFastMoverIgnoresSkips(t *testing.T) {
	s := blankSession(1)
	e := dungeon.EnemyTiers[3].Spawn(domain.Position{X: 4, Y: 0}, s.Rng)
	s.Layout.Add(e)

	s.enemyPhase()
	s.enemyPhase()
	if e.Pos != (domain.Position{X: 2, Y: 0}) {
		t.Errorf("fast mover must step every phase, at %+v", e.Pos)
	}
}

func TestCloakSlowsTheRoom(t *testing.T) {
	s := blankSession(1)
	s.Sheet.Inventory[domain.SlotSpecial] = domain.SpecialCloak
	s.Sheet.Armor = domain.ArmorCloak
	e := dungeon.EnemyTiers[0].Spawn(domain.Position{X: 4, Y: 0}, s.Rng)
	e.AI.SkipMove = false
	s.Layout.Add(e)

	// Плащ дает два лишних простоя: враг действует лишь на третьей фазе.
	s.enemyPhase()
	s.enemyPhase()
	if e.Pos != (domain.Position{X: 4, Y: 0}) {
		t.Fatalf("cloaked room must idle two full phases, enemy at %+v", e.Pos)
	}

	s.enemyPhase()
	if e.Pos != (domain.Position{X: 3, Y: 0}) {
		t.Errorf("third phase must act, at %+v", e.Pos)
	}
}

func TestCloakGatesFastMovers(t *testing.T) {
	s := blankSession(1)
	s.Sheet.Inventory[domain.SlotSpecial] = domain.SpecialCloak
	s.Sheet.Armor = domain.ArmorCloak
	e := dungeon.EnemyTiers[5].Spawn(domain.Position{X: 6, Y: 0}, s.Rng) // смещатель
	e.AI.SkipMove = false
	s.Layout.Add(e)

	s.enemyPhase()
	s.enemyPhase()
	if e.Pos != (domain.Position{X: 6, Y: 0}) {
		t.Fatalf("cloak must gate fast movers too, enemy at %+v", e.Pos)
	}

	s.enemyPhase()
	if e.Pos != (domain.Position{X: 5, Y: 0}) {
		t.Errorf("fast mover must act on the third phase, at %+v", e.Pos)
	}
}

func TestEnemySlidesAroundObstacle(t *testing.T) {
	s := blankSession(1)
	wall := dungeon.NewInnerWall("BRICK", domain.Position{X: 1, Y: 0}, s.Rng)
	s.Layout.Add(wall)
	e := dungeon.EnemyTiers[0].Spawn(domain.Position{X: 2, Y: 0}, s.Rng)
	e.AI.SkipMove = false
	s.Layout.Add(e)

	// Прямой шаг к игроку закрыт стеной, вверх закрыто рамкой:
	// обход по часовой стрелке уводит вправо.
	s.enemyPhase()
	if e.Pos != (domain.Position{X: 3, Y: 0}) {
		t.Errorf("expected a clockwise slide to (3,0), at %+v", e.Pos)
	}
}

func TestEnemyMeleeRespectsArmor(t *testing.T) {
	s := blankSession(1)
	s.Sheet.Inventory[domain.SlotArmor] = 1
	s.Sheet.Armor = 1
	e := dungeon.EnemyTiers[1].Spawn(domain.Position{X: 1, Y: 0}, s.Rng) // урон 8
	e.AI.SkipMove = false
	s.Layout.Add(e)

	s.enemyPhase()

	want := s.Sheet.MaxHP() - (e.Stats.Damage - s.Sheet.ArmorBonus())
	if s.Sheet.HP != want {
		t.Errorf("expected hp %d after armored hit, got %d", want, s.Sheet.HP)
	}
	if !hasEffect(s.Effects, domain.EffectHit) {
		t.Error("hit effect missing")
	}
}

func TestBossTelegraphThenCast(t *testing.T) {
	s := blankSession(1)
	boss := dungeon.BossTiers[0].Spawn(domain.Position{X: 3, Y: 3}, s.Rng)
	boss.AI.SkipMove = false
	s.Layout.Add(boss)
	s.Player.Pos = domain.Position{X: 3, Y: 1} // ход конем от босса

	s.enemyPhase()
	if !boss.Boss.Casting {
		t.Fatal("knight-move distance must trigger the telegraph")
	}
	if boss.Boss.CastTarget != s.Player.Pos {
		t.Error("telegraph must lock the player position")
	}
	if !hasEffect(s.Effects, domain.EffectCastTelegraph) {
		t.Error("telegraph effect missing")
	}

	// Между телеграфом и залпом боссу положена пауза.
	s.enemyPhase()
	if !boss.Boss.Casting {
		t.Fatal("cast must not resolve during the pause phase")
	}

	s.enemyPhase()
	if boss.Boss.Casting {
		t.Fatal("cast must resolve after the pause")
	}
	if !hasEffect(s.Effects, domain.EffectSpell) {
		t.Error("spell effect missing")
	}
	// При интеллекте 1 любой из двух залпов убивает стартового игрока.
	if !s.GameOver {
		t.Error("a fresh player caught in the blast must die")
	}
}

func TestBossCastMissesMovedPlayer(t *testing.T) {
	s := blankSession(1)
	boss := dungeon.BossTiers[0].Spawn(domain.Position{X: 3, Y: 3}, s.Rng)
	boss.AI.SkipMove = false
	s.Layout.Add(boss)
	s.Player.Pos = domain.Position{X: 3, Y: 1}

	s.enemyPhase() // телеграф по (3,1)
	s.Player.Pos = domain.Position{X: 0, Y: 0}
	s.enemyPhase() // пауза
	s.enemyPhase() // залп по старой клетке

	if boss.Boss.Casting {
		t.Fatal("cast must resolve even when the player left")
	}
	if s.Sheet.HP != s.Sheet.MaxHP() {
		t.Errorf("spell aimed at the old cell must miss, hp=%d", s.Sheet.HP)
	}
	if s.GameOver {
		t.Error("player must survive a dodged cast")
	}
}
