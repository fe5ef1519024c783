package domain

import "testing"

func TestTakeDamageClampsAtZero(t *testing.T) {
	s := &StatsComponent{HP: 10, MaxHP: 10}
	died := s.TakeDamage(25)
	if !died {
		t.Fatal("lethal damage must report death")
	}
	if s.HP != 0 {
		t.Errorf("HP = %d, must clamp to 0", s.HP)
	}
	if s.TakeDamage(5) {
		t.Error("dead target must not die twice")
	}
}

func TestTakeDamageNegativeAmount(t *testing.T) {
	s := &StatsComponent{HP: 10, MaxHP: 10}
	s.TakeDamage(-5)
	if s.HP != 10 {
		t.Errorf("negative damage must not heal: HP = %d", s.HP)
	}
}

func TestHealRefusesTheDead(t *testing.T) {
	s := &StatsComponent{HP: 0, MaxHP: 10, IsDead: true}
	s.Heal(5)
	if s.HP != 0 {
		t.Error("corpses do not heal")
	}
}

func TestBossPhaseThresholdsFireOnce(t *testing.T) {
	stats := &StatsComponent{HP: 100, MaxHP: 100}
	boss := &BossComponent{}

	stats.TakeDamage(30) // 70%
	if n := boss.AdvancePhase(stats); n != 1 {
		t.Errorf("crossing 76%% must summon 1, got %d", n)
	}
	if boss.Phase != 1 {
		t.Errorf("phase = %d, want 1", boss.Phase)
	}
	// Та же доля HP второй раз порог не дергает.
	if n := boss.AdvancePhase(stats); n != 0 {
		t.Errorf("threshold fired twice: %d", n)
	}

	stats.TakeDamage(25) // 45%
	if n := boss.AdvancePhase(stats); n != 2 {
		t.Errorf("crossing 51%% must summon 2, got %d", n)
	}
	stats.TakeDamage(25) // 20%
	if n := boss.AdvancePhase(stats); n != 3 {
		t.Errorf("crossing 26%% must summon 3, got %d", n)
	}
	if boss.Phase != 3 {
		t.Errorf("final phase = %d, want 3", boss.Phase)
	}
}

func TestBossPhaseSkipsStraightToDeep(t *testing.T) {
	stats := &StatsComponent{HP: 100, MaxHP: 100}
	boss := &BossComponent{}
	stats.TakeDamage(80) // 20%, все три порога разом
	if n := boss.AdvancePhase(stats); n != 6 {
		t.Errorf("one hit through all thresholds must summon 1+2+3=6, got %d", n)
	}
	if boss.Phase != 3 {
		t.Errorf("phase = %d, want 3", boss.Phase)
	}
}

func TestBossPhaseNotOnCorpse(t *testing.T) {
	stats := &StatsComponent{HP: 100, MaxHP: 100}
	boss := &BossComponent{}
	stats.TakeDamage(100)
	if n := boss.AdvancePhase(stats); n != 0 {
		t.Errorf("dead boss must not summon, got %d", n)
	}
}

func TestEntityBlocks(t *testing.T) {
	wall := &Entity{Type: EntityTypeWall, Active: true, Stats: &StatsComponent{HP: 4, MaxHP: 4}}
	if !wall.Blocks() {
		t.Error("живая стена должна блокировать")
	}
	wall.Stats.TakeDamage(10)
	if wall.Blocks() {
		t.Error("разрушенная стена должна пропускать")
	}
	item := &Entity{Type: EntityTypeItem, Active: true}
	if item.Blocks() {
		t.Error("предметы проходимы")
	}
}
