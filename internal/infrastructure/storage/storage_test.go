package storage

import (
	"os"
	"path/filepath"
	"testing"

	"ancestor-server/internal/domain"
)

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	rec := &domain.ReplaySession{
		Token:     "hero",
		Seed:      -77,
		Timestamp: 1700000000,
		Actions: []domain.ReplayAction{
			{Tick: 0, Action: domain.ActionMove, DX: -1},
			{Tick: 1, Action: domain.ActionUse, Slot: 4},
			{Tick: 2, Action: domain.ActionEquip, Slot: 3, ArmorSlot: true},
			{Tick: 3, Action: domain.ActionCast, Target: domain.Position{X: 7, Y: 2}},
		},
	}

	svc := NewReplayService(dir)
	if err := svc.Save(rec); err != nil {
		t.Fatal(err)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "replay_hero_*.atrp"))
	if len(files) != 1 {
		t.Fatalf("expected one file, got %v", files)
	}

	loaded, err := svc.Load(files[0])
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Token != rec.Token || loaded.Seed != rec.Seed || loaded.Timestamp != rec.Timestamp {
		t.Errorf("header diverged: %+v", loaded)
	}
	if len(loaded.Actions) != len(rec.Actions) {
		t.Fatalf("expected %d actions, got %d", len(rec.Actions), len(loaded.Actions))
	}
	for i := range rec.Actions {
		if loaded.Actions[i] != rec.Actions[i] {
			t.Errorf("action %d diverged: %+v vs %+v", i, loaded.Actions[i], rec.Actions[i])
		}
	}
}

func TestLoadRejectsForeignFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.atrp")
	if err := os.WriteFile(path, []byte("definitely not a replay file"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewReplayService(dir).Load(path); err == nil {
		t.Error("bad magic must be rejected")
	}
}

func TestSaveRejectsLongToken(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	rec := &domain.ReplaySession{Token: string(long), Seed: 1}
	if err := NewReplayService(t.TempDir()).Save(rec); err == nil {
		t.Error("token over 255 bytes must be rejected")
	}
}
