package engine

import (
	"encoding/json"
	"testing"

	"ancestor-server/internal/domain"
	"ancestor-server/pkg/api"
)

func testConfig() Config {
	cfg := NewConfig()
	cfg.Seed = 4242
	return cfg
}

func clientCmd(token, action, payload string) api.ClientCommand {
	return api.ClientCommand{
		Token:   token,
		Action:  action,
		Payload: json.RawMessage(payload),
	}
}

func TestProcessCommandRequiresToken(t *testing.T) {
	svc := NewService(testConfig())
	if err := svc.ProcessCommand(clientCmd("", "WAIT", "{}")); err == nil {
		t.Error("empty token must be rejected")
	}
}

func TestProcessCommandUnknownAction(t *testing.T) {
	svc := NewService(testConfig())
	if err := svc.ProcessCommand(clientCmd("a", "FLY", "{}")); err == nil {
		t.Error("unknown action must be rejected")
	}
}

func TestProcessCommandValidatesPayload(t *testing.T) {
	svc := NewService(testConfig())

	cases := []struct {
		name    string
		action  string
		payload string
	}{
		{"diagonal move", "MOVE", `{"dx":1,"dy":1}`},
		{"long step", "MOVE", `{"dx":2,"dy":0}`},
		{"zero move", "MOVE", `{"dx":0,"dy":0}`},
		{"negative slot", "USE", `{"slot":-1}`},
		{"empty equip", "EQUIP", `{"weapon":0,"armor":0}`},
		{"negative cast", "CAST", `{"x":-1,"y":2}`},
		{"broken json", "MOVE", `{"dx":`},
	}
	for _, tc := range cases {
		if err := svc.ProcessCommand(clientCmd("a", tc.action, tc.payload)); err == nil {
			t.Errorf("%s must fail validation", tc.name)
		}
	}
}

func TestProcessCommandEnqueues(t *testing.T) {
	svc := NewService(testConfig())
	if err := svc.ProcessCommand(clientCmd("a", "MOVE", `{"dx":-1,"dy":0}`)); err != nil {
		t.Fatal(err)
	}

	cmd := <-svc.CommandChan
	if cmd.Token != "a" || cmd.Action != domain.ActionMove || cmd.DX != -1 || cmd.DY != 0 {
		t.Errorf("command mangled in transit: %+v", cmd)
	}
}

func TestProcessCommandEquipRouting(t *testing.T) {
	svc := NewService(testConfig())
	if err := svc.ProcessCommand(clientCmd("a", "EQUIP", `{"armor":3}`)); err != nil {
		t.Fatal(err)
	}
	cmd := <-svc.CommandChan
	if !cmd.ArmorSlot || cmd.Slot != 3 {
		t.Errorf("armor equip mangled: %+v", cmd)
	}

	if err := svc.ProcessCommand(clientCmd("a", "EQUIP", `{"weapon":2}`)); err != nil {
		t.Fatal(err)
	}
	cmd = <-svc.CommandChan
	if cmd.ArmorSlot || cmd.Slot != 2 {
		t.Errorf("weapon equip mangled: %+v", cmd)
	}
}

func TestProcessCommandBackpressure(t *testing.T) {
	cfg := testConfig()
	cfg.Tuning.CommandBuffer = 1
	svc := NewService(cfg)

	if err := svc.ProcessCommand(clientCmd("a", "WAIT", "{}")); err != nil {
		t.Fatal(err)
	}
	if err := svc.ProcessCommand(clientCmd("a", "WAIT", "{}")); err == nil {
		t.Error("full channel must push back, not block")
	}
}

func TestDispatchCreatesSessionOnInit(t *testing.T) {
	svc := NewService(testConfig())

	svc.dispatch(domain.InternalCommand{Token: "a", Action: domain.ActionWait})
	if svc.SessionCount() != 0 {
		t.Fatal("non-INIT command must not create a session")
	}

	svc.dispatch(domain.InternalCommand{Token: "a", Action: domain.ActionInit})
	if svc.SessionCount() != 1 {
		t.Fatal("INIT must create a session")
	}

	svc.dispatch(domain.InternalCommand{Token: "a", Action: domain.ActionWait})
	if svc.sessions["a"].Tick != 1 {
		t.Errorf("dispatched wait must advance the session, tick=%d", svc.sessions["a"].Tick)
	}
}

func TestDispatchSessionLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Tuning.MaxSessions = 1
	svc := NewService(cfg)

	svc.dispatch(domain.InternalCommand{Token: "a", Action: domain.ActionInit})
	svc.dispatch(domain.InternalCommand{Token: "b", Action: domain.ActionInit})
	if svc.SessionCount() != 1 {
		t.Errorf("session limit ignored, count=%d", svc.SessionCount())
	}

	// Свой же токен пересоздается и при заполненном лимите.
	svc.sessions["a"].GameOver = true
	svc.dispatch(domain.InternalCommand{Token: "a", Action: domain.ActionInit})
	if svc.SessionCount() != 1 || svc.sessions["a"].GameOver {
		t.Error("finished session must be replaceable within the limit")
	}
}

func TestEvictStale(t *testing.T) {
	cfg := testConfig()
	cfg.Tuning.SessionTTL = 1 // наносекунда: все просрочено
	svc := NewService(cfg)

	svc.dispatch(domain.InternalCommand{Token: "a", Action: domain.ActionInit})
	svc.evictStale()
	if svc.SessionCount() != 0 {
		t.Error("stale session must be evicted")
	}
}
