package domain

import "testing"

func TestParseAction(t *testing.T) {
	cases := []struct {
		in   string
		want ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"LevelUp", ActionLevelUp},
		{"CAST", ActionCast},
		{"EQUIP", ActionEquip},
		{"USE", ActionUse},
		{"WAIT", ActionWait},
		{"INIT", ActionInit},
		{"FLY", ActionUnknown},
		{"", ActionUnknown},
	}
	for _, c := range cases {
		if got := ParseAction(c.in); got != c.want {
			t.Errorf("ParseAction(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	for a := ActionInit; a <= ActionWait; a++ {
		if got := ParseAction(a.String()); got != a {
			t.Errorf("round trip failed for %v", a)
		}
	}
}

func TestPositionHelpers(t *testing.T) {
	p := Position{X: 3, Y: 7}
	if q := p.ClampInto(4, 8); q != p {
		t.Errorf("in-bounds position must be untouched: %v", q)
	}
	if q := (Position{X: 9, Y: -2}).ClampInto(5, 8); q != (Position{X: 4, Y: 0}) {
		t.Errorf("clamp failed: %v", q)
	}
	if d := p.Dist(Position{X: 1, Y: 9}); d != 4 {
		t.Errorf("Dist = %d, want 4", d)
	}
}
