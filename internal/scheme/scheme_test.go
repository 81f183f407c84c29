package scheme

import "testing"

func TestSequentialDrainsCircuitOneFirst(t *testing.T) {
	s := New(Sequential, 3, 2, nil)

	a, b := s.Next(3, 2, NextArgs{})
	if a != 3 || b != 0 {
		t.Fatalf("got (%d,%d), want (3,0)", a, b)
	}

	a, b = s.Next(0, 2, NextArgs{})
	if a != 0 || b != 2 {
		t.Fatalf("got (%d,%d), want (0,2)", a, b)
	}
}

func TestOneToOneAdvancesInLockstep(t *testing.T) {
	s := New(OneToOne, 3, 3, nil)

	a, b := s.Next(3, 3, NextArgs{})
	if a != 1 || b != 1 {
		t.Fatalf("got (%d,%d), want (1,1)", a, b)
	}

	a, b = s.Next(0, 1, NextArgs{})
	if a != 0 || b != 1 {
		t.Fatalf("got (%d,%d), want (0,1) once circuit 1 is drained", a, b)
	}
}

func TestProportionalScalesByTotalOpCounts(t *testing.T) {
	// circuit 2 has twice as many ops as circuit 1.
	s := New(Proportional, 2, 4, nil)

	a, b := s.Next(2, 4, NextArgs{})
	if a != 1 || b != 2 {
		t.Fatalf("got (%d,%d), want (1,2)", a, b)
	}
}

func TestProportionalClampsToRemaining(t *testing.T) {
	s := New(Proportional, 2, 4, nil)

	a, b := s.Next(2, 1, NextArgs{})
	if a != 1 || b != 1 {
		t.Fatalf("got (%d,%d), want (1,1) clamped to what remains", a, b)
	}
}

func TestGateCostUsesCostFunction(t *testing.T) {
	cost := func(kind string, controls int) uint {
		if kind == "X" && controls == 1 {
			return 3
		}

		return 1
	}

	s := New(GateCost, 5, 30, cost)

	a, b := s.Next(5, 30, NextArgs{NextOpKind: "X", NextOpControls: 1})
	if a != 1 || b != 3 {
		t.Fatalf("got (%d,%d), want (1,3)", a, b)
	}
}

func TestGateCostFallsBackToUniformCost(t *testing.T) {
	s := New(GateCost, 5, 30, nil)

	a, b := s.Next(5, 30, NextArgs{NextOpKind: "H", NextOpControls: 0})
	if a != 1 || b != 1 {
		t.Fatalf("got (%d,%d), want (1,1)", a, b)
	}
}

func TestTagString(t *testing.T) {
	cases := map[Tag]string{
		Sequential:   "sequential",
		OneToOne:     "one_to_one",
		Proportional: "proportional",
		GateCost:     "gate_cost",
		Lookahead:    "lookahead",
	}

	for tag, want := range cases {
		if got := tag.String(); got != want {
			t.Errorf("%d: got %q, want %q", tag, got, want)
		}
	}
}
