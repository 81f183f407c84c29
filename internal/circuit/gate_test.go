package circuit

import "testing"

func TestGateTypeString(t *testing.T) {
	cases := map[GateType]string{
		GateIdentity: "I",
		GateX:        "X",
		GateH:        "H",
		GateSdg:      "Sdg",
		GateRZ:       "RZ",
		GatePhase:    "GlobalPhase",
		GateSwap:     "SWAP",
	}

	for g, want := range cases {
		if got := g.String(); got != want {
			t.Errorf("%d: got %q, want %q", g, got, want)
		}
	}
}

func TestGateTypeIsSelfInverse(t *testing.T) {
	for _, g := range []GateType{GateX, GateY, GateZ, GateH, GateSwap, GateIdentity} {
		if !g.IsSelfInverse() {
			t.Errorf("%s should be self-inverse", g)
		}
	}

	for _, g := range []GateType{GateS, GateT, GateRX, GateRZ, GatePhase} {
		if g.IsSelfInverse() {
			t.Errorf("%s should not be self-inverse", g)
		}
	}
}

func TestConcreteAndFree(t *testing.T) {
	c := Concrete(1.5)
	if c.IsFree || c.Value != 1.5 {
		t.Fatalf("got %+v, want a concrete 1.5", c)
	}

	f := Free("theta")
	if !f.IsFree || f.Symbol != "theta" {
		t.Fatalf("got %+v, want a free variable named theta", f)
	}
}

func TestParamValues(t *testing.T) {
	got := ParamValues([]Param{Concrete(1), Concrete(2.5), Free("x")})
	want := []float64{1, 2.5, 0}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
