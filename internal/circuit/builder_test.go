package circuit

import "testing"

func TestBuilderFluentChain(t *testing.T) {
	c := NewBuilder("chain", 2).H(0).CX(0, 1).CZ(1, 0).Swap(0, 1).Build()

	ops := c.Ops()
	if len(ops) != 4 {
		t.Fatalf("got %d ops, want 4", len(ops))
	}

	if ops[0].Gate != GateH || !ops[0].IsSingleQubit() {
		t.Errorf("op 0: got %+v, want a single-qubit H", ops[0])
	}

	if ops[1].Gate != GateX || len(ops[1].Controls) != 1 || ops[1].Controls[0] != 0 || ops[1].Targets[0] != 1 {
		t.Errorf("op 1: got %+v, want CX(0,1) encoded as controlled X", ops[1])
	}

	if ops[2].Gate != GateZ || ops[2].Controls[0] != 1 || ops[2].Targets[0] != 0 {
		t.Errorf("op 2: got %+v, want CZ(1,0) encoded as controlled Z", ops[2])
	}

	if !ops[3].IsSwap() {
		t.Errorf("op 3: got %+v, want a SWAP", ops[3])
	}
}

func TestBuilderRZWithFreeParam(t *testing.T) {
	c := NewBuilder("param", 1).RZ(Free("theta"), 0).Build()

	ops := c.Ops()
	if len(ops) != 1 || !ops[0].IsSymbolicParameterized() {
		t.Fatalf("got %+v, want a symbolic RZ", ops)
	}

	if got := c.FreeVariables(); len(got) != 1 || got[0] != "theta" {
		t.Fatalf("got %v, want [theta]", got)
	}
}

func TestBuilderGlobalPhase(t *testing.T) {
	c := NewBuilder("phase", 1).GlobalPhase(3.14).Build()

	ops := c.Ops()
	if len(ops) != 1 || ops[0].Gate != GatePhase || len(ops[0].Targets) != 0 {
		t.Fatalf("got %+v, want a single untargeted GlobalPhase op", ops)
	}
}

func TestBuilderAncillaAndGarbage(t *testing.T) {
	c := NewBuilder("anc", 3).AncillaQubits(1).GarbageQubit(2).Build()

	if c.Ancillary() != 1 {
		t.Errorf("got %d ancillary qubits, want 1", c.Ancillary())
	}

	if !c.IsGarbage(2) {
		t.Errorf("qubit 2 should be marked garbage")
	}
}

func TestBuilderResetAndMeasure(t *testing.T) {
	c := NewBuilder("rm", 1).Reset(0).Measure(0, 0).Build()

	ops := c.Ops()
	if len(ops) != 2 {
		t.Fatalf("got %d ops, want 2", len(ops))
	}

	if ops[0].Kind != KindReset {
		t.Errorf("op 0: got %+v, want a reset", ops[0])
	}

	if ops[1].Kind != KindMeasurement || ops[1].ClassicalBit != 0 {
		t.Errorf("op 1: got %+v, want a measurement into classical bit 0", ops[1])
	}
}
