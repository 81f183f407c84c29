package preprocess

import (
	"testing"

	"github.com/mqt-go/qcec/internal/circuit"
)

func TestBackpropagateOutputPermutation(t *testing.T) {
	c := circuit.New("bp", 2)

	outPerm := c.OutputPermutation()
	outPerm.Set(0, 1)
	outPerm.Set(1, 0)
	c.SetOutputPermutation(outPerm)

	backpropagateOutputPermutation(c)

	layout := c.Layout()
	if v, ok := layout.Get(0); !ok || v != 1 {
		t.Errorf("Get(0) = (%d,%v), want (1,true) after back-propagating the output permutation", v, ok)
	}

	if v, ok := layout.Get(1); !ok || v != 0 {
		t.Errorf("Get(1) = (%d,%v), want (0,true) after back-propagating the output permutation", v, ok)
	}
}

func TestElidePermutationsRemovesSwapAndRelabels(t *testing.T) {
	c := circuit.New("elide", 2)
	c.SetOps([]circuit.Operation{
		{Kind: circuit.KindUnitary, Gate: circuit.GateSwap, Targets: []uint{0, 1}},
		{Kind: circuit.KindUnitary, Gate: circuit.GateX, Targets: []uint{0}},
	})

	elidePermutations(c)

	ops := c.Ops()
	if len(ops) != 1 {
		t.Fatalf("got %d ops, want 1 (the SWAP itself should be elided)", len(ops))
	}

	if ops[0].Targets[0] != 1 {
		t.Fatalf("got target %d, want 1: the X originally on physical wire 0 now flows through wire 1 after the elided swap", ops[0].Targets[0])
	}

	outPerm := c.OutputPermutation()
	if v, ok := outPerm.Get(1); !ok || v != 0 {
		t.Errorf("Get(1) = (%d,%v), want (0,true): wire 1 carries what was originally logical qubit 0 at the output", v, ok)
	}

	if v, ok := outPerm.Get(0); !ok || v != 1 {
		t.Errorf("Get(0) = (%d,%v), want (1,true): wire 0 carries what was originally logical qubit 1 at the output", v, ok)
	}
}
