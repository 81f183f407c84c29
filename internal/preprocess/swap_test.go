package preprocess

import (
	"testing"

	"github.com/mqt-go/qcec/internal/circuit"
)

func cx(ctrl, tgt uint) circuit.Operation {
	return circuit.Operation{Kind: circuit.KindUnitary, Gate: circuit.GateX, Controls: []uint{ctrl}, Targets: []uint{tgt}}
}

func TestReconstructSwapsDetectsFredkinPattern(t *testing.T) {
	c := circuit.New("swap", 2)
	c.SetOps([]circuit.Operation{cx(0, 1), cx(1, 0), cx(0, 1)})

	reconstructSwaps(c)

	ops := c.Ops()
	if len(ops) != 1 || !ops[0].IsSwap() {
		t.Fatalf("got %+v, want a single SWAP", ops)
	}

	if ops[0].Targets[0] != 0 || ops[0].Targets[1] != 1 {
		t.Errorf("got targets %v, want [0 1]", ops[0].Targets)
	}
}

func TestReconstructSwapsLeavesUnrelatedGatesAlone(t *testing.T) {
	h := circuit.Operation{Kind: circuit.KindUnitary, Gate: circuit.GateH, Targets: []uint{0}}
	c := circuit.New("noswap", 2)
	c.SetOps([]circuit.Operation{h, cx(0, 1)})

	reconstructSwaps(c)

	if len(c.Ops()) != 2 {
		t.Fatalf("a circuit with no CX triple should be left unchanged, got %+v", c.Ops())
	}
}

func TestReconstructSwapsRequiresMatchingPairOrientation(t *testing.T) {
	c := circuit.New("mismatch", 3)
	c.SetOps([]circuit.Operation{cx(0, 1), cx(1, 2), cx(0, 1)})

	reconstructSwaps(c)

	if len(c.Ops()) != 3 {
		t.Fatalf("three CNOTs not forming a fredkin pattern must be left unchanged, got %+v", c.Ops())
	}
}
