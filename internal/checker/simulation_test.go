package checker

import (
	"sync/atomic"
	"testing"

	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/dd"
)

func TestRunSimulationIdenticalCircuitsAreEquivalent(t *testing.T) {
	c1 := circuit.New("h", 1)
	c1.SetOps([]circuit.Operation{{Kind: circuit.KindUnitary, Gate: circuit.GateH, Targets: []uint{0}}})

	c2 := circuit.New("h2", 1)
	c2.SetOps([]circuit.Operation{{Kind: circuit.KindUnitary, Gate: circuit.GateH, Targets: []uint{0}}})

	pkg := dd.NewPackage(1e-9)
	stimulus := pkg.ComputationalBasisState(1, 0)
	cfg := Config{NumericalTolerance: 1e-6, FidelityThreshold: 1e-6}
	abort := &atomic.Bool{}

	result := RunSimulation(c1, c2, stimulus, pkg, sequentialScheme(1, 1), cfg, abort)
	if result.Verdict != Equivalent && result.Verdict != EquivalentUpToPhase {
		t.Fatalf("got %s, want Equivalent (or up to phase) for H vs H on the same stimulus", result.Verdict)
	}

	if result.Counterexample != nil {
		t.Fatalf("an equivalent verdict must not attach a counterexample")
	}
}

func TestRunSimulationDifferentCircuitsAreNotEquivalent(t *testing.T) {
	c1 := circuit.New("x", 1)
	c1.SetOps([]circuit.Operation{{Kind: circuit.KindUnitary, Gate: circuit.GateX, Targets: []uint{0}}})

	c2 := circuit.New("id", 1)
	c2.SetOps(nil)

	pkg := dd.NewPackage(1e-9)
	stimulus := pkg.ComputationalBasisState(1, 0)
	cfg := Config{NumericalTolerance: 1e-6, FidelityThreshold: 1e-6}
	abort := &atomic.Bool{}

	result := RunSimulation(c1, c2, stimulus, pkg, sequentialScheme(1, 0), cfg, abort)
	if result.Verdict != NotEquivalent {
		t.Fatalf("got %s, want NotEquivalent: X|0> and |0> are orthogonal", result.Verdict)
	}

	if result.Counterexample == nil {
		t.Fatalf("a NotEquivalent simulation verdict must attach a counterexample")
	}

	if result.Counterexample.Stimulus != stimulus {
		t.Fatalf("counterexample must carry the drawn stimulus")
	}
}

func TestRunSimulationAbortsImmediately(t *testing.T) {
	c1 := circuit.New("a", 1)
	c1.SetOps([]circuit.Operation{{Kind: circuit.KindUnitary, Gate: circuit.GateH, Targets: []uint{0}}})

	c2 := circuit.New("b", 1)
	c2.SetOps([]circuit.Operation{{Kind: circuit.KindUnitary, Gate: circuit.GateH, Targets: []uint{0}}})

	pkg := dd.NewPackage(1e-9)
	stimulus := pkg.ComputationalBasisState(1, 0)
	cfg := Config{NumericalTolerance: 1e-6, FidelityThreshold: 1e-6}
	abort := &atomic.Bool{}
	abort.Store(true)

	result := RunSimulation(c1, c2, stimulus, pkg, sequentialScheme(1, 1), cfg, abort)
	if result.Verdict != NoInformation {
		t.Fatalf("got %s, want NoInformation once aborted", result.Verdict)
	}
}
