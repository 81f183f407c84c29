package dd

import (
	"math"
	"testing"

	"github.com/mqt-go/qcec/internal/circuit"
)

func TestIdentityIsCloseToIdentity(t *testing.T) {
	p := NewPackage(1e-9)
	id := p.Identity(2)

	if !p.IsCloseToIdentity(id, 1e-6) {
		t.Fatalf("the identity operator must be close to itself")
	}
}

func TestApplyGateXFlipsZeroToOne(t *testing.T) {
	p := NewPackage(1e-9)
	zero := p.ComputationalBasisState(1, 0)
	one := p.ComputationalBasisState(1, 1)

	flipped := p.ApplyGate(zero, circuit.GateX, nil, []uint{0}, nil)

	if !SamePointer(flipped, one) {
		t.Fatalf("X|0> should intern to the same canonical node as |1>")
	}
}

func TestApplyGateHThenHIsIdentityOnState(t *testing.T) {
	p := NewPackage(1e-9)
	zero := p.ComputationalBasisState(1, 0)

	once := p.ApplyGate(zero, circuit.GateH, nil, []uint{0}, nil)
	twice := p.ApplyGate(once, circuit.GateH, nil, []uint{0}, nil)

	if !SamePointer(twice, zero) {
		t.Fatalf("H*H|0> should equal |0> again")
	}
}

func TestApplyGateControlledXRespectsControl(t *testing.T) {
	p := NewPackage(1e-9)
	zeroZero := p.ComputationalBasisState(2, 0)  // |00>
	oneZero := p.ComputationalBasisState(2, 1)   // |01> (qubit 0 set)
	oneOne := p.ComputationalBasisState(2, 0b11) // |11>

	untouched := p.ApplyGate(zeroZero, circuit.GateX, nil, []uint{1}, []uint{0})
	if !SamePointer(untouched, zeroZero) {
		t.Fatalf("a controlled-X with an unsatisfied control must act as identity")
	}

	flipped := p.ApplyGate(oneZero, circuit.GateX, nil, []uint{1}, []uint{0})
	if !SamePointer(flipped, oneOne) {
		t.Fatalf("a controlled-X with a satisfied control must flip the target")
	}
}

func TestApplyGateSwap(t *testing.T) {
	p := NewPackage(1e-9)
	oneZero := p.ComputationalBasisState(2, 1) // qubit 0 = 1, qubit 1 = 0
	zeroOne := p.ComputationalBasisState(2, 2) // qubit 0 = 0, qubit 1 = 1

	swapped := p.ApplyGate(oneZero, circuit.GateSwap, nil, []uint{0, 1}, nil)
	if !SamePointer(swapped, zeroOne) {
		t.Fatalf("SWAP must exchange the two qubits' amplitudes")
	}
}

func TestMultiplyMatrixTimesVector(t *testing.T) {
	p := NewPackage(1e-9)
	x := p.Identity(1)
	x = p.ApplyGate(x, circuit.GateX, nil, []uint{0}, nil)
	zero := p.ComputationalBasisState(1, 0)
	one := p.ComputationalBasisState(1, 1)

	out := p.Multiply(x, zero)
	if !SamePointer(out, one) {
		t.Fatalf("X*|0> should equal |1>")
	}
}

func TestConjugateTransposeOfXIsX(t *testing.T) {
	p := NewPackage(1e-9)
	x := p.Identity(1)
	x = p.ApplyGate(x, circuit.GateX, nil, []uint{0}, nil)

	xt := p.ConjugateTranspose(x)
	if !SamePointer(xt, x) {
		t.Fatalf("X is Hermitian, its conjugate transpose should intern to the same node")
	}
}

func TestInnerProductOfOrthogonalStatesIsZero(t *testing.T) {
	p := NewPackage(1e-9)
	zero := p.ComputationalBasisState(1, 0)
	one := p.ComputationalBasisState(1, 1)

	ip := p.InnerProduct(zero, one)
	if math.Abs(real(ip)) > 1e-9 || math.Abs(imag(ip)) > 1e-9 {
		t.Fatalf("got <0|1> = %v, want 0", ip)
	}
}

func TestInnerProductOfStateWithItselfIsOne(t *testing.T) {
	p := NewPackage(1e-9)
	zero := p.ComputationalBasisState(1, 0)

	ip := p.InnerProduct(zero, zero)
	if math.Abs(real(ip)-1) > 1e-9 || math.Abs(imag(ip)) > 1e-9 {
		t.Fatalf("got <0|0> = %v, want 1", ip)
	}
}

func TestReduceAncillaryDropsTrailingQubit(t *testing.T) {
	p := NewPackage(1e-9)
	state := p.ComputationalBasisState(2, 0) // |00>, ancillary qubit (index 1) held at 0

	reduced := p.ReduceAncillary(state, 1)
	if reduced.Qubits() != 1 {
		t.Fatalf("got %d qubits after reducing 1 ancillary, want 1", reduced.Qubits())
	}

	want := p.ComputationalBasisState(1, 0)
	if !SamePointer(reduced, want) {
		t.Fatalf("reducing an ancillary held at |0> should leave the primary state unchanged")
	}
}

func TestPermuteQubitsSwapsAxes(t *testing.T) {
	p := NewPackage(1e-9)
	oneZero := p.ComputationalBasisState(2, 1) // qubit0=1, qubit1=0
	zeroOne := p.ComputationalBasisState(2, 2) // qubit0=0, qubit1=1

	permuted := p.PermuteQubits(oneZero, []uint{1, 0})
	if !SamePointer(permuted, zeroOne) {
		t.Fatalf("swapping qubit axes 0<->1 on |10> (little-endian) should give |01>")
	}
}

func TestHandleSizeCountsNonzeroAmplitudes(t *testing.T) {
	p := NewPackage(1e-9)
	zero := p.ComputationalBasisState(2, 0)

	if got := zero.Size(); got != 1 {
		t.Fatalf("got %d, want 1 nonzero amplitude for a computational basis state", got)
	}

	plus := p.ApplyGate(zero, circuit.GateH, nil, []uint{0}, nil)
	if got := plus.Size(); got != 2 {
		t.Fatalf("got %d, want 2 nonzero amplitudes after Hadamard superposition", got)
	}
}
