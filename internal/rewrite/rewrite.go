// Package rewrite implements the graph-rewrite backend collaborator of spec
// section 4.5. A real deployment sources the specific reduction rules (a ZX
// calculus or similar term-rewriting system) from a dedicated graph-rewrite
// collaborator the spec treats as out of scope (spec section 1). This
// package is a reference stand-in built on the same dense DD representation
// as internal/dd: the functionality miter of two circuits is an exact dense
// matrix rather than a reduced graph, so "full reduce" degenerates to
// constructing that matrix outright, and the residual-structure acceptance
// test (spec section 4.5: "exactly one edge per qubit, every edge
// non-Hadamard") is approximated by the identity-proximity test the DD
// package already exposes for matrix DDs.
package rewrite

import (
	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/dd"
)

// Backend owns the DD package the graph-rewrite checker's reference
// implementation is built on.
type Backend struct {
	pkg *dd.Package
}

// NewBackend constructs a graph-rewrite backend sharing the given DD
// package.
func NewBackend(pkg *dd.Package) *Backend {
	return &Backend{pkg: pkg}
}

// CanHandle implements spec section 4.5's canHandle: the rewriter's
// ancilla-is-garbage adjustment only makes sense when every ancillary qubit
// is, in fact, garbage, and both circuits must share a qubit count to build
// a miter at all.
func (b *Backend) CanHandle(c1, c2 *circuit.Circuit) bool {
	return c1.Qubits() == c2.Qubits() && allAncillaGarbage(c1) && allAncillaGarbage(c2)
}

func allAncillaGarbage(c *circuit.Circuit) bool {
	for q := c.Primary(); q < c.Qubits(); q++ {
		if !c.IsGarbage(q) {
			return false
		}
	}
	//
	return true
}

// Residual is the outcome of reducing the functionality miter: whether the
// reduction accepted (residual diagram is a pure identity up to global
// phase) and, if so, the phase the top edge weight carries.
type Residual struct {
	Accepted    bool
	GlobalPhase complex128
}

// Reduce builds the functionality miter C1^-1 . C2, applies the
// ancilla-is-garbage adjustment (projecting every ancillary qubit to |0> on
// both sides), and tests the result for identity-closeness at successively
// coarser tolerance multiples of baseTolerance — the reference stand-in for
// "repeats with increased aggressiveness until no further simplification
// happens" (spec section 4.5).
func (b *Backend) Reduce(c1, c2 *circuit.Circuit, baseTolerance float64, levels int) Residual {
	u1 := buildUnitary(b.pkg, c1)
	u2 := buildUnitary(b.pkg, c2)
	u1 = b.pkg.ReduceAncillary(u1, c1.Ancillary())
	u2 = b.pkg.ReduceAncillary(u2, c2.Ancillary())
	miter := b.pkg.Multiply(b.pkg.ConjugateTranspose(u1), u2)
	//
	threshold := baseTolerance
	//
	for level := 0; level < levels; level++ {
		if b.pkg.IsCloseToIdentity(miter, threshold) {
			return Residual{Accepted: true, GlobalPhase: miter.Weight}
		}
		//
		threshold *= 10
	}
	//
	return Residual{Accepted: false}
}

func buildUnitary(pkg *dd.Package, c *circuit.Circuit) dd.Handle {
	h := pkg.Identity(c.Qubits())
	//
	for _, op := range c.Ops() {
		if op.Kind != circuit.KindUnitary {
			continue
		}
		//
		if op.Gate == circuit.GateCompound {
			h = pkg.ApplyCompound(h, *op.Matrix, op.Targets[0], op.Controls)
			continue
		}
		//
		h = pkg.ApplyGate(h, op.Gate, circuit.ParamValues(op.Params), op.Targets, op.Controls)
	}
	//
	return h
}
