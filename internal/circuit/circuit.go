// Package circuit implements the circuit-IR adapter collaborator described
// in spec section 4.1: qubit counts, ancillary/garbage bookkeeping, layout
// permutations and the operation sequence the rest of the engine consumes.
package circuit

import (
	"github.com/mqt-go/qcec/internal/bitset"
	"github.com/mqt-go/qcec/internal/permutation"
)

// Circuit is a mutable quantum circuit over a fixed number of qubits. The
// preprocessor is the only component permitted to mutate a Circuit; after
// preprocessing completes, a Circuit is treated as immutable (spec section
// 3's lifecycle invariant).
type Circuit struct {
	// Name is used only for diagnostics.
	Name string
	// qubits is the total number of qubits, including ancillaries.
	qubits uint
	// ancillary is the number of trailing qubits treated as scratch space.
	ancillary uint
	// garbage marks qubits whose final state is ignored for total
	// equivalence (only inspected for partial equivalence).
	garbage *bitset.Set
	// layout maps physical index -> logical index at the start of the
	// circuit.
	layout permutation.Permutation
	// outputPermutation maps physical index -> logical index at the end of
	// the circuit.
	outputPermutation permutation.Permutation
	// ops is the ordered operation sequence.
	ops []Operation
	// freeVars is the set of free (symbolic) variable names appearing in
	// any operation's parameters.
	freeVars map[string]bool
}

// New constructs an empty circuit over the given number of qubits, with an
// identity initial layout and output permutation.
func New(name string, qubits uint) *Circuit {
	return &Circuit{
		Name:              name,
		qubits:            qubits,
		garbage:           bitset.New(qubits),
		layout:            permutation.Identity(qubits),
		outputPermutation: permutation.Identity(qubits),
		freeVars:          make(map[string]bool),
	}
}

// Qubits returns the total number of qubits, including ancillaries.
func (c *Circuit) Qubits() uint { return c.qubits }

// Ancillary returns the number of ancillary qubits.
func (c *Circuit) Ancillary() uint { return c.ancillary }

// Primary returns the number of non-ancillary ("primary") qubits.
func (c *Circuit) Primary() uint { return c.qubits - c.ancillary }

// SetAncillary sets the number of trailing ancillary qubits.
func (c *Circuit) SetAncillary(n uint) { c.ancillary = n }

// GrowQubits increases the qubit count by n, used by the dynamic-circuit
// transform when substituting a reset with a fresh ancillary qubit, and by
// ancillary alignment when padding a circuit up to a shared width.
func (c *Circuit) GrowQubits(n uint) { c.qubits += n }

// ShrinkQubits decreases the qubit count by n, used by idle-qubit stripping
// after the corresponding Operation indices and permutations have already
// been renumbered.
func (c *Circuit) ShrinkQubits(n uint) { c.qubits -= n }

// SetGarbage replaces the garbage-qubit set wholesale, used by idle-qubit
// stripping to renumber it alongside the circuit's qubits.
func (c *Circuit) SetGarbage(g *bitset.Set) { c.garbage = g }

// IsGarbage reports whether logical qubit q is marked as garbage.
func (c *Circuit) IsGarbage(q uint) bool { return c.garbage.Contains(q) }

// MarkGarbage marks logical qubit q as garbage.
func (c *Circuit) MarkGarbage(q uint) { c.garbage.Insert(q) }

// Garbage returns the underlying garbage-qubit set.
func (c *Circuit) Garbage() *bitset.Set { return c.garbage }

// Layout returns the initial physical->logical layout.
func (c *Circuit) Layout() permutation.Permutation { return c.layout }

// SetLayout replaces the initial layout.
func (c *Circuit) SetLayout(p permutation.Permutation) { c.layout = p }

// OutputPermutation returns the final physical->logical permutation.
func (c *Circuit) OutputPermutation() permutation.Permutation { return c.outputPermutation }

// SetOutputPermutation replaces the output permutation.
func (c *Circuit) SetOutputPermutation(p permutation.Permutation) { c.outputPermutation = p }

// Ops returns the operation sequence.
func (c *Circuit) Ops() []Operation { return c.ops }

// SetOps replaces the operation sequence wholesale (used by the
// preprocessor).
func (c *Circuit) SetOps(ops []Operation) { c.ops = ops }

// AddOp appends an operation, recording any free variables it introduces.
func (c *Circuit) AddOp(op Operation) {
	c.ops = append(c.ops, op)
	//
	for _, p := range op.Params {
		if p.IsFree {
			c.freeVars[p.Symbol] = true
		}
	}
}

// FreeVariables returns the set of free-variable names appearing anywhere in
// this circuit.
func (c *Circuit) FreeVariables() []string {
	out := make([]string, 0, len(c.freeVars))
	//
	for name := range c.freeVars {
		out = append(out, name)
	}
	//
	return out
}

// IsIdle reports whether logical qubit q has no operation touching it.
func (c *Circuit) IsIdle(q uint) bool {
	for _, op := range c.ops {
		for _, t := range op.Qubits() {
			if t == q {
				return false
			}
		}
	}
	//
	return true
}

// HasDynamicPrimitives reports whether this circuit contains resets,
// mid-circuit measurements or classically-controlled operations (spec
// section 4.1 step 1).
func (c *Circuit) HasDynamicPrimitives() bool {
	for i, op := range c.ops {
		if op.Kind == KindReset || op.IsClassicallyControlled() {
			return true
		}
		//
		if op.Kind == KindMeasurement && i != lastMeasurementIndex(c.ops, op.ClassicalBit) {
			return true
		}
		// any measurement not already at the very end counts as
		// "mid-circuit"
		if op.Kind == KindMeasurement && !isSuffixOfMeasurements(c.ops, i) {
			return true
		}
	}
	//
	return false
}

func lastMeasurementIndex(ops []Operation, bit uint) int {
	last := -1
	//
	for i, op := range ops {
		if op.Kind == KindMeasurement && op.ClassicalBit == bit {
			last = i
		}
	}
	//
	return last
}

func isSuffixOfMeasurements(ops []Operation, from int) bool {
	for i := from; i < len(ops); i++ {
		if ops[i].Kind != KindMeasurement {
			return false
		}
	}
	//
	return true
}

// Clone returns a deep copy of this circuit.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{
		Name:              c.Name,
		qubits:            c.qubits,
		ancillary:         c.ancillary,
		garbage:           c.garbage.Clone(),
		layout:            c.layout.Clone(),
		outputPermutation: c.outputPermutation.Clone(),
		ops:               append([]Operation(nil), c.ops...),
		freeVars:          make(map[string]bool, len(c.freeVars)),
	}
	//
	for k, v := range c.freeVars {
		out.freeVars[k] = v
	}
	//
	return out
}
