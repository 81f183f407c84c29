package preprocess

import (
	"github.com/mqt-go/qcec/internal/bitset"
	"github.com/mqt-go/qcec/internal/circuit"
)

// stripIdleQubits implements spec section 4.1 step 8. A qubit idle in both
// circuits carries no information for the equivalence comparison and is
// removed from both, preserving the logical-index correspondence a checker
// relies on. A qubit idle in only one circuit is left alone: removing it
// there but not on the other side would desynchronize the two circuits'
// remaining qubit numbering. Per spec section 3, a qubit is only safe to
// strip if its output-permutation entry is absent or maps the physical
// index back to itself: a non-identity entry (e.g. one elidePermutations
// folded in for a SWAP) still distinguishes the circuit from the identity
// and must not be discarded.
func stripIdleQubits(c1, c2 *circuit.Circuit) {
	n := c1.Qubits()
	if c2.Qubits() < n {
		n = c2.Qubits()
	}
	//
	var idle []uint
	//
	for q := uint(0); q < n; q++ {
		if c1.IsIdle(q) && c2.IsIdle(q) && safeToStrip(c1, q) && safeToStrip(c2, q) {
			idle = append(idle, q)
		}
	}
	// remove from the highest index down so earlier indices in idle remain
	// valid references into the not-yet-shrunk circuits.
	for i := len(idle) - 1; i >= 0; i-- {
		removeIdleQubit(c1, idle[i])
		removeIdleQubit(c2, idle[i])
	}
}

// safeToStrip reports whether the physical qubit q carries no information
// in c's output permutation: either no entry exists for it, or it maps
// back to itself.
func safeToStrip(c *circuit.Circuit, q uint) bool {
	v, ok := c.OutputPermutation().Get(q)
	return !ok || v == q
}

func removeIdleQubit(c *circuit.Circuit, q uint) {
	ops := c.Ops()
	out := make([]circuit.Operation, 0, len(ops))
	//
	for _, op := range ops {
		out = append(out, shiftOpAbove(op, q))
	}
	//
	c.SetOps(out)
	c.SetLayout(c.Layout().DecrementAbove(q))
	c.SetOutputPermutation(c.OutputPermutation().DecrementAbove(q))
	//
	shifted := bitset.New(c.Qubits())
	//
	for _, e := range c.Garbage().Elements() {
		if e == q {
			continue
		}
		//
		if e > q {
			e--
		}
		//
		shifted.Insert(e)
	}
	//
	c.SetGarbage(shifted)
	//
	if q >= c.Primary() && c.Ancillary() > 0 {
		c.SetAncillary(c.Ancillary() - 1)
	}
	//
	c.ShrinkQubits(1)
}

func shiftOpAbove(op circuit.Operation, q uint) circuit.Operation {
	out := op
	out.Targets = shiftIndices(op.Targets, q)
	out.Controls = shiftIndices(op.Controls, q)
	//
	return out
}

func shiftIndices(qs []uint, q uint) []uint {
	if qs == nil {
		return nil
	}
	//
	out := make([]uint, len(qs))
	//
	for i, v := range qs {
		if v > q {
			out[i] = v - 1
		} else {
			out[i] = v
		}
	}
	//
	return out
}
