package preprocess

import "github.com/mqt-go/qcec/internal/circuit"

// backpropagateOutputPermutation implements spec section 4.1 step 3: push
// the output permutation to the input side so both ends of the circuit
// share the same permutation.
func backpropagateOutputPermutation(c *circuit.Circuit) {
	c.SetLayout(c.OutputPermutation().Clone())
}

// elidePermutations implements spec section 4.1 step 4: remove SWAPs by
// tracking, for each physical wire, which logical qubit currently flows
// through it, and relabeling every subsequent operation through that
// running map instead of physically swapping. The accumulated relabeling is
// folded into the circuit's output permutation so downstream comparisons
// still see the original logical-qubit identities at the output.
func elidePermutations(c *circuit.Circuit) {
	n := c.Qubits()
	running := make([]uint, n)
	//
	for i := range running {
		running[i] = uint(i)
	}
	//
	ops := c.Ops()
	out := make([]circuit.Operation, 0, len(ops))
	//
	for _, op := range ops {
		if op.IsSwap() {
			a, b := op.Targets[0], op.Targets[1]
			running[a], running[b] = running[b], running[a]
			continue
		}
		//
		relabeled := op
		relabeled.Targets = relabel(op.Targets, running)
		relabeled.Controls = relabel(op.Controls, running)
		out = append(out, relabeled)
	}
	//
	c.SetOps(out)
	//
	outPerm := c.OutputPermutation()
	folded := outPerm.Clone()
	//
	for physical := uint(0); physical < n; physical++ {
		if logical, ok := outPerm.Get(running[physical]); ok {
			folded.Set(physical, logical)
		}
	}
	//
	c.SetOutputPermutation(folded)
}

func relabel(qs []uint, running []uint) []uint {
	if qs == nil {
		return nil
	}
	//
	out := make([]uint, len(qs))
	//
	for i, q := range qs {
		out[i] = running[q]
	}
	//
	return out
}
