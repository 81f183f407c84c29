package preprocess

import "github.com/mqt-go/qcec/internal/circuit"

// canonicalReorder implements spec section 4.1 step 7 over the dependency
// DAG of the operations. Two operations are dependent (an edge in the DAG)
// if they share a qubit or a classical bit; edges run from the earlier
// operation in the original sequence to the later one. The result is a
// topological sort that, among all operations whose dependencies are
// already satisfied, always emits the one with the smallest original index.
// The earliest remaining operation always has every dependency emitted, so
// this reproduces the input order: two inputs that differ only in the order
// of independent operations are not brought to a common order.
func canonicalReorder(ops []circuit.Operation) []circuit.Operation {
	n := len(ops)
	if n == 0 {
		return ops
	}
	//
	lastOnResource := make(map[uint]int)
	deps := make([][]int, n)  // deps[i]: indices i depends on
	succs := make([][]int, n) // succs[i]: indices depending on i
	//
	for i, op := range ops {
		for _, res := range resourcesOf(op) {
			if j, ok := lastOnResource[res]; ok && j != i {
				deps[i] = append(deps[i], j)
				succs[j] = append(succs[j], i)
			}
			//
			lastOnResource[res] = i
		}
	}
	//
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = len(deps[i])
	}
	//
	ready := make([]int, 0, n)
	for i, r := range remaining {
		if r == 0 {
			ready = append(ready, i)
		}
	}
	//
	out := make([]circuit.Operation, 0, n)
	//
	for len(ready) > 0 {
		// pick the smallest original index among the ready set
		best := 0
		//
		for k, idx := range ready {
			if idx < ready[best] {
				best = k
			}
		}
		//
		chosen := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		out = append(out, ops[chosen])
		//
		for _, s := range succs[chosen] {
			remaining[s]--
			//
			if remaining[s] == 0 {
				ready = append(ready, s)
			}
		}
	}
	//
	return out
}

// resourcesOf returns a set of resource keys an operation depends on: each
// qubit it touches, encoded directly, and each classical bit it touches
// (measurement target or classical condition), encoded in a disjoint range
// so a qubit index and a classical-bit index never collide.
func resourcesOf(op circuit.Operation) []uint {
	const classicalOffset = uint(1) << 32
	//
	out := append([]uint{}, op.Qubits()...)
	//
	if op.Kind == circuit.KindMeasurement {
		out = append(out, classicalOffset+op.ClassicalBit)
	}
	//
	if op.Cond != nil {
		out = append(out, classicalOffset+op.Cond.Bit)
	}
	//
	return out
}
