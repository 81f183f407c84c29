package preprocess

import (
	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/dd"
)

// fuseSingleQubitGates implements spec section 4.1 step 5: replace maximal
// runs of single-qubit gates on the same qubit by one compound operation,
// applying trivial cancellation laws (X*X=I, H*H=I, ...) as a side effect of
// composing their matrices. Gates with a free (symbolic) parameter cannot be
// folded into a concrete matrix and end any run they would otherwise join.
func fuseSingleQubitGates(c *circuit.Circuit) {
	ops := c.Ops()
	out := make([]circuit.Operation, 0, len(ops))
	//
	var (
		pending = make(map[uint][4]complex128)
		hasRun  = make(map[uint]bool)
	)
	//
	flush := func(q uint) {
		if hasRun[q] {
			m := pending[q]
			out = append(out, circuit.Operation{
				Kind: circuit.KindUnitary, Gate: circuit.GateCompound,
				Targets: []uint{q}, Matrix: &m,
			})
			delete(pending, q)
			delete(hasRun, q)
		}
	}
	//
	for _, op := range ops {
		if op.IsSingleQubit() && !op.IsSymbolicParameterized() && op.Gate != circuit.GateCompound {
			q := op.Targets[0]
			m := dd.GateMatrix(op.Gate, circuit.ParamValues(op.Params))
			//
			if !hasRun[q] {
				pending[q] = dd.Identity2
			}
			//
			pending[q] = dd.ComposeMatrix2(pending[q], m)
			hasRun[q] = true
			continue
		}
		//
		if op.IsSingleQubit() && !op.IsSymbolicParameterized() && op.Gate == circuit.GateCompound {
			q := op.Targets[0]
			//
			if !hasRun[q] {
				pending[q] = dd.Identity2
			}
			//
			pending[q] = dd.ComposeMatrix2(pending[q], *op.Matrix)
			hasRun[q] = true
			continue
		}
		// any other operation touches one or more qubits: flush any
		// pending run on each of them first, to preserve ordering.
		for _, q := range op.Qubits() {
			flush(q)
		}
		//
		out = append(out, op)
	}
	//
	remaining := make([]uint, 0, len(hasRun))
	for q := range hasRun {
		remaining = append(remaining, q)
	}
	//
	for _, q := range remaining {
		flush(q)
	}
	//
	c.SetOps(out)
}
