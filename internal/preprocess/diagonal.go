package preprocess

import "github.com/mqt-go/qcec/internal/circuit"

var diagonalGates = map[circuit.GateType]bool{
	circuit.GateZ: true, circuit.GateS: true, circuit.GateSdg: true,
	circuit.GateT: true, circuit.GateTdg: true, circuit.GateRZ: true,
	circuit.GatePhase: true,
}

// removeDiagonalBeforeMeasure implements spec section 4.1 step 6 (optional,
// default off): a diagonal single-qubit gate whose very next operation in
// the sequence is a measurement of the same qubit cannot change that
// measurement's distribution and is dropped. Any operation in between, on
// any qubit, keeps the gate; whether the measurement is the qubit's last
// operation is not checked.
func removeDiagonalBeforeMeasure(c *circuit.Circuit) {
	ops := c.Ops()
	measuredQubit := make(map[int]uint) // measurement op index -> qubit
	//
	for i, op := range ops {
		if op.Kind == circuit.KindMeasurement {
			measuredQubit[i] = op.Targets[0]
		}
	}
	//
	drop := make([]bool, len(ops))
	//
	for i, op := range ops {
		if !(op.IsSingleQubit() && diagonalGates[op.Gate]) {
			continue
		}
		//
		q := op.Targets[0]
		//
		j := i + 1
		for j < len(ops) && drop[j] {
			j++
		}
		//
		if j < len(ops) && ops[j].Kind == circuit.KindMeasurement && ops[j].Targets[0] == q {
			drop[i] = true
		}
	}
	//
	out := make([]circuit.Operation, 0, len(ops))
	//
	for i, op := range ops {
		if !drop[i] {
			out = append(out, op)
		}
	}
	//
	c.SetOps(out)
}
