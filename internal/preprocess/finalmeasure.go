package preprocess

import "github.com/mqt-go/qcec/internal/circuit"

// removeFinalMeasurements implements spec section 4.1 step 10: drop the
// measurements that form the circuit's trailing run of measurements (one
// followed by any other kind of operation, on any qubit, stays), marking the
// measured qubit as garbage so a downstream checker still treats its final
// state as unconstrained rather than silently comparing it via the
// leftover classical-bit bookkeeping.
func removeFinalMeasurements(c *circuit.Circuit) {
	ops := c.Ops()
	out := make([]circuit.Operation, 0, len(ops))
	//
	for i, op := range ops {
		if op.Kind == circuit.KindMeasurement && isFinalMeasurement(ops, i) {
			c.MarkGarbage(op.Targets[0])
			continue
		}
		//
		out = append(out, op)
	}
	//
	c.SetOps(out)
}

func isFinalMeasurement(ops []circuit.Operation, from int) bool {
	for i := from; i < len(ops); i++ {
		if ops[i].Kind != circuit.KindMeasurement {
			return false
		}
	}
	//
	return true
}
