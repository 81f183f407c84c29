package preprocess

import "github.com/mqt-go/qcec/internal/circuit"

// reconstructSwaps implements spec section 4.1 step 2: rewrite three
// consecutive CNOTs on the same qubit pair (in either orientation order, the
// "fredkin" pattern) into a single SWAP. Idempotent: a circuit with no such
// run of three is returned unchanged.
func reconstructSwaps(c *circuit.Circuit) {
	ops := c.Ops()
	out := make([]circuit.Operation, 0, len(ops))
	//
	for i := 0; i < len(ops); i++ {
		if i+2 < len(ops) && isCXTriple(ops[i], ops[i+1], ops[i+2]) {
			a, b := ops[i].Controls[0], ops[i].Targets[0]
			out = append(out, circuit.Operation{Kind: circuit.KindUnitary, Gate: circuit.GateSwap, Targets: []uint{a, b}})
			i += 2
			continue
		}
		//
		out = append(out, ops[i])
	}
	//
	c.SetOps(out)
}

func isCX(op circuit.Operation) bool {
	return op.Kind == circuit.KindUnitary && op.Gate == circuit.GateX &&
		len(op.Controls) == 1 && len(op.Targets) == 1
}

func isCXTriple(a, b, d circuit.Operation) bool {
	if !isCX(a) || !isCX(b) || !isCX(d) {
		return false
	}
	//
	p, q := a.Controls[0], a.Targets[0]
	//
	return b.Controls[0] == q && b.Targets[0] == p &&
		d.Controls[0] == p && d.Targets[0] == q
}
