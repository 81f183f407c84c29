package preprocess

import "github.com/mqt-go/qcec/internal/circuit"

// alignAncillaries implements spec section 4.1 step 9: pad the narrower
// circuit with trailing idle qubits and equalize both circuits' ancillary
// counts, so a checker comparing physical wire i on both sides always finds
// it classified the same way (both primary or both ancillary) on both
// sides.
func alignAncillaries(c1, c2 *circuit.Circuit) {
	w1, w2 := c1.Qubits(), c2.Qubits()
	//
	if w1 < w2 {
		d := w2 - w1
		padIdentity(c1, w1, w2)
		c1.GrowQubits(d)
		c1.SetAncillary(c1.Ancillary() + d)
	} else if w2 < w1 {
		d := w1 - w2
		padIdentity(c2, w2, w1)
		c2.GrowQubits(d)
		c2.SetAncillary(c2.Ancillary() + d)
	}
	//
	a1, a2 := c1.Ancillary(), c2.Ancillary()
	//
	if a1 < a2 {
		c1.SetAncillary(a2)
	} else if a2 < a1 {
		c2.SetAncillary(a1)
	}
}

// padIdentity fills the layout and output permutation with identity entries
// for the newly added qubit range [from, to), so the freshly grown qubits
// have a well-defined mapping instead of an absent one.
func padIdentity(c *circuit.Circuit, from, to uint) {
	layout := c.Layout()
	outPerm := c.OutputPermutation()
	//
	for q := from; q < to; q++ {
		if !layout.Contains(q) {
			layout.Set(q, q)
		}
		//
		if !outPerm.Contains(q) {
			outPerm.Set(q, q)
		}
	}
}
