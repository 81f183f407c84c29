package preprocess

import (
	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/config"
	"github.com/mqt-go/qcec/internal/qcecerr"
)

// dynamicCircuitTransform implements spec section 4.1 step 1: substitute
// every reset with a fresh ancillary qubit, convert every
// classically-controlled operation into a quantum-controlled one under the
// principle of deferred measurement, and move all measurements to the end.
// If the circuit has no dynamic primitives this is a no-op regardless of the
// config flag.
func dynamicCircuitTransform(c *circuit.Circuit, opt config.Optimizations) error {
	if !c.HasDynamicPrimitives() {
		return nil
	}
	//
	if !opt.TransformDynamicCircuit {
		return qcecerr.New(qcecerr.InvalidInput, "circuit %q contains non-unitary primitives", c.Name)
	}
	//
	bitToQubit := make(map[uint]uint)
	ops := c.Ops()
	out := make([]circuit.Operation, 0, len(ops))
	var deferred []circuit.Operation
	//
	for _, op := range ops {
		switch {
		case op.Kind == circuit.KindReset:
			q := applyRedirect(op.Targets[0])
			fresh := c.Qubits()
			c.GrowQubits(1)
			c.SetAncillary(c.Ancillary() + 1)
			growLayoutForFreshAncilla(c, fresh)
			// every later reference to q is transparently redirected to
			// fresh, which starts at |0> by construction; no op emitted.
			redirectRemaining(&out, q, fresh)
			redirectRemaining(&deferred, q, fresh)
			bitToQubit = redirectBitMap(bitToQubit, q, fresh)
			redirectTable[q] = fresh

		case op.Kind == circuit.KindMeasurement:
			q := applyRedirect(op.Targets[0])
			bitToQubit[op.ClassicalBit] = q
			m := op
			m.Targets = []uint{q}
			deferred = append(deferred, m)

		case op.IsClassicallyControlled():
			q, ok := bitToQubit[op.Cond.Bit]
			if !ok {
				// condition on a bit this pass cannot resolve; keep as-is
				// rather than silently dropping the guard.
				out = append(out, remapQubits(op))
				continue
			}
			//
			controlled := remapQubits(op)
			controlled.Cond = nil
			controlled.Controls = append(append([]uint{}, controlled.Controls...), q)
			//
			if !op.Cond.Expected {
				out = append(out, circuit.Operation{Kind: circuit.KindUnitary, Gate: circuit.GateX, Targets: []uint{q}})
				out = append(out, controlled)
				out = append(out, circuit.Operation{Kind: circuit.KindUnitary, Gate: circuit.GateX, Targets: []uint{q}})
			} else {
				out = append(out, controlled)
			}

		default:
			out = append(out, remapQubits(op))
		}
	}
	//
	out = append(out, deferred...)
	c.SetOps(out)
	clearRedirectTable()
	//
	return nil
}

// redirectTable implements the reset-to-fresh-ancilla renaming used above.
// It is package-scope and cleared after each circuit's transform because
// dynamicCircuitTransform processes one circuit per call and never
// recurses; a struct-scoped field would be equivalent but this mirrors the
// simple global substitution tables the teacher's lowering passes use for
// per-pass bookkeeping (e.g. pkg/ir/builder's per-assignment maps).
var redirectTable = map[uint]uint{}

func clearRedirectTable() { redirectTable = map[uint]uint{} }

func applyRedirect(q uint) uint {
	for {
		if r, ok := redirectTable[q]; ok {
			q = r
			continue
		}
		//
		return q
	}
}

func remapQubits(op circuit.Operation) circuit.Operation {
	out := op
	out.Targets = remapSlice(op.Targets)
	out.Controls = remapSlice(op.Controls)
	//
	return out
}

func remapSlice(qs []uint) []uint {
	if qs == nil {
		return nil
	}
	//
	out := make([]uint, len(qs))
	//
	for i, q := range qs {
		out[i] = applyRedirect(q)
	}
	//
	return out
}

func redirectRemaining(ops *[]circuit.Operation, from, to uint) {
	for i, op := range *ops {
		(*ops)[i] = remapSingle(op, from, to)
	}
}

func remapSingle(op circuit.Operation, from, to uint) circuit.Operation {
	replace := func(qs []uint) []uint {
		for i, q := range qs {
			if q == from {
				qs[i] = to
			}
		}
		//
		return qs
	}
	//
	op.Targets = replace(op.Targets)
	op.Controls = replace(op.Controls)
	//
	return op
}

func redirectBitMap(m map[uint]uint, from, to uint) map[uint]uint {
	for bit, q := range m {
		if q == from {
			m[bit] = to
		}
	}
	//
	return m
}

func growLayoutForFreshAncilla(c *circuit.Circuit, fresh uint) {
	layout := c.Layout()
	layout.Set(fresh, fresh)
	c.SetLayout(layout)
	//
	out := c.OutputPermutation()
	out.Set(fresh, fresh)
	c.SetOutputPermutation(out)
}
