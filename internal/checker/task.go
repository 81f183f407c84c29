package checker

import (
	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/dd"
)

// task tracks one circuit's position in its operation sequence and the
// running DD it has accumulated so far, plus the wire permutation absorbed
// from any SWAPs the application scheme chose not to materialize as DD
// applications (spec section 4.4 base loop, step 2: "applies any leading
// SWAPs, which only permute its carried layout").
type task struct {
	ops    []circuit.Operation
	pos    int
	perm   []uint
	handle dd.Handle
}

func newTask(ops []circuit.Operation, width uint, initial dd.Handle) *task {
	perm := make([]uint, width)
	//
	for i := range perm {
		perm[i] = uint(i)
	}
	//
	return &task{ops: ops, perm: perm, handle: initial}
}

func (t *task) remaining() uint { return uint(len(t.ops) - t.pos) }
func (t *task) finished() bool  { return t.pos >= len(t.ops) }

func (t *task) peekKind() (kind string, controls int) {
	if t.finished() {
		return "", 0
	}
	//
	return t.ops[t.pos].Gate.String(), len(t.ops[t.pos].Controls)
}

// absorbLeadingSwaps folds any SWAP operations sitting at the front of the
// remaining sequence into the carried permutation instead of applying them
// to the DD.
func (t *task) absorbLeadingSwaps() {
	for !t.finished() && t.ops[t.pos].IsSwap() {
		t.swap(t.ops[t.pos])
		t.pos++
	}
}

func (t *task) swap(op circuit.Operation) {
	a, b := op.Targets[0], op.Targets[1]
	t.perm[a], t.perm[b] = t.perm[b], t.perm[a]
}

// advance applies up to n more operations to the running handle via
// applyFn, absorbing SWAPs into the carried permutation instead. The
// alternating checker does not use it: it advances its single running
// matrix with advanceAlternating.
func (t *task) advance(pkg *dd.Package, n uint, applyFn func(pkg *dd.Package, h dd.Handle, op circuit.Operation) dd.Handle) {
	for i := uint(0); i < n && !t.finished(); i++ {
		op := t.ops[t.pos]
		//
		if op.IsSwap() {
			t.swap(op)
			t.pos++
			continue
		}
		//
		t.handle = applyFn(pkg, t.handle, remapOp(op, t.perm))
		t.pos++
	}
}

// drain applies every remaining operation.
func (t *task) drain(pkg *dd.Package, applyFn func(pkg *dd.Package, h dd.Handle, op circuit.Operation) dd.Handle) {
	t.advance(pkg, t.remaining(), applyFn)
}

func remapOp(op circuit.Operation, perm []uint) circuit.Operation {
	out := op
	out.Targets = remapQubits(op.Targets, perm)
	out.Controls = remapQubits(op.Controls, perm)
	//
	return out
}

func remapQubits(qs []uint, perm []uint) []uint {
	if qs == nil {
		return nil
	}
	//
	out := make([]uint, len(qs))
	//
	for i, q := range qs {
		out[i] = perm[q]
	}
	//
	return out
}

// applyForward applies op to h in the direction it appears in its circuit.
func applyForward(pkg *dd.Package, h dd.Handle, op circuit.Operation) dd.Handle {
	if op.Kind != circuit.KindUnitary {
		return h
	}
	//
	if op.Gate == circuit.GateCompound {
		return pkg.ApplyCompound(h, *op.Matrix, op.Targets[0], op.Controls)
	}
	//
	return pkg.ApplyGate(h, op.Gate, circuit.ParamValues(op.Params), op.Targets, op.Controls)
}

// applyInverse applies op's adjoint as a left-multiply. The alternating
// checker applies circuit 2's adjoints from the right with
// applyRightInverse instead.
func applyInverse(pkg *dd.Package, h dd.Handle, op circuit.Operation) dd.Handle {
	return applyForward(pkg, h, op.Inverse())
}

// postprocess applies the tracked permutation to match the expected output
// permutation, reduces ancillary qubits, and (if partial equivalence is
// requested) sum-reduces garbage qubits (spec section 4.4 base loop, step
// 4).
func postprocess(pkg *dd.Package, t *task, c *circuit.Circuit, partial bool) dd.Handle {
	h := t.handle
	mapping := outputMapping(t, c)
	h = pkg.PermuteQubits(h, mapping)
	h = pkg.ReduceAncillary(h, c.Ancillary())
	//
	if partial && h.Kind() == dd.KindVector {
		mask := garbageMask(c)
		h = pkg.PartialTraceGarbage(h, mask)
	}
	//
	return h
}

// outputMapping composes the task's accumulated SWAP-absorption permutation
// with the circuit's output permutation, producing mapping[old] = new for
// dd.Package.PermuteQubits.
func outputMapping(t *task, c *circuit.Circuit) []uint {
	n := uint(len(t.perm))
	mapping := make([]uint, n)
	//
	for physical := uint(0); physical < n; physical++ {
		logical := t.perm[physical]
		//
		if target, ok := c.OutputPermutation().Get(physical); ok {
			mapping[logical] = target
		} else {
			mapping[logical] = physical
		}
	}
	//
	return mapping
}

func garbageMask(c *circuit.Circuit) []bool {
	mask := make([]bool, c.Qubits())
	//
	for q := range mask {
		mask[q] = c.IsGarbage(uint(q))
	}
	//
	return mask
}

// MatrixCheckerCanHandlePartial reports whether a matrix-kind checker
// (construction, alternating) can answer check_partial_equivalence for c:
// ReduceAncillary already discards every ancillary qubit regardless of its
// garbage marking, so the only gap is a *primary* qubit marked garbage,
// which a matrix handle has no way to sum-reduce (spec section 4.4 base
// loop, step 4 only sum-reduces garbage on vector handles).
func MatrixCheckerCanHandlePartial(c *circuit.Circuit) bool {
	for q := uint(0); q < c.Primary(); q++ {
		if c.IsGarbage(q) {
			return false
		}
	}
	//
	return true
}
