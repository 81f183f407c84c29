package checker

import (
	"sync/atomic"
	"time"

	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/dd"
	"github.com/mqt-go/qcec/internal/scheme"
)

// AlternatingCanHandle implements spec section 4.4's "fallback" test: it
// only requires both circuits to have the same qubit count. The manager
// disables the alternating checker and enables the construction checker,
// emitting a warning, when this returns false.
func AlternatingCanHandle(c1, c2 *circuit.Circuit) bool {
	return c1.Qubits() == c2.Qubits()
}

// RunAlternating implements spec section 4.4's alternating checker: a
// single running matrix DD, left-multiplied by circuit 1's next operations
// and right-multiplied by circuit 2's next operations' adjoints, alternately
// advanced by the application scheme so the running product stays close to
// identity.
func RunAlternating(c1, c2 *circuit.Circuit, pkg *dd.Package, sch *scheme.Scheme, cfg Config, abort *atomic.Bool) Result {
	start := time.Now()
	width := c1.Qubits()
	//
	t1 := newTask(c1.Ops(), width, dd.Handle{})
	t2 := newTask(c2.Ops(), width, dd.Handle{})
	m := pkg.Identity(width)
	//
	for !t1.finished() || !t2.finished() {
		if abort.Load() {
			return Result{Checker: Alternating, Verdict: NoInformation, RuntimeSeconds: time.Since(start).Seconds()}
		}
		//
		t1.absorbLeadingSwaps()
		t2.absorbLeadingSwaps()
		//
		if sch.Tag() == scheme.Lookahead {
			m = alternatingLookaheadStep(pkg, m, t1, t2)
			continue
		}
		//
		kind, controls := t1.peekKind()
		a, b := sch.Next(t1.remaining(), t2.remaining(), scheme.NextArgs{NextOpKind: kind, NextOpControls: controls})
		//
		if a == 0 && b == 0 {
			break
		}
		//
		m = advanceAlternating(pkg, m, t1, a, applyForward)
		m = advanceAlternating(pkg, m, t2, b, applyRightInverse)
	}
	//
	if abort.Load() {
		return Result{Checker: Alternating, Verdict: NoInformation, RuntimeSeconds: time.Since(start).Seconds()}
	}
	//
	m = advanceAlternating(pkg, m, t1, t1.remaining(), applyForward)
	m = advanceAlternating(pkg, m, t2, t2.remaining(), applyRightInverse)
	//
	if abort.Load() {
		return Result{Checker: Alternating, Verdict: NoInformation, RuntimeSeconds: time.Since(start).Seconds()}
	}
	//
	// m carries both circuits' contributions in a single handle, so it can
	// only be postprocessed against one circuit's layout/output-permutation
	// frame; c1's is picked arbitrarily. AlternatingCanHandle only requires
	// matching qubit counts, but preprocess's alignAncillaries always
	// equalizes both circuits' ancillary counts before a checker runs, so
	// c1.Ancillary() is the right count to reduce on either side.
	t1.handle = m
	m = postprocess(pkg, t1, c1, cfg.CheckPartialEquivalence)
	verdict := compareMatrices(pkg, m, pkg.Identity(c1.Primary()), cfg.TraceThreshold, cfg.NumericalTolerance)
	//
	return Result{
		Checker:        Alternating,
		Verdict:        verdict,
		RuntimeSeconds: time.Since(start).Seconds(),
		Stats:          map[string]any{"scheme": sch.Tag().String()},
	}
}

// advanceAlternating applies n more operations from t to the running handle
// m via applyFn, absorbing any SWAPs met along the way into t's carried
// permutation instead.
func advanceAlternating(pkg *dd.Package, m dd.Handle, t *task, n uint, applyFn func(*dd.Package, dd.Handle, circuit.Operation) dd.Handle) dd.Handle {
	for i := uint(0); i < n && !t.finished(); i++ {
		op := t.ops[t.pos]
		//
		if op.IsSwap() {
			t.swap(op)
			t.pos++
			continue
		}
		//
		m = applyFn(pkg, m, remapOp(op, t.perm))
		t.pos++
	}
	//
	return m
}

// alternatingLookaheadStep implements spec section 4.3's Lookahead scheme:
// try the next operation from each circuit, keep whichever produces the
// smaller resulting DD, and defer the other.
func alternatingLookaheadStep(pkg *dd.Package, m dd.Handle, t1, t2 *task) dd.Handle {
	var (
		cand1, cand2 dd.Handle
		has1, has2   bool
	)
	//
	if !t1.finished() {
		cand1 = applyFnAt(pkg, m, t1, applyForward)
		has1 = true
	}
	//
	if !t2.finished() {
		cand2 = applyFnAt(pkg, m, t2, applyRightInverse)
		has2 = true
	}
	//
	switch {
	case has1 && has2:
		if cand1.Size() <= cand2.Size() {
			t1.pos++
			return cand1
		}
		//
		t2.pos++
		return cand2
	case has1:
		t1.pos++
		return cand1
	case has2:
		t2.pos++
		return cand2
	default:
		return m
	}
}

func applyFnAt(pkg *dd.Package, m dd.Handle, t *task, applyFn func(*dd.Package, dd.Handle, circuit.Operation) dd.Handle) dd.Handle {
	op := t.ops[t.pos]
	//
	if op.IsSwap() {
		t.swap(op)
		t.pos++
		//
		return m
	}
	//
	return applyFn(pkg, m, remapOp(op, t.perm))
}

// applyRight builds an explicit gate DD for op and right-multiplies it onto
// the running matrix, since dd.Package.ApplyGate always behaves as a
// left-multiply; applyRightInverse passes it op's adjoint.
func applyRight(pkg *dd.Package, h dd.Handle, op circuit.Operation) dd.Handle {
	if op.Kind != circuit.KindUnitary {
		return h
	}
	//
	identity := pkg.Identity(h.Qubits())
	var gateDD dd.Handle
	//
	if op.Gate == circuit.GateCompound {
		gateDD = pkg.ApplyCompound(identity, *op.Matrix, op.Targets[0], op.Controls)
	} else {
		gateDD = pkg.ApplyGate(identity, op.Gate, circuit.ParamValues(op.Params), op.Targets, op.Controls)
	}
	//
	return pkg.Multiply(h, gateDD)
}

func applyRightInverse(pkg *dd.Package, h dd.Handle, op circuit.Operation) dd.Handle {
	return applyRight(pkg, h, op.Inverse())
}
