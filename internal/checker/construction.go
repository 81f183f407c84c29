package checker

import (
	"sync/atomic"
	"time"

	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/dd"
	"github.com/mqt-go/qcec/internal/scheme"
)

// RunConstruction implements spec section 4.4's construction checker: both
// tasks start from the identity matrix DD and advance by left-multiplying
// their running matrix by each next operation; the two resulting unitaries
// are compared directly.
func RunConstruction(c1, c2 *circuit.Circuit, pkg *dd.Package, sch *scheme.Scheme, cfg Config, abort *atomic.Bool) Result {
	start := time.Now()
	//
	t1 := newTask(c1.Ops(), c1.Qubits(), pkg.Identity(c1.Qubits()))
	t2 := newTask(c2.Ops(), c2.Qubits(), pkg.Identity(c2.Qubits()))
	//
	if aborted := runDDLoop(pkg, sch, t1, t2, applyForward, applyForward, abort); aborted {
		return Result{Checker: Construction, Verdict: NoInformation, RuntimeSeconds: time.Since(start).Seconds()}
	}
	//
	if abort.Load() {
		return Result{Checker: Construction, Verdict: NoInformation, RuntimeSeconds: time.Since(start).Seconds()}
	}
	//
	h1 := postprocess(pkg, t1, c1, cfg.CheckPartialEquivalence)
	h2 := postprocess(pkg, t2, c2, cfg.CheckPartialEquivalence)
	verdict := compareMatrices(pkg, h1, h2, cfg.TraceThreshold, cfg.NumericalTolerance)
	//
	return Result{
		Checker:        Construction,
		Verdict:        verdict,
		RuntimeSeconds: time.Since(start).Seconds(),
		Stats:          map[string]any{"scheme": sch.Tag().String()},
	}
}

// runDDLoop implements spec section 4.4's shared base loop, steps 1-3: it
// does not postprocess or compare, leaving those to the caller since
// construction and simulation differ in what "finished" state they
// compare.
func runDDLoop(pkg *dd.Package, sch *scheme.Scheme, t1, t2 *task,
	apply1, apply2 func(*dd.Package, dd.Handle, circuit.Operation) dd.Handle,
	abort *atomic.Bool) (aborted bool) {
	for !t1.finished() || !t2.finished() {
		if abort.Load() {
			return true
		}
		//
		t1.absorbLeadingSwaps()
		t2.absorbLeadingSwaps()
		//
		kind, controls := t1.peekKind()
		a, b := sch.Next(t1.remaining(), t2.remaining(), scheme.NextArgs{NextOpKind: kind, NextOpControls: controls})
		//
		if a == 0 && b == 0 {
			break
		}
		//
		t1.advance(pkg, a, apply1)
		t2.advance(pkg, b, apply2)
	}
	//
	if abort.Load() {
		return true
	}
	//
	t1.drain(pkg, apply1)
	t2.drain(pkg, apply2)
	//
	return false
}
