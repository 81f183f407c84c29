package checker

import (
	"sync/atomic"
	"time"

	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/dd"
	"github.com/mqt-go/qcec/internal/scheme"
)

// RunSimulation implements spec section 4.4's simulation checker for one
// drawn stimulus: both tasks start from the stimulus vector DD and advance
// by applying each next operation; the resulting vectors are compared via
// the fidelity test. The caller (executor) is responsible for drawing
// stimuli from the shared generator and invoking this once per attempt, up
// to `max_sims`.
func RunSimulation(c1, c2 *circuit.Circuit, stimulus dd.Handle, pkg *dd.Package, sch *scheme.Scheme, cfg Config, abort *atomic.Bool) Result {
	start := time.Now()
	//
	t1 := newTask(c1.Ops(), c1.Qubits(), pkg.Ref(stimulus))
	t2 := newTask(c2.Ops(), c2.Qubits(), pkg.Ref(stimulus))
	//
	aborted := runDDLoop(pkg, sch, t1, t2, applyForward, applyForward, abort)
	if aborted || abort.Load() {
		return Result{Checker: Simulation, Verdict: NoInformation, RuntimeSeconds: time.Since(start).Seconds()}
	}
	//
	h1 := postprocess(pkg, t1, c1, cfg.CheckPartialEquivalence)
	h2 := postprocess(pkg, t2, c2, cfg.CheckPartialEquivalence)
	verdict := compareVectors(pkg, h1, h2, cfg.FidelityThreshold)
	//
	result := Result{
		Checker:        Simulation,
		Verdict:        verdict,
		RuntimeSeconds: time.Since(start).Seconds(),
		Stats:          map[string]any{"scheme": sch.Tag().String()},
	}
	//
	if verdict == NotEquivalent {
		result.Counterexample = &Counterexample{Stimulus: stimulus, Output1: h1, Output2: h2}
	}
	//
	return result
}
