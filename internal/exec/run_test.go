package exec

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/mqt-go/qcec/internal/checker"
)

func verdictJob(tag checker.Tag, v checker.Verdict) Job {
	return Job{Tag: tag, Run: func(abort *atomic.Bool) (checker.Result, error) {
		return checker.Result{Checker: tag, Verdict: v}, nil
	}}
}

func TestRunSequentialStopsOnConstructionEquivalence(t *testing.T) {
	rest := []Job{verdictJob(checker.Construction, checker.Equivalent)}
	noSims := func(int) (Job, bool) { return Job{}, false }

	verdict, results, timedOut, err := RunSequential(noSims, 0, rest, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if verdict != checker.Equivalent {
		t.Fatalf("got %s, want Equivalent", verdict)
	}

	if timedOut {
		t.Fatalf("a clean equivalence result must not report a timeout")
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestRunSequentialRunsSimulationsThenRest(t *testing.T) {
	attempts := 0
	simFactory := func(i int) (Job, bool) {
		attempts++
		return verdictJob(checker.Simulation, checker.Equivalent), true
	}

	rest := []Job{verdictJob(checker.Construction, checker.Equivalent)}

	verdict, results, _, err := RunSequential(simFactory, 2, rest, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if attempts != 2 {
		t.Fatalf("got %d simulation attempts, want 2 (maxSims)", attempts)
	}

	// 2 simulation results + 1 construction result.
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if verdict != checker.Equivalent {
		t.Fatalf("got %s, want Equivalent once construction resolves it", verdict)
	}
}

func TestRunSequentialStopsImmediatelyOnNotEquivalentSimulation(t *testing.T) {
	attempts := 0
	simFactory := func(i int) (Job, bool) {
		attempts++
		return verdictJob(checker.Simulation, checker.NotEquivalent), true
	}

	rest := []Job{verdictJob(checker.Construction, checker.Equivalent)}

	verdict, _, _, err := RunSequential(simFactory, 5, rest, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if attempts != 1 {
		t.Fatalf("got %d attempts, want 1: a NotEquivalent simulation should stop immediately", attempts)
	}

	if verdict != checker.NotEquivalent {
		t.Fatalf("got %s, want NotEquivalent", verdict)
	}
}

func TestRunSequentialPropagatesJobError(t *testing.T) {
	failing := Job{Tag: checker.Construction, Run: func(abort *atomic.Bool) (checker.Result, error) {
		return checker.Result{}, errBoom
	}}

	noSims := func(int) (Job, bool) { return Job{}, false }

	_, _, _, err := RunSequential(noSims, 0, []Job{failing}, 0, false)
	if err == nil {
		t.Fatalf("expected the job's error to propagate")
	}
}

func TestRunParallelCombinesConstructionAndAlternating(t *testing.T) {
	jobs := []Job{
		verdictJob(checker.Construction, checker.Equivalent),
		verdictJob(checker.Alternating, checker.Equivalent),
	}

	noSims := func() (Job, bool) { return Job{}, false }

	verdict, results, timedOut, err := RunParallel(jobs, 2, 0, 0, false, noSims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if verdict != checker.Equivalent {
		t.Fatalf("got %s, want Equivalent", verdict)
	}

	if timedOut {
		t.Fatalf("a clean run must not report a timeout")
	}

	// a definite equivalence from either checker short-circuits the
	// combination, so the second job's result may never be consumed.
	if len(results) < 1 {
		t.Fatalf("got %d results, want at least 1", len(results))
	}
}

func TestRunParallelTimesOut(t *testing.T) {
	slow := Job{Tag: checker.Construction, Run: func(abort *atomic.Bool) (checker.Result, error) {
		time.Sleep(50 * time.Millisecond)
		return checker.Result{Checker: checker.Construction, Verdict: checker.Equivalent}, nil
	}}

	noSims := func() (Job, bool) { return Job{}, false }

	verdict, _, timedOut, err := RunParallel([]Job{slow}, 1, 1*time.Millisecond, 0, false, noSims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !timedOut {
		t.Fatalf("expected the slow job to trip the timeout")
	}

	if verdict != checker.NoInformation {
		t.Fatalf("got %s, want NoInformation after an inconclusive timeout", verdict)
	}
}

func TestRunParallelStopsOnNotEquivalent(t *testing.T) {
	// the alternating job only reports once the run has been aborted, so the
	// construction checker's NotEquivalent is the first verdict to arrive.
	jobs := []Job{
		verdictJob(checker.Construction, checker.NotEquivalent),
		{Tag: checker.Alternating, Run: func(abort *atomic.Bool) (checker.Result, error) {
			for !abort.Load() {
				time.Sleep(time.Millisecond)
			}
			return checker.Result{Checker: checker.Alternating, Verdict: checker.Equivalent}, nil
		}},
	}

	noSims := func() (Job, bool) { return Job{}, false }

	verdict, _, _, err := RunParallel(jobs, 2, 0, 0, false, noSims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if verdict != checker.NotEquivalent {
		t.Fatalf("got %s, want NotEquivalent", verdict)
	}
}

type boomError struct{}

func (boomError) Error() string { return "boom" }

var errBoom = boomError{}
