package exec

import (
	"testing"

	"github.com/mqt-go/qcec/internal/checker"
)

// A NotEquivalent verdict reports stop=true; callers (exec.RunSequential /
// exec.RunParallel) are the ones responsible for never feeding the combiner
// again once stop fires, which is what keeps the verdict sticky end to end.
func TestCombinerNotEquivalentStops(t *testing.T) {
	c := NewCombiner(false)

	if stop := c.Feed(checker.Simulation, checker.NotEquivalent, false); !stop {
		t.Fatalf("expected NotEquivalent to stop the pipeline")
	}

	if c.Combined() != checker.NotEquivalent {
		t.Fatalf("got %s, want NotEquivalent", c.Combined())
	}
}

func TestCombinerDDCheckerEquivalenceStops(t *testing.T) {
	for _, v := range []checker.Verdict{checker.Equivalent, checker.EquivalentUpToGlobalPhase, checker.EquivalentUpToPhase} {
		c := NewCombiner(false)

		if stop := c.Feed(checker.Alternating, v, false); !stop {
			t.Errorf("%s: expected alternating checker to stop the pipeline", v)
		}

		if c.Combined() != v {
			t.Errorf("%s: got %s", v, c.Combined())
		}
	}
}

func TestCombinerGraphRewriteEquivalenceStops(t *testing.T) {
	c := NewCombiner(false)

	if stop := c.Feed(checker.GraphRewrite, checker.Equivalent, false); !stop {
		t.Fatalf("expected graph-rewrite Equivalent to stop the pipeline")
	}
}

func TestCombinerSimulationSetsProbablyEquivalent(t *testing.T) {
	c := NewCombiner(false)

	if stop := c.Feed(checker.Simulation, checker.Equivalent, false); stop {
		t.Fatalf("simulation alone must not stop the pipeline")
	}

	if c.Combined() != checker.ProbablyEquivalent {
		t.Fatalf("got %s, want ProbablyEquivalent", c.Combined())
	}

	// A second simulation success does not change an already-set verdict.
	c.Feed(checker.Simulation, checker.EquivalentUpToPhase, false)

	if c.Combined() != checker.ProbablyEquivalent {
		t.Fatalf("got %s after second simulation", c.Combined())
	}
}

func TestCombinerGraphRewriteResolvesPendingProbablyEquivalent(t *testing.T) {
	c := NewCombiner(false)
	c.Feed(checker.Simulation, checker.Equivalent, true)

	if c.Combined() != checker.ProbablyEquivalent {
		t.Fatalf("setup: got %s, want ProbablyEquivalent", c.Combined())
	}

	stop := c.Feed(checker.GraphRewrite, checker.ProbablyNotEquivalent, true)

	if c.Combined() != checker.NoInformation {
		t.Fatalf("got %s, want NoInformation (contradiction resolved)", c.Combined())
	}

	if !stop {
		t.Fatalf("a resolved contradiction should stop the pipeline")
	}
}

func TestCombinerGraphRewriteProbablyNotEquivalentWithoutPending(t *testing.T) {
	c := NewCombiner(false)

	if stop := c.Feed(checker.GraphRewrite, checker.ProbablyNotEquivalent, false); stop {
		t.Fatalf("ProbablyNotEquivalent alone should not stop the pipeline")
	}

	if c.Combined() != checker.ProbablyNotEquivalent {
		t.Fatalf("got %s, want ProbablyNotEquivalent", c.Combined())
	}
}

func TestCombinerSimulationsExhaustedContradiction(t *testing.T) {
	c := NewCombiner(false)
	c.Feed(checker.GraphRewrite, checker.ProbablyNotEquivalent, false)

	if c.Combined() != checker.ProbablyNotEquivalent {
		t.Fatalf("setup: got %s", c.Combined())
	}

	c.Feed(checker.Simulation, checker.Equivalent, true)

	if !c.SimulationsExhausted() {
		t.Fatalf("expected max_sims contradiction to resolve")
	}
}

func TestCombinerGraphRewriteOnlyStopsImmediately(t *testing.T) {
	c := NewCombiner(true)

	if stop := c.Feed(checker.GraphRewrite, checker.NoInformation, false); !stop {
		t.Fatalf("graph-rewrite-only configuration should stop on NoInformation")
	}
}
