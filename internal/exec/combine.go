// Package exec implements the executor collaborator of spec section 4.6:
// sequential and parallel checker orchestration, isolated-worker semantics,
// a hard timeout, and the result-combination policy of spec section 4.7.
package exec

import "github.com/mqt-go/qcec/internal/checker"

// Combiner implements spec section 4.7's result-combination policy as a
// small state machine fed one checker verdict at a time.
type Combiner struct {
	combined         checker.Verdict
	graphRewriteOnly bool
}

// NewCombiner starts a combiner at the NoInformation base case.
// graphRewriteOnly mirrors spec section 4.7's last rule: when only the
// graph-rewrite checker is configured, an incoming NoInformation from it
// stops the combination immediately rather than waiting on checkers that
// will never run.
func NewCombiner(graphRewriteOnly bool) *Combiner {
	return &Combiner{combined: checker.NoInformation, graphRewriteOnly: graphRewriteOnly}
}

// Combined returns the running combined verdict.
func (c *Combiner) Combined() checker.Verdict { return c.combined }

// Feed folds in one incoming (tag, verdict) pair and reports whether the
// combination is done (a short-circuit fired).
func (c *Combiner) Feed(tag checker.Tag, verdict checker.Verdict, simulationsFinished bool) (stop bool) {
	switch {
	case verdict == checker.NotEquivalent:
		c.combined = checker.NotEquivalent
		return true

	case (tag == checker.Alternating || tag == checker.Construction) && isDefiniteEquivalence(verdict):
		c.combined = verdict
		return true

	case tag == checker.GraphRewrite && (verdict == checker.Equivalent || verdict == checker.EquivalentUpToGlobalPhase):
		c.combined = verdict
		return true

	case tag == checker.GraphRewrite && verdict == checker.ProbablyNotEquivalent:
		if c.combined == checker.ProbablyEquivalent {
			if simulationsFinished {
				c.combined = checker.NoInformation
				return true
			}
			//
			c.combined = checker.ProbablyNotEquivalent
			return false
		}
		//
		c.combined = checker.ProbablyNotEquivalent
		return false

	case tag == checker.Simulation && (verdict == checker.Equivalent || verdict == checker.EquivalentUpToPhase):
		if c.combined == checker.NoInformation {
			c.combined = checker.ProbablyEquivalent
		}
		//
		return false

	case verdict == checker.NoInformation && c.graphRewriteOnly:
		c.combined = checker.NoInformation
		return true

	default:
		return false
	}
}

// SimulationsExhausted applies spec section 4.7's "on reaching max_sims"
// rule: a combined ProbablyNotEquivalent contradicted by every simulation
// succeeding resolves to NoInformation rather than staying
// ProbablyNotEquivalent.
func (c *Combiner) SimulationsExhausted() (stop bool) {
	if c.combined == checker.ProbablyNotEquivalent {
		c.combined = checker.NoInformation
		return true
	}
	//
	return false
}

func isDefiniteEquivalence(v checker.Verdict) bool {
	switch v {
	case checker.Equivalent, checker.EquivalentUpToGlobalPhase, checker.EquivalentUpToPhase:
		return true
	default:
		return false
	}
}
