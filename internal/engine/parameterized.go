package engine

import (
	"math"
	mrand "math/rand/v2"

	"github.com/mqt-go/qcec/internal/checker"
	"github.com/mqt-go/qcec/internal/circuit"
)

// instantiate returns a clone of c with every free parameter bound to the
// value given for its symbol. Parameters that are already concrete pass
// through untouched.
func instantiate(c *circuit.Circuit, values map[string]float64) *circuit.Circuit {
	out := c.Clone()
	ops := out.Ops()
	instantiated := make([]circuit.Operation, len(ops))
	//
	for i, op := range ops {
		if op.IsSymbolicParameterized() {
			newParams := make([]circuit.Param, len(op.Params))
			//
			for j, p := range op.Params {
				if p.IsFree {
					newParams[j] = circuit.Concrete(values[p.Symbol])
				} else {
					newParams[j] = p
				}
			}
			//
			op.Params = newParams
		}
		//
		instantiated[i] = op
	}
	//
	out.SetOps(instantiated)
	//
	return out
}

// runParameterized implements spec section 4.9: draw one or more random
// instantiations of every free variable of c1 or c2 (the union of both
// circuits' variables), check each instantiation independently, and combine
// the per-instantiation verdicts with mergeParamVerdict: a single
// NotEquivalent instantiation is conclusive, a verdict every instantiation
// agrees on is kept as it is (Equivalent at every sampled point stays
// Equivalent), differing equivalence-flavored verdicts combine to
// ProbablyEquivalent, and any other disagreement gives NoInformation.
func (m *Manager) runParameterized(c1, c2 *circuit.Circuit) (*Result, error) {
	varSet := map[string]bool{}
	//
	for _, v := range c1.FreeVariables() {
		varSet[v] = true
	}
	//
	for _, v := range c2.FreeVariables() {
		varSet[v] = true
	}
	//
	trials := 1 + m.cfg.Parameterized.AdditionalInstantiations
	rng := mrand.New(mrand.NewPCG(uint64(m.cfg.Simulation.Seed)+1, 0xa5a5a5a5))
	//
	combined := checker.NoInformation
	var allResults []checker.Result
	performed := 0
	var timedOut bool
	var simsStarted, simsPerformed int
	var warnings []string
	//
	for t := 0; t < trials; t++ {
		values := make(map[string]float64, len(varSet))
		//
		for v := range varSet {
			values[v] = rng.Float64() * 2 * math.Pi
		}
		//
		inst1 := instantiate(c1, values)
		inst2 := instantiate(c2, values)
		//
		res, err := m.runOnce(inst1, inst2)
		if err != nil {
			return nil, err
		}
		//
		performed++
		allResults = append(allResults, res.Checkers...)
		simsStarted += res.SimulationsStarted
		simsPerformed += res.SimulationsPerformed
		warnings = append(warnings, res.Warnings...)
		//
		if res.TimedOut {
			timedOut = true
		}
		//
		combined = mergeParamVerdict(combined, res.Equivalence)
		//
		if combined == checker.NotEquivalent {
			break
		}
	}
	//
	return &Result{
		Equivalence:                          combined,
		Checkers:                             allResults,
		TimedOut:                             timedOut,
		SimulationsStarted:                   simsStarted,
		SimulationsPerformed:                 simsPerformed,
		ParameterizedPerformedInstantiations: performed,
		Warnings:                             warnings,
	}, nil
}

// mergeParamVerdict folds one more instantiation's verdict into the running
// combined verdict across all instantiations checked so far.
func mergeParamVerdict(acc, v checker.Verdict) checker.Verdict {
	if acc == checker.NoInformation {
		return v
	}
	//
	if v == checker.NotEquivalent || acc == checker.NotEquivalent {
		return checker.NotEquivalent
	}
	//
	if acc == v {
		return acc
	}
	//
	if isEquivalenceFlavored(acc) && isEquivalenceFlavored(v) {
		return checker.ProbablyEquivalent
	}
	//
	return checker.NoInformation
}

func isEquivalenceFlavored(v checker.Verdict) bool {
	switch v {
	case checker.Equivalent, checker.EquivalentUpToGlobalPhase, checker.EquivalentUpToPhase, checker.ProbablyEquivalent:
		return true
	default:
		return false
	}
}
