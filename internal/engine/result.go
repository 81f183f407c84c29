// Package engine implements the manager collaborator of spec section 4.10:
// the top-level object holding configuration, owning the preprocessor and
// executor, routing variable-free vs symbolic circuit pairs, and emitting
// the structured result record of spec section 6.
package engine

import "github.com/mqt-go/qcec/internal/checker"

// Result is the engine result of spec section 3/6: the combined verdict
// plus every key the output contract requires.
type Result struct {
	PreprocessingTimeSeconds              float64
	CheckTimeSeconds                      float64
	Equivalence                           checker.Verdict
	SimulationsStarted                    int
	SimulationsPerformed                  int
	ParameterizedPerformedInstantiations  int
	Checkers                              []checker.Result
	TimedOut                              bool
	Warnings                              []string
}

// AsMap serializes the result into the nested-map shape spec section 6
// requires, with `checkers` as an array of per-checker records.
func (r *Result) AsMap() map[string]any {
	checkers := make([]map[string]any, len(r.Checkers))
	//
	for i, c := range r.Checkers {
		entry := map[string]any{
			"checker":         c.Checker.String(),
			"verdict":         c.Verdict.String(),
			"runtime_seconds": c.RuntimeSeconds,
		}
		//
		for k, v := range c.Stats {
			entry[k] = v
		}
		//
		checkers[i] = entry
	}
	//
	return map[string]any{
		"preprocessing_time": r.PreprocessingTimeSeconds,
		"check_time":         r.CheckTimeSeconds,
		"equivalence":        r.Equivalence.String(),
		"simulations.started":                        r.SimulationsStarted,
		"simulations.performed":                       r.SimulationsPerformed,
		"parameterized.performed_instantiations":      r.ParameterizedPerformedInstantiations,
		"checkers":                                     checkers,
		"timed_out":                                    r.TimedOut,
		"warnings":                                     r.Warnings,
	}
}
