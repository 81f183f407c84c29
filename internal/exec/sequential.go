package exec

import (
	"sync/atomic"
	"time"

	"github.com/mqt-go/qcec/internal/checker"
)

// RunSequential implements spec section 4.6's sequential mode: simulation
// attempts up to maxSims (or until NotEquivalent), then the remaining jobs
// in the order the caller supplied (alternating, construction,
// graph-rewrite), short-circuiting per spec section 4.7 except that a
// ProbablyEquivalent from simulation alone never stops the pipeline — later
// checkers still get to promote or demote it.
func RunSequential(simFactory func(attempt int) (Job, bool), maxSims int, rest []Job, timeout time.Duration, graphRewriteOnly bool) (checker.Verdict, []checker.Result, bool, error) {
	abort := &atomic.Bool{}
	//
	if timeout > 0 {
		timer := time.AfterFunc(timeout, func() { abort.Store(true) })
		defer timer.Stop()
	}
	//
	combiner := NewCombiner(graphRewriteOnly)
	var results []checker.Result
	simsPerformed := 0
	//
	for attempt := 0; simsPerformed < maxSims && !abort.Load(); attempt++ {
		job, ok := simFactory(attempt)
		if !ok {
			break
		}
		//
		res, err := job.Run(abort)
		if err != nil {
			return checker.NoInformation, results, false, err
		}
		//
		results = append(results, res)
		simsPerformed++
		//
		finished := simsPerformed >= maxSims
		stop := combiner.Feed(checker.Simulation, res.Verdict, finished)
		//
		if finished && combiner.SimulationsExhausted() {
			stop = true
		}
		//
		if stop || res.Verdict == checker.NotEquivalent {
			break
		}
	}
	//
	if !abort.Load() && combiner.Combined() != checker.NotEquivalent {
		for _, job := range rest {
			res, err := job.Run(abort)
			if err != nil {
				return checker.NoInformation, results, false, err
			}
			//
			results = append(results, res)
			//
			if combiner.Feed(job.Tag, res.Verdict, simsPerformed >= maxSims) {
				break
			}
			//
			if abort.Load() {
				break
			}
		}
	}
	//
	timedOut := abort.Load() && combiner.Combined() == checker.NoInformation
	//
	return combiner.Combined(), results, timedOut, nil
}
