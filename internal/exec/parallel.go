package exec

import (
	"time"

	"github.com/mqt-go/qcec/internal/checker"
	"github.com/mqt-go/qcec/internal/qcecerr"
)

// RunParallel implements spec section 4.6's parallel mode: jobs (already
// built by the caller for alternating/construction/graph-rewrite, in
// priority order) are enqueued first, up to nthreads run concurrently, and
// remaining slots are filled with simulation attempts drawn from nextSim as
// workers finish — up to maxSims total. The executor combines verdicts per
// spec section 4.7 as each worker reports in, and enforces timeout by
// abandoning the wait (not the goroutines themselves, which is exactly the
// documented weaker cancellation model spec section 9 permits).
func RunParallel(jobs []Job, nthreads int, timeout time.Duration, maxSims int, graphRewriteOnly bool, nextSim func() (Job, bool)) (checker.Verdict, []checker.Result, bool, error) {
	capacity := len(jobs) + maxSims + 8
	ch := make(chan WorkerResult, capacity)
	abort := newAbortFlag()
	//
	nextID := 0
	launch := func(j Job) {
		id := nextID
		nextID++
		go runWorker(id, j, abort, ch)
	}
	//
	queue := append([]Job(nil), jobs...)
	running := 0
	//
	for running < nthreads && len(queue) > 0 {
		launch(queue[0])
		queue = queue[1:]
		running++
	}
	//
	var timeoutCh <-chan time.Time
	//
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}
	//
	combiner := NewCombiner(graphRewriteOnly)
	var results []checker.Result
	simsPerformed := 0
	var resultErr error
	timedOut := false
	//
	for running > 0 {
		select {
		case <-timeoutCh:
			abort.Store(true)
			timedOut = true
			running = 0

		case wr := <-ch:
			running--
			//
			if wr.ExceptionKind != qcecerr.ExceptionNone {
				abort.Store(true)
				resultErr = qcecerr.New(qcecerr.UnsupportedConfiguration, "%s checker raised %s", wr.Tag, wr.ExceptionKind)
				running = 0
				continue
			}
			//
			results = append(results, wr.Result)
			//
			if wr.Tag == checker.Simulation {
				simsPerformed++
			}
			//
			finished := simsPerformed >= maxSims
			stop := combiner.Feed(wr.Tag, wr.Result.Verdict, finished)
			//
			if finished && combiner.SimulationsExhausted() {
				stop = true
			}
			//
			if stop {
				abort.Store(true)
				running = 0
				continue
			}
			//
			if len(queue) > 0 {
				launch(queue[0])
				queue = queue[1:]
				running++
			} else if nextSim != nil && simsPerformed < maxSims {
				if j, ok := nextSim(); ok {
					launch(j)
					running++
				}
			}
		}
	}
	//
	if resultErr != nil {
		return checker.NoInformation, results, false, resultErr
	}
	//
	return combiner.Combined(), results, timedOut, nil
}
