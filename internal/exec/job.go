package exec

import (
	"sync/atomic"

	"github.com/mqt-go/qcec/internal/checker"
	"github.com/mqt-go/qcec/internal/qcecerr"
)

// Job is one checker invocation the executor can run, in-process or as an
// isolated worker. The manager constructs these closures so the executor
// itself stays checker-agnostic.
type Job struct {
	Tag checker.Tag
	Run func(abort *atomic.Bool) (checker.Result, error)
}

// WorkerResult is the single record spec section 4.6 says a worker writes
// to its pipe: `(verdict, exception-kind)` plus the bookkeeping the executor
// needs to report a WorkerResult.
type WorkerResult struct {
	ID            int
	Tag           checker.Tag
	Result        checker.Result
	Completed     bool
	ExceptionKind qcecerr.ExceptionKind
}

// runWorker runs one Job to completion (or cancellation) and reports its
// single WorkerResult down ch. Go does not offer the cheap copy-on-write
// process fork the reference design prefers for worker isolation (spec
// section 9); this is the "documented weaker cancellation model" the spec
// explicitly sanctions as a fallback — a goroutine with its own abort flag,
// communicating one result over a channel in place of a pipe. ch must have
// spare capacity for every job the caller might still have in flight when
// it stops waiting, so a cancelled worker's late send never blocks.
func runWorker(id int, job Job, abort *atomic.Bool, ch chan<- WorkerResult) {
	defer func() {
		if r := recover(); r != nil {
			ch <- WorkerResult{ID: id, Tag: job.Tag, ExceptionKind: qcecerr.Categorize(r)}
		}
	}()
	//
	result, err := job.Run(abort)
	//
	if err != nil {
		ch <- WorkerResult{ID: id, Tag: job.Tag, ExceptionKind: qcecerr.Categorize(err)}
		return
	}
	//
	ch <- WorkerResult{ID: id, Tag: job.Tag, Result: result, Completed: true}
}
