package checker

import (
	"sync/atomic"
	"time"

	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/rewrite"
)

// RunGraphRewrite implements spec section 4.5's graph-rewrite checker atop
// the rewrite.Backend collaborator.
func RunGraphRewrite(c1, c2 *circuit.Circuit, backend *rewrite.Backend, cfg Config, abort *atomic.Bool) Result {
	start := time.Now()
	//
	if !backend.CanHandle(c1, c2) {
		return Result{
			Checker:        GraphRewrite,
			Verdict:        NoInformation,
			RuntimeSeconds: time.Since(start).Seconds(),
			Stats:          map[string]any{"reason": "non-garbage ancillaries or width mismatch"},
		}
	}
	//
	if abort.Load() {
		return Result{Checker: GraphRewrite, Verdict: NoInformation, RuntimeSeconds: time.Since(start).Seconds()}
	}
	//
	residual := backend.Reduce(c1, c2, cfg.TraceThreshold, 4)
	//
	if abort.Load() {
		return Result{Checker: GraphRewrite, Verdict: NoInformation, RuntimeSeconds: time.Since(start).Seconds()}
	}
	//
	if !residual.Accepted {
		return Result{Checker: GraphRewrite, Verdict: ProbablyNotEquivalent, RuntimeSeconds: time.Since(start).Seconds()}
	}
	//
	verdict := EquivalentUpToGlobalPhase
	if weightsClose(residual.GlobalPhase, 1, cfg.NumericalTolerance) {
		verdict = Equivalent
	}
	//
	return Result{Checker: GraphRewrite, Verdict: verdict, RuntimeSeconds: time.Since(start).Seconds()}
}
