package engine

import (
	"os"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mqt-go/qcec/internal/checker"
	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/config"
	"github.com/mqt-go/qcec/internal/dd"
	execpkg "github.com/mqt-go/qcec/internal/exec"
	"github.com/mqt-go/qcec/internal/preprocess"
	"github.com/mqt-go/qcec/internal/profile"
	"github.com/mqt-go/qcec/internal/qcecerr"
	"github.com/mqt-go/qcec/internal/rewrite"
	"github.com/mqt-go/qcec/internal/scheme"
	"github.com/mqt-go/qcec/internal/stimulus"
)

// Manager is the top-level object of spec section 4.10: it owns the
// configuration, the preprocessor and executor, and routes each check
// through the variable-free or symbolic path.
type Manager struct {
	cfg config.Options
}

// NewManager constructs a manager over the given configuration. Spec
// section 9 treats DD-package tolerance as global state to configure once;
// here that configuration is threaded per DD package at construction
// instead of mutated afterward, since every DD checker gets its own
// package instance.
func NewManager(cfg config.Options) *Manager {
	return &Manager{cfg: cfg}
}

// Check runs the full equivalence check of circuits c1 and c2: preprocess,
// then route to the variable-free or symbolic (parameterized) path.
func (m *Manager) Check(c1, c2 *circuit.Circuit) (*Result, error) {
	c1p, c2p := c1.Clone(), c2.Clone()
	//
	preStart := time.Now()
	warnings, err := preprocess.Run(c1p, c2p, m.cfg.Optimizations)
	preTime := time.Since(preStart).Seconds()
	//
	if err != nil {
		return nil, err
	}
	//
	checkStart := time.Now()
	var result *Result
	//
	if hasFreeVariables(c1p) || hasFreeVariables(c2p) {
		result, err = m.runParameterized(c1p, c2p)
	} else {
		result, err = m.runOnce(c1p, c2p)
	}
	//
	if err != nil {
		return nil, err
	}
	//
	result.PreprocessingTimeSeconds = preTime
	result.CheckTimeSeconds = time.Since(checkStart).Seconds()
	result.Warnings = append(result.Warnings, warnings.Messages...)
	//
	return result, nil
}

func hasFreeVariables(c *circuit.Circuit) bool {
	return len(c.FreeVariables()) > 0
}

// runOnce builds one job per enabled checker, lets the executor run them in
// the configured mode, and assembles a Result.
func (m *Manager) runOnce(c1, c2 *circuit.Circuit) (*Result, error) {
	cfg := checker.Config{
		NumericalTolerance:      m.cfg.Execution.NumericalTolerance,
		TraceThreshold:          m.cfg.Functionality.TraceThreshold,
		FidelityThreshold:       m.cfg.Simulation.FidelityThreshold,
		CheckPartialEquivalence: m.cfg.Functionality.CheckPartialEquivalence,
	}
	//
	costProfile, err := m.loadProfile()
	if err != nil {
		return nil, err
	}
	//
	cost := costFuncFor(costProfile)
	var warnings []string
	//
	if m.cfg.Execution.RunConstructionChecker && m.cfg.Application.ConstructionScheme == scheme.Lookahead {
		return nil, qcecerr.New(qcecerr.UnsupportedConfiguration, "Lookahead scheme is alternating-checker only, not valid for the construction checker")
	}
	//
	if m.cfg.Execution.RunSimulationChecker && m.cfg.Application.SimulationScheme == scheme.Lookahead {
		return nil, qcecerr.New(qcecerr.UnsupportedConfiguration, "Lookahead scheme is alternating-checker only, not valid on vector DDs (simulation checker)")
	}
	//
	runConstruction := m.cfg.Execution.RunConstructionChecker
	runAlternating := m.cfg.Execution.RunAlternatingChecker
	runGraphRewrite := m.cfg.Execution.RunGraphRewriteChecker
	//
	if runAlternating && !checker.AlternatingCanHandle(c1, c2) {
		runAlternating = false
		runConstruction = true
		warnings = append(warnings, "alternating checker cannot handle this circuit pair; falling back to construction checker")
		log.Warn("alternating checker cannot handle this circuit pair; falling back to construction checker")
	}
	//
	if m.cfg.Functionality.CheckPartialEquivalence &&
		(!checker.MatrixCheckerCanHandlePartial(c1) || !checker.MatrixCheckerCanHandlePartial(c2)) {
		if runConstruction {
			runConstruction = false
			warnings = append(warnings, "construction checker cannot account for non-ancilla garbage qubits under check_partial_equivalence; disabling")
		}
		//
		if runAlternating {
			runAlternating = false
			warnings = append(warnings, "alternating checker cannot account for non-ancilla garbage qubits under check_partial_equivalence; disabling")
		}
		//
		if runGraphRewrite {
			runGraphRewrite = false
			warnings = append(warnings, "graph-rewrite checker cannot account for non-ancilla garbage qubits under check_partial_equivalence; disabling")
		}
	}
	//
	var restJobs []execpkg.Job
	//
	if runAlternating {
		pkg := dd.NewPackage(m.cfg.Execution.NumericalTolerance)
		sch := scheme.New(m.cfg.Application.AlternatingScheme, uint(len(c1.Ops())), uint(len(c2.Ops())), cost)
		restJobs = append(restJobs, execpkg.Job{
			Tag: checker.Alternating,
			Run: func(abort *atomic.Bool) (checker.Result, error) {
				return checker.RunAlternating(c1, c2, pkg, sch, cfg, abort), nil
			},
		})
	}
	//
	if runConstruction {
		pkg := dd.NewPackage(m.cfg.Execution.NumericalTolerance)
		sch := scheme.New(m.cfg.Application.ConstructionScheme, uint(len(c1.Ops())), uint(len(c2.Ops())), cost)
		restJobs = append(restJobs, execpkg.Job{
			Tag: checker.Construction,
			Run: func(abort *atomic.Bool) (checker.Result, error) {
				return checker.RunConstruction(c1, c2, pkg, sch, cfg, abort), nil
			},
		})
	}
	//
	if runGraphRewrite {
		pkg := dd.NewPackage(m.cfg.Execution.NumericalTolerance)
		backend := rewrite.NewBackend(pkg)
		restJobs = append(restJobs, execpkg.Job{
			Tag: checker.GraphRewrite,
			Run: func(abort *atomic.Bool) (checker.Result, error) {
				return checker.RunGraphRewrite(c1, c2, backend, cfg, abort), nil
			},
		})
	}
	//
	maxSims := 0
	var simFactory func(attempt int) (execpkg.Job, bool)
	//
	if m.cfg.Execution.RunSimulationChecker {
		maxSims = int(stimulus.ClampMaxSims(c1.Qubits(), c1.Ancillary(), uint(m.cfg.Simulation.MaxSims)))
		gen := stimulus.New(m.cfg.Simulation.Seed)
		//
		simFactory = func(attempt int) (execpkg.Job, bool) {
			if attempt >= maxSims {
				return execpkg.Job{}, false
			}
			//
			pkg := dd.NewPackage(m.cfg.Execution.NumericalTolerance)
			stim, genErr := gen.Generate(m.cfg.Simulation.StateType, pkg, c1.Qubits(), c1.Ancillary())
			//
			if genErr != nil {
				return execpkg.Job{}, false
			}
			//
			sch := scheme.New(m.cfg.Application.SimulationScheme, uint(len(c1.Ops())), uint(len(c2.Ops())), cost)
			//
			return execpkg.Job{
				Tag: checker.Simulation,
				Run: func(abort *atomic.Bool) (checker.Result, error) {
					return checker.RunSimulation(c1, c2, stim, pkg, sch, cfg, abort), nil
				},
			}, true
		}
	}
	//
	graphRewriteOnly := runGraphRewrite && !runConstruction && !runAlternating && !m.cfg.Execution.RunSimulationChecker
	timeout := time.Duration(m.cfg.Execution.TimeoutSeconds * float64(time.Second))
	//
	attempt := 0
	//
	nextSim := func() (execpkg.Job, bool) {
		if simFactory == nil {
			return execpkg.Job{}, false
		}
		//
		j, ok := simFactory(attempt)
		if ok {
			attempt++
		}
		//
		return j, ok
	}
	//
	var (
		verdict   checker.Verdict
		results   []checker.Result
		timedOut  bool
		runErr    error
	)
	//
	if m.cfg.Execution.Parallel {
		jobs := append([]execpkg.Job(nil), restJobs...)
		nthreads := m.cfg.Execution.NThreads
		//
		if nthreads < 1 {
			nthreads = 1
		}
		//
		if simFactory != nil {
			for len(jobs) < nthreads {
				j, ok := nextSim()
				if !ok {
					break
				}
				//
				jobs = append(jobs, j)
			}
		}
		//
		verdict, results, timedOut, runErr = execpkg.RunParallel(jobs, nthreads, timeout, maxSims, graphRewriteOnly, nextSim)
	} else {
		verdict, results, timedOut, runErr = execpkg.RunSequential(func(a int) (execpkg.Job, bool) {
			if simFactory == nil {
				return execpkg.Job{}, false
			}
			//
			j, ok := simFactory(a)
			if ok {
				attempt++
			}
			//
			return j, ok
		}, maxSims, restJobs, timeout, graphRewriteOnly)
	}
	//
	if runErr != nil {
		return nil, runErr
	}
	//
	simsPerformed := 0
	//
	for _, r := range results {
		if r.Checker == checker.Simulation {
			simsPerformed++
		}
	}
	//
	return &Result{
		Equivalence:           verdict,
		Checkers:              results,
		TimedOut:              timedOut,
		SimulationsStarted:    attempt,
		SimulationsPerformed:  simsPerformed,
		Warnings:              warnings,
	}, nil
}

func (m *Manager) loadProfile() (*profile.Profile, error) {
	if m.cfg.Application.ProfilePath == "" {
		return nil, nil
	}
	//
	f, err := os.Open(m.cfg.Application.ProfilePath)
	if err != nil {
		return nil, qcecerr.New(qcecerr.InvalidInput, "opening gate-cost profile: %v", err)
	}
	//
	defer f.Close()
	//
	p, err := profile.Parse(f)
	if err != nil {
		return nil, qcecerr.New(qcecerr.InvalidInput, "parsing gate-cost profile: %v", err)
	}
	//
	return p, nil
}

func costFuncFor(p *profile.Profile) scheme.CostFunc {
	if p == nil {
		return nil
	}
	//
	return func(kind string, controls int) uint {
		return p.Cost(kind, controls)
	}
}
