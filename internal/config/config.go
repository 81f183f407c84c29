// Package config holds the engine's single configuration value (spec
// section 6), grouped the way the teacher's CompilationConfig/
// LoweringConfig structs group theirs.
package config

import (
	"runtime"

	"github.com/mqt-go/qcec/internal/scheme"
	"github.com/mqt-go/qcec/internal/stimulus"
)

// Execution groups the executor's scheduling knobs.
type Execution struct {
	Parallel                bool
	NThreads                int
	TimeoutSeconds          float64
	RunConstructionChecker  bool
	RunSimulationChecker    bool
	RunAlternatingChecker   bool
	RunGraphRewriteChecker  bool
	NumericalTolerance      float64
	SetAllAncillaeGarbage   bool
}

// Optimizations groups the preprocessor's pass toggles (spec section 4.1).
type Optimizations struct {
	TransformDynamicCircuit      bool
	ReconstructSwaps             bool
	BackpropagateOutputPermutation bool
	ElidePermutations            bool
	FuseSingleQubitGates         bool
	RemoveDiagonalBeforeMeasure  bool
	ReorderOperations            bool
	StripIdleQubits              bool
	AlignAncillaries             bool
	RemoveFinalMeasurements      bool
}

// Application groups the application-scheme selections.
type Application struct {
	ConstructionScheme scheme.Tag
	SimulationScheme   scheme.Tag
	AlternatingScheme  scheme.Tag
	ProfilePath        string
}

// Functionality groups the DD/graph-rewrite comparison thresholds.
type Functionality struct {
	TraceThreshold          float64
	CheckPartialEquivalence bool
}

// Simulation groups the stimulus generator's knobs.
type Simulation struct {
	FidelityThreshold float64
	MaxSims           int
	StateType         stimulus.Kind
	Seed              uint64
}

// Parameterized groups the symbolic-circuit instantiation knobs.
type Parameterized struct {
	Tolerance              float64
	AdditionalInstantiations int
}

// Options is the engine's full configuration value.
type Options struct {
	Execution     Execution
	Optimizations Optimizations
	Application   Application
	Functionality Functionality
	Simulation    Simulation
	Parameterized Parameterized
}

// Default returns the configuration spec section 6 documents as default.
func Default() Options {
	nthreads := runtime.NumCPU()
	maxSims := nthreads - 2
	//
	if maxSims < 16 {
		maxSims = 16
	}
	//
	return Options{
		Execution: Execution{
			Parallel:               false,
			NThreads:               nthreads,
			TimeoutSeconds:         0,
			RunConstructionChecker: true,
			RunSimulationChecker:   true,
			RunAlternatingChecker:  true,
			RunGraphRewriteChecker: false,
			NumericalTolerance:     2e-13,
		},
		Optimizations: Optimizations{
			TransformDynamicCircuit:       false,
			ReconstructSwaps:              true,
			BackpropagateOutputPermutation: false,
			ElidePermutations:             true,
			FuseSingleQubitGates:          true,
			RemoveDiagonalBeforeMeasure:   false,
			ReorderOperations:             true,
			StripIdleQubits:               true,
			AlignAncillaries:              true,
			RemoveFinalMeasurements:       true,
		},
		Application: Application{
			ConstructionScheme: scheme.Sequential,
			SimulationScheme:   scheme.Sequential,
			AlternatingScheme:  scheme.Proportional,
		},
		Functionality: Functionality{
			TraceThreshold:          1e-8,
			CheckPartialEquivalence: false,
		},
		Simulation: Simulation{
			FidelityThreshold: 1e-8,
			MaxSims:           maxSims,
			StateType:         stimulus.ComputationalBasis,
			Seed:              0,
		},
		Parameterized: Parameterized{
			Tolerance:                1e-12,
			AdditionalInstantiations: 0,
		},
	}
}
