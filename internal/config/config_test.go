package config

import (
	"testing"

	"github.com/mqt-go/qcec/internal/scheme"
	"github.com/mqt-go/qcec/internal/stimulus"
)

func TestDefaultMatchesDocumentedDefaults(t *testing.T) {
	opts := Default()

	if opts.Execution.Parallel {
		t.Errorf("Parallel default should be false")
	}

	if !opts.Execution.RunConstructionChecker || !opts.Execution.RunSimulationChecker || !opts.Execution.RunAlternatingChecker {
		t.Errorf("construction, simulation and alternating checkers should be enabled by default")
	}

	if opts.Execution.RunGraphRewriteChecker {
		t.Errorf("graph-rewrite checker should be disabled by default")
	}

	if opts.Execution.NThreads <= 0 {
		t.Errorf("NThreads must be positive, got %d", opts.Execution.NThreads)
	}

	if opts.Application.ConstructionScheme != scheme.Sequential {
		t.Errorf("got %v, want Sequential construction scheme", opts.Application.ConstructionScheme)
	}

	if opts.Application.AlternatingScheme != scheme.Proportional {
		t.Errorf("got %v, want Proportional alternating scheme", opts.Application.AlternatingScheme)
	}

	if opts.Simulation.StateType != stimulus.ComputationalBasis {
		t.Errorf("got %v, want ComputationalBasis default stimulus kind", opts.Simulation.StateType)
	}

	if opts.Simulation.MaxSims < 16 {
		t.Errorf("MaxSims must be floored at 16, got %d", opts.Simulation.MaxSims)
	}
}

func TestDefaultOptimizationsMatchDocumentedSet(t *testing.T) {
	opts := Default()

	enabled := map[string]bool{
		"ReconstructSwaps":        opts.Optimizations.ReconstructSwaps,
		"ElidePermutations":       opts.Optimizations.ElidePermutations,
		"FuseSingleQubitGates":    opts.Optimizations.FuseSingleQubitGates,
		"ReorderOperations":       opts.Optimizations.ReorderOperations,
		"StripIdleQubits":        opts.Optimizations.StripIdleQubits,
		"AlignAncillaries":        opts.Optimizations.AlignAncillaries,
		"RemoveFinalMeasurements": opts.Optimizations.RemoveFinalMeasurements,
	}

	for name, v := range enabled {
		if !v {
			t.Errorf("%s should be enabled by default", name)
		}
	}

	disabled := map[string]bool{
		"TransformDynamicCircuit":       opts.Optimizations.TransformDynamicCircuit,
		"BackpropagateOutputPermutation": opts.Optimizations.BackpropagateOutputPermutation,
		"RemoveDiagonalBeforeMeasure":    opts.Optimizations.RemoveDiagonalBeforeMeasure,
	}

	for name, v := range disabled {
		if v {
			t.Errorf("%s should be disabled by default", name)
		}
	}
}
