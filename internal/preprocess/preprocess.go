// Package preprocess implements the preprocessor collaborator of spec
// section 4.1: a fixed sequence of normalization passes, each gated by a
// config flag, applied to both circuits before any checker sees them.
package preprocess

import (
	log "github.com/sirupsen/logrus"

	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/config"
	"github.com/mqt-go/qcec/internal/qcecerr"
	"github.com/mqt-go/qcec/internal/util"
)

// Warnings accumulates the non-fatal diagnostics spec section 7 requires
// (emitted to a diagnostic stream but never abort).
type Warnings struct {
	Messages []string
}

func (w *Warnings) add(format string, args ...any) {
	w.Messages = append(w.Messages, qcecerr.New(qcecerr.IncompatibleShape, format, args...).Error())
}

// Run executes the preprocessor's fixed pass order over c1 and c2, mutating
// both in place. It returns accumulated non-fatal warnings, or an error for
// the fatal failure modes of spec section 4.1.
func Run(c1, c2 *circuit.Circuit, opt config.Optimizations) (*Warnings, error) {
	stats := util.NewPerfStats()
	defer stats.Log("preprocessing")
	//
	warnings := &Warnings{}
	//
	if err := dynamicCircuitTransform(c1, opt); err != nil {
		return warnings, err
	}
	//
	if err := dynamicCircuitTransform(c2, opt); err != nil {
		return warnings, err
	}
	//
	if opt.ReconstructSwaps {
		reconstructSwaps(c1)
		reconstructSwaps(c2)
	}
	//
	if opt.BackpropagateOutputPermutation {
		if !opt.TransformDynamicCircuit {
			log.Warn("output-permutation back-propagation requested without dynamic-circuit transform; applying anyway")
		}
		//
		backpropagateOutputPermutation(c1)
		backpropagateOutputPermutation(c2)
	}
	//
	if opt.ElidePermutations {
		elidePermutations(c1)
		elidePermutations(c2)
	}
	//
	if opt.FuseSingleQubitGates {
		fuseSingleQubitGates(c1)
		fuseSingleQubitGates(c2)
	}
	//
	if opt.RemoveDiagonalBeforeMeasure {
		removeDiagonalBeforeMeasure(c1)
		removeDiagonalBeforeMeasure(c2)
	}
	//
	if opt.ReorderOperations {
		c1.SetOps(canonicalReorder(c1.Ops()))
		c2.SetOps(canonicalReorder(c2.Ops()))
	}
	//
	if opt.StripIdleQubits {
		stripIdleQubits(c1, c2)
	}
	//
	if opt.AlignAncillaries {
		alignAncillaries(c1, c2)
	}
	//
	if opt.RemoveFinalMeasurements {
		removeFinalMeasurements(c1)
		removeFinalMeasurements(c2)
	}
	//
	if c1.Primary() != c2.Primary() {
		warnings.add("primary qubit counts differ after alignment: %d vs %d", c1.Primary(), c2.Primary())
	}
	//
	return warnings, nil
}
