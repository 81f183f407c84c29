package dd

import "github.com/mqt-go/qcec/internal/circuit"

// GateMatrix exposes the dense 2x2 unitary for a single-qubit gate, for use
// by the preprocessor's single-qubit fusion pass (spec section 4.1), which
// composes a maximal run of single-qubit gates into one compound operation.
func GateMatrix(gate circuit.GateType, params []float64) [4]complex128 {
	return [4]complex128(singleQubitMatrix(gate, params))
}

// ComposeMatrix2 returns the 2x2 product second*first, i.e. the matrix
// representing "apply first, then second" — matching how single-qubit
// fusion folds a run of gates into one compound unitary in application
// order.
func ComposeMatrix2(first, second [4]complex128) [4]complex128 {
	a, b := matrix2(first), matrix2(second)
	//
	return [4]complex128{
		b[0]*a[0] + b[1]*a[2], b[0]*a[1] + b[1]*a[3],
		b[2]*a[0] + b[3]*a[2], b[2]*a[1] + b[3]*a[3],
	}
}

// Identity2 is the 2x2 identity matrix, the fusion pass's starting
// accumulator.
var Identity2 = [4]complex128(identity2)
