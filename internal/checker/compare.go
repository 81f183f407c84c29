package checker

import (
	"math/cmplx"

	"github.com/mqt-go/qcec/internal/dd"
)

// compareMatrices implements spec section 4.4's matrix case.
func compareMatrices(pkg *dd.Package, u, v dd.Handle, traceThreshold, numericalTolerance float64) Verdict {
	if dd.SamePointer(u, v) {
		if weightsClose(u.Weight, v.Weight, numericalTolerance) {
			return Equivalent
		}
		//
		return EquivalentUpToGlobalPhase
	}
	//
	uClose := pkg.IsCloseToIdentity(u, traceThreshold)
	vClose := pkg.IsCloseToIdentity(v, traceThreshold)
	//
	if uClose || vClose {
		if uClose && vClose {
			if weightsClose(u.Weight, v.Weight, numericalTolerance) {
				return Equivalent
			}
			//
			return EquivalentUpToGlobalPhase
		}
		//
		return NotEquivalent
	}
	//
	w := pkg.Multiply(u, pkg.ConjugateTranspose(v))
	//
	if pkg.IsCloseToIdentity(w, traceThreshold) {
		if weightsClose(w.Weight, 1, numericalTolerance) {
			return Equivalent
		}
		//
		return EquivalentUpToGlobalPhase
	}
	//
	return NotEquivalent
}

// compareVectors implements spec section 4.4's vector case. When partial
// equivalence has reduced psi/psiPrime to density operators (matrix-kind
// handles), InnerProduct instead computes their Hilbert-Schmidt inner
// product, the natural generalization of fidelity to mixed states.
func compareVectors(pkg *dd.Package, psi, psiPrime dd.Handle, fidelityThreshold float64) Verdict {
	ip := pkg.InnerProduct(psi, psiPrime)
	re, im := real(ip), imag(ip)
	//
	if abs(re-1) < fidelityThreshold {
		return Equivalent
	}
	//
	if abs(re*re+im*im-1) < fidelityThreshold {
		return EquivalentUpToPhase
	}
	//
	return NotEquivalent
}

func weightsClose(a, b complex128, tolerance float64) bool {
	return cmplx.Abs(a-b) < tolerance
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	//
	return x
}
