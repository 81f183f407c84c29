package dd

import (
	"math/cmplx"

	"github.com/mqt-go/qcec/internal/circuit"
)

// ApplyGate returns the handle obtained by applying a single gate to h: for a
// vector DD this is G|psi>, for a matrix DD this is G*M (left-multiplication,
// matching the construction checker's "multiply current matrix by next
// operation's DD" rule, spec section 4.4).
func (p *Package) ApplyGate(h Handle, gate circuit.GateType, params []float64, targets, controls []uint) Handle {
	return p.applyOp(h, gate, params, nil, targets, controls)
}

// ApplyCompound applies an explicit 2x2 unitary (spec section 4.1's fused
// single-qubit compound operation) at target t.
func (p *Package) ApplyCompound(h Handle, m [4]complex128, target uint, controls []uint) Handle {
	return p.applyOp(h, circuit.GateCompound, nil, &m, []uint{target}, controls)
}

func (p *Package) applyOp(h Handle, gate circuit.GateType, params []float64, compound *[4]complex128, targets, controls []uint) Handle {
	if h.node == nil {
		return h
	}
	//
	n := h.node.qubits
	dim := uint64(1) << n
	//
	if gate == circuit.GatePhase {
		phase := cmplx.Exp(complex(0, params[0]))
		return Handle{node: h.node, Weight: h.Weight * phase}
	}
	//
	switch h.node.kind {
	case KindVector:
		out := applyToVector(n, h.dense(), gate, params, compound, targets, controls)
		return p.intern(KindVector, n, out)
	default:
		src := h.dense()
		out := make([]complex128, len(src))
		col := make([]complex128, dim)
		//
		for c := uint64(0); c < dim; c++ {
			for r := uint64(0); r < dim; r++ {
				col[r] = src[r*dim+c]
			}
			//
			col = applyToVector(n, col, gate, params, compound, targets, controls)
			//
			for r := uint64(0); r < dim; r++ {
				out[r*dim+c] = col[r]
			}
		}
		//
		return p.intern(KindMatrix, n, out)
	}
}

// applyToVector applies a gate to a length-2^n amplitude vector.
func applyToVector(n uint, entries []complex128, gate circuit.GateType, params []float64, compound *[4]complex128, targets, controls []uint) []complex128 {
	dim := uint64(1) << n
	out := make([]complex128, dim)
	//
	if gate == circuit.GateSwap {
		a, b := targets[0], targets[1]
		//
		for i := uint64(0); i < dim; i++ {
			if !controlsSatisfied(i, controls) {
				out[i] = entries[i]
				continue
			}
			//
			out[i] = entries[swapBits(i, a, b)]
		}
		//
		return out
	}
	//
	var m matrix2
	if compound != nil {
		m = matrix2(*compound)
	} else {
		m = singleQubitMatrix(gate, params)
	}
	//
	t := targets[0]
	tBit := uint64(1) << t
	//
	for i := uint64(0); i < dim; i++ {
		if i&tBit != 0 {
			continue // handled from the paired i with bit t == 0
		}
		//
		j := i | tBit
		//
		if !controlsSatisfied(i, controls) {
			out[i], out[j] = entries[i], entries[j]
			continue
		}
		//
		out[i] = m[0]*entries[i] + m[1]*entries[j]
		out[j] = m[2]*entries[i] + m[3]*entries[j]
	}
	//
	return out
}

func controlsSatisfied(i uint64, controls []uint) bool {
	for _, c := range controls {
		if i&(uint64(1)<<c) == 0 {
			return false
		}
	}
	//
	return true
}

func swapBits(i uint64, a, b uint) uint64 {
	ab := (i >> a) & 1
	bb := (i >> b) & 1
	//
	if ab == bb {
		return i
	}
	//
	return i ^ (uint64(1) << a) ^ (uint64(1) << b)
}

// Multiply computes a*b: matrix*matrix or matrix*vector.
func (p *Package) Multiply(a, b Handle) Handle {
	if a.node == nil {
		return b
	}
	//
	if b.node == nil {
		return a
	}
	//
	n := a.node.qubits
	dim := uint64(1) << n
	ad, bd := a.dense(), b.dense()
	//
	if b.node.kind == KindVector {
		out := make([]complex128, dim)
		//
		for r := uint64(0); r < dim; r++ {
			var sum complex128
			//
			for c := uint64(0); c < dim; c++ {
				sum += ad[r*dim+c] * bd[c]
			}
			//
			out[r] = sum
		}
		//
		return p.intern(KindVector, n, out)
	}
	//
	out := make([]complex128, dim*dim)
	//
	for r := uint64(0); r < dim; r++ {
		for c := uint64(0); c < dim; c++ {
			var sum complex128
			//
			for k := uint64(0); k < dim; k++ {
				sum += ad[r*dim+k] * bd[k*dim+c]
			}
			//
			out[r*dim+c] = sum
		}
	}
	//
	return p.intern(KindMatrix, n, out)
}

// ConjugateTranspose returns a's adjoint. a must be a matrix DD.
func (p *Package) ConjugateTranspose(a Handle) Handle {
	if a.node == nil {
		return a
	}
	//
	n := a.node.qubits
	dim := uint64(1) << n
	src := a.dense()
	out := make([]complex128, dim*dim)
	//
	for r := uint64(0); r < dim; r++ {
		for c := uint64(0); c < dim; c++ {
			out[c*dim+r] = cmplx.Conj(src[r*dim+c])
		}
	}
	//
	return p.intern(KindMatrix, n, out)
}

// InnerProduct computes <a|b> for two vector DDs over the same qubit count.
func (p *Package) InnerProduct(a, b Handle) complex128 {
	if a.node == nil || b.node == nil {
		return 0
	}
	//
	ad, bd := a.dense(), b.dense()
	var sum complex128
	//
	for i := range ad {
		sum += cmplx.Conj(ad[i]) * bd[i]
	}
	//
	return sum
}

// IsCloseToIdentity reports whether the matrix DD a is within threshold of
// the identity operator, using a normalized Frobenius distance (spec section
// 4.4's "identity-proximity test", configured via `trace_threshold`).
func (p *Package) IsCloseToIdentity(a Handle, threshold float64) bool {
	if a.node == nil {
		return false
	}
	//
	n := a.node.qubits
	dim := uint64(1) << n
	// Structure only: the top edge weight carries any global phase, which a
	// closeness-to-identity *structure* test must ignore (spec section 4.4
	// decides global phase separately, via the top-weight comparison).
	src := a.node.entries
	var sumSq float64
	//
	for r := uint64(0); r < dim; r++ {
		for c := uint64(0); c < dim; c++ {
			expected := complex128(0)
			//
			if r == c {
				expected = 1
			}
			//
			d := src[r*dim+c] - expected
			sumSq += real(d)*real(d) + imag(d)*imag(d)
		}
	}
	//
	dist := sumSq / float64(dim)
	return dist < threshold
}
