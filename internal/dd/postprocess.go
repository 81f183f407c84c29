package dd

import "math/cmplx"

// PermuteQubits reorders h's qubit axes according to mapping (mapping[old] =
// new), used by a DD checker's postprocessing step to align a task's
// accumulated layout permutation with the circuit's expected output
// permutation before two handles are compared (spec section 4.4's base
// loop, step 4).
func (p *Package) PermuteQubits(h Handle, mapping []uint) Handle {
	if h.node == nil {
		return h
	}
	//
	n := h.node.qubits
	dim := uint64(1) << n
	//
	permute := func(i uint64) uint64 {
		var out uint64
		//
		for q := uint(0); q < n; q++ {
			if (i>>q)&1 == 1 {
				out |= uint64(1) << mapping[q]
			}
		}
		//
		return out
	}
	//
	src := h.dense()
	//
	switch h.node.kind {
	case KindVector:
		out := make([]complex128, dim)
		//
		for i := uint64(0); i < dim; i++ {
			out[permute(i)] = src[i]
		}
		//
		return p.intern(KindVector, n, out)
	default:
		out := make([]complex128, dim*dim)
		//
		for r := uint64(0); r < dim; r++ {
			for c := uint64(0); c < dim; c++ {
				out[permute(r)*dim+permute(c)] = src[r*dim+c]
			}
		}
		//
		return p.intern(KindMatrix, n, out)
	}
}

// ReduceAncillary restricts h to the subspace where its trailing `ancillary`
// qubits are |0>, dropping them from the handle's qubit count. Ancillary
// qubits are expected to sit at the highest indices, consistent with how
// Circuit numbers them (spec section 4.4 base loop, step 4: "reduce the
// effect of ancillary qubits").
func (p *Package) ReduceAncillary(h Handle, ancillary uint) Handle {
	if h.node == nil || ancillary == 0 {
		return h
	}
	//
	n := h.node.qubits
	if ancillary >= n {
		ancillary = n - 1
	}
	//
	primary := n - ancillary
	dim := uint64(1) << n
	pdim := uint64(1) << primary
	src := h.dense()
	//
	switch h.node.kind {
	case KindVector:
		out := make([]complex128, pdim)
		copy(out, src[:pdim])
		//
		return p.intern(KindVector, primary, out)
	default:
		out := make([]complex128, pdim*pdim)
		//
		for r := uint64(0); r < pdim; r++ {
			for c := uint64(0); c < pdim; c++ {
				out[r*pdim+c] = src[r*dim+c]
			}
		}
		//
		return p.intern(KindMatrix, primary, out)
	}
}

// PartialTraceGarbage traces out the qubits marked in garbage from a vector
// DD, returning the reduced density operator (a matrix DD) over the
// remaining qubits. This implements spec section 4.4's "sum-reduce garbage
// qubits" postprocessing step for `check_partial_equivalence`: the final
// state of a garbage qubit carries no information the comparison should
// depend on.
func (p *Package) PartialTraceGarbage(h Handle, garbage []bool) Handle {
	if h.node == nil {
		return h
	}
	//
	n := h.node.qubits
	dim := uint64(1) << n
	src := h.dense()
	//
	var keep []uint
	//
	for q := uint(0); q < n; q++ {
		if q >= uint(len(garbage)) || !garbage[q] {
			keep = append(keep, q)
		}
	}
	//
	kn := uint(len(keep))
	kdim := uint64(1) << kn
	out := make([]complex128, kdim*kdim)
	//
	project := func(i uint64) uint64 {
		var r uint64
		//
		for idx, q := range keep {
			if (i>>q)&1 == 1 {
				r |= uint64(1) << uint(idx)
			}
		}
		//
		return r
	}
	//
	for i := uint64(0); i < dim; i++ {
		if src[i] == 0 {
			continue
		}
		//
		for j := uint64(0); j < dim; j++ {
			if src[j] == 0 {
				continue
			}
			//
			if !agreeOnGarbage(i, j, n, garbage) {
				continue
			}
			//
			ri, rj := project(i), project(j)
			out[ri*kdim+rj] += src[i] * cmplx.Conj(src[j])
		}
	}
	//
	return p.intern(KindMatrix, kn, out)
}

// Size returns the number of nonzero amplitudes in h, used by the
// alternating checker's Lookahead scheme as a proxy for DD size when
// deciding which of two candidate advances to keep (spec section 4.3).
func (h Handle) Size() int {
	if h.node == nil {
		return 0
	}
	//
	count := 0
	//
	for _, v := range h.node.entries {
		if v != 0 {
			count++
		}
	}
	//
	return count
}

func agreeOnGarbage(i, j uint64, n uint, garbage []bool) bool {
	for q := uint(0); q < n; q++ {
		if q < uint(len(garbage)) && garbage[q] {
			if (i>>q)&1 != (j>>q)&1 {
				return false
			}
		}
	}
	//
	return true
}
