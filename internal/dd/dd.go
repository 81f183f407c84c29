// Package dd implements the DD-package collaborator contracted in spec
// section 4's component 2: construction of basis states, multiplication,
// conjugate-transpose, inner product, an approximate-identity test, and
// reference-counted handles with a numerical tolerance knob.
//
// A production decision-diagram package (node table, unique table, compute
// cache) is explicitly out of this project's scope (spec section 1); what
// follows is a reference implementation of the same external contract,
// canonicalized by interning a tolerance-quantized, phase-normalized dense
// representation instead of a recursive node graph. This keeps every
// checker, scheme and the executor honest against the real contract
// (top-pointer equality, top-weight phase, identity-proximity, inner
// product) without committing to DD internals the spec treats as supplied
// by someone else.
package dd

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Kind distinguishes matrix DDs (operators) from vector DDs (states).
type Kind uint8

const (
	// KindMatrix identifies a matrix (operator) decision diagram.
	KindMatrix Kind = iota
	// KindVector identifies a vector (state) decision diagram.
	KindVector
)

// node is the canonical, reference-counted, interned representation shared
// by every Handle whose function is numerically identical (within the
// package's tolerance) up to global weight.
type node struct {
	kind    Kind
	qubits  uint
	entries []complex128 // phase/magnitude-normalized, so entries[argmax] == 1
	refs    int32
}

// Handle is an opaque, reference-counted edge into the DD package's node
// table: a canonical node pointer plus a top edge weight, exactly as spec
// section 3's "DD handle" entity describes. The zero value is the `zero`
// sentinel.
type Handle struct {
	node   *node
	Weight complex128
}

// IsZero reports whether h is the zero sentinel.
func (h Handle) IsZero() bool { return h.node == nil && h.Weight == 0 }

// Qubits returns the number of qubits this handle's function is defined
// over.
func (h Handle) Qubits() uint {
	if h.node == nil {
		return 0
	}
	//
	return h.node.qubits
}

// Kind returns whether this handle is a matrix or vector DD.
func (h Handle) Kind() Kind {
	if h.node == nil {
		return KindVector
	}
	//
	return h.node.kind
}

// SamePointer reports whether a and b share the same canonical top node
// (spec section 4.4's comparison shortcut).
func SamePointer(a, b Handle) bool { return a.node == b.node }

// Package owns one DD instance's unique table, numerical tolerance and
// reference counts. Spec section 3 requires each DD checker to own exactly
// one Package for its lifetime and section 5 treats it as thread-affine
// (never shared across workers).
type Package struct {
	tolerance float64
	unique    map[string]*node
}

// NewPackage constructs a DD package with the given numerical tolerance
// (spec section 6's `numerical_tolerance`, default 2e-13).
func NewPackage(tolerance float64) *Package {
	return &Package{tolerance: tolerance, unique: make(map[string]*node)}
}

// Tolerance returns the package's numerical tolerance.
func (p *Package) Tolerance() float64 { return p.tolerance }

// SetTolerance updates the package's numerical tolerance. Spec section 9
// treats this configuration as global mutable state on the DD package,
// meant to be set once at construction.
func (p *Package) SetTolerance(t float64) { p.tolerance = t }

// Ref increments h's reference count and returns h unchanged.
func (p *Package) Ref(h Handle) Handle {
	if h.node != nil {
		h.node.refs++
	}
	//
	return h
}

// Deref decrements h's reference count.
func (p *Package) Deref(h Handle) {
	if h.node != nil && h.node.refs > 0 {
		h.node.refs--
	}
}

// intern normalizes a dense function by its largest-magnitude entry and
// looks it up (or inserts it) in the unique table, quantized to the
// package's tolerance. This is what gives two numerically-equal functions
// the same canonical node pointer.
func (p *Package) intern(kind Kind, qubits uint, entries []complex128) Handle {
	factor, idx := maxMagnitude(entries)
	//
	if factor == 0 {
		return Handle{}
	}
	//
	normalized := make([]complex128, len(entries))
	//
	for i, v := range entries {
		normalized[i] = v / factor
	}
	//
	normalized[idx] = 1 // exact, avoid rounding noise at the pivot
	key := quantizeKey(kind, qubits, normalized, p.tolerance)
	//
	n, ok := p.unique[key]
	if !ok {
		n = &node{kind: kind, qubits: qubits, entries: normalized}
		p.unique[key] = n
	}
	//
	return Handle{node: n, Weight: factor}
}

func maxMagnitude(entries []complex128) (complex128, int) {
	var (
		best    complex128
		bestIdx int
		bestMag = -1.0
	)
	//
	for i, v := range entries {
		if m := cmplx.Abs(v); m > bestMag {
			bestMag, best, bestIdx = m, v, i
		}
	}
	//
	return best, bestIdx
}

func quantizeKey(kind Kind, qubits uint, normalized []complex128, tolerance float64) string {
	// Round to a grid the size of the tolerance so that numerically close
	// functions (within tolerance) intern to the same node.
	grid := tolerance
	if grid <= 0 {
		grid = 1e-13
	}
	//
	buf := make([]byte, 0, len(normalized)*24+8)
	buf = fmt.Appendf(buf, "%d:%d:", kind, qubits)
	//
	for _, v := range normalized {
		re := math.Round(real(v)/grid) * grid
		im := math.Round(imag(v)/grid) * grid
		buf = fmt.Appendf(buf, "%.12g,%.12g;", re, im)
	}
	//
	return string(buf)
}

// dense reconstructs the full (unnormalized) amplitude or matrix entries
// this handle represents.
func (h Handle) dense() []complex128 {
	if h.node == nil {
		return nil
	}
	//
	out := make([]complex128, len(h.node.entries))
	//
	for i, v := range h.node.entries {
		out[i] = v * h.Weight
	}
	//
	return out
}
