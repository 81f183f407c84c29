// Package stimulus implements the stimulus generator collaborator of spec
// section 4.2: a deterministically seeded source of random input states for
// the simulation checker, in three families (computational-basis,
// single-qubit-basis, stabilizer).
package stimulus

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	mrand "math/rand/v2"

	"github.com/mqt-go/qcec/internal/bitset"
	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/dd"
)

// Kind selects one of the three stimulus families.
type Kind uint8

const (
	ComputationalBasis Kind = iota
	SingleQubitBasis
	Stabilizer
)

// Generator is the manager-owned, checker-shared stimulus source. Spec
// section 3 restricts mutation of its internal random state to stimulus
// draws, serialized by the executor across parallel simulation workers.
type Generator struct {
	rng     *mrand.Rand
	seed    uint64
	visited *bitset.Set
}

// New constructs a generator. If seed is zero, a nondeterministic seed is
// drawn from the OS entropy source; otherwise the generator is deterministic
// for that seed (spec section 4.2's "Seeding").
func New(seed uint64) *Generator {
	g := &Generator{}
	g.Reseed(seed)
	//
	return g
}

// Reseed resets the generator's PRNG and duplicate-tracking set.
func (g *Generator) Reseed(seed uint64) {
	if seed == 0 {
		seed = nondeterministicSeed()
	}
	//
	g.seed = seed
	g.rng = mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g.visited = bitset.New(0)
}

// Seed returns the seed this generator was (re)initialized with; useful for
// the determinism property (spec section 8).
func (g *Generator) Seed() uint64 { return g.seed }

func nondeterministicSeed() uint64 {
	var buf [8]byte
	//
	if _, err := rand.Read(buf[:]); err != nil {
		// Entropy source unavailable: fall back to a fixed, documented
		// constant rather than leaving the PRNG uninitialized.
		return 0xdeadbeefcafef00d
	}
	//
	return binary.LittleEndian.Uint64(buf[:])
}

// ClampMaxSims bounds maxSims to the number of distinct computational-basis
// states available over r = total-ancillary randomized qubits, when r is
// small enough to count exactly. This mirrors the reference implementation's
// precomputation that prevents simulation from blocking forever waiting on
// stimuli the generator cannot produce (SPEC_FULL.md's supplemented
// feature).
func ClampMaxSims(totalQubits, ancillaryQubits, maxSims uint) uint {
	r := totalQubits - ancillaryQubits
	//
	if r > 63 {
		return maxSims
	}
	//
	unique := uint64(1) << r
	//
	if uint64(maxSims) > unique {
		return uint(unique)
	}
	//
	return maxSims
}

// Generate draws one stimulus of the given kind over totalQubits qubits, the
// last ancillaryQubits of which are held at |0>.
func (g *Generator) Generate(kind Kind, pkg *dd.Package, totalQubits, ancillaryQubits uint) (dd.Handle, error) {
	r := totalQubits - ancillaryQubits
	//
	switch kind {
	case ComputationalBasis:
		return g.generateComputationalBasis(pkg, totalQubits, r)
	case SingleQubitBasis:
		return g.generateSingleQubitBasis(pkg, totalQubits, r)
	case Stabilizer:
		return g.generateStabilizer(pkg, totalQubits, r)
	default:
		return dd.Handle{}, fmt.Errorf("stimulus: unknown kind %d", kind)
	}
}

func (g *Generator) generateComputationalBasis(pkg *dd.Package, totalQubits, r uint) (dd.Handle, error) {
	if r > 63 {
		return dd.Handle{}, fmt.Errorf("stimulus: computational-basis requires r<=63 randomized qubits, got %d", r)
	}
	//
	space := uint64(1) << r
	//
	if uint64(g.visited.Count()) >= space {
		return dd.Handle{}, fmt.Errorf("stimulus: exhausted all %d computational-basis states", space)
	}
	//
	for {
		idx := g.rng.Uint64N(space)
		//
		if !g.visited.Contains(uint(idx)) {
			g.visited.Insert(uint(idx))
			return pkg.ComputationalBasisState(totalQubits, idx), nil
		}
	}
}

var sixBasisLabels = [6]dd.BasisLabel{dd.Zero, dd.One, dd.Plus, dd.Minus, dd.PlusI, dd.MinusI}

func (g *Generator) generateSingleQubitBasis(pkg *dd.Package, totalQubits, r uint) (dd.Handle, error) {
	labels := make([]dd.BasisLabel, totalQubits)
	//
	for q := uint(0); q < r; q++ {
		labels[q] = sixBasisLabels[g.rng.Uint64N(uint64(len(sixBasisLabels)))]
	}
	//
	for q := r; q < totalQubits; q++ {
		labels[q] = dd.Zero
	}
	//
	return pkg.BasisState(labels), nil
}

func (g *Generator) generateStabilizer(pkg *dd.Package, totalQubits, r uint) (dd.Handle, error) {
	labels := make([]dd.BasisLabel, totalQubits)
	h := pkg.BasisState(labels) // |0...0>
	//
	if r == 0 {
		return h, nil
	}
	//
	depth := uint(math.Ceil(math.Log2(float64(r))))
	if depth == 0 {
		depth = 1
	}
	//
	for d := uint(0); d < depth; d++ {
		for q := uint(0); q < r; q++ {
			switch g.rng.Uint64N(3) {
			case 0:
				h = pkg.ApplyGate(h, circuit.GateH, nil, []uint{q}, nil)
			case 1:
				h = pkg.ApplyGate(h, circuit.GateS, nil, []uint{q}, nil)
			default:
				if r > 1 {
					ctrl := (q + 1) % r
					h = pkg.ApplyGate(h, circuit.GateX, nil, []uint{q}, []uint{ctrl})
				}
			}
		}
	}
	//
	return h, nil
}
