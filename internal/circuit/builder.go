package circuit

// Builder provides a small fluent API for constructing circuits
// programmatically, in lieu of a textual front end (spec section 1 treats
// gate-level parsing as an external collaborator; this module only needs a
// way to construct the handful of circuits its test suite exercises).
type Builder struct {
	c *Circuit
}

// NewBuilder starts building a circuit with the given name and qubit count.
func NewBuilder(name string, qubits uint) *Builder {
	return &Builder{New(name, qubits)}
}

// Build returns the constructed circuit.
func (b *Builder) Build() *Circuit { return b.c }

func (b *Builder) unitary(gate GateType, controls []uint, targets ...uint) *Builder {
	b.c.AddOp(Operation{Kind: KindUnitary, Gate: gate, Targets: targets, Controls: controls})
	return b
}

// H appends a Hadamard on q.
func (b *Builder) H(q uint) *Builder { return b.unitary(GateH, nil, q) }

// X appends a Pauli-X on q.
func (b *Builder) X(q uint) *Builder { return b.unitary(GateX, nil, q) }

// Y appends a Pauli-Y on q.
func (b *Builder) Y(q uint) *Builder { return b.unitary(GateY, nil, q) }

// Z appends a Pauli-Z on q.
func (b *Builder) Z(q uint) *Builder { return b.unitary(GateZ, nil, q) }

// S appends a phase gate on q.
func (b *Builder) S(q uint) *Builder { return b.unitary(GateS, nil, q) }

// T appends a T gate on q.
func (b *Builder) T(q uint) *Builder { return b.unitary(GateT, nil, q) }

// RX appends an RX(theta) rotation on q.
func (b *Builder) RX(theta float64, q uint) *Builder {
	b.c.AddOp(Operation{Kind: KindUnitary, Gate: GateRX, Targets: []uint{q}, Params: []Param{Concrete(theta)}})
	return b
}

// RZ appends an RZ(theta) rotation on q, possibly with a free variable.
func (b *Builder) RZ(theta Param, q uint) *Builder {
	b.c.AddOp(Operation{Kind: KindUnitary, Gate: GateRZ, Targets: []uint{q}, Params: []Param{theta}})
	return b
}

// GlobalPhase appends a global phase of theta radians.
func (b *Builder) GlobalPhase(theta float64) *Builder {
	b.c.AddOp(Operation{Kind: KindUnitary, Gate: GatePhase, Params: []Param{Concrete(theta)}})
	return b
}

// CX appends a controlled-NOT with control ctrl and target tgt.
func (b *Builder) CX(ctrl, tgt uint) *Builder { return b.unitary(GateX, []uint{ctrl}, tgt) }

// CZ appends a controlled-Z with control ctrl and target tgt.
func (b *Builder) CZ(ctrl, tgt uint) *Builder { return b.unitary(GateZ, []uint{ctrl}, tgt) }

// Swap appends a SWAP between a and b.
func (b *Builder) Swap(a, t uint) *Builder { return b.unitary(GateSwap, nil, a, t) }

// Reset appends a reset on q.
func (b *Builder) Reset(q uint) *Builder {
	b.c.AddOp(Operation{Kind: KindReset, Targets: []uint{q}})
	return b
}

// Measure appends a measurement of q into classical bit cbit.
func (b *Builder) Measure(q, cbit uint) *Builder {
	b.c.AddOp(Operation{Kind: KindMeasurement, Targets: []uint{q}, ClassicalBit: cbit})
	return b
}

// AncillaQubits marks the top n qubits as ancillary.
func (b *Builder) AncillaQubits(n uint) *Builder {
	b.c.SetAncillary(n)
	return b
}

// GarbageQubit marks logical qubit q as garbage.
func (b *Builder) GarbageQubit(q uint) *Builder {
	b.c.MarkGarbage(q)
	return b
}
