package dd

import (
	"math"
	"math/cmplx"

	"github.com/mqt-go/qcec/internal/circuit"
)

// matrix2 is a dense 2x2 single-qubit gate matrix, row-major.
type matrix2 [4]complex128

var (
	identity2 = matrix2{1, 0, 0, 1}
	pauliX    = matrix2{0, 1, 1, 0}
	pauliY    = matrix2{0, -1i, 1i, 0}
	pauliZ    = matrix2{1, 0, 0, -1}
	hadamard  = matrix2{1 / math.Sqrt2, 1 / math.Sqrt2, 1 / math.Sqrt2, -1 / math.Sqrt2}
	phaseS    = matrix2{1, 0, 0, 1i}
	phaseSdg  = matrix2{1, 0, 0, -1i}
	gateSX    = matrix2{
		complex(0.5, 0.5), complex(0.5, -0.5),
		complex(0.5, -0.5), complex(0.5, 0.5),
	}
)

func gateT(dagger bool) matrix2 {
	angle := math.Pi / 4
	if dagger {
		angle = -angle
	}
	//
	return matrix2{1, 0, 0, cmplx.Exp(complex(0, angle))}
}

func rx(theta float64) matrix2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	//
	return matrix2{c, s, s, c}
}

func ry(theta float64) matrix2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	//
	return matrix2{c, -s, s, c}
}

func rz(theta float64) matrix2 {
	neg := cmplx.Exp(complex(0, -theta/2))
	pos := cmplx.Exp(complex(0, theta/2))
	//
	return matrix2{neg, 0, 0, pos}
}

// singleQubitMatrix resolves an Operation's gate type and (already
// instantiated, non-symbolic) parameters into a dense 2x2 unitary.
// GateSwap and GatePhase are handled separately by the caller since they do
// not fit the single-target-qubit shape.
func singleQubitMatrix(gate circuit.GateType, params []float64) matrix2 {
	switch gate {
	case circuit.GateIdentity:
		return identity2
	case circuit.GateX:
		return pauliX
	case circuit.GateY:
		return pauliY
	case circuit.GateZ:
		return pauliZ
	case circuit.GateH:
		return hadamard
	case circuit.GateS:
		return phaseS
	case circuit.GateSdg:
		return phaseSdg
	case circuit.GateT:
		return gateT(false)
	case circuit.GateTdg:
		return gateT(true)
	case circuit.GateSX:
		return gateSX
	case circuit.GateRX:
		return rx(params[0])
	case circuit.GateRY:
		return ry(params[0])
	case circuit.GateRZ:
		return rz(params[0])
	default:
		return identity2
	}
}
