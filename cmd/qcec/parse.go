package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mqt-go/qcec/internal/circuit"
)

// loadCircuit reads a small line-oriented gate list, one instruction per
// line, tokens separated by whitespace, "#" starting a comment. This is a
// CLI-only convenience front end; internal/circuit itself only exposes the
// programmatic Builder API, the circuit IR adapter having no textual parser
// of its own (spec section 1 treats circuit-text parsing as a separate,
// out-of-scope collaborator).
//
//	qubits <n>
//	ancilla <n>
//	garbage <q>
//	h|x|y|z|s|t <q>
//	rx|rz <theta> <q>
//	phase <theta>
//	cx|cz <control> <target>
//	swap <a> <b>
//	reset <q>
//	measure <q> <cbit>
//
// Any other keyword (sdg, tdg, sx and ry among them) is rejected as an
// unknown instruction.
func loadCircuit(path string) (*circuit.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var b *circuit.Builder
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		op := strings.ToLower(fields[0])
		args := fields[1:]

		if b == nil && op != "qubits" {
			return nil, fmt.Errorf("%s:%d: expected \"qubits <n>\" as the first instruction", path, lineNo)
		}

		switch op {
		case "qubits":
			n, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b = circuit.NewBuilder(path, uint(n))
		case "ancilla":
			n, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.AncillaQubits(uint(n))
		case "garbage":
			q, err := parseQubit(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.GarbageQubit(q)
		case "h":
			q, err := parseQubit(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.H(q)
		case "x":
			q, err := parseQubit(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.X(q)
		case "y":
			q, err := parseQubit(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.Y(q)
		case "z":
			q, err := parseQubit(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.Z(q)
		case "s":
			q, err := parseQubit(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.S(q)
		case "t":
			q, err := parseQubit(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.T(q)
		case "rx":
			theta, q, err := parseAngleQubit(args)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.RX(theta, q)
		case "rz":
			theta, q, err := parseAngleQubit(args)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.RZ(circuit.Concrete(theta), q)
		case "phase":
			theta, err := parseAngle(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.GlobalPhase(theta)
		case "cx":
			c, t, err := parseTwoQubits(args)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.CX(c, t)
		case "cz":
			c, t, err := parseTwoQubits(args)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.CZ(c, t)
		case "swap":
			a, t, err := parseTwoQubits(args)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.Swap(a, t)
		case "reset":
			q, err := parseQubit(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.Reset(q)
		case "measure":
			q, c, err := parseTwoQubits(args)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			b.Measure(q, c)
		default:
			return nil, fmt.Errorf("%s:%d: unknown instruction %q", path, lineNo, op)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%s: empty circuit file", path)
	}

	return b.Build(), nil
}

func parseQubit(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint(n), err
}

func parseTwoQubits(args []string) (uint, uint, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("expected two qubit indices")
	}
	a, err := parseQubit(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseQubit(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseAngle(s string) (float64, error) {
	if s == "pi" {
		return math.Pi, nil
	}
	if strings.HasPrefix(s, "pi/") {
		d, err := strconv.ParseFloat(strings.TrimPrefix(s, "pi/"), 64)
		if err != nil {
			return 0, err
		}
		return math.Pi / d, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseAngleQubit(args []string) (float64, uint, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("expected an angle and a qubit index")
	}
	theta, err := parseAngle(args[0])
	if err != nil {
		return 0, 0, err
	}
	q, err := parseQubit(args[1])
	if err != nil {
		return 0, 0, err
	}
	return theta, q, nil
}
