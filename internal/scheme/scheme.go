// Package scheme implements the application schemes of spec section 4.3:
// stateful strategies deciding how many operations a DD checker advances in
// each circuit per iteration of its main loop.
package scheme

import "math"

// Tag identifies which scheme strategy is in play.
type Tag uint8

const (
	Sequential Tag = iota
	OneToOne
	Proportional
	GateCost
	Lookahead
)

func (t Tag) String() string {
	switch t {
	case Sequential:
		return "sequential"
	case OneToOne:
		return "one_to_one"
	case Proportional:
		return "proportional"
	case GateCost:
		return "gate_cost"
	case Lookahead:
		return "lookahead"
	default:
		return "?"
	}
}

// CostFunc maps a gate kind string and control count to an integer cost; the
// GateCost scheme advances circuit 2 by this many ops for every op advanced
// in circuit 1 (spec section 4.3).
type CostFunc func(kind string, controls int) uint

// Scheme proposes how far to advance each circuit's task on the next
// iteration of a DD checker's main loop (spec section 4.3). A scheme may not
// know the total number of iterations in advance.
type Scheme struct {
	tag  Tag
	n1   uint
	n2   uint
	cost CostFunc
}

// New constructs a scheme over circuits with n1 and n2 total operations.
// cost is only consulted when tag is GateCost; pass nil to fall back to a
// uniform cost of 1 (spec section 4.3, "GateCost falls back to cost 1 when
// no entry matches").
func New(tag Tag, n1, n2 uint, cost CostFunc) *Scheme {
	if cost == nil {
		cost = func(string, int) uint { return 1 }
	}
	//
	return &Scheme{tag: tag, n1: n1, n2: n2, cost: cost}
}

// Tag returns this scheme's strategy tag.
func (s *Scheme) Tag() Tag { return s.tag }

// NextArgs carries the information Next needs about the upcoming operation
// in circuit 1, used only by GateCost.
type NextArgs struct {
	NextOpKind     string
	NextOpControls int
}

// Next proposes (a, b): advance circuit 1's task by a operations and circuit
// 2's by b, given how many operations remain in each.
func (s *Scheme) Next(remaining1, remaining2 uint, args NextArgs) (a, b uint) {
	switch s.tag {
	case Sequential:
		if remaining1 > 0 {
			return remaining1, 0
		}
		//
		return 0, remaining2

	case OneToOne:
		if remaining1 > 0 && remaining2 > 0 {
			return 1, 1
		}
		//
		if remaining1 > 0 {
			return remaining1, 0
		}
		//
		return 0, remaining2

	case Proportional:
		if remaining1 == 0 {
			return 0, remaining2
		}
		//
		if remaining2 == 0 {
			return remaining1, 0
		}
		//
		if s.n1 == 0 {
			return remaining1, remaining2
		}
		//
		ratio := uint(math.Ceil(float64(s.n2) / float64(s.n1)))
		if ratio < 1 {
			ratio = 1
		}
		//
		if ratio > remaining2 {
			ratio = remaining2
		}
		//
		return 1, ratio

	case GateCost:
		if remaining1 == 0 {
			return 0, remaining2
		}
		//
		c := s.cost(args.NextOpKind, args.NextOpControls)
		if c > remaining2 {
			c = remaining2
		}
		//
		return 1, c

	default:
		// Lookahead is handled directly by the alternating checker, which
		// needs to inspect intermediate DD sizes rather than just counts.
		return 0, 0
	}
}
