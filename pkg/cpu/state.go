// Package cpu implements bit-exact Z80 register-and-flag semantics for the
// restricted, register-only opcode space used by the equivalence search.
// There is no program counter, no memory and no timing: every operation is a
// finite computation over the ten bytes below.
package cpu

import "github.com/oisee/z80-equiv/pkg/isa"

// State is the full register file. Value type: copied per seed vector,
// mutated in place through a sequence, then discarded.
type State struct {
	A, F, B, C, D, E, H, L uint8
	SP                     uint16
}

// Equal reports exact equality, flags included.
func (s State) Equal(o State) bool {
	return s == o
}

// reg returns the storage for a byte register.
func (s *State) reg(r isa.Register) *uint8 {
	switch r {
	case isa.RegA:
		return &s.A
	case isa.RegF:
		return &s.F
	case isa.RegB:
		return &s.B
	case isa.RegC:
		return &s.C
	case isa.RegD:
		return &s.D
	case isa.RegE:
		return &s.E
	case isa.RegH:
		return &s.H
	}
	return &s.L
}

// Pair returns the value of a 16-bit register pair.
func (s *State) Pair(p isa.Pair) uint16 {
	switch p {
	case isa.PairBC:
		return uint16(s.B)<<8 | uint16(s.C)
	case isa.PairDE:
		return uint16(s.D)<<8 | uint16(s.E)
	case isa.PairHL:
		return uint16(s.H)<<8 | uint16(s.L)
	}
	return s.SP
}

// SetPair stores a value into a 16-bit register pair.
func (s *State) SetPair(p isa.Pair, v uint16) {
	switch p {
	case isa.PairBC:
		s.B, s.C = uint8(v>>8), uint8(v)
	case isa.PairDE:
		s.D, s.E = uint8(v>>8), uint8(v)
	case isa.PairHL:
		s.H, s.L = uint8(v>>8), uint8(v)
	default:
		s.SP = v
	}
}

func (s *State) hl() uint16 {
	return uint16(s.H)<<8 | uint16(s.L)
}

func (s *State) setHL(v uint16) {
	s.H, s.L = uint8(v>>8), uint8(v)
}
