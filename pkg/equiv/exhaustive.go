package equiv

import (
	"github.com/oisee/z80-equiv/pkg/cpu"
	"github.com/oisee/z80-equiv/pkg/isa"
)

// repValues are the representative byte values used when the full 256-value
// sweep of every read register would blow up: boundary values, single bits,
// nibble masks and alternating patterns.
var repValues = [32]uint8{
	0x00, 0x01, 0x02, 0x0F, 0x10, 0x1F, 0x20, 0x3F,
	0x40, 0x55, 0x7E, 0x7F, 0x80, 0x81, 0xAA, 0xBF,
	0xC0, 0xD5, 0xE0, 0xEF, 0xF0, 0xF7, 0xFE, 0xFF,
	0x03, 0x07, 0x11, 0x33, 0x77, 0xBB, 0xDD, 0xEE,
}

// repSP are the representative 16-bit values for an SP sweep.
var repSP = [16]uint16{
	0x0000, 0x0001, 0x00FF, 0x0100, 0x7FFE, 0x7FFF, 0x8000, 0x8001,
	0xFFFE, 0xFFFF, 0x1234, 0x5678, 0xABCD, 0xDEAD, 0xBEEF, 0xCAFE,
}

// ExhaustiveCheck verifies equivalence across the input space, ignoring dead
// flag bits. A and the carry flag are always swept over all 512 combinations.
// Up to two further read registers are swept over all 256 values each; beyond
// that the sweep falls back to the 32 representative values per register, and
// SP (when read) always uses its 16 representative words.
//
// A false result is definitive. A true result is exhaustive only up to the
// representative-value reduction.
func ExhaustiveCheck(target, candidate []isa.Instruction, dead FlagMask) bool {
	reads := SeqReads(target) | SeqReads(candidate)

	extra := make([]isa.Register, 0, 6)
	for _, r := range [6]isa.Register{isa.RegB, isa.RegC, isa.RegD, isa.RegE, isa.RegH, isa.RegL} {
		if reads&RegBit(r) != 0 {
			extra = append(extra, r)
		}
	}
	sweepSP := reads&MaskSP != 0

	full := len(extra) <= 2 && !sweepSP
	return sweepAF(target, candidate, dead, extra, sweepSP, full)
}

// sweepAF drives the outer A x carry loop and recurses over the extra
// registers inside it.
func sweepAF(target, candidate []isa.Instruction, dead FlagMask, extra []isa.Register, sweepSP, full bool) bool {
	compare := func(s cpu.State) bool {
		return StatesEqual(Run(s, target), Run(s, candidate), dead)
	}

	var sweep func(s cpu.State, i int) bool
	sweep = func(s cpu.State, i int) bool {
		if i == len(extra) {
			if sweepSP {
				for _, sp := range repSP {
					s2 := s
					s2.SP = sp
					if !compare(s2) {
						return false
					}
				}
				return true
			}
			return compare(s)
		}
		if full {
			for v := 0; v < 256; v++ {
				s2 := s
				setReg(&s2, extra[i], uint8(v))
				if !sweep(s2, i+1) {
					return false
				}
			}
			return true
		}
		for _, v := range repValues {
			s2 := s
			setReg(&s2, extra[i], v)
			if !sweep(s2, i+1) {
				return false
			}
		}
		return true
	}

	for a := 0; a < 256; a++ {
		for carry := uint8(0); carry <= 1; carry++ {
			if !sweep(cpu.State{A: uint8(a), F: carry}, 0) {
				return false
			}
		}
	}
	return true
}

func setReg(s *cpu.State, r isa.Register, v uint8) {
	switch r {
	case isa.RegB:
		s.B = v
	case isa.RegC:
		s.C = v
	case isa.RegD:
		s.D = v
	case isa.RegE:
		s.E = v
	case isa.RegH:
		s.H = v
	case isa.RegL:
		s.L = v
	}
}
