package cpu

import (
	"fmt"

	"github.com/oisee/z80-equiv/pkg/isa"
)

// Exec executes a single linear opcode against s. imm supplies the
// immediate for opcodes that take one and is ignored otherwise.
//
// Dispatch walks the opcode partition in ascending range order, so each
// family is identified by a single upper-bound comparison. Exec panics on an
// opcode outside [0, OpCount): an out-of-range opcode means the caller's
// enumeration is broken, and silently skipping it would let a miscounted
// candidate masquerade as a NOP-equivalent.
func Exec(s *State, op isa.Opcode, imm uint16) {
	switch {
	case op < isa.LdImmStart:
		// LD r, r'. Diagonal self-loads are reserved encodings that
		// land here and degenerate to no-ops.
		*s.reg(isa.LdDst[op/7]) = *s.reg(isa.LdFullSrc[op])

	case op < isa.ALUStart:
		*s.reg(isa.ImmReg[op-isa.LdImmStart]) = uint8(imm)

	case op < isa.IncStart:
		i := op - isa.ALUStart
		var v uint8
		if i%8 == 7 {
			v = uint8(imm)
		} else {
			v = *s.reg(isa.ALUSrc[i%8])
		}
		switch isa.ALUOp(i / 8) {
		case isa.ALUAdd:
			s.add(v)
		case isa.ALUAdc:
			s.adc(v)
		case isa.ALUSub:
			s.sub(v)
		case isa.ALUSbc:
			s.sbc(v)
		case isa.ALUAnd:
			s.and(v)
		case isa.ALUXor:
			s.xor(v)
		case isa.ALUOr:
			s.or(v)
		case isa.ALUCp:
			s.cp(v)
		}

	case op < isa.DecStart:
		s.inc(s.reg(isa.IncDecReg[op-isa.IncStart]))

	case op < isa.RLCA:
		s.dec(s.reg(isa.IncDecReg[op-isa.DecStart]))

	case op < isa.CBStart:
		switch op {
		case isa.RLCA:
			s.rlca()
		case isa.RRCA:
			s.rrca()
		case isa.RLA:
			s.rla()
		case isa.RRA:
			s.rra()
		case isa.DAA:
			s.daa()
		case isa.CPL:
			s.cpl()
		case isa.SCF:
			s.scf()
		case isa.CCF:
			s.ccf()
		case isa.NEG:
			s.neg()
		case isa.NOP:
		}

	case op < isa.SLLA:
		i := op - isa.CBStart
		r := s.reg(isa.CBReg[i%7])
		switch isa.CBOp(i / 7) {
		case isa.CBRlc:
			*r = s.rlc(*r)
		case isa.CBRrc:
			*r = s.rrc(*r)
		case isa.CBRl:
			*r = s.rl(*r)
		case isa.CBRr:
			*r = s.rr(*r)
		case isa.CBSla:
			*r = s.sla(*r)
		case isa.CBSra:
			*r = s.sra(*r)
		case isa.CBSrl:
			*r = s.srl(*r)
		}

	case op == isa.SLLA:
		s.A = s.sll(s.A)

	case op < isa.BitStart:
		r := s.reg(isa.CBReg[op-isa.SLLBStart+1])
		*r = s.sll(*r)

	case op < isa.ResStart:
		i := op - isa.BitStart
		s.bit(uint8(i/7), *s.reg(isa.CBReg[i%7]))

	case op < isa.SetStart:
		i := op - isa.ResStart
		*s.reg(isa.CBReg[i%7]) &^= uint8(1) << (i / 7)

	case op < isa.PairIncStart:
		i := op - isa.SetStart
		*s.reg(isa.CBReg[i%7]) |= uint8(1) << (i / 7)

	case op < isa.AddHLStart:
		i := op - isa.PairIncStart
		p := isa.Pair(i % 4)
		if i >= 4 {
			s.SetPair(p, s.Pair(p)-1)
		} else {
			s.SetPair(p, s.Pair(p)+1)
		}

	case op < isa.EXDEHL:
		s.addHL(s.Pair(isa.Pair(op - isa.AddHLStart)))

	case op == isa.EXDEHL:
		s.D, s.E, s.H, s.L = s.H, s.L, s.D, s.E

	case op == isa.LdSPHL:
		s.SP = s.hl()

	case op < isa.AdcHLStart:
		s.SetPair(isa.Pair(op-isa.LdPairImmStart), imm)

	case op < isa.SbcHLStart:
		s.adcHL(s.Pair(isa.Pair(op - isa.AdcHLStart)))

	case op < isa.OpCount:
		s.sbcHL(s.Pair(isa.Pair(op - isa.SbcHLStart)))

	default:
		panic(fmt.Sprintf("cpu: opcode %d out of range [0, %d)", op, isa.OpCount))
	}
}

// Run executes a sequence in order against s.
func Run(s *State, seq []isa.Instruction) {
	for i := range seq {
		Exec(s, seq[i].Op, seq[i].Imm)
	}
}
