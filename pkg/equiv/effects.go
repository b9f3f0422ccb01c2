package equiv

import "github.com/oisee/z80-equiv/pkg/isa"

// RegMask is a bitmask over the register file. Bit i corresponds to
// isa.Register i; SP gets the bit after L.
type RegMask uint16

const (
	MaskA RegMask = 1 << iota
	MaskF
	MaskB
	MaskC
	MaskD
	MaskE
	MaskH
	MaskL
	MaskSP
)

// RegBit returns the mask bit for a byte register.
func RegBit(r isa.Register) RegMask {
	return 1 << r
}

// PairMask returns the mask bits covered by a register pair.
func PairMask(p isa.Pair) RegMask {
	switch p {
	case isa.PairBC:
		return MaskB | MaskC
	case isa.PairDE:
		return MaskD | MaskE
	case isa.PairHL:
		return MaskH | MaskL
	}
	return MaskSP
}

// Reads returns the registers whose incoming values can influence the
// outcome of op. F is included whenever any incoming flag bit flows into
// the result or survives into the outgoing F, so carry-preserving and
// flag-preserving operations count as readers of F.
//
// The masks fall out of the opcode ranges and decode tables rather than a
// per-opcode enumeration, so new opcodes cannot be forgotten here without
// first being forgotten in the dispatcher.
func Reads(op isa.Opcode) RegMask {
	switch {
	case op < isa.LdImmStart:
		return RegBit(isa.LdFullSrc[op])

	case op < isa.ALUStart:
		return 0

	case op < isa.IncStart:
		i := op - isa.ALUStart
		m := MaskA
		if i%8 != 7 {
			m |= RegBit(isa.ALUSrc[i%8])
		}
		kind := isa.ALUOp(i / 8)
		if kind == isa.ALUAdc || kind == isa.ALUSbc {
			m |= MaskF
		}
		return m

	case op < isa.DecStart:
		return RegBit(isa.IncDecReg[op-isa.IncStart]) | MaskF

	case op < isa.RLCA:
		return RegBit(isa.IncDecReg[op-isa.DecStart]) | MaskF

	case op < isa.CBStart:
		switch op {
		case isa.NEG:
			return MaskA
		case isa.NOP:
			return 0
		}
		// RLCA/RRCA/RLA/RRA, DAA, CPL, SCF, CCF all combine A with
		// surviving flag bits.
		return MaskA | MaskF

	case op < isa.SLLA:
		i := op - isa.CBStart
		m := RegBit(isa.CBReg[i%7])
		kind := isa.CBOp(i / 7)
		if kind == isa.CBRl || kind == isa.CBRr {
			m |= MaskF
		}
		return m

	case op == isa.SLLA:
		return MaskA

	case op < isa.BitStart:
		return RegBit(isa.CBReg[op-isa.SLLBStart+1])

	case op < isa.ResStart:
		return RegBit(isa.CBReg[(op-isa.BitStart)%7]) | MaskF

	case op < isa.SetStart:
		return RegBit(isa.CBReg[(op-isa.ResStart)%7])

	case op < isa.PairIncStart:
		return RegBit(isa.CBReg[(op-isa.SetStart)%7])

	case op < isa.AddHLStart:
		return PairMask(isa.Pair((op - isa.PairIncStart) % 4))

	case op < isa.EXDEHL:
		return MaskH | MaskL | MaskF | PairMask(isa.Pair(op-isa.AddHLStart))

	case op == isa.EXDEHL:
		return MaskD | MaskE | MaskH | MaskL

	case op == isa.LdSPHL:
		return MaskH | MaskL

	case op < isa.AdcHLStart:
		return 0

	case op < isa.SbcHLStart:
		return MaskH | MaskL | MaskF | PairMask(isa.Pair(op-isa.AdcHLStart))

	default:
		return MaskH | MaskL | MaskF | PairMask(isa.Pair(op-isa.SbcHLStart))
	}
}

// Writes returns the registers op can modify.
func Writes(op isa.Opcode) RegMask {
	switch {
	case op < isa.LdImmStart:
		return RegBit(isa.LdDst[op/7])

	case op < isa.ALUStart:
		return RegBit(isa.ImmReg[op-isa.LdImmStart])

	case op < isa.IncStart:
		if isa.ALUOp((op-isa.ALUStart)/8) == isa.ALUCp {
			return MaskF
		}
		return MaskA | MaskF

	case op < isa.DecStart:
		return RegBit(isa.IncDecReg[op-isa.IncStart]) | MaskF

	case op < isa.RLCA:
		return RegBit(isa.IncDecReg[op-isa.DecStart]) | MaskF

	case op < isa.CBStart:
		switch op {
		case isa.SCF, isa.CCF:
			return MaskF
		case isa.NOP:
			return 0
		}
		return MaskA | MaskF

	case op < isa.SLLA:
		return RegBit(isa.CBReg[(op-isa.CBStart)%7]) | MaskF

	case op == isa.SLLA:
		return MaskA | MaskF

	case op < isa.BitStart:
		return RegBit(isa.CBReg[op-isa.SLLBStart+1]) | MaskF

	case op < isa.ResStart:
		return MaskF

	case op < isa.SetStart:
		return RegBit(isa.CBReg[(op-isa.ResStart)%7])

	case op < isa.PairIncStart:
		return RegBit(isa.CBReg[(op-isa.SetStart)%7])

	case op < isa.AddHLStart:
		return PairMask(isa.Pair((op - isa.PairIncStart) % 4))

	case op < isa.EXDEHL:
		return MaskH | MaskL | MaskF

	case op == isa.EXDEHL:
		return MaskD | MaskE | MaskH | MaskL

	case op == isa.LdSPHL:
		return MaskSP

	case op < isa.AdcHLStart:
		return PairMask(isa.Pair(op - isa.LdPairImmStart))

	default:
		return MaskH | MaskL | MaskF
	}
}

// SeqReads returns the union of Reads over a sequence.
func SeqReads(seq []isa.Instruction) RegMask {
	var m RegMask
	for i := range seq {
		m |= Reads(seq[i].Op)
	}
	return m
}

// SeqWrites returns the union of Writes over a sequence.
func SeqWrites(seq []isa.Instruction) RegMask {
	var m RegMask
	for i := range seq {
		m |= Writes(seq[i].Op)
	}
	return m
}
