// Package isa defines the dense linear opcode encoding shared by every
// evaluation context. An Opcode is not a raw Z80 byte: it is an index into a
// fixed, ordered partition of the instruction space, so that a sequential
// verifier and a data-parallel kernel built from separate sources decode the
// exact same instruction for the same integer.
package isa

// Opcode is a dense index into the instruction space, in [0, OpCount).
type Opcode uint16

// Instruction pairs an opcode with its optional immediate. Imm is uint16 to
// carry LD rr,nn; 8-bit consumers use the low byte, everything else ignores it.
type Instruction struct {
	Op  Opcode
	Imm uint16
}

// Range boundaries of the opcode partition. The ranges are half-open,
// contiguous and ascending; family tests must be applied in this order since
// each test assumes the earlier ranges have already been excluded.
const (
	LdRRStart      Opcode = 0   // LD r, r': 7x7 matrix, one row per destination
	LdImmStart     Opcode = 49  // LD r, n
	ALUStart       Opcode = 56  // 8 ALU ops x 8 sources (8th source = immediate)
	IncStart       Opcode = 120 // INC r
	DecStart       Opcode = 127 // DEC r
	RLCA           Opcode = 134
	RRCA           Opcode = 135
	RLA            Opcode = 136
	RRA            Opcode = 137
	DAA            Opcode = 138
	CPL            Opcode = 139
	SCF            Opcode = 140
	CCF            Opcode = 141
	NEG            Opcode = 142
	NOP            Opcode = 143
	CBStart        Opcode = 144 // 7 rotate/shift ops x 7 registers
	SLLA           Opcode = 193 // undocumented SLL A
	SLLBStart      Opcode = 194 // SLL B..L (register table indexed offset-by-one)
	BitStart       Opcode = 200 // BIT n, r
	ResStart       Opcode = 256 // RES n, r
	SetStart       Opcode = 312 // SET n, r
	PairIncStart   Opcode = 368 // INC/DEC rr
	AddHLStart     Opcode = 376 // ADD HL, rr
	EXDEHL         Opcode = 380
	LdSPHL         Opcode = 381
	LdPairImmStart Opcode = 382 // LD rr, nn
	AdcHLStart     Opcode = 386 // ADC HL, rr
	SbcHLStart     Opcode = 390 // SBC HL, rr
	OpCount        Opcode = 394
)

// Register identifies one of the eight byte registers. The numeric values are
// part of the cross-component contract (they index register images).
type Register uint8

const (
	RegA Register = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

func (r Register) String() string {
	return [...]string{"A", "F", "B", "C", "D", "E", "H", "L"}[r]
}

// Pair identifies a 16-bit register pair.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
)

func (p Pair) String() string {
	return [...]string{"BC", "DE", "HL", "SP"}[p]
}

// ALUOp is the operation selector inside the ALU range, in encoding order.
type ALUOp uint8

const (
	ALUAdd ALUOp = iota
	ALUAdc
	ALUSub
	ALUSbc
	ALUAnd
	ALUXor
	ALUOr
	ALUCp
)

// CBOp is the rotate/shift selector inside the CB range, in encoding order.
// SLL is not part of this order; it has its own ranges above.
type CBOp uint8

const (
	CBRlc CBOp = iota
	CBRrc
	CBRl
	CBRr
	CBSla
	CBSra
	CBSrl
)

// Valid reports whether op falls inside the encoded opcode space.
func Valid(op Opcode) bool {
	return op < OpCount
}

// HasImm8 reports whether op consumes the low byte of the immediate.
func HasImm8(op Opcode) bool {
	if op >= LdImmStart && op < ALUStart {
		return true
	}
	return op >= ALUStart && op < IncStart && (op-ALUStart)%8 == 7
}

// HasImm16 reports whether op consumes the full 16-bit immediate.
func HasImm16(op Opcode) bool {
	return op >= LdPairImmStart && op < AdcHLStart
}

// HasImmediate reports whether op consumes an immediate at all.
func HasImmediate(op Opcode) bool {
	return HasImm8(op) || HasImm16(op)
}

// Constructors below are the inverse of the decode tables: they produce the
// linear opcode whose decoded operands are the given ones. They panic on
// operands the encoding does not admit (e.g. F as an operand register).

// LdRR returns the LD dst, src opcode.
func LdRR(dst, src Register) Opcode {
	row := Opcode(ldDstIndex(dst)) * 7
	for i := Opcode(0); i < 7; i++ {
		if LdFullSrc[row+i] == src {
			return LdRRStart + row + i
		}
	}
	panic("isa: no LD encoding for " + dst.String() + ", " + src.String())
}

// LdImm returns the LD r, n opcode.
func LdImm(r Register) Opcode {
	return LdImmStart + Opcode(tableIndex(ImmReg[:], r))
}

// ALU returns the register-sourced ALU opcode (ADD A,r .. CP r).
func ALU(op ALUOp, src Register) Opcode {
	return ALUStart + Opcode(op)*8 + Opcode(tableIndex(ALUSrc[:], src))
}

// ALUImm returns the immediate-sourced ALU opcode (ADD A,n .. CP n).
func ALUImm(op ALUOp) Opcode {
	return ALUStart + Opcode(op)*8 + 7
}

// Inc returns the 8-bit INC r opcode.
func Inc(r Register) Opcode {
	return IncStart + Opcode(tableIndex(IncDecReg[:], r))
}

// Dec returns the 8-bit DEC r opcode.
func Dec(r Register) Opcode {
	return DecStart + Opcode(tableIndex(IncDecReg[:], r))
}

// CB returns the CB-prefixed rotate/shift opcode for op on r.
func CB(op CBOp, r Register) Opcode {
	return CBStart + Opcode(op)*7 + Opcode(tableIndex(CBReg[:], r))
}

// SLL returns the undocumented SLL r opcode. SLL A sits alone at 193; the
// B..L block starts one table slot later, hence the i-1 below.
func SLL(r Register) Opcode {
	if r == RegA {
		return SLLA
	}
	return SLLBStart + Opcode(tableIndex(CBReg[:], r)) - 1
}

// Bit returns the BIT n, r opcode.
func Bit(n uint8, r Register) Opcode {
	return BitStart + Opcode(n)*7 + Opcode(tableIndex(CBReg[:], r))
}

// Res returns the RES n, r opcode.
func Res(n uint8, r Register) Opcode {
	return ResStart + Opcode(n)*7 + Opcode(tableIndex(CBReg[:], r))
}

// Set returns the SET n, r opcode.
func Set(n uint8, r Register) Opcode {
	return SetStart + Opcode(n)*7 + Opcode(tableIndex(CBReg[:], r))
}

// IncPair returns the 16-bit INC rr opcode.
func IncPair(p Pair) Opcode {
	return PairIncStart + Opcode(p)
}

// DecPair returns the 16-bit DEC rr opcode.
func DecPair(p Pair) Opcode {
	return PairIncStart + 4 + Opcode(p)
}

// AddHL returns the ADD HL, rr opcode.
func AddHL(p Pair) Opcode {
	return AddHLStart + Opcode(p)
}

// LdPairImm returns the LD rr, nn opcode.
func LdPairImm(p Pair) Opcode {
	return LdPairImmStart + Opcode(p)
}

// AdcHL returns the ADC HL, rr opcode.
func AdcHL(p Pair) Opcode {
	return AdcHLStart + Opcode(p)
}

// SbcHL returns the SBC HL, rr opcode.
func SbcHL(p Pair) Opcode {
	return SbcHLStart + Opcode(p)
}

func ldDstIndex(r Register) int {
	return tableIndex(LdDst[:], r)
}

func tableIndex(table []Register, r Register) int {
	for i, x := range table {
		if x == r {
			return i
		}
	}
	panic("isa: register " + r.String() + " is not an operand in this table")
}
