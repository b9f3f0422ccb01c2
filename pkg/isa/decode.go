package isa

// Operand decode tables. These are contract data: every evaluation context
// must map a linear opcode to the same operand registers, so the orderings
// are reproduced verbatim and must never be "cleaned up".

// LdFullSrc maps a load-matrix position to its source register. Row 0
// (destination A) is ordered B,C,D,E,H,L,A; the remaining rows are ordered
// A,B,C,D,E,H,L. The diagonal self-load entries are reserved by the encoding
// and execute as no-ops.
var LdFullSrc = [49]Register{
	RegB, RegC, RegD, RegE, RegH, RegL, RegA, // row A
	RegA, RegB, RegC, RegD, RegE, RegH, RegL, // row B
	RegA, RegB, RegC, RegD, RegE, RegH, RegL, // row C
	RegA, RegB, RegC, RegD, RegE, RegH, RegL, // row D
	RegA, RegB, RegC, RegD, RegE, RegH, RegL, // row E
	RegA, RegB, RegC, RegD, RegE, RegH, RegL, // row H
	RegA, RegB, RegC, RegD, RegE, RegH, RegL, // row L
}

// LdDst maps a load-matrix row to its destination register.
var LdDst = [7]Register{RegA, RegB, RegC, RegD, RegE, RegH, RegL}

// ALUSrc maps an ALU source slot to its register. Slot 7 is the immediate
// and has no table entry.
var ALUSrc = [7]Register{RegB, RegC, RegD, RegE, RegH, RegL, RegA}

// ImmReg maps an immediate-load slot to its destination register.
var ImmReg = [7]Register{RegA, RegB, RegC, RegD, RegE, RegH, RegL}

// CBReg maps a CB-prefixed operation slot to its register. Shared by the
// rotate/shift block and BIT/RES/SET.
var CBReg = [7]Register{RegA, RegB, RegC, RegD, RegE, RegH, RegL}

// IncDecReg maps an 8-bit INC/DEC slot to its register.
var IncDecReg = [7]Register{RegA, RegB, RegC, RegD, RegE, RegH, RegL}
