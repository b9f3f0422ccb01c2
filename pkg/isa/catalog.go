package isa

// Info holds static metadata for an opcode.
type Info struct {
	Mnemonic string  // Assembly mnemonic (e.g., "ADD A, B")
	Bytes    []uint8 // Raw Z80 encoding (without immediate), e.g., {0x80} or {0xCB, 0x07}
}

// Catalog maps each Opcode to its Info. Built once at package init from the
// range layout and the decode tables, so the mnemonics can never drift from
// what the dispatcher actually executes.
var Catalog [OpCount]Info

// rawEnc is the Z80 3-bit register field for each Register. F has none.
var rawEnc = [8]uint8{7, 0xFF, 0, 1, 2, 3, 4, 5}

func init() {
	// LD r, r'
	for op := LdRRStart; op < LdImmStart; op++ {
		dst, src := LdDst[op/7], LdFullSrc[op]
		Catalog[op] = Info{
			Mnemonic: "LD " + dst.String() + ", " + src.String(),
			Bytes:    []uint8{0x40 | rawEnc[dst]<<3 | rawEnc[src]},
		}
	}

	// LD r, n
	for op := LdImmStart; op < ALUStart; op++ {
		r := ImmReg[op-LdImmStart]
		Catalog[op] = Info{
			Mnemonic: "LD " + r.String() + ", n",
			Bytes:    []uint8{0x06 | rawEnc[r]<<3},
		}
	}

	// ALU A, src
	aluName := [8]string{"ADD A, ", "ADC A, ", "SUB ", "SBC A, ", "AND ", "XOR ", "OR ", "CP "}
	for op := ALUStart; op < IncStart; op++ {
		i := op - ALUStart
		kind, slot := i/8, i%8
		if slot < 7 {
			r := ALUSrc[slot]
			Catalog[op] = Info{
				Mnemonic: aluName[kind] + r.String(),
				Bytes:    []uint8{0x80 + uint8(kind)*8 + rawEnc[r]},
			}
		} else {
			Catalog[op] = Info{
				Mnemonic: aluName[kind] + "n",
				Bytes:    []uint8{0xC6 + uint8(kind)*8},
			}
		}
	}

	// INC r / DEC r
	for op := IncStart; op < DecStart; op++ {
		r := IncDecReg[op-IncStart]
		Catalog[op] = Info{Mnemonic: "INC " + r.String(), Bytes: []uint8{0x04 | rawEnc[r]<<3}}
	}
	for op := DecStart; op < RLCA; op++ {
		r := IncDecReg[op-DecStart]
		Catalog[op] = Info{Mnemonic: "DEC " + r.String(), Bytes: []uint8{0x05 | rawEnc[r]<<3}}
	}

	// Single-byte specials
	Catalog[RLCA] = Info{"RLCA", []uint8{0x07}}
	Catalog[RRCA] = Info{"RRCA", []uint8{0x0F}}
	Catalog[RLA] = Info{"RLA", []uint8{0x17}}
	Catalog[RRA] = Info{"RRA", []uint8{0x1F}}
	Catalog[DAA] = Info{"DAA", []uint8{0x27}}
	Catalog[CPL] = Info{"CPL", []uint8{0x2F}}
	Catalog[SCF] = Info{"SCF", []uint8{0x37}}
	Catalog[CCF] = Info{"CCF", []uint8{0x3F}}
	Catalog[NEG] = Info{"NEG", []uint8{0xED, 0x44}}
	Catalog[NOP] = Info{"NOP", []uint8{0x00}}

	// CB rotate/shift. Note SRL encodes at CB 38, not 30; 30 is SLL.
	cbName := [7]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SRL"}
	cbBase := [7]uint8{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x38}
	for op := CBStart; op < SLLA; op++ {
		i := op - CBStart
		r := CBReg[i%7]
		Catalog[op] = Info{
			Mnemonic: cbName[i/7] + " " + r.String(),
			Bytes:    []uint8{0xCB, cbBase[i/7] | rawEnc[r]},
		}
	}
	Catalog[SLLA] = Info{"SLL A", []uint8{0xCB, 0x37}}
	for op := SLLBStart; op < BitStart; op++ {
		r := CBReg[op-SLLBStart+1]
		Catalog[op] = Info{Mnemonic: "SLL " + r.String(), Bytes: []uint8{0xCB, 0x30 | rawEnc[r]}}
	}

	// BIT / RES / SET
	bitBase := [3]uint8{0x40, 0x80, 0xC0}
	bitName := [3]string{"BIT", "RES", "SET"}
	bitStart := [3]Opcode{BitStart, ResStart, SetStart}
	for k := 0; k < 3; k++ {
		for i := Opcode(0); i < 56; i++ {
			r, n := CBReg[i%7], uint8(i/7)
			Catalog[bitStart[k]+i] = Info{
				Mnemonic: bitName[k] + " " + string('0'+n) + ", " + r.String(),
				Bytes:    []uint8{0xCB, bitBase[k] | n<<3 | rawEnc[r]},
			}
		}
	}

	// 16-bit pair ops
	for p := PairBC; p <= PairSP; p++ {
		hi := uint8(p) << 4
		Catalog[IncPair(p)] = Info{"INC " + p.String(), []uint8{0x03 | hi}}
		Catalog[DecPair(p)] = Info{"DEC " + p.String(), []uint8{0x0B | hi}}
		Catalog[AddHL(p)] = Info{"ADD HL, " + p.String(), []uint8{0x09 | hi}}
		Catalog[LdPairImm(p)] = Info{"LD " + p.String() + ", nn", []uint8{0x01 | hi}}
		Catalog[AdcHL(p)] = Info{"ADC HL, " + p.String(), []uint8{0xED, 0x4A | hi}}
		Catalog[SbcHL(p)] = Info{"SBC HL, " + p.String(), []uint8{0xED, 0x42 | hi}}
	}
	Catalog[EXDEHL] = Info{"EX DE, HL", []uint8{0xEB}}
	Catalog[LdSPHL] = Info{"LD SP, HL", []uint8{0xF9}}
}

// ByteSize returns the total encoded size of an instruction (opcode bytes
// plus immediate).
func ByteSize(op Opcode) int {
	n := len(Catalog[op].Bytes)
	if HasImm16(op) {
		n += 2
	} else if HasImm8(op) {
		n++
	}
	return n
}

// SeqByteSize returns the total encoded size of a sequence.
func SeqByteSize(seq []Instruction) int {
	n := 0
	for i := range seq {
		n += ByteSize(seq[i].Op)
	}
	return n
}

// Disassemble returns assembly text for an instruction, substituting the
// immediate for the n/nn placeholder.
func Disassemble(instr Instruction) string {
	info := &Catalog[instr.Op]
	if HasImm16(instr.Op) {
		return disasmImm16(info.Mnemonic, instr.Imm)
	}
	if HasImm8(instr.Op) {
		return disasmImm8(info.Mnemonic, uint8(instr.Imm))
	}
	return info.Mnemonic
}

// DisassembleSeq joins the disassembly of a sequence with " : ".
func DisassembleSeq(seq []Instruction) string {
	s := ""
	for i := range seq {
		if i > 0 {
			s += " : "
		}
		s += Disassemble(seq[i])
	}
	return s
}

func disasmImm8(mnemonic string, imm uint8) string {
	buf := make([]byte, 0, len(mnemonic)+4)
	for i := 0; i < len(mnemonic); i++ {
		if mnemonic[i] == 'n' && (i == len(mnemonic)-1 || mnemonic[i+1] == ' ' || mnemonic[i+1] == ',') {
			buf = appendHex8(buf, imm)
		} else {
			buf = append(buf, mnemonic[i])
		}
	}
	return string(buf)
}

func disasmImm16(mnemonic string, imm uint16) string {
	buf := make([]byte, 0, len(mnemonic)+6)
	for i := 0; i < len(mnemonic); i++ {
		if i+1 < len(mnemonic) && mnemonic[i] == 'n' && mnemonic[i+1] == 'n' {
			buf = appendHex16(buf, imm)
			i++ // skip second 'n'
		} else {
			buf = append(buf, mnemonic[i])
		}
	}
	return string(buf)
}

func appendHex8(buf []byte, v uint8) []byte {
	const hex = "0123456789ABCDEF"
	if v >= 0xA0 {
		buf = append(buf, '0')
	}
	buf = append(buf, hex[v>>4], hex[v&0x0F], 'h')
	return buf
}

func appendHex16(buf []byte, v uint16) []byte {
	const hex = "0123456789ABCDEF"
	if v>>12 >= 0xA {
		buf = append(buf, '0')
	}
	buf = append(buf, hex[v>>12], hex[(v>>8)&0x0F], hex[(v>>4)&0x0F], hex[v&0x0F], 'h')
	return buf
}
