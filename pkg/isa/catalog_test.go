package isa

import "testing"

// TestCatalogComplete checks every opcode got a mnemonic and raw encoding.
func TestCatalogComplete(t *testing.T) {
	seen := map[string]Opcode{}
	for op := Opcode(0); op < OpCount; op++ {
		info := &Catalog[op]
		if info.Mnemonic == "" {
			t.Errorf("opcode %d has no mnemonic", op)
			continue
		}
		if len(info.Bytes) == 0 {
			t.Errorf("opcode %d (%s) has no encoding", op, info.Mnemonic)
		}
		if prev, dup := seen[info.Mnemonic]; dup {
			t.Errorf("mnemonic %q appears at both %d and %d", info.Mnemonic, prev, op)
		}
		seen[info.Mnemonic] = op
	}
}

// TestRawEncodings pins the Z80 byte encodings for representatives of every
// family.
func TestRawEncodings(t *testing.T) {
	tests := []struct {
		op   Opcode
		want []uint8
	}{
		{LdRR(RegA, RegB), []uint8{0x78}},
		{LdRR(RegB, RegA), []uint8{0x47}},
		{LdRR(RegA, RegA), []uint8{0x7F}},
		{LdImm(RegA), []uint8{0x3E}},
		{LdImm(RegL), []uint8{0x2E}},
		{ALU(ALUAdd, RegB), []uint8{0x80}},
		{ALU(ALUSbc, RegA), []uint8{0x9F}},
		{ALUImm(ALUCp), []uint8{0xFE}},
		{Inc(RegA), []uint8{0x3C}},
		{Dec(RegA), []uint8{0x3D}},
		{RLCA, []uint8{0x07}},
		{DAA, []uint8{0x27}},
		{NEG, []uint8{0xED, 0x44}},
		{NOP, []uint8{0x00}},
		{CB(CBRlc, RegB), []uint8{0xCB, 0x00}},
		{CB(CBSrl, RegA), []uint8{0xCB, 0x3F}},
		{SLL(RegA), []uint8{0xCB, 0x37}},
		{SLL(RegB), []uint8{0xCB, 0x30}},
		{Bit(7, RegA), []uint8{0xCB, 0x7F}},
		{Res(0, RegB), []uint8{0xCB, 0x80}},
		{Set(0, RegB), []uint8{0xCB, 0xC0}},
		{IncPair(PairBC), []uint8{0x03}},
		{DecPair(PairSP), []uint8{0x3B}},
		{AddHL(PairDE), []uint8{0x19}},
		{LdPairImm(PairHL), []uint8{0x21}},
		{AdcHL(PairSP), []uint8{0xED, 0x7A}},
		{SbcHL(PairBC), []uint8{0xED, 0x42}},
		{EXDEHL, []uint8{0xEB}},
		{LdSPHL, []uint8{0xF9}},
	}

	for _, tc := range tests {
		got := Catalog[tc.op].Bytes
		if len(got) != len(tc.want) {
			t.Errorf("%s: bytes % X, want % X", Catalog[tc.op].Mnemonic, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: bytes % X, want % X", Catalog[tc.op].Mnemonic, got, tc.want)
				break
			}
		}
	}
}

func TestByteSize(t *testing.T) {
	tests := []struct {
		op   Opcode
		want int
	}{
		{NOP, 1},
		{LdRR(RegA, RegB), 1},
		{LdImm(RegA), 2},
		{ALUImm(ALUAdd), 2},
		{CB(CBRlc, RegB), 2},
		{Bit(3, RegC), 2},
		{NEG, 2},
		{LdPairImm(PairBC), 3},
		{AdcHL(PairDE), 2},
	}
	for _, tc := range tests {
		if got := ByteSize(tc.op); got != tc.want {
			t.Errorf("ByteSize(%s) = %d, want %d", Catalog[tc.op].Mnemonic, got, tc.want)
		}
	}

	seq := []Instruction{
		{Op: LdImm(RegA), Imm: 5},
		{Op: LdPairImm(PairHL), Imm: 0x1234},
		{Op: NOP},
	}
	if got := SeqByteSize(seq); got != 6 {
		t.Errorf("SeqByteSize = %d, want 6", got)
	}
}

func TestDisassemble(t *testing.T) {
	tests := []struct {
		instr Instruction
		want  string
	}{
		{Instruction{Op: NOP}, "NOP"},
		{Instruction{Op: LdRR(RegA, RegB)}, "LD A, B"},
		{Instruction{Op: LdImm(RegA), Imm: 0x42}, "LD A, 42h"},
		{Instruction{Op: LdImm(RegB), Imm: 0xA5}, "LD B, 0A5h"},
		{Instruction{Op: ALUImm(ALUAnd), Imm: 0x0F}, "AND 0Fh"},
		{Instruction{Op: LdPairImm(PairBC), Imm: 0x1234}, "LD BC, 1234h"},
		{Instruction{Op: LdPairImm(PairSP), Imm: 0xBEEF}, "LD SP, 0BEEFh"},
		{Instruction{Op: Bit(7, RegH)}, "BIT 7, H"},
		{Instruction{Op: SbcHL(PairDE)}, "SBC HL, DE"},
	}
	for _, tc := range tests {
		if got := Disassemble(tc.instr); got != tc.want {
			t.Errorf("Disassemble = %q, want %q", got, tc.want)
		}
	}

	seq := []Instruction{
		{Op: ALU(ALUXor, RegA)},
		{Op: LdImm(RegB), Imm: 5},
	}
	if got := DisassembleSeq(seq); got != "XOR A : LD B, 05h" {
		t.Errorf("DisassembleSeq = %q", got)
	}
}
