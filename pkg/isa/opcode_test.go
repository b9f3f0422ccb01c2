package isa

import "testing"

// TestPartitionLayout pins the range boundaries. These are contract values:
// shifting any of them silently re-maps every opcode after it.
func TestPartitionLayout(t *testing.T) {
	bounds := []Opcode{
		LdRRStart, LdImmStart, ALUStart, IncStart, DecStart,
		RLCA, CBStart, SLLA, SLLBStart, BitStart, ResStart, SetStart,
		PairIncStart, AddHLStart, EXDEHL, LdSPHL, LdPairImmStart,
		AdcHLStart, SbcHLStart, OpCount,
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			t.Fatalf("bounds not ascending at %d: %d <= %d", i, bounds[i], bounds[i-1])
		}
	}

	if OpCount != 394 {
		t.Errorf("OpCount = %d, want 394", OpCount)
	}
	if LdImmStart != 49 || ALUStart != 56 || IncStart != 120 || CBStart != 144 {
		t.Error("range boundaries moved")
	}
	if BitStart != 200 || ResStart != 256 || SetStart != 312 || PairIncStart != 368 {
		t.Error("CB-block boundaries moved")
	}
}

// TestConstructorsRoundTrip builds every opcode through its constructor and
// checks the decode tables recover the operands.
func TestConstructorsRoundTrip(t *testing.T) {
	regs := [7]Register{RegA, RegB, RegC, RegD, RegE, RegH, RegL}

	for _, dst := range regs {
		for _, src := range regs {
			op := LdRR(dst, src)
			if op >= LdImmStart {
				t.Fatalf("LdRR(%s, %s) = %d out of range", dst, src, op)
			}
			if LdDst[op/7] != dst || LdFullSrc[op] != src {
				t.Errorf("LdRR(%s, %s) decodes to %s, %s", dst, src, LdDst[op/7], LdFullSrc[op])
			}
		}
	}

	for _, r := range regs {
		if got := ImmReg[LdImm(r)-LdImmStart]; got != r {
			t.Errorf("LdImm(%s) decodes to %s", r, got)
		}
		if got := IncDecReg[Inc(r)-IncStart]; got != r {
			t.Errorf("Inc(%s) decodes to %s", r, got)
		}
		if got := IncDecReg[Dec(r)-DecStart]; got != r {
			t.Errorf("Dec(%s) decodes to %s", r, got)
		}
	}

	for kind := ALUAdd; kind <= ALUCp; kind++ {
		for _, r := range regs {
			op := ALU(kind, r)
			i := op - ALUStart
			if ALUOp(i/8) != kind || ALUSrc[i%8] != r {
				t.Errorf("ALU(%d, %s) mis-decodes", kind, r)
			}
		}
		op := ALUImm(kind)
		if (op-ALUStart)%8 != 7 || !HasImm8(op) {
			t.Errorf("ALUImm(%d) = %d is not an immediate slot", kind, op)
		}
	}

	for kind := CBRlc; kind <= CBSrl; kind++ {
		for _, r := range regs {
			op := CB(kind, r)
			i := op - CBStart
			if CBOp(i/7) != kind || CBReg[i%7] != r {
				t.Errorf("CB(%d, %s) mis-decodes", kind, r)
			}
		}
	}

	for n := uint8(0); n < 8; n++ {
		for _, r := range regs {
			if op := Bit(n, r); uint8((op-BitStart)/7) != n || CBReg[(op-BitStart)%7] != r {
				t.Errorf("Bit(%d, %s) mis-decodes", n, r)
			}
			if op := Res(n, r); uint8((op-ResStart)/7) != n || CBReg[(op-ResStart)%7] != r {
				t.Errorf("Res(%d, %s) mis-decodes", n, r)
			}
			if op := Set(n, r); uint8((op-SetStart)/7) != n || CBReg[(op-SetStart)%7] != r {
				t.Errorf("Set(%d, %s) mis-decodes", n, r)
			}
		}
	}

	for p := PairBC; p <= PairSP; p++ {
		i := IncPair(p) - PairIncStart
		if Pair(i%4) != p || i >= 4 {
			t.Errorf("IncPair(%s) mis-decodes", p)
		}
		i = DecPair(p) - PairIncStart
		if Pair(i%4) != p || i < 4 {
			t.Errorf("DecPair(%s) mis-decodes", p)
		}
		if Pair(AddHL(p)-AddHLStart) != p {
			t.Errorf("AddHL(%s) mis-decodes", p)
		}
		if Pair(LdPairImm(p)-LdPairImmStart) != p {
			t.Errorf("LdPairImm(%s) mis-decodes", p)
		}
		if Pair(AdcHL(p)-AdcHLStart) != p || Pair(SbcHL(p)-SbcHLStart) != p {
			t.Errorf("AdcHL/SbcHL(%s) mis-decode", p)
		}
	}
}

// TestSllOffset pins the undocumented SLL layout: SLL A sits alone, the B..L
// block follows with the shared register table shifted by one.
func TestSllOffset(t *testing.T) {
	if SLL(RegA) != SLLA {
		t.Errorf("SLL(A) = %d, want %d", SLL(RegA), SLLA)
	}
	want := SLLBStart
	for _, r := range [6]Register{RegB, RegC, RegD, RegE, RegH, RegL} {
		if SLL(r) != want {
			t.Errorf("SLL(%s) = %d, want %d", r, SLL(r), want)
		}
		if got := CBReg[SLL(r)-SLLBStart+1]; got != r {
			t.Errorf("SLL(%s) decodes to %s", r, got)
		}
		want++
	}
}

// TestImmediateClassification counts the immediate-consuming opcodes: seven
// LD r, n, eight immediate ALU forms and four LD rr, nn.
func TestImmediateClassification(t *testing.T) {
	imm8, imm16 := 0, 0
	for op := Opcode(0); op < OpCount; op++ {
		if HasImm8(op) && HasImm16(op) {
			t.Errorf("opcode %d is both imm8 and imm16", op)
		}
		if HasImm8(op) {
			imm8++
		}
		if HasImm16(op) {
			imm16++
		}
		if HasImmediate(op) != (HasImm8(op) || HasImm16(op)) {
			t.Errorf("HasImmediate(%d) inconsistent", op)
		}
	}
	if imm8 != 15 {
		t.Errorf("imm8 count = %d, want 15", imm8)
	}
	if imm16 != 4 {
		t.Errorf("imm16 count = %d, want 4", imm16)
	}

	if Valid(OpCount) || !Valid(0) || !Valid(OpCount-1) {
		t.Error("Valid boundary wrong")
	}
}

func TestFIsNotAnOperand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LdImm(RegF) should panic")
		}
	}()
	LdImm(RegF)
}
