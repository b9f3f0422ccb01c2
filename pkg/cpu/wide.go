package cpu

// 16-bit arithmetic and the accumulator-only specials. The 16-bit half-carry
// and overflow lookups reuse the 8-entry tables, feeding bits 11 and 15
// through the same key shape as the 8-bit ALU.

// addHL preserves S, Z and P/V. Half-carry is taken from bit 11, carry from
// bit 15, and bits 3/5 from the high byte of the result.
func (s *State) addHL(v uint16) {
	hl := s.hl()
	sum := uint32(hl) + uint32(v)
	key := uint8((hl&0x8800)>>11) | uint8((v&0x8800)>>10) | uint8((sum&0x8800)>>9)
	s.setHL(uint16(sum))
	s.F = s.F&(FlagV|FlagZ|FlagS) |
		flagIf(sum&0x10000 != 0, FlagC) |
		HalfCarryAdd[key&0x07] |
		s.H&(Flag3|Flag5)
}

// adcHL and sbcHL set the full flag set. Z must be computed explicitly from
// the 16-bit result; SZ53 of the high byte alone would call 0x00xx zero.

func (s *State) adcHL(v uint16) {
	hl := s.hl()
	sum := uint32(hl) + uint32(v) + uint32(s.F&FlagC)
	key := uint8((hl&0x8800)>>11) | uint8((v&0x8800)>>10) | uint8((sum&0x8800)>>9)
	s.setHL(uint16(sum))
	s.F = flagIf(sum&0x10000 != 0, FlagC) |
		OverflowAdd[key>>4] |
		HalfCarryAdd[key&0x07] |
		s.H&(Flag3|Flag5|FlagS) |
		flagIf(uint16(sum) == 0, FlagZ)
}

func (s *State) sbcHL(v uint16) {
	hl := s.hl()
	diff := uint32(hl) - uint32(v) - uint32(s.F&FlagC)
	key := uint8((hl&0x8800)>>11) | uint8((v&0x8800)>>10) | uint8((diff&0x8800)>>9)
	s.setHL(uint16(diff))
	s.F = flagIf(diff&0x10000 != 0, FlagC) | FlagN |
		OverflowSub[key>>4] |
		HalfCarrySub[key&0x07] |
		s.H&(Flag3|Flag5|FlagS) |
		flagIf(uint16(diff) == 0, FlagZ)
}

// daa adjusts A to BCD after an add or subtract. The correction itself runs
// through the 8-bit ALU, then carry and parity are patched over its flags.
func (s *State) daa() {
	add, carry := uint8(0), s.F&FlagC
	if s.F&FlagH != 0 || s.A&0x0F > 9 {
		add = 6
	}
	if carry != 0 || s.A > 0x99 {
		add |= 0x60
	}
	if s.A > 0x99 {
		carry = FlagC
	}
	if s.F&FlagN != 0 {
		s.sub(add)
	} else {
		s.add(add)
	}
	s.F = s.F&^(FlagC|FlagP) | carry | Parity[s.A]
}

// The accumulator rotates preserve S, Z and P/V, unlike their CB cousins.

func (s *State) rlca() {
	s.A = s.A<<1 | s.A>>7
	s.F = s.F&(FlagP|FlagZ|FlagS) | s.A&(FlagC|Flag3|Flag5)
}

func (s *State) rrca() {
	s.F = s.F&(FlagP|FlagZ|FlagS) | s.A&FlagC
	s.A = s.A>>1 | s.A<<7
	s.F |= s.A & (Flag3 | Flag5)
}

func (s *State) rla() {
	old := s.A
	s.A = s.A<<1 | s.F&FlagC
	s.F = s.F&(FlagP|FlagZ|FlagS) | s.A&(Flag3|Flag5) | old>>7
}

func (s *State) rra() {
	old := s.A
	s.A = s.A>>1 | s.F<<7
	s.F = s.F&(FlagP|FlagZ|FlagS) | s.A&(Flag3|Flag5) | old&FlagC
}

func (s *State) cpl() {
	s.A = ^s.A
	s.F = s.F&(FlagC|FlagP|FlagZ|FlagS) | s.A&(Flag3|Flag5) | FlagN | FlagH
}

func (s *State) scf() {
	s.F = s.F&(FlagP|FlagZ|FlagS) | s.A&(Flag3|Flag5) | FlagC
}

// ccf moves the old carry into H and complements C.
func (s *State) ccf() {
	f := s.F & (FlagP | FlagZ | FlagS)
	if s.F&FlagC != 0 {
		f |= FlagH
	} else {
		f |= FlagC
	}
	s.F = f | s.A&(Flag3|Flag5)
}

// neg is SUB performed on a zeroed accumulator.
func (s *State) neg() {
	old := s.A
	s.A = 0
	s.sub(old)
}
