package cpu

// 8-bit ALU engine. Every operation widens to 16 bits to expose the carry in
// bit 8, then assembles F from the carry bit, the half-carry/overflow lookup
// tables keyed by bits 3 and 7 of both operands and the result, the N flag
// literal and SZ53/SZ53P of the result.

func (s *State) add(v uint8) {
	sum := uint16(s.A) + uint16(v)
	key := ((s.A & 0x88) >> 3) | ((v & 0x88) >> 2) | uint8((sum&0x88)>>1)
	s.A = uint8(sum)
	s.F = flagIf(sum&0x100 != 0, FlagC) |
		HalfCarryAdd[key&0x07] |
		OverflowAdd[key>>4] |
		SZ53[s.A]
}

func (s *State) adc(v uint8) {
	sum := uint16(s.A) + uint16(v) + uint16(s.F&FlagC)
	key := ((s.A & 0x88) >> 3) | ((v & 0x88) >> 2) | uint8((sum&0x88)>>1)
	s.A = uint8(sum)
	s.F = flagIf(sum&0x100 != 0, FlagC) |
		HalfCarryAdd[key&0x07] |
		OverflowAdd[key>>4] |
		SZ53[s.A]
}

func (s *State) sub(v uint8) {
	diff := uint16(s.A) - uint16(v)
	key := ((s.A & 0x88) >> 3) | ((v & 0x88) >> 2) | uint8((diff&0x88)>>1)
	s.A = uint8(diff)
	s.F = flagIf(diff&0x100 != 0, FlagC) | FlagN |
		HalfCarrySub[key&0x07] |
		OverflowSub[key>>4] |
		SZ53[s.A]
}

func (s *State) sbc(v uint8) {
	diff := uint16(s.A) - uint16(v) - uint16(s.F&FlagC)
	key := ((s.A & 0x88) >> 3) | ((v & 0x88) >> 2) | uint8((diff&0x88)>>1)
	s.A = uint8(diff)
	s.F = flagIf(diff&0x100 != 0, FlagC) | FlagN |
		HalfCarrySub[key&0x07] |
		OverflowSub[key>>4] |
		SZ53[s.A]
}

func (s *State) and(v uint8) {
	s.A &= v
	s.F = FlagH | SZ53P[s.A]
}

func (s *State) xor(v uint8) {
	s.A ^= v
	s.F = SZ53P[s.A]
}

func (s *State) or(v uint8) {
	s.A |= v
	s.F = SZ53P[s.A]
}

// cp leaves A untouched. Bits 3/5 come from the operand, not the result, and
// Z is derived from the widened difference since there is no result byte to
// look it up from.
func (s *State) cp(v uint8) {
	diff := uint16(s.A) - uint16(v)
	key := ((s.A & 0x88) >> 3) | ((v & 0x88) >> 2) | uint8((diff&0x88)>>1)
	f := FlagN |
		HalfCarrySub[key&0x07] |
		OverflowSub[key>>4] |
		(v & (Flag3 | Flag5)) |
		uint8(diff&uint16(FlagS))
	if diff&0x100 != 0 {
		f |= FlagC
	} else if diff == 0 {
		f |= FlagZ
	}
	s.F = f
}

// inc and dec never touch the carry flag. Overflow is a boundary condition
// (0x80 produced by inc, 0x7F by dec), half-carry a low-nibble wrap.

func (s *State) inc(reg *uint8) {
	*reg++
	s.F = (s.F & FlagC) |
		flagIf(*reg == 0x80, FlagV) |
		flagIf(*reg&0x0F == 0, FlagH) |
		SZ53[*reg]
}

func (s *State) dec(reg *uint8) {
	s.F = (s.F & FlagC) | flagIf(*reg&0x0F == 0, FlagH) | FlagN
	*reg--
	s.F |= flagIf(*reg == 0x7F, FlagV) | SZ53[*reg]
}
