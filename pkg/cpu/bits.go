package cpu

// CB-prefixed rotate/shift engine. Each operation takes and returns the
// register value; F becomes the outgoing carry ORed with SZ53P of the new
// value. The accumulator-only rotates (RLCA and friends) live in wide.go and
// have weaker flag behavior.

func (s *State) rlc(v uint8) uint8 {
	c := v >> 7
	v = v<<1 | c
	s.F = c | SZ53P[v]
	return v
}

func (s *State) rrc(v uint8) uint8 {
	c := v & 0x01
	v = v>>1 | c<<7
	s.F = c | SZ53P[v]
	return v
}

func (s *State) rl(v uint8) uint8 {
	c := v >> 7
	v = v<<1 | s.F&FlagC
	s.F = c | SZ53P[v]
	return v
}

func (s *State) rr(v uint8) uint8 {
	c := v & 0x01
	v = v>>1 | s.F&FlagC<<7
	s.F = c | SZ53P[v]
	return v
}

func (s *State) sla(v uint8) uint8 {
	c := v >> 7
	v <<= 1
	s.F = c | SZ53P[v]
	return v
}

// sra keeps the sign bit.
func (s *State) sra(v uint8) uint8 {
	c := v & 0x01
	v = v&0x80 | v>>1
	s.F = c | SZ53P[v]
	return v
}

func (s *State) srl(v uint8) uint8 {
	c := v & 0x01
	v >>= 1
	s.F = c | SZ53P[v]
	return v
}

// sll is the undocumented shift: like SLA but bit 0 is forced to one.
func (s *State) sll(v uint8) uint8 {
	c := v >> 7
	v = v<<1 | 0x01
	s.F = c | SZ53P[v]
	return v
}

// bit tests bit n of v without modifying it. Carry survives; H is forced;
// bits 3/5 come from the operand. A clear bit sets both Z and P, and testing
// a set bit 7 sets S.
func (s *State) bit(n uint8, v uint8) {
	f := s.F&FlagC | FlagH | v&(Flag3|Flag5)
	if v&(1<<n) == 0 {
		f |= FlagP | FlagZ
	}
	if n == 7 && v&0x80 != 0 {
		f |= FlagS
	}
	s.F = f
}
