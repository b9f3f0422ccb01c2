package cpu

import "sync"

// Z80 flag bit positions in the F register.
const (
	FlagC uint8 = 0x01 // Carry
	FlagN uint8 = 0x02 // Subtract
	FlagP uint8 = 0x04 // Parity/Overflow
	FlagV       = FlagP // Overflow (same bit as Parity)
	Flag3 uint8 = 0x08 // Undocumented bit 3
	FlagH uint8 = 0x10 // Half-carry
	Flag5 uint8 = 0x20 // Undocumented bit 5
	FlagZ uint8 = 0x40 // Zero
	FlagS uint8 = 0x80 // Sign
)

// Precomputed flag tables. Read-only after BuildTables; shared without
// synchronization by every concurrent evaluation.
var (
	// SZ53[v]: S, 5, 3 copied from v, plus Z iff v == 0.
	SZ53 [256]uint8
	// SZ53P[v]: SZ53 with the parity flag folded in.
	SZ53P [256]uint8
	// Parity[v]: P iff v has an even number of one bits.
	Parity [256]uint8
)

// Half-carry and overflow lookup tables. Indexed by a 3-bit key built from
// bits 3 (half-carry) or 7 (overflow) of the two operands and the result:
//
//	key = ((a & 0x88) >> 3) | ((b & 0x88) >> 2) | ((result & 0x88) >> 1)
//
// with key&0x07 selecting half-carry and key>>4 selecting overflow. The
// 16-bit ADC/SBC HL analog feeds bits 11 and 15 through the same tables.
// These constants are contract data; they are not derived from arithmetic.
var (
	HalfCarryAdd = [8]uint8{0, FlagH, FlagH, FlagH, 0, 0, 0, FlagH}
	HalfCarrySub = [8]uint8{0, 0, FlagH, 0, FlagH, 0, FlagH, FlagH}
	OverflowAdd  = [8]uint8{0, 0, 0, FlagV, FlagV, 0, 0, 0}
	OverflowSub  = [8]uint8{0, FlagV, 0, 0, 0, 0, FlagV, 0}
)

var tablesOnce sync.Once

// BuildTables populates the 256-entry flag tables. It must complete before
// any instruction executes; the package init below guarantees that, so extra
// calls are harmless. Safe to call from multiple goroutines.
func BuildTables() {
	tablesOnce.Do(buildTables)
}

func init() {
	BuildTables()
}

func buildTables() {
	for i := 0; i < 256; i++ {
		SZ53[i] = uint8(i) & (Flag3 | Flag5 | FlagS)

		j := uint8(i)
		parity := uint8(0)
		for k := 0; k < 8; k++ {
			parity ^= j & 1
			j >>= 1
		}
		if parity == 0 {
			Parity[i] = FlagP
		}
		SZ53P[i] = SZ53[i] | Parity[i]
	}
	SZ53[0] |= FlagZ
	SZ53P[0] |= FlagZ
}

// flagIf returns f if cond holds, else 0.
func flagIf(cond bool, f uint8) uint8 {
	if cond {
		return f
	}
	return 0
}
