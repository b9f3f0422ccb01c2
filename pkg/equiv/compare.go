package equiv

import (
	"github.com/oisee/z80-equiv/pkg/cpu"
	"github.com/oisee/z80-equiv/pkg/isa"
)

// FlagMask marks flag bits as dead: a set bit is ignored when comparing
// states. Dead bits widen the equivalence relation, never narrow it.
type FlagMask = uint8

const (
	DeadNone  FlagMask = 0x00 // strict equivalence, every flag bit must match
	DeadUndoc FlagMask = 0x28 // ignore undocumented bits 3 and 5
	DeadAll   FlagMask = 0xFF // registers only, F ignored entirely
)

// StatesEqual compares two states, ignoring the flag bits set in dead.
func StatesEqual(a, b cpu.State, dead FlagMask) bool {
	return a.A == b.A &&
		a.F&^dead == b.F&^dead &&
		a.B == b.B && a.C == b.C &&
		a.D == b.D && a.E == b.E &&
		a.H == b.H && a.L == b.L &&
		a.SP == b.SP
}

// QuickCheck runs both sequences over the seed vectors and reports whether
// every outcome matches exactly. It rejects almost all non-equivalent pairs;
// a true result is only a candidate for ExhaustiveCheck, not a proof.
func QuickCheck(target, candidate []isa.Instruction) bool {
	for i := range SeedVectors {
		if Run(SeedVectors[i], target) != Run(SeedVectors[i], candidate) {
			return false
		}
	}
	return true
}

// QuickCheckMasked is QuickCheck under a dead-flag mask.
func QuickCheckMasked(target, candidate []isa.Instruction, dead FlagMask) bool {
	if dead == DeadNone {
		return QuickCheck(target, candidate)
	}
	for i := range SeedVectors {
		if !StatesEqual(Run(SeedVectors[i], target), Run(SeedVectors[i], candidate), dead) {
			return false
		}
	}
	return true
}

// FlagDiff reports which flag bits ever differ between the two sequences
// across the seed vectors. Zero means they agree everywhere; a nonzero mask
// names the flags that would have to be dead for the pair to match. If any
// register differs the sequences are beyond rescue and FlagDiff returns 0.
func FlagDiff(target, candidate []isa.Instruction) FlagMask {
	var diff FlagMask
	for i := range SeedVectors {
		t := Run(SeedVectors[i], target)
		c := Run(SeedVectors[i], candidate)
		if !StatesEqual(t, c, DeadAll) {
			return 0
		}
		diff |= t.F ^ c.F
	}
	return diff
}
