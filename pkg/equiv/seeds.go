// Package equiv decides behavioral equivalence of instruction sequences: it
// executes candidates over fixed seed vectors, condenses the outcomes into
// fingerprints for fast rejection, and escalates to representative-value
// sweeps for sequences that survive, all under a configurable dead-flag mask.
package equiv

import (
	"github.com/oisee/z80-equiv/pkg/cpu"
	"github.com/oisee/z80-equiv/pkg/isa"
)

// SeedCount is the number of seed vectors behind every fingerprint.
const SeedCount = 8

// SeedVectors are the fixed initial states every sequence is evaluated
// against. They are contract data: any change silently invalidates every
// stored fingerprint, so the values below are frozen. The set mixes the
// all-zero and all-ones corners, a distinct-bytes vector, single-bit and
// alternating patterns and nibble masks, with carry set in half of them.
var SeedVectors = [SeedCount]cpu.State{
	{A: 0x00, F: 0x00, B: 0x00, C: 0x00, D: 0x00, E: 0x00, H: 0x00, L: 0x00, SP: 0x0000},
	{A: 0xFF, F: 0xFF, B: 0xFF, C: 0xFF, D: 0xFF, E: 0xFF, H: 0xFF, L: 0xFF, SP: 0xFFFF},
	{A: 0x01, F: 0x00, B: 0x02, C: 0x03, D: 0x04, E: 0x05, H: 0x06, L: 0x07, SP: 0x1234},
	{A: 0x80, F: 0x01, B: 0x40, C: 0x20, D: 0x10, E: 0x08, H: 0x04, L: 0x02, SP: 0x8000},
	{A: 0x55, F: 0x00, B: 0xAA, C: 0x55, D: 0xAA, E: 0x55, H: 0xAA, L: 0x55, SP: 0x5555},
	{A: 0xAA, F: 0x01, B: 0x55, C: 0xAA, D: 0x55, E: 0xAA, H: 0x55, L: 0xAA, SP: 0xAAAA},
	{A: 0x0F, F: 0x00, B: 0xF0, C: 0x0F, D: 0xF0, E: 0x0F, H: 0xF0, L: 0x0F, SP: 0xFFFE},
	{A: 0x7F, F: 0x01, B: 0x80, C: 0x7F, D: 0x80, E: 0x7F, H: 0x80, L: 0x7F, SP: 0x7FFF},
}

// Run executes seq from an initial state and returns the final state.
func Run(initial cpu.State, seq []isa.Instruction) cpu.State {
	s := initial
	cpu.Run(&s, seq)
	return s
}
