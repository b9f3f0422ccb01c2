// z80eq is the inspection and cross-verification tool for the equivalence
// kernel: it fingerprints sequences, checks candidate pairs, dumps the
// opcode catalog and flag tables for external evaluators, and cross-checks
// the batch path against the sequential one.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oisee/z80-equiv/pkg/batch"
	"github.com/oisee/z80-equiv/pkg/cpu"
	"github.com/oisee/z80-equiv/pkg/equiv"
	"github.com/oisee/z80-equiv/pkg/isa"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "z80eq",
		Short: "Z80 equivalence kernel — fingerprint and compare instruction sequences",
	}

	var dead string

	// fingerprint command
	fingerprintCmd := &cobra.Command{
		Use:   "fingerprint [instructions]",
		Short: "Print the 80-byte behavior digest of a sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseAssembly(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Printf("%s (%d bytes)\n", isa.DisassembleSeq(seq), isa.SeqByteSize(seq))
			d := equiv.Fingerprint(seq)
			for i := 0; i < equiv.SeedCount; i++ {
				fmt.Printf("  seed %d: % X\n", i, d[i*equiv.SnapshotSize:(i+1)*equiv.SnapshotSize])
			}
			return nil
		},
	}

	// equal command
	var exhaustive bool

	equalCmd := &cobra.Command{
		Use:   "equal [target] [candidate]",
		Short: "Check whether two sequences are behaviorally equivalent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := parseDead(dead)
			if err != nil {
				return err
			}
			target, err := parseAssembly(args[0])
			if err != nil {
				return err
			}
			candidate, err := parseAssembly(args[1])
			if err != nil {
				return err
			}

			if !equiv.QuickCheckMasked(target, candidate, mask) {
				fmt.Println("NOT equivalent (seed vectors)")
				if diff := equiv.FlagDiff(target, candidate); diff != 0 {
					fmt.Printf("registers match; differing flag bits: %08b\n", diff)
				}
				return nil
			}
			if !exhaustive {
				fmt.Println("equivalent on all seed vectors (run with --exhaustive to sweep)")
				return nil
			}
			if equiv.ExhaustiveCheck(target, candidate, mask) {
				fmt.Println("equivalent (exhaustive sweep)")
			} else {
				fmt.Println("NOT equivalent (exhaustive sweep)")
			}
			return nil
		},
	}
	equalCmd.Flags().BoolVar(&exhaustive, "exhaustive", false, "Sweep representative inputs, not just seed vectors")

	// disasm command
	disasmCmd := &cobra.Command{
		Use:   "disasm",
		Short: "Dump the linear opcode catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for op := isa.Opcode(0); op < isa.OpCount; op++ {
				info := &isa.Catalog[op]
				fmt.Printf("%3d  %-6s %s\n", op, fmt.Sprintf("% X", info.Bytes), info.Mnemonic)
			}
			return nil
		},
	}

	// tables command
	tablesCmd := &cobra.Command{
		Use:   "tables",
		Short: "Dump the flag lookup tables for external evaluators",
		RunE: func(cmd *cobra.Command, args []string) error {
			cpu.BuildTables()
			dumpTable := func(name string, t []uint8) {
				fmt.Printf("%s:\n", name)
				for i := 0; i < len(t); i += 16 {
					fmt.Printf("  % X\n", t[i:i+16])
				}
			}
			dumpTable("SZ53", cpu.SZ53[:])
			dumpTable("SZ53P", cpu.SZ53P[:])
			dumpTable("Parity", cpu.Parity[:])
			fmt.Printf("HalfCarryAdd: % X\n", cpu.HalfCarryAdd[:])
			fmt.Printf("HalfCarrySub: % X\n", cpu.HalfCarrySub[:])
			fmt.Printf("OverflowAdd:  % X\n", cpu.OverflowAdd[:])
			fmt.Printf("OverflowSub:  % X\n", cpu.OverflowSub[:])
			return nil
		},
	}

	// verify command
	var workers int

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check batch digests against the sequential evaluator",
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs := make([][]isa.Instruction, 0, isa.OpCount)
			for op := isa.Opcode(0); op < isa.OpCount; op++ {
				instr := isa.Instruction{Op: op}
				if isa.HasImm16(op) {
					instr.Imm = 0x1234
				} else if isa.HasImm8(op) {
					instr.Imm = 0x42
				}
				seqs = append(seqs, []isa.Instruction{instr})
			}

			got := batch.NewPool(workers).Fingerprints(seqs)

			mismatches := 0
			for i := range seqs {
				if got[i] != equiv.Fingerprint(seqs[i]) {
					fmt.Printf("MISMATCH at opcode %d: %s\n", i, isa.DisassembleSeq(seqs[i]))
					mismatches++
				}
			}
			if mismatches > 0 {
				return fmt.Errorf("%d/%d opcodes disagree", mismatches, len(seqs))
			}
			fmt.Printf("all %d opcodes agree between batch and sequential evaluation\n", len(seqs))
			return nil
		},
	}
	verifyCmd.Flags().IntVar(&workers, "workers", 0, "Number of workers (0 = NumCPU)")

	equalCmd.Flags().StringVar(&dead, "dead", "none", "Dead flag mask: none, undoc or all")

	rootCmd.AddCommand(fingerprintCmd, equalCmd, disasmCmd, tablesCmd, verifyCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseDead(s string) (equiv.FlagMask, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return equiv.DeadNone, nil
	case "undoc":
		return equiv.DeadUndoc, nil
	case "all":
		return equiv.DeadAll, nil
	}
	return 0, fmt.Errorf("unknown dead mask %q (want none, undoc or all)", s)
}

// parseAssembly converts text like "XOR A : LD B, 5" into a sequence.
func parseAssembly(text string) ([]isa.Instruction, error) {
	var seq []isa.Instruction
	for _, part := range strings.Split(text, ":") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		instr, err := parseSingleInstruction(part)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q: %w", part, err)
		}
		seq = append(seq, instr)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("no instructions parsed from %q", text)
	}
	return seq, nil
}

func parseSingleInstruction(text string) (isa.Instruction, error) {
	text = strings.TrimSpace(text)
	upper := strings.ToUpper(text)

	for op := isa.Opcode(0); op < isa.OpCount; op++ {
		info := &isa.Catalog[op]

		if !isa.HasImmediate(op) {
			if strings.EqualFold(text, info.Mnemonic) {
				return isa.Instruction{Op: op}, nil
			}
			continue
		}

		// The placeholder is the trailing run of n's ("n" or "nn"); an
		// earlier N, as in "AND n", belongs to the mnemonic itself.
		pattern := strings.ToUpper(info.Mnemonic)
		last := strings.LastIndexByte(pattern, 'N')
		if last < 0 {
			continue
		}
		start := last
		for start > 0 && pattern[start-1] == 'N' {
			start--
		}
		prefix := pattern[:start]
		if !strings.HasPrefix(upper, prefix) {
			continue
		}

		val, err := parseImmediate(strings.TrimSpace(upper[len(prefix):]))
		if err != nil {
			continue
		}
		return isa.Instruction{Op: op, Imm: uint16(val)}, nil
	}

	return isa.Instruction{}, fmt.Errorf("unknown instruction: %s", text)
}

func parseImmediate(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty immediate")
	}

	if strings.HasPrefix(s, "0X") {
		var v int
		_, err := fmt.Sscanf(s, "0X%x", &v)
		return v, err
	}
	if strings.HasSuffix(s, "H") {
		var v int
		_, err := fmt.Sscanf(s[:len(s)-1], "%x", &v)
		return v, err
	}

	var v int
	_, err := fmt.Sscanf(s, "%d", &v)
	return v, err
}
