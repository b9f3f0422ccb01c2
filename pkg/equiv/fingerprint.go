package equiv

import "github.com/oisee/z80-equiv/pkg/isa"

// SnapshotSize is the number of bytes one final state contributes to a
// digest: A, F, B, C, D, E, H, L, then SP high byte and SP low byte.
const SnapshotSize = 10

// DigestLen is the total digest length in bytes.
const DigestLen = SnapshotSize * SeedCount // 80

// Digest condenses a sequence's behavior on the seed vectors. Equal behavior
// gives byte-identical digests, so a digest works as a map key; different
// digests prove non-equivalence, equal digests only suggest equivalence. The
// byte layout is contract data shared with external batch evaluators.
type Digest [DigestLen]byte

// Fingerprint computes the digest of a sequence.
func Fingerprint(seq []isa.Instruction) Digest {
	var d Digest
	for i := range SeedVectors {
		out := Run(SeedVectors[i], seq)
		off := i * SnapshotSize
		d[off+0] = out.A
		d[off+1] = out.F
		d[off+2] = out.B
		d[off+3] = out.C
		d[off+4] = out.D
		d[off+5] = out.E
		d[off+6] = out.H
		d[off+7] = out.L
		d[off+8] = uint8(out.SP >> 8)
		d[off+9] = uint8(out.SP)
	}
	return d
}

// FingerprintsEqual compares two digests under a dead-flag mask. The F byte
// sits at offset 1 of each 10-byte snapshot.
func FingerprintsEqual(a, b Digest, dead FlagMask) bool {
	if dead == DeadNone {
		return a == b
	}
	for i := 0; i < DigestLen; i++ {
		x, y := a[i], b[i]
		if i%SnapshotSize == 1 {
			x &^= dead
			y &^= dead
		}
		if x != y {
			return false
		}
	}
	return true
}

// Entry holds a sequence registered in a Map, with its encoded size.
type Entry struct {
	Seq   []isa.Instruction
	Bytes int
}

// Map indexes sequences by digest for O(1) batch matching: register the
// targets, then look candidates up by their digest.
type Map struct {
	m map[Digest][]Entry
}

// NewMap creates a Map with a capacity hint.
func NewMap(capacity int) *Map {
	return &Map{m: make(map[Digest][]Entry, capacity)}
}

// Add registers a sequence under its digest. The sequence is copied, so the
// caller may reuse the slice.
func (fm *Map) Add(seq []isa.Instruction) {
	c := make([]isa.Instruction, len(seq))
	copy(c, seq)
	d := Fingerprint(c)
	fm.m[d] = append(fm.m[d], Entry{Seq: c, Bytes: isa.SeqByteSize(c)})
}

// Lookup returns the entries registered under d.
func (fm *Map) Lookup(d Digest) []Entry {
	return fm.m[d]
}

// Len returns the number of distinct digests.
func (fm *Map) Len() int {
	return len(fm.m)
}

// Entries returns the total number of registered sequences.
func (fm *Map) Entries() int {
	n := 0
	for _, v := range fm.m {
		n += len(v)
	}
	return n
}
