// Package batch evaluates many sequences in parallel. It is the data-parallel
// counterpart of the sequential evaluator: same opcodes, same seed vectors,
// byte-identical digests, so its output can be cross-checked against the
// sequential path digest for digest.
package batch

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/oisee/z80-equiv/pkg/equiv"
	"github.com/oisee/z80-equiv/pkg/isa"
)

// Pool fans fingerprint work out over a fixed number of goroutines.
type Pool struct {
	NumWorkers int
	evaluated  atomic.Int64
}

// NewPool creates a pool. workers <= 0 means one per CPU.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{NumWorkers: workers}
}

// Evaluated returns the number of sequences fingerprinted so far.
func (p *Pool) Evaluated() int64 {
	return p.evaluated.Load()
}

// Fingerprints computes the digest of every sequence. Element i of the
// result is the digest of seqs[i]; ordering is deterministic regardless of
// worker count.
func (p *Pool) Fingerprints(seqs [][]isa.Instruction) []equiv.Digest {
	out := make([]equiv.Digest, len(seqs))

	ch := make(chan int, len(seqs))
	for i := range seqs {
		ch <- i
	}
	close(ch)

	var wg sync.WaitGroup
	for w := 0; w < p.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range ch {
				out[i] = equiv.Fingerprint(seqs[i])
				p.evaluated.Add(1)
			}
		}()
	}
	wg.Wait()
	return out
}

// Matches returns the indices of digests that equal target under the
// dead-flag mask, in ascending order.
func Matches(target equiv.Digest, digests []equiv.Digest, dead equiv.FlagMask) []int {
	var idx []int
	for i := range digests {
		if equiv.FingerprintsEqual(target, digests[i], dead) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Fingerprints is the convenience form of Pool.Fingerprints with one worker
// per CPU.
func Fingerprints(seqs [][]isa.Instruction) []equiv.Digest {
	return NewPool(0).Fingerprints(seqs)
}
