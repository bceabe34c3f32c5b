/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package schedule

import (
	"errors"

	"github.com/flanglet/prince-go/bigint"
	"github.com/flanglet/prince-go/chain"
	"github.com/flanglet/prince-go/wordlist"
	"golang.org/x/exp/slices"
)

// Errors returned by NewDriver when skip/limit exceed the total keyspace.
var (
	ErrSkipOutOfRange      = errors.New("skip exceeds total keyspace")
	ErrLimitOutOfRange     = errors.New("limit exceeds total keyspace")
	ErrSkipLimitOutOfRange = errors.New("skip+limit exceeds total keyspace")
)

const lineTerminator = '\n'

// Sink is the append-only byte writer the driver pushes candidates into.
// The driver only needs Write and Flush.
type Sink interface {
	Write(p []byte) (int, error)
	Flush() error
}

// Driver is the outer emission loop: it walks LengthOrder, drains each
// length's active chain in bounded batches, and respects the global
// skip/limit gate.
type Driver struct {
	order      []int
	states     map[int]*chain.LengthState
	buckets    *wordlist.Buckets
	dist       WordlenDist
	totalKsCnt *bigint.Value // possibly truncated by limit, per §4.8
	totalKsPos *bigint.Value
	skip       *bigint.Value
	listener   Listener
}

// NewDriver builds the chain/length state for every length in
// [pwMin..pwMax], applies the skip/limit gate, and returns a Driver ready
// to Run. elemCntMin/elemCntMax bound the admitted chain length k.
func NewDriver(pwMin, pwMax, elemCntMin, elemCntMax int, buckets *wordlist.Buckets, dist WordlenDist, skip, limit *bigint.Value) (*Driver, error) {
	states := make(map[int]*chain.LengthState, pwMax-pwMin+1)
	initialTotal := bigint.Zero()

	for l := pwMin; l <= pwMax; l++ {
		chains := chain.Enumerate(l, elemCntMin, elemCntMax, buckets)
		ls := chain.NewLengthStateFromChains(l, chains)
		states[l] = ls
		initialTotal = initialTotal.Add(ls.TotalKsCnt())
	}

	if !skip.IsZero() && skip.Cmp(initialTotal) > 0 {
		return nil, ErrSkipOutOfRange
	}

	if !limit.IsZero() && limit.Cmp(initialTotal) > 0 {
		return nil, ErrLimitOutOfRange
	}

	totalKsCnt := initialTotal

	if !limit.IsZero() {
		skipPlusLimit := skip.Add(limit)

		if skipPlusLimit.Cmp(initialTotal) > 0 {
			return nil, ErrSkipLimitOutOfRange
		}

		totalKsCnt = skipPlusLimit
	}

	return &Driver{
		order:      BuildLengthOrder(pwMin, pwMax, buckets),
		states:     states,
		buckets:    buckets,
		dist:       dist,
		totalKsCnt: totalKsCnt,
		totalKsPos: bigint.Zero(),
		skip:       skip,
	}, nil
}

// TotalKsCnt returns the (possibly limit-truncated) total keyspace this
// driver will walk.
func (this *Driver) TotalKsCnt() *bigint.Value {
	return this.totalKsCnt
}

// SetListener attaches a verbose-reporting Listener; may be nil.
func (this *Driver) SetListener(l Listener) {
	this.listener = l
}

// LengthSummary reports the admitted chain count and total keyspace
// contributed by a single output length.
type LengthSummary struct {
	Length   int
	ChainCnt int
	KsCnt    *bigint.Value
}

// LengthSummaries returns one LengthSummary per configured output length,
// ordered ascending by length, for verbose reporting before Run starts.
func (this *Driver) LengthSummaries() []LengthSummary {
	lengths := make([]int, 0, len(this.states))

	for l := range this.states {
		lengths = append(lengths, l)
	}

	slices.Sort(lengths)

	summaries := make([]LengthSummary, 0, len(lengths))

	for _, l := range lengths {
		ls := this.states[l]
		summaries = append(summaries, LengthSummary{Length: l, ChainCnt: len(ls.Chains), KsCnt: ls.TotalKsCnt()})
	}

	return summaries
}

// Run drives the outer loop to completion, writing candidate bytes (and
// their LF terminator) to sink for every position in [skip, totalKsCnt).
func (this *Driver) Run(sink Sink) error {
	one := bigint.FromUint64(1)
	candidate := make([]byte, 0, wordlist.MaxWordLen*8)

	for this.totalKsPos.Cmp(this.totalKsCnt) < 0 {
		progressed := false

		for _, length := range this.order {
			if this.totalKsPos.Cmp(this.totalKsCnt) >= 0 {
				break
			}

			ls := this.states[length]

			if ls.Terminal() {
				continue
			}

			c := ls.Active()
			iterMax := this.batchSize(c, length)

			if iterMax == 0 {
				continue
			}

			progressed = true
			v := c.KsPos().Clone()

			for j := uint64(0); j < iterMax; j++ {
				if this.totalKsPos.Cmp(this.skip) >= 0 {
					candidate = candidate[:0]
					candidate = chain.Materialize(c, v, this.buckets, candidate)
					candidate = append(candidate, lineTerminator)

					if _, err := sink.Write(candidate); err != nil {
						return err
					}
				}

				this.totalKsPos = this.totalKsPos.Add(one)
				v = v.Add(one)
			}

			if err := sink.Flush(); err != nil {
				return err
			}

			c.Advance(iterMax)
			ls.AdvanceIfDrained()

			if this.listener != nil {
				this.listener.ProcessEvent(&Event{Type: EvtBatchDrained, Length: length, Count: iterMax})
			}
		}

		// Every length is either terminal or blocked on a zero-weight
		// batch cap; with WordlenDist always >= 1 (schedule.WordlenDist.
		// Weight clamps to 1) this cannot happen while totalKsPos <
		// totalKsCnt, but guard against an infinite loop regardless.
		if !progressed {
			break
		}
	}

	return nil
}

// batchSize computes iter_max for the active chain c at the given length:
// the minimum of the chain's remaining keyspace, the length's WordlenDist
// weight, and the driver's remaining global keyspace.
func (this *Driver) batchSize(c *chain.Chain, length int) uint64 {
	remainingChain := c.KsCnt.Sub(c.KsPos())
	remainingGlobal := this.totalKsCnt.Sub(this.totalKsPos)
	weight := bigint.FromUint64(this.dist.Weight(length))

	min := bigint.Min(bigint.Min(remainingChain, remainingGlobal), weight)
	return min.Uint64()
}
