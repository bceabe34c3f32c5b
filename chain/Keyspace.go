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

package chain

import (
	"github.com/flanglet/prince-go/bigint"
	"golang.org/x/exp/slices"
)

// LengthState owns the sorted chain array admitted for a single output
// length and the index of the currently-active chain within it.
type LengthState struct {
	Length   int
	Chains   []*Chain
	ElemsPos int
}

// NewLengthStateFromChains builds a LengthState from an already-enumerated
// chain slice (as returned by Enumerate), sorting it ascending by ks_cnt
// with enumeration order as the tie-break.
func NewLengthStateFromChains(length int, chains []*Chain) *LengthState {
	type indexed struct {
		idx int
		c   *Chain
	}

	decorated := make([]indexed, len(chains))

	for i, c := range chains {
		decorated[i] = indexed{idx: i, c: c}
	}

	slices.SortFunc(decorated, func(a, b indexed) bool {
		if cmp := a.c.KsCnt.Cmp(b.c.KsCnt); cmp != 0 {
			return cmp < 0
		}

		return a.idx < b.idx
	})

	sorted := make([]*Chain, len(chains))

	for i, d := range decorated {
		sorted[i] = d.c
	}

	return &LengthState{Length: length, Chains: sorted}
}

// Terminal reports whether every chain for this length has been drained.
func (this *LengthState) Terminal() bool {
	return this.ElemsPos == len(this.Chains)
}

// Active returns the currently-active chain, or nil if Terminal().
func (this *LengthState) Active() *Chain {
	if this.Terminal() {
		return nil
	}

	return this.Chains[this.ElemsPos]
}

// AdvanceIfDrained resets the active chain's cursor and moves to the next
// chain if the active chain's keyspace has been fully drained.
func (this *LengthState) AdvanceIfDrained() {
	c := this.Active()

	if c == nil {
		return
	}

	if c.Terminal() {
		c.ResetCursor()
		this.ElemsPos++
	}
}

// TotalKsCnt returns the sum of ks_cnt over every chain in this LengthState.
func (this *LengthState) TotalKsCnt() *bigint.Value {
	total := bigint.Zero()

	for _, c := range this.Chains {
		total = total.Add(c.KsCnt)
	}

	return total
}
