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

// Package chain implements the PRINCE chain: enumeration of length
// compositions (Enumerator.go), their keyspace arithmetic and per-length
// sort (Keyspace.go), and the mixed-radix materialization of a concrete
// candidate from a chain offset (Materializer.go). A Chain is a plain
// value with no runtime polymorphism.
package chain

import "github.com/flanglet/prince-go/bigint"

// Chain is an ordered composition of an output length L into part lengths
// parts[0]+...+parts[k-1] == L, each part in [1..wordlist.MaxWordLen].
// Parts is immutable once built by the Enumerator. KsPos advances
// monotonically in [0, KsCnt] via Advance; ResetCursor rewinds it to 0.
type Chain struct {
	Parts []int
	KsCnt *bigint.Value
	ksPos *bigint.Value
}

// K returns the chain length (number of parts).
func (this *Chain) K() int {
	return len(this.Parts)
}

// KsPos returns the chain's current cursor into its keyspace.
func (this *Chain) KsPos() *bigint.Value {
	return this.ksPos
}

// Terminal reports whether this chain's keyspace has been fully drained.
func (this *Chain) Terminal() bool {
	return this.ksPos.Cmp(this.KsCnt) == 0
}

// Advance moves the chain's cursor forward by n (n must not push ksPos
// past KsCnt; the emission driver never requests more than
// KsCnt-ksPos from a single chain in one batch).
func (this *Chain) Advance(n uint64) {
	this.ksPos = this.ksPos.Add(bigint.FromUint64(n))
}

// ResetCursor rewinds the chain's cursor to 0. Called by LengthState once a
// terminal chain's batch has been fully accounted for.
func (this *Chain) ResetCursor() {
	this.ksPos = bigint.Zero()
}

func newChain(parts []int, ksCnt *bigint.Value) *Chain {
	return &Chain{Parts: parts, KsCnt: ksCnt, ksPos: bigint.Zero()}
}
