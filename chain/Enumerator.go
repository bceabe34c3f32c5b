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
	"github.com/flanglet/prince-go/wordlist"
)

// Enumerate returns every admitted chain for output length length: every
// ordered composition of length into parts p1..pk with chain length
// (1 <= k) in [elemCntMin, elemCntMax] and every part's bucket non-empty.
//
// Each composition is encoded as an integer i in [0, 2^(length-1)): reading
// bits from low to high, a 1-bit emits the running accumulator as a part
// and resets it to 1, a 0-bit increments it; the residual accumulator is
// emitted as the final part after length-1 bits have been read. This is
// O(length * 2^(length-1)) with no recursion, and it produces compositions
// in a fixed, deterministic order that the chain sort uses to break ties.
func Enumerate(length, elemCntMin, elemCntMax int, buckets *wordlist.Buckets) []*Chain {
	total := uint64(1) << uint(length-1)
	chains := make([]*Chain, 0, total)

	for i := uint64(0); i < total; i++ {
		parts := decodeComposition(i, length)

		if len(parts) < elemCntMin || len(parts) > elemCntMax {
			continue
		}

		ksCnt := bigint.FromUint64(1)
		admitted := true

		for _, p := range parts {
			b := buckets.Bucket(p)

			if b == nil || b.Len() == 0 {
				admitted = false
				break
			}

			ksCnt = ksCnt.MulSmall(uint64(b.Len()))
		}

		if !admitted {
			continue
		}

		chains = append(chains, newChain(parts, ksCnt))
	}

	return chains
}

// decodeComposition turns composition index i into its part-length vector
// for the given output length.
func decodeComposition(i uint64, length int) []int {
	parts := make([]int, 0, length)
	acc := 1

	for b := 0; b < length-1; b++ {
		if (i>>uint(b))&1 == 1 {
			parts = append(parts, acc)
			acc = 1
		} else {
			acc++
		}
	}

	return append(parts, acc)
}
