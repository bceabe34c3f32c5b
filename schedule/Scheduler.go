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
	"github.com/flanglet/prince-go/wordlist"
	"golang.org/x/exp/slices"
)

// BuildLengthOrder returns a permutation of [pwMin..pwMax], sorted
// descending by the weight of each length. The weight is the size of the
// length's own word bucket, so lengths whose input words are most
// plentiful are interleaved first. Ties are broken by ascending length,
// giving a genuine total order: the set of emitted candidates is
// unaffected by tie-break choice, only their interleaving.
func BuildLengthOrder(pwMin, pwMax int, buckets *wordlist.Buckets) []int {
	order := make([]int, 0, pwMax-pwMin+1)

	for l := pwMin; l <= pwMax; l++ {
		order = append(order, l)
	}

	weight := func(l int) int {
		if b := buckets.Bucket(l); b != nil {
			return b.Len()
		}

		return 0
	}

	slices.SortFunc(order, func(a, b int) bool {
		wa, wb := weight(a), weight(b)

		if wa != wb {
			return wa > wb
		}

		return a < b
	})

	return order
}
