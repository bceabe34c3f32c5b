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

// Package schedule orders output lengths into a fixed round-robin
// (Scheduler.go) and runs the emission driver that interleaves chains
// across those lengths according to a distribution (Driver.go).
package schedule

import "github.com/flanglet/prince-go/wordlist"

// defaultWordlenDist is the built-in weighting table, indices 0..24;
// entries at index >= 25 default to 1.
var defaultWordlenDist = [25]uint64{
	0, 15, 56, 350, 3315, 43721, 276252, 201748, 226412, 119885,
	75075, 26323, 13373, 6353, 3540, 1877, 972, 311, 151, 81,
	66, 21, 16, 13, 13,
}

// WordlenDist supplies the per-length batch-size cap used by the emission
// driver. It is always positive: a length whose raw weight would be 0 is
// clamped to 1 so the driver never stalls on a length that still has
// chains to drain.
type WordlenDist struct {
	observed *wordlist.Buckets // non-nil when --wl-dist-len was requested
}

// NewDefaultWordlenDist returns the distribution backed by the built-in
// table.
func NewDefaultWordlenDist() WordlenDist {
	return WordlenDist{}
}

// NewObservedWordlenDist returns the distribution backed by the observed
// bucket sizes of buckets, for the --wl-dist-len flag.
func NewObservedWordlenDist(buckets *wordlist.Buckets) WordlenDist {
	return WordlenDist{observed: buckets}
}

// Weight returns the batch-size cap for output length L.
func (this WordlenDist) Weight(length int) uint64 {
	var w uint64

	if this.observed != nil {
		if b := this.observed.Bucket(length); b != nil {
			w = uint64(b.Len())
		}
	} else if length >= 0 && length < len(defaultWordlenDist) {
		w = defaultWordlenDist[length]
	} else {
		w = 1
	}

	if w == 0 {
		w = 1
	}

	return w
}
