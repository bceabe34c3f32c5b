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

// Materialize decodes offset v (0 <= v < c.KsCnt) as a mixed-radix integer
// whose radices are the bucket sizes of c.Parts in order, and appends the
// corresponding word bytes to dst, returning the extended slice. dst is
// grown by append only when its spare capacity is below sum(c.Parts)
// bytes; the words it copies from are borrowed read-only from buckets.
//
// v's least-significant radix digit indexes the first part, so the first
// part cycles fastest as v increments: adjacent candidates share their
// tail and differ in their head, the locality property PRINCE relies on.
func Materialize(c *Chain, v *bigint.Value, buckets *wordlist.Buckets, dst []byte) []byte {
	remaining := v.Clone()

	for _, p := range c.Parts {
		bucket := buckets.Bucket(p)
		radix := uint64(bucket.Len())
		q, idx := remaining.DivModSmall(radix)
		remaining = q
		dst = append(dst, bucket.Entry(int(idx))...)
	}

	return dst
}
