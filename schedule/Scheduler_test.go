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
	"strings"
	"testing"

	"github.com/flanglet/prince-go/wordlist"
	"github.com/stretchr/testify/require"
)

func TestBuildLengthOrderDescendingByBucketWeight(t *testing.T) {
	// bucket[1] has 1 word, bucket[2] has 3 words, bucket[3] has 2 words
	b, err := wordlist.Load(strings.NewReader("a\nbb\ncc\ndd\nxyz\nqrs\n"))
	require.NoError(t, err)

	order := BuildLengthOrder(1, 3, b)
	require.Equal(t, []int{2, 3, 1}, order)
}

func TestBuildLengthOrderTieBreakAscending(t *testing.T) {
	b, err := wordlist.Load(strings.NewReader("a\nbb\n")) // both buckets size 1
	require.NoError(t, err)

	order := BuildLengthOrder(1, 2, b)
	require.Equal(t, []int{1, 2}, order)
}

func TestBuildLengthOrderIsStableAcrossRuns(t *testing.T) {
	b, err := wordlist.Load(strings.NewReader("a\nb\nbb\n"))
	require.NoError(t, err)

	first := BuildLengthOrder(1, 2, b)

	for i := 0; i < 10; i++ {
		require.Equal(t, first, BuildLengthOrder(1, 2, b))
	}
}
