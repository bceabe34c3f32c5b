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
	"testing"

	"github.com/flanglet/prince-go/bigint"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestTwoOneLetterWordsHeadFastest checks chain (1,1) over buckets {a,b},
// expecting the head-fastest ordering "aa","ba","ab","bb".
func TestTwoOneLetterWordsHeadFastest(t *testing.T) {
	buckets := load(t, "a\nb\n")
	chains := Enumerate(2, 2, 2, buckets)
	require.Len(t, chains, 1)
	c := chains[0]
	require.Equal(t, "4", c.KsCnt.String())

	var got []string

	for i := uint64(0); i < 4; i++ {
		dst := Materialize(c, bigint.FromUint64(i), buckets, nil)
		got = append(got, string(dst))
	}

	want := []string{"aa", "ba", "ab", "bb"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("materialized candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleWordPassthrough(t *testing.T) {
	buckets := load(t, "a\n")
	chains := Enumerate(1, 1, 8, buckets)
	require.Len(t, chains, 1)
	c := chains[0]
	require.Equal(t, "1", c.KsCnt.String())

	got := Materialize(c, bigint.Zero(), buckets, nil)
	require.Equal(t, "a", string(got))
}

// TestMaterializationBijection checks that for a fixed chain, v ->
// candidate(c,v) is a bijection onto the cartesian product of the
// chain's part buckets.
func TestMaterializationBijection(t *testing.T) {
	buckets := load(t, "a\nb\nc\nd\n")
	chains := Enumerate(2, 2, 2, buckets) // chain (1,1), ks_cnt = 4*4 = 16
	require.Len(t, chains, 1)
	c := chains[0]
	require.Equal(t, "16", c.KsCnt.String())

	seen := make(map[string]bool)

	for i := uint64(0); i < 16; i++ {
		cand := string(Materialize(c, bigint.FromUint64(i), buckets, nil))
		require.False(t, seen[cand], "candidate %q produced twice", cand)
		seen[cand] = true
		require.Len(t, cand, 2)
	}

	require.Len(t, seen, 16)
}

func TestMaterializeAppendsToExistingBuffer(t *testing.T) {
	buckets := load(t, "ab\n")
	chains := Enumerate(2, 1, 1, buckets)
	require.Len(t, chains, 1)

	dst := []byte("prefix:")
	dst = Materialize(chains[0], bigint.Zero(), buckets, dst)
	require.Equal(t, "prefix:ab", string(dst))
}
