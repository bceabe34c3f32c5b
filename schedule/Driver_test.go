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

	"github.com/flanglet/prince-go/bigint"
	"github.com/flanglet/prince-go/sink"
	"github.com/flanglet/prince-go/wordlist"
	"github.com/stretchr/testify/require"
)

func zero() *bigint.Value { return bigint.Zero() }

// TestFullRunTwoOneLetterWords runs the driver end to end over two
// one-letter words and checks the emitted candidate order.
func TestFullRunTwoOneLetterWords(t *testing.T) {
	buckets, err := wordlist.Load(strings.NewReader("a\nb\n"))
	require.NoError(t, err)

	d, err := NewDriver(2, 2, 2, 8, buckets, NewDefaultWordlenDist(), zero(), zero())
	require.NoError(t, err)
	require.Equal(t, "4", d.TotalKsCnt().String())

	out := sink.NewMemory()
	require.NoError(t, d.Run(out))
	require.Equal(t, "aa\nba\nab\nbb\n", out.String())
}

// TestSkipLimitYieldsMiddleSlice checks that skip=1, limit=2 over the
// same input as TestFullRunTwoOneLetterWords yields exactly positions
// [1, 3) of the full candidate sequence.
func TestSkipLimitYieldsMiddleSlice(t *testing.T) {
	buckets, err := wordlist.Load(strings.NewReader("a\nb\n"))
	require.NoError(t, err)

	d, err := NewDriver(2, 2, 2, 8, buckets, NewDefaultWordlenDist(), bigint.FromUint64(1), bigint.FromUint64(2))
	require.NoError(t, err)

	out := sink.NewMemory()
	require.NoError(t, d.Run(out))
	require.Equal(t, "ba\nab\n", out.String())
}

// TestSkipLimitEquivalence checks that a (skip, limit) run produces
// exactly the slice of lines a full run would have produced at
// [skip, skip+limit).
func TestSkipLimitEquivalence(t *testing.T) {
	buckets, err := wordlist.Load(strings.NewReader("a\nb\nc\nab\ncd\n"))
	require.NoError(t, err)

	full, err := NewDriver(2, 2, 1, 2, buckets, NewDefaultWordlenDist(), zero(), zero())
	require.NoError(t, err)
	fullOut := sink.NewMemory()
	require.NoError(t, full.Run(fullOut))
	fullLines := strings.Split(strings.TrimSuffix(fullOut.String(), "\n"), "\n")

	partial, err := NewDriver(2, 2, 1, 2, buckets, NewDefaultWordlenDist(), bigint.FromUint64(3), bigint.FromUint64(5))
	require.NoError(t, err)
	partialOut := sink.NewMemory()
	require.NoError(t, partial.Run(partialOut))
	partialLines := strings.Split(strings.TrimSuffix(partialOut.String(), "\n"), "\n")

	require.Equal(t, fullLines[3:8], partialLines)
}

// TestConservation checks that for a full run (skip=0, limit=0) the total
// bytes emitted equal sum((L+1)*ks_cnt).
func TestConservation(t *testing.T) {
	buckets, err := wordlist.Load(strings.NewReader("a\nbb\nccc\nd\ne\n"))
	require.NoError(t, err)

	const pwMin, pwMax = 1, 3
	d, err := NewDriver(pwMin, pwMax, 1, 8, buckets, NewDefaultWordlenDist(), zero(), zero())
	require.NoError(t, err)

	out := sink.NewMemory()
	require.NoError(t, d.Run(out))

	expected := 0

	for l := pwMin; l <= pwMax; l++ {
		for _, c := range d.states[l].Chains {
			expected += (l + 1) * int(c.KsCnt.Uint64())
		}
	}

	require.Equal(t, expected, len(out.Bytes()))
}

// TestDeterminism checks that identical inputs produce byte-identical
// output.
func TestDeterminism(t *testing.T) {
	run := func() string {
		buckets, err := wordlist.Load(strings.NewReader("a\nbb\nccc\nd\ne\nfoo\n"))
		require.NoError(t, err)
		d, err := NewDriver(1, 3, 1, 8, buckets, NewDefaultWordlenDist(), zero(), zero())
		require.NoError(t, err)
		out := sink.NewMemory()
		require.NoError(t, d.Run(out))
		return out.String()
	}

	require.Equal(t, run(), run())
}

func TestNewDriverSkipTooLarge(t *testing.T) {
	buckets, err := wordlist.Load(strings.NewReader("a\nb\n"))
	require.NoError(t, err)

	_, err = NewDriver(2, 2, 2, 2, buckets, NewDefaultWordlenDist(), bigint.FromUint64(5), zero())
	require.ErrorIs(t, err, ErrSkipOutOfRange)
}

func TestNewDriverLimitTooLarge(t *testing.T) {
	buckets, err := wordlist.Load(strings.NewReader("a\nb\n"))
	require.NoError(t, err)

	_, err = NewDriver(2, 2, 2, 2, buckets, NewDefaultWordlenDist(), zero(), bigint.FromUint64(5))
	require.ErrorIs(t, err, ErrLimitOutOfRange)
}

func TestNewDriverSkipPlusLimitTooLarge(t *testing.T) {
	buckets, err := wordlist.Load(strings.NewReader("a\nb\n"))
	require.NoError(t, err)

	_, err = NewDriver(2, 2, 2, 2, buckets, NewDefaultWordlenDist(), bigint.FromUint64(2), bigint.FromUint64(3))
	require.ErrorIs(t, err, ErrSkipLimitOutOfRange)
}

// TestKeyspaceViaDriver checks total keyspace through the driver's public
// TotalKsCnt, as the CLI's --keyspace mode does.
func TestKeyspaceViaDriver(t *testing.T) {
	buckets, err := wordlist.Load(strings.NewReader("a\nbb\n"))
	require.NoError(t, err)

	d, err := NewDriver(1, 2, 1, 2, buckets, NewDefaultWordlenDist(), zero(), zero())
	require.NoError(t, err)
	require.Equal(t, "3", d.TotalKsCnt().String())
}

// TestLengthSummaries checks that the per-length breakdown is ordered
// ascending by length and that each entry's keyspace matches the sum
// over that length's chains.
func TestLengthSummaries(t *testing.T) {
	buckets, err := wordlist.Load(strings.NewReader("a\nbb\nccc\n"))
	require.NoError(t, err)

	d, err := NewDriver(1, 3, 1, 2, buckets, NewDefaultWordlenDist(), zero(), zero())
	require.NoError(t, err)

	summaries := d.LengthSummaries()
	require.Len(t, summaries, 3)

	for i, s := range summaries {
		require.Equal(t, i+1, s.Length)
		require.Equal(t, len(d.states[s.Length].Chains), s.ChainCnt)
		require.Equal(t, d.states[s.Length].TotalKsCnt().String(), s.KsCnt.String())
	}
}
