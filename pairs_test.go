package bytegram

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectPairs(t *testing.T, pr *PairReader) []BytePair {
	t.Helper()
	var out []BytePair
	for pr.Next() {
		out = append(out, pr.Pair())
	}
	return out
}

func TestPairReaderCount(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 8; n++ {
		src := bytes.Repeat([]byte{0xAB}, n)
		pr := NewPairReader(bytes.NewReader(src))
		got := collectPairs(t, pr)
		require.NoError(t, pr.Err())

		want := n - 1
		if want < 0 {
			want = 0
		}
		assert.Len(t, got, want, "source length %d", n)
		assert.Equal(t, int64(n), pr.BytesRead())
	}
}

func TestPairReaderOverlaps(t *testing.T) {
	t.Parallel()

	src := []byte{'a', 'b', 'c', 'd'}
	// iotest.OneByteReader hides the io.ByteReader so the bufio path runs.
	pr := NewPairReader(iotest.OneByteReader(bytes.NewReader(src)))
	got := collectPairs(t, pr)
	require.NoError(t, pr.Err())

	want := []BytePair{{'a', 'b'}, {'b', 'c'}, {'c', 'd'}}
	assert.Equal(t, want, got)
	assert.NotEqual(t, []BytePair{{'a', 'b'}, {'c', 'd'}}, got,
		"pairs must overlap, not chunk")
}

func TestPairReaderStopsAfterEnd(t *testing.T) {
	t.Parallel()

	pr := NewPairReader(bytes.NewReader([]byte{1, 2}))
	require.True(t, pr.Next())
	assert.Equal(t, BytePair{1, 2}, pr.Pair())
	assert.False(t, pr.Next())
	assert.False(t, pr.Next())
	assert.NoError(t, pr.Err())
}

func TestPairReaderReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("device error")
	r := iotest.TimeoutReader(iotest.HalfReader(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6})))
	pr := NewPairReader(r)
	collectPairs(t, pr)
	assert.ErrorIs(t, pr.Err(), iotest.ErrTimeout)

	pr = NewPairReader(iotest.ErrReader(boom))
	assert.False(t, pr.Next())
	assert.ErrorIs(t, pr.Err(), boom)
}

func TestPairsMatchesPairReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  []byte
	}{
		{"empty", nil},
		{"single", []byte{7}},
		{"text", []byte("hello, world")},
		{"binary", []byte{0, 0, 0, 0xff, 0x7f, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := NewPairReader(bytes.NewReader(tt.src))
			streamed := collectPairs(t, pr)
			require.NoError(t, pr.Err())
			assert.Equal(t, Pairs(tt.src), streamed)
		})
	}
}

func TestPairReaderDeterministic(t *testing.T) {
	t.Parallel()

	src := []byte("the quick brown fox jumps over the lazy dog")
	first := collectPairs(t, NewPairReader(bytes.NewReader(src)))
	second := collectPairs(t, NewPairReader(bytes.NewReader(src)))
	assert.Equal(t, first, second)
}
