package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ricrob/keypadsolver/keypad"
)

func newTestMemo(t *testing.T) (*CostMemo, *keypad.PairTable) {
	t.Helper()
	table, err := keypad.NewPairTable(keypad.NewDirectional())
	require.NoError(t, err)
	return NewCostMemo(table), table
}

func forEachPair(table *keypad.PairTable, fn func(p keypad.Pair)) {
	keys := table.Layout().Keys()
	for _, from := range keys {
		for _, to := range keys {
			fn(keypad.Pair{From: from, To: to})
		}
	}
}

func TestCostSingleLayer(t *testing.T) {
	memo, table := newTestMemo(t)

	forEachPair(table, func(p keypad.Pair) {
		seqs, err := table.Candidates(p)
		require.NoError(t, err)
		shortest := len(seqs[0])
		for _, s := range seqs[1:] {
			shortest = min(shortest, len(s))
		}

		got, err := memo.Cost(p, 1)
		require.NoError(t, err)
		require.Equal(t, shortest, got, p.String())
	})

	tests := []struct {
		pair keypad.Pair
		want int
	}{
		{keypad.Pair{From: keypad.KeyA, To: keypad.KeyLeft}, 4},
		{keypad.Pair{From: keypad.KeyLeft, To: keypad.KeyA}, 4},
		{keypad.Pair{From: keypad.KeyUp, To: keypad.KeyRight}, 3},
		{keypad.Pair{From: keypad.KeyDown, To: keypad.KeyRight}, 2},
	}
	for _, test := range tests {
		got, err := memo.Cost(test.pair, 1)
		require.NoError(t, err)
		require.Equal(t, test.want, got, test.pair.String())
	}
}

func TestCostIdenticalKeys(t *testing.T) {
	memo, table := newTestMemo(t)

	for _, k := range table.Layout().Keys() {
		for layers := 1; layers <= 25; layers++ {
			got, err := memo.Cost(keypad.Pair{From: k, To: k}, layers)
			require.NoError(t, err)
			require.Equal(t, 1, got)
		}
	}
}

func TestCostTwoLayers(t *testing.T) {
	memo, _ := newTestMemo(t)

	// A to < is typed as v<<A, which costs v<A <A A >>^A one layer up.
	got, err := memo.Cost(keypad.Pair{From: keypad.KeyA, To: keypad.KeyLeft}, 2)
	require.NoError(t, err)
	require.Equal(t, 10, got)
}

func TestCostMemoized(t *testing.T) {
	memo, _ := newTestMemo(t)

	p := keypad.Pair{From: keypad.KeyA, To: keypad.KeyLeft}
	want, err := memo.Cost(p, 25)
	require.NoError(t, err)
	require.LessOrEqual(t, memo.Size(), 25*25)

	size := memo.Size()
	got, err := memo.Cost(p, 25)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, size, memo.Size())
}

func TestCostStore(t *testing.T) {
	memo, _ := newTestMemo(t)

	p := keypad.Pair{From: keypad.KeyUp, To: keypad.KeyA}
	require.True(t, memo.Store(p, 3, 42))
	require.False(t, memo.Store(p, 3, 43))
	require.False(t, memo.Store(p, 0, 1))
	require.False(t, memo.Store(p, MaxLayers+1, 1))

	// a stored entry short-circuits the computation
	got, err := memo.Cost(p, 3)
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestCostErrors(t *testing.T) {
	memo, _ := newTestMemo(t)

	_, err := memo.Cost(keypad.Pair{From: keypad.KeyA, To: keypad.KeyUp}, 0)
	require.ErrorIs(t, err, ErrLayers)

	var uerr *keypad.UnknownKeyError
	_, err = memo.Cost(keypad.Pair{From: keypad.KeyA, To: keypad.Key5}, 2)
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, keypad.Key5, uerr.Key)
}
