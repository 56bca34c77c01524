package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/cow-flashcards-bot/internal/repository"
)

func TestNewRound(t *testing.T) {
	state := NewRound(testCatalog(), &seqPicker{seq: []int{2}})

	assert.Equal(t, entities.RoundState{CurrentIndex: 2}, state)
}

func TestReduceInputChanged(t *testing.T) {
	cat := testCatalog()
	picker := &seqPicker{seq: []int{0}}

	start := entities.RoundState{
		CurrentIndex:    1,
		InputText:       "Bes",
		RevealAvailable: true,
		Result:          entities.ResultWrong,
	}

	got, err := Reduce(start, InputChanged("Bessie"), cat, picker)
	require.NoError(t, err)

	assert.Equal(t, "Bessie", got.InputText)
	assert.Equal(t, entities.ResultNone, got.Result, "editing hides the last result")
	assert.True(t, got.RevealAvailable, "editing keeps the reveal button")
	assert.Equal(t, 1, got.CurrentIndex)
	assert.Zero(t, picker.calls)
}

func TestReduceCheckWrong(t *testing.T) {
	cat := testCatalog()
	picker := &seqPicker{seq: []int{0}}

	start := entities.RoundState{CurrentIndex: 0, InputText: "Bennyy"}

	got, err := Reduce(start, Check(), cat, picker)
	require.NoError(t, err)

	assert.Equal(t, entities.ResultWrong, got.Result)
	assert.True(t, got.RevealAvailable)
	assert.False(t, got.NameRevealed)
	assert.Equal(t, 0, got.CurrentIndex)
	assert.Equal(t, "Bennyy", got.InputText, "wrong guess stays in the field")
	assert.Zero(t, picker.calls, "no new cow on a wrong guess")
}

func TestReduceCheckCorrectResetsRound(t *testing.T) {
	cat := testCatalog()
	picker := &seqPicker{seq: []int{2}}

	start := entities.RoundState{
		CurrentIndex:    0,
		InputText:       " bENNY ",
		RevealAvailable: true,
		NameRevealed:    true,
		Result:          entities.ResultWrong,
	}

	got, err := Reduce(start, Check(), cat, picker)
	require.NoError(t, err)

	assert.Equal(t, entities.RoundState{
		CurrentIndex: 2,
		Result:       entities.ResultCorrect,
	}, got)
	assert.Equal(t, 1, picker.calls)
}

func TestReduceCheckCorrectMayRepeatCow(t *testing.T) {
	cat := testCatalog()

	got, err := Reduce(entities.RoundState{CurrentIndex: 1, InputText: "Bessie", RevealAvailable: true},
		Check(), cat, &seqPicker{seq: []int{1}})
	require.NoError(t, err)

	assert.Equal(t, 1, got.CurrentIndex)
	assert.False(t, got.RevealAvailable)
	assert.False(t, got.NameRevealed)
	assert.Equal(t, entities.ResultCorrect, got.Result)
}

func TestReduceReveal(t *testing.T) {
	cat := testCatalog()
	picker := &seqPicker{seq: []int{0}}

	t.Run("before any wrong guess", func(t *testing.T) {
		start := entities.RoundState{CurrentIndex: 2}

		got, err := Reduce(start, Reveal(), cat, picker)
		require.NoError(t, err)
		assert.Equal(t, start, got)
	})

	t.Run("after a wrong guess", func(t *testing.T) {
		state := entities.RoundState{CurrentIndex: 2, InputText: "nope"}

		state, err := Reduce(state, Check(), cat, picker)
		require.NoError(t, err)
		require.True(t, state.RevealAvailable)

		state, err = Reduce(state, Reveal(), cat, picker)
		require.NoError(t, err)
		assert.True(t, state.NameRevealed)
		assert.Equal(t, 2, state.CurrentIndex)
	})

	assert.Zero(t, picker.calls)
}

func TestReduceDoesNotModifyInput(t *testing.T) {
	cat := testCatalog()
	start := entities.RoundState{CurrentIndex: 0, InputText: "x"}

	_, err := Reduce(start, Check(), cat, &seqPicker{seq: []int{0}})
	require.NoError(t, err)

	assert.Equal(t, entities.RoundState{CurrentIndex: 0, InputText: "x"}, start)
}

func TestReduceErrors(t *testing.T) {
	cat := testCatalog()
	picker := &seqPicker{seq: []int{0}}

	_, err := Reduce(entities.RoundState{}, Event{Kind: 99}, cat, picker)
	assert.ErrorIs(t, err, ErrUnknownEvent)

	_, err = Reduce(entities.RoundState{CurrentIndex: 7}, Check(), cat, picker)
	assert.ErrorIs(t, err, repository.ErrIndexOutOfRange)
}

func TestIndexPickerCoversWholeRange(t *testing.T) {
	const size = 39
	picker := NewIndexPicker(1)

	seen := make(map[int]int, size)
	for i := 0; i < 10_000; i++ {
		idx := picker.Pick(size)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, size)
		seen[idx]++
	}

	assert.Len(t, seen, size)
	for idx, n := range seen {
		// Uniform draws land near 256 per index.
		assert.Greater(t, n, 100, "index %d drawn %d times", idx, n)
	}
}

func TestIndexPickerSeedIsDeterministic(t *testing.T) {
	a, b := NewIndexPicker(42), NewIndexPicker(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Pick(39), b.Pick(39))
	}
}
