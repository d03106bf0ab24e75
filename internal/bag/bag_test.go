package bag

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/blockfall/internal/piece"
)

func TestEachShapeTwicePerFourteen(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := New(rand.New(rand.NewSource(seed)))

		counts := make(map[piece.Shape]int)
		for i := 0; i < 14; i++ {
			counts[b.Next()]++
		}

		require.Len(t, counts, piece.Count, "seed %d", seed)
		for s, n := range counts {
			assert.Equal(t, 2, n, "seed %d shape %s", seed, s)
		}
	}
}

func TestEachCycleOfSevenIsPermutation(t *testing.T) {
	b := New(rand.New(rand.NewSource(7)))

	for cycle := 0; cycle < 20; cycle++ {
		seen := make(map[piece.Shape]bool)
		for i := 0; i < piece.Count; i++ {
			s := b.Next()
			assert.True(t, s.Valid())
			assert.False(t, seen[s], "cycle %d repeated %s", cycle, s)
			seen[s] = true
		}
	}
}

func TestPeekIsNextDraw(t *testing.T) {
	b := New(rand.New(rand.NewSource(99)))

	_, ok := b.Peek()
	assert.False(t, ok)

	b.Next()
	for i := 0; i < 30; i++ {
		preview, ok := b.Peek()
		require.True(t, ok)
		assert.Equal(t, preview, b.Next())
	}
}

func TestRefillOnlyWhenEmpty(t *testing.T) {
	b := New(rand.New(rand.NewSource(3)))

	// The first draw pops the current piece and the preview.
	b.Next()
	assert.Equal(t, 5, b.Remaining())

	for i := 0; i < 5; i++ {
		b.Next()
	}
	assert.Equal(t, 0, b.Remaining())

	// Refilled for the preview only.
	b.Next()
	assert.Equal(t, 6, b.Remaining())
}

func TestSameSeedSameSequence(t *testing.T) {
	b1 := New(rand.New(rand.NewSource(12345)))
	b2 := New(rand.New(rand.NewSource(12345)))

	for i := 0; i < 50; i++ {
		assert.Equal(t, b1.Next(), b2.Next(), "draw %d", i)
	}
}

func TestNilRandUsesTimeSeed(t *testing.T) {
	b := New(nil)
	assert.True(t, b.Next().Valid())
}
