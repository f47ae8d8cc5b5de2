package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) Rand {
	return NewRand(&seed)
}

func TestNewDeck(t *testing.T) {
	d := NewDeck(seeded(1))

	assert.Equal(t, 52, d.Remaining())

	seen := make(map[Card]bool)
	for _, c := range d.Undealt() {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestDeck_DealCard(t *testing.T) {
	d := NewDeck(seeded(42))
	seen := make(map[Card]bool)

	for i := 0; i < 52; i++ {
		c, err := d.DealCard()
		require.NoError(t, err)

		assert.False(t, seen[c], "card %s dealt twice", c)
		seen[c] = true
		assert.Equal(t, 52-i-1, d.Remaining())
		assert.NotContains(t, d.Undealt(), c)
	}

	_, err := d.DealCard()
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, 0, d.Remaining())
}

func TestDeck_Reset(t *testing.T) {
	d := NewDeck(seeded(7))

	for i := 0; i < 10; i++ {
		_, err := d.DealCard()
		require.NoError(t, err)
	}
	require.Equal(t, 42, d.Remaining())

	d.Reset()
	assert.Equal(t, 52, d.Remaining())

	d.Reset()
	assert.Equal(t, 52, d.Remaining())
}

func TestDeck_SameSeedSameDeal(t *testing.T) {
	a := NewDeck(seeded(99))
	b := NewDeck(seeded(99))

	for i := 0; i < 52; i++ {
		ca, err := a.DealCard()
		require.NoError(t, err)
		cb, err := b.DealCard()
		require.NoError(t, err)
		assert.Equal(t, ca, cb)
	}
}

func TestDeck_NilRand(t *testing.T) {
	d := NewDeck(nil)

	_, err := d.DealCard()
	require.NoError(t, err)
	assert.Equal(t, 51, d.Remaining())
}

type fixedRand int

func (f fixedRand) Intn(int) int {
	return int(f)
}

func TestDeck_BadRandIndex(t *testing.T) {
	d := NewDeck(fixedRand(-1))

	_, err := d.DealCard()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyDeck))
	assert.Equal(t, 52, d.Remaining())
}
