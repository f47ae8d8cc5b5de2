package game

import (
	"fmt"
	"math/rand"
)

// Rand picks the index of the next card to deal. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// CardSource is anything a round can deal from.
type CardSource interface {
	DealCard() (Card, error)
}

type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n)
}

// NewRand returns a generator seeded with *seed, or the process-wide
// generator when seed is nil. A seeded generator must not be shared
// between rounds running concurrently.
func NewRand(seed *int64) Rand {
	if seed == nil {
		return globalRand{}
	}
	return rand.New(rand.NewSource(*seed))
}

type Deck struct {
	rng   Rand
	cards []Card
}

func NewDeck(rng Rand) *Deck {
	if rng == nil {
		rng = globalRand{}
	}

	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset puts all 52 cards back into the undealt set.
func (d *Deck) Reset() {
	d.cards = make([]Card, 0, len(Suits)*len(Ranks))

	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{suit: suit, rank: rank})
		}
	}
}

// DealCard removes a uniformly random card from the undealt set.
func (d *Deck) DealCard() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	i := d.rng.Intn(len(d.cards))
	if i < 0 || i >= len(d.cards) {
		return Card{}, fmt.Errorf("rand returned index %d for %d cards", i, len(d.cards))
	}

	card := d.cards[i]
	last := len(d.cards) - 1
	d.cards[i] = d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Undealt returns a copy of the cards still in the deck, in no particular order.
func (d *Deck) Undealt() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
