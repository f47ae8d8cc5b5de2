package game

// stackedDeck deals cards in the order given.
type stackedDeck struct {
	cards []Card
}

func (s *stackedDeck) DealCard() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := s.cards[0]
	s.cards = s.cards[1:]
	return c, nil
}

func stack(cards ...Card) *stackedDeck {
	return &stackedDeck{cards: cards}
}

func mustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// ranks builds cards of the given ranks, cycling through the suits.
func ranks(rs ...Rank) []Card {
	out := make([]Card, 0, len(rs))
	for i, r := range rs {
		out = append(out, mustCard(Suits[i%len(Suits)], r))
	}
	return out
}
