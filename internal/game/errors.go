package game

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDeck     = errors.New("deck is empty")
	ErrRoundOver     = errors.New("round is already resolved")
	ErrNotPlayerTurn = errors.New("not the player's turn")
)

// InvalidCardSpecError is returned by NewCard for a suit or rank outside
// the standard 52-card enumerations.
type InvalidCardSpecError struct {
	Suit Suit
	Rank Rank
}

func (e *InvalidCardSpecError) Error() string {
	return fmt.Sprintf("invalid card: %s of %s", e.Rank, e.Suit)
}
