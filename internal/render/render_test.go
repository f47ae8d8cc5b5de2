package render

import (
	"testing"

	"blackjack-round/internal/game"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableStyling()
}

func card(t *testing.T, s game.Suit, r game.Rank) game.Card {
	t.Helper()
	c, err := game.NewCard(s, r)
	require.NoError(t, err)
	return c
}

func TestCards(t *testing.T) {
	got := Cards([]game.Card{card(t, game.Hearts, game.Ace), card(t, game.Clubs, game.Ten)})
	assert.Equal(t, "A♥ 10♣", got)
}

func TestRevealed(t *testing.T) {
	out := game.Outcome{
		PlayerCards: []game.Card{card(t, game.Hearts, game.Ace), card(t, game.Clubs, game.Six)},
		DealerCards: []game.Card{
			card(t, game.Spades, game.King),
			card(t, game.Spades, game.Six),
			card(t, game.Diamonds, game.Nine),
		},
	}

	assert.Equal(t, "You:    A♥ 6♣ (soft 17)\nDealer: K♠ 6♠ 9♦ (25, bust)", Revealed(out))
}

func TestHeadline(t *testing.T) {
	tests := []struct {
		name string
		out  game.Outcome
		want string
	}{
		{"blackjack", game.Outcome{Result: game.ResultPlayerWins, Reason: game.PhasePlayerBlackjack}, "Blackjack! You win!"},
		{"dealer bust", game.Outcome{Result: game.ResultPlayerWins, Reason: game.PhaseDealerBust}, "Dealer busts. You win!"},
		{"player bust", game.Outcome{Result: game.ResultDealerWins, Reason: game.PhasePlayerBust}, "Bust. Dealer wins."},
		{"stands push", game.Outcome{Result: game.ResultPush, Reason: game.PhaseDealerStands}, "Push."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Headline(tt.out))
		})
	}
}

func TestTable_HidesHoleCard(t *testing.T) {
	seed := int64(3)
	r, err := game.StartRound(game.NewRand(&seed))
	require.NoError(t, err)

	table := Table(r)
	assert.Contains(t, table, FaceDown)
	assert.Contains(t, table, r.DealerUpCard().String())
}
