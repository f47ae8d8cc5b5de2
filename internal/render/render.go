// Package render draws cards and rounds for a terminal.
package render

import (
	"fmt"
	"strings"

	"blackjack-round/internal/game"

	"github.com/pterm/pterm"
)

// FaceDown stands in for the Dealer's hole card.
const FaceDown = "▓▓"

func Card(c game.Card) string {
	if c.Suit().Red() {
		return pterm.LightRed(c.String())
	}
	return pterm.LightWhite(c.String())
}

func Cards(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

func total(cards []game.Card) string {
	h := game.NewHand(cards...)
	switch {
	case h.IsBlackjack():
		return "blackjack"
	case h.IsBust():
		return fmt.Sprintf("%d, bust", h.BestTotal())
	case h.IsSoft():
		return fmt.Sprintf("soft %d", h.BestTotal())
	}
	return fmt.Sprintf("%d", h.BestTotal())
}

// Table shows the Player's hand and only the Dealer's up-card.
func Table(r *game.Round) string {
	player := r.PlayerHand()
	return fmt.Sprintf("You:    %s (%s)\nDealer: %s %s",
		Cards(player), total(player), Card(r.DealerUpCard()), FaceDown)
}

// Revealed shows both hands in full.
func Revealed(out game.Outcome) string {
	return fmt.Sprintf("You:    %s (%s)\nDealer: %s (%s)",
		Cards(out.PlayerCards), total(out.PlayerCards),
		Cards(out.DealerCards), total(out.DealerCards))
}

func Headline(out game.Outcome) string {
	var reason string
	switch out.Reason {
	case game.PhasePlayerBlackjack:
		reason = "Blackjack! "
	case game.PhasePlayerBust:
		reason = "Bust. "
	case game.PhaseDealerBlackjack:
		reason = "Dealer has blackjack. "
	case game.PhaseDealerBust:
		reason = "Dealer busts. "
	}

	switch out.Result {
	case game.ResultPlayerWins:
		return reason + "You win!"
	case game.ResultDealerWins:
		return reason + "Dealer wins."
	case game.ResultPush:
		return reason + "Push."
	}
	return reason
}

// PrintOutcome writes the revealed table and a colored headline.
func PrintOutcome(out game.Outcome) {
	pterm.DefaultSection.Println("Result")
	pterm.Println(Revealed(out))

	switch out.Result {
	case game.ResultPlayerWins:
		pterm.Success.Println(Headline(out))
	case game.ResultDealerWins:
		pterm.Error.Println(Headline(out))
	default:
		pterm.Info.Println(Headline(out))
	}
}
