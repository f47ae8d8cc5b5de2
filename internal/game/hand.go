package game

import "sort"

const (
	blackjackTotal  = 21
	dealerStandsOn  = 17
	blackjackLength = 2
)

type HandStatus int

const (
	HandActive HandStatus = iota
	HandBlackjack
	HandBust
)

func (s HandStatus) String() string {
	switch s {
	case HandBlackjack:
		return "blackjack"
	case HandBust:
		return "bust"
	default:
		return "active"
	}
}

// Hand is the ordered run of cards one participant holds for a round.
type Hand struct {
	cards []Card
}

func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, 10)}
	h.cards = append(h.cards, cards...)
	return h
}

func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Totals lists every distinct total reachable by counting each Ace as
// either 11 or 1, in ascending order.
func (h *Hand) Totals() []int {
	totals := map[int]struct{}{0: {}}

	for _, c := range h.cards {
		next := make(map[int]struct{}, len(totals)*2)
		for t := range totals {
			for _, v := range c.Values() {
				next[t+v] = struct{}{}
			}
		}
		totals = next
	}

	out := make([]int, 0, len(totals))
	for t := range totals {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}

// BestTotal is the largest total not over 21, or the smallest total when
// every total is over 21.
func (h *Hand) BestTotal() int {
	totals := h.Totals()

	for i := len(totals) - 1; i >= 0; i-- {
		if totals[i] <= blackjackTotal {
			return totals[i]
		}
	}
	return totals[0]
}

func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == blackjackLength && h.BestTotal() == blackjackTotal
}

func (h *Hand) IsBust() bool {
	return h.BestTotal() > blackjackTotal
}

// IsSoft reports whether the best total counts an Ace as 11.
func (h *Hand) IsSoft() bool {
	totals := h.Totals()
	best := h.BestTotal()
	return best <= blackjackTotal && best != totals[0]
}

func (h *Hand) Status() HandStatus {
	switch {
	case h.IsBlackjack():
		return HandBlackjack
	case h.IsBust():
		return HandBust
	default:
		return HandActive
	}
}
