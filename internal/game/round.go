package game

import (
	"fmt"

	"github.com/google/uuid"
)

type Phase int

const (
	PhaseDealt Phase = iota
	PhasePlayerBlackjack
	PhasePlayerBust
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseDealerBlackjack
	PhaseDealerBust
	PhaseDealerStands
	PhaseResolved
	PhaseAborted
)

var phaseNames = map[Phase]string{
	PhaseDealt:           "dealt",
	PhasePlayerBlackjack: "player_blackjack",
	PhasePlayerBust:      "player_bust",
	PhasePlayerTurn:      "player_turn",
	PhaseDealerTurn:      "dealer_turn",
	PhaseDealerBlackjack: "dealer_blackjack",
	PhaseDealerBust:      "dealer_bust",
	PhaseDealerStands:    "dealer_stands",
	PhaseResolved:        "resolved",
	PhaseAborted:         "aborted",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

type Result int

const (
	ResultNone Result = iota
	ResultPlayerWins
	ResultDealerWins
	ResultPush
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWins:
		return "player wins"
	case ResultDealerWins:
		return "dealer wins"
	case ResultPush:
		return "push"
	default:
		return "none"
	}
}

// Outcome is the final, fully revealed state of a resolved round.
type Outcome struct {
	Result      Result
	Reason      Phase
	PlayerCards []Card
	DealerCards []Card
	PlayerTotal int
	DealerTotal int
}

// Round is one Player-vs-Dealer hand of blackjack. It is not safe for
// concurrent use.
type Round struct {
	id      uuid.UUID
	src     CardSource
	player  *Hand
	dealer  *Hand
	phase   Phase
	history []Phase
	outcome *Outcome
	err     error
}

// StartRound deals a new round from a fresh deck driven by rng.
func StartRound(rng Rand) (*Round, error) {
	return NewRound(NewDeck(rng))
}

// NewRound deals two cards to the Player, then two to the Dealer, and
// settles any immediate blackjack or bust. The returned round is either
// resolved or waiting on the Player.
func NewRound(src CardSource) (*Round, error) {
	r := &Round{
		id:     uuid.New(),
		src:    src,
		player: NewHand(),
		dealer: NewHand(),
	}

	for _, h := range []*Hand{r.player, r.player, r.dealer, r.dealer} {
		if err := r.draw(h); err != nil {
			return nil, fmt.Errorf("failed to deal round: %w", err)
		}
	}

	r.enter(PhaseDealt)

	switch {
	case r.player.IsBlackjack():
		r.enter(PhasePlayerBlackjack)
		if r.dealer.IsBlackjack() {
			r.finish(ResultPush, PhasePlayerBlackjack)
		} else {
			r.finish(ResultPlayerWins, PhasePlayerBlackjack)
		}
	case r.player.IsBust():
		r.enter(PhasePlayerBust)
		r.finish(ResultDealerWins, PhasePlayerBust)
	default:
		r.enter(PhasePlayerTurn)
	}

	return r, nil
}

func (r *Round) ID() uuid.UUID {
	return r.id
}

func (r *Round) Phase() Phase {
	return r.phase
}

// History lists every phase the round has entered, in order.
func (r *Round) History() []Phase {
	out := make([]Phase, len(r.history))
	copy(out, r.history)
	return out
}

func (r *Round) PlayerHand() []Card {
	return r.player.Cards()
}

func (r *Round) PlayerTotal() int {
	return r.player.BestTotal()
}

// DealerUpCard is the one Dealer card the Player sees before resolution.
func (r *Round) DealerUpCard() Card {
	return r.dealer.cards[0]
}

func (r *Round) IsResolved() bool {
	return r.phase == PhaseResolved
}

// Outcome returns the result of a resolved round, or false if the round
// is still live or was aborted.
func (r *Round) Outcome() (Outcome, bool) {
	if r.outcome == nil {
		return Outcome{}, false
	}
	return *r.outcome, true
}

// Hit deals one more card to the Player. A bust resolves the round
// immediately in the Dealer's favour.
func (r *Round) Hit() (Card, error) {
	if err := r.checkLive(); err != nil {
		return Card{}, err
	}
	if r.phase != PhasePlayerTurn {
		return Card{}, ErrNotPlayerTurn
	}

	if err := r.draw(r.player); err != nil {
		r.abort(err)
		return Card{}, r.err
	}
	card := r.player.cards[len(r.player.cards)-1]

	if r.player.IsBust() {
		r.enter(PhasePlayerBust)
		r.finish(ResultDealerWins, PhasePlayerBust)
	}
	return card, nil
}

// Resolve ends the Player's turn, plays the Dealer's fixed policy and
// returns the outcome. Calling it on a resolved round returns the same
// outcome again.
func (r *Round) Resolve() (Outcome, error) {
	if r.phase == PhaseResolved {
		return *r.outcome, nil
	}
	if err := r.checkLive(); err != nil {
		return Outcome{}, err
	}

	if err := r.dealerTurn(); err != nil {
		r.abort(err)
		return Outcome{}, r.err
	}
	return *r.outcome, nil
}

func (r *Round) dealerTurn() error {
	r.enter(PhaseDealerTurn)

	if r.dealer.IsBlackjack() {
		r.enter(PhaseDealerBlackjack)
		r.finish(ResultDealerWins, PhaseDealerBlackjack)
		return nil
	}

	for r.dealer.BestTotal() < dealerStandsOn {
		if err := r.draw(r.dealer); err != nil {
			return err
		}
		if r.dealer.IsBust() {
			r.enter(PhaseDealerBust)
			r.finish(ResultPlayerWins, PhaseDealerBust)
			return nil
		}
	}

	r.enter(PhaseDealerStands)

	player, dealer := r.player.BestTotal(), r.dealer.BestTotal()
	switch {
	case player > dealer:
		r.finish(ResultPlayerWins, PhaseDealerStands)
	case player < dealer:
		r.finish(ResultDealerWins, PhaseDealerStands)
	default:
		r.finish(ResultPush, PhaseDealerStands)
	}
	return nil
}

func (r *Round) checkLive() error {
	switch r.phase {
	case PhaseResolved:
		return ErrRoundOver
	case PhaseAborted:
		return r.err
	}
	return nil
}

func (r *Round) draw(h *Hand) error {
	card, err := r.src.DealCard()
	if err != nil {
		return err
	}
	h.AddCard(card)
	return nil
}

func (r *Round) enter(p Phase) {
	r.phase = p
	r.history = append(r.history, p)
}

func (r *Round) finish(result Result, reason Phase) {
	r.outcome = &Outcome{
		Result:      result,
		Reason:      reason,
		PlayerCards: r.player.Cards(),
		DealerCards: r.dealer.Cards(),
		PlayerTotal: r.player.BestTotal(),
		DealerTotal: r.dealer.BestTotal(),
	}
	r.enter(PhaseResolved)
}

func (r *Round) abort(err error) {
	r.err = fmt.Errorf("round %s aborted: %w", r.id, err)
	r.enter(PhaseAborted)
}
