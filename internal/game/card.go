package game

import "fmt"

type Suit uint8

const (
	Hearts Suit = iota + 1
	Diamonds
	Spades
	Clubs
)

var Suits = []Suit{Hearts, Diamonds, Spades, Clubs}

var suitNames = map[Suit]string{
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Spades:   "spades",
	Clubs:    "clubs",
}

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Spades:   "♠",
	Clubs:    "♣",
}

func (s Suit) Valid() bool {
	_, ok := suitNames[s]
	return ok
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("suit(%d)", uint8(s))
}

func (s Suit) Symbol() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = map[Rank]string{
	Two: "two", Three: "three", Four: "four", Five: "five", Six: "six",
	Seven: "seven", Eight: "eight", Nine: "nine", Ten: "ten",
	Jack: "jack", Queen: "queen", King: "king", Ace: "ace",
}

var rankShort = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6",
	Seven: "7", Eight: "8", Nine: "9", Ten: "10",
	Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

func (r Rank) Valid() bool {
	_, ok := rankNames[r]
	return ok
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rank(%d)", uint8(r))
}

func (r Rank) Short() string {
	if s, ok := rankShort[r]; ok {
		return s
	}
	return "?"
}

// Values returns the point values a card of this rank can count as.
// Ace is the only rank with two: 11 (soft) and 1 (hard).
func (r Rank) Values() []int {
	switch {
	case r == Ace:
		return []int{11, 1}
	case r >= Ten && r <= King:
		return []int{10}
	case r.Valid():
		return []int{int(r)}
	}
	return nil
}

// Card is an immutable playing card.
type Card struct {
	suit Suit
	rank Rank
}

func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() || !rank.Valid() {
		return Card{}, &InvalidCardSpecError{Suit: suit, Rank: rank}
	}
	return Card{suit: suit, rank: rank}, nil
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Values() []int {
	return c.rank.Values()
}

func (c Card) IsAce() bool {
	return c.rank == Ace
}

func (c Card) String() string {
	return c.rank.Short() + c.suit.Symbol()
}
