package card

import (
	"fmt"
	"math/rand/v2"
)

// Suit 定义花色
type Suit string

const (
	Spades   Suit = "SPADES"
	Diamonds Suit = "DIAMONDS"
	Clubs    Suit = "CLUBS"
	Hearts   Suit = "HEARTS"
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spades:   "♠",
	Hearts:   "♥",
	Clubs:    "♣",
	Diamonds: "♦",
}

func (s Suit) Symbol() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// trumpCycle is the per-round trump rotation, starting at round 1.
var trumpCycle = [4]Suit{Spades, Diamonds, Clubs, Hearts}

// TrumpForRound returns the trump suit for a 1-based round number.
func TrumpForRound(round int) Suit {
	return trumpCycle[(round-1)%len(trumpCycle)]
}

// Face card values. Number cards use their pip value directly.
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14

	MinValue = 2
	MaxValue = Ace
)

// valueNames 牌面值字符串映射表
var valueNames = map[int]string{
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// Card 定义一张牌。Equality is by (suit, value).
type Card struct {
	Suit  Suit `json:"suit"`
	Value int  `json:"value"`
}

func (c Card) String() string {
	if name, ok := valueNames[c.Value]; ok {
		return name + c.Suit.Symbol()
	}
	return fmt.Sprintf("%d%s", c.Value, c.Suit.Symbol())
}

// Beats reports whether c wins over other in a trick with the given
// trump and lead suits. A card of neither suit can never win.
func (c Card) Beats(other Card, trump, lead Suit) bool {
	if c.Suit == trump && other.Suit != trump {
		return true
	}
	if other.Suit == trump && c.Suit != trump {
		return false
	}
	if c.Suit == other.Suit {
		return c.Value > other.Value
	}
	// Different non-trump suits: only the lead suit can take the trick.
	return c.Suit == lead && other.Suit != lead
}

// Deck 定义一副牌
type Deck []Card

// NewDeck returns the 52 (suit, value) combinations in a fixed order.
func NewDeck() Deck {
	deck := make(Deck, 0, 52)
	for _, s := range trumpCycle {
		for v := MinValue; v <= MaxValue; v++ {
			deck = append(deck, Card{Suit: s, Value: v})
		}
	}
	return deck
}

func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal partitions the top of the deck into numPlayers hands of
// cardsPerPlayer each, drawn round-robin without replacement.
func (d Deck) Deal(numPlayers, cardsPerPlayer int) ([][]Card, error) {
	need := numPlayers * cardsPerPlayer
	if need > len(d) {
		return nil, fmt.Errorf("deal %d cards to %d players: only %d in deck", cardsPerPlayer, numPlayers, len(d))
	}
	hands := make([][]Card, numPlayers)
	for i := range hands {
		hands[i] = make([]Card, 0, cardsPerPlayer)
	}
	for i := range need {
		hands[i%numPlayers] = append(hands[i%numPlayers], d[i])
	}
	return hands, nil
}
