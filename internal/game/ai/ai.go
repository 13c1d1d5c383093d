// Package ai implements the opponent heuristics. Both entry points are
// pure functions of their arguments so AI turns are reproducible given the
// same deal.
package ai

import (
	"sort"

	"github.com/Sagarjari01/judgment/internal/game/card"
	"github.com/Sagarjari01/judgment/internal/game/rule"
)

// ChooseBid estimates how many tricks the hand can win: one per trump card
// plus one per high off-trump card (Jack or better), scaled down when
// earlier bids were aggressive. The last bidder dodges the hook rule by
// stepping the bid down (or up from zero) while staying within the hand.
func ChooseBid(hand []card.Card, trump card.Suit, cardsThisRound int, priorBids []int, isLastBidder bool) int {
	greedy := 0
	for _, c := range hand {
		if c.Suit == trump || c.Value >= card.Jack {
			greedy++
		}
	}

	bid := min(greedy, len(hand))

	// Someone already claimed more than half the tricks: back off one.
	for _, b := range priorBids {
		if b > cardsThisRound/2 {
			if bid > 0 {
				bid--
			}
			break
		}
	}

	if isLastBidder {
		sum := 0
		for _, b := range priorBids {
			sum += b
		}
		if sum+bid == cardsThisRound {
			if bid > 0 {
				bid--
			} else if bid < len(hand) {
				bid++
			}
		}
	}

	return max(0, min(bid, len(hand)))
}

// ChooseCard picks the card to play given the trick so far. Following the
// lead suit, it plays the cheapest card that currently wins the trick, or
// the cheapest follow-suit card if it cannot win. Off suit, it plays the
// cheapest winning trump if one exists, otherwise discards the lowest card
// in hand.
func ChooseCard(hand []card.Card, trick []card.Card, trump, lead card.Suit, leadSet bool) card.Card {
	if !leadSet && len(trick) > 0 {
		lead = trick[0].Suit
		leadSet = true
	}

	if leadSet {
		follow := filterSuit(hand, lead)
		if len(follow) > 0 {
			if winner := cheapestWinner(follow, trick, trump, lead); winner != nil {
				return *winner
			}
			return lowest(follow)
		}

		// Void in the lead suit: a minimal winning trump, if any.
		trumps := filterSuit(hand, trump)
		if len(trumps) > 0 {
			if winner := cheapestWinner(trumps, trick, trump, lead); winner != nil {
				return *winner
			}
		}
	}

	// Leading, or nothing worth spending: throw the lowest card.
	return lowest(hand)
}

// cheapestWinner returns the lowest-valued candidate that beats the current
// best card of the trick, or nil if none does.
func cheapestWinner(candidates, trick []card.Card, trump, lead card.Suit) *card.Card {
	best := rule.WinningIndex(trick, trump, lead)

	winners := make([]card.Card, 0, len(candidates))
	for _, c := range candidates {
		if best < 0 || c.Beats(trick[best], trump, lead) {
			winners = append(winners, c)
		}
	}
	if len(winners) == 0 {
		return nil
	}
	w := lowest(winners)
	return &w
}

func filterSuit(cards []card.Card, suit card.Suit) []card.Card {
	var out []card.Card
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// lowest returns the minimum card by value, ties broken by suit for
// determinism. Must not be called with an empty slice.
func lowest(cards []card.Card) card.Card {
	sorted := make([]card.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value < sorted[j].Value
		}
		return sorted[i].Suit < sorted[j].Suit
	})
	return sorted[0]
}
