// Package rule holds the pure predicates of Judgment: bid legality,
// suit-following, trick winner selection and the per-round deal schedule.
// Nothing here mutates state; phase and turn ownership are checked by the
// session that calls in.
package rule

import (
	"github.com/Sagarjari01/judgment/internal/apperrors"
	"github.com/Sagarjari01/judgment/internal/game/card"
)

// MaxCardsPerPlayer caps the deal schedule for small tables.
const MaxCardsPerPlayer = 13

// ValidateBid checks a bid against the hand size and, for the last bidder,
// the hook rule: the bid total must not equal the cards dealt this round.
func ValidateBid(bid, handSize int, isLastBidder bool, sumOfOtherBids int) error {
	if bid < 0 || bid > handSize {
		return apperrors.ErrBidOutOfRange
	}
	if isLastBidder && sumOfOtherBids+bid == handSize {
		return apperrors.ErrHookRule
	}
	return nil
}

// HasSuit reports whether the hand holds at least one card of the suit.
func HasSuit(hand []card.Card, suit card.Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// HoldsCard reports whether the hand contains the exact card.
func HoldsCard(hand []card.Card, c card.Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

// ValidatePlay checks a card play for hand membership and suit-following.
// leadSet is false for the first card of a trick, when any held card is legal.
func ValidatePlay(hand []card.Card, c card.Card, lead card.Suit, leadSet bool) error {
	if !HoldsCard(hand, c) {
		return apperrors.ErrCardNotInHand
	}
	if leadSet && c.Suit != lead && HasSuit(hand, lead) {
		return apperrors.ErrMustFollowSuit
	}
	return nil
}

// WinningIndex returns the index of the winning card of a trick, given the
// round's trump suit and the trick's lead suit. An empty trick has no
// winner (-1); a single card wins trivially.
func WinningIndex(trick []card.Card, trump, lead card.Suit) int {
	if len(trick) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(trick); i++ {
		if trick[i].Beats(trick[best], trump, lead) {
			best = i
		}
	}
	return best
}

// CardsForRound returns how many cards each player is dealt in a 1-based
// round: ascend 1..midpoint, plateau at the cap, then descend symmetrically
// toward the final round. The cap keeps every deal within one 52-card deck.
func CardsForRound(round, totalRounds, numPlayers int) int {
	maxCards := min(MaxCardsPerPlayer, 52/numPlayers)
	midpoint := min(maxCards, (totalRounds+1)/2)

	switch {
	case round <= midpoint:
		return round
	case round <= totalRounds-midpoint+1:
		return midpoint
	default:
		return totalRounds - round + 1
	}
}
