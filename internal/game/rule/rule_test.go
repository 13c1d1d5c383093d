package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sagarjari01/judgment/internal/apperrors"
	"github.com/Sagarjari01/judgment/internal/game/card"
)

func TestValidateBid_Range(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateBid(0, 5, false, 0))
	assert.NoError(t, ValidateBid(5, 5, false, 0))
	assert.ErrorIs(t, ValidateBid(-1, 5, false, 0), apperrors.ErrBidOutOfRange)
	assert.ErrorIs(t, ValidateBid(6, 5, false, 0), apperrors.ErrBidOutOfRange)
}

func TestValidateBid_HookRule(t *testing.T) {
	t.Parallel()

	// 5 cards dealt, earlier bids sum to 3: the last bidder may bid
	// anything in range except 2.
	const handSize, sumOfOthers = 5, 3
	for bid := 0; bid <= handSize; bid++ {
		err := ValidateBid(bid, handSize, true, sumOfOthers)
		if sumOfOthers+bid == handSize {
			assert.ErrorIs(t, err, apperrors.ErrHookRule, "bid %d must be forbidden", bid)
		} else {
			assert.NoError(t, err, "bid %d must be allowed", bid)
		}
	}

	// Not the last bidder: the forbidden value is fine.
	assert.NoError(t, ValidateBid(2, handSize, false, sumOfOthers))
}

func TestValidatePlay_FollowSuit(t *testing.T) {
	t.Parallel()

	hand := []card.Card{
		{Suit: card.Hearts, Value: 4},
		{Suit: card.Hearts, Value: 9},
		{Suit: card.Clubs, Value: card.Ace},
	}

	// Holding the lead suit: any heart is legal, the club is not.
	assert.NoError(t, ValidatePlay(hand, card.Card{Suit: card.Hearts, Value: 4}, card.Hearts, true))
	assert.NoError(t, ValidatePlay(hand, card.Card{Suit: card.Hearts, Value: 9}, card.Hearts, true))
	assert.ErrorIs(t,
		ValidatePlay(hand, card.Card{Suit: card.Clubs, Value: card.Ace}, card.Hearts, true),
		apperrors.ErrMustFollowSuit)

	// Void in the lead suit: anything held is legal.
	assert.NoError(t, ValidatePlay(hand, card.Card{Suit: card.Clubs, Value: card.Ace}, card.Diamonds, true))

	// First card of a trick: no lead suit to follow.
	assert.NoError(t, ValidatePlay(hand, card.Card{Suit: card.Clubs, Value: card.Ace}, "", false))

	// Card not held at all.
	assert.ErrorIs(t,
		ValidatePlay(hand, card.Card{Suit: card.Spades, Value: 2}, "", false),
		apperrors.ErrCardNotInHand)
}

func TestWinningIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		trick    []card.Card
		trump    card.Suit
		lead     card.Suit
		expected int
	}{
		{
			name:     "empty trick has no winner",
			trick:    nil,
			trump:    card.Spades,
			lead:     card.Hearts,
			expected: -1,
		},
		{
			name:     "single card wins trivially",
			trick:    []card.Card{{Suit: card.Hearts, Value: 2}},
			trump:    card.Spades,
			lead:     card.Hearts,
			expected: 0,
		},
		{
			name: "highest lead suit wins without trumps",
			trick: []card.Card{
				{Suit: card.Hearts, Value: 9},
				{Suit: card.Hearts, Value: card.King},
				{Suit: card.Diamonds, Value: card.Ace}, // discard, cannot win
			},
			trump:    card.Spades,
			lead:     card.Hearts,
			expected: 1,
		},
		{
			name: "lowest trump beats highest lead",
			trick: []card.Card{
				{Suit: card.Hearts, Value: card.Ace},
				{Suit: card.Spades, Value: 2},
				{Suit: card.Hearts, Value: card.King},
			},
			trump:    card.Spades,
			lead:     card.Hearts,
			expected: 1,
		},
		{
			name: "highest of several trumps wins",
			trick: []card.Card{
				{Suit: card.Spades, Value: 5},
				{Suit: card.Spades, Value: card.Queen},
				{Suit: card.Spades, Value: 7},
			},
			trump:    card.Spades,
			lead:     card.Spades,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := WinningIndex(tt.trick, tt.trump, tt.lead)
			assert.Equal(t, tt.expected, got)

			// Same trick, same result: the selection is deterministic.
			assert.Equal(t, got, WinningIndex(tt.trick, tt.trump, tt.lead))
		})
	}
}

func TestCardsForRound_Schedule(t *testing.T) {
	t.Parallel()

	// 6 rounds, 3 players: 1 2 3 3 2 1
	expected := []int{1, 2, 3, 3, 2, 1}
	for round := 1; round <= 6; round++ {
		assert.Equal(t, expected[round-1], CardsForRound(round, 6, 3), "round %d", round)
	}

	// 7 rounds, 4 players: 1 2 3 4 3 2 1
	expected = []int{1, 2, 3, 4, 3, 2, 1}
	for round := 1; round <= 7; round++ {
		assert.Equal(t, expected[round-1], CardsForRound(round, 7, 4), "round %d", round)
	}
}

func TestCardsForRound_PlateauAndDeckBound(t *testing.T) {
	t.Parallel()

	// Long game plateaus at the 13-card cap.
	const totalRounds = 30
	sawCap := false
	for round := 1; round <= totalRounds; round++ {
		n := CardsForRound(round, totalRounds, 4)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, MaxCardsPerPlayer)
		if n == MaxCardsPerPlayer {
			sawCap = true
		}
	}
	assert.True(t, sawCap)

	// Every (players, rounds) combination stays within one 52-card deck.
	for players := 3; players <= 8; players++ {
		maxRounds := 2*min(MaxCardsPerPlayer, 52/players) - 1
		for rounds := 6; rounds <= maxRounds; rounds++ {
			for round := 1; round <= rounds; round++ {
				n := CardsForRound(round, rounds, players)
				assert.LessOrEqual(t, n*players, 52,
					"players=%d rounds=%d round=%d deals %d cards", players, rounds, round, n)
			}
		}
	}

	// The schedule is symmetric: round r and its mirror deal the same.
	for rounds := 6; rounds <= 25; rounds++ {
		for round := 1; round <= rounds; round++ {
			assert.Equal(t,
				CardsForRound(round, rounds, 4),
				CardsForRound(rounds-round+1, rounds, 4),
				"rounds=%d round=%d", rounds, round)
		}
	}
}
