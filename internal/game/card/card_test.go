package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	assert.Len(t, deck, 52)

	// No duplicates, 13 values per suit
	seen := make(map[Card]bool)
	perSuit := make(map[Suit]int)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
		perSuit[c.Suit]++
		assert.GreaterOrEqual(t, c.Value, MinValue)
		assert.LessOrEqual(t, c.Value, MaxValue)
	}
	for _, s := range []Suit{Spades, Diamonds, Clubs, Hearts} {
		assert.Equal(t, 13, perSuit[s])
	}
}

func TestDeck_Shuffle(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	deck.Shuffle()

	// Shuffling must preserve the card multiset
	assert.Len(t, deck, 52)
	seen := make(map[Card]bool)
	for _, c := range deck {
		assert.False(t, seen[c])
		seen[c] = true
	}
}

func TestDeck_Deal(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	deck.Shuffle()

	hands, err := deck.Deal(4, 5)
	require.NoError(t, err)
	require.Len(t, hands, 4)

	seen := make(map[Card]bool)
	for _, hand := range hands {
		assert.Len(t, hand, 5)
		for _, c := range hand {
			assert.False(t, seen[c], "card %v dealt twice", c)
			seen[c] = true
		}
	}
}

func TestDeck_Deal_NotEnoughCards(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	_, err := deck.Deal(8, 7) // 56 > 52
	assert.Error(t, err)
}

func TestTrumpForRound(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Spades, TrumpForRound(1))
	assert.Equal(t, Diamonds, TrumpForRound(2))
	assert.Equal(t, Clubs, TrumpForRound(3))
	assert.Equal(t, Hearts, TrumpForRound(4))

	// 4-round cycle
	for round := 1; round <= 20; round++ {
		assert.Equal(t, TrumpForRound(round), TrumpForRound(round+4))
	}
}

func TestCard_Beats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     Card
		trump    Suit
		lead     Suit
		expected bool
	}{
		{
			name:     "trump beats non-trump regardless of value",
			a:        Card{Spades, 2},
			b:        Card{Hearts, Ace},
			trump:    Spades,
			lead:     Hearts,
			expected: true,
		},
		{
			name:     "non-trump loses to trump",
			a:        Card{Hearts, Ace},
			b:        Card{Spades, 2},
			trump:    Spades,
			lead:     Hearts,
			expected: false,
		},
		{
			name:     "same suit, higher value wins",
			a:        Card{Clubs, King},
			b:        Card{Clubs, Queen},
			trump:    Spades,
			lead:     Clubs,
			expected: true,
		},
		{
			name:     "same suit, lower value loses",
			a:        Card{Clubs, 3},
			b:        Card{Clubs, 4},
			trump:    Spades,
			lead:     Clubs,
			expected: false,
		},
		{
			name:     "off-suit card cannot beat lead suit",
			a:        Card{Diamonds, Ace},
			b:        Card{Clubs, 2},
			trump:    Spades,
			lead:     Clubs,
			expected: false,
		},
		{
			name:     "lead suit beats off-suit discard",
			a:        Card{Clubs, 2},
			b:        Card{Diamonds, Ace},
			trump:    Spades,
			lead:     Clubs,
			expected: true,
		},
		{
			name:     "both trump, higher wins",
			a:        Card{Spades, Jack},
			b:        Card{Spades, 10},
			trump:    Spades,
			lead:     Hearts,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.a.Beats(tt.b, tt.trump, tt.lead))
		})
	}
}

func TestCard_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A♠", Card{Spades, Ace}.String())
	assert.Equal(t, "10♥", Card{Hearts, 10}.String())
	assert.Equal(t, "J♦", Card{Diamonds, Jack}.String())
}
