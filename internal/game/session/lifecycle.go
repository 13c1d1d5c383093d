package session

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Sagarjari01/judgment/internal/game/card"
	"github.com/Sagarjari01/judgment/internal/game/rule"
	"github.com/Sagarjari01/judgment/internal/logger"
)

const (
	MinPlayers = 3
	MaxPlayers = 8

	MinTotalRounds = 6
)

// HumanPlayerID is used when the caller does not supply an identity.
const HumanPlayerID = "player-1"

// MaxTotalRounds returns the longest schedule a table of numPlayers can
// play from one reshuffled 52-card deck: up the triangle and back down.
func MaxTotalRounds(numPlayers int) int {
	return 2*min(rule.MaxCardsPerPlayer, 52/numPlayers) - 1
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// newGameSession builds the aggregate with 1 human and numPlayers-1 AI
// opponents and deals round 1. Out-of-range arguments are clamped, not
// rejected.
func newGameSession(numPlayers int, humanName, humanID string, totalRounds int, resolveDelay time.Duration, notifier Notifier) *GameSession {
	numPlayers = clamp(numPlayers, MinPlayers, MaxPlayers)
	totalRounds = clamp(totalRounds, MinTotalRounds, MaxTotalRounds(numPlayers))

	if humanID == "" {
		humanID = HumanPlayerID
	}
	if humanName == "" {
		humanName = "Player 1"
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	s := &GameSession{
		id:           uuid.New().String(),
		totalRounds:  totalRounds,
		currentRound: 1,
		status:       StatusWaiting,
		resolveDelay: resolveDelay,
		notifier:     notifier,
	}

	s.players = append(s.players, &Player{
		ID:     humanID,
		Name:   humanName,
		Bid:    NoBid,
		IsHost: true,
	})
	for i := 1; i < numPlayers; i++ {
		s.players = append(s.players, &Player{
			ID:   fmt.Sprintf("ai-%s", uuid.New().String()[:8]),
			Name: fmt.Sprintf("AI Player %d", i),
			Bid:  NoBid,
			IsAI: true,
		})
	}

	s.startRoundLocked()
	return s
}

// startRoundLocked resets per-round state, reshuffles a fresh deck and
// deals hands sized by the round schedule. The opening seat rotates by
// (round-1) mod playerCount.
func (s *GameSession) startRoundLocked() {
	n := len(s.players)
	s.cardsThisRound = rule.CardsForRound(s.currentRound, s.totalRounds, n)
	s.trumpSuit = card.TrumpForRound(s.currentRound)

	s.trick = nil
	s.leadSuit = ""
	s.leadSet = false
	s.turnCount = 0
	s.trickWinner = ""

	deck := card.NewDeck()
	deck.Shuffle()
	hands, err := deck.Deal(n, s.cardsThisRound)
	if err != nil {
		// Unreachable: the schedule caps deals at 52/numPlayers.
		panic(fmt.Sprintf("session: round %d deal failed: %v", s.currentRound, err))
	}

	for i, p := range s.players {
		p.Tricks = 0
		p.Bid = NoBid
		p.Hand = sortHand(hands[i])
	}

	s.currentTurn = s.players[(s.currentRound-1)%n].ID
	s.status = StatusBidding

	logger.LogInfo("game %s: round %d/%d, %d cards each, trump %s, %s opens",
		s.id, s.currentRound, s.totalRounds, s.cardsThisRound, s.trumpSuit, s.currentTurn)
}

// completeRoundLocked scores the round, advances to the next one or
// finishes the game.
func (s *GameSession) completeRoundLocked() {
	scores := make(map[string]int, len(s.players))
	for _, p := range s.players {
		p.PrevScore = p.Score
		if p.Tricks == p.Bid {
			p.Score += 10 + p.Tricks
		}
		scores[p.ID] = p.Score
	}

	finished := s.currentRound
	s.notifier.RoundCompleted(s.id, finished, scores)
	logger.LogInfo("game %s: round %d complete", s.id, finished)

	s.currentRound++
	if s.currentRound > s.totalRounds {
		s.finishGameLocked()
		return
	}
	s.startRoundLocked()
}

// finishGameLocked declares the winner: the first participant in seating
// order with the maximal score. Co-leaders are reported alongside so
// callers can present a draw.
func (s *GameSession) finishGameLocked() {
	s.status = StatusFinished
	s.currentTurn = ""
	s.trick = nil
	s.leadSet = false

	best := s.players[0]
	for _, p := range s.players[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	s.winner = best
	s.coWinnerIDs = nil
	for _, p := range s.players {
		if p.Score == best.Score {
			s.coWinnerIDs = append(s.coWinnerIDs, p.ID)
		}
	}

	logger.LogInfo("game %s: finished, winner %s (%d points)", s.id, best.Name, best.Score)
	s.notifier.GameFinished(s.snapshotLocked())
}

func sortHand(hand []card.Card) []card.Card {
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].Suit != hand[j].Suit {
			return hand[i].Suit < hand[j].Suit
		}
		return hand[i].Value < hand[j].Value
	})
	return hand
}
