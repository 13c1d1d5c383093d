package session

import (
	"github.com/Sagarjari01/judgment/internal/game/card"
	"github.com/Sagarjari01/judgment/internal/game/rule"
	"github.com/Sagarjari01/judgment/internal/logger"
)

// HandlePlayCard 处理出牌。Plays arriving while a trick resolution window
// is open are queued and applied when it closes.
func (s *GameSession) HandlePlayCard(playerID string, c card.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolving {
		s.deferLocked(func() error { return s.applyPlayLocked(playerID, c) })
		return nil
	}
	return s.applyPlayLocked(playerID, c)
}

func (s *GameSession) applyPlayLocked(playerID string, c card.Card) error {
	p, err := s.checkTurnLocked(playerID, StatusPlaying)
	if err != nil {
		return err
	}
	if err := rule.ValidatePlay(p.Hand, c, s.leadSuit, s.leadSet); err != nil {
		return err
	}

	p.Hand = removeCard(p.Hand, c)
	if !s.leadSet {
		s.leadSuit = c.Suit
		s.leadSet = true
	}
	s.trick = append(s.trick, PlayedCard{Card: c, PlayerID: playerID})
	s.turnCount++

	if s.turnCount == len(s.players) {
		s.beginResolveLocked()
	} else {
		s.advancePlayTurnLocked()
	}

	s.notifier.GameStateChanged(s.snapshotLocked())
	return nil
}

// beginResolveLocked computes the trick winner and opens the resolution
// window. The trick itself stays visible until the window closes, so
// collaborators can animate the resolution before the next trick begins.
func (s *GameSession) beginResolveLocked() {
	idx := rule.WinningIndex(s.trickCardsLocked(), s.trumpSuit, s.leadSuit)
	winner, _ := s.findPlayer(s.trick[idx].PlayerID)
	winner.Tricks++

	s.trickWinner = winner.ID
	s.resolving = true
	s.startResolveTimerLocked()

	logger.LogInfo("game %s: trick won by %s with %s", s.id, winner.Name, s.trick[idx].Card)
	s.notifier.TrickResolved(s.id, winner.ID, winner.Name)
}

// finishResolution runs when the resolution window elapses: the winner
// leads the next trick, the table is cleared, and any actions queued
// during the window are applied in arrival order.
func (s *GameSession) finishResolution() {
	s.mu.Lock()

	if !s.resolving {
		s.mu.Unlock()
		return
	}
	s.resolving = false
	s.resolveTimer = nil

	s.currentTurn = s.trickWinner
	s.trickWinner = ""
	s.trick = nil
	s.leadSuit = ""
	s.leadSet = false
	s.turnCount = 0

	if s.roundCompleteLocked() {
		s.completeRoundLocked()
	}

	s.drainDeferredLocked()

	if s.status != StatusFinished {
		s.notifier.GameStateChanged(s.snapshotLocked())
	}
	s.mu.Unlock()

	// The window may have blocked an AI that is now due to act.
	s.DriveAITurns()
}

func (s *GameSession) roundCompleteLocked() bool {
	for _, p := range s.players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

func removeCard(hand []card.Card, c card.Card) []card.Card {
	for i, h := range hand {
		if h == c {
			return append(hand[:i], hand[i+1:]...)
		}
	}
	return hand
}
