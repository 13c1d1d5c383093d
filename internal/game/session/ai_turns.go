package session

import (
	"github.com/Sagarjari01/judgment/internal/game/ai"
	"github.com/Sagarjari01/judgment/internal/logger"
)

// DriveAITurns advances consecutive AI turns until a human is due to act,
// the phase no longer accepts actions, or a resolution window opens. The
// "is it still an AI's turn" predicate is re-derived every pass; when a
// window opens mid-loop, finishResolution re-enters the loop after it
// closes.
func (s *GameSession) DriveAITurns() {
	for {
		s.mu.Lock()

		if s.resolving {
			s.mu.Unlock()
			return
		}
		if s.status != StatusBidding && s.status != StatusPlaying {
			s.mu.Unlock()
			return
		}
		p, _ := s.findPlayer(s.currentTurn)
		if p == nil || !p.IsAI {
			s.mu.Unlock()
			return
		}

		var err error
		switch s.status {
		case StatusBidding:
			bid := ai.ChooseBid(p.Hand, s.trumpSuit, s.cardsThisRound,
				s.priorBidsLocked(), s.turnCount == len(s.players)-1)
			err = s.applyBidLocked(p.ID, bid)
		case StatusPlaying:
			c := ai.ChooseCard(p.Hand, s.trickCardsLocked(), s.trumpSuit, s.leadSuit, s.leadSet)
			err = s.applyPlayLocked(p.ID, c)
		}
		name := p.Name
		s.mu.Unlock()

		if err != nil {
			// A correct strategy never produces an invalid action; abort
			// the loop rather than risk corrupting state.
			logger.LogError("game %s: AI %s action rejected: %v", s.id, name, err)
			return
		}
	}
}
