package session

import (
	"github.com/Sagarjari01/judgment/internal/game/rule"
)

// HandleBid 处理叫牌。Bids arriving while a trick resolution window is
// open are queued and applied when it closes.
func (s *GameSession) HandleBid(playerID string, bid int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolving {
		s.deferLocked(func() error { return s.applyBidLocked(playerID, bid) })
		return nil
	}
	return s.applyBidLocked(playerID, bid)
}

func (s *GameSession) applyBidLocked(playerID string, bid int) error {
	p, err := s.checkTurnLocked(playerID, StatusBidding)
	if err != nil {
		return err
	}

	n := len(s.players)
	isLast := s.turnCount == n-1
	sumOfOthers := 0
	for _, other := range s.players {
		if other.ID != playerID && other.Bid != NoBid {
			sumOfOthers += other.Bid
		}
	}
	if err := rule.ValidateBid(bid, len(p.Hand), isLast, sumOfOthers); err != nil {
		return err
	}

	p.Bid = bid
	s.turnCount++

	if s.turnCount == n {
		// Everyone has bid; the seat after the last bidder — the round's
		// opener — leads the first trick.
		s.status = StatusPlaying
		s.turnCount = 0
	}
	s.advanceBidTurnLocked()

	s.notifier.GameStateChanged(s.snapshotLocked())
	return nil
}
