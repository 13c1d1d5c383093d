package session

import (
	"sync"
	"time"

	"github.com/Sagarjari01/judgment/internal/apperrors"
	"github.com/Sagarjari01/judgment/internal/game/card"
)

// Status 游戏阶段
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusBidding  Status = "BIDDING"
	StatusPlaying  Status = "PLAYING"
	StatusFinished Status = "FINISHED"
)

// NoBid marks a participant who has not bid this round.
const NoBid = -1

// Player 游戏中的玩家
type Player struct {
	ID        string
	Name      string
	Hand      []card.Card
	Score     int
	PrevScore int // score before the current round's payout
	Bid       int // NoBid until placed
	Tricks    int // tricks won this round
	IsAI      bool
	IsHost    bool
}

// PlayedCard 当前墩中的一张牌，带出牌人
type PlayedCard struct {
	Card     card.Card `json:"card"`
	PlayerID string    `json:"playedBy"`
}

// GameSession 一局 Judgment 游戏。所有修改都经由持有 mu 的处理方法，
// 协作者只拿到快照，绝不会看到内部可变状态。
type GameSession struct {
	id          string
	players     []*Player // seating order, fixed for the game's lifetime
	totalRounds int

	currentRound   int
	cardsThisRound int
	trumpSuit      card.Suit
	status         Status

	currentTurn string // player id, empty once finished
	trick       []PlayedCard
	leadSuit    card.Suit
	leadSet     bool
	turnCount   int

	// 墩结算窗口
	resolveDelay time.Duration
	resolving    bool
	trickWinner  string // transient, set while the window is open
	resolveTimer *time.Timer
	deferred     []deferredAction

	winner      *Player
	coWinnerIDs []string

	notifier Notifier
	mu       sync.Mutex
}

type deferredAction func() error

// findPlayer returns the player and seat index for an id, or nil and -1.
func (s *GameSession) findPlayer(id string) (*Player, int) {
	for i, p := range s.players {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// seatOf panics on unknown ids; only used with ids taken from own state.
func (s *GameSession) seatOf(id string) int {
	_, idx := s.findPlayer(id)
	if idx < 0 {
		panic("session: unknown player id " + id)
	}
	return idx
}

// priorBidsLocked returns the bids already placed this round, in seating
// order starting from the round's opening seat.
func (s *GameSession) priorBidsLocked() []int {
	n := len(s.players)
	opener := (s.currentRound - 1) % n
	bids := make([]int, 0, n)
	for i := range n {
		p := s.players[(opener+i)%n]
		if p.Bid != NoBid {
			bids = append(bids, p.Bid)
		}
	}
	return bids
}

// trickCardsLocked returns the bare cards of the current trick in play order.
func (s *GameSession) trickCardsLocked() []card.Card {
	cards := make([]card.Card, len(s.trick))
	for i, pc := range s.trick {
		cards[i] = pc.Card
	}
	return cards
}

// advanceBidTurnLocked moves to the next seat, regardless of hand size.
func (s *GameSession) advanceBidTurnLocked() {
	n := len(s.players)
	s.currentTurn = s.players[(s.seatOf(s.currentTurn)+1)%n].ID
}

// advancePlayTurnLocked moves to the next seat that still holds cards.
func (s *GameSession) advancePlayTurnLocked() {
	n := len(s.players)
	idx := s.seatOf(s.currentTurn)
	for i := 1; i <= n; i++ {
		next := s.players[(idx+i)%n]
		if len(next.Hand) > 0 {
			s.currentTurn = next.ID
			return
		}
	}
}

// checkTurnLocked validates phase and turn ownership for a participant.
func (s *GameSession) checkTurnLocked(playerID string, want Status) (*Player, error) {
	if s.status != want {
		return nil, apperrors.ErrWrongPhase
	}
	p, _ := s.findPlayer(playerID)
	if p == nil {
		return nil, apperrors.ErrPlayerNotFound
	}
	if s.currentTurn != playerID {
		return nil, apperrors.ErrNotYourTurn
	}
	return p, nil
}
