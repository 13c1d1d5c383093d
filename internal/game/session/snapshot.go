package session

import (
	"github.com/Sagarjari01/judgment/internal/game/card"
)

// PlayerSnapshot 玩家快照
type PlayerSnapshot struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	CardCount int         `json:"cardCount"`
	Hand      []card.Card `json:"hand,omitempty"`
	Score     int         `json:"score"`
	PrevScore int         `json:"prevScore"`
	Bid       int         `json:"bid"` // NoBid (-1) until placed
	Tricks    int         `json:"tricks"`
	IsAI      bool        `json:"isAI"`
	IsHost    bool        `json:"isHost"`
}

// Snapshot 游戏状态快照。Every slice and map is freshly allocated; callers
// may hold a snapshot indefinitely without observing later mutations.
type Snapshot struct {
	ID             string           `json:"id"`
	Players        []PlayerSnapshot `json:"players"`
	CurrentRound   int              `json:"currentRound"`
	TotalRounds    int              `json:"totalRounds"`
	CardsThisRound int              `json:"cardsThisRound"`
	TrumpSuit      card.Suit        `json:"trumpSuit"`
	Status         Status           `json:"status"`
	CurrentTurn    string           `json:"currentTurn"`
	Trick          []PlayedCard     `json:"trick"`
	LeadSuit       card.Suit        `json:"leadSuit,omitempty"`
	Resolving      bool             `json:"resolving"`
	TrickWinner    string           `json:"trickWinner,omitempty"`
	WinnerID       string           `json:"winnerId,omitempty"`
	WinnerName     string           `json:"winnerName,omitempty"`
	CoWinnerIDs    []string         `json:"coWinnerIds,omitempty"`
}

// snapshotLocked deep-copies the full game state, all hands included.
func (s *GameSession) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		ID:             s.id,
		Players:        make([]PlayerSnapshot, len(s.players)),
		CurrentRound:   s.currentRound,
		TotalRounds:    s.totalRounds,
		CardsThisRound: s.cardsThisRound,
		TrumpSuit:      s.trumpSuit,
		Status:         s.status,
		CurrentTurn:    s.currentTurn,
		Trick:          append([]PlayedCard(nil), s.trick...),
		Resolving:      s.resolving,
		TrickWinner:    s.trickWinner,
	}
	if s.leadSet {
		snap.LeadSuit = s.leadSuit
	}
	for i, p := range s.players {
		snap.Players[i] = PlayerSnapshot{
			ID:        p.ID,
			Name:      p.Name,
			CardCount: len(p.Hand),
			Hand:      append([]card.Card(nil), p.Hand...),
			Score:     p.Score,
			PrevScore: p.PrevScore,
			Bid:       p.Bid,
			Tricks:    p.Tricks,
			IsAI:      p.IsAI,
			IsHost:    p.IsHost,
		}
	}
	if s.winner != nil {
		snap.WinnerID = s.winner.ID
		snap.WinnerName = s.winner.Name
		snap.CoWinnerIDs = append([]string(nil), s.coWinnerIDs...)
	}
	return snap
}

// Redacted returns a copy of the snapshot with every hand other than the
// viewer's reduced to its count, for delivery to a single connection.
func (snap *Snapshot) Redacted(viewerID string) *Snapshot {
	out := *snap
	out.Trick = append([]PlayedCard(nil), snap.Trick...)
	out.CoWinnerIDs = append([]string(nil), snap.CoWinnerIDs...)
	out.Players = make([]PlayerSnapshot, len(snap.Players))
	for i, p := range snap.Players {
		out.Players[i] = p
		if p.ID == viewerID {
			out.Players[i].Hand = append([]card.Card(nil), p.Hand...)
		} else {
			out.Players[i].Hand = nil
		}
	}
	return &out
}

// FinalScores extracts the id→score map, for the game-finished payload.
func (snap *Snapshot) FinalScores() map[string]int {
	scores := make(map[string]int, len(snap.Players))
	for _, p := range snap.Players {
		scores[p.ID] = p.Score
	}
	return scores
}
