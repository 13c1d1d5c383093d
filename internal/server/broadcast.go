package server

import (
	"context"
	"log"

	"github.com/Sagarjari01/judgment/internal/game/session"
	"github.com/Sagarjari01/judgment/internal/protocol"
)

// Server implements session.Notifier: after every successful mutation the
// core hands over a fresh snapshot, and the transport decides delivery.

// GameStateChanged 推送快照（按连接视角脱敏）
func (s *Server) GameStateChanged(snap *session.Snapshot) {
	for _, c := range s.gameClients(snap.ID) {
		c.SendMessage(protocol.MustNewMessage(protocol.MsgGameState, snap.Redacted(c.ID)))
	}
}

// TrickResolved 推送一墩的结算结果
func (s *Server) TrickResolved(gameID, winnerID, winnerName string) {
	msg := protocol.MustNewMessage(protocol.MsgTrickResolved, protocol.TrickResolvedPayload{
		GameID:     gameID,
		WinnerID:   winnerID,
		WinnerName: winnerName,
	})
	for _, c := range s.gameClients(gameID) {
		c.SendMessage(msg)
	}
}

// RoundCompleted 推送一轮结束后的比分
func (s *Server) RoundCompleted(gameID string, roundNumber int, scores map[string]int) {
	msg := protocol.MustNewMessage(protocol.MsgRoundCompleted, protocol.RoundCompletedPayload{
		GameID:      gameID,
		RoundNumber: roundNumber,
		Scores:      scores,
	})
	for _, c := range s.gameClients(gameID) {
		c.SendMessage(msg)
	}
}

// GameFinished 推送终局结果并记录人类玩家战绩
func (s *Server) GameFinished(snap *session.Snapshot) {
	msg := protocol.MustNewMessage(protocol.MsgGameFinished, protocol.GameFinishedPayload{
		GameID:      snap.ID,
		WinnerID:    snap.WinnerID,
		WinnerName:  snap.WinnerName,
		CoWinnerIDs: snap.CoWinnerIDs,
		FinalScores: snap.FinalScores(),
	})
	for _, c := range s.gameClients(snap.ID) {
		c.SendMessage(msg)
	}

	if s.leaderboard == nil {
		return
	}
	// AI 对手是单局一次性的，排行榜只记录人类玩家
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		for _, p := range snap.Players {
			if p.IsAI {
				continue
			}
			won := false
			for _, id := range snap.CoWinnerIDs {
				if id == p.ID {
					won = true
					break
				}
			}
			if err := s.leaderboard.RecordGameResult(ctx, p.ID, p.Name, p.Score, won); err != nil {
				log.Printf("game %s: record result for %s failed: %v", snap.ID, p.ID, err)
			}
		}
	}()
}
