package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Sagarjari01/judgment/internal/apperrors"
	"github.com/Sagarjari01/judgment/internal/protocol"
)

const storageTimeout = 3 * time.Second

// Handler 消息处理器
type Handler struct {
	server *Server
}

// NewHandler 创建处理器
func NewHandler(s *Server) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client *Client, msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgPing:
		h.handlePing(client, msg)

	case protocol.MsgCreateGame:
		h.handleCreateGame(client, msg)
	case protocol.MsgPlaceBid:
		h.handlePlaceBid(client, msg)
	case protocol.MsgPlayCard:
		h.handlePlayCard(client, msg)
	case protocol.MsgGetState:
		h.handleGetState(client, msg)

	case protocol.MsgGetStats:
		h.handleGetStats(client)
	case protocol.MsgGetLeaderboard:
		h.handleGetLeaderboard(client)

	default:
		log.Printf("unknown message type: %s", msg.Type)
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// handlePing 处理心跳消息
func (h *Handler) handlePing(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		return
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: payload.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}

// handleCreateGame 创建单人对局并立即驱动 AI（第一轮由人类开叫，
// 循环会在轮到人类时立即返回）
func (h *Handler) handleCreateGame(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	cfg := h.server.config.Game
	players := payload.Players
	if players == 0 {
		players = cfg.DefaultPlayers
	}
	rounds := payload.TotalRounds
	if rounds == 0 {
		rounds = cfg.DefaultTotalRounds
	}
	name := payload.PlayerName
	if name == "" {
		name = client.Name
	}

	snap := h.server.games.CreateGameWithAI(players, name, client.ID, rounds)
	h.server.bindGame(client, snap.ID)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgGameCreated, snap.Redacted(client.ID)))
	_ = h.server.games.DriveAITurns(snap.ID)
}

// handlePlaceBid 处理叫牌
func (h *Handler) handlePlaceBid(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlaceBidPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.server.games.PlaceBid(payload.GameID, client.ID, payload.Bid); err != nil {
		h.sendError(client, err)
		return
	}
	_ = h.server.games.DriveAITurns(payload.GameID)
}

// handlePlayCard 处理出牌
func (h *Handler) handlePlayCard(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayCardPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.server.games.PlayCard(payload.GameID, client.ID, payload.Card); err != nil {
		h.sendError(client, err)
		return
	}
	_ = h.server.games.DriveAITurns(payload.GameID)
}

// handleGetState 返回调用者视角的游戏快照
func (h *Handler) handleGetState(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GetStatePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	snap, err := h.server.games.GameStateFor(payload.GameID, client.ID)
	if err != nil {
		h.sendError(client, err)
		return
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgGameState, snap))
}

// handleGetStats 返回调用者的历史战绩
func (h *Handler) handleGetStats(client *Client) {
	lb := h.server.leaderboard
	if lb == nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "leaderboard unavailable"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	stats, err := lb.GetPlayerStats(ctx, client.ID)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "failed to load stats"))
		return
	}

	result := protocol.StatsResultPayload{PlayerID: client.ID, PlayerName: client.Name}
	if stats != nil {
		result.PlayerName = stats.PlayerName
		result.TotalGames = stats.TotalGames
		result.Wins = stats.Wins
		result.BestScore = stats.BestScore
		result.TotalPoints = stats.TotalPoints
		result.WinRate = stats.WinRate()
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, result))
}

// handleGetLeaderboard 返回积分榜前十
func (h *Handler) handleGetLeaderboard(client *Client) {
	lb := h.server.leaderboard
	if lb == nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "leaderboard unavailable"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	top, err := lb.Top(ctx, 10)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "failed to load leaderboard"))
		return
	}

	entries := make([]protocol.LeaderboardEntry, len(top))
	for i, e := range top {
		entries[i] = protocol.LeaderboardEntry{
			Rank:       e.Rank,
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			Points:     e.Points,
			Wins:       e.Wins,
		}
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardResultPayload{
		Entries: entries,
	}))
}

// sendError 将核心错误映射为协议错误消息
func (h *Handler) sendError(client *Client, err error) {
	var ge *apperrors.GameError
	if errors.As(err, &ge) {
		client.SendMessage(protocol.NewErrorMessageWithText(ge.Code, ge.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknown))
}
