package protocol

import (
	"github.com/Sagarjari01/judgment/internal/game/card"
)

// --- 客户端 → 服务端 ---

// CreateGamePayload 创建单人游戏
type CreateGamePayload struct {
	PlayerName  string `json:"playerName"`
	Players     int    `json:"players"`     // 总人数（含人类），超出 [3,8] 会被钳制
	TotalRounds int    `json:"totalRounds"` // 超出合法范围会被钳制
}

// PlaceBidPayload 叫牌
type PlaceBidPayload struct {
	GameID string `json:"gameId"`
	Bid    int    `json:"bid"`
}

// PlayCardPayload 出牌
type PlayCardPayload struct {
	GameID string    `json:"gameId"`
	Card   card.Card `json:"card"`
}

// GetStatePayload 拉取游戏状态
type GetStatePayload struct {
	GameID string `json:"gameId"`
}

// PingPayload 心跳
type PingPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// --- 服务端 → 客户端 ---

// ConnectedPayload 连接成功
type ConnectedPayload struct {
	ClientID string `json:"clientId"`
	Nickname string `json:"nickname"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"clientTimestamp"`
	ServerTimestamp int64 `json:"serverTimestamp"`
}

// TrickResolvedPayload 一墩结算结果
type TrickResolvedPayload struct {
	GameID     string `json:"gameId"`
	WinnerID   string `json:"winnerId"`
	WinnerName string `json:"winnerName"`
}

// RoundCompletedPayload 一轮结束
type RoundCompletedPayload struct {
	GameID      string         `json:"gameId"`
	RoundNumber int            `json:"roundNumber"`
	Scores      map[string]int `json:"scores"`
}

// GameFinishedPayload 游戏结束
type GameFinishedPayload struct {
	GameID      string         `json:"gameId"`
	WinnerID    string         `json:"winnerId"`
	WinnerName  string         `json:"winnerName"`
	CoWinnerIDs []string       `json:"coWinnerIds,omitempty"` // 并列最高分（含 winnerId）
	FinalScores map[string]int `json:"finalScores"`
}

// ErrorPayload 错误信息
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerID    string  `json:"playerId"`
	PlayerName  string  `json:"playerName"`
	TotalGames  int     `json:"totalGames"`
	Wins        int     `json:"wins"`
	BestScore   int     `json:"bestScore"`
	TotalPoints int     `json:"totalPoints"`
	WinRate     float64 `json:"winRate"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Points     int    `json:"points"`
	Wins       int    `json:"wins"`
}

// LeaderboardResultPayload 排行榜结果
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}
