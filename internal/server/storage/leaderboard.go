package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	playerStatsKey = "judgment:player:stats:"
	leaderboardKey = "judgment:leaderboard:points"
)

// PlayerStats 玩家统计数据
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	TotalGames  int `json:"total_games"`  // 总场次
	Wins        int `json:"wins"`         // 胜场（含并列第一）
	BestScore   int `json:"best_score"`   // 单局最高分
	TotalPoints int `json:"total_points"` // 累计得分

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// WinRate 胜率
func (s *PlayerStats) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.TotalGames)
}

// Entry 排行榜条目
type Entry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Points     int    `json:"points"`
	Wins       int    `json:"wins"`
}

// Leaderboard 排行榜管理器
type Leaderboard struct {
	redis *redis.Client
}

// NewLeaderboard 创建排行榜管理器
func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{redis: client}
}

// GetPlayerStats 获取玩家统计，不存在时返回 nil
func (l *Leaderboard) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := l.redis.Get(ctx, playerStatsKey+playerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (l *Leaderboard) savePlayerStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return l.redis.Set(ctx, playerStatsKey+stats.PlayerID, data, 0).Err()
}

func (l *Leaderboard) getOrCreateStats(ctx context.Context, playerID, playerName string) (*PlayerStats, error) {
	stats, err := l.GetPlayerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &PlayerStats{
			PlayerID:   playerID,
			PlayerName: playerName,
			CreatedAt:  time.Now().Unix(),
		}
	}
	return stats, nil
}

// RecordGameResult 记录一局结束后某位玩家的战绩
func (l *Leaderboard) RecordGameResult(ctx context.Context, playerID, playerName string, finalScore int, isWinner bool) error {
	stats, err := l.getOrCreateStats(ctx, playerID, playerName)
	if err != nil {
		return err
	}

	stats.PlayerName = playerName
	stats.TotalGames++
	stats.TotalPoints += finalScore
	if finalScore > stats.BestScore {
		stats.BestScore = finalScore
	}
	if isWinner {
		stats.Wins++
	}
	stats.LastPlayedAt = time.Now().Unix()

	if err := l.savePlayerStats(ctx, stats); err != nil {
		return err
	}

	return l.redis.ZIncrBy(ctx, leaderboardKey, float64(finalScore), playerID).Err()
}

// Top 返回累计得分最高的 n 位玩家
func (l *Leaderboard) Top(ctx context.Context, n int) ([]Entry, error) {
	members, err := l.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(members))
	for i, m := range members {
		playerID, _ := m.Member.(string)
		entry := Entry{
			Rank:     i + 1,
			PlayerID: playerID,
			Points:   int(m.Score),
		}
		if stats, err := l.GetPlayerStats(ctx, playerID); err == nil && stats != nil {
			entry.PlayerName = stats.PlayerName
			entry.Wins = stats.Wins
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
