package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgPing MessageType = "ping" // 心跳 ping

	MsgCreateGame MessageType = "create_game" // 创建单人游戏（1 人类 + N AI）
	MsgPlaceBid   MessageType = "place_bid"   // 叫牌
	MsgPlayCard   MessageType = "play_card"   // 出牌
	MsgGetState   MessageType = "get_state"   // 拉取游戏状态

	MsgGetStats       MessageType = "get_stats"       // 获取个人统计
	MsgGetLeaderboard MessageType = "get_leaderboard" // 获取排行榜
)

// 服务端 → 客户端 消息类型
const (
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	MsgGameCreated    MessageType = "game_created"    // 游戏创建成功
	MsgGameState      MessageType = "game_state"      // 游戏状态快照
	MsgTrickResolved  MessageType = "trick_resolved"  // 一墩结算
	MsgRoundCompleted MessageType = "round_completed" // 一轮结束
	MsgGameFinished   MessageType = "game_finished"   // 游戏结束

	MsgStatsResult       MessageType = "stats_result"       // 个人统计结果
	MsgLeaderboardResult MessageType = "leaderboard_result" // 排行榜结果

	MsgError MessageType = "error" // 错误消息
)
