package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/Sagarjari01/judgment/internal/config"
	"github.com/Sagarjari01/judgment/internal/game/session"
	"github.com/Sagarjari01/judgment/internal/protocol"
	"github.com/Sagarjari01/judgment/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
}

// Server WebSocket 服务器：每个连接对应一名人类玩家，其对局由
// session.Manager 驱动。
type Server struct {
	config      *config.Config
	redis       *redis.Client
	leaderboard *storage.Leaderboard
	games       *session.Manager

	clients       map[string]*Client  // client id → client
	clientsByGame map[string][]string // game id → client ids
	clientsMu     sync.RWMutex

	httpServer *http.Server
	handler    *Handler
}

// NewServer 创建服务器实例。Redis is only used for the leaderboard; the
// server runs without it when the ping fails.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		config:        cfg,
		clients:       make(map[string]*Client),
		clientsByGame: make(map[string][]string),
	}
	s.games = session.NewManager(s, cfg.Game.TrickResolveDelay())
	s.handler = NewHandler(s)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, leaderboard disabled: %v", err)
	} else {
		s.redis = rdb
		s.leaderboard = storage.NewLeaderboard(rdb)
	}

	return s
}

// Start 启动服务器（阻塞直至关闭）
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}

	log.Printf("judgment server listening on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown 优雅关闭：断开所有客户端并停止监听
func (s *Server) Shutdown() {
	s.clientsMu.Lock()
	for _, c := range s.clients {
		c.Close()
	}
	s.clientsMu.Unlock()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := NewClient(s, conn)
	s.registerClient(client)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		ClientID: client.ID,
		Nickname: client.Name,
	}))

	go client.WritePump()
	go client.ReadPump()
}

func (s *Server) registerClient(c *Client) {
	s.clientsMu.Lock()
	s.clients[c.ID] = c
	s.clientsMu.Unlock()
	log.Printf("client %s (%s) connected from %s", c.ID, c.Name, c.IP)
}

// unregisterClient removes the connection and discards its game: there is
// exactly one human per game and no reconnection semantics.
func (s *Server) unregisterClient(c *Client) {
	s.clientsMu.Lock()
	delete(s.clients, c.ID)
	gameID := c.GameID
	if gameID != "" {
		delete(s.clientsByGame, gameID)
	}
	s.clientsMu.Unlock()

	if gameID != "" {
		s.games.Remove(gameID)
	}
	log.Printf("client %s disconnected", c.ID)
}

// bindGame subscribes a client to a game's notifications.
func (s *Server) bindGame(c *Client, gameID string) {
	s.clientsMu.Lock()
	c.GameID = gameID
	s.clientsByGame[gameID] = append(s.clientsByGame[gameID], c.ID)
	s.clientsMu.Unlock()
}

// gameClients returns the connected clients bound to a game.
func (s *Server) gameClients(gameID string) []*Client {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	ids := s.clientsByGame[gameID]
	clients := make([]*Client, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.clients[id]; ok {
			clients = append(clients, c)
		}
	}
	return clients
}
