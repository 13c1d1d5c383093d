package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	TrickResolveDelayMs int `yaml:"trick_resolve_delay_ms"` // 墩结算窗口（毫秒）
	DefaultTotalRounds  int `yaml:"default_total_rounds"`   // 未指定时的总轮数
	DefaultPlayers      int `yaml:"default_players"`        // 未指定时的总人数
}

// TrickResolveDelay 返回墩结算窗口时长
func (c *GameConfig) TrickResolveDelay() time.Duration {
	return time.Duration(c.TrickResolveDelayMs) * time.Millisecond
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3001
	}
	// PORT from the environment wins over the config file.
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port > 0 {
		cfg.Server.Port = port
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.TrickResolveDelayMs == 0 {
		cfg.Game.TrickResolveDelayMs = 2000
	}
	if cfg.Game.DefaultTotalRounds == 0 {
		cfg.Game.DefaultTotalRounds = 7
	}
	if cfg.Game.DefaultPlayers == 0 {
		cfg.Game.DefaultPlayers = 4
	}
}
