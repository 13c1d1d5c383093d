package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sagarjari01/judgment/internal/config"
	"github.com/Sagarjari01/judgment/internal/logger"
	"github.com/Sagarjari01/judgment/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}

	if err := logger.Init(); err != nil {
		log.Printf("failed to init debug logger: %v", err)
	}
	defer logger.Close()

	srv := server.NewServer(cfg)

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("shutting down...")
		srv.Shutdown()
		os.Exit(0)
	}()

	log.Println("🃏 judgment server starting...")
	if err := srv.Start(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
