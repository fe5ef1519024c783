package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"ancestor-server/internal/engine"
	"ancestor-server/internal/server"
	"ancestor-server/internal/version"
	"ancestor-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var tuningPath string
	var replayPath string
	var replayDir string
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&tuningPath, "config", "", "Path to YAML tuning file")
	flag.StringVar(&replayPath, "replay", "", "Path to .atrp replay file to simulate")
	flag.StringVar(&replayDir, "replay-dir", "replays", "Directory for saved replays")
	flag.Parse()

	logger.Log.Info("Starting Ancestor Tale...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	if err := cfg.LoadTuning(tuningPath); err != nil {
		logger.Log.Fatal("Tuning load error: ", err)
	}
	if port := os.Getenv("AT_PORT"); port != "" {
		cfg.Addr = ":" + port
	}

	// РЕЖИМ ВОСПРОИЗВЕДЕНИЯ
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")
		gameService := engine.NewService(cfg)
		if _, err := gameService.Simulate(replayPath); err != nil {
			logger.Log.Fatal("Replay failed: ", err)
		}
		return
	}

	// 2. Инициализация ядра
	gameService := engine.NewService(cfg)
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, cfg.Addr)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Записи партий переживают рестарт.
	gameService.SaveReplays(replayDir)

	logger.Log.Info("Done.")
}
