package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("load .env", "error", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("loadConfig", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	authorizer := NewAuthorizer(cfg.Secret())
	if cfg.Mode == modeLambda {
		runLambda(cfg, authorizer)
		return
	}

	if cfg.LogLevel > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	slog.Info("starting http authorizer", "addr", cfg.ListenAddr)
	if err := newRouter(authorizer).Run(cfg.ListenAddr); err != nil {
		slog.Error("http server", "error", err)
		os.Exit(1)
	}
}
