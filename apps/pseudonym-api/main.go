// Package main はPseudonym APIのエントリーポイント。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/config"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/handler"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/keystore"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/server"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/usecase"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/logging"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/xlat"
)

func main() {
	// 1. 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化
	initLogger(cfg)

	slog.Info("starting pseudonym-api",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
		logging.WithKeySource(cfg.KeySource),
		"default_key_index", cfg.DefaultKeyIndex,
	)

	// 3. 鍵ストア接続
	keyring, closeKeyring, err := keystore.Open(cfg)
	if err != nil {
		slog.Error("failed to open keystore", logging.WithKeySource(cfg.KeySource), "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeKeyring(); err != nil {
			slog.Warn("keystore close error", "error", err)
		}
	}()

	// 4. 依存オブジェクト生成
	registry := xlat.NewRegistry(xlat.WithLogger(slog.Default()))
	pseudonymUseCase := usecase.NewPseudonymUseCase(keyring, registry, cfg)
	pseudonymHandler := handler.NewPseudonymHandler(pseudonymUseCase, cfg)

	// 5. サーバー起動
	srv := server.New(cfg, pseudonymHandler)

	// 6. Graceful Shutdown設定
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// 7. シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

// initLogger はロガーを初期化する。
func initLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler).With("app", "pseudonym-api")
	slog.SetDefault(logger)
}
