package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"chatty/backend/internal/config"
	"chatty/backend/internal/db"
	"chatty/backend/internal/handler"
	"chatty/backend/internal/hub"
	chathttp "chatty/backend/internal/http"
	"chatty/backend/internal/repository"
	"chatty/backend/internal/service"
	"chatty/backend/internal/service/ai"
	"chatty/backend/pkg/logger"
	"chatty/backend/pkg/snowflake"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.SnowflakeNode); err != nil {
		logger.Error("snowflake init failed", "error", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("database open failed", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	secret := cfg.JWTSecret
	if secret == "" {
		// Sessions won't survive a restart without a configured secret.
		secret = randomSecret()
		logger.Warn("CHATTY_JWT_SECRET not set, using a random secret; sessions reset on restart")
	}

	users := repository.NewUserRepository(database)
	messages := repository.NewMessageRepository(database)

	var provider ai.Provider
	if cfg.AIAPIKey != "" {
		provider, err = ai.NewProvider(ai.Config{
			Provider: cfg.AIProvider,
			APIKey:   cfg.AIAPIKey,
			BaseURL:  cfg.AIBaseURL,
			Model:    cfg.AIModel,
		})
		if err != nil {
			logger.Error("ai provider init failed", "provider", cfg.AIProvider, "error", err)
			os.Exit(1)
		}
		logger.Info("ai provider configured", "provider", provider.Name(), "model", cfg.AIModel)
	} else {
		logger.Warn("no ai api key configured, translation requests will fail")
	}
	limiter := ai.NewRateLimiter(cfg.AIRateLimit)

	eventHub := hub.New()

	authService := service.NewAuthService(users, []byte(secret))
	messageService := service.NewMessageService(messages, users, eventHub)
	translationService := service.NewTranslationService(users, messages, provider, limiter, cfg.TranslateTimeout)

	router := chathttp.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewMessageHandler(messageService),
		handler.NewTranslationHandler(translationService),
		authService,
		eventHub,
		cfg.StaticDir,
	)

	// No read/write deadlines: websocket connections stay open indefinitely.
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
