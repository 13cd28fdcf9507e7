package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"mind-journal/internal/config"
	"mind-journal/internal/db"
	apihttp "mind-journal/internal/http"
	"mind-journal/internal/llm"
	"mind-journal/internal/repository"
	"mind-journal/internal/sentiment"
	"mind-journal/internal/service"
	"mind-journal/internal/speech"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	handle, err := db.Open(ctx, cfg.DBDir, cfg.DBName)
	if err != nil {
		logger.Fatal("db open", zap.Error(err))
	}
	defer handle.Close()

	conversationRepo := repository.NewSQLiteConversationRepository(handle)
	messageRepo := repository.NewSQLiteMessageRepository(handle)

	scorer := sentiment.NewVaderScorer()
	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)

	var recognizer speech.Recognizer
	if cfg.SpeechBaseURL != "" {
		recognizer = speech.NewHTTPRecognizer(cfg.SpeechBaseURL, cfg.SpeechAPIKey, logger)
	}

	var adviceCache service.AdviceCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			adviceCache = service.NewRedisAdviceCache(redisClient, time.Hour)
		}
		cancel()
	}

	chatSvc := service.NewChatService(logger, scorer, llmClient, conversationRepo, messageRepo, adviceCache, recognizer)
	chatHandler := apihttp.NewChatHandler(logger, chatSvc)
	router := apihttp.NewRouter(logger, chatHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
