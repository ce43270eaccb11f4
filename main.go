// File: hotelbot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelbot/config"
	"hotelbot/handlers"
	"hotelbot/middleware"
	"hotelbot/routes"
	"hotelbot/services/conversation"
	"hotelbot/services/extraction"
	ai "hotelbot/services/intelligence"
	"hotelbot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Chat model client.
	var chatClient ai.ChatClient
	var tableModel string
	switch config.AppConfig.ChatProvider {
	case "gemini":
		gemini, err := ai.NewGeminiClient(context.Background(),
			config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		chatClient = gemini
	default:
		chatClient = ai.NewOpenAIClient(
			config.AppConfig.OpenAIBaseURL,
			config.AppConfig.OpenAIAPIKey,
			config.AppConfig.OpenAIChatModel,
			logger,
		)
		tableModel = config.AppConfig.OpenAITableModel
	}

	// Core services.
	normalizer := extraction.NewDucklingClient(config.AppConfig.DucklingURL, logger)
	extractor := extraction.NewStateExtractor(normalizer, logger)
	flow := conversation.NewFlowController(conversation.NewBookingValidator(), logger)
	sessions := conversation.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)
	chatService := conversation.NewDefaultChatService(
		chatClient, extractor, flow, sessions, tableModel, logger,
	)

	chatHandler := handlers.NewChatHandler(chatService)
	routes.RegisterRoutes(router, chatHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
