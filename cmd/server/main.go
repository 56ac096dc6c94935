// @title         expense-assistant API
// @version       1.0
// @description   Expense assistant gateway: answers questions about expenses and extracts new expenses from text using an LLM.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/artem13815/expense-assistant/docs"

	// internal imports
	"github.com/artem13815/expense-assistant/api/http"
	"github.com/artem13815/expense-assistant/api/http/handlers"
	"github.com/artem13815/expense-assistant/pkg/config"
	"github.com/artem13815/expense-assistant/pkg/expense"
	"github.com/artem13815/expense-assistant/pkg/health"
	"github.com/artem13815/expense-assistant/pkg/health/checkers"
	"github.com/artem13815/expense-assistant/pkg/llm/openrouter"
	"github.com/artem13815/expense-assistant/pkg/logger"
)

func main() {
	// Load configuration from env/.env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.LogDevelopment, logger.LogLevel(cfg.LogLevel))
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.OpenRouterAPIKey == "" {
		zl.Warn("OPENROUTER_API_KEY is not set; /analyze and /add-expense will fail until it is configured")
	}

	// OpenRouter client
	llmClient := openrouter.New(
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBase,
		cfg.OpenRouterModel,
		cfg.OpenRouterAppTitle,
		cfg.OpenRouterReferer,
		cfg.OpenRouterTimeout,
	)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewCredentialChecker("openrouter", llmClient))
	healthHandler := handlers.NewHealthHandler(readiness)

	expenseUC := expense.NewService(llmClient, cfg.Currency, zl)
	expenseHandler := handlers.NewExpenseHandler(expenseUC, zl)

	opts := http.Options{CORSAllowOrigins: cfg.CORSAllowOrigins, Swagger: cfg.SwaggerEnabled}
	app := http.NewApp(zl, opts)
	http.Register(app, healthHandler, expenseHandler, opts)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			zl.Error("shutdown", zap.Error(err))
		}
	}()

	// Start server
	zl.Info("HTTP server listening", zap.String("port", cfg.Port), zap.String("model", llmClient.Model))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
