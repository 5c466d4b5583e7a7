package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"greengrow-storefront/internal/client"
	"greengrow-storefront/internal/config"
	"greengrow-storefront/internal/handler"
	"greengrow-storefront/internal/knowledge"
	"greengrow-storefront/internal/logger"
	"greengrow-storefront/internal/repository"
	"greengrow-storefront/internal/server"
	"greengrow-storefront/internal/service"
	"greengrow-storefront/internal/worker"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("storefront-api", cfg.Log.Level, cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := client.InitMysqlClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	var paymentClient client.PaymentClient
	switch cfg.Payment.Provider {
	case "braintree":
		paymentClient = client.NewBraintreeClient(&cfg.BrainTree)
	default:
		paymentClient = client.NewSquareClient(&cfg.Square)
	}

	mirrorClient := client.NewMirrorClient(&cfg.Mirror)

	var completions client.CompletionClient
	if cfg.Chat.OpenAIAPIKey != "" {
		completions = client.NewOpenAIClient(&cfg.Chat)
	}

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	contactRepo := repository.NewContactRepository(db)
	mirrorTaskRepo := repository.NewMirrorTaskRepository(db)

	orderService := service.NewOrderService(db, orderRepo, mirrorTaskRepo, log)
	paymentService := service.NewPaymentService(paymentClient, log)
	contactService := service.NewContactService(contactRepo)
	chatService := service.NewChatService(completions, log)

	pollInterval, err := time.ParseDuration(cfg.Worker.PollInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid worker poll interval")
	}

	mirrorWorker := &worker.MirrorWorker{
		Log:          log.With().Str("component", "mirror-worker").Logger(),
		Tasks:        mirrorTaskRepo,
		Mirror:       mirrorClient,
		PollInterval: pollInterval,
		BatchSize:    cfg.Worker.BatchSize,
		MaxAttempts:  cfg.Worker.MaxAttempts,
		BackoffBase:  2 * time.Second,
		BackoffMax:   60 * time.Second,
	}

	srv := server.NewServer(
		cfg.JWTSecret,
		log,
		handler.NewOrderHandler(orderService, log),
		handler.NewPaymentHandler(paymentService, log),
		handler.NewContactHandler(contactService, log),
		handler.NewCatalogHandler(productRepo, knowledge.NewBase(), log),
		handler.NewChatHandler(chatService, log),
	)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go mirrorWorker.Run(workerCtx)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info().Str("addr", serverAddr).Msg("starting HTTP server")

	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info().Msg("signal received, starting graceful shutdown")

	stopWorker()

	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("HTTP server shutdown error")
	}
}
