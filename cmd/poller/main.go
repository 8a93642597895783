// Standalone email ingest worker. Runs the same polling loop as the server
// process, for deployments that separate the API from background work.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	ticketusecases "pepperminto/internal/application/ticket/usecases"
	"pepperminto/internal/infrastructure/config"
	"pepperminto/internal/infrastructure/database"
	"pepperminto/internal/infrastructure/email"
	"pepperminto/internal/infrastructure/poller"
	"pepperminto/internal/infrastructure/repository"
	"pepperminto/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting email ingest worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	ticketRepo := repository.NewTicketRepository(database.Get())
	mailboxRepo := repository.NewMailboxRepository(database.Get())

	ingestor := poller.NewIngestor(
		mailboxRepo,
		ticketusecases.NewIngestEmailUseCase(ticketRepo, log),
		email.NewIMAPFetcher(),
		email.NewGmailFetcher(),
		time.Duration(cfg.Poller.MailboxTimeoutSeconds)*time.Second,
		log,
	)

	manager, err := poller.NewManager(log)
	if err != nil {
		log.Fatalw("failed to create poller", "error", err)
	}
	if err := manager.RegisterIngestJob(ingestor, time.Duration(cfg.Poller.IntervalSeconds)*time.Second); err != nil {
		log.Fatalw("failed to register ingest job", "error", err)
	}
	manager.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down email ingest worker")
	if err := manager.Stop(); err != nil {
		log.Errorw("failed to stop poller", "error", err)
	}
}
