package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	ticketusecases "pepperminto/internal/application/ticket/usecases"
	"pepperminto/internal/infrastructure/auth"
	"pepperminto/internal/infrastructure/config"
	"pepperminto/internal/infrastructure/database"
	"pepperminto/internal/infrastructure/email"
	"pepperminto/internal/infrastructure/migration"
	"pepperminto/internal/infrastructure/poller"
	"pepperminto/internal/infrastructure/repository"
	httpRouter "pepperminto/internal/interfaces/http"
	"pepperminto/internal/shared/logger"
)

var (
	env        string
	skipSeed   bool
	skipPoller bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Pepperminto HTTP server and the email ingest poller.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Skip seeding the initial admin account")
	cmd.Flags().BoolVar(&skipPoller, "skip-poller", false, "Do not start the email ingest poller")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	log := logger.NewLogger()

	migrationManager := migration.NewManager()
	if err := migrationManager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	if !skipSeed {
		userRepo := repository.NewUserRepository(database.Get())
		hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
		seeder := migration.NewSeeder(userRepo, hasher)
		if err := seeder.SeedAdmin(cmd.Context(), &cfg.Seed); err != nil {
			logger.Fatal("admin seeding failed", "error", err)
		}
	}

	router := httpRouter.NewRouter(database.Get(), cfg, log)
	router.SetupRoutes(log)

	var pollerManager *poller.Manager
	if cfg.Poller.Enabled && !skipPoller {
		pollerManager, err = startPoller(cfg, log)
		if err != nil {
			logger.Fatal("failed to start email poller", "error", err)
		}
		defer func() {
			if err := pollerManager.Stop(); err != nil {
				logger.Error("failed to stop email poller", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func startPoller(cfg *config.Config, log logger.Interface) (*poller.Manager, error) {
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
		return nil, err
	}
	if err := manager.RegisterIngestJob(ingestor, time.Duration(cfg.Poller.IntervalSeconds)*time.Second); err != nil {
		return nil, err
	}
	manager.Start()

	return manager, nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "test":
		return "test"
	default:
		return "debug"
	}
}
