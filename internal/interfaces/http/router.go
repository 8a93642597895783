package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	articleusecases "pepperminto/internal/application/article/usecases"
	authusecases "pepperminto/internal/application/auth/usecases"
	clientusecases "pepperminto/internal/application/client/usecases"
	mailboxusecases "pepperminto/internal/application/mailbox/usecases"
	notificationusecases "pepperminto/internal/application/notification/usecases"
	ticketusecases "pepperminto/internal/application/ticket/usecases"
	userusecases "pepperminto/internal/application/user/usecases"
	"pepperminto/internal/infrastructure/auth"
	"pepperminto/internal/infrastructure/config"
	"pepperminto/internal/infrastructure/email"
	"pepperminto/internal/infrastructure/repository"
	articlehandlers "pepperminto/internal/interfaces/http/handlers/article"
	authhandlers "pepperminto/internal/interfaces/http/handlers/auth"
	clienthandlers "pepperminto/internal/interfaces/http/handlers/client"
	mailboxhandlers "pepperminto/internal/interfaces/http/handlers/mailbox"
	notificationhandlers "pepperminto/internal/interfaces/http/handlers/notification"
	tickethandlers "pepperminto/internal/interfaces/http/handlers/ticket"
	userhandlers "pepperminto/internal/interfaces/http/handlers/user"
	"pepperminto/internal/interfaces/http/middleware"
	"pepperminto/internal/interfaces/http/routes"
	shareddb "pepperminto/internal/shared/db"
	"pepperminto/internal/shared/logger"

	_ "pepperminto/docs"
)

// Router wires repositories, use cases, and handlers into a Gin engine.
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	authMiddleware      *middleware.AuthMiddleware
	authHandler         *authhandlers.AuthHandler
	ticketHandler       *tickethandlers.TicketHandler
	clientHandler       *clienthandlers.ClientHandler
	userHandler         *userhandlers.UserHandler
	mailboxHandler      *mailboxhandlers.MailboxHandler
	articleHandler      *articlehandlers.ArticleHandler
	notificationHandler *notificationhandlers.NotificationHandler
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	mailboxRepo := repository.NewMailboxRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	txManager := shareddb.NewTransactionManager(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpHours)
	stateStore := auth.NewStateStore()
	googleClient := auth.NewGoogleOAuthClient(auth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.Google.ClientID,
		ClientSecret: cfg.OAuth.Google.ClientSecret,
		RedirectURL:  cfg.OAuth.Google.RedirectURL,
	})
	ssoProvider := &ssoProviderAdapter{googleClient}

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:         cfg.Email.SMTPHost,
		Port:         cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUser,
		Password:     cfg.Email.SMTPPassword,
		FromAddress:  cfg.Email.FromAddress,
		FromName:     cfg.Email.FromName,
		DashboardURL: cfg.Sites.DashboardURL,
	})
	gmailAuthorizer := email.NewGmailAuthorizer()

	authHandler := authhandlers.NewAuthHandler(
		authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		authusecases.NewSSOLoginUseCase(ssoProvider, stateStore, log),
		authusecases.NewSSOCallbackUseCase(userRepo, ssoProvider, stateStore, jwtService, log),
		authusecases.NewGetProfileUseCase(userRepo, log),
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, log),
		ticketusecases.NewCreatePublicTicketUseCase(ticketRepo, emailService, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, log),
		ticketusecases.NewChangeStatusUseCase(ticketRepo, log),
		ticketusecases.NewTransferTicketUseCase(ticketRepo, userRepo, notificationRepo, txManager, emailService, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketCountsUseCase(ticketRepo, log),
	)

	clientHandler := clienthandlers.NewClientHandler(
		clientusecases.NewCreateClientUseCase(clientRepo, log),
		clientusecases.NewListClientsUseCase(clientRepo, log),
		clientusecases.NewGetClientUseCase(clientRepo, log),
		clientusecases.NewUpdateClientUseCase(clientRepo, log),
		clientusecases.NewDeleteClientUseCase(clientRepo, ticketRepo, txManager, log),
	)

	userHandler := userhandlers.NewUserHandler(
		userusecases.NewCreateUserUseCase(userRepo, hasher, log),
		userusecases.NewListUsersUseCase(userRepo, log),
		userusecases.NewGetUserUseCase(userRepo, log),
		userusecases.NewUpdateUserUseCase(userRepo, log),
		userusecases.NewDeleteUserUseCase(userRepo, log),
		userusecases.NewChangePasswordUseCase(userRepo, hasher, log),
	)

	mailboxHandler := mailboxhandlers.NewMailboxHandler(
		mailboxusecases.NewCreateMailboxUseCase(mailboxRepo, gmailAuthorizer, log),
		mailboxusecases.NewCompleteGmailAuthUseCase(mailboxRepo, gmailAuthorizer, log),
		mailboxusecases.NewListMailboxesUseCase(mailboxRepo, log),
		mailboxusecases.NewDeleteMailboxUseCase(mailboxRepo, log),
	)

	articleHandler := articlehandlers.NewArticleHandler(
		articleusecases.NewCreateArticleUseCase(articleRepo, log),
		articleusecases.NewUpdateArticleUseCase(articleRepo, log),
		articleusecases.NewDeleteArticleUseCase(articleRepo, log),
		articleusecases.NewListArticlesUseCase(articleRepo, log),
		articleusecases.NewGetArticleUseCase(articleRepo, log),
		articleusecases.NewListPublicArticlesUseCase(articleRepo, log),
		articleusecases.NewGetPublicArticleUseCase(articleRepo, log),
	)

	notificationHandler := notificationhandlers.NewNotificationHandler(
		notificationusecases.NewListNotificationsUseCase(notificationRepo, log),
		notificationusecases.NewMarkReadUseCase(notificationRepo, log),
	)

	return &Router{
		engine:              engine,
		cfg:                 cfg,
		authMiddleware:      middleware.NewAuthMiddleware(jwtService, log),
		authHandler:         authHandler,
		ticketHandler:       ticketHandler,
		clientHandler:       clientHandler,
		userHandler:         userHandler,
		mailboxHandler:      mailboxHandler,
		articleHandler:      articleHandler,
		notificationHandler: notificationHandler,
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(r.authMiddleware.RequireAuth())

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"healthy": true})
	})

	r.engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.engine.Group("/api/v1")

	routes.SetupAuthRoutes(v1, &routes.AuthRouteConfig{AuthHandler: r.authHandler})
	routes.SetupTicketRoutes(v1, &routes.TicketRouteConfig{TicketHandler: r.ticketHandler})
	routes.SetupClientRoutes(v1, &routes.ClientRouteConfig{ClientHandler: r.clientHandler})
	routes.SetupUserRoutes(v1, &routes.UserRouteConfig{UserHandler: r.userHandler})
	routes.SetupMailboxRoutes(v1, &routes.MailboxRouteConfig{MailboxHandler: r.mailboxHandler})
	routes.SetupArticleRoutes(v1, &routes.ArticleRouteConfig{ArticleHandler: r.articleHandler})
	routes.SetupNotificationRoutes(v1, &routes.NotificationRouteConfig{NotificationHandler: r.notificationHandler})
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
