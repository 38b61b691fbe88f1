// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"evently-service/internal/config"
	"evently-service/internal/db"
	accountHandler "evently-service/internal/handlers/account"
	authHandler "evently-service/internal/handlers/auth"
	categoryHandler "evently-service/internal/handlers/category"
	eventHandler "evently-service/internal/handlers/event"
	registrationHandler "evently-service/internal/handlers/registration"
	wsHandler "evently-service/internal/handlers/websocket"
	"evently-service/internal/middleware"
	"evently-service/internal/pkg/ratelimit"
	"evently-service/internal/pkg/token"
	"evently-service/internal/repository/postgres"
	accountUsecase "evently-service/internal/service/account"
	authUsecase "evently-service/internal/service/auth"
	categoryUsecase "evently-service/internal/service/category"
	eventUsecase "evently-service/internal/service/event"
	registrationUsecase "evently-service/internal/service/registration"
	"evently-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	httpServer  *http.Server
	authService *authUsecase.AuthService
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		engine: gin.New(),
		logger: logger,
	}
}

// Start wires the whole application and serves HTTP until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()

	// ----- Token Issuer & Verifier -----
	issuer, err := token.NewIssuer(s.cfg.Token)
	if err != nil {
		return fmt.Errorf("failed to build token issuer: %w", err)
	}
	verifier, err := token.NewVerifier(s.cfg.Token)
	if err != nil {
		return fmt.Errorf("failed to build token verifier: %w", err)
	}

	rateLimiter := ratelimit.NewRateLimiter(redisClient)

	// ----- Repositories -----
	accountRepo := postgres.NewAccountRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	registrationRepo := postgres.NewRegistrationRepository(pool)

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(s.logger)
	go hub.Run(ctx)

	// ----- Services -----
	authService := authUsecase.NewAuthService(accountRepo, issuer, verifier, rateLimiter, s.logger)
	s.authService = authService

	accountService := accountUsecase.NewAccountService(accountRepo, registrationRepo, hub, s.logger)
	categoryService := categoryUsecase.NewCategoryService(categoryRepo, s.logger)
	eventService := eventUsecase.NewEventService(eventRepo, categoryRepo, registrationRepo, s.logger)
	registrationService := registrationUsecase.NewRegistrationService(registrationRepo, accountRepo, eventRepo, hub, s.logger)

	// ----- Admin Bootstrap -----
	if err := s.ensureAdmin(ctx); err != nil {
		// Startup continues; login for other accounts still works.
		s.logger.Error("failed to ensure admin account", zap.Error(err))
	}

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:         authHandler.NewAuthHandler(authService, s.logger),
		AccountHandler:      accountHandler.NewAccountHandler(accountService, s.logger),
		EventHandler:        eventHandler.NewEventHandler(eventService, s.logger),
		CategoryHandler:     categoryHandler.NewCategoryHandler(categoryService, s.logger),
		RegistrationHandler: registrationHandler.NewRegistrationHandler(registrationService, s.logger),
		WSHandler:           wsHandler.NewWebSocketHandler(hub, s.logger),
		AuthMiddleware:      middleware.NewAuthMiddleware(authService),
	}

	s.engine.Use(
		middleware.RecoveryMiddleware(s.logger),
		middleware.LoggingMiddleware(s.logger),
		middleware.CORSMiddleware(),
	)

	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	s.httpServer = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.shutdown()
	}
}

func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// ensureAdmin creates the bootstrap admin account when configured.
func (s *Server) ensureAdmin(ctx context.Context) error {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		s.logger.Warn("admin bootstrap skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}
	if len(s.cfg.AdminPassword) < 8 {
		return fmt.Errorf("admin password must be at least 8 characters")
	}

	bootCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return s.authService.EnsureAdminExists(
		bootCtx,
		s.cfg.AdminEmail,
		s.cfg.AdminUsername,
		s.cfg.AdminPassword,
		s.cfg.AdminFirstName,
		s.cfg.AdminLastName,
	)
}
