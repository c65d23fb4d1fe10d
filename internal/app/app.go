package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/wb-go/wbf/logger"

	"github.com/VIPUlNEGI1/Flight/internal/config"
	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/flights"
	"github.com/VIPUlNEGI1/Flight/internal/handler"
	"github.com/VIPUlNEGI1/Flight/internal/middleware"
	"github.com/VIPUlNEGI1/Flight/internal/notification"
	"github.com/VIPUlNEGI1/Flight/internal/places"
	"github.com/VIPUlNEGI1/Flight/internal/repository"
	"github.com/VIPUlNEGI1/Flight/internal/router"
	"github.com/VIPUlNEGI1/Flight/internal/scheduler"
	"github.com/VIPUlNEGI1/Flight/internal/service"
	"github.com/VIPUlNEGI1/Flight/internal/store"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	store      *store.FileStore
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HorizonStays",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStore(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStore() error {
	s, err := store.NewFileStore(a.cfg.Store.DataDir, a.cfg.Store.BackupDir)
	if err != nil {
		return fmt.Errorf("open file store: %w", err)
	}
	a.store = s

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "file store opened",
		logger.String("data_dir", a.cfg.Store.DataDir),
		logger.String("backup_dir", a.cfg.Store.BackupDir),
	)
	return nil
}

func (a *App) initServices() error {
	hotelRepo := repository.NewHotelRepo(a.store)
	userRepo := repository.NewUserRepo(a.store)
	bookingRepo := repository.NewBookingRepo(a.store)
	savedRepo := repository.NewSavedItemsRepo(a.store)

	flightClient := flights.NewClient(flights.ClientConfig{
		BaseURL:      a.cfg.Flights.BaseURL,
		TokenURL:     a.cfg.Flights.TokenURL,
		ClientID:     a.cfg.Flights.ClientID,
		ClientSecret: a.cfg.Flights.ClientSecret,
		Timeout:      a.cfg.Flights.Timeout,
	})
	placesClient := places.NewClient(a.cfg.Places.BaseURL, a.cfg.Places.APIKey, a.cfg.Places.Timeout)

	notifier := notification.NewEmailNotifier(
		a.cfg.Email.SendGridAPIKey,
		a.cfg.Email.FromName,
		a.cfg.Email.FromAddress,
		a.log,
	)

	authService := service.NewAuthService(userRepo, service.SuperAdminIdentity{
		Email:    a.cfg.Auth.SuperAdminEmail,
		Password: a.cfg.Auth.SuperAdminPassword,
	}, a.log)
	hotelService := service.NewHotelService(hotelRepo, placesClient, a.log)
	bookingService := service.NewBookingService(bookingRepo, hotelRepo, userRepo, notifier, a.log)
	savedService := service.NewSavedItemsService(savedRepo)
	flightService := service.NewFlightSearchService(flightClient, a.cfg.Flights.MaxResults, a.log)

	a.scheduler = scheduler.New(a.store, a.cfg.Scheduler.Interval, a.log)

	tokens := middleware.NewTokenIssuer(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	h := handler.NewHandler(authService, hotelService, bookingService, savedService, flightService, tokens)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Middlewares{
			Auth:           middleware.Auth(tokens),
			OptionalAuth:   middleware.OptionalAuth(tokens),
			OwnerOnly:      middleware.RequireRole(domain.RoleHotelOwner),
			SuperAdminOnly: middleware.RequireRole(domain.RoleSuperAdmin),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: a.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      corsHandler.Handler(r),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if dir, err := a.store.Snapshot(); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "final store snapshot failed",
			logger.String("error", err.Error()),
		)
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "final store snapshot written",
			logger.String("dir", dir),
		)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
