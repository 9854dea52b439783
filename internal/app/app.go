package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/config"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/handler"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/middleware"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/notification"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/repository"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/router"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/scheduler"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/service"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/storage"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	backend    storage.Backend
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"MovieBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initBackend(); err != nil {
		return nil, fmt.Errorf("init storage backend: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

// initBackend builds the document backend the config selects. All backends
// hold the whole document under one storage key; only where that key lives
// differs.
func (a *App) initBackend() error {
	switch a.cfg.Storage.Engine {
	case "file":
		backend, err := storage.NewFile(a.cfg.Storage.File.Path)
		if err != nil {
			return fmt.Errorf("init file backend: %w", err)
		}
		a.backend = backend
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "file storage ready",
			logger.String("path", a.cfg.Storage.File.Path),
		)

	case "redis":
		backend := storage.NewRedis(
			a.cfg.Storage.Redis.Addr,
			a.cfg.Storage.Redis.Password,
			a.cfg.Storage.Redis.DB,
			a.cfg.Storage.Key,
		)
		if err := backend.Ping(context.Background()); err != nil {
			return fmt.Errorf("pinging redis: %w", err)
		}
		a.backend = backend
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis storage ready",
			logger.String("addr", a.cfg.Storage.Redis.Addr),
		)

	case "postgres":
		if err := a.runMigrations(); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}

		db, err := dbpg.New(
			a.cfg.Storage.Postgres.DSN(),
			nil,
			&dbpg.Options{
				MaxOpenConns: a.cfg.Storage.Postgres.MaxOpenConns,
				MaxIdleConns: a.cfg.Storage.Postgres.MaxIdleConns,
			},
		)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		if err = db.Master.PingContext(context.Background()); err != nil {
			return fmt.Errorf("pinging database: %w", err)
		}
		a.backend = storage.NewPostgres(db, a.cfg.Storage.Key)
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "postgres storage ready",
			logger.String("host", a.cfg.Storage.Postgres.Host),
			logger.Int("port", a.cfg.Storage.Postgres.Port),
			logger.String("database", a.cfg.Storage.Postgres.Database),
		)

	case "memory":
		a.backend = storage.NewMemory()
		a.log.Warn("memory storage selected, the document will not survive a restart")

	default:
		return fmt.Errorf("unknown storage engine %q", a.cfg.Storage.Engine)
	}

	return nil
}

func (a *App) initServices() error {
	db := repository.NewDatabase(
		context.Background(),
		a.backend,
		repository.Options{
			TotalSeats: a.cfg.Cinema.TotalSeats,
			SeatPrice:  a.cfg.Cinema.SeatPrice,
		},
		a.log,
	)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	userService := service.NewUserService(db)
	movieService := service.NewMovieService(db)
	bookingService := service.NewBookingService(db, n, a.log)

	a.scheduler = scheduler.New(db, a.cfg.Scheduler.Interval, a.log)

	h := handler.NewHandler(
		userService,
		movieService,
		bookingService,
		handler.AdminCredentials{
			Username: a.cfg.Admin.Username,
			Password: a.cfg.Admin.Password,
		},
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
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

	if err := a.backend.Close(); err != nil {
		return fmt.Errorf("close storage backend: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "storage backend closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Storage.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
