package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"degen_api/internal/api/handlers"
	"degen_api/internal/api/middlew"
	"degen_api/internal/config"
	"degen_api/internal/db"
	"degen_api/internal/repository/postgres"
	"degen_api/internal/server"
	"degen_api/internal/service"
	"degen_api/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	log    *slog.Logger
	cfg    *config.Config
	server *server.Server
	pool   *pgxpool.Pool
}

func NewApp() (*App, error) {
	log := logger.NewLogger()
	log.Info("инициализация приложения")

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации конфига: %w", err)
	}
	log.Info("конфигурация загружена",
		slog.String("port", cfg.HTTPPort),
		slog.String("address_validation", string(cfg.AddressValidation)))

	log.Info("выполнение миграций базы данных")
	if err := db.RunMigrations(cfg.DB.MigrationURL(), "migrations"); err != nil {
		return nil, fmt.Errorf("ошибка выполнения миграций: %w", err)
	}
	log.Info("миграции успешно применены")

	pool, err := db.NewPool(context.Background(), cfg.DB.DSN(), cfg.DB.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}
	log.Info("подключение к базе данных установлено")

	srv := server.NewServer(server.Options{
		Port:         cfg.HTTPPort,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	})
	log.Info("сервер инициализирован", slog.String("port", cfg.HTTPPort))

	srv.Router.Use(middleware.RequestID)
	srv.Router.Use(middlew.WithLogger(log))
	srv.Router.Use(middleware.RealIP)
	srv.Router.Use(middleware.Recoverer)

	return &App{
		log:    log,
		cfg:    cfg,
		server: srv,
		pool:   pool,
	}, nil
}

func (a *App) BuildAPILayer() {
	walletRepo := postgres.NewWalletRepository(a.pool)
	transactionRepo := postgres.NewTransactionRepository(a.pool)

	walletService := service.NewWalletService(walletRepo, a.cfg.AddressValidation)
	transactionService := service.NewTransactionService(transactionRepo, walletRepo)

	walletHandler := handlers.NewWalletHandler(walletService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	healthHandler := handlers.NewHealthHandler(a.pool)

	a.server.Router.Get("/health", healthHandler.Health)
	a.server.Router.Route("/api/v1", func(r chi.Router) {
		r.Post("/wallets", walletHandler.CreateWallet)
		r.Get("/wallets", walletHandler.ListWallets)
		r.Get("/wallets/{walletID}", walletHandler.GetWalletByID)
		r.Delete("/wallets/{walletID}", walletHandler.DeleteWallet)
		r.Post("/wallets/{walletID}/transactions", transactionHandler.CreateTransaction)
		r.Get("/wallets/{walletID}/transactions", transactionHandler.ListWalletTransactions)
		r.Get("/transactions/{transactionID}", transactionHandler.GetTransactionByID)
	})

	a.log.Info("слой API собран и маршруты зарегистрированы")
}

func (a *App) Run() error {
	a.log.Info("сервер запускается")

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("ошибка запуска сервера: %w", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-shutdownChan:
		a.log.Info("получен сигнал завершения", slog.String("signal", sig.String()))
	}

	a.log.Info("приложение останавливается")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("ошибка при остановке http сервера", slog.String("error", err.Error()))
	}

	a.log.Info("закрытие соединения с базой данных")
	a.pool.Close()

	a.log.Info("приложение остановлено")
	return nil
}
