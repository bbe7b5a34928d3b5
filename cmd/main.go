package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/lumib/salon-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/lumib/salon-booking-service/internal/api/handlers/create_booking"
	getCartHandler "github.com/lumib/salon-booking-service/internal/api/handlers/get_cart"
	getDaySlotsHandler "github.com/lumib/salon-booking-service/internal/api/handlers/get_day_slots"
	getDraftHandler "github.com/lumib/salon-booking-service/internal/api/handlers/get_draft"
	getMonthViewHandler "github.com/lumib/salon-booking-service/internal/api/handlers/get_month_view"
	removeCartItemHandler "github.com/lumib/salon-booking-service/internal/api/handlers/remove_cart_item"
	updateCartItemHandler "github.com/lumib/salon-booking-service/internal/api/handlers/update_cart_item"
	updateDraftHandler "github.com/lumib/salon-booking-service/internal/api/handlers/update_draft"
	"github.com/lumib/salon-booking-service/internal/api/middleware"
	"github.com/lumib/salon-booking-service/internal/config"
	"github.com/lumib/salon-booking-service/internal/infra/sessionstore"
	blackoutRepo "github.com/lumib/salon-booking-service/internal/infra/storage/blackout"
	bookingRepo "github.com/lumib/salon-booking-service/internal/infra/storage/booking"
	catalogServiceClient "github.com/lumib/salon-booking-service/internal/integrations/catalogservice"
	notifyServiceClient "github.com/lumib/salon-booking-service/internal/integrations/notifyservice"
	cartService "github.com/lumib/salon-booking-service/internal/service/cart"
	draftsService "github.com/lumib/salon-booking-service/internal/service/drafts"
	cancelBookingUC "github.com/lumib/salon-booking-service/internal/usecase/cancel_booking"
	createBookingUC "github.com/lumib/salon-booking-service/internal/usecase/create_booking"
	getDaySlotsUC "github.com/lumib/salon-booking-service/internal/usecase/get_day_slots"
	getMonthViewUC "github.com/lumib/salon-booking-service/internal/usecase/get_month_view"
	"github.com/lumib/salon-booking-service/pkg/dbmetrics"
	"github.com/lumib/salon-booking-service/pkg/logger"
	"github.com/lumib/salon-booking-service/pkg/metrics"
	"github.com/lumib/salon-booking-service/pkg/simpletxmanager"
	"github.com/lumib/salon-booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon-booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Redis holds the per-session draft and cart state
	redisClient, err := sessionstore.Connect(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	sessionStore := sessionstore.NewStore(redisClient, time.Duration(cfg.Session.TTL)*time.Second)
	log.Info("Successfully connected to redis (addr=%s, session ttl=%ds)", cfg.Redis.Addr, cfg.Session.TTL)

	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	var (
		bookingRepository  *bookingRepo.Repository
		blackoutRepository *blackoutRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blackoutRepository = blackoutRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blackoutRepository = blackoutRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	draftsSvc := draftsService.NewService(
		sessionStore,
		catalogClient,
		bookingRepository,
		log,
	)
	cartSvc := cartService.NewService(
		sessionStore,
		catalogClient,
		log,
	)

	getMonthViewUseCase := getMonthViewUC.NewUseCase(
		bookingRepository,
		blackoutRepository,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		bookingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blackoutRepository,
		catalogClient,
		notifyClient,
		sessionStore,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		log,
	)

	getMonthView := getMonthViewHandler.NewHandler(getMonthViewUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getDraft := getDraftHandler.NewHandler(draftsSvc, log)
	updateDraft := updateDraftHandler.NewHandler(draftsSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	updateCartItem := updateCartItemHandler.NewHandler(cartSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session)

	// Calendar and slot availability
	api.HandleFunc("/calendar", getMonthView.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Session draft
	api.HandleFunc("/session/draft", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/session/draft", updateDraft.Handle).Methods(http.MethodPatch)

	// Session cart
	api.HandleFunc("/session/cart", getCart.Handle).Methods(http.MethodGet)
	api.HandleFunc("/session/cart/items/{itemId}", removeCartItem.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/session/cart/items/{itemId}", updateCartItem.Handle).Methods(http.MethodPatch)

	// Booking submission and cancellation
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
