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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	addCartServiceHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/add_cart_service"
	clearCartHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/clear_cart"
	confirmCheckoutHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/confirm_checkout"
	deleteBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_booking"
	getCartHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_cart"
	getCheckoutHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_checkout"
	getStaffBookingsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_staff_bookings"
	mergeCartHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/merge_cart"
	previewInvoiceHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/preview_invoice"
	reconcileCartHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/reconcile_cart"
	removeCartServiceHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/remove_cart_service"
	startCheckoutHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/start_checkout"
	updateBookingStatusHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	cartStorage "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/cart"
	checkoutStorage "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/checkout"
	bookingServiceClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/bookingservice"
	offeringServiceClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/offeringservice"
	salonServiceClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/salonservice"
	staffServiceClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/staffservice"
	userServiceClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/userservice"
	cartService "github.com/m04kA/SMC-SalonBooking/internal/service/cart"
	"github.com/m04kA/SMC-SalonBooking/internal/service/payment"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staffbookings"
	confirmCheckoutUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/confirm_checkout"
	getCheckoutUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_checkout"
	previewInvoiceUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/preview_invoice"
	reconcileCartUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/reconcile_cart"
	startCheckoutUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/start_checkout"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonBooking...")

	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Server.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL, cfg.BookingService.TimeoutDuration(), location, metricsCollector, log)
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL, cfg.UserService.TimeoutDuration(), metricsCollector, log)
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL, cfg.StaffService.TimeoutDuration(), metricsCollector, log)
	salonClient := salonServiceClient.NewClient(
		cfg.SalonService.URL, cfg.SalonService.TimeoutDuration(), metricsCollector, log)
	offeringClient := offeringServiceClient.NewClient(
		cfg.OfferingService.URL, cfg.OfferingService.TimeoutDuration(), metricsCollector, log)
	log.Info("Integration clients initialized (BookingService=%s, UserService=%s, StaffService=%s, SalonService=%s, OfferingService=%s)",
		cfg.BookingService.URL, cfg.UserService.URL, cfg.StaffService.URL, cfg.SalonService.URL, cfg.OfferingService.URL)

	scheduler := cron.New()

	// Хранилище корзин выбирается драйвером из конфигурации
	var cartStore cartService.Store
	switch cfg.Cart.Driver {
	case config.CartDriverPostgres:
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

		repo := cartStorage.NewRepository(db)
		cartStore = repo

		// Redis и память удаляют просроченные корзины сами, postgres чистим по расписанию
		if _, err := scheduler.AddFunc(cfg.Cart.PurgeSchedule, func() {
			removed, err := repo.DeleteExpired(context.Background(), time.Now())
			if err != nil {
				log.Error("Cart purge failed: %v", err)
				return
			}
			log.Info("Cart purge: removed %d expired carts", removed)
		}); err != nil {
			log.Fatal("Invalid cart purge schedule %q: %v", cfg.Cart.PurgeSchedule, err)
		}

	case config.CartDriverRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		cartStore = cartStorage.NewRedisStore(redisClient)

	default:
		log.Warn("Using in-memory cart store, carts are lost on restart")
		cartStore = cartStorage.NewMemoryStore()
	}

	// Инициализируем репозитории и сервисы
	attemptRepository := checkoutStorage.NewRepository()

	cartSvc := cartService.NewService(cartStore, log)
	staffBookingsSvc := staffbookings.NewService(
		bookingClient,
		userClient,
		offeringClient,
		staffClient,
		metricsCollector,
		log,
		cfg.Aggregation.MaxConcurrency,
	)
	paymentSimulator := payment.NewSimulator(
		cfg.Checkout.PaymentDelay(),
		cfg.Checkout.SuccessRate,
		nil,
		log,
	)

	// Завершенные попытки оформления храним ограниченное время
	if _, err := scheduler.AddFunc(cfg.Checkout.PurgeSchedule, func() {
		removed := attemptRepository.PurgeFinished(context.Background(), time.Now().Add(-cfg.Checkout.RetentionDuration()))
		if removed > 0 {
			log.Info("Checkout purge: removed %d finished attempts", removed)
		}
	}); err != nil {
		log.Fatal("Invalid checkout purge schedule %q: %v", cfg.Checkout.PurgeSchedule, err)
	}

	// Инициализируем use cases
	startCheckoutUseCase := startCheckoutUC.NewUseCase(
		salonClient,
		offeringClient,
		cartSvc,
		attemptRepository,
		log,
	)
	confirmCheckoutUseCase := confirmCheckoutUC.NewUseCase(
		bookingClient,
		attemptRepository,
		cartSvc,
		paymentSimulator,
		metricsCollector,
		log,
	)
	getCheckoutUseCase := getCheckoutUC.NewUseCase(attemptRepository, log)
	previewInvoiceUseCase := previewInvoiceUC.NewUseCase(offeringClient, cartSvc, log)
	reconcileCartUseCase := reconcileCartUC.NewUseCase(offeringClient, cartSvc, log)

	// Инициализируем handlers
	getCart := getCartHandler.NewHandler(cartSvc, log)
	addCartService := addCartServiceHandler.NewHandler(cartSvc, log)
	removeCartService := removeCartServiceHandler.NewHandler(cartSvc, log)
	mergeCart := mergeCartHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	reconcileCart := reconcileCartHandler.NewHandler(reconcileCartUseCase, log)
	previewInvoice := previewInvoiceHandler.NewHandler(previewInvoiceUseCase, log)
	startCheckout := startCheckoutHandler.NewHandler(startCheckoutUseCase, log)
	confirmCheckout := confirmCheckoutHandler.NewHandler(confirmCheckoutUseCase, log)
	getCheckout := getCheckoutHandler.NewHandler(getCheckoutUseCase, log)
	getStaffBookings := getStaffBookingsHandler.NewHandler(staffBookingsSvc, location, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(staffBookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(staffBookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		r.Use(limiter.Handler)
		if _, err := scheduler.AddFunc("@every 10m", func() {
			if n := limiter.Cleanup(); n > 0 {
				log.Info("Rate limiter: reset %d client limiters", n)
			}
		}); err != nil {
			log.Fatal("Failed to schedule rate limiter cleanup: %v", err)
		}
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// SESSION ROUTES (требуют X-Session-ID header)
	// ============================================================

	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.Session)

	// --- Корзина ---
	session.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	session.HandleFunc("/cart", clearCart.Handle).Methods(http.MethodDelete)
	session.HandleFunc("/cart/services", addCartService.Handle).Methods(http.MethodPost)
	session.HandleFunc("/cart/services/{serviceId}", removeCartService.Handle).Methods(http.MethodDelete)
	session.HandleFunc("/cart/merge", mergeCart.Handle).Methods(http.MethodPost)
	session.HandleFunc("/cart/reconcile", reconcileCart.Handle).Methods(http.MethodPost)

	// Предварительный счет корзины для салона
	session.HandleFunc("/salons/{salonId}/invoice", previewInvoice.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	// --- Оформление записи ---
	checkout := session.PathPrefix("/checkout").Subrouter()
	checkout.Use(middleware.Auth)
	checkout.HandleFunc("", startCheckout.Handle).Methods(http.MethodPost)
	checkout.HandleFunc("/{attemptId}", getCheckout.Handle).Methods(http.MethodGet)
	checkout.HandleFunc("/{attemptId}/confirm", confirmCheckout.Handle).Methods(http.MethodPost)

	// --- Расписание сотрудника ---
	staff := api.PathPrefix("/staff/{staffId}").Subrouter()
	staff.Use(middleware.Auth)
	staff.HandleFunc("/bookings", getStaffBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	scheduler.Start()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем задачи по расписанию
	<-scheduler.Stop().Done()

	// Дожидаемся ожидающих оплат
	confirmCheckoutUseCase.Wait()

	log.Info("Server stopped gracefully")
}
