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

	addTouristHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/add_tourist"
	closeVisitHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/close_visit"
	createRatingHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/create_rating"
	findReplacementsHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/find_replacements"
	getGuideVisitsHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/get_guide_visits"
	getVisitHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/get_visit"
	guideAvailabilityHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/guide_availability"
	guidePerformanceHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/guide_performance"
	listTouristsHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/list_tourists"
	markPresenceHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/mark_presence"
	moderateRatingHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/moderate_rating"
	monthlyStatisticsHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/monthly_statistics"
	pendingRefundsHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/pending_refunds"
	popularActivitiesHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/popular_activities"
	processRefundHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/process_refund"
	refundHistoryHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/refund_history"
	requestRefundHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/request_refund"
	scheduleVisitHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/schedule_visit"
	updateGuideScheduleHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/update_guide_schedule"
	updateVisitStatusHandler "github.com/travelparadise/TP-VisitService/internal/api/handlers/update_visit_status"
	"github.com/travelparadise/TP-VisitService/internal/api/middleware"
	"github.com/travelparadise/TP-VisitService/internal/config"
	guideRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/guide"
	placeRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/place"
	ratingRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/rating"
	refundRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/refund"
	touristRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/tourist"
	unavailabilityRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/unavailability"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
	notifierClient "github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
	staffServiceClient "github.com/travelparadise/TP-VisitService/internal/integrations/staffservice"
	availabilityService "github.com/travelparadise/TP-VisitService/internal/service/availability"
	ratingsService "github.com/travelparadise/TP-VisitService/internal/service/ratings"
	refundsService "github.com/travelparadise/TP-VisitService/internal/service/refunds"
	statisticsService "github.com/travelparadise/TP-VisitService/internal/service/statistics"
	touristsService "github.com/travelparadise/TP-VisitService/internal/service/tourists"
	visitsService "github.com/travelparadise/TP-VisitService/internal/service/visits"
	addTouristUC "github.com/travelparadise/TP-VisitService/internal/usecase/add_tourist"
	approveRefundUC "github.com/travelparadise/TP-VisitService/internal/usecase/approve_refund"
	scheduleVisitUC "github.com/travelparadise/TP-VisitService/internal/usecase/schedule_visit"
	"github.com/travelparadise/TP-VisitService/pkg/logger"
	"github.com/travelparadise/TP-VisitService/pkg/metrics"
	"github.com/travelparadise/TP-VisitService/pkg/txmanager"
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

	log.Info("Starting TP-VisitService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	notifier := notifierClient.NewClient(
		cfg.NotifierService.URL,
		time.Duration(cfg.NotifierService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s timeout=%ds, Notifier=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout, cfg.NotifierService.URL, cfg.NotifierService.Timeout)

	// Инициализируем репозитории
	visitRepository := visitRepo.NewRepository(db)
	guideRepository := guideRepo.NewRepository(db)
	placeRepository := placeRepo.NewRepository(db)
	touristRepository := touristRepo.NewRepository(db)
	unavailabilityRepository := unavailabilityRepo.NewRepository(db)
	refundRepository := refundRepo.NewRepository(db)
	ratingRepository := ratingRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	visitSvc := visitsService.NewService(visitRepository, staffClient, notifier, log)
	availabilitySvc := availabilityService.NewService(
		guideRepository,
		visitRepository,
		unavailabilityRepository,
		log,
	)
	touristSvc := touristsService.NewService(touristRepository, visitRepository, log)
	refundSvc := refundsService.NewService(refundRepository, visitRepository, staffClient, notifier, log)
	statisticsSvc := statisticsService.NewService(visitRepository, touristRepository, ratingRepository, log)
	ratingSvc := ratingsService.NewService(ratingRepository, visitRepository, staffClient, log)

	// Инициализируем use cases
	scheduleVisitUseCase := scheduleVisitUC.NewUseCase(
		visitRepository,
		guideRepository,
		placeRepository,
		unavailabilityRepository,
		notifier,
		txMgr,
		log,
	)
	addTouristUseCase := addTouristUC.NewUseCase(
		visitRepository,
		touristRepository,
		txMgr,
		log,
	)
	approveRefundUseCase := approveRefundUC.NewUseCase(
		refundRepository,
		visitRepository,
		staffClient,
		notifier,
		txMgr,
		log,
	)

	// Инициализируем handlers
	scheduleVisit := scheduleVisitHandler.NewHandler(scheduleVisitUseCase, log)
	getVisit := getVisitHandler.NewHandler(visitSvc, log)
	getGuideVisits := getGuideVisitsHandler.NewHandler(visitSvc, log)
	updateVisitStatus := updateVisitStatusHandler.NewHandler(visitSvc, log)
	closeVisit := closeVisitHandler.NewHandler(visitSvc, log)
	addTourist := addTouristHandler.NewHandler(addTouristUseCase, log)
	listTourists := listTouristsHandler.NewHandler(touristSvc, log)
	markPresence := markPresenceHandler.NewHandler(touristSvc, log)
	guideAvailability := guideAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateGuideSchedule := updateGuideScheduleHandler.NewHandler(availabilitySvc, log)
	findReplacements := findReplacementsHandler.NewHandler(availabilitySvc, log)
	guidePerformance := guidePerformanceHandler.NewHandler(statisticsSvc, log)
	requestRefund := requestRefundHandler.NewHandler(refundSvc, log)
	processRefund := processRefundHandler.NewHandler(approveRefundUseCase, refundSvc, log)
	pendingRefunds := pendingRefundsHandler.NewHandler(refundSvc, log)
	refundHistory := refundHistoryHandler.NewHandler(refundSvc, log)
	monthlyStatistics := monthlyStatisticsHandler.NewHandler(statisticsSvc, log)
	popularActivities := popularActivitiesHandler.NewHandler(statisticsSvc, log)
	createRating := createRatingHandler.NewHandler(ratingSvc, log)
	moderateRating := moderateRatingHandler.NewHandler(ratingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность гида на день
	api.HandleFunc("/guides/{guideId}/availability", guideAvailability.Handle).Methods(http.MethodGet)

	// Поиск доступных замен
	api.HandleFunc("/guides/replacements", findReplacements.Handle).Methods(http.MethodGet)

	// Статистика
	api.HandleFunc("/statistics/monthly", monthlyStatistics.Handle).Methods(http.MethodGet)
	api.HandleFunc("/statistics/popular-activities", popularActivities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/guides/{guideId}/performance", guidePerformance.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Визиты ---
	protected.HandleFunc("/visits", scheduleVisit.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visits/{visitId}", getVisit.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/visits/{visitId}/status", updateVisitStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/visits/{visitId}/close", closeVisit.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/guides/{guideId}/visits", getGuideVisits.Handle).Methods(http.MethodGet)

	// --- Туристы ---
	protected.HandleFunc("/visits/{visitId}/tourists", addTourist.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visits/{visitId}/tourists", listTourists.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tourists/{touristId}/presence", markPresence.Handle).Methods(http.MethodPatch)

	// --- Расписание гидов ---
	protected.HandleFunc("/guides/{guideId}/schedule", updateGuideSchedule.Handle).Methods(http.MethodPut)

	// --- Возвраты ---
	protected.HandleFunc("/visits/{visitId}/refunds", requestRefund.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visits/{visitId}/refunds", refundHistory.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/refunds/pending", pendingRefunds.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/refunds/{refundId}", processRefund.Handle).Methods(http.MethodPatch)

	// --- Оценки ---
	protected.HandleFunc("/visits/{visitId}/ratings", createRating.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/ratings/{ratingId}/status", moderateRating.Handle).Methods(http.MethodPatch)

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

	log.Info("Server stopped gracefully")
}
