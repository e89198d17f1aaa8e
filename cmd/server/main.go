package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"schoolhub/internal/authorization"
	"schoolhub/internal/cache"
	"schoolhub/internal/config"
	"schoolhub/internal/data"
	"schoolhub/internal/db"
	"schoolhub/internal/events"
	"schoolhub/internal/handler"
	"schoolhub/internal/handler/middleware"
	"schoolhub/internal/service"
	"schoolhub/internal/storage"
	"schoolhub/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		panic(fmt.Sprintf("cannot create config: %v", err))
	}

	zapLogger, err := logging.NewZap(cfg.Env)
	if err != nil {
		panic(err)
	}
	logger := logging.New(zapLogger)
	defer logger.Sync()
	ctx = logging.ContextWithLogger(ctx, logger)

	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	s3Client, err := storage.NewClient(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create s3 client", zap.Error(err))
	}
	fileStorage, err := storage.NewFileStorage(ctx, s3Client, cfg.S3Bucket)
	if err != nil {
		logger.Fatal(ctx, "cannot prepare file storage", zap.Error(err))
	}

	var responseCache handler.Cache
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal(ctx, "cannot connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		responseCache = cache.NewRedisCache(rdb, "schoolhub:")
	} else {
		responseCache = cache.NewMemoryCache()
	}

	userRepo := data.NewUserRepository(pool)
	departmentRepo := data.NewDepartmentRepository(pool)
	courseRepo := data.NewCourseRepository(pool)
	batchRepo := data.NewBatchRepository(pool)
	enrollmentRepo := data.NewEnrollmentRepository(pool)
	attendanceRepo := data.NewAttendanceRepository(pool)
	assignmentRepo := data.NewAssignmentRepository(pool)
	submissionRepo := data.NewSubmissionRepository(pool)
	notificationRepo := data.NewNotificationRepository(pool)

	var fanout *service.FanOut
	if cfg.KafkaEnabled {
		publisher := events.NewPublisher(events.Config{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaNotificationTopic,
		})
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error(ctx, "failed to close kafka publisher", zap.Error(err))
			}
		}()
		fanout = service.NewFanOut(notificationRepo, publisher)
	} else {
		fanout = service.NewFanOut(notificationRepo, nil)
	}

	tokens := authorization.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTokenTTL())

	authService := service.NewAuthService(userRepo, departmentRepo, tokens, cfg.RefreshTokenTTL)
	profileService := service.NewProfileService(userRepo)
	departmentService := service.NewDepartmentService(departmentRepo, userRepo)
	courseService := service.NewCourseService(departmentRepo, courseRepo, fanout)
	batchService := service.NewBatchService(courseRepo, batchRepo, fanout)
	enrollmentService := service.NewEnrollmentService(batchRepo, enrollmentRepo, userRepo)
	attendanceService := service.NewAttendanceService(batchRepo, attendanceRepo, userRepo, fanout)
	assignmentService := service.NewAssignmentService(batchRepo, assignmentRepo, userRepo)
	submissionService := service.NewSubmissionService(assignmentRepo, submissionRepo, userRepo, fileStorage, fanout, cfg.MaxUploadBytes)
	notificationService := service.NewNotificationService(notificationRepo)

	handlers := []interface {
		RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
	}{
		handler.NewAuthHandler(authService),
		handler.NewProfileHandler(profileService, enrollmentService, attendanceService, batchService),
		handler.NewDepartmentHandler(departmentService, responseCache, cfg.CacheTTL),
		handler.NewCourseHandler(courseService, responseCache, cfg.CacheTTL),
		handler.NewBatchHandler(batchService),
		handler.NewEnrollmentHandler(enrollmentService),
		handler.NewAttendanceHandler(attendanceService),
		handler.NewAssignmentHandler(assignmentService),
		handler.NewSubmissionHandler(submissionService, cfg.MaxUploadBytes),
		handler.NewNotificationHandler(notificationService),
	}

	authMiddleware := middleware.NewAuthMiddleware(authService)
	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		// multipart framing on top of the largest allowed file
		return http.MaxBytesHandler(next, cfg.MaxUploadBytes+1<<20)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		for _, h := range handlers {
			h.RegisterRoutes(r, authMiddleware)
		}
	})

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:              port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "server shutdown failed", zap.Error(err))
	}
}
