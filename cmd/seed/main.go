package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"schoolhub/internal/authorization"
	"schoolhub/internal/config"
	"schoolhub/internal/data"
	"schoolhub/internal/db"
	"schoolhub/internal/service"
	"schoolhub/pkg/logging"
)

func main() {
	file := flag.String("file", "seed.yaml", "path to the seed file")
	flag.Parse()

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
	defer func() { _ = logger.Sync() }()
	ctx = logging.ContextWithLogger(ctx, logger)

	seed, err := LoadSeedFile(*file)
	if err != nil {
		logger.Fatal(ctx, "cannot load seed file", zap.Error(err))
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	userRepo := data.NewUserRepository(pool)
	departmentRepo := data.NewDepartmentRepository(pool)
	tokens := authorization.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTokenTTL())

	s := &seeder{
		auth:        service.NewAuthService(userRepo, departmentRepo, tokens, cfg.RefreshTokenTTL),
		departments: service.NewDepartmentService(departmentRepo, userRepo),
		users:       userRepo,
	}

	res, err := s.Run(ctx, seed)
	if err != nil {
		logger.Error(ctx, "seeding failed", zap.Error(err))
		return
	}
	logger.Info(ctx, "seeding finished", zap.Int("created", res.Created), zap.Int("skipped", res.Skipped))
}
