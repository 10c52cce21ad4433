package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	authhttp "github.com/akovalyov/authcore/internal/auth/http"
	"github.com/akovalyov/authcore/internal/auth/identity"
	"github.com/akovalyov/authcore/internal/auth/token"
	"github.com/akovalyov/authcore/internal/cache"
	"github.com/akovalyov/authcore/internal/common/clock"
	"github.com/akovalyov/authcore/internal/common/config"
	"github.com/akovalyov/authcore/internal/common/constants"
	commoncrypto "github.com/akovalyov/authcore/internal/common/crypto"
	"github.com/akovalyov/authcore/internal/common/db"
	commonhttp "github.com/akovalyov/authcore/internal/common/http"
	"github.com/akovalyov/authcore/internal/common/logger"
	srv "github.com/akovalyov/authcore/internal/common/server"
	userrepo "github.com/akovalyov/authcore/internal/user/repository"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "authcore", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clk := clock.NewRealClock()

	var userCache cache.Cache
	var redisClient redis.UniversalClient
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		userCache = cache.NewRedis(redisClient, "authcore")
		log.Infof("user cache backed by redis at %s", cfg.RedisAddr)
	} else {
		memory := cache.NewMemory(clk)
		go memory.StartSweeper(ctx, constants.MemoryCacheSweepInterval)
		userCache = memory
		log.Infof("user cache backed by in-process memory")
	}

	tokens, err := token.NewService(
		cfg.JWTSecret,
		commoncrypto.NewUUIDGenerator(),
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
		clk,
	)
	if err != nil {
		log.Fatalf("failed to build token service: %v", err)
	}

	userRepo := userrepo.NewPgRepository(pool)
	resolver := identity.NewResolver(tokens, userRepo, log).
		WithUserCache(userCache, cfg.UserCacheTTL)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())
	me := commonhttp.RequireMethod(http.MethodGet)(
		commonhttp.WithTimeout(cfg.RequestTimeout)(meHandler),
	)
	mux.Handle("/api/me", authhttp.RequireUser(resolver, log)(me))

	handler := commonhttp.RecoveryMiddleware(log)(mux)

	server := srv.NewServer(srv.DefaultServerConfig(cfg.HTTPPort), handler)

	shutdownHooks := []srv.ShutdownHook{
		func(ctx context.Context) error {
			cancel()
			if redisClient != nil {
				return redisClient.Close()
			}
			return nil
		},
	}

	srv.StartWithGracefulShutdownAndHooks(server, log, "authcore", shutdownHooks)
}

func meHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := authhttp.UserFromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	commonhttp.WriteJSON(w, http.StatusOK, map[string]any{
		"id":        string(user.ID),
		"email":     user.Email,
		"is_active": user.IsActive,
	})
}
