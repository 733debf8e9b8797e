package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crevo-hub/LeaderboardEngineService/internal/aggregator"
	"github.com/crevo-hub/LeaderboardEngineService/internal/config"
	"github.com/crevo-hub/LeaderboardEngineService/internal/db"
	"github.com/crevo-hub/LeaderboardEngineService/internal/handlers"
	"github.com/crevo-hub/LeaderboardEngineService/internal/leaderboard"
	"github.com/crevo-hub/LeaderboardEngineService/internal/platforms"
	"github.com/crevo-hub/LeaderboardEngineService/internal/repo"
	"github.com/crevo-hub/LeaderboardEngineService/internal/scheduler"
	"github.com/crevo-hub/LeaderboardEngineService/internal/wss"
)

func main() {
	cfg := config.LoadConfig()

	mongoClient, err := db.InitDB(&cfg)
	if err != nil {
		log.Fatalf("Mongo init failed: %v", err)
	}
	store := repo.NewMongoRepository(mongoClient, cfg.MongoDatabase)

	httpClient := platforms.NewHTTPClient(cfg.AdapterTimeout)
	adapters := aggregator.Adapters{
		Leetcode:   platforms.NewLeetcodeAdapter(cfg.LeetcodeAPIURL, httpClient),
		GFG:        platforms.NewGFGAdapter(cfg.GFGAPIURL, httpClient),
		Github:     platforms.NewGithubAdapter(cfg.GithubAPIURL, cfg.GithubToken, httpClient),
		Codechef:   platforms.NewCodechefAdapter(cfg.CodechefURL, httpClient),
		Hackerrank: platforms.NewHackerrankAdapter(cfg.HackerrankURL, httpClient),
	}
	agg := aggregator.New(store, adapters, cfg.FreshnessWindow, cfg.AdapterTimeout)

	hub := wss.NewHub()
	manager := leaderboard.NewManager(store, store, agg, cfg.WorkerPoolSize, cfg.AdminEmails).
		WithNotifier(hub)

	// The snapshot cache is an optimization; run without it if Redis is
	// unreachable.
	if redisClient, err := db.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, serving snapshots without cache: %v", err)
	} else {
		manager.WithCache(repo.NewSnapshotCache(redisClient, cfg.SnapshotCacheTTL))
	}

	ctx, cancel := context.WithCancel(context.Background())
	sched := scheduler.New(manager, cfg.RefreshInterval)
	go sched.Run(ctx)

	handler := handlers.NewLeaderboardHandler(manager, sched)
	router := handlers.NewRouter(handler, hub)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Starting leaderboard engine on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down")

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Printf("Mongo disconnect: %v", err)
	}
}
