package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ariefcatur/go-commerce-dashboard.git/internal/config"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/invalidator"
	kafkax "github.com/ariefcatur/go-commerce-dashboard.git/internal/kafka"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/redisx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &invalidator.Service{
		Cache: &redisx.ViewCache{RDB: rdb},
		Log:   log,
	}

	group := getenv("INVALIDATOR_GROUP", "dashboard-invalidator")
	workers := mustAtoi(os.Getenv("INVALIDATOR_WORKERS"), "4")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, records.AllTopics, workers, log)

	go func() {
		log.Info("invalidator consumer started",
			zap.String("group", group),
			zap.Strings("topics", records.AllTopics),
			zap.Int("workers", workers))
		if err := cons.Start(ctx, svc.HandleCommerceEvent); err != nil {
			log.Error("consumer exit", zap.Error(err))
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down consumer")
	cancel()
	time.Sleep(500 * time.Millisecond)
}
