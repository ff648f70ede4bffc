package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-commerce-dashboard.git/internal/config"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/dashboard"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-commerce-dashboard.git/internal/kafka"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/postgres"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/records"
	"github.com/ariefcatur/go-commerce-dashboard.git/internal/redisx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

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

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer for refresh broadcasts
	prod := kafkax.NewProducer(cfg.KafkaBrokers, records.TopicDashboardRefresh, 1024, log)
	prod.Start(ctx)

	// Aggregation service & handler
	svc := dashboard.NewService(&records.Repo{DB: db}, log)
	router := httpx.NewRouter()
	dh := &httpx.DashboardHandler{
		Service:  svc,
		Cache:    &redisx.ViewCache{RDB: rdb},
		Producer: prod,
		Log:      log,
		Name:     cfg.ServiceName,
	}
	dh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // stop intake -> flush & close writer
	cancel()
	prod.WaitClosed() // drain
}
