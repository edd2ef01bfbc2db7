package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bookingdesk/api"
	"bookingdesk/config"
	"bookingdesk/internal/bootstrap"
	"bookingdesk/internal/sample"
	"bookingdesk/internal/service/dashboard"
	"bookingdesk/pkg/logger"
	"bookingdesk/pkg/metrics"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bookings := sample.Generate(cfg.Sample.Size, cfg.Sample.Seed)
	zlog.Infow("sample bookings generated", "count", len(bookings), "seed", cfg.Sample.Seed)

	m := metrics.New("bookingdesk")
	service := dashboard.NewService(
		bookings,
		cfg.Dashboard.ItemsPerPage,
		dashboard.WithLogger(zlog),
		dashboard.WithMetrics(m),
	)

	handler := api.NewDashboardHandler(service, m)
	router := api.NewRouter(handler, zlog)

	if err := bootstrap.Run(ctx, cfg, router, zlog); err != nil {
		zlog.Fatalw("server error", "error", err)
	}
}
