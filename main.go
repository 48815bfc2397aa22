package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/c14220110/hms-console/config"
	"github.com/c14220110/hms-console/internal/common/middlewares"
	"github.com/c14220110/hms-console/internal/common/records"
	"github.com/c14220110/hms-console/internal/routes"
	"github.com/c14220110/hms-console/pkg/logger"
	"github.com/c14220110/hms-console/pkg/salesforce"
	"github.com/c14220110/hms-console/pkg/storage/mariadb"
	"github.com/c14220110/hms-console/ws"
)

func main() {
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, zlog *zap.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, zlog)
	if err != nil {
		return err
	}
	defer closeStore()

	hub := ws.NewHub(zlog.Named("ws"))
	go hub.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middlewares.RequestLogger(zlog.Named("http")))

	closeCharts := routes.Init(e, routes.Deps{Config: cfg, Store: store, Hub: hub, Logger: zlog})
	defer closeCharts()

	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("record_source", cfg.RecordSource),
		zap.Bool("jwt", cfg.JWTSecret != ""))
	return routes.Serve(ctx, e, ":"+cfg.Port)
}

// openStore picks the record collaborator named by RECORD_SOURCE.
func openStore(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (records.Store, func(), error) {
	switch cfg.RecordSource {
	case config.SourceSalesforce:
		if cfg.SFAccessToken == "" {
			zlog.Warn("SF_ACCESS_TOKEN is not set; every record request will fail")
		}
		client := salesforce.NewClient(cfg.SFInstanceURL, cfg.SFAccessToken,
			salesforce.WithAPIVersion(cfg.SFAPIVersion),
			salesforce.WithLogger(zlog.Named("salesforce")))
		return records.NewSalesforceStore(client), func() {}, nil

	case config.SourceMariaDB:
		db, err := mariadb.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := mariadb.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		zlog.Info("connected to mariadb", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
		return mariadb.NewRecordStore(db), func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown RECORD_SOURCE %q", cfg.RecordSource)
	}
}
