package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"message_board/internal/api"
	"message_board/internal/api/handlers"
	"message_board/internal/metrics"
	"message_board/internal/models"
	"message_board/internal/repository"
	"message_board/internal/service"
	"message_board/internal/storage"
	"message_board/pkg/config"
	"message_board/pkg/geoip"
	"message_board/pkg/logger"
)

func main() {
	// 本機開發時從 .env 載入環境變數，檔案不存在則略過
	_ = godotenv.Load(".env")

	// 載入應用程式配置，缺少必要設定時直接結束
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.MustSetupLogger(&logger.Config{
		Level:      cfg.Log.Level,
		FormatJSON: cfg.Log.FormatJSON,
		Rotation: logger.Rotation{
			File:       cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// run 回傳前所有 defer 都已執行，資料庫與 GeoIP 皆已關閉
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("Application exited with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	// 確保在程序結束時關閉數據庫連接
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.Message{}); err != nil {
		return fmt.Errorf("auto migrate database: %w", err)
	}

	var geo geoip.GeoIP = geoip.Noop{}
	if cfg.GeoIP.CountryDB != "" {
		g, err := geoip.NewGeo(cfg.GeoIP.CountryDB)
		if err != nil {
			return fmt.Errorf("open GeoIP database: %w", err)
		}
		geo = g
	}
	defer func() { _ = geo.Close() }()

	// 初始化 repositories 和 services
	m := metrics.New()
	repos := repository.NewRepositories(db)
	services, err := service.NewServices(log, repos, service.AuthConfig{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
		Secret:   cfg.Session.Secret,
		TTL:      cfg.Session.TTL,
	}, m)
	if err != nil {
		return fmt.Errorf("initialize services: %w", err)
	}

	// 設置 Gin 路由
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	err = api.SetupRoutes(r, log, services, api.Options{
		Session: handlers.SessionOptions{
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.Session.TTL,
			Secure:     cfg.Session.Secure,
		},
		CORSOrigins: cfg.CORS.AllowOrigins,
		Geo:         geo,
		DB:          db,
		Metrics:     m,
	})
	if err != nil {
		return fmt.Errorf("set up routes: %w", err)
	}

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("address", cfg.Server.Address))
		errs <- server.ListenAndServe()
	}()

	var serveErr error
	select {
	case err := <-errs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		log.Info("Received stop signal, shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shutdown server", zap.Error(err))
	}

	log.Info("Application has shutdown")
	return serveErr
}
