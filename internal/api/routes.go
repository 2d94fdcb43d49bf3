package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"message_board/internal/api/handlers"
	"message_board/internal/metrics"
	"message_board/internal/middleware"
	"message_board/internal/service"
	"message_board/internal/web"
	"message_board/pkg/geoip"
)

// Options 是建立路由所需的其他依賴
type Options struct {
	Session     handlers.SessionOptions
	CORSOrigins []string
	Geo         geoip.GeoIP
	DB          handlers.Pinger
	Metrics     *metrics.Metrics
}

func SetupRoutes(r *gin.Engine, log *zap.Logger, services *service.Services, opts Options) error {
	templates, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(templates)

	if opts.Geo == nil {
		opts.Geo = geoip.Noop{}
	}

	// 初始化 handlers
	messageHandler := handlers.NewMessageHandler(services.MessageService)
	adminHandler := handlers.NewAdminHandler(services.AuthService, services.MessageService, opts.Geo, opts.Session)
	healthHandler := handlers.NewHealthHandler(opts.DB)

	r.Use(middleware.Logger(log))
	r.NoRoute(handlers.NoRoute)

	// 公開路由
	r.GET("/", messageHandler.Index)
	r.POST("/submit", messageHandler.Submit)
	r.GET("/healthz", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Metrics.Registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	api.Use(middleware.CORS(opts.CORSOrigins))
	{
		api.GET("/messages", messageHandler.ListMessages)
	}

	// 管理員登入與登出
	r.GET(handlers.LoginPath, adminHandler.LoginPage)
	r.POST(handlers.LoginPath, adminHandler.Login)
	r.GET("/logout", adminHandler.Logout)

	// 需要管理員身分的路由
	authorized := r.Group("/")
	authorized.Use(middleware.AdminRequired(services.AuthService, opts.Session.CookieName, handlers.LoginPath))
	{
		authorized.GET(handlers.DashboardPath, adminHandler.Dashboard)
		authorized.POST("/reply/:id", adminHandler.Reply)
	}

	return nil
}
