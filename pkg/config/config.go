package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"message_board/internal/apperrors"
)

// Config 是應用程式的全部設定
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Session  SessionConfig  `mapstructure:"session"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	GeoIP    GeoIPConfig    `mapstructure:"geoip"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// AdminConfig 唯一的管理員帳號，啟動時即必須提供
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	TTL        time.Duration `mapstructure:"ttl"`
	Secure     bool          `mapstructure:"secure"`
	CookieName string        `mapstructure:"cookie_name"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	FormatJSON bool   `mapstructure:"format_json"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type GeoIPConfig struct {
	CountryDB string `mapstructure:"country_db"`
}

const defaultAddress = ":5000"

var defaults = map[string]any{
	"server.address":          defaultAddress,
	"server.port":             "",
	"server.shutdown_timeout": 10 * time.Second,
	"database.url":            "",
	"admin.username":          "",
	"admin.password":          "",
	"session.secret":          "",
	"session.ttl":             2 * time.Hour,
	"session.secure":          false,
	"session.cookie_name":     "admin_session",
	"log.level":               "info",
	"log.format_json":         false,
	"log.file":                "",
	"log.max_size":            100,
	"log.max_backups":         3,
	"log.max_age":             28,
	"cors.allow_origins":      []string{},
	"geoip.country_db":        "",
}

// Load 讀取設定：環境變數優先，其次是可選的 config.yaml，最後是預設值。
// 缺少必要設定時回傳 apperrors.ErrMissingConfig。
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./pkg/config")
	v.AddConfigPath(".")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if config.Server.Address == defaultAddress && config.Server.Port != "" {
		config.Server.Address = ":" + config.Server.Port
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate 檢查所有必要的設定是否存在
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Database.URL) == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if strings.TrimSpace(c.Admin.Username) == "" {
		missing = append(missing, "ADMIN_USERNAME")
	}
	if strings.TrimSpace(c.Admin.Password) == "" {
		missing = append(missing, "ADMIN_PASSWORD")
	}
	if strings.TrimSpace(c.Session.Secret) == "" {
		missing = append(missing, "SESSION_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrMissingConfig, strings.Join(missing, ", "))
	}

	return nil
}
