package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "default"

// SiteConfig holds the settings exposed to templates and the cookie key material.
type SiteConfig struct {
	SecretKey       string
	IssuerName      string
	SiteDescription string
	IssuerLogoPath  string
	IssuerEmail     string
	Theme           string
	RecentCertIDs   []string
}

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for the certificate documents bucket.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RedisConfig holds the optional certificate cache settings. An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTLSec   int
}

// AppConfig is the centralized configuration struct for the application.
// It is built once at startup and never mutated afterwards.
type AppConfig struct {
	AppHost            string
	Port               string
	ThemesDir          string
	LogLevel           string
	ShutdownTimeoutSec int
	Site               SiteConfig
	Database           DatabaseConfig
	MinIO              MinIOConfig
	Redis              RedisConfig
}

// envBindings maps configuration keys to the environment variables that override them.
var envBindings = map[string]string{
	"app_host":             "APP_HOST",
	"port":                 "PORT",
	"themes_dir":           "THEMES_DIR",
	"log_level":            "LOG_LEVEL",
	"shutdown_timeout_sec": "SHUTDOWN_TIMEOUT_SEC",

	"site.secret_key":       "SECRET_KEY",
	"site.issuer_name":      "ISSUER_NAME",
	"site.site_description": "SITE_DESCRIPTION",
	"site.issuer_logo_path": "ISSUER_LOGO_PATH",
	"site.issuer_email":     "ISSUER_EMAIL",
	"site.theme":            "THEME",
	"site.recent_certids":   "RECENT_CERTIDS",

	"database.host":                  "DB_HOST",
	"database.port":                  "DB_PORT",
	"database.user":                  "DB_USER",
	"database.password":              "DB_PASSWORD",
	"database.name":                  "DB_NAME",
	"database.sslmode":               "DB_SSLMODE",
	"database.max_open_conns":        "DB_MAX_OPEN_CONNS",
	"database.max_idle_conns":        "DB_MAX_IDLE_CONNS",
	"database.conn_max_lifetime_sec": "DB_CONN_MAX_LIFETIME_SEC",

	"minio.endpoint":   "MINIO_ENDPOINT",
	"minio.access_key": "MINIO_ACCESS_KEY",
	"minio.secret_key": "MINIO_SECRET_KEY",
	"minio.bucket":     "MINIO_BUCKET",
	"minio.use_ssl":    "MINIO_USE_SSL",

	"redis.addr":     "REDIS_ADDR",
	"redis.password": "REDIS_PASSWORD",
	"redis.db":       "REDIS_DB",
	"redis.ttl_sec":  "CACHE_TTL_SEC",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_host", "localhost:8080")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout_sec", 10)
	v.SetDefault("site.theme", DefaultTheme)
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_sec", 300)
	v.SetDefault("minio.bucket", "certificates")
	v.SetDefault("redis.ttl_sec", 300)
}

// Load builds the configuration from defaults, an optional config file and environment variables,
// in increasing order of precedence. A .env file can be auto-loaded by importing
// _ "github.com/joho/godotenv/autoload" before calling Load.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := &AppConfig{
		AppHost:            v.GetString("app_host"),
		Port:               v.GetString("port"),
		ThemesDir:          v.GetString("themes_dir"),
		LogLevel:           v.GetString("log_level"),
		ShutdownTimeoutSec: v.GetInt("shutdown_timeout_sec"),
		Site: SiteConfig{
			SecretKey:       v.GetString("site.secret_key"),
			IssuerName:      v.GetString("site.issuer_name"),
			SiteDescription: v.GetString("site.site_description"),
			IssuerLogoPath:  v.GetString("site.issuer_logo_path"),
			IssuerEmail:     v.GetString("site.issuer_email"),
			Theme:           v.GetString("site.theme"),
			RecentCertIDs:   SplitList(v.GetString("site.recent_certids")),
		},
		Database: DatabaseConfig{
			Host:               v.GetString("database.host"),
			Port:               v.GetString("database.port"),
			User:               v.GetString("database.user"),
			Password:           v.GetString("database.password"),
			Name:               v.GetString("database.name"),
			SSLMode:            v.GetString("database.sslmode"),
			MaxOpenConns:       v.GetInt("database.max_open_conns"),
			MaxIdleConns:       v.GetInt("database.max_idle_conns"),
			ConnMaxLifetimeSec: v.GetInt("database.conn_max_lifetime_sec"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("minio.endpoint"),
			AccessKey: v.GetString("minio.access_key"),
			SecretKey: v.GetString("minio.secret_key"),
			Bucket:    v.GetString("minio.bucket"),
			UseSSL:    v.GetBool("minio.use_ssl"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTLSec:   v.GetInt("redis.ttl_sec"),
		},
	}

	if cfg.Site.Theme == "" {
		cfg.Site.Theme = DefaultTheme
	}
	if cfg.Site.SecretKey == "" {
		key, err := randomKey()
		if err != nil {
			return nil, err
		}
		cfg.Site.SecretKey = key
	}
	return cfg, nil
}

// SplitList splits a comma-separated value into its trimmed, non-empty elements, keeping order.
// An empty value yields an empty, non-nil slice. Blank items are dropped rather than kept as
// empty strings, so "a,,b" yields ["a" "b"] and never an empty certificate link.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func randomKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate secret key: %w", err)
	}
	return hex.EncodeToString(b), nil
}
