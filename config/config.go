package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	CORSOrigins string

	MongoURI string
	MongoDB  string

	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration

	MinioEndpoint    string
	MinioAccessKey   string
	MinioSecretKey   string
	MinioUseSSL      bool
	MinioVideoBucket string
	MinioImageBucket string
	MediaPublicURL   string

	TempDir        string
	BodyLimitMB    int
	RequestTimeout time.Duration
}

var defaults = map[string]any{
	"port":                 "8000",
	"environment":          "development",
	"log_level":            "info",
	"cors_origins":         "*",
	"mongo_uri":            "mongodb://localhost:27017",
	"mongo_db":             "vidtube",
	"access_token_expiry":  "24h",
	"refresh_token_expiry": "240h",
	"minio_endpoint":       "localhost:9000",
	"minio_access_key":     "minioadmin",
	"minio_secret_key":     "minioadmin",
	"minio_use_ssl":        false,
	"minio_video_bucket":   "videos",
	"minio_image_bucket":   "images",
	"media_public_url":     "http://localhost:9000",
	"temp_dir":             "./public/temp",
	"body_limit_mb":        512,
	"request_timeout":      "30s",
}

// Load reads .env (if present), an optional config.yml and the process
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.WithMessage(err, "read config file")
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:               v.GetString("port"),
		Environment:        v.GetString("environment"),
		LogLevel:           v.GetString("log_level"),
		CORSOrigins:        v.GetString("cors_origins"),
		MongoURI:           v.GetString("mongo_uri"),
		MongoDB:            v.GetString("mongo_db"),
		AccessTokenSecret:  v.GetString("access_token_secret"),
		AccessTokenExpiry:  v.GetDuration("access_token_expiry"),
		RefreshTokenSecret: v.GetString("refresh_token_secret"),
		RefreshTokenExpiry: v.GetDuration("refresh_token_expiry"),
		MinioEndpoint:      v.GetString("minio_endpoint"),
		MinioAccessKey:     v.GetString("minio_access_key"),
		MinioSecretKey:     v.GetString("minio_secret_key"),
		MinioUseSSL:        v.GetBool("minio_use_ssl"),
		MinioVideoBucket:   v.GetString("minio_video_bucket"),
		MinioImageBucket:   v.GetString("minio_image_bucket"),
		MediaPublicURL:     strings.TrimRight(v.GetString("media_public_url"), "/"),
		TempDir:            v.GetString("temp_dir"),
		BodyLimitMB:        v.GetInt("body_limit_mb"),
		RequestTimeout:     v.GetDuration("request_timeout"),
	}

	if cfg.AccessTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.RefreshTokenSecret == "" {
		return nil, errors.New("REFRESH_TOKEN_SECRET is required")
	}
	if cfg.AccessTokenExpiry <= 0 || cfg.RefreshTokenExpiry <= 0 {
		return nil, errors.New("token expiry must be a positive duration")
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
