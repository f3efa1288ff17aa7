package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Token     TokenConfig
	RateLimit RateLimitConfig
	Respaldo  RespaldoConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// JWTConfig describes the signed bearer token: integrity and claim
// correctness only. Session liveness is decided by the token store.
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// TokenConfig controls the opaque session-token store.
type TokenConfig struct {
	TTL time.Duration
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

// RespaldoConfig configures the optional audit-log backup bucket.
type RespaldoConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Intervalo time.Duration
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_DATABASE", "geotrack")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("JWT_ISSUER", "geotrack-api")
	viper.SetDefault("JWT_AUDIENCE", "geotrack-clients")
	viper.SetDefault("JWT_TTL_MINUTES", 60)
	viper.SetDefault("TOKEN_TTL_MINUTES", 30)
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	viper.SetDefault("RESPALDO_INTERVALO_MINUTES", 1440)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		JWT: JWTConfig{
			Secret:   os.Getenv("JWT_SECRET"),
			Issuer:   viper.GetString("JWT_ISSUER"),
			Audience: viper.GetString("JWT_AUDIENCE"),
			TTL:      time.Duration(viper.GetInt("JWT_TTL_MINUTES")) * time.Minute,
		},
		Token: TokenConfig{
			TTL: time.Duration(viper.GetInt("TOKEN_TTL_MINUTES")) * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Respaldo: RespaldoConfig{
			Endpoint:  viper.GetString("RESPALDO_ENDPOINT"),
			AccessKey: viper.GetString("RESPALDO_ACCESS_KEY"),
			SecretKey: os.Getenv("RESPALDO_SECRET_KEY"),
			Bucket:    viper.GetString("RESPALDO_BUCKET"),
			UseSSL:    viper.GetBool("RESPALDO_USE_SSL"),
			Intervalo: time.Duration(viper.GetInt("RESPALDO_INTERVALO_MINUTES")) * time.Minute,
		},
	}

	return cfg, nil
}
