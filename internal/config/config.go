package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Store     StoreConfig     `yaml:"store"     validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Flights   FlightsConfig   `yaml:"flights"`
	Places    PlacesConfig    `yaml:"places"`
	Email     EmailConfig     `yaml:"email"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	CORS      CORSConfig      `yaml:"cors"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StoreConfig struct {
	DataDir   string `yaml:"data_dir"   env:"STORE_DATA_DIR"   env-default:"data"         validate:"required"`
	BackupDir string `yaml:"backup_dir" env:"STORE_BACKUP_DIR" env-default:"data/backups" validate:"required"`
}

type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"           env:"JWT_SECRET"           env-default:"dev-secret-change-me" validate:"required"`
	TokenTTL           time.Duration `yaml:"token_ttl"            env:"JWT_TOKEN_TTL"        env-default:"24h"                  validate:"gt=0"`
	SuperAdminEmail    string        `yaml:"super_admin_email"    env:"SUPER_ADMIN_EMAIL"    env-default:""`
	SuperAdminPassword string        `yaml:"super_admin_password" env:"SUPER_ADMIN_PASSWORD" env-default:""`
}

type FlightsConfig struct {
	BaseURL      string        `yaml:"base_url"      env:"FLIGHTS_BASE_URL"      env-default:"https://test.api.amadeus.com/v2"`
	TokenURL     string        `yaml:"token_url"     env:"FLIGHTS_TOKEN_URL"     env-default:"https://test.api.amadeus.com/v1/security/oauth2/token"`
	ClientID     string        `yaml:"client_id"     env:"FLIGHTS_CLIENT_ID"     env-default:""`
	ClientSecret string        `yaml:"client_secret" env:"FLIGHTS_CLIENT_SECRET" env-default:""`
	Timeout      time.Duration `yaml:"timeout"       env:"FLIGHTS_TIMEOUT"       env-default:"15s" validate:"gt=0"`
	MaxResults   int           `yaml:"max_results"   env:"FLIGHTS_MAX_RESULTS"   env-default:"25"  validate:"min=1"`
}

type PlacesConfig struct {
	BaseURL string        `yaml:"base_url" env:"PLACES_BASE_URL" env-default:"https://serpapi.com"`
	APIKey  string        `yaml:"api_key"  env:"PLACES_API_KEY"  env-default:""`
	Timeout time.Duration `yaml:"timeout"  env:"PLACES_TIMEOUT"  env-default:"10s" validate:"gt=0"`
}

type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY" env-default:""`
	FromName       string `yaml:"from_name"        env:"EMAIL_FROM_NAME"  env-default:"Horizon Stays"`
	FromAddress    string `yaml:"from_address"     env:"EMAIL_FROM"       env-default:"bookings@horizonstays.example"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1h" validate:"required,gt=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
