package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string   `mapstructure:"APP_PORT"`
	Env               string   `mapstructure:"ENV"`
	LogLevel          string   `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int      `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Tokens.
	JWTSecret        string        `mapstructure:"JWT_SECRET"`
	AdminJWTSecret   string        `mapstructure:"ADMIN_JWT_SECRET"`
	CustomerTokenTTL time.Duration `mapstructure:"CUSTOMER_TOKEN_TTL"`
	AdminTokenTTL    time.Duration `mapstructure:"ADMIN_TOKEN_TTL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisOTPDB    int    `mapstructure:"REDIS_OTP_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Cloudinary.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `mapstructure:"CLOUDINARY_FOLDER"`

	// Outgoing mail.
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SMTPUsername     string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword     string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom         string `mapstructure:"SMTP_FROM"`
	AdminNotifyEmail string `mapstructure:"ADMIN_NOTIFY_EMAIL"`

	// Pricing bounds for increment percentages.
	IncrementMinPercent float64 `mapstructure:"INCREMENT_MIN_PERCENT"`
	IncrementMaxPercent float64 `mapstructure:"INCREMENT_MAX_PERCENT"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("CORS_ORIGINS", []string{"*"})
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "cabtour")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ADMIN_JWT_SECRET", "")
	v.SetDefault("CUSTOMER_TOKEN_TTL", "168h")
	v.SetDefault("ADMIN_TOKEN_TTL", "12h")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_OTP_DB", 2)
	v.SetDefault("REDIS_QUEUE_DB", 3)
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("CLOUDINARY_FOLDER", "cabtour")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "")
	v.SetDefault("ADMIN_NOTIFY_EMAIL", "")
	v.SetDefault("INCREMENT_MIN_PERCENT", -50.0)
	v.SetDefault("INCREMENT_MAX_PERCENT", 200.0)
}

// Load reads configuration from an optional .env file, config.yaml in "." or
// "./config", and the environment, in increasing order of precedence.
func Load(v *viper.Viper) (Config, error) {
	_ = godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)
	if cfg.AdminJWTSecret == "" {
		cfg.AdminJWTSecret = cfg.JWTSecret
	}
	return cfg, nil
}

// splitList flattens comma separated entries and drops blanks.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, p := range strings.Split(item, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
