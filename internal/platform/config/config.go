package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// StorageConfig holds the object storage settings for payment attachments.
// An empty bucket name disables attachment uploads.
type StorageConfig struct {
	Bucket          string
	Region          string
	Endpoint        string // Optional, for S3-compatible stores like MinIO
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// PaymentMethods is the set of methods offered on the payment form.
	PaymentMethods []string

	Storage StorageConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "invoicing-backend")
	viper.SetDefault("PAYMENT_METHODS", "offline,bank_transfer,cash")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_ACCESS_KEY_ID", "")
	viper.SetDefault("S3_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_USE_PATH_STYLE", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	for _, method := range strings.Split(viper.GetString("PAYMENT_METHODS"), ",") {
		method = strings.TrimSpace(method)
		if method != "" {
			cfg.PaymentMethods = append(cfg.PaymentMethods, method)
		}
	}

	cfg.Storage = StorageConfig{
		Bucket:          viper.GetString("S3_BUCKET"),
		Region:          viper.GetString("S3_REGION"),
		Endpoint:        viper.GetString("S3_ENDPOINT"),
		AccessKeyID:     viper.GetString("S3_ACCESS_KEY_ID"),
		SecretAccessKey: viper.GetString("S3_SECRET_ACCESS_KEY"),
		UsePathStyle:    viper.GetBool("S3_USE_PATH_STYLE"),
	}
	if cfg.Storage.Bucket == "" {
		log.Println("Warning: S3_BUCKET not set. Payment attachment uploads are disabled.")
	}

	return cfg, nil
}
