package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	ListenAddr  string

	MongoURI      string
	MongoDatabase string

	StripeSecretKey string
	StripeAccountID string

	UploadDir string

	LogLevel  string
	LogFormat string
}

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewUploadConfigHolder),
)

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:         getenv("APP_SERVICE", "polisure"),
		AppVersion:      getenv("APP_VERSION", "0.1.0"),
		Environment:     getenv("ENVIRONMENT", "development"),
		ListenAddr:      getenv("LISTEN_ADDR", ":3000"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getenv("MONGO_DATABASE", "life-insurance"),
		StripeSecretKey: strings.TrimSpace(getenv("STRIPE_SECRET_KEY", "")),
		StripeAccountID: strings.TrimSpace(getenv("STRIPE_ACCOUNT_ID", "")),
		UploadDir:       getenv("UPLOAD_DIR", "./uploads"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "json"),
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
