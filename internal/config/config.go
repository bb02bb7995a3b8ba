package config

import "github.com/spf13/viper"

// Config holds every runtime setting. It is loaded once at startup and
// passed to the component constructors; nothing reads the environment after
// that.
type Config struct {
	AppPort     string
	DatabaseURL string // empty selects the in-memory store
	RabbitMQURL string // empty disables event publishing

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	AuthUsername string
	AuthPassword string
}

// Load reads configuration from environment variables with development
// defaults. The defaults keep the service runnable with no environment at
// all: in-memory store, no broker, and the stock admin credential.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", "dev-signing-key-change-me")
	viper.SetDefault("JWT_ISSUER", "catalog")
	viper.SetDefault("JWT_AUDIENCE", "catalog-clients")
	viper.SetDefault("AUTH_USERNAME", "admin")
	viper.SetDefault("AUTH_PASSWORD", "pswadmin")
	viper.AutomaticEnv()

	return &Config{
		AppPort:      viper.GetString("APP_PORT"),
		DatabaseURL:  viper.GetString("DATABASE_URL"),
		RabbitMQURL:  viper.GetString("RABBITMQ_URL"),
		JWTSecret:    viper.GetString("JWT_SECRET"),
		JWTIssuer:    viper.GetString("JWT_ISSUER"),
		JWTAudience:  viper.GetString("JWT_AUDIENCE"),
		AuthUsername: viper.GetString("AUTH_USERNAME"),
		AuthPassword: viper.GetString("AUTH_PASSWORD"),
	}
}
