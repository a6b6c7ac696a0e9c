// Package config loads server configuration from config.yaml, a local
// .env file and environment variables, in increasing precedence.
package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port int
	}
	Database struct {
		URL string
	}
	JWT struct {
		Secret      string
		ExpiryHours int
	}
	CORS struct {
		AllowedOrigins []string
	}
	ViaCEP struct {
		BaseURL string
	}
}

// Load reads configuration. A missing config.yaml or .env is not an
// error; the server can boot unconfigured (see Configured).
func Load() *Config {
	// .env is a developer convenience; absence is normal in production
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.port", 8080)
	v.SetDefault("jwt.expiry_hours", 24)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("viacep.base_url", "https://viacep.com.br")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("jwt.secret", "JWT_SECRET")
	_ = v.BindEnv("jwt.expiry_hours", "JWT_EXPIRY_HOURS")
	_ = v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	_ = v.BindEnv("viacep.base_url", "VIACEP_BASE_URL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("config: failed to read config.yaml: %v", err)
		}
	}

	cfg := &Config{}
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Database.URL = v.GetString("database.url")
	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.JWT.ExpiryHours = v.GetInt("jwt.expiry_hours")
	cfg.CORS.AllowedOrigins = splitOrigins(v.GetStringSlice("cors.allowed_origins"))
	cfg.ViaCEP.BaseURL = strings.TrimRight(v.GetString("viacep.base_url"), "/")
	return cfg
}

// Configured reports whether the remote-store credentials are present.
// When false the server serves pages and /api/config only; every
// authenticated flow answers 503.
func (c *Config) Configured() bool {
	return c.Database.URL != "" && c.JWT.Secret != ""
}

// MissingConfigWarning is the fixed warning shown on the login view
// when the store credentials are absent.
func (c *Config) MissingConfigWarning() string {
	return "Configuração ausente. Defina DATABASE_URL e JWT_SECRET para habilitar o login."
}

// splitOrigins also accepts a single comma separated string, which is
// how CORS_ALLOWED_ORIGINS arrives from the environment.
func splitOrigins(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
