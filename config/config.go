package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. Values come from the environment
// (optionally via .env, loaded in main) with sane local defaults.
type Config struct {
	Port string

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string
	// DatabaseURL, when set, wins over the discrete DB_* values.
	DatabaseURL string

	JWTSecret     string
	TokenTTLHours int

	// BreakfastRate is the per-guest-per-night surcharge applied when a
	// booking requests breakfast. Policy, not an invariant.
	BreakfastRate float64

	CORSOrigins []string
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_NAME", "hotel_management")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET", "hotel_secret_key")
	v.SetDefault("TOKEN_TTL_HOURS", 24)
	v.SetDefault("BREAKFAST_RATE", 20.0)
	v.SetDefault("CORS_ORIGINS", "*")

	origins := []string{}
	for _, o := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:          v.GetString("PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPass:        v.GetString("DB_PASS"),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBName:        v.GetString("DB_NAME"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		TokenTTLHours: v.GetInt("TOKEN_TTL_HOURS"),
		BreakfastRate: v.GetFloat64("BREAKFAST_RATE"),
		CORSOrigins:   origins,
	}
}
