package config

import (
	"fmt"
	"strings"

	"github.com/jinzhu/configor"
)

type SkillMode string

const (
	// SkillModeMulti allows up to three skill selections, none required.
	SkillModeMulti SkillMode = "multi"
	// SkillModeSingle requires exactly one skill selection.
	SkillModeSingle SkillMode = "single"
)

type Config struct {
	App AppConfig
	DB  DBConfig
}

type AppConfig struct {
	Port          int    `default:"8080" env:"PORT"`
	GinMode       string `default:"debug" env:"GIN_MODE"`
	SessionSecret string `default:"default-secret-key-change-me" env:"SESSION_SECRET"`
	SkillMode     string `default:"multi" env:"SKILL_MODE"`
	CORSOrigins   string `default:"http://localhost:5173" env:"CORS_ORIGINS"`
	CacheTTLSec   int    `default:"30" env:"CACHE_TTL_SECONDS"`

	Origins []string
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DB_HOST"`
	Port     uint   `default:"5432" env:"DB_PORT"`
	User     string `default:"postgres" env:"DB_USER"`
	Password string `required:"true" env:"DB_PASSWORD"`
	Name     string `default:"meishi" env:"DB_NAME"`
	SSLMode  string `default:"disable" env:"DB_SSLMODE"`
}

// Load reads configuration from the environment. Missing required store
// credentials are a fatal startup condition for every command that touches
// the database.
func Load() (*Config, error) {
	var cfg Config
	if err := configor.Load(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.App.Origins = strings.Split(cfg.App.CORSOrigins, ",")
	for i := range cfg.App.Origins {
		cfg.App.Origins[i] = strings.TrimSpace(cfg.App.Origins[i])
	}

	switch SkillMode(cfg.App.SkillMode) {
	case SkillModeMulti, SkillModeSingle:
	default:
		return nil, fmt.Errorf("invalid SKILL_MODE %q: must be %q or %q", cfg.App.SkillMode, SkillModeMulti, SkillModeSingle)
	}

	return &cfg, nil
}
