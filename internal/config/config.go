package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AuthConfig configura el verificador de tokens (gatekeeper).
// Con DevMode=true la API acepta headers X-Debug-* en lugar de tokens.
type AuthConfig struct {
	BaseURL      string `yaml:"base_url"`
	APIKey       string `yaml:"api_key"`
	APIKeyHeader string `yaml:"api_key_header"`
	DevMode      bool   `yaml:"dev_mode"`
}

// Config es la configuración de la aplicación. Se carga de YAML y las
// variables de entorno pisan lo que venga del archivo.
type Config struct {
	// Listen es la dirección HTTP de la API.
	Listen string `yaml:"listen"`

	// DatabaseDSN es el DSN de Postgres. Vacío => adapters en memoria
	// con datos de ejemplo (modo demo/desarrollo).
	DatabaseDSN string `yaml:"database_dsn"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// UpcomingWindowDays es la ventana de "próximos" para eventos de salud.
	UpcomingWindowDays int `yaml:"upcoming_window_days"`

	// ReminderCron es el schedule del barrido de recordatorios
	// (formato cron de 5 campos). Vacío => job deshabilitado.
	ReminderCron string `yaml:"reminder_cron"`

	Auth AuthConfig `yaml:"auth"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:             ":8080",
		LogLevel:           "info",
		LogFormat:          "text",
		UpcomingWindowDays: 7,
		ReminderCron:       "0 8 * * *",
		Auth: AuthConfig{
			APIKeyHeader: "X-Api-Key",
			DevMode:      true,
		},
	}
}

// Normalize completa valores faltantes con defaults para que configs
// parciales sigan funcionando.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.UpcomingWindowDays <= 0 {
		c.UpcomingWindowDays = 7
	}
	if c.Auth.APIKeyHeader == "" {
		c.Auth.APIKeyHeader = "X-Api-Key"
	}
}

// Load carga la configuración desde path (YAML). Si path está vacío o el
// archivo no existe, arranca de los defaults. En ambos casos aplica los
// overrides de entorno al final.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyEnv()
	cfg.Normalize()
	return cfg, nil
}

// applyEnv pisa campos con variables de entorno (mismas keys que usa el
// resto de la plataforma: LOG_LEVEL/LOG_FORMAT las consume también el logger).
func (c *Config) applyEnv() {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.DatabaseDSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("UPCOMING_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.UpcomingWindowDays = n
		}
	}
	if v := os.Getenv("REMINDER_CRON"); v != "" {
		c.ReminderCron = v
	}
	if v := os.Getenv("AUTH_BASE_URL"); v != "" {
		c.Auth.BaseURL = v
	}
	if v := os.Getenv("AUTH_API_KEY"); v != "" {
		c.Auth.APIKey = v
	}
	if v := os.Getenv("AUTH_DEV_MODE"); v != "" {
		c.Auth.DevMode = v == "1" || v == "true"
	}
}
