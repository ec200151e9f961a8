package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// DBPath is the SQLite database file shared by both applications.
	DBPath string `mapstructure:"KIOSCO_DB_PATH"`
	// ExportDir receives JSON backups (respaldo POS / catálogo).
	ExportDir string `mapstructure:"KIOSCO_EXPORT_DIR"`
	// TicketDir receives generated ticket PDFs.
	TicketDir string `mapstructure:"KIOSCO_TICKET_DIR"`
	Env       string `mapstructure:"APP_ENV"` // development | production
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for a local installation
	viper.SetDefault("KIOSCO_DB_PATH", "kiosco.db")
	viper.SetDefault("KIOSCO_EXPORT_DIR", ".")
	viper.SetDefault("KIOSCO_TICKET_DIR", "tickets")
	viper.SetDefault("APP_ENV", "development")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
