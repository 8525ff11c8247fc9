package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envFile is loaded from the working directory when present. Variables
// already set in the process environment win over the file.
var envFile = ".env"

// parseEnv overlays Config from HRMS_* environment variables.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(envFile)

	overlay(&cfg.ListenAddr, os.Getenv("HRMS_LISTEN_ADDR"))
	overlay(&cfg.DatabaseDSN, os.Getenv("HRMS_DATABASE_DSN"))
	overlay(&cfg.LogLevel, os.Getenv("HRMS_LOG_LEVEL"))
	overlay(&cfg.LogFormat, os.Getenv("HRMS_LOG_FORMAT"))
}
