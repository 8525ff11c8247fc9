package config

import (
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/buildinfo"
)

// Config holds runtime settings for the HR CLI.
//
// Units: HealthTimeout and RequestTimeout are time.Duration values.
type Config struct {
	// APIURL is the backend base URL. Empty means the URL saved in settings
	// is used, and without that the client works offline.
	APIURL string

	DBPath         string
	HealthTimeout  time.Duration
	RequestTimeout time.Duration
	LogLevel       string

	BackupDir   string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = buildinfo.APIURL
	c.DBPath = "hrms.db"
	c.HealthTimeout = 4 * time.Second
	c.RequestTimeout = 8 * time.Second
	c.LogLevel = "info"
	c.BackupDir = "."
	c.S3Region = "us-east-1"
}

// UseS3 reports whether backups go to a bucket instead of BackupDir.
func (c *Config) UseS3() bool {
	return c.S3Bucket != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
