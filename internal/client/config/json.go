package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hrmsync/internal/flagx"
	"github.com/dmitrijs2005/hrmsync/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	APIURL         string         `json:"api_url"`
	DBPath         string         `json:"db_path"`
	HealthTimeout  timex.Duration `json:"health_timeout"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
	BackupDir      string         `json:"backup_dir"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3Endpoint     string         `json:"s3_endpoint"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
}

// parseJson overlays Config with the non-empty values of the JSON file named
// by -c / -config. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.APIURL, jc.APIURL)
	overlay(&cfg.DBPath, jc.DBPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.BackupDir, jc.BackupDir)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3Endpoint, jc.S3Endpoint)
	overlay(&cfg.S3AccessKey, jc.S3AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3SecretKey)

	if jc.HealthTimeout.Duration > 0 {
		cfg.HealthTimeout = jc.HealthTimeout.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
