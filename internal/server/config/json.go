package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hrmsync/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ListenAddr  string `json:"listen_addr"`
	DatabaseDSN string `json:"database_dsn"`
	LogLevel    string `json:"log_level"`
	LogFormat   string `json:"log_format"`
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

	overlay(&cfg.ListenAddr, jc.ListenAddr)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
