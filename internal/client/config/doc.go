// Package config loads runtime configuration for the HR CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults). The API URL default is
//     the one stamped into buildinfo at link time.
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   path of the local SQLite database
//	-l string   log level (debug, info, warn, error)
//	-o string   directory for backup files
//	-b string   S3 bucket for backups (enables the S3 sink)
//
// # JSON schema
//
// Timeouts use timex.Duration, so values can be strings like "4s" or integer
// nanoseconds. Absent keys keep their defaults:
//
//	{
//	  "api_url": "http://127.0.0.1:8000",
//	  "db_path": "hrms.db",
//	  "health_timeout": "4s",
//	  "request_timeout": "8s",
//	  "log_level": "info",
//	  "backup_dir": "./backups",
//	  "s3_bucket": "hrms",
//	  "s3_region": "us-east-1",
//	  "s3_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "minioadmin",
//	  "s3_secret_key": "minioadmin"
//	}
package config
