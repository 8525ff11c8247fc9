package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/hrmsync/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l", "-o", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "backend base URL")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.BackupDir, "o", cfg.BackupDir, "backup directory")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket for backups")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
