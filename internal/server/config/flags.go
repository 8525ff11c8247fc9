package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/hrmsync/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
//	-a string   listen address (e.g. ":8000")
//	-d string   PostgreSQL DSN
//	-l string   log level
//	-f string   log format, text or json
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
