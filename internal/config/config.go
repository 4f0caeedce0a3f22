// Package config provides functionality for managing configuration options
// for the console using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the console.
type Options struct {
	// Addr defines the local shell's listening address (ip:port).
	Addr string

	// APIBaseURL is the base URL of the remote admin API.
	APIBaseURL string

	// TokenFile is the path of the file holding the persisted bearer token.
	TokenFile string

	// LogLevel sets the minimum logging level (Debug, Info, Warn, Error).
	LogLevel string

	// RequestTimeout bounds every call to the remote API.
	RequestTimeout time.Duration

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8090", "run the console shell on ip:port")
	flag.StringVar(&options.APIBaseURL, "api", "", "base URL of the admin API")
	flag.StringVar(&options.TokenFile, "token-file", "session.json", "path to the persisted session token")
	flag.StringVar(&options.LogLevel, "log-level", "Info", "minimum log level")
	flag.DurationVar(&options.RequestTimeout, "timeout", 30*time.Second, "per-request timeout for API calls")
	flag.StringVar(&options.Config, "config", "", "path to config file")
	flag.StringVar(&options.Config, "c", "", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
//
// Precedence, lowest to highest: flag defaults, config file, environment.
// A .env file in the working directory is loaded first when present.
func Parse() *Options {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if addr := os.Getenv("CONSOLE_ADDRESS"); addr != "" {
		options.Addr = addr
	}
	if base := os.Getenv("API_BASE_URL"); base != "" {
		options.APIBaseURL = base
	}
	if tokenFile := os.Getenv("TOKEN_FILE"); tokenFile != "" {
		options.TokenFile = tokenFile
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}
	if timeout := os.Getenv("REQUEST_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			log.Fatalf("invalid REQUEST_TIMEOUT: %v", err)
		}
		options.RequestTimeout = d
	}

	return options
}
