// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config is the configuration of the backend.
type Config struct {
	APIURL           *url.URL // Base URL of the API, used for links in responses
	GinMode          string   // gin mode, release by default
	LogFormat        string   // "human" or "json". Empty selects human for debug mode, json otherwise
	DBPath           string   // Path of the SQLite database file
	CORSAllowOrigins []string // Origins allowed for CORS requests, glob patterns are supported
	EnablePprof      bool     // Serve pprof profiles on /debug/pprof
	AgeIdentity      string   // age X25519 identity. When set, stored values are encrypted
	Port             int      // Port to listen on
}

// Load reads an optional .env file and the environment.
//
// Variables that are already set in the environment take precedence
// over the .env file.
func Load(envFiles ...string) (Config, error) {
	err := godotenv.Load(envFiles...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("could not read environment file: %w", err)
	}

	return FromEnvironment()
}

// FromEnvironment reads the configuration from the environment only.
func FromEnvironment() (Config, error) {
	c := Config{
		GinMode:     gin.ReleaseMode,
		LogFormat:   os.Getenv("LOG_FORMAT"),
		DBPath:      "data/gorm.db",
		AgeIdentity: os.Getenv("STORAGE_AGE_IDENTITY"),
		Port:        8080,
	}

	var errs []error

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		errs = append(errs, errors.New("environment variable API_URL must be set"))
	} else {
		u, err := url.Parse(apiURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("environment variable API_URL must be an absolute URL, got %q", apiURL))
		}
		c.APIURL = u
	}

	if mode, ok := os.LookupEnv("GIN_MODE"); ok && mode != "" {
		c.GinMode = mode
	}

	if path, ok := os.LookupEnv("DB_PATH"); ok && path != "" {
		c.DBPath = path
	}

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		c.CORSAllowOrigins = strings.Fields(origins)
	}

	c.EnablePprof = os.Getenv("ENABLE_PPROF") == "true"

	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			errs = append(errs, fmt.Errorf("environment variable PORT must be a port number, got %q", port))
		}
		c.Port = p
	}

	return c, c.validate(errs)
}

// validate adds checks that need the whole configuration to the
// errors found while parsing and joins them.
func (c Config) validate(errs []error) error {
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE must be one of debug, release or test, got %q", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be human or json, got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// HumanLogs reports if logs should be written for humans instead of as JSON.
func (c Config) HumanLogs() bool {
	return c.LogFormat == "human" || (c.LogFormat == "" && c.GinMode == gin.DebugMode)
}
