// Package config loads the API server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr    string
	TLSCert string
	TLSKey  string

	AllowedOrigins []string
	MaxBodyBytes   int64
	StrictSecurity bool

	RedisURL      string
	RedisAddr     string
	RedisUser     string
	RedisPassword string
	RateLimitRPS  float64
	RateBurst     int

	LogLevel lager.LogLevel
	AppEnv   string
}

var ErrTLSPair = errors.New("PWMETER_TLS_CERT and PWMETER_TLS_KEY must be set together")

// LoadDotEnv reads files into the process environment. Missing files are ignored.
func LoadDotEnv(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Load reads and validates the environment. All problems are reported at once.
func Load() (*Config, error) {
	var errs *multierror.Error

	cfg := &Config{
		Addr:           envStr("PWMETER_ADDR", ":3000"),
		TLSCert:        os.Getenv("PWMETER_TLS_CERT"),
		TLSKey:         os.Getenv("PWMETER_TLS_KEY"),
		AllowedOrigins: envCSV("PWMETER_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),
		StrictSecurity: os.Getenv("STRICT_SECURITY") == "1",
		RedisURL:       os.Getenv("UPSTASH_REDIS_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisUser:      os.Getenv("REDIS_USER"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		AppEnv:         envStr("APP_ENV", "development"),
	}

	var err error
	if cfg.MaxBodyBytes, err = envInt64("MAX_BODY_SIZE", 64<<10); err != nil {
		errs = multierror.Append(errs, err)
	}
	if cfg.RateLimitRPS, err = envFloat("RATE_LIMIT_RPS", 5); err != nil {
		errs = multierror.Append(errs, err)
	}
	burst, err := envInt64("RATE_LIMIT_BURST", 20)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	cfg.RateBurst = int(burst)
	if cfg.LogLevel, err = parseLevel(envStr("LOG_LEVEL", "info")); err != nil {
		errs = multierror.Append(errs, err)
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		errs = multierror.Append(errs, ErrTLSPair)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) TLSEnabled() bool { return c.TLSCert != "" && c.TLSKey != "" }

// RedisEnabled reports whether a Redis endpoint was configured for rate limiting.
func (c *Config) RedisEnabled() bool { return c.RedisURL != "" || c.RedisAddr != "" }

// Warnings returns non-fatal hardening notes worth logging on startup.
func (c *Config) Warnings() []string {
	var warns []string
	prod := strings.EqualFold(c.AppEnv, "production")

	if prod && !c.TLSEnabled() {
		warns = append(warns, "TLS is disabled in production; passwords will cross the network in clear text unless a proxy terminates TLS")
	}
	if prod && !c.RedisEnabled() {
		warns = append(warns, "no Redis configured; /v1/strength is not rate limited")
	}
	if strings.HasPrefix(c.RedisURL, "redis://") {
		warns = append(warns, "UPSTASH_REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
	}
	if c.RedisAddr != "" && (c.RedisUser == "" || c.RedisPassword == "") {
		warns = append(warns, "REDIS_ADDR provided without REDIS_USER/REDIS_PASSWORD")
	}
	return warns
}

// --- helpers ---

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envCSV(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envInt64(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def, fmt.Errorf("%s: must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return def, fmt.Errorf("%s: must be a positive number, got %q", key, v)
	}
	return f, nil
}

func parseLevel(s string) (lager.LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return lager.INFO, fmt.Errorf("LOG_LEVEL: unknown level %q", s)
	}
}
