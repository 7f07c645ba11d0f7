// path: config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing default file
// is not an error; the environment alone can configure the service.
const DefaultPath = "config.yaml"

type Config struct {
	Port           string        `yaml:"port"`
	LogLevel       string        `yaml:"logLevel"`
	LogFormat      string        `yaml:"logFormat"`
	Timezone       string        `yaml:"timezone"`
	BodyLimitMB    int           `yaml:"bodyLimitMB"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
	CORSOrigins    []string      `yaml:"corsOrigins"`

	// LegacyMonthLabels labels the analysis chart December-first, as the
	// legacy web frontend did.
	LegacyMonthLabels bool `yaml:"legacyMonthLabels"`

	Mongo    Mongo    `yaml:"mongo"`
	Operator Operator `yaml:"operator"`
}

type Mongo struct {
	Mode                  string `yaml:"mode"`
	URI                   string `yaml:"uri"`
	URILocal              string `yaml:"uriLocal"`
	URIRemote             string `yaml:"uriRemote"`
	DB                    string `yaml:"db"`
	ReportsCollection     string `yaml:"reportsCollection"`
	AuthoritiesCollection string `yaml:"authoritiesCollection"`
}

// Operator holds the single operator credential. PasswordHash is a bcrypt
// hash; an empty ID or hash disables operator endpoints.
type Operator struct {
	ID           string `yaml:"id"`
	PasswordHash string `yaml:"passwordHash"`
}

func Default() Config {
	return Config{
		Port:           "3000",
		LogLevel:       "info",
		LogFormat:      "json",
		Timezone:       "UTC",
		BodyLimitMB:    25,
		RequestTimeout: 8 * time.Second,
		CORSOrigins:    []string{"*"},
		Mongo: Mongo{
			Mode:                  "auto",
			URILocal:              "mongodb://localhost:27017",
			DB:                    "raiseurvoice",
			ReportsCollection:     "test",
			AuthoritiesCollection: "login_govt_authorities",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path, a .env
// file in the working directory and finally the process environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Location resolves Timezone; validate guarantees it loads.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) BodyLimitBytes() int {
	return c.BodyLimitMB * 1024 * 1024
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	setString("PORT", &cfg.Port)
	setString("LOG_LEVEL", &cfg.LogLevel)
	setString("LOG_FORMAT", &cfg.LogFormat)
	setString("TIMEZONE", &cfg.Timezone)
	setString("MONGO_MODE", &cfg.Mongo.Mode)
	setString("MONGO_URI", &cfg.Mongo.URI)
	setString("MONGO_URI_LOCAL", &cfg.Mongo.URILocal)
	setString("MONGO_URI_REMOTE", &cfg.Mongo.URIRemote)
	setString("MONGO_DB", &cfg.Mongo.DB)
	setString("REPORTS_COLLECTION", &cfg.Mongo.ReportsCollection)
	setString("AUTHORITIES_COLLECTION", &cfg.Mongo.AuthoritiesCollection)
	setString("OPERATOR_ID", &cfg.Operator.ID)
	setString("OPERATOR_PASSWORD_HASH", &cfg.Operator.PasswordHash)

	if v := strings.TrimSpace(os.Getenv("BODY_LIMIT_MB")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid BODY_LIMIT_MB %q", v)
		}
		cfg.BodyLimitMB = n
	}
	if v := strings.TrimSpace(os.Getenv("REQUEST_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid REQUEST_TIMEOUT %q", v)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(os.Getenv("LEGACY_MONTH_LABELS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid LEGACY_MONTH_LABELS %q", v)
		}
		cfg.LegacyMonthLabels = b
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.Port == "" {
		return errors.New("config: port is required")
	}
	if cfg.Mongo.DB == "" {
		return errors.New("config: mongo.db is required")
	}
	if cfg.Mongo.ReportsCollection == "" || cfg.Mongo.AuthoritiesCollection == "" {
		return errors.New("config: mongo collection names are required")
	}
	switch strings.ToLower(cfg.Mongo.Mode) {
	case "auto", "local", "remote":
	default:
		return fmt.Errorf("config: mongo.mode must be auto, local or remote, got %q", cfg.Mongo.Mode)
	}
	if cfg.BodyLimitMB <= 0 {
		return errors.New("config: bodyLimitMB must be positive")
	}
	if cfg.RequestTimeout <= 0 {
		return errors.New("config: requestTimeout must be positive")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("config: unknown timezone %q: %w", cfg.Timezone, err)
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
