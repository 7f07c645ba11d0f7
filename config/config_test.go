package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "TIMEZONE", "MONGO_MODE", "MONGO_URI",
		"MONGO_URI_LOCAL", "MONGO_URI_REMOTE", "MONGO_DB", "REPORTS_COLLECTION",
		"AUTHORITIES_COLLECTION", "OPERATOR_ID", "OPERATOR_PASSWORD_HASH",
		"BODY_LIMIT_MB", "REQUEST_TIMEOUT", "LEGACY_MONTH_LABELS", "CORS_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "auto", cfg.Mongo.Mode)
	assert.Equal(t, "test", cfg.Mongo.ReportsCollection)
	assert.Equal(t, "login_govt_authorities", cfg.Mongo.AuthoritiesCollection)
	assert.Equal(t, 8*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 25*1024*1024, cfg.BodyLimitBytes())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
port: "8080"
timezone: Asia/Kolkata
requestTimeout: 3s
legacyMonthLabels: true
corsOrigins: ["https://a.example", "https://b.example"]
mongo:
  mode: remote
  uriRemote: mongodb+srv://cluster.example/
  db: civic
operator:
  id: "1234"
`)
	t.Setenv("MONGO_DB", "civic_override")
	t.Setenv("OPERATOR_PASSWORD_HASH", "$2a$04$abc")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.LegacyMonthLabels)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "remote", cfg.Mongo.Mode)
	assert.Equal(t, "civic_override", cfg.Mongo.DB)
	assert.Equal(t, "test", cfg.Mongo.ReportsCollection, "unset keys keep defaults")
	assert.Equal(t, "1234", cfg.Operator.ID)
	assert.Equal(t, "$2a$04$abc", cfg.Operator.PasswordHash)
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "bad yaml", file: "port: [unterminated"},
		{name: "bad mode", file: "mongo:\n  mode: cloud\n"},
		{name: "bad timezone", env: map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{name: "bad body limit", env: map[string]string{"BODY_LIMIT_MB": "lots"}},
		{name: "zero body limit", env: map[string]string{"BODY_LIMIT_MB": "0"}},
		{name: "bad timeout", env: map[string]string{"REQUEST_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a, ,b ,"))
}
