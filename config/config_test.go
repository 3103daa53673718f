package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: healthplanner
  log:
    level: info
http:
  port: 8080
storage:
  driver: mongo
mongo:
  uri: mongodb://localhost:27017
  connectTimeout: 5s
secretKey:
  access: test-access
  refresh: test-refresh
auth:
  enabled: false
planner:
  randomSeed: 0
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(body), 0o600))

	return dir
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	t.Chdir(writeConfig(t, testYAML))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MONGO_CONNECTTIMEOUT", "2s")
	t.Setenv("PLANNER_RANDOMSEED", "42")

	cfg, err := LoadWithEnv[Config]("config", "config")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, 2*time.Second, cfg.Mongo.ConnectTimeout)
	require.NotNil(t, cfg.Planner)
	assert.Equal(t, uint64(42), cfg.Planner.RandomSeed)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config", "config")
	assert.ErrorContains(t, err, "not found")
}

func TestNew_AppliesDefaults(t *testing.T) {
	t.Chdir(writeConfig(t, testYAML))

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageMongo, cfg.Storage.Driver)
	assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
	assert.NotNil(t, cfg.Auth)
}

func TestNew_ReadsDotEnv(t *testing.T) {
	dir := writeConfig(t, testYAML)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MONGO_DATABASE=fromdotenv\n"), 0o600))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("MONGO_DATABASE") })

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "fromdotenv", cfg.Mongo.Database)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "mongo ok",
			mutate: func(c *Config) {},
		},
		{
			name:    "mongo without uri",
			mutate:  func(c *Config) { c.Mongo.URI = "" },
			wantErr: "mongo.uri",
		},
		{
			name:    "postgres without section",
			mutate:  func(c *Config) { c.Storage.Driver = StoragePostgres },
			wantErr: "postgres section",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Storage.Driver = "sqlite" },
			wantErr: "unknown storage driver",
		},
		{
			name:    "missing refresh secret",
			mutate:  func(c *Config) { c.SecretKey.Refresh = "" },
			wantErr: "secretKey",
		},
		{
			name: "auth enabled with secrets",
			mutate: func(c *Config) {
				c.Auth.Enabled = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Storage: StorageConfig{Driver: StorageMongo},
				Mongo:   &MongoConfig{URI: "mongodb://localhost:27017"},
				Auth:    &AuthConfig{},
			}
			cfg.SecretKey.Access = "access"
			cfg.SecretKey.Refresh = "refresh"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
