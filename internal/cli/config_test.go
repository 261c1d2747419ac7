package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearBackendEnv(t *testing.T) {
	t.Setenv(envRedisURL, "")
	t.Setenv(envMongoURI, "")
}

func TestLoadConfigDefaults(t *testing.T) {
	clearBackendEnv(t)
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), false)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Cache.Backend != backendFile {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, backendFile)
	}
	if cfg.Server.Addr != defaultServerAddr {
		t.Errorf("Addr = %q, want %q", cfg.Server.Addr, defaultServerAddr)
	}
	if cfg.Cache.MongoDatabase != defaultMongoDatabase || cfg.Cache.MongoCollection != defaultMongoCollection {
		t.Errorf("mongo defaults = %q/%q", cfg.Cache.MongoDatabase, cfg.Cache.MongoCollection)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearBackendEnv(t)
	path := writeConfig(t, `
[cache]
backend = "mongo"
ttl = "72h"
mongo_uri = "mongodb://localhost:27017"
mongo_database = "layouts"

[server]
addr = "127.0.0.1:9000"
max_body_bytes = 2048

[render]
formats = ["svg", "png"]
style = "outline"
scale = 3
`)
	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Cache.Backend != backendMongo || cfg.Cache.MongoDatabase != "layouts" || cfg.Cache.MongoCollection != defaultMongoCollection {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.ttl != 72*time.Hour {
		t.Errorf("ttl = %v, want 72h", cfg.Cache.ttl)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.MaxBodyBytes != 2048 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if len(cfg.Render.Formats) != 2 || cfg.Render.Style != "outline" || cfg.Render.Scale != 3 {
		t.Errorf("Render = %+v", cfg.Render)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearBackendEnv(t)
	t.Setenv(envRedisURL, "redis://cache:6379/1")

	cfg, err := loadConfig("", false)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Cache.Backend != backendRedis || cfg.Cache.RedisURL != "redis://cache:6379/1" {
		t.Errorf("Cache = %+v, want redis from env", cfg.Cache)
	}

	// An explicit backend wins over the env-implied one.
	path := writeConfig(t, "[cache]\nbackend = \"none\"\n")
	cfg, err = loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Cache.Backend != backendNone {
		t.Errorf("Backend = %q, want none", cfg.Cache.Backend)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	clearBackendEnv(t)
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "[cache]\nbackand = \"file\"\n"},
		{"unknown backend", "[cache]\nbackend = \"memcached\"\n"},
		{"redis without url", "[cache]\nbackend = \"redis\"\n"},
		{"mongo without uri", "[cache]\nbackend = \"mongo\"\n"},
		{"bad ttl", "[cache]\nttl = \"soon\"\n"},
		{"negative ttl", "[cache]\nttl = \"-1h\"\n"},
		{"bad format", "[render]\nformats = [\"gif\"]\n"},
		{"bad style", "[render]\nstyle = \"neon\"\n"},
		{"malformed", "[cache\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tt.body), true); err == nil {
				t.Error("loadConfig() succeeded, want error")
			}
		})
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), true); err == nil {
		t.Error("explicit missing config accepted")
	}
}

func TestCacheBackendNoCache(t *testing.T) {
	cc := CacheConfig{Backend: backendRedis}
	if got := cc.backend(true); got != backendNone {
		t.Errorf("backend(true) = %q, want none", got)
	}
	if got := cc.backend(false); got != backendRedis {
		t.Errorf("backend(false) = %q, want redis", got)
	}
}
