package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridbag/pkg/pipeline"
)

// Cache backends selectable in the config file.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendMongo = "mongo"
	backendNone  = "none"
)

// Environment variables that override config file values.
const (
	envRedisURL = "GRIDBAG_REDIS_URL"
	envMongoURI = "GRIDBAG_MONGO_URI"
)

const (
	defaultServerAddr      = ":8080"
	defaultMongoDatabase   = "gridbag"
	defaultMongoCollection = "cache"
)

// Config is the optional config file:
//
//	[cache]
//	backend = "redis"          # file (default), redis, mongo, none
//	ttl = "72h"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
//
//	[render]
//	formats = ["svg", "png"]
//	style = "outline"
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Render RenderConfig `toml:"render"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend         string `toml:"backend"`
	TTL             string `toml:"ttl"`
	RedisURL        string `toml:"redis_url"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`

	ttl time.Duration
}

// ServerConfig configures "gridbag serve".
type ServerConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// RenderConfig holds render defaults applied when flags are not given.
type RenderConfig struct {
	Formats []string `toml:"formats"`
	Style   string   `toml:"style"`
	Scale   int      `toml:"scale"`
}

// loadConfig reads path. A missing file yields the defaults unless the path
// was given explicitly.
func loadConfig(path string, explicit bool) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case err == nil:
			if undec := md.Undecoded(); len(undec) > 0 {
				return nil, fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.finish(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(envRedisURL); v != "" {
		c.Cache.RedisURL = v
	}
	if v := getenv(envMongoURI); v != "" {
		c.Cache.MongoURI = v
	}
}

// finish validates the config and fills defaults.
func (c *Config) finish() error {
	cc := &c.Cache
	cc.Backend = strings.ToLower(strings.TrimSpace(cc.Backend))
	if cc.Backend == "" {
		switch {
		case cc.RedisURL != "":
			cc.Backend = backendRedis
		case cc.MongoURI != "":
			cc.Backend = backendMongo
		default:
			cc.Backend = backendFile
		}
	}
	switch cc.Backend {
	case backendFile, backendNone:
	case backendRedis:
		if cc.RedisURL == "" {
			return fmt.Errorf("cache backend redis needs redis_url or %s", envRedisURL)
		}
	case backendMongo:
		if cc.MongoURI == "" {
			return fmt.Errorf("cache backend mongo needs mongo_uri or %s", envMongoURI)
		}
	default:
		return fmt.Errorf("unknown cache backend %q (want file, redis, mongo or none)", cc.Backend)
	}
	if cc.MongoDatabase == "" {
		cc.MongoDatabase = defaultMongoDatabase
	}
	if cc.MongoCollection == "" {
		cc.MongoCollection = defaultMongoCollection
	}
	if cc.TTL != "" {
		d, err := time.ParseDuration(cc.TTL)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid cache ttl %q", cc.TTL)
		}
		cc.ttl = d
	}

	if c.Server.Addr == "" {
		c.Server.Addr = defaultServerAddr
	}

	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	if c.Render.Style != "" {
		if err := pipeline.ValidateStyle(c.Render.Style); err != nil {
			return err
		}
	}
	return nil
}

// backend returns the effective backend, honoring --no-cache.
func (c CacheConfig) backend(noCache bool) string {
	if noCache {
		return backendNone
	}
	return c.Backend
}
