package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/gridbag/pkg/cache"
)

func TestXDGDirs(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg-cache", "gridbag"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg-config", "gridbag", "config.toml"); path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}

func TestCacheDirHomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(home, ".cache", "gridbag"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestRunCacheClear(t *testing.T) {
	c, doc := newTestCLI(t)
	ctx := context.Background()

	if err := c.runLayout(ctx, doc, layoutOpts{output: filepath.Join(t.TempDir(), "out.json")}); err != nil {
		t.Fatalf("runLayout() error: %v", err)
	}
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) == 0 {
		t.Fatal("layout run left no cache entries")
	}

	out := captureStdout(t)
	if err := c.runCacheClear(ctx, false); err != nil {
		t.Fatalf("runCacheClear() error: %v", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("%d entries left after clear", len(entries))
	}
	if !strings.Contains(out.String(), "Removed 1 cached entries") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRunCacheClearExpired(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx := context.Background()

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	fc.Set(ctx, "old", []byte("x"), time.Nanosecond)
	fc.Set(ctx, "keep", []byte("x"), time.Hour)
	time.Sleep(time.Millisecond)

	if err := c.runCacheClear(ctx, true); err != nil {
		t.Fatalf("runCacheClear(expired) error: %v", err)
	}
	if _, hit, _ := fc.Get(ctx, "keep"); !hit {
		t.Error("live entry was removed")
	}
	if _, hit, _ := fc.Get(ctx, "old"); hit {
		t.Error("expired entry survived")
	}
}
