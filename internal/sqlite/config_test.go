// File path: internal/sqlite/config_test.go
package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigMerge(t *testing.T) {
	base := Config{Path: "base.db", MaxOpenConns: 4, MaxIdleConns: 2, BusyTimeout: time.Second}
	merged := base.Merge(Config{Path: "  override.db  ", MaxOpenConns: 8})
	if merged.Path != "override.db" {
		t.Fatalf("path: %s", merged.Path)
	}
	if merged.MaxOpenConns != 8 {
		t.Fatalf("max open conns: %d", merged.MaxOpenConns)
	}
	if merged.MaxIdleConns != 2 || merged.BusyTimeout != time.Second {
		t.Fatalf("unset overrides must not clobber: %+v", merged)
	}

	// Zero-valued override leaves everything intact.
	if same := base.Merge(Config{}); same != base {
		t.Fatalf("empty merge changed config: %+v", same)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.applyDefaults()
	if cfg.Path != "lootforge.db" {
		t.Fatalf("path default: %s", cfg.Path)
	}
	if cfg.MaxOpenConns != 4 || cfg.MaxIdleConns != 4 {
		t.Fatalf("conn defaults: %+v", cfg)
	}
	if cfg.BusyTimeout != 5*time.Second {
		t.Fatalf("busy timeout default: %v", cfg.BusyTimeout)
	}
}

func TestConfigBusyTimeoutFromString(t *testing.T) {
	cfg := Config{BusyTimeoutString: "750ms"}
	cfg.applyDefaults()
	if cfg.BusyTimeout != 750*time.Millisecond {
		t.Fatalf("busy timeout: %v", cfg.BusyTimeout)
	}

	bad := Config{BusyTimeoutString: "soon"}
	bad.applyDefaults()
	if bad.BusyTimeout != 5*time.Second {
		t.Fatalf("unparseable string must fall back: %v", bad.BusyTimeout)
	}
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlite.json")
	if err := os.WriteFile(path, []byte(`{"path":"file.db","max_open_conns":16}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SQLITE_CONFIG_FILE", path)
	t.Setenv("SQLITE_PATH", "env.db")
	t.Setenv("SQLITE_MAX_OPEN_CONNS", "")
	t.Setenv("SQLITE_MAX_IDLE_CONNS", "")
	t.Setenv("SQLITE_BUSY_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	// Env overrides file, file overrides defaults.
	if cfg.Path != "env.db" {
		t.Fatalf("path: %s", cfg.Path)
	}
	if cfg.MaxOpenConns != 16 {
		t.Fatalf("max open conns: %d", cfg.MaxOpenConns)
	}
	if cfg.BusyTimeout != 2*time.Second {
		t.Fatalf("busy timeout: %v", cfg.BusyTimeout)
	}
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("SQLITE_CONFIG_FILE", "")
	t.Setenv("SQLITE_MAX_OPEN_CONNS", "many")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unparseable conn count")
	}
}
