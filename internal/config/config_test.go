package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Redis.TTL != 24*time.Hour || cfg.Log.Level != "info" || cfg.Sim.MaxTime != -1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispatch.yaml")
	body := "http:\n  addr: \":9090\"\nredis:\n  ttl: 1h\nsim:\n  max_time: 100\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DISPATCH_SIM_MAX_TIME", "50")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" || cfg.Redis.TTL != time.Hour {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Sim.MaxTime != 50 {
		t.Fatalf("env should override file, got max_time %d", cfg.Sim.MaxTime)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		path string
	}{
		{name: "missing explicit file", path: filepath.Join(t.TempDir(), "nope.yaml")},
		{name: "zero ttl", env: map[string]string{"DISPATCH_REDIS_TTL": "0s"}},
		{name: "max time below -1", env: map[string]string{"DISPATCH_SIM_MAX_TIME": "-5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(tc.path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// chdir switches the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
