package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPaths_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, want := cfg.TaskPath(), filepath.Join(dir, TaskFile); got != want {
		t.Errorf("TaskPath = %q, want %q", got, want)
	}
	if got, want := cfg.DBPath(), filepath.Join(dir, DBFile); got != want {
		t.Errorf("DBPath = %q, want %q", got, want)
	}
	if got, want := cfg.TokenPath(), filepath.Join(dir, TokenFile); got != want {
		t.Errorf("TokenPath = %q, want %q", got, want)
	}
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	t.Setenv(EnvTaskFile, "")
	os.Unsetenv(EnvTaskFile)
	t.Setenv(EnvDB, "")
	os.Unsetenv(EnvDB)

	cfg, _ := New(t.TempDir())
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.TaskPath() != filepath.Join(cfg.Dir, TaskFile) {
		t.Errorf("unexpected TaskPath %q", cfg.TaskPath())
	}
}

func TestLoadEnv_DotenvOverridesPaths(t *testing.T) {
	t.Setenv(EnvTaskFile, "")
	os.Unsetenv(EnvTaskFile)
	t.Setenv(EnvDB, "")
	os.Unsetenv(EnvDB)

	cfg, _ := New(t.TempDir())
	content := "DAYCARE_TASK_FILE=/srv/pets/tasks.csv\nDAYCARE_DB=/srv/pets/pets.db\n"
	if err := os.WriteFile(cfg.EnvPath(), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.TaskPath() != "/srv/pets/tasks.csv" {
		t.Errorf("TaskPath = %q", cfg.TaskPath())
	}
	if cfg.DBPath() != "/srv/pets/pets.db" {
		t.Errorf("DBPath = %q", cfg.DBPath())
	}
}

func TestLoadEnv_ProcessEnvWins(t *testing.T) {
	cfg, _ := New(t.TempDir())
	if err := os.WriteFile(cfg.EnvPath(), []byte("DAYCARE_TASK_FILE=/from/dotenv.csv\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvTaskFile, "/from/env.csv")

	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.TaskPath() != "/from/env.csv" {
		t.Errorf("TaskPath = %q, want /from/env.csv", cfg.TaskPath())
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{}
	cfg.Logger(&buf).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written without --debug: %q", buf.String())
	}

	cfg.Debug = true
	cfg.Logger(&buf).Debug("shown", "pet", "00001")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "pet=00001") {
		t.Errorf("expected debug record, got %q", buf.String())
	}
}
