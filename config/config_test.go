package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFS_Default(t *testing.T) {
	fsys := fstest.MapFS{}

	cfg, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("default config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Provider != "huggingface" {
		t.Fatalf("expected default provider 'huggingface', got %s", cfg.Provider)
	}
}

func TestLoadFS_FromFile(t *testing.T) {
	fsys := fstest.MapFS{
		filepath.ToSlash(".uconv/config.yaml"): &fstest.MapFile{Data: []byte(
			"provider: fooai\n" +
				"models: [a/b]\n" +
				"request-timeout: 30s\n" +
				"logging:\n  level: debug\n  request-response-debug: true\n")},
	}

	cfg, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Config{
		Provider:       "fooai",
		Endpoint:       DefaultEndpoint,
		Models:         []string{"a/b"},
		HistorySize:    5,
		RequestTimeout: 30 * time.Second,
		Logging:        Logging{Level: "debug", RequestResponseDebug: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_EmptyFile(t *testing.T) {
	fsys := fstest.MapFS{".uconv/config.yaml": &fstest.MapFile{Data: []byte("")}}

	cfg, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("empty file should yield defaults (-want +got):\n%s", diff)
	}
}

func TestLoadFS_Invalid(t *testing.T) {
	tests := []struct {
		data        string
		explanation string
	}{
		{"providr: x\n", "unknown key"},
		{"history-size: -1\n", "negative history size"},
		{"request-timeout: -5s\n", "negative timeout"},
		{"models: [a, a]\n", "duplicate model"},
		{"models: [\"\"]\n", "empty model"},
		{"models: {a: b}\n", "wrong type"},
	}

	for _, tc := range tests {
		t.Run(tc.explanation, func(t *testing.T) {
			fsys := fstest.MapFS{".uconv/config.yaml": &fstest.MapFile{Data: []byte(tc.data)}}
			if _, err := LoadFS(fsys); err == nil {
				t.Fatalf("expected error for %s", tc.explanation)
			}
		})
	}
}

func TestDefault_ModelsAreCopied(t *testing.T) {
	a := Default()
	a.Models[0] = "changed"
	if Default().Models[0] == "changed" {
		t.Fatalf("Default() must not share the models slice")
	}
}

func TestLoadAPIKey(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		t.Setenv(APIKeyEnv, "env-key")
		got, err := LoadAPIKey(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "env-key" {
			t.Fatalf("expected env-key, got %q", got)
		}
	})

	t.Run("from dotenv file", func(t *testing.T) {
		t.Setenv(APIKeyEnv, "")
		os.Unsetenv(APIKeyEnv)
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(APIKeyEnv+"=file-key\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := LoadAPIKey(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "file-key" {
			t.Fatalf("expected file-key, got %q", got)
		}
	})

	t.Run("unreadable dotenv keeps environment", func(t *testing.T) {
		t.Setenv(APIKeyEnv, "env-key")
		dir := t.TempDir()
		if err := os.Mkdir(filepath.Join(dir, ".env"), 0o755); err != nil {
			t.Fatal(err)
		}
		got, err := LoadAPIKey(dir)
		if err == nil {
			t.Fatalf("expected an error for a .env directory")
		}
		if got != "env-key" {
			t.Fatalf("expected env-key, got %q", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv(APIKeyEnv, "")
		os.Unsetenv(APIKeyEnv)
		got, err := LoadAPIKey(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Fatalf("expected empty key, got %q", got)
		}
	})
}
