package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keycoach/keycoach/pkg/charset"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultPath(t *testing.T) {
	if !strings.Contains(DefaultPath(), ".keycoach") {
		t.Errorf("DefaultPath() = %q", DefaultPath())
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLength != 16 {
		t.Errorf("DefaultLength = %d, want 16", cfg.DefaultLength)
	}
	if len(cfg.DefaultClasses) != 4 {
		t.Errorf("DefaultClasses = %v, want all four", cfg.DefaultClasses)
	}
	if cfg.OutputFormat != "table" {
		t.Errorf("OutputFormat = %q, want table", cfg.OutputFormat)
	}
	if cfg.ContentPath != "" {
		t.Errorf("ContentPath = %q, want empty", cfg.ContentPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, "default_length: 20\noutput_format: json\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLength != 20 {
		t.Errorf("DefaultLength = %d, want 20", cfg.DefaultLength)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q, want json", cfg.OutputFormat)
	}
	// Untouched keys keep their defaults.
	if len(cfg.DefaultClasses) != 4 {
		t.Errorf("DefaultClasses = %v, want all four", cfg.DefaultClasses)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"length zero", "default_length: 0\n", "default_length"},
		{"length over max", "default_length: 33\n", "default_length"},
		{"unknown class", "default_classes: [lower, klingon]\n", "unknown class"},
		{"empty classes", "default_classes: []\n", "at least one class"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %q, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "default_length: [not an int\n"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestClasses(t *testing.T) {
	path := writeConfig(t, "default_classes: [symbols, lowercase, lower]\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	classes, err := cfg.Classes()
	if err != nil {
		t.Fatalf("Classes: %v", err)
	}
	want := []charset.Class{charset.Lower, charset.Symbol}
	if len(classes) != len(want) {
		t.Fatalf("classes = %v, want %v", classes, want)
	}
	for i := range want {
		if classes[i] != want[i] {
			t.Errorf("classes[%d] = %v, want %v", i, classes[i], want[i])
		}
	}
}
