package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/geo-audit/backend/audit"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.Format != DefaultFormat {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.FailUnder != nil {
		t.Errorf("FailUnder should default to nil, got %v", *cfg.FailUnder)
	}
	if len(cfg.Weights) != len(audit.CategoryKeys) {
		t.Errorf("Expected %d default weights, got %d", len(audit.CategoryKeys), len(cfg.Weights))
	}
}

func TestParseTimeoutMillis(t *testing.T) {
	cfg, err := Parse([]byte("timeout: 5000\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestParseRejectsNegativeTimeout(t *testing.T) {
	if _, err := Parse([]byte("timeout: -1\n")); err == nil {
		t.Error("Negative timeout should be rejected")
	}
}

func TestParseFormat(t *testing.T) {
	for _, format := range []string{"pretty", "json", "md"} {
		cfg, err := Parse([]byte("format: " + format + "\n"))
		if err != nil {
			t.Errorf("Format %q rejected: %v", format, err)
			continue
		}
		if cfg.Format != format {
			t.Errorf("Format = %q, want %q", cfg.Format, format)
		}
	}
	if _, err := Parse([]byte("format: xml\n")); err == nil {
		t.Error("Unknown format should be rejected")
	}
}

func TestParseFailUnder(t *testing.T) {
	cfg, err := Parse([]byte("failUnder: 70\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.FailUnder == nil || *cfg.FailUnder != 70 {
		t.Errorf("FailUnder = %v, want 70", cfg.FailUnder)
	}
	if _, err := Parse([]byte("failUnder: 101\n")); err == nil {
		t.Error("failUnder above 100 should be rejected")
	}
	if _, err := Parse([]byte("failUnder: -1\n")); err == nil {
		t.Error("Negative failUnder should be rejected")
	}
}

func TestParseWeights(t *testing.T) {
	cfg, err := Parse([]byte("weights:\n  answerability: 2.5\n  entityClarity: 0\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := cfg.Weights[audit.Answerability]; got != 2.5 {
		t.Errorf("answerability weight = %v, want 2.5", got)
	}
	if got := cfg.Weights[audit.EntityClarity]; got != 0 {
		t.Errorf("entityClarity weight = %v, want 0", got)
	}
	if got := cfg.Weights[audit.ContentStructure]; got != 1 {
		t.Errorf("Unset weight should default to 1, got %v", got)
	}
}

func TestParseRejectsBadWeights(t *testing.T) {
	if _, err := Parse([]byte("weights:\n  nonsense: 1\n")); err == nil {
		t.Error("Unknown weight key should be rejected")
	}
	if _, err := Parse([]byte("weights:\n  answerability: -1\n")); err == nil {
		t.Error("Negative weight should be rejected")
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("timeout: [nope\n")); err == nil {
		t.Error("Malformed YAML should be rejected")
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geo.yaml")
	if err := os.WriteFile(path, []byte("format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Explicit missing path should be an error")
	}
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, ".geo.yaml")
	if err := os.WriteFile(want, []byte("format: md\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(nested); got != want {
		t.Errorf("findConfigFile = %q, want %q", got, want)
	}
}

func TestFindConfigFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"geo.yaml", "geo.config.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(""), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if got := findConfigFile(dir); got != filepath.Join(dir, "geo.yaml") {
		t.Errorf("findConfigFile = %q, want geo.yaml first", got)
	}
}
