package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Tolerance != 0 {
		t.Errorf("Tolerance = %v, want 0", cfg.Tolerance)
	}
	if cfg.Output.Format != "human" {
		t.Errorf("Output.Format = %q, want human", cfg.Output.Format)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled = false, want true")
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	root := t.TempDir()

	cfg := DefaultConfig()
	cfg.Tolerance = 0.25
	cfg.Ignore = []string{"/meta"}
	cfg.Output.Format = "json"
	if err := cfg.Save(root); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.Tolerance != 0.25 {
		t.Errorf("Tolerance = %v, want 0.25", loaded.Tolerance)
	}
	if len(loaded.Ignore) != 1 || loaded.Ignore[0] != "/meta" {
		t.Errorf("Ignore = %v, want [/meta]", loaded.Ignore)
	}
	if loaded.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", loaded.Output.Format)
	}
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `{"version":1,"tolerance":-0.5}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(root); err == nil {
		t.Error("LoadConfig() accepted a config with negative tolerance")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}

	bad := DefaultConfig()
	bad.Tolerance = -1
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted negative tolerance")
	}

	bad = DefaultConfig()
	bad.Output.Format = "xml"
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted unknown output format")
	}
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	content := "tolerance = 0.001\nignore = [\"/meta/generated_at\", \"/meta/host\"]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}
	if rules.Tolerance == nil || *rules.Tolerance != 0.001 {
		t.Errorf("Tolerance = %v, want 0.001", rules.Tolerance)
	}
	if len(rules.Ignore) != 2 || rules.Ignore[0] != "/meta/generated_at" {
		t.Errorf("Ignore = %v, want two addresses", rules.Ignore)
	}
}

func TestLoadRulesToleranceOptional(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, []byte("ignore = [\"/a\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}
	if rules.Tolerance != nil {
		t.Errorf("Tolerance = %v, want unset", *rules.Tolerance)
	}
}

func TestLoadRulesRejectsNegativeTolerance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, []byte("tolerance = -0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRules(path); err == nil {
		t.Error("LoadRules() accepted negative tolerance")
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadRules() on missing file should fail")
	}
}
