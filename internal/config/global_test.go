package config

import "testing"

func TestGlobalConfig_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() on missing file error = %v", err)
	}
	if cfg.CrossrefMailto != "" || cfg.PreferredStyle != "" {
		t.Errorf("missing file should yield empty config, got %+v", cfg)
	}
}

func TestGlobalConfig_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &GlobalConfig{
		CrossrefMailto: "user@example.org",
		PreferredStyle: "harvard",
	}
	if err := SaveGlobalConfig(cfg); err != nil {
		t.Fatalf("SaveGlobalConfig() error = %v", err)
	}

	reloaded, err := LoadGlobalConfig()
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.CrossrefMailto != "user@example.org" || reloaded.PreferredStyle != "harvard" {
		t.Errorf("reloaded global config = %+v", reloaded)
	}
}
