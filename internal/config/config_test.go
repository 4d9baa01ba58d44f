package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("RUN_MIGRATIONS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "" {
		t.Errorf("expected empty secret, got %q", cfg.JWTSecret)
	}
	if cfg.RunMigrations {
		t.Error("expected migrations disabled by default")
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Errorf("expected no CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_Values(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "jobboard")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, http://localhost:3000,")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.JWTSecret != "super-secret" {
		t.Errorf("unexpected secret %q", cfg.JWTSecret)
	}
	if cfg.DBUser != "app" || cfg.DBName != "jobboard" {
		t.Errorf("unexpected DB settings: %+v", cfg)
	}
	if !cfg.RunMigrations {
		t.Error("expected migrations enabled")
	}
	want := []string{"https://app.example.com", "http://localhost:3000"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.CORSAllowedOrigins)
	}
	for i, o := range want {
		if cfg.CORSAllowedOrigins[i] != o {
			t.Errorf("origin %d: expected %q, got %q", i, o, cfg.CORSAllowedOrigins[i])
		}
	}
}
