package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "PAGE_SIZE", "TIMEZONE", "JWT_EXPIRY_HOURS"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.PageSize != 20 {
		t.Errorf("PageSize = %d", cfg.PageSize)
	}
	if cfg.JWTExpiryHours != 720 {
		t.Errorf("JWTExpiryHours = %d", cfg.JWTExpiryHours)
	}
	if cfg.Location.String() != "Asia/Seoul" {
		t.Errorf("Location = %s", cfg.Location)
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{DB: DB{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}}
	want := "host=db port=5432 user=u password=p dbname=n sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}

	cfg.DatabaseURL = "postgres://x"
	if got := cfg.DSN(); got != "postgres://x" {
		t.Errorf("DSN() with DATABASE_URL = %q", got)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := map[string]string{
		"PAGE_SIZE":        "zero",
		"JWT_EXPIRY_HOURS": "x",
		"TIMEZONE":         "Mars/Olympus",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv with %s=%q succeeded", key, value)
			}
		})
	}
}

func TestSetupLogging(t *testing.T) {
	if err := (Config{LogLevel: "debug", LogFormat: "json"}).SetupLogging(); err != nil {
		t.Errorf("SetupLogging: %v", err)
	}
	if err := (Config{LogLevel: "loud"}).SetupLogging(); err == nil {
		t.Error("SetupLogging accepted an unknown level")
	}
	if err := (Config{LogLevel: "info", LogFormat: "xml"}).SetupLogging(); err == nil {
		t.Error("SetupLogging accepted an unknown format")
	}
}
