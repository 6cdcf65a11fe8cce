package config

import (
	"strings"
	"testing"
	"time"
)

func validConfigForTest() *Config {
	return &Config{
		Env:                          "development",
		HTTPPort:                     "8080",
		DatabaseURL:                  "sqlite://promocoes.db",
		DBLogLevel:                   "warn",
		DBMaxOpenConns:               10,
		DBMaxIdleConns:               5,
		CORSAllowedOrigins:           []string{"*"},
		APIRateLimitPerMin:           600,
		RedisAddr:                    "localhost:6379",
		ReadinessProbeTimeout:        time.Second,
		ShutdownTimeout:              20 * time.Second,
		ShutdownHTTPDrainTimeout:     10 * time.Second,
		ShutdownObservabilityTimeout: 8 * time.Second,
		LogLevel:                     "info",
		OTELTraceSamplingRatio:       1.0,
		OTELMetricsExportInterval:    10 * time.Second,
	}
}

func TestValidateDevelopmentProfileAllowsWildcardCORS(t *testing.T) {
	if err := validConfigForTest().Validate(); err != nil {
		t.Fatalf("expected development config to pass: %v", err)
	}
}

func TestValidateProductionRejectsWildcardCORS(t *testing.T) {
	cfg := validConfigForTest()
	cfg.Env = "production"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
		t.Fatalf("expected CORS validation error, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfigForTest()
	cfg.DatabaseURL = "mysql://nope"
	cfg.APIRateLimitPerMin = 0
	cfg.ShutdownHTTPDrainTimeout = time.Minute
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"DATABASE_URL", "API_RATE_LIMIT_PER_MIN", "SHUTDOWN_HTTP_DRAIN_TIMEOUT"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in error, got %v", want, err)
		}
	}
}

func TestParseDatabaseURL(t *testing.T) {
	cases := []struct {
		in         string
		wantDriver string
		wantDSN    string
		wantErr    bool
	}{
		{in: "postgres://u:p@localhost:5432/db", wantDriver: DriverPostgres, wantDSN: "postgres://u:p@localhost:5432/db"},
		{in: "postgresql://localhost/db", wantDriver: DriverPostgres, wantDSN: "postgresql://localhost/db"},
		{in: "sqlite://promocoes.db", wantDriver: DriverSQLite, wantDSN: "promocoes.db"},
		{in: "file:test.db?_foreign_keys=on", wantDriver: DriverSQLite, wantDSN: "file:test.db?_foreign_keys=on"},
		{in: "sqlite://", wantErr: true},
		{in: "mysql://localhost", wantErr: true},
	}
	for _, tc := range cases {
		driver, dsn, err := ParseDatabaseURL(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if driver != tc.wantDriver || dsn != tc.wantDSN {
			t.Fatalf("%q: got driver=%q dsn=%q", tc.in, driver, dsn)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "sqlite://promocoes.db" {
		t.Fatalf("unexpected default database url: %s", cfg.DatabaseURL)
	}
	if cfg.OTELMetricsEnabled || cfg.OTELTracingEnabled || cfg.OTELLogsEnabled {
		t.Fatal("expected otel disabled by default in test env")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected default cors origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SHUTDOWN_TIMEOUT") {
		t.Fatalf("expected duration parse error, got %v", err)
	}
}
