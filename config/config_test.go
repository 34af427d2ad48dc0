package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Driver = %q, want %q", cfg.Database.Driver, DriverPostgres)
	}
	if cfg.Report.Locale != "pt-BR" || cfg.Report.DefaultMonths != 6 {
		t.Errorf("Report = %+v", cfg.Report)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis should be disabled by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("REPORT_DEFAULT_MONTHS", "12")
	t.Setenv("REPORT_CACHE_TTL", "30s")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("EXPORT_RATE_LIMIT", "not-a-number")

	cfg := Load()

	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("Driver = %q", cfg.Database.Driver)
	}
	if cfg.Report.DefaultMonths != 12 {
		t.Errorf("DefaultMonths = %d", cfg.Report.DefaultMonths)
	}
	if cfg.Redis.TTL != 30*time.Second || !cfg.Redis.Enabled {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Export.RateLimit != 10 {
		t.Errorf("RateLimit = %d, want default on parse failure", cfg.Export.RateLimit)
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := (LogConfig{Level: tt.level}).SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
