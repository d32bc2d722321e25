package db

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pysugar/usage-insight/internal/config"
	"github.com/pysugar/usage-insight/internal/db/models"
	"gorm.io/gorm/logger"
)

func testConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		DSN:         filepath.Join(t.TempDir(), "insight.db"),
		AutoMigrate: true,
		LogLevel:    "silent",
	}
}

func TestOpen_SQLiteMigratesSchema(t *testing.T) {
	database, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, _ := database.DB()
	defer sqlDB.Close()

	for _, table := range []string{"request_stats", "channel_stats"} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s after auto-migrate", table)
		}
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Driver = "mysql"
	if _, err := Open(cfg); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestGormQuerier_ScansRawRows(t *testing.T) {
	database, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, _ := database.DB()
	defer sqlDB.Close()

	ts := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	for i, key := range []string{"k1", "k1", "k2"} {
		stat := models.RequestStat{
			RequestID:   fmt.Sprintf("req-%d", i),
			APIKey:      key,
			Endpoint:    models.ChatCompletionsEndpoint,
			Timestamp:   ts,
			Model:       "gpt-4o",
			Provider:    "openai",
			TotalTokens: int64(10 * (i + 1)),
		}
		if err := database.Create(&stat).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	q := NewGormQuerier(database, time.Second)
	if got := q.Dialect(); got != config.DriverSQLite {
		t.Fatalf("dialect = %q, want sqlite", got)
	}

	var rows []struct {
		RequestID   string    `gorm:"column:request_id"`
		Timestamp   time.Time `gorm:"column:timestamp"`
		TotalTokens int64     `gorm:"column:total_tokens"`
	}
	err = q.Query(context.Background(), &rows,
		"SELECT request_id, timestamp, total_tokens FROM request_stats WHERE api_key = ? ORDER BY request_id", "k1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1].RequestID != "req-1" || rows[1].TotalTokens != 20 {
		t.Fatalf("unexpected row: %+v", rows[1])
	}
	if !rows[0].Timestamp.Equal(ts) {
		t.Fatalf("timestamp = %v, want %v", rows[0].Timestamp, ts)
	}

	if err := q.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestGormQuerier_ReportsSQLErrors(t *testing.T) {
	database, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, _ := database.DB()
	defer sqlDB.Close()

	var rows []map[string]interface{}
	err = NewGormQuerier(database, 0).Query(context.Background(), &rows, "SELECT * FROM missing_table")
	if err == nil {
		t.Fatal("expected error for unknown table")
	}
}

func TestGormQuerier_CanceledContext(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	database, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: dsn, AutoMigrate: true, LogLevel: "silent"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, _ := database.DB()
	defer sqlDB.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var rows []models.RequestStat
	if err := NewGormQuerier(database, 0).Query(ctx, &rows, "SELECT * FROM request_stats"); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logger.LogLevel{
		"silent":  logger.Silent,
		"ERROR":   logger.Error,
		" info ":  logger.Info,
		"warn":    logger.Warn,
		"verbose": logger.Warn,
		"":        logger.Warn,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
