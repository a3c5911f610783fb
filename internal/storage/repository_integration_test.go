//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/rmarques/predictpulse/internal/domain/models"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "predictions",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=predictions sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/predictions?sslmode=disable", host, port.Port())
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/storage → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func seedPrediction(t *testing.T, db *sql.DB, pair string, price float64, tsMs, predictedTsMs int64) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO predictions (pair, predicted_price, ts_ms, predicted_ts_ms, model_name, model_version)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, pair, price, tsMs, predictedTsMs, "xgboost", "1.4.0")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestRepository_Integration(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	repo := NewPredictionsRepository(db)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		p, err := repo.GetLatest(ctx, "BTCUSDT")
		if err != nil || p != nil {
			t.Fatalf("GetLatest on empty table: p=%+v err=%v", p, err)
		}
		all, err := repo.GetAllLatest(ctx)
		if err != nil || len(all) != 0 {
			t.Fatalf("GetAllLatest on empty table: all=%+v err=%v", all, err)
		}
	})

	// Two rows for BTCUSDT (ts 100 and 200), one row each for two other pairs.
	seedPrediction(t, db, "BTCUSDT", 64000.00, 100, 400)
	seedPrediction(t, db, "BTCUSDT", 65001.23, 200, 500)
	seedPrediction(t, db, "ETHUSDT", 3100.50, 250, 550)
	seedPrediction(t, db, "ADAUSDT", 0.47, 300, 600)

	t.Run("latest row wins", func(t *testing.T) {
		p, err := repo.GetLatest(ctx, "BTCUSDT")
		if err != nil || p == nil {
			t.Fatalf("GetLatest: p=%+v err=%v", p, err)
		}
		if p.TsMs != 200 || p.PredictedPrice != 65001.23 {
			t.Fatalf("expected ts_ms=200 row, got %+v", p)
		}
	})

	t.Run("unknown pair is nil", func(t *testing.T) {
		p, err := repo.GetLatest(ctx, "ZZZUNKNOWN")
		if err != nil || p != nil {
			t.Fatalf("p=%+v err=%v", p, err)
		}
	})

	t.Run("exact match only", func(t *testing.T) {
		// Lowercase is a different pair value; no normalization happens anywhere.
		p, err := repo.GetLatest(ctx, "btcusdt")
		if err != nil || p != nil {
			t.Fatalf("p=%+v err=%v", p, err)
		}
	})

	t.Run("one latest row per pair", func(t *testing.T) {
		all, err := repo.GetAllLatest(ctx)
		if err != nil {
			t.Fatalf("GetAllLatest: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("len=%d, want 3 (%+v)", len(all), all)
		}
		byPair := map[string]models.Prediction{}
		for _, p := range all {
			byPair[p.Pair] = p
		}
		if byPair["BTCUSDT"].TsMs != 200 || byPair["ETHUSDT"].TsMs != 250 || byPair["ADAUSDT"].TsMs != 300 {
			t.Fatalf("unexpected groups: %+v", byPair)
		}
	})

	t.Run("idempotent reads", func(t *testing.T) {
		first, err := repo.GetLatest(ctx, "ETHUSDT")
		if err != nil {
			t.Fatalf("first: %v", err)
		}
		second, err := repo.GetLatest(ctx, "ETHUSDT")
		if err != nil {
			t.Fatalf("second: %v", err)
		}
		if *first != *second {
			t.Fatalf("reads differ: %+v vs %+v", first, second)
		}
	})
}
