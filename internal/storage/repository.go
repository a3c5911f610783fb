package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rmarques/predictpulse/internal/domain/apperr"
	"github.com/rmarques/predictpulse/internal/domain/models"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// PredictionsRepository defines the read-only contract over the predictions table.
//
// Absence is not an error at this layer: GetLatest returns (nil, nil) for an
// unknown pair, and GetAllLatest returns an empty slice on an empty table.
// Any driver failure comes back wrapped as apperr.Storage.
type PredictionsRepository interface {
	GetLatest(ctx context.Context, pair string) (*models.Prediction, error)
	GetAllLatest(ctx context.Context) ([]models.Prediction, error)
}

type predictionsRepository struct {
	db *sql.DB
}

func NewPredictionsRepository(db *sql.DB) PredictionsRepository {
	return &predictionsRepository{db: db}
}

const predictionColumns = `pair, predicted_price, ts_ms, predicted_ts_ms, model_name, model_version`

// GetLatest returns the prediction with the maximum ts_ms for the given pair,
// or nil when no row exists. The pair is expected to be validated upstream and
// is matched exactly.
//
// Ties on (pair, ts_ms) are resolved by whichever row Postgres visits first
// under ORDER BY ts_ms DESC LIMIT 1; stable within one execution only.
func (r *predictionsRepository) GetLatest(ctx context.Context, pair string) (*models.Prediction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+predictionColumns+`
		FROM predictions
		WHERE pair = $1
		ORDER BY ts_ms DESC
		LIMIT 1
	`, pair)

	var p models.Prediction
	err := row.Scan(&p.Pair, &p.PredictedPrice, &p.TsMs, &p.PredictedTsMs, &p.ModelName, &p.ModelVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}

	return &p, nil
}

// GetAllLatest returns one prediction per distinct pair, each the maximum-ts_ms
// row of its group, ordered by pair.
//
// The grouping is pushed to Postgres with DISTINCT ON so the service never
// scans the full table client-side; the table grows without bound over time.
func (r *predictionsRepository) GetAllLatest(ctx context.Context) ([]models.Prediction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT ON (pair) `+predictionColumns+`
		FROM predictions
		ORDER BY pair, ts_ms DESC
	`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer func() { _ = rows.Close() }()

	predictions := make([]models.Prediction, 0)
	for rows.Next() {
		var p models.Prediction
		if err := rows.Scan(&p.Pair, &p.PredictedPrice, &p.TsMs, &p.PredictedTsMs, &p.ModelName, &p.ModelVersion); err != nil {
			return nil, apperr.Storage(err)
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}

	return predictions, nil
}
