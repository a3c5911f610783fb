package service

import (
	"context"

	"github.com/rmarques/predictpulse/internal/domain/models"
	"github.com/rmarques/predictpulse/internal/storage"
)

// PredictionService defines business logic for serving predictions.
// This decouples HTTP handlers from data access.
type PredictionService interface {
	GetLatest(ctx context.Context, pair string) (*models.Prediction, error)
	GetAllLatest(ctx context.Context) ([]models.Prediction, error)
}

type predictionService struct {
	repo storage.PredictionsRepository
}

func NewPredictionService(repo storage.PredictionsRepository) PredictionService {
	return &predictionService{repo: repo}
}

func (s *predictionService) GetLatest(ctx context.Context, pair string) (*models.Prediction, error) {
	// In the future, we might add caching or model-based filtering here.
	return s.repo.GetLatest(ctx, pair)
}

func (s *predictionService) GetAllLatest(ctx context.Context) ([]models.Prediction, error) {
	return s.repo.GetAllLatest(ctx)
}
