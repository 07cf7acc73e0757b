// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rating

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListRatings(ctx context.Context) ([]*Rating, error) {
	return service.repo.List(ctx)
}

// GetRating returns the rating or an apperr NOT_FOUND error.
func (service *Service) GetRating(ctx context.Context, id int) (*Rating, error) {
	return service.repo.GetByID(ctx, id)
}
