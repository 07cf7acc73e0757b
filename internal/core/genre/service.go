// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

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

func (service *Service) ListGenres(ctx context.Context) ([]*Genre, error) {
	return service.repo.List(ctx)
}

// GetGenre returns the genre or an apperr NOT_FOUND error.
func (service *Service) GetGenre(ctx context.Context, id int) (*Genre, error) {
	return service.repo.GetByID(ctx, id)
}
