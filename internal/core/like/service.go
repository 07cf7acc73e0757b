// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import (
	"context"
	"log/slog"

	"github.com/taibuivan/filmorate/internal/platform/ctxutil"
	"github.com/taibuivan/filmorate/internal/platform/validate"
)

// Request field identifiers used in validation errors.
const (
	FieldFilmID = "id"
	FieldUserID = "userId"
)

// Service guards the like ledger and records every change in the log.
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

/*
Add records that userID likes filmID. Repeated calls are no-ops.

Returns:
  - error: VALIDATION_ERROR for non-positive ids, NOT_FOUND for an unknown film
*/
func (service *Service) Add(ctx context.Context, filmID, userID int64) error {
	if err := validatePair(filmID, userID); err != nil {
		return err
	}

	if err := service.repo.Add(ctx, filmID, userID); err != nil {
		return err
	}

	ctxutil.LoggerOr(ctx, service.logger).InfoContext(ctx, "like_added",
		slog.Int64("film_id", filmID),
		slog.Int64("user_id", userID),
	)
	return nil
}

/*
Remove withdraws the like of userID from filmID. Removing an absent like is a no-op.

Returns:
  - error: VALIDATION_ERROR for non-positive ids, NOT_FOUND for an unknown film
*/
func (service *Service) Remove(ctx context.Context, filmID, userID int64) error {
	if err := validatePair(filmID, userID); err != nil {
		return err
	}

	if err := service.repo.Remove(ctx, filmID, userID); err != nil {
		return err
	}

	ctxutil.LoggerOr(ctx, service.logger).InfoContext(ctx, "like_removed",
		slog.Int64("film_id", filmID),
		slog.Int64("user_id", userID),
	)
	return nil
}

// CountFor returns the popularity of a film.
func (service *Service) CountFor(ctx context.Context, filmID int64) (int, error) {
	return service.repo.Count(ctx, filmID)
}

// UserIDs lists the users liking a film, ascending.
func (service *Service) UserIDs(ctx context.Context, filmID int64) ([]int64, error) {
	return service.repo.UserIDs(ctx, filmID)
}

func validatePair(filmID, userID int64) error {
	validator := &validate.Validator{}
	validator.Positive(FieldFilmID, filmID).Positive(FieldUserID, userID)
	return validator.Err()
}
