// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import "context"

// Repository is the row-level data access contract for films.
//
// Films returned by FindByID carry only the rating id; Genres and Likes are nil.
type Repository interface {
	// Create inserts the film row and its genre associations in one transaction
	// and returns the assigned id.
	Create(ctx context.Context, film *Film) (int64, error)

	// Update replaces every scalar column and, when film.Genres is non-nil, the
	// genre associations, in one transaction. Returns apperr NOT_FOUND for an unknown id.
	Update(ctx context.Context, film *Film) error

	FindByID(ctx context.Context, id int64) (*Film, error)

	// ListIDs returns every film id in ascending order.
	ListIDs(ctx context.Context) ([]int64, error)

	// GenreIDs returns the genre ids associated with a film in ascending order.
	GenreIDs(ctx context.Context, filmID int64) ([]int, error)

	// Ranked returns the popularity listing with ratings resolved.
	Ranked(ctx context.Context, query RankQuery) ([]*Film, error)
}
