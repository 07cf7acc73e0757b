// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package like is the ledger of (film, user) endorsement pairs.

A user either likes a film or does not; adding twice is the same as adding
once. Popularity is always counted from this ledger at read time and is never
stored on the film itself.
*/
package like

import "context"

// Repository defines the data access contract for the like ledger.
type Repository interface {
	// Add records the pair. Returns apperr NOT_FOUND when the film does not exist.
	Add(ctx context.Context, filmID, userID int64) error

	// Remove deletes the pair if present. Returns apperr NOT_FOUND when the film does not exist.
	Remove(ctx context.Context, filmID, userID int64) error

	// Count returns the number of distinct users liking the film.
	Count(ctx context.Context, filmID int64) (int, error)

	// UserIDs returns the liking users in ascending order.
	UserIDs(ctx context.Context, filmID int64) ([]int64, error)
}
