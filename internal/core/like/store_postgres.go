// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on the film_like table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new like repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Add inserts the (film, user) pair.

Description: The existence check and the insert run as one statement, so a
film deleted concurrently can never gain an orphan like. An existing pair is
left untouched.

Parameters:
  - ctx: context.Context
  - filmID: int64
  - userID: int64

Returns:
  - error: apperr NOT_FOUND if the film does not exist
*/
func (repository *PostgresRepository) Add(ctx context.Context, filmID, userID int64) error {
	query := fmt.Sprintf(`
		WITH target AS (
			SELECT %s FROM %s WHERE %s = $1
		), inserted AS (
			INSERT INTO %s (%s, %s)
			SELECT %s, $2::bigint FROM target
			ON CONFLICT DO NOTHING
		)
		SELECT EXISTS (SELECT 1 FROM target)`,
		schema.Film.ID, schema.Film.Table, schema.Film.ID,
		schema.FilmLike.Table, schema.FilmLike.FilmID, schema.FilmLike.UserID,
		schema.Film.ID,
	)

	return repository.execForFilm(ctx, query, "add_like", filmID, userID)
}

/*
Remove deletes the (film, user) pair. Removing an absent pair is a no-op.

Returns:
  - error: apperr NOT_FOUND if the film does not exist
*/
func (repository *PostgresRepository) Remove(ctx context.Context, filmID, userID int64) error {
	query := fmt.Sprintf(`
		WITH target AS (
			SELECT %s FROM %s WHERE %s = $1
		), deleted AS (
			DELETE FROM %s
			WHERE %s IN (SELECT %s FROM target) AND %s = $2
		)
		SELECT EXISTS (SELECT 1 FROM target)`,
		schema.Film.ID, schema.Film.Table, schema.Film.ID,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID, schema.Film.ID, schema.FilmLike.UserID,
	)

	return repository.execForFilm(ctx, query, "remove_like", filmID, userID)
}

func (repository *PostgresRepository) execForFilm(ctx context.Context, query, action string, filmID, userID int64) error {
	var filmExists bool
	if err := repository.pool.QueryRow(ctx, query, filmID, userID).Scan(&filmExists); err != nil {
		return dberr.Wrap(err, action)
	}
	if !filmExists {
		return apperr.NotFound("Film")
	}
	return nil
}

// Count returns 0 for films without likes, including unknown films.
func (repository *PostgresRepository) Count(ctx context.Context, filmID int64) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(DISTINCT %s) FROM %s WHERE %s = $1`,
		schema.FilmLike.UserID, schema.FilmLike.Table, schema.FilmLike.FilmID,
	)

	var count int
	if err := repository.pool.QueryRow(ctx, query, filmID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_likes")
	}
	return count, nil
}

func (repository *PostgresRepository) UserIDs(ctx context.Context, filmID int64) ([]int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.FilmLike.UserID, schema.FilmLike.Table, schema.FilmLike.FilmID, schema.FilmLike.UserID,
	)

	rows, err := repository.pool.Query(ctx, query, filmID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_likes")
	}

	userIDs, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_likes")
	}
	return userIDs, nil
}
