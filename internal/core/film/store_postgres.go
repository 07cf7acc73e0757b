// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
	"github.com/taibuivan/filmorate/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using a pgx connection pool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new film repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// # Writes

/*
Create inserts a film and its genre associations.

Description: The film row and its junction rows are written in one
transaction. The id is assigned by the database identity column. Duplicate
genre ids are ignored.

Parameters:
  - ctx: context.Context
  - film: *Film (ID is ignored)

Returns:
  - int64: The new film id
  - error: Persistence errors classified by dberr
*/
func (repository *PostgresRepository) Create(ctx context.Context, film *Film) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`,
		schema.Film.Table,
		schema.Film.Name, schema.Film.ReleaseDate, schema.Film.Description,
		schema.Film.Duration, schema.Film.Rate, schema.Film.MpaID,
		schema.Film.ID,
	)

	var id int64
	err := postgres.WithTx(ctx, repository.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query,
			film.Name, film.ReleaseDate, film.Description,
			film.Duration, film.Rate, film.Rating.ID,
		).Scan(&id); err != nil {
			return dberr.Wrap(err, "create_film")
		}

		return insertGenres(ctx, tx, id, film.GenreIDs())
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

/*
Update replaces a film's scalar columns and optionally its genre set.

Description: A nil film.Genres leaves existing associations untouched; any
non-nil slice (empty included) deletes all associations and inserts the new
set. Both steps share one transaction, so readers never see a half-replaced
genre set.

Returns:
  - error: apperr NOT_FOUND if no film has film.ID
*/
func (repository *PostgresRepository) Update(ctx context.Context, film *Film) error {
	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $7`,
		schema.Film.Table,
		schema.Film.Name, schema.Film.ReleaseDate, schema.Film.Description,
		schema.Film.Duration, schema.Film.Rate, schema.Film.MpaID,
		schema.Film.ID,
	)

	clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.FilmGenre.Table, schema.FilmGenre.FilmID,
	)

	return postgres.WithTx(ctx, repository.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateQuery,
			film.Name, film.ReleaseDate, film.Description,
			film.Duration, film.Rate, film.Rating.ID,
			film.ID,
		)
		if err != nil {
			return dberr.Wrap(err, "update_film")
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("Film")
		}

		// Absent genre set: keep what is stored
		if film.Genres == nil {
			return nil
		}

		if _, err := tx.Exec(ctx, clearQuery, film.ID); err != nil {
			return dberr.Wrap(err, "clear_film_genres")
		}

		return insertGenres(ctx, tx, film.ID, film.GenreIDs())
	})
}

// insertGenres queues one junction insert per genre and sends them as a single batch.
func insertGenres(ctx context.Context, tx pgx.Tx, filmID int64, genreIDs []int) error {
	if len(genreIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.FilmGenre.Table, schema.FilmGenre.FilmID, schema.FilmGenre.GenreID,
	)

	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(query, filmID, genreID)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return dberr.Wrap(err, "insert_film_genres")
	}
	return nil
}

// # Reads

// FindByID returns the scalar row of a film; only Rating.ID is set on the rating.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64) (*Film, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.Film.ID, schema.Film.Name, schema.Film.ReleaseDate, schema.Film.Description,
		schema.Film.Duration, schema.Film.Rate, schema.Film.MpaID,
		schema.Film.Table,
		schema.Film.ID,
	)

	film := &Film{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&film.ID,
		&film.Name,
		&film.ReleaseDate,
		&film.Description,
		&film.Duration,
		&film.Rate,
		&film.Rating.ID,
	)
	if err != nil {
		return nil, dberr.WrapNotFound(err, "get_film", "Film")
	}

	return film, nil
}

func (repository *PostgresRepository) ListIDs(ctx context.Context) ([]int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.Film.ID, schema.Film.Table, schema.Film.ID,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_film_ids")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_film_ids")
	}
	return ids, nil
}

func (repository *PostgresRepository) GenreIDs(ctx context.Context, filmID int64) ([]int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.FilmGenre.GenreID, schema.FilmGenre.Table, schema.FilmGenre.FilmID, schema.FilmGenre.GenreID,
	)

	rows, err := repository.pool.Query(ctx, query, filmID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_film_genres")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_film_genres")
	}
	return ids, nil
}

/*
Ranked executes the popularity listing built by [buildRankedQuery].

Returns:
  - []*Film: Summary films with the rating resolved; empty, never nil, when nothing matches
  - error: Persistence errors classified by dberr
*/
func (repository *PostgresRepository) Ranked(ctx context.Context, query RankQuery) ([]*Film, error) {
	sql, args := buildRankedQuery(query)

	rows, err := repository.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "rank_films")
	}

	films, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Film, error) {
		film := &Film{}
		err := row.Scan(
			&film.ID,
			&film.Name,
			&film.ReleaseDate,
			&film.Description,
			&film.Duration,
			&film.Rate,
			&film.Rating.ID,
			&film.Rating.Name,
		)
		return film, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_ranked_films")
	}

	return films, nil
}
