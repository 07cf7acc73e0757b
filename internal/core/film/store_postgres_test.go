// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/core/film"
	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/like"
	"github.com/taibuivan/filmorate/internal/core/rating"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/migration"
	"github.com/taibuivan/filmorate/internal/platform/postgres"
	"github.com/taibuivan/filmorate/pkg/pointer"
)

const testDatabaseEnv = "FILMORATE_TEST_DATABASE_URL"

// Seeded reference ids.
const (
	genreComedy = 1
	genreDrama  = 2
	ratingPG    = 2
)

type database struct {
	films   *film.Service
	likes   *like.Service
	ratings *rating.Service
}

// openDatabase migrates and empties the database named by FILMORATE_TEST_DATABASE_URL.
func openDatabase(t *testing.T) *database {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres test in short mode")
	}
	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDatabaseEnv)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, migration.RunUp(dsn, "../../../data/migrations", logger))

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	truncate(t, pool)

	likes := like.NewService(like.NewPostgresRepository(pool), logger)
	genres := genre.NewService(genre.NewPostgresRepository(pool), logger)
	ratings := rating.NewService(rating.NewPostgresRepository(pool), logger)

	return &database{
		films:   film.NewService(film.NewPostgresRepository(pool), genres, ratings, likes, logger),
		likes:   likes,
		ratings: ratings,
	}
}

func truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE film, film_genre, film_like RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func (db *database) create(t *testing.T, name string, year int, genreIDs ...int) *film.Film {
	t.Helper()
	created, err := db.films.Create(context.Background(), &film.Film{
		Name:        name,
		ReleaseDate: time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC),
		Description: name + " description",
		Duration:    90,
		Rating:      rating.Rating{ID: ratingPG},
		Genres:      genres(genreIDs...),
	})
	require.NoError(t, err)
	return created
}

func (db *database) like(t *testing.T, filmID int64, users ...int64) {
	t.Helper()
	for _, userID := range users {
		require.NoError(t, db.likes.Add(context.Background(), filmID, userID))
	}
}

func ids(films []*film.Film) []int64 {
	out := make([]int64, 0, len(films))
	for _, f := range films {
		out = append(out, f.ID)
	}
	return out
}

func TestPostgres_RankedScenario(t *testing.T) {
	db := openDatabase(t)
	ctx := context.Background()

	a := db.create(t, "A", 2020, genreComedy)
	b := db.create(t, "B", 2020, genreDrama)
	c := db.create(t, "C", 2019, genreComedy)
	db.like(t, a.ID, 1, 2)
	db.like(t, b.ID, 1)
	db.like(t, c.ID, 1, 2, 3)

	tests := []struct {
		name  string
		query film.RankQuery
		want  []int64
	}{
		{"genre and year", film.RankQuery{GenreID: pointer.To(genreComedy), Year: pointer.To(2020)}, []int64{a.ID}},
		{"genre only", film.RankQuery{GenreID: pointer.To(genreComedy)}, []int64{c.ID, a.ID}},
		{"year only", film.RankQuery{Year: pointer.To(2020)}, []int64{a.ID, b.ID}},
		{"no filters", film.RankQuery{}, []int64{c.ID, a.ID, b.ID}},
		{"limit", film.RankQuery{Limit: pointer.To(2)}, []int64{c.ID, a.ID}},
		{"no match", film.RankQuery{Year: pointer.To(1950)}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			films, err := db.films.Popular(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(films))

			for _, f := range films {
				assert.Equal(t, "PG", f.Rating.Name)
				assert.Nil(t, f.Genres)
				assert.Nil(t, f.Likes)
			}
		})
	}
}

func TestPostgres_RankedTieBreakAndZeroLikes(t *testing.T) {
	db := openDatabase(t)

	first := db.create(t, "First", 2001)
	second := db.create(t, "Second", 2001)
	third := db.create(t, "Third", 2001)
	db.like(t, third.ID, 8)

	films, err := db.films.Popular(context.Background(), film.RankQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int64{third.ID, first.ID, second.ID}, ids(films))
}

func TestPostgres_GenreAssociations(t *testing.T) {
	db := openDatabase(t)
	ctx := context.Background()

	created := db.create(t, "Dup", 2010, genreDrama, genreComedy, genreDrama)
	assert.Equal(t, []genre.Genre{{ID: 1, Name: "Comedy"}, {ID: 2, Name: "Drama"}}, created.Genres)

	change := *created
	change.Genres = nil
	change.Description = "changed"
	updated, err := db.films.Update(ctx, &change)
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Description)
	assert.Len(t, updated.Genres, 2)

	change.Genres = []genre.Genre{}
	updated, err = db.films.Update(ctx, &change)
	require.NoError(t, err)
	assert.NotNil(t, updated.Genres)
	assert.Empty(t, updated.Genres)

	change.ID = created.ID + 100
	_, err = db.films.Update(ctx, &change)
	assert.True(t, apperr.IsNotFound(err))
}

func TestPostgres_Likes(t *testing.T) {
	db := openDatabase(t)
	ctx := context.Background()

	f := db.create(t, "Liked", 2015)
	db.like(t, f.ID, 4, 4, 2)

	count, err := db.likes.CountFor(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, db.likes.Remove(ctx, f.ID, 99))
	require.NoError(t, db.likes.Remove(ctx, f.ID, 4))

	got, err := db.films.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, got.Likes)

	assert.True(t, apperr.IsNotFound(db.likes.Add(ctx, f.ID+1, 1)))
	assert.True(t, apperr.IsNotFound(db.likes.Remove(ctx, f.ID+1, 1)))
}

func TestPostgres_GetByIDAndList(t *testing.T) {
	db := openDatabase(t)
	ctx := context.Background()

	_, err := db.films.GetByID(ctx, 1)
	assert.True(t, apperr.IsNotFound(err))

	db.create(t, "One", 1999)
	db.create(t, "Two", 2000, genreDrama)

	films, err := db.films.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(films))

	mpa, err := db.ratings.GetRating(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "NC-17", mpa.Name)
}
