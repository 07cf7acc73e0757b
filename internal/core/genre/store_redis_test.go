// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/cache"
)

// countingRepository serves a fixed catalog and counts lookups.
type countingRepository struct {
	genres map[int]*genre.Genre
	gets   int
	lists  int
}

func (repository *countingRepository) List(context.Context) ([]*genre.Genre, error) {
	repository.lists++
	out := make([]*genre.Genre, 0, len(repository.genres))
	for id := 1; id <= len(repository.genres); id++ {
		out = append(out, repository.genres[id])
	}
	return out, nil
}

func (repository *countingRepository) GetByID(_ context.Context, id int) (*genre.Genre, error) {
	repository.gets++
	g, ok := repository.genres[id]
	if !ok {
		return nil, apperr.NotFound("Genre")
	}
	return g, nil
}

func newCachedRepository(t *testing.T) (*genre.CachedRepository, *countingRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner := &countingRepository{genres: map[int]*genre.Genre{
		1: {ID: 1, Name: "Comedy"},
		2: {ID: 2, Name: "Drama"},
	}}
	jsonCache := cache.New(client, "catalog:genre:", time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return genre.NewCachedRepository(inner, jsonCache), inner
}

/*
TestCachedRepository_GetByID serves repeated lookups from Redis.
*/
func TestCachedRepository_GetByID(t *testing.T) {
	repository, inner := newCachedRepository(t)
	ctx := context.Background()

	for range 3 {
		g, err := repository.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Drama", g.Name)
	}

	assert.Equal(t, 1, inner.gets)
}

/*
TestCachedRepository_NotFoundIsNotCached keeps misses flowing to the database.
*/
func TestCachedRepository_NotFoundIsNotCached(t *testing.T) {
	repository, inner := newCachedRepository(t)
	ctx := context.Background()

	for range 2 {
		_, err := repository.GetByID(ctx, 99)
		assert.True(t, apperr.IsNotFound(err))
	}

	assert.Equal(t, 2, inner.gets)
}

/*
TestCachedRepository_List caches the full catalog under one key.
*/
func TestCachedRepository_List(t *testing.T) {
	repository, inner := newCachedRepository(t)
	ctx := context.Background()

	first, err := repository.List(ctx)
	require.NoError(t, err)
	second, err := repository.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, second, 2)
	assert.Equal(t, 1, inner.lists)
}
