// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"strconv"

	"github.com/taibuivan/filmorate/internal/platform/cache"
)

// CachedRepository is a Redis read-through decorator over another [Repository].
//
// Genres are immutable reference data, so entries only expire by TTL.
type CachedRepository struct {
	next  Repository
	cache *cache.JSONCache
}

// NewCachedRepository wraps next with the given cache.
func NewCachedRepository(next Repository, jsonCache *cache.JSONCache) *CachedRepository {
	return &CachedRepository{next: next, cache: jsonCache}
}

func (repository *CachedRepository) List(ctx context.Context) ([]*Genre, error) {
	return cache.Fetch(ctx, repository.cache, "all", repository.next.List)
}

func (repository *CachedRepository) GetByID(ctx context.Context, id int) (*Genre, error) {
	return cache.Fetch(ctx, repository.cache, strconv.Itoa(id), func(ctx context.Context) (*Genre, error) {
		return repository.next.GetByID(ctx, id)
	})
}
