// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film_test

import (
	"bytes"
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/taibuivan/filmorate/internal/core/film"
	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/rating"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

// memoryRepository is an in-memory [film.Repository].
type memoryRepository struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]film.Film
	genres    map[int64][]int
	ranked    []*film.Film
	rankCalls []film.RankQuery
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[int64]film.Film{}, genres: map[int64][]int{}}
}

func (repository *memoryRepository) Create(_ context.Context, f *film.Film) (int64, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextID++
	id := repository.nextID
	repository.store(id, f)
	ids := f.GenreIDs()
	slices.Sort(ids)
	repository.genres[id] = ids
	return id, nil
}

func (repository *memoryRepository) Update(_ context.Context, f *film.Film) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.rows[f.ID]; !ok {
		return apperr.NotFound("Film")
	}
	repository.store(f.ID, f)
	if f.Genres != nil {
		ids := f.GenreIDs()
		slices.Sort(ids)
		repository.genres[f.ID] = ids
	}
	return nil
}

func (repository *memoryRepository) store(id int64, f *film.Film) {
	repository.rows[id] = film.Film{
		ID:          id,
		Name:        f.Name,
		ReleaseDate: f.ReleaseDate,
		Description: f.Description,
		Duration:    f.Duration,
		Rate:        f.Rate,
		Rating:      rating.Rating{ID: f.Rating.ID},
	}
}

func (repository *memoryRepository) FindByID(_ context.Context, id int64) (*film.Film, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	row, ok := repository.rows[id]
	if !ok {
		return nil, apperr.NotFound("Film")
	}
	return &row, nil
}

func (repository *memoryRepository) ListIDs(context.Context) ([]int64, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	return slices.Sorted(maps.Keys(repository.rows)), nil
}

func (repository *memoryRepository) GenreIDs(_ context.Context, filmID int64) ([]int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	return slices.Clone(repository.genres[filmID]), nil
}

func (repository *memoryRepository) Ranked(_ context.Context, query film.RankQuery) ([]*film.Film, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.rankCalls = append(repository.rankCalls, query)
	if repository.ranked == nil {
		return []*film.Film{}, nil
	}
	return repository.ranked, nil
}

// catalog serves both genres and ratings from fixed maps.
type catalog struct {
	genres  map[int]string
	ratings map[int]string
}

func newCatalog() *catalog {
	return &catalog{
		genres:  map[int]string{1: "Comedy", 2: "Drama", 3: "Cartoon"},
		ratings: map[int]string{1: "G", 2: "PG", 3: "PG-13"},
	}
}

func (c *catalog) GetGenre(_ context.Context, id int) (*genre.Genre, error) {
	name, ok := c.genres[id]
	if !ok {
		return nil, apperr.NotFound("Genre")
	}
	return &genre.Genre{ID: id, Name: name}, nil
}

func (c *catalog) GetRating(_ context.Context, id int) (*rating.Rating, error) {
	name, ok := c.ratings[id]
	if !ok {
		return nil, apperr.NotFound("Rating")
	}
	return &rating.Rating{ID: id, Name: name}, nil
}

// ledger is an in-memory like store usable both as [film.LikeLedger] and [like.Repository].
type ledger struct {
	mu    sync.Mutex
	films *memoryRepository
	likes map[int64]map[int64]struct{}
}

func newLedger(films *memoryRepository) *ledger {
	return &ledger{films: films, likes: map[int64]map[int64]struct{}{}}
}

func (l *ledger) Add(ctx context.Context, filmID, userID int64) error {
	if _, err := l.films.FindByID(ctx, filmID); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.likes[filmID] == nil {
		l.likes[filmID] = map[int64]struct{}{}
	}
	l.likes[filmID][userID] = struct{}{}
	return nil
}

func (l *ledger) Remove(ctx context.Context, filmID, userID int64) error {
	if _, err := l.films.FindByID(ctx, filmID); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.likes[filmID], userID)
	return nil
}

func (l *ledger) Count(ctx context.Context, filmID int64) (int, error) {
	ids, err := l.UserIDs(ctx, filmID)
	return len(ids), err
}

func (l *ledger) UserIDs(_ context.Context, filmID int64) ([]int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Sorted(maps.Keys(l.likes[filmID])), nil
}

type fixture struct {
	service *film.Service
	repo    *memoryRepository
	catalog *catalog
	ledger  *ledger
	logs    *bytes.Buffer
	logger  *slog.Logger
}

func newFixture() *fixture {
	repo := newMemoryRepository()
	cat := newCatalog()
	likes := newLedger(repo)
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	return &fixture{
		service: film.NewService(repo, cat, cat, likes, logger),
		repo:    repo,
		catalog: cat,
		ledger:  likes,
		logs:    logs,
		logger:  logger,
	}
}
