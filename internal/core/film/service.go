// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"context"
	"log/slog"
	"slices"

	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/rating"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/constants"
	"github.com/taibuivan/filmorate/internal/platform/ctxutil"
	"github.com/taibuivan/filmorate/internal/platform/validate"
)

// # Collaborators

// GenreCatalog resolves genre ids. Satisfied by [*genre.Service].
type GenreCatalog interface {
	GetGenre(ctx context.Context, id int) (*genre.Genre, error)
}

// RatingCatalog resolves rating ids. Satisfied by [*rating.Service].
type RatingCatalog interface {
	GetRating(ctx context.Context, id int) (*rating.Rating, error)
}

// LikeLedger lists the users liking a film. Satisfied by [*like.Service].
type LikeLedger interface {
	UserIDs(ctx context.Context, filmID int64) ([]int64, error)
}

// # Service Layer

// Service assembles film aggregates and enforces film business rules.
type Service struct {
	repo    Repository
	genres  GenreCatalog
	ratings RatingCatalog
	likes   LikeLedger
	logger  *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, genres GenreCatalog, ratings RatingCatalog, likes LikeLedger, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		genres:  genres,
		ratings: ratings,
		likes:   likes,
		logger:  logger,
	}
}

// # Writes

/*
Create validates and stores a new film, then returns it as read back from storage.

Description: Any ID on the input is ignored; the store assigns it. Rating and
genre references must resolve through their catalogs before anything is
written.

Parameters:
  - ctx: context.Context
  - film: *Film

Returns:
  - *Film: The stored aggregate
  - error: VALIDATION_ERROR, NOT_FOUND for unknown references, or persistence errors
*/
func (service *Service) Create(ctx context.Context, film *Film) (*Film, error) {
	if err := service.validate(ctx, film, false); err != nil {
		return nil, err
	}

	id, err := service.repo.Create(ctx, film)
	if err != nil {
		return nil, err
	}

	created, err := service.GetByID(ctx, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			service.log(ctx).ErrorContext(ctx, "film_readback_failed", slog.Int64("film_id", id), slog.Any("error", err))
		}
		return nil, err
	}

	service.log(ctx).InfoContext(ctx, "film_created", slog.Int64("film_id", id), slog.String("name", created.Name))
	return created, nil
}

/*
Update replaces an existing film and returns the re-read aggregate.

Description: All scalar attributes are overwritten. A nil Genres leaves the
stored genre set alone; an empty or non-empty slice replaces it.

Returns:
  - *Film: The stored aggregate; Genres is empty rather than nil when the film has none
  - error: NOT_FOUND if the film does not exist, VALIDATION_ERROR, or persistence errors
*/
func (service *Service) Update(ctx context.Context, film *Film) (*Film, error) {
	if err := service.validate(ctx, film, true); err != nil {
		return nil, err
	}

	if err := service.repo.Update(ctx, film); err != nil {
		return nil, err
	}

	updated, err := service.GetByID(ctx, film.ID)
	if err != nil {
		return nil, err
	}

	service.log(ctx).InfoContext(ctx, "film_updated",
		slog.Int64("film_id", updated.ID),
		slog.Bool("genres_replaced", film.Genres != nil),
	)
	return updated, nil
}

// # Reads

/*
GetByID assembles the full aggregate of one film.

Description: Genre and rating references are resolved through the catalogs.
A reference that does not resolve means the stored data is inconsistent; it
is logged as a consistency fault and surfaced as NOT_FOUND.

Returns:
  - *Film: Aggregate with Genres ordered by id and Likes ordered by user id, both non-nil
  - error: NOT_FOUND if the film or one of its references does not exist
*/
func (service *Service) GetByID(ctx context.Context, id int64) (*Film, error) {
	film, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	genreIDs, err := service.repo.GenreIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	film.Genres = make([]genre.Genre, 0, len(genreIDs))
	for _, genreID := range genreIDs {
		g, err := service.genres.GetGenre(ctx, genreID)
		if err != nil {
			return nil, service.referenceFault(ctx, err, id, "genre", genreID)
		}
		film.Genres = append(film.Genres, *g)
	}

	r, err := service.ratings.GetRating(ctx, film.Rating.ID)
	if err != nil {
		return nil, service.referenceFault(ctx, err, id, "rating", film.Rating.ID)
	}
	film.Rating = *r

	likes, err := service.likes.UserIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	if likes == nil {
		likes = []int64{}
	}
	film.Likes = likes

	return film, nil
}

/*
List returns every film that can be assembled, in id order.

Description: A film that fails to assemble is logged and left out instead of
failing the whole listing. Only a failure to list the ids themselves, or a
cancelled context, is returned as an error.
*/
func (service *Service) List(ctx context.Context) ([]*Film, error) {
	ids, err := service.repo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	films := make([]*Film, 0, len(ids))
	for _, id := range ids {
		film, err := service.GetByID(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			service.log(ctx).WarnContext(ctx, "film_skipped", slog.Int64("film_id", id), slog.Any("error", err))
			continue
		}
		films = append(films, film)
	}

	return films, nil
}

/*
Popular returns films ordered by like count, most liked first.

Description: Ties are broken by film id ascending. Returned films carry their
rating but not their genres or likes.

Parameters:
  - ctx: context.Context
  - query: RankQuery (GenreID and Year filter, Limit bounds the result)

Returns:
  - []*Film: Possibly empty, never nil
  - error: VALIDATION_ERROR if Limit is not positive
*/
func (service *Service) Popular(ctx context.Context, query RankQuery) ([]*Film, error) {
	if query.Limit != nil && *query.Limit <= 0 {
		return nil, validate.RequiredError(FieldCount, "Must be a positive number")
	}

	return service.repo.Ranked(ctx, query)
}

// # Helpers

// validate checks attribute rules, then resolves rating and genre references.
func (service *Service) validate(ctx context.Context, film *Film, requireID bool) error {
	validator := &validate.Validator{}

	if requireID {
		validator.Positive(FieldID, film.ID)
	}

	validator.Required(FieldName, film.Name).
		MaxLen(FieldDescription, film.Description, constants.MaxDescriptionLength).
		NotBefore(FieldReleaseDate, film.ReleaseDate, constants.EarliestReleaseDate).
		Positive(FieldDuration, int64(film.Duration)).
		Positive(FieldMpa, int64(film.Rating.ID))

	validator.Custom(FieldGenres, slices.ContainsFunc(film.Genres, func(g genre.Genre) bool { return g.ID <= 0 }),
		"Genre ids must be positive numbers")

	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.ratings.GetRating(ctx, film.Rating.ID); err != nil {
		return err
	}

	for _, genreID := range film.GenreIDs() {
		if _, err := service.genres.GetGenre(ctx, genreID); err != nil {
			return err
		}
	}

	return nil
}

// referenceFault logs unresolvable references distinctly from caller mistakes.
func (service *Service) referenceFault(ctx context.Context, err error, filmID int64, reference string, referenceID int) error {
	if apperr.IsNotFound(err) {
		service.log(ctx).ErrorContext(ctx, "consistency_fault",
			slog.Int64("film_id", filmID),
			slog.String("reference", reference),
			slog.Int("reference_id", referenceID),
		)
	}
	return err
}

func (service *Service) log(ctx context.Context) *slog.Logger {
	return ctxutil.LoggerOr(ctx, service.logger)
}
