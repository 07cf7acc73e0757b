// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package film owns film records, their genre associations and the popularity ranking.

# Layers

  - Repository: row-level SQL against film and film_genre (one statement or one transaction per call).
  - Service: assembles full [Film] aggregates from the repository, the genre
    and rating catalogs and the like ledger.
  - Handler: the /films HTTP surface, including likes and the popular listing.

Popularity is the number of distinct users liking a film. It is computed on
every read and never stored.
*/
package film

import (
	"time"

	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/rating"
	"github.com/taibuivan/filmorate/pkg/slice"
)

// # Domain Entities

// Film is the full aggregate returned by [Service.GetByID].
//
// Genres has three states on input: nil means "not supplied" and leaves stored
// associations untouched on update, an empty slice clears them, and a non-empty
// slice replaces them. On output from GetByID it is never nil.
//
// Films returned by the ranked listing are a summary view: Genres and Likes are nil.
type Film struct {
	ID          int64
	Name        string
	ReleaseDate time.Time
	Description string
	Duration    int
	// Rate is a legacy counter kept for compatibility; ranking uses likes.
	Rate   int
	Rating rating.Rating
	Genres []genre.Genre
	Likes  []int64
}

// GenreIDs returns the distinct genre ids of f in first-seen order.
func (f *Film) GenreIDs() []int {
	return slice.Unique(slice.Map(f.Genres, func(g genre.Genre) int { return g.ID }))
}

// RankQuery filters and bounds the popularity listing. Nil fields are not applied.
type RankQuery struct {
	GenreID *int
	Year    *int
	Limit   *int
}

// # Field Identifiers

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldReleaseDate = "releaseDate"
	FieldDescription = "description"
	FieldDuration    = "duration"
	FieldMpa         = "mpa.id"
	FieldGenres      = "genres"
	FieldCount       = "count"
)
