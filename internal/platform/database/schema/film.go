// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds table and column identifiers for the relational store.
//
// Queries are assembled from these definitions so that a column rename only
// touches one file.
package schema

// FilmTable represents the 'film' table
type FilmTable struct {
	Table       string
	ID          string
	Name        string
	ReleaseDate string
	Description string
	Duration    string
	Rate        string
	MpaID       string
}

// Film is the schema definition for film
var Film = FilmTable{
	Table:       "film",
	ID:          "id",
	Name:        "name",
	ReleaseDate: "release_date",
	Description: "description",
	Duration:    "duration",
	Rate:        "rate",
	MpaID:       "mpa_id",
}

func (t FilmTable) Columns() []string {
	return []string{t.ID, t.Name, t.ReleaseDate, t.Description, t.Duration, t.Rate, t.MpaID}
}
