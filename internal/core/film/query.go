// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package film

import (
	"fmt"
	"strings"

	"github.com/taibuivan/filmorate/internal/platform/database/schema"
)

/*
buildRankedQuery compiles a [RankQuery] into one parameterized statement.

Description: Every film is joined to its rating and left-joined to a per-film
like aggregate, so films nobody likes rank with popularity 0. Filters are
independent predicates combined with AND: the genre filter is an EXISTS over
film_genre (a film never appears twice), the year filter compares the year of
the release date. Ties on popularity are broken by film id ascending.

Returns:
  - string: The SQL text
  - []any: Bound arguments in placeholder order
*/
func buildRankedQuery(query RankQuery) (string, []any) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	// Base projection with rating and like aggregate
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT f.%s, f.%s, f.%s, f.%s, f.%s, f.%s, m.%s, m.%s
		FROM %s f
		JOIN %s m ON m.%s = f.%s
		LEFT JOIN (
			SELECT %s, COUNT(DISTINCT %s) AS popularity
			FROM %s
			GROUP BY %s
		) l ON l.%s = f.%s`,
		schema.Film.ID, schema.Film.Name, schema.Film.ReleaseDate,
		schema.Film.Description, schema.Film.Duration, schema.Film.Rate,
		schema.RefMpa.ID, schema.RefMpa.Name,
		schema.Film.Table,
		schema.RefMpa.Table, schema.RefMpa.ID, schema.Film.MpaID,
		schema.FilmLike.FilmID, schema.FilmLike.UserID,
		schema.FilmLike.Table,
		schema.FilmLike.FilmID,
		schema.FilmLike.FilmID, schema.Film.ID,
	))

	var conditions []string

	// Genre membership
	if query.GenreID != nil {
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM %s fg WHERE fg.%s = f.%s AND fg.%s = $%d)`,
			schema.FilmGenre.Table, schema.FilmGenre.FilmID, schema.Film.ID, schema.FilmGenre.GenreID, argID,
		))
		args = append(args, *query.GenreID)
		argID++
	}

	// Release year
	if query.Year != nil {
		conditions = append(conditions, fmt.Sprintf(
			`EXTRACT(YEAR FROM f.%s)::int = $%d`, schema.Film.ReleaseDate, argID,
		))
		args = append(args, *query.Year)
		argID++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString("\n\t\tWHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(fmt.Sprintf("\n\t\tORDER BY COALESCE(l.popularity, 0) DESC, f.%s ASC", schema.Film.ID))

	if query.Limit != nil {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argID))
		args = append(args, *query.Limit)
	}

	return queryBuilder.String(), args
}
