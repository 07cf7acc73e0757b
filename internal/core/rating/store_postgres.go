// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rating

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*Rating, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefMpa.ID, schema.RefMpa.Name,
		schema.RefMpa.Table,
		schema.RefMpa.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_ratings")
	}
	defer rows.Close()

	ratings := make([]*Rating, 0)
	for rows.Next() {
		r := &Rating{}
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_rating")
		}
		ratings = append(ratings, r)
	}

	return ratings, dberr.Wrap(rows.Err(), "list_ratings")
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id int) (*Rating, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.RefMpa.ID, schema.RefMpa.Name,
		schema.RefMpa.Table,
		schema.RefMpa.ID,
	)

	r := &Rating{}
	if err := repository.db.QueryRow(ctx, query, id).Scan(&r.ID, &r.Name); err != nil {
		return nil, dberr.WrapNotFound(err, "get_rating", "Rating")
	}
	return r, nil
}
