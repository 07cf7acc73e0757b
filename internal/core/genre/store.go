// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import "context"

// Repository defines the data access contract.
type Repository interface {
	List(ctx context.Context) ([]*Genre, error)
	GetByID(ctx context.Context, id int) (*Genre, error)
}
