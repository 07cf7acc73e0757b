// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package genre is the read-only catalog of film genres.
package genre

// Genre is a categorical tag; a film may carry several.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
