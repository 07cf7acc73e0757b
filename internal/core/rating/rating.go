// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package rating is the read-only catalog of MPA age ratings (G, PG, PG-13, R, NC-17).
package rating

// Rating is an age-appropriateness classification; every film has exactly one.
type Rating struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
