package schema

// FilmLikeTable represents the 'film_like' table
type FilmLikeTable struct {
	Table  string
	FilmID string
	UserID string
}

// FilmLike is the schema definition for film_like
var FilmLike = FilmLikeTable{
	Table:  "film_like",
	FilmID: "film_id",
	UserID: "user_id",
}
