package schema

// RefGenreTable represents the 'genre' table
type RefGenreTable struct {
	Table string
	ID    string
	Name  string
}

// RefGenre is the schema definition for genre
var RefGenre = RefGenreTable{
	Table: "genre",
	ID:    "id",
	Name:  "name",
}
