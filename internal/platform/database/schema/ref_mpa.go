package schema

// RefMpaTable represents the 'mpa' table holding age ratings
type RefMpaTable struct {
	Table string
	ID    string
	Name  string
}

// RefMpa is the schema definition for mpa
var RefMpa = RefMpaTable{
	Table: "mpa",
	ID:    "id",
	Name:  "name",
}
