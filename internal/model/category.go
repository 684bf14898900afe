package model

// Category mirrors the `categories` table.  Names are unique; creating a
// duplicate is reported as StatusAlreadyExists by the repository rather than
// surfacing a database error.
type Category struct {
	ID   uint64 `json:"categoryId"` // categories.id
	Name string `json:"categoryName"` // categories.name
}
