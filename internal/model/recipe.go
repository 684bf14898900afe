package model

// Recipe mirrors the `recipes` table.  AverageRating is denormalized: it is
// recomputed from the ratings table whenever a new rating is inserted, so
// listing queries never need an aggregate join.
//
// Fields:
//  ID            – primary key identifier.
//  Title         – recipe title, searched case-insensitively.
//  Description   – free-form preparation text.
//  Ingredients   – free-form ingredient list.
//  CategoryID    – foreign key into categories.
//  UserID        – the creating user; only the creator may update or delete.
//  AverageRating – mean of all ratings, zero when unrated.
type Recipe struct {
	ID            uint64  `json:"recipeId"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Ingredients   string  `json:"ingredients"`
	CategoryID    uint64  `json:"categoryId"`
	UserID        uint64  `json:"userId"`
	AverageRating float64 `json:"averageRating"`
}

// RecipeListing is the joined read model used by the public listing and
// search endpoints: the recipe row plus the resolved category and creator
// names.
type RecipeListing struct {
	Recipe
	CategoryName string `json:"categoryName"`
	CreatorName  string `json:"creatorName"`
}
