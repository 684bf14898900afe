package model

// Rating mirrors the `ratings` table.  A user may rate a given recipe at
// most once and never their own; both rules are enforced by the repository,
// not the schema.
type Rating struct {
	ID       uint64 // ratings.id
	RecipeID uint64 // ratings.recipe_id
	UserID   uint64 // ratings.user_id
	Value    int    // ratings.value, 1..5
}
