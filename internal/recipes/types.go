package recipes

import (
	"fmt"
	"strings"
)

// Recipe mirrors a single record returned by the recipe API.
type Recipe struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Image              string   `json:"image"`
	MealType           []string `json:"mealType"`
	Cuisine            string   `json:"cuisine"`
	Tags               []string `json:"tags"`
	PrepTimeMinutes    int      `json:"prepTimeMinutes"`
	CookTimeMinutes    int      `json:"cookTimeMinutes"`
	Servings           int      `json:"servings"`
	CaloriesPerServing int      `json:"caloriesPerServing"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"reviewCount"`
	Difficulty         string   `json:"difficulty"`
	Ingredients        []string `json:"ingredients"`
	Instructions       []string `json:"instructions"`
}

// ListResponse mirrors the envelope returned by the listing and search endpoints.
type ListResponse struct {
	Recipes []Recipe `json:"recipes"`
	Total   int      `json:"total"`
	Skip    int      `json:"skip"`
	Limit   int      `json:"limit"`
}

// Page is a validated slice of recipes plus the provider's total count.
type Page struct {
	Recipes []Recipe
	Total   int
}

// Validate reports whether the record carries the fields the UI depends on.
// The provider payload is not trusted implicitly; records missing an
// identifier or a display name are rejected.
func (r Recipe) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("recipe missing id")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("recipe %d missing name", r.ID)
	}
	return nil
}

// TotalMinutes returns combined prep and cook time.
func (r Recipe) TotalMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// MealTypeLabel joins the meal-type labels for display.
func (r Recipe) MealTypeLabel() string {
	return strings.Join(r.MealType, ", ")
}

// RatingLabel formats the rating to one decimal place.
func (r Recipe) RatingLabel() string {
	return fmt.Sprintf("%.1f", r.Rating)
}

// DifficultyClass returns the lower-cased difficulty label used to pick a
// badge color. Unknown or blank difficulties map to the empty class.
func (r Recipe) DifficultyClass() string {
	return strings.ToLower(strings.TrimSpace(r.Difficulty))
}
