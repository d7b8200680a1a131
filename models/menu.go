package models

type MealCategory string

const (
	CategoryBreakfast MealCategory = "breakfast"
	CategoryLunch     MealCategory = "lunch"
	CategoryDinner    MealCategory = "dinner"
	CategorySnacks    MealCategory = "snacks"
	CategoryBeverages MealCategory = "beverages"
)

// NutritionInfo is optional per-item nutrition metadata.
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MenuItem is a catalog entry. Seeded once at startup and never mutated,
// so it is safe to hand out by value.
type MenuItem struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Price           float64        `json:"price"`
	Category        MealCategory   `json:"category"`
	IsVeg           bool           `json:"is_veg"`
	IsAvailable     bool           `json:"is_available"`
	Image           string         `json:"image"`
	PreparationTime int            `json:"preparation_time"` // minutes
	NutritionInfo   *NutritionInfo `json:"nutrition_info,omitempty"`
}
