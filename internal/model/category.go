package model

type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryExercise Category = "exercise"
	CategoryMeal     Category = "meal"
	CategoryLeisure  Category = "leisure"
	CategorySleep    Category = "sleep"
)

// FallbackColor is used for any category outside the table.
const FallbackColor = "#a0aec0"

var categoryColors = map[Category]string{
	CategoryWork:     "#4299e1",
	CategoryStudy:    "#48bb78",
	CategoryExercise: "#ed8936",
	CategoryMeal:     "#f56565",
	CategoryLeisure:  "#9f7aea",
	CategorySleep:    "#4fd1c7",
}

func Categories() []Category {
	return []Category{CategoryWork, CategoryStudy, CategoryExercise, CategoryMeal, CategoryLeisure, CategorySleep}
}

func (c Category) IsKnown() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color resolves the display color of c.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return FallbackColor
}
