package models

// CategoryAll is the filter sentinel that matches every category.
const CategoryAll = "All"

// Category is an entry of the category catalog.
type Category struct {
	Name  string `json:"name" example:"Food & Dining"` // Name of the category, used as the category value of expenses and budgets
	Color string `json:"color" example:"#FF8042"`      // Color used for charts
	Emoji string `json:"emoji"`                        // Icon displayed next to the category
}

// DefaultCategory is used for categories that are not in the catalog.
var DefaultCategory = Category{
	Color: "#cccccc",
	Emoji: "📋",
}

// Categories is the fixed catalog of categories.
var Categories = []Category{
	{Name: "Food & Dining", Color: "#FF8042", Emoji: "🍽️"},
	{Name: "Transportation", Color: "#0088FE", Emoji: "🚗"},
	{Name: "Entertainment", Color: "#FFBB28", Emoji: "🎬"},
	{Name: "Utilities", Color: "#00C49F", Emoji: "💡"},
	{Name: "Housing", Color: "#8884d8", Emoji: "🏠"},
	{Name: "Shopping", Color: "#82ca9d", Emoji: "🛍️"},
	{Name: "Healthcare", Color: "#ffc658", Emoji: "🏥"},
	{Name: "Education", Color: "#8dd1e1", Emoji: "📚"},
	{Name: "Travel", Color: "#a4de6c", Emoji: "✈️"},
	{Name: "Personal Care", Color: "#d0ed57", Emoji: "💇"},
	{Name: "Other", Color: "#b8b8b8", Emoji: "📌"},
}

// CategoryByName returns the catalog entry for a name.
//
// Free text categories are accepted everywhere, they are returned
// with the default color and icon.
func CategoryByName(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}

	c := DefaultCategory
	c.Name = name
	return c, false
}
