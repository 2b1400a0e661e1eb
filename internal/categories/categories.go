// Package categories maps expense categories to their display label, colour and icon.
// It is a presentation concern: the calculator and ledger never consult it.
package categories

import "github.com/mmynk/billease/internal/models"

// Info is the display metadata for one category.
type Info struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var fallback = Info{Label: "Other", Color: "hsl(240 5% 65%)", Icon: "more-horizontal"}

var table = map[models.Category]Info{
	models.CategoryFood:          {Label: "Food & Dining", Color: "hsl(25 95% 53%)", Icon: "utensils-crossed"},
	models.CategoryRent:          {Label: "Rent", Color: "hsl(160 84% 39%)", Icon: "home"},
	models.CategoryUtilities:     {Label: "Utilities", Color: "hsl(220 90% 56%)", Icon: "zap"},
	models.CategoryTransport:     {Label: "Transport", Color: "hsl(11 92% 66%)", Icon: "car"},
	models.CategoryEntertainment: {Label: "Entertainment", Color: "hsl(262 83% 58%)", Icon: "popcorn"},
	models.CategoryGroceries:     {Label: "Groceries", Color: "hsl(142 76% 36%)", Icon: "shopping-cart"},
	models.CategoryShopping:      {Label: "Shopping", Color: "hsl(300 76% 56%)", Icon: "shopping-bag"},
	models.CategoryHealth:        {Label: "Health", Color: "hsl(0 84% 60%)", Icon: "stethoscope"},
	models.CategoryOther:         fallback,
}

// Lookup returns the display metadata for c, falling back to "Other".
func Lookup(c models.Category) Info {
	if info, ok := table[c]; ok {
		return info
	}
	return fallback
}

// Label returns the display label for c.
func Label(c models.Category) string { return Lookup(c).Label }

// Color returns the display colour for c.
func Color(c models.Category) string { return Lookup(c).Color }

// Icon returns the icon name for c.
func Icon(c models.Category) string { return Lookup(c).Icon }

// All returns every category in declaration order.
func All() []models.Category {
	return append([]models.Category(nil), models.Categories...)
}
