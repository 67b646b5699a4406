package models

// Category represents the curation bucket an activity belongs to
type Category string

const (
	CategoryDining    Category = "Dining"
	CategoryDrinks    Category = "Drinks"
	CategoryCulture   Category = "Culture"
	CategoryNature    Category = "Nature"
	CategorySocial    Category = "Social"
	CategoryCommunity Category = "Community"
)

// AllCategories lists every valid category in presentation order.
var AllCategories = []Category{
	CategoryDining,
	CategoryDrinks,
	CategoryCulture,
	CategoryNature,
	CategorySocial,
	CategoryCommunity,
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}
