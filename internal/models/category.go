package models

import "strings"

// Category is one label of the fixed expense taxonomy.
type Category string

// Expense categories, in declaration order. The order is the tie-break
// basis wherever two categories score the same.
const (
	CategoryFood          Category = "Food & Dining"
	CategoryTransport     Category = "Transportation"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryTechnology    Category = "Technology"
	CategoryBills         Category = "Bills & Utilities"
	CategoryHealthcare    Category = "Healthcare"
	CategoryTravel        Category = "Travel"
	CategoryEducation     Category = "Education"
	CategoryBusiness      Category = "Business"
	CategoryOther         Category = "Other"
)

var categoryOrder = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryTechnology,
	CategoryBills,
	CategoryHealthcare,
	CategoryTravel,
	CategoryEducation,
	CategoryBusiness,
	CategoryOther,
}

var categoryIndex = func() map[Category]int {
	idx := make(map[Category]int, len(categoryOrder))
	for i, c := range categoryOrder {
		idx[c] = i
	}
	return idx
}()

// AllCategories returns the categories in declaration order.
// The returned slice is a copy and may be modified by the caller.
func AllCategories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// CategoryCount is the number of known categories.
func CategoryCount() int {
	return len(categoryOrder)
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range categoryOrder {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

// Index returns the position of c in declaration order, or -1 when c is unknown.
func (c Category) Index() int {
	if i, ok := categoryIndex[c]; ok {
		return i
	}
	return -1
}

// IsValid reports whether c belongs to the taxonomy.
func (c Category) IsValid() bool {
	return c.Index() >= 0
}

func (c Category) String() string {
	return string(c)
}
