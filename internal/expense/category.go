package expense

import (
	"database/sql/driver"
	"fmt"
)

// Category is the closed set of labels an expense can carry.
type Category int8

const (
	CategoryGroceries Category = iota
	CategoryTransport
	CategoryHousingAndUtilities
	CategoryRestaurantsAndCafes
	CategoryHealthAndMedicine
	CategoryClothingAndFootwear
	CategoryEntertainment
)

var categoryNames = [...]string{
	CategoryGroceries:           "Groceries",
	CategoryTransport:           "Transport",
	CategoryHousingAndUtilities: "Housing and Utilities",
	CategoryRestaurantsAndCafes: "Restaurants and Cafes",
	CategoryHealthAndMedicine:   "Health and Medicine",
	CategoryClothingAndFootwear: "Clothing & Footwear",
	CategoryEntertainment:       "Entertainment",
}

// Categories returns every category in declared order.
func Categories() []Category {
	all := make([]Category, len(categoryNames))
	for i := range categoryNames {
		all[i] = Category(i)
	}
	return all
}

// CategoryNames returns the display names of every category in declared order.
func CategoryNames() []string {
	names := make([]string, len(categoryNames))
	copy(names, categoryNames[:])
	return names
}

// ParseCategory matches name exactly against the category literals.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int8(c))
	}
	return categoryNames[c]
}

// Value stores the category by name so the table CHECK constraint can see it.
func (c Category) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int8(c))
	}
	return categoryNames[c], nil
}

func (c *Category) Scan(src any) error {
	var name string
	switch v := src.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Category", src)
	}

	parsed, ok := ParseCategory(name)
	if !ok {
		return fmt.Errorf("unknown category %q", name)
	}
	*c = parsed
	return nil
}
