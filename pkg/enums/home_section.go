package enums

import "fmt"

// HomeSectionCategory groups the editable home page sections.
type HomeSectionCategory string

const (
	HomeSectionCategorySoluciones HomeSectionCategory = "soluciones"
	HomeSectionCategoryExtras     HomeSectionCategory = "extras"
	HomeSectionCategoryCategories HomeSectionCategory = "categories"
	HomeSectionCategoryStats      HomeSectionCategory = "stats"
)

var validHomeSectionCategories = []HomeSectionCategory{
	HomeSectionCategorySoluciones,
	HomeSectionCategoryExtras,
	HomeSectionCategoryCategories,
	HomeSectionCategoryStats,
}

// String implements fmt.Stringer.
func (c HomeSectionCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known HomeSectionCategory.
func (c HomeSectionCategory) IsValid() bool {
	for _, candidate := range validHomeSectionCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseHomeSectionCategory converts raw input into a HomeSectionCategory.
func ParseHomeSectionCategory(value string) (HomeSectionCategory, error) {
	for _, candidate := range validHomeSectionCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid home section category %q", value)
}
