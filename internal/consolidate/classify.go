package consolidate

import (
	"strings"

	"github.com/modforge/sdkgen/internal/config"
)

// Classifier assigns declarations to subject-matter categories by keyword.
type Classifier struct {
	categories []config.Category
	fallback   string
}

// NewClassifier creates a classifier from the ordered category table.
func NewClassifier(categories []config.Category, fallback string) *Classifier {
	return &Classifier{
		categories: categories,
		fallback:   fallback,
	}
}

// Categorize returns the first category with a keyword occurring in the
// declaration body, case-insensitively, or the default category.
func (c *Classifier) Categorize(body string) string {
	lower := strings.ToLower(body)
	for _, cat := range c.categories {
		for _, keyword := range cat.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return cat.Name
			}
		}
	}
	return c.fallback
}
