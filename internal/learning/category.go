package learning

import "strings"

// Category classifies a learning by keyword.
type Category string

// Known categories, in match priority order.
const (
	CategoryGit     Category = "Git/GitHub"
	CategoryFlutter Category = "Flutter/Dart"
	CategoryBugFix  Category = "Bug Fixes"
	CategoryGeneral Category = "General"
)

// Categories lists every category in match priority order.
var Categories = []Category{CategoryGit, CategoryFlutter, CategoryBugFix, CategoryGeneral}

var categoryRules = []struct {
	category Category
	keywords []string
}{
	{CategoryGit, []string{"gh ", "git "}},
	{CategoryFlutter, []string{"flutter", "dart"}},
	{CategoryBugFix, []string{"error", "fix"}},
}

// Categorize returns the first category whose keywords occur in text.
// Matching is case-sensitive. Text matching no rule is CategoryGeneral.
func Categorize(text string) Category {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}

// Tag returns the marker that identifies an entry line of this category.
func (c Category) Tag() string {
	return "**" + string(c) + "**:"
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}
