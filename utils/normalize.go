package utils

import "strings"

var dietMap = map[string]string{
	"vegetarian":     "veg",
	"non-vegetarian": "nonveg",
	"vegan":          "vegan",
	"eggetarian":     "eggetarian",
	"veg":            "veg",
	"nonveg":         "nonveg",
}

// NormalizeDiet maps diet aliases to canonical values. Returns "" for
// anything unrecognized.
func NormalizeDiet(diet string) string {
	return dietMap[strings.ToLower(strings.TrimSpace(diet))]
}

var allowedAllergies = map[string]bool{
	"nuts":      true,
	"dairy":     true,
	"gluten":    true,
	"shellfish": true,
	"soy":       true,
	"eggs":      true,
}

// FilterAllergies drops anything outside the allergy whitelist.
func FilterAllergies(allergies []string) []string {
	out := make([]string, 0, len(allergies))
	for _, a := range allergies {
		a = strings.ToLower(strings.TrimSpace(a))
		if allowedAllergies[a] {
			out = append(out, a)
		}
	}
	return out
}
