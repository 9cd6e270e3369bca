// Package ocr extracts nutrient values from text recognized on a food
// label.
package ocr

import (
	"regexp"
	"strings"
)

// nutritionKeys are the label headings the parser looks for, in the
// order they are matched.
var nutritionKeys = []string{
	"Energy", "Calories", "Protein", "Carbohydrate", "Of which Sugar", "Total Carbohydrate",
	"Fat", "Total Fat", "Saturated Fat", "Trans Fat", "Cholesterol", "Sodium",
	"Sugars", "Added Sugars", "Dietary Fiber", "Fiber",
	"Monounsaturated fatty acids", "Polyunsaturated fatty acids",
}

var whitespaceRuns = regexp.MustCompile(`\s{2,}`)

var keyPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(nutritionKeys))
	for _, key := range nutritionKeys {
		patterns[key] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(key) + `[^\d]*([\d.]+)\s*(kcal|g|mg|kJ|%)?`)
	}
	return patterns
}()

// ParseNutrition collapses whitespace in the recognized text and pulls
// out a value (with unit when present) for each known nutrient heading.
func ParseNutrition(text string) (cleaned string, nutrition map[string]string) {
	cleaned = strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
	nutrition = make(map[string]string)

	for _, key := range nutritionKeys {
		match := keyPatterns[key].FindStringSubmatch(cleaned)
		if match == nil {
			continue
		}
		value := match[1]
		if match[2] != "" {
			value += " " + match[2]
		}
		nutrition[key] = value
	}
	return cleaned, nutrition
}
