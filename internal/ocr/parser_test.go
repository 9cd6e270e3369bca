package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNutritionExtractsValuesWithUnits(t *testing.T) {
	text := "Nutrition Facts\n\nEnergy   480 kcal\nProtein 6.5 g\nSodium: 120 mg\nTotal Fat  22g"

	cleaned, nutrition := ParseNutrition(text)

	assert.NotContains(t, cleaned, "  ")
	assert.Equal(t, "480 kcal", nutrition["Energy"])
	assert.Equal(t, "6.5 g", nutrition["Protein"])
	assert.Equal(t, "120 mg", nutrition["Sodium"])
	assert.Equal(t, "22 g", nutrition["Total Fat"])
}

func TestParseNutritionIsCaseInsensitive(t *testing.T) {
	_, nutrition := ParseNutrition("TRANS FAT 0.5 g\ndietary fiber 3 g")

	assert.Equal(t, "0.5 g", nutrition["Trans Fat"])
	assert.Equal(t, "3 g", nutrition["Dietary Fiber"])
}

func TestParseNutritionValueWithoutUnit(t *testing.T) {
	_, nutrition := ParseNutrition("Cholesterol 0")

	assert.Equal(t, "0", nutrition["Cholesterol"])
}

func TestParseNutritionEmptyText(t *testing.T) {
	cleaned, nutrition := ParseNutrition("")

	assert.Empty(t, cleaned)
	assert.Empty(t, nutrition)
}

func TestParseNutritionIgnoresUnknownHeadings(t *testing.T) {
	_, nutrition := ParseNutrition("Best before 12.2026\nBatch 443")

	assert.NotContains(t, nutrition, "Energy")
	assert.NotContains(t, nutrition, "Protein")
}
