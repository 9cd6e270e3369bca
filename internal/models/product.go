package models

import "time"

// Product is a packaged-food nutrition record. The JSON tags keep the
// label display names the mobile client already consumes; nil numeric
// fields serialize as null and render as "N/A" client-side.
type Product struct {
	ID                        string    `json:"id"`
	BrandName                 string    `json:"Brand Name"`
	EnergyKcal                *float64  `json:"ENERGY(kcal)"`
	Protein                   *float64  `json:"PROTEIN"`
	Carbohydrate              *float64  `json:"CARBOHYDRATE"`
	AddedSugars               *float64  `json:"ADDED SUGARS"`
	TotalSugars               *float64  `json:"TOTAL SUGARS"`
	TotalFat                  *float64  `json:"TOTAL FAT"`
	SaturatedFat              *float64  `json:"SATURATED FAT"`
	TransFat                  *float64  `json:"TRANS FAT"`
	CholesterolMg             *float64  `json:"CHOLESTEROL(mg)"`
	SodiumMg                  *float64  `json:"SODIUM(mg)"`
	DietaryFiber              *float64  `json:"Dietary Fiber"`
	MonoUnsaturatedFattyAcids *float64  `json:"Mono Unsaturated Fatty Acids"`
	PolyUnsaturatedFattyAcids *float64  `json:"Poly Unsaturated Fatty Acids"`
	Category                  *string   `json:"Category"`
	CreatedAt                 time.Time `json:"createdAt"`
}
