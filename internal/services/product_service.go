package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/nutrilens/nutrilens-be/internal/models"
)

// ProductInput is the validated product payload. Every nutrient field
// is optional; the JSON tags mirror the label display names used by
// the client. For updates all fields are partial, so BrandName is a
// pointer here and required-ness is enforced only on create.
type ProductInput struct {
	BrandName                 *string  `json:"Brand Name"`
	EnergyKcal                *float64 `json:"ENERGY(kcal)"`
	Protein                   *float64 `json:"PROTEIN"`
	Carbohydrate              *float64 `json:"CARBOHYDRATE"`
	AddedSugars               *float64 `json:"ADDED SUGARS"`
	TotalSugars               *float64 `json:"TOTAL SUGARS"`
	TotalFat                  *float64 `json:"TOTAL FAT"`
	SaturatedFat              *float64 `json:"SATURATED FAT"`
	TransFat                  *float64 `json:"TRANS FAT"`
	CholesterolMg             *float64 `json:"CHOLESTEROL(mg)"`
	SodiumMg                  *float64 `json:"SODIUM(mg)"`
	DietaryFiber              *float64 `json:"Dietary Fiber"`
	MonoUnsaturatedFattyAcids *float64 `json:"Mono Unsaturated Fatty Acids"`
	PolyUnsaturatedFattyAcids *float64 `json:"Poly Unsaturated Fatty Acids"`
	Category                  *string  `json:"Category"`
}

// ProductServiceProvider defines the interface for product services.
type ProductServiceProvider interface {
	Create(input ProductInput) (models.Product, error)
	Update(id string, input ProductInput) (models.Product, error)
	Delete(id string) error
	Count() (int, error)
	SearchByBrand(query string) ([]models.Product, error)
	GetByID(id string) (models.Product, error)
}

// ProductService provides CRUD and search over nutrition records.
type ProductService struct {
	db *sql.DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *sql.DB) *ProductService {
	return &ProductService{db: db}
}

const productColumns = `id, brand_name, energy_kcal, protein, carbohydrate, added_sugars,
	total_sugars, total_fat, saturated_fat, trans_fat, cholesterol_mg, sodium_mg,
	dietary_fiber, mono_unsaturated_fatty_acids, poly_unsaturated_fatty_acids,
	category, created_at`

// Create inserts a new nutrition record.
func (s *ProductService) Create(input ProductInput) (models.Product, error) {
	if input.BrandName == nil || strings.TrimSpace(*input.BrandName) == "" {
		return models.Product{}, apperr.Validation("brand name is required")
	}

	id := uuid.New().String()
	stmt, err := s.db.Prepare(`INSERT INTO products(
		id, brand_name, energy_kcal, protein, carbohydrate, added_sugars,
		total_sugars, total_fat, saturated_fat, trans_fat, cholesterol_mg,
		sodium_mg, dietary_fiber, mono_unsaturated_fatty_acids,
		poly_unsaturated_fatty_acids, category
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Product{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(id, strings.TrimSpace(*input.BrandName), input.EnergyKcal,
		input.Protein, input.Carbohydrate, input.AddedSugars, input.TotalSugars,
		input.TotalFat, input.SaturatedFat, input.TransFat, input.CholesterolMg,
		input.SodiumMg, input.DietaryFiber, input.MonoUnsaturatedFattyAcids,
		input.PolyUnsaturatedFattyAcids, input.Category)
	if err != nil {
		return models.Product{}, err
	}

	return s.GetByID(id)
}

// Update applies a partial update by id and returns the updated record.
func (s *ProductService) Update(id string, input ProductInput) (models.Product, error) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if input.BrandName != nil {
		add("brand_name", strings.TrimSpace(*input.BrandName))
	}
	if input.EnergyKcal != nil {
		add("energy_kcal", *input.EnergyKcal)
	}
	if input.Protein != nil {
		add("protein", *input.Protein)
	}
	if input.Carbohydrate != nil {
		add("carbohydrate", *input.Carbohydrate)
	}
	if input.AddedSugars != nil {
		add("added_sugars", *input.AddedSugars)
	}
	if input.TotalSugars != nil {
		add("total_sugars", *input.TotalSugars)
	}
	if input.TotalFat != nil {
		add("total_fat", *input.TotalFat)
	}
	if input.SaturatedFat != nil {
		add("saturated_fat", *input.SaturatedFat)
	}
	if input.TransFat != nil {
		add("trans_fat", *input.TransFat)
	}
	if input.CholesterolMg != nil {
		add("cholesterol_mg", *input.CholesterolMg)
	}
	if input.SodiumMg != nil {
		add("sodium_mg", *input.SodiumMg)
	}
	if input.DietaryFiber != nil {
		add("dietary_fiber", *input.DietaryFiber)
	}
	if input.MonoUnsaturatedFattyAcids != nil {
		add("mono_unsaturated_fatty_acids", *input.MonoUnsaturatedFattyAcids)
	}
	if input.PolyUnsaturatedFattyAcids != nil {
		add("poly_unsaturated_fatty_acids", *input.PolyUnsaturatedFattyAcids)
	}
	if input.Category != nil {
		add("category", *input.Category)
	}

	if len(sets) == 0 {
		// Nothing to change; still 404 when the id is unknown.
		return s.GetByID(id)
	}

	args = append(args, id)
	res, err := s.db.Exec("UPDATE products SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.Product{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Product{}, err
	}
	if affected == 0 {
		return models.Product{}, apperr.NotFound("no product found with this id")
	}

	return s.GetByID(id)
}

// Delete removes a record by id.
func (s *ProductService) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("no product found with this id")
	}
	return nil
}

// Count returns the total number of records.
func (s *ProductService) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}

// SearchByBrand returns records whose brand name contains the query,
// case-insensitive. The whole match set comes back in one response: no
// ranking, no pagination. Zero matches is a 404, not an empty list;
// the client relies on that contract.
func (s *ProductService) SearchByBrand(query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.Validation("search query is required")
	}

	rows, err := s.db.Query(
		"SELECT "+productColumns+" FROM products WHERE lower(brand_name) LIKE '%' || lower(?) || '%'",
		strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, apperr.NotFound("no matching results found")
	}
	return products, nil
}

// GetByID fetches a single record's nutrient fields.
func (s *ProductService) GetByID(id string) (models.Product, error) {
	row := s.db.QueryRow("SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, apperr.NotFound("product not found")
		}
		return models.Product{}, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.BrandName, &p.EnergyKcal, &p.Protein, &p.Carbohydrate,
		&p.AddedSugars, &p.TotalSugars, &p.TotalFat, &p.SaturatedFat, &p.TransFat,
		&p.CholesterolMg, &p.SodiumMg, &p.DietaryFiber, &p.MonoUnsaturatedFattyAcids,
		&p.PolyUnsaturatedFattyAcids, &p.Category, &p.CreatedAt)
	return p, err
}
