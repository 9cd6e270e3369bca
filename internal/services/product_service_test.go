package services

import (
	"net/http"
	"testing"

	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func seedProduct(t *testing.T, svc *ProductService, brand string) string {
	t.Helper()
	p, err := svc.Create(ProductInput{
		BrandName:  strPtr(brand),
		EnergyKcal: f64Ptr(480),
		Protein:    f64Ptr(6.5),
	})
	require.NoError(t, err)
	return p.ID
}

func TestCreateRequiresBrandName(t *testing.T) {
	svc := NewProductService(newTestDB(t))

	_, err := svc.Create(ProductInput{Protein: f64Ptr(5)})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	_, err = svc.Create(ProductInput{BrandName: strPtr("   ")})
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}

func TestCreateAndGetByID(t *testing.T) {
	svc := NewProductService(newTestDB(t))
	id := seedProduct(t, svc, "ChocoDelight")

	p, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "ChocoDelight", p.BrandName)
	require.NotNil(t, p.EnergyKcal)
	assert.Equal(t, 480.0, *p.EnergyKcal)
	assert.Nil(t, p.TotalFat) // untouched nutrient stays absent
}

func TestGetByIDMissing(t *testing.T) {
	svc := NewProductService(newTestDB(t))

	_, err := svc.GetByID("no-such-id")
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}

func TestUpdatePartial(t *testing.T) {
	svc := NewProductService(newTestDB(t))
	id := seedProduct(t, svc, "ChocoDelight")

	p, err := svc.Update(id, ProductInput{Protein: f64Ptr(9.9), Category: strPtr("harmful")})
	require.NoError(t, err)
	assert.Equal(t, 9.9, *p.Protein)
	require.NotNil(t, p.Category)
	assert.Equal(t, "harmful", *p.Category)
	// untouched fields survive
	assert.Equal(t, "ChocoDelight", p.BrandName)
	assert.Equal(t, 480.0, *p.EnergyKcal)
}

func TestUpdateMissingID(t *testing.T) {
	svc := NewProductService(newTestDB(t))

	_, err := svc.Update("no-such-id", ProductInput{Protein: f64Ptr(1)})
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}

func TestDelete(t *testing.T) {
	svc := NewProductService(newTestDB(t))
	id := seedProduct(t, svc, "ChocoDelight")

	require.NoError(t, svc.Delete(id))

	err := svc.Delete(id)
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}

func TestCount(t *testing.T) {
	svc := NewProductService(newTestDB(t))

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	seedProduct(t, svc, "A")
	seedProduct(t, svc, "B")

	count, err = svc.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSearchByBrandIsCaseInsensitiveSubstring(t *testing.T) {
	svc := NewProductService(newTestDB(t))
	seedProduct(t, svc, "ChocoDelight")
	seedProduct(t, svc, "DarkCHOCO Bar")
	seedProduct(t, svc, "Vanilla Crisp")

	results, err := svc.SearchByBrand("choco")
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, p := range results {
		assert.Contains(t, []string{"ChocoDelight", "DarkCHOCO Bar"}, p.BrandName)
	}
}

func TestSearchByBrandEmptyQuery(t *testing.T) {
	svc := NewProductService(newTestDB(t))

	_, err := svc.SearchByBrand("")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	_, err = svc.SearchByBrand("   ")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}

func TestSearchByBrandZeroMatchesIsNotFound(t *testing.T) {
	svc := NewProductService(newTestDB(t))
	seedProduct(t, svc, "Vanilla Crisp")

	// Zero matches is a 404, never an empty 200 list.
	_, err := svc.SearchByBrand("choco")
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
}
