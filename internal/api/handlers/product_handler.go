package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/nutrilens/nutrilens-be/internal/services"
)

// ProductHandler handles HTTP requests for nutrition records.
type ProductHandler struct {
	service services.ProductServiceProvider
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service services.ProductServiceProvider) *ProductHandler {
	return &ProductHandler{service: service}
}

// decodeProductInput decodes a payload, rejecting unknown fields so
// arbitrary request bodies never reach the store.
func decodeProductInput(r *http.Request) (services.ProductInput, error) {
	var input services.ProductInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return input, apperr.Validation("invalid request body")
	}
	return input, nil
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeProductInput(r)
	if err != nil {
		writeError(w, err)
		return
	}

	product, err := h.service.Create(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"data":   map[string]any{"product": product},
	})
}

// Update handles PATCH /products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	input, err := decodeProductInput(r)
	if err != nil {
		writeError(w, err)
		return
	}

	product, err := h.service.Update(chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	// 201 on update matches the contract the client was built against.
	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"data":   map[string]any{"product": product},
	})
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Count handles GET /products/count.
func (h *ProductHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Count()
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, count)
}

// SearchPayload defines the structure for search requests.
type SearchPayload struct {
	Query string `json:"query"`
}

// Search handles POST /products/search. Zero matches is a 404.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	var payload SearchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	products, err := h.service.SearchByBrand(payload.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, products)
}

// GetNutrients handles GET /products/nutrients?id=.
func (h *ProductHandler) GetNutrients(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, apperr.Validation("product id is required"))
		return
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, product)
}
