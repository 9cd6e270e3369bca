package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/nutrilens/nutrilens-be/internal/ocr"
	"github.com/nutrilens/nutrilens-be/internal/vision"
	"github.com/rs/zerolog/log"
)

// maxUploadSize caps label image uploads at 10 MB.
const maxUploadSize = 10 << 20

// noTextSentinel is returned when the detector finds nothing.
const noTextSentinel = "No text found"

// TextDetector is the upstream text-detection dependency.
type TextDetector interface {
	DetectText(ctx context.Context, img vision.Image) (string, error)
}

// OCRHandler bridges uploaded label images to the external
// text-detection service.
type OCRHandler struct {
	detector TextDetector
}

// NewOCRHandler creates a new OCRHandler.
func NewOCRHandler(detector TextDetector) *OCRHandler {
	return &OCRHandler{detector: detector}
}

// Scan handles POST /ocr and POST /products/scan. The primary shape is
// a multipart "image" field; a JSON body with "imageUrl" is accepted
// for legacy clients. Exactly one of the two is honored per request.
func (h *OCRHandler) Scan(w http.ResponseWriter, r *http.Request) {
	img, err := extractImage(r)
	if err != nil {
		writeError(w, err)
		return
	}

	text, err := h.detector.DetectText(r.Context(), img)
	if err != nil {
		log.Error().Err(err).Msg("OCR upstream call failed")
		writeError(w, apperr.Upstream("failed to process image: "+err.Error(), err))
		return
	}

	cleaned, nutrition := ocr.ParseNutrition(text)
	if cleaned == "" {
		cleaned = noTextSentinel
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"extractedText": cleaned,
		"nutrition":     nutrition,
	})
}

func extractImage(r *http.Request) (vision.Image, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return vision.Image{}, apperr.Validation("invalid multipart body")
		}
		file, _, err := r.FormFile("image")
		if err != nil {
			return vision.Image{}, apperr.Validation("No image URL provided")
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
		if err != nil {
			return vision.Image{}, err
		}
		return vision.Image{Content: content}, nil
	}

	var payload struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ImageURL == "" {
		return vision.Image{}, apperr.Validation("No image URL provided")
	}
	return vision.Image{URI: payload.ImageURL}, nil
}
