// Package vision is a thin client for the external text-detection
// service. Each call is a fresh upstream request: no retries, no
// caching, no server-side timeout beyond the caller's context.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
)

// Image is the input to text detection. Exactly one of Content or URI
// must be set.
type Image struct {
	Content []byte // raw image bytes (primary path, from multipart upload)
	URI     string // remote image URL (legacy path)
}

// Client calls the vision annotate endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Client for the given annotate endpoint.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type annotateEntry struct {
	Image   imagePayload `json:"image"`
	Feature []feature    `json:"features"`
}

type imagePayload struct {
	Content string       `json:"content,omitempty"`
	Source  *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	ImageURI string `json:"imageUri"`
}

type feature struct {
	Type string `json:"type"`
}

type annotateResponse struct {
	Responses []struct {
		FullTextAnnotation *struct {
			Text string `json:"text"`
		} `json:"fullTextAnnotation"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

// DetectText runs document text detection on an image and returns the
// full-text annotation, or an empty string when no text is recognized.
func (c *Client) DetectText(ctx context.Context, img Image) (string, error) {
	entry := annotateEntry{Feature: []feature{{Type: "DOCUMENT_TEXT_DETECTION"}}}
	switch {
	case len(img.Content) > 0:
		entry.Image.Content = base64.StdEncoding.EncodeToString(img.Content)
	case img.URI != "":
		entry.Image.Source = &imageSource{ImageURI: img.URI}
	default:
		return "", fmt.Errorf("vision: image content or uri required")
	}

	body, err := json.Marshal(annotateRequest{Requests: []annotateEntry{entry}})
	if err != nil {
		return "", err
	}

	url := c.endpoint
	if c.apiKey != "" {
		url += "?key=" + c.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vision: annotate returned status %d", resp.StatusCode)
	}

	var out annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Responses) == 0 {
		return "", nil
	}

	r := out.Responses[0]
	if r.Error != nil && r.Error.Message != "" {
		return "", fmt.Errorf("%s", r.Error.Message)
	}
	if r.FullTextAnnotation == nil {
		return "", nil
	}
	return r.FullTextAnnotation.Text, nil
}
