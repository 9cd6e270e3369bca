package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nutrilens/nutrilens-be/internal/auth"
	"github.com/nutrilens/nutrilens-be/internal/database"
	"github.com/nutrilens/nutrilens-be/internal/monitoring"
	"github.com/nutrilens/nutrilens-be/internal/services"
	"github.com/nutrilens/nutrilens-be/internal/vision"
	ws "github.com/nutrilens/nutrilens-be/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDetector replaces the vision upstream in tests.
type stubDetector struct {
	text string
	err  error
}

func (s *stubDetector) DetectText(ctx context.Context, img vision.Image) (string, error) {
	return s.text, s.err
}

func newTestServer(t *testing.T, detector *stubDetector) *httptest.Server {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })

	hub := ws.NewHub()
	go hub.Run()

	if detector == nil {
		detector = &stubDetector{text: "Energy 480 kcal\nProtein 6.5 g"}
	}

	router := NewRouter(RouterDeps{
		Tokens:     auth.NewManager("test-secret", time.Hour, 90, false),
		Users:      services.NewUserService(db),
		Products:   services.NewProductService(db),
		Blogs:      services.NewBlogService(db),
		Chat:       services.NewChatService("", ""),
		Vision:     detector,
		Hub:        hub,
		Stats:      monitoring.NewStatUpdater(),
		CORSOrigin: "http://localhost:3000",
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func signupPayload() map[string]string {
	return map[string]string{
		"name":            "A",
		"email":           "a@a.com",
		"password":        "12345678",
		"passwordConfirm": "12345678",
	}
}

func TestSignupScenario(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/users/signup", signupPayload())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var jwtCookie bool
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			jwtCookie = true
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, jwtCookie, "signup must set the jwt cookie")

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)

	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "a@a.com", user["email"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
	_, hasHash := user["passwordHash"]
	assert.False(t, hasHash)
}

func TestSignupDuplicateEmail(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/users/signup", signupPayload())
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/users/signup", signupPayload())
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "fail", body["status"])
}

func TestSigninWrongPassword(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/users/signup", signupPayload())
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/users/signin", map[string]string{
		"email":    "a@a.com",
		"password": "wrongpass9",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Nil(t, body["token"])
}

func TestSigninSuccessAndMe(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/users/signup", signupPayload())
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/users/signin", map[string]string{
		"email":    "a@a.com",
		"password": "12345678",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token := body["token"].(string)
	require.NotEmpty(t, token)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/users/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)
	meBody := decodeBody(t, meResp)
	user := meBody["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "a@a.com", user["email"])
}

func TestMeWithoutToken(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/users/me")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductSearchEmptyQuery(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/products/search", map[string]string{"query": ""})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductSearchContract(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/products", map[string]any{
		"Brand Name":   "ChocoDelight",
		"ENERGY(kcal)": 480,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/products/search", map[string]string{"query": "CHOCO"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	results := body["data"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "ChocoDelight", results[0].(map[string]any)["Brand Name"])

	// Zero matches is a 404, not an empty 200 list.
	resp = postJSON(t, srv.URL+"/products/search", map[string]string{"query": "vanilla"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductCreateRejectsUnknownFields(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/products", map[string]any{
		"Brand Name": "ChocoDelight",
		"evil":       "field",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductUpdateMissingID(t *testing.T) {
	srv := newTestServer(t, nil)

	body, _ := json.Marshal(map[string]any{"PROTEIN": 9.9})
	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/products/no-such-id", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductCountAndNutrients(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/products", map[string]any{"Brand Name": "ChocoDelight", "PROTEIN": 6.5})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id := created["data"].(map[string]any)["product"].(map[string]any)["id"].(string)

	countResp, err := http.Get(srv.URL + "/products/count")
	require.NoError(t, err)
	countBody := decodeBody(t, countResp)
	assert.Equal(t, float64(1), countBody["data"])

	nResp, err := http.Get(srv.URL + "/products/nutrients?id=" + id)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, nResp.StatusCode)
	nBody := decodeBody(t, nResp)
	product := nBody["data"].(map[string]any)
	assert.Equal(t, 6.5, product["PROTEIN"])
	assert.Nil(t, product["TOTAL FAT"])

	missing, err := http.Get(srv.URL + "/products/nutrients")
	require.NoError(t, err)
	missing.Body.Close()
	assert.Equal(t, http.StatusBadRequest, missing.StatusCode)
}

func TestScanWithoutImage(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/ocr", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "No image URL provided", body["message"])
}

func TestScanWithImageURL(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/ocr", map[string]string{"imageUrl": "https://example.com/label.jpg"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Energy 480 kcal\nProtein 6.5 g", body["extractedText"])
	nutrition := body["nutrition"].(map[string]any)
	assert.Equal(t, "480 kcal", nutrition["Energy"])
}

func TestScanWithMultipartFile(t *testing.T) {
	srv := newTestServer(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "label.jpg")
	require.NoError(t, err)
	fw.Write([]byte("fake-image-bytes"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/products/scan", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["extractedText"])
}

func TestScanUpstreamFailurePassesDetailThrough(t *testing.T) {
	srv := newTestServer(t, &stubDetector{err: errors.New("quota exceeded")})

	resp := postJSON(t, srv.URL+"/ocr", map[string]string{"imageUrl": "https://example.com/label.jpg"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "quota exceeded")
}

func TestScanNoTextSentinel(t *testing.T) {
	srv := newTestServer(t, &stubDetector{text: ""})

	resp := postJSON(t, srv.URL+"/ocr", map[string]string{"imageUrl": "https://example.com/blank.jpg"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "No text found", body["extractedText"])
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/chat", map[string]string{"message": ""})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/chat", map[string]string{"message": "Why is cadmium dangerous in biscuits?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["reply"], "Cadmium")
}

func TestBlogLifecycle(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/blogs/generate", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	blog := created["data"].(map[string]any)["blog"].(map[string]any)
	id := blog["id"].(string)

	likeResp := postJSON(t, srv.URL+"/blogs/"+id+"/like", nil)
	require.Equal(t, http.StatusOK, likeResp.StatusCode)
	likeBody := decodeBody(t, likeResp)
	assert.Equal(t, float64(1), likeBody["data"].(map[string]any)["likes"])

	commentResp := postJSON(t, srv.URL+"/blogs/"+id+"/comment", map[string]string{"text": "great read"})
	require.Equal(t, http.StatusCreated, commentResp.StatusCode)
	commentResp.Body.Close()

	listResp, err := http.Get(srv.URL + "/blogs")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	listBody := decodeBody(t, listResp)
	blogs := listBody["data"].([]any)
	require.Len(t, blogs, 1)
	assert.Len(t, blogs[0].(map[string]any)["comments"].([]any), 1)

	missingLike := postJSON(t, srv.URL+"/blogs/no-such-id/like", nil)
	missingLike.Body.Close()
	assert.Equal(t, http.StatusNotFound, missingLike.StatusCode)
}

func TestLogoutOverwritesCookie(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/users/logout", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "loggedout", cookies[0].Value)
}

func TestRootAndHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	health, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, health.StatusCode)
	body := decodeBody(t, health)
	assert.Equal(t, "ok", body["status"])
}
