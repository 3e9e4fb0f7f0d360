package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.RegisterBindings()
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error, body.Code
}

func patentRouter() *gin.Engine {
	r := newEngine()
	h := NewPatentHandler(service.NewPatentService(newMemPatentRepo()))
	r.GET("/patents", h.ListPatents)
	r.POST("/patents", h.CreatePatent)
	r.GET("/patents/:id", h.GetPatent)
	r.PUT("/patents/:id", h.UpdatePatent)
	r.DELETE("/patents/:id", h.DeletePatent)
	return r
}

func TestPatentHandler_CRUD(t *testing.T) {
	r := patentRouter()

	w := doJSON(r, http.MethodPost, "/patents", `{"title":"Smart sensor","inventors":["Ann"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Patent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.PatentCategoryInvention, created.Category)
	assert.Equal(t, models.PatentStatusPending, created.Status)

	w = doJSON(r, http.MethodPut, "/patents/"+created.ID, `{"status":"granted"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Patent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Smart sensor", updated.Title, "absent fields are kept")
	assert.Equal(t, models.PatentStatusGranted, updated.Status)
	assert.Equal(t, models.StringList{"Ann"}, updated.Inventors)

	w = doJSON(r, http.MethodGet, "/patents?category=invention", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Patent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = doJSON(r, http.MethodDelete, "/patents/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var deleted models.Patent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.Equal(t, created.ID, deleted.ID)

	w = doJSON(r, http.MethodGet, "/patents/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	msg, code := decodeError(t, w)
	assert.Equal(t, "NOT_FOUND", code)
	assert.Equal(t, "патент не найден", msg)
}

func TestPatentHandler_Validation(t *testing.T) {
	r := patentRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "missing title", method: http.MethodPost, path: "/patents", body: `{"country":"TW"}`, status: http.StatusBadRequest},
		{name: "blank title", method: http.MethodPost, path: "/patents", body: `{"title":"   "}`, status: http.StatusBadRequest},
		{name: "malformed json", method: http.MethodPost, path: "/patents", body: `{"title":`, status: http.StatusBadRequest},
		{name: "bad limit", method: http.MethodGet, path: "/patents?limit=ten", status: http.StatusBadRequest},
		{name: "bad user id", method: http.MethodGet, path: "/patents?user_id=x", status: http.StatusBadRequest},
		{name: "update missing", method: http.MethodPut, path: "/patents/missing", body: `{"title":"x"}`, status: http.StatusNotFound},
		{name: "delete missing", method: http.MethodDelete, path: "/patents/missing", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestCompetitionHandler_NonNumericIDIsNotFound(t *testing.T) {
	r := newEngine()
	h := NewCompetitionHandler(service.NewCompetitionService(emptyCompetitionRepo{}))
	r.GET("/competitions/:id", h.GetCompetition)
	r.DELETE("/competitions/:id", h.DeleteCompetition)

	for _, path := range []string{"/competitions/abc", "/competitions/0", "/competitions/42"} {
		w := doJSON(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		msg, _ := decodeError(t, w)
		assert.Equal(t, "конкурс не найден", msg)
	}

	w := doJSON(r, http.MethodDelete, "/competitions/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func fileRouter(t *testing.T) (*gin.Engine, *memFileRepo) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir(), 1<<20)
	require.NoError(t, err)
	repo := newMemFileRepo()

	r := newEngine()
	h := NewFileHandler(service.NewFileService(repo, store, 1), 1)
	r.POST("/files", h.Upload)
	r.GET("/files/:id", h.GetFile)
	r.GET("/files/:id/content", h.Content)
	r.DELETE("/files/:id", h.DeleteFile)
	return r, repo
}

func multipartRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestFileHandler_MultipartUploadAndContent(t *testing.T) {
	r, repo := fileRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "avatar.png", pngBytes))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var file models.UploadedFile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &file))
	assert.Equal(t, "avatar.png", file.OriginalName)
	assert.Equal(t, "image/png", file.MimeType)
	assert.Equal(t, int64(len(pngBytes)), file.Size)
	assert.Equal(t, "/api/v1/files/"+file.ID+"/content", file.URL)
	assert.Len(t, repo.items, 1)

	w = doJSON(r, http.MethodGet, "/files/"+file.ID+"/content", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, pngBytes, w.Body.Bytes())

	w = doJSON(r, http.MethodDelete, "/files/"+file.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/files/"+file.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFileHandler_Base64Upload(t *testing.T) {
	r, _ := fileRouter(t)

	body, err := json.Marshal(dto.Base64UploadRequest{
		Name: "logo.png",
		Type: "image/png",
		Data: "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes),
	})
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/files", string(body))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestFileHandler_RejectsUploads(t *testing.T) {
	r, repo := fileRouter(t)

	tests := []struct {
		name     string
		filename string
		content  []byte
		status   int
	}{
		{name: "extension not allowed", filename: "script.exe", content: pngBytes, status: http.StatusBadRequest},
		{name: "content does not match extension", filename: "photo.jpg", content: pngBytes, status: http.StatusBadRequest},
		{name: "not an image", filename: "fake.png", content: []byte("hello world"), status: http.StatusBadRequest},
		{name: "too large", filename: "big.png", content: append(append([]byte{}, pngBytes...), make([]byte, 2<<20)...), status: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, multipartRequest(t, tt.filename, tt.content))
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
	assert.Empty(t, repo.items)

	w := doJSON(r, http.MethodPost, "/files", `{"name":"x.png"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsHandler_TrackEmptyBody(t *testing.T) {
	repo := &memAnalyticsRepo{}
	r := newEngine()
	h := NewAnalyticsHandler(service.NewAnalyticsService(repo))
	r.POST("/analytics/track", h.Track)
	r.GET("/analytics/stats", h.Stats)
	r.GET("/analytics/recent", h.Recent)

	req := httptest.NewRequest(http.MethodPost, "/analytics/track", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.TrackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.SessionID)

	require.Len(t, repo.views, 1)
	assert.Equal(t, "/", repo.views[0].Path)
	assert.Equal(t, "Firefox", repo.sessions[0].Browser)

	w = doJSON(r, http.MethodPost, "/analytics/track", `{"sessionId":"`+resp.SessionID+`","path":"/about","duration":12}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, repo.sessions[0].SessionID, resp.SessionID)

	w = doJSON(r, http.MethodGet, "/analytics/stats?days=7", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.PageViews)
	assert.Equal(t, 7, stats.DateRange.Days)

	w = doJSON(r, http.MethodGet, "/analytics/recent?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsHandler_TrackLongReferer(t *testing.T) {
	repo := &memAnalyticsRepo{}
	r := newEngine()
	r.POST("/analytics/track", NewAnalyticsHandler(service.NewAnalyticsService(repo)).Track)

	req := httptest.NewRequest(http.MethodPost, "/analytics/track", strings.NewReader(`{"path":"/"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://example.com/?q="+strings.Repeat("a", 2000))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.Len(t, repo.views, 1)
	require.NotNil(t, repo.views[0].Referer)
	assert.Len(t, *repo.views[0].Referer, 500)
}

func TestAuthHandler_Login(t *testing.T) {
	r := newEngine()
	h := NewAuthHandler(service.NewAuthService("s3cret", ""))
	r.POST("/auth/login", h.Login)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{name: "valid password", body: `{"password":"s3cret"}`, status: http.StatusOK},
		{name: "wrong password", body: `{"password":"nope"}`, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "empty password", body: `{}`, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.code == "" {
				var resp dto.LoginResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				return
			}
			_, code := decodeError(t, w)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		pinger fakePinger
		status int
		health string
	}{
		{name: "healthy", pinger: fakePinger{}, status: http.StatusOK, health: "healthy"},
		{name: "database down", pinger: fakePinger{err: errors.New("connection refused")}, status: http.StatusServiceUnavailable, health: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine()
			r.GET("/health", NewHealthHandler(tt.pinger, "test").Health)

			w := doJSON(r, http.MethodGet, "/health", "")
			assert.Equal(t, tt.status, w.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.health, resp.Status)
			assert.Equal(t, "test", resp.Environment)
			assert.Equal(t, tt.health, resp.Checks["database"])
		})
	}
}
