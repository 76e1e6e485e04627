package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"outreach/internal/model"
	"outreach/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type memNewsletterRepo struct {
	signups []*model.NewsletterSignup
}

func (m *memNewsletterRepo) Create(ctx context.Context, s *model.NewsletterSignup) error {
	m.signups = append(m.signups, s)
	return nil
}

func (m *memNewsletterRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.signups)), nil
}

func TestNewsletterSignupEndpoint(t *testing.T) {
	repo := &memNewsletterRepo{}
	h := NewNewsletterHandler(service.NewNewsletterService(zap.NewNop(), repo))

	r := gin.New()
	r.POST("/api/newsletter", h.Signup)

	w := postJSON(t, r, "/api/newsletter", gin.H{"name": "Dana", "email": "dana@example.org"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Thanks for signing up!", decode(t, w)["message"])
	require.Len(t, repo.signups, 1)

	w = postJSON(t, r, "/api/newsletter", gin.H{"name": "", "email": "dana@example.org"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w), "error")
	assert.Len(t, repo.signups, 1, "rejected signup must not write")
}

type memSuggestionRepo struct {
	suggestions []*model.Suggestion
}

func (m *memSuggestionRepo) Create(ctx context.Context, s *model.Suggestion) error {
	s.SetID(primitive.NewObjectID())
	m.suggestions = append(m.suggestions, s)
	return nil
}

func (m *memSuggestionRepo) FindAllDesc(ctx context.Context) ([]*model.Suggestion, error) {
	out := make([]*model.Suggestion, len(m.suggestions))
	for i, s := range m.suggestions {
		out[len(m.suggestions)-1-i] = s
	}
	return out, nil
}

func TestSuggestionEndpoints(t *testing.T) {
	repo := &memSuggestionRepo{}
	h := NewSuggestionHandler(service.NewSuggestionService(zap.NewNop(), repo))

	r := gin.New()
	r.POST("/api/admin/suggestions", h.Create)
	r.GET("/api/admin/suggestions", h.List)

	w := postJSON(t, r, "/api/admin/suggestions", gin.H{"description": " faster search ", "category": "ux"})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["id"])

	w = postJSON(t, r, "/api/admin/suggestions", gin.H{"description": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/suggestions", nil)
	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, req)
	require.Equal(t, http.StatusOK, lw.Code)
	listed := decode(t, lw)["suggestions"].([]any)
	require.Len(t, listed, 1)
	first := listed[0].(map[string]any)
	assert.Equal(t, "faster search", first["description"])
	assert.Equal(t, model.SuggestionStatusNew, first["status"])
}

type memRequestRepo struct {
	requests   []*model.Request
	lastUpdate bson.M
}

func (m *memRequestRepo) Find(ctx context.Context, filter bson.M) ([]*model.Request, error) {
	return m.requests, nil
}

func (m *memRequestRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	m.lastUpdate = fields
	return nil
}

func (m *memRequestRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}

func TestRequestEndpoints(t *testing.T) {
	repo := &memRequestRepo{requests: []*model.Request{{ID: primitive.NewObjectID(), Type: "speaker"}}}
	h := NewRequestHandler(service.NewRequestService(zap.NewNop(), repo))

	r := gin.New()
	r.GET("/api/admin/requests", h.List)
	r.PATCH("/api/admin/requests", h.Update)
	r.POST("/api/admin/requests", h.Create)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/requests", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["requests"].([]any), 1)

	buf, err := json.Marshal(gin.H{"id": repo.requests[0].ID.Hex(), "status": "approved"})
	require.NoError(t, err)
	patch := httptest.NewRequest(http.MethodPatch, "/api/admin/requests", bytes.NewReader(buf))
	patch.Header.Set("Content-Type", "application/json")
	pw := httptest.NewRecorder()
	r.ServeHTTP(pw, patch)
	require.Equal(t, http.StatusOK, pw.Code)
	assert.Equal(t, "approved", repo.lastUpdate["status"])
	assert.NotContains(t, repo.lastUpdate, "id")

	w = postJSON(t, r, "/api/admin/requests", gin.H{"type": "speaker"})
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Contains(t, decode(t, w), "error")

	// A patch without a target id never reaches the service.
	noID := httptest.NewRequest(http.MethodPatch, "/api/admin/requests", bytes.NewReader([]byte(`{"status":"x"}`)))
	noID.Header.Set("Content-Type", "application/json")
	nw := httptest.NewRecorder()
	r.ServeHTTP(nw, noID)
	assert.Equal(t, http.StatusBadRequest, nw.Code)
}
