package middleware

import (
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

	"outreach/internal/apperror"
	"outreach/internal/config"
	"outreach/internal/model"
	"outreach/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAccountRepo struct{ account *model.Account }

func (s *stubAccountRepo) Create(ctx context.Context, a *model.Account) (*model.Account, error) {
	return a, nil
}

func (s *stubAccountRepo) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	if s.account != nil && s.account.Email == email {
		return s.account, nil
	}
	return nil, nil
}

func (s *stubAccountRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Account, error) {
	if s.account != nil && s.account.ID == id {
		return s.account, nil
	}
	return nil, apperror.New(apperror.NotFound, "account not found")
}

type stubUserRepo struct{ user *model.User }

func (s *stubUserRepo) Create(ctx context.Context, u *model.User) (*model.User, error) { return u, nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, apperror.New(apperror.NotFound, "user not found")
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]*model.User, error) { return nil, nil }

func (s *stubUserRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return nil
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func testRouter(t *testing.T) (*gin.Engine, *service.AuthService, primitive.ObjectID) {
	t.Helper()

	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: "secret", TokenTTLMin: 5, Issuer: "outreach"}}
	uid := primitive.NewObjectID()
	auth := service.NewAuthService(cfg, zap.NewNop(),
		&stubAccountRepo{account: &model.Account{ID: uid, Email: "staff@example.org"}},
		&stubUserRepo{user: &model.User{ID: uid, Email: "staff@example.org", Role: model.RoleAdmin}})

	r := gin.New()
	r.GET("/whoami", RequireAuth(auth), func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"uid": caller.UID.Hex(), "role": caller.Role})
	})
	return r, auth, uid
}

func TestRequireAuthAcceptsValidBearer(t *testing.T) {
	r, auth, uid := testRouter(t)
	token, err := auth.GenerateToken(uid, "staff@example.org")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, uid.Hex(), body["uid"])
	assert.Equal(t, model.RoleAdmin, body["role"])
}

func TestRequireAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	r, _, _ := testRouter(t)

	for _, header := range []string{"", "Token abc", "bearer-less"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	r, _, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCallerFromWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CallerFrom(c)
	assert.False(t, ok)
}
