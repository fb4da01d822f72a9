package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postline/internal/model"
	"postline/internal/pkg/jwtutil"
)

const testSecret = "test-session-secret"

type stubDirectory struct {
	users map[uuid.UUID]*model.UserAuth
}

func (s *stubDirectory) GetAuth(id uuid.UUID) (*model.UserAuth, error) {
	return s.users[id], nil
}

type stubRevoker struct {
	revokedAt map[string]time.Time
}

func (s *stubRevoker) IsRevoked(_ context.Context, userID string, issuedAt time.Time) (bool, error) {
	mark, ok := s.revokedAt[userID]
	if !ok {
		return false, nil
	}
	return !issuedAt.After(mark), nil
}

func newTestRouter(directory AuthDirectory, revoker TokenRevoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthBearer(testSecret, directory, revoker), func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthBearerValidToken(t *testing.T) {
	userID := uuid.New()
	directory := &stubDirectory{users: map[uuid.UUID]*model.UserAuth{
		userID: {UUID: userID, Username: "alice"},
	}}
	router := newTestRouter(directory, nil)

	token, err := jwtutil.GenerateToken(testSecret, time.Minute, userID.String(), "alice")
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthBearerMissingHeader(t *testing.T) {
	router := newTestRouter(&stubDirectory{}, nil)

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBearerWrongScheme(t *testing.T) {
	router := newTestRouter(&stubDirectory{}, nil)

	rec := doRequest(router, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBearerInvalidToken(t *testing.T) {
	router := newTestRouter(&stubDirectory{}, nil)

	rec := doRequest(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBearerExpiredToken(t *testing.T) {
	userID := uuid.New()
	router := newTestRouter(&stubDirectory{}, nil)

	token, err := jwtutil.GenerateToken(testSecret, -time.Minute, userID.String(), "alice")
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBearerDeletedUser(t *testing.T) {
	// Token is valid but the user no longer exists.
	userID := uuid.New()
	router := newTestRouter(&stubDirectory{users: map[uuid.UUID]*model.UserAuth{}}, nil)

	token, err := jwtutil.GenerateToken(testSecret, time.Minute, userID.String(), "alice")
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBearerRevokedToken(t *testing.T) {
	userID := uuid.New()
	directory := &stubDirectory{users: map[uuid.UUID]*model.UserAuth{
		userID: {UUID: userID, Username: "alice"},
	}}

	token, err := jwtutil.GenerateToken(testSecret, time.Minute, userID.String(), "alice")
	require.NoError(t, err)

	revoker := &stubRevoker{revokedAt: map[string]time.Time{
		userID.String(): time.Now().Add(time.Second),
	}}
	router := newTestRouter(directory, revoker)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBearerTokenSignedWithOtherSecret(t *testing.T) {
	// A reset-domain token must not pass the session gateway.
	userID := uuid.New()
	directory := &stubDirectory{users: map[uuid.UUID]*model.UserAuth{
		userID: {UUID: userID, Username: "alice"},
	}}
	router := newTestRouter(directory, nil)

	token, err := jwtutil.GenerateToken("reset-secret", time.Minute, userID.String(), "")
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
