package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pillpal/models"
	"pillpal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenUserRepo struct {
	user *models.User
}

func (r *tokenUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, nil
}

func (r *tokenUserRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error) {
	if r.user != nil && r.user.TokenHash == tokenHash {
		return r.user, nil
	}
	return nil, nil
}

func (r *tokenUserRepo) UpdatePushPlayerID(ctx context.Context, id, playerID string) error {
	return nil
}

func newAuthRouter(repo *tokenUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	// Point the auth cache at a dead address so every lookup misses and the
	// middleware falls back to the user store.
	utils.AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
	})
	r := gin.New()
	r.GET("/whoami", JWTAuthUserMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	return r
}

func getWhoami(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthResolvesTokenHashOnCacheMiss(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "user@example.com", time.Hour)
	require.NoError(t, err)
	repo := &tokenUserRepo{user: &models.User{ID: "user-1", TokenHash: utils.HashToken(token)}}
	r := newAuthRouter(repo)

	w := getWhoami(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthRejectsRevokedToken(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "", time.Hour)
	require.NoError(t, err)
	// The stored hash belongs to a newer session: this token was rotated out.
	repo := &tokenUserRepo{user: &models.User{ID: "user-1", TokenHash: "stale"}}
	r := newAuthRouter(repo)

	w := getWhoami(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsTokenForDifferentUser(t *testing.T) {
	token, err := utils.GenerateToken("user-2", "", time.Hour)
	require.NoError(t, err)
	// The hash resolves to user-1's record but the token subject is user-2.
	repo := &tokenUserRepo{user: &models.User{ID: "user-1", TokenHash: utils.HashToken(token)}}
	r := newAuthRouter(repo)

	w := getWhoami(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	r := newAuthRouter(&tokenUserRepo{})

	assert.Equal(t, http.StatusUnauthorized, getWhoami(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, getWhoami(r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, getWhoami(r, "Bearer not-a-jwt").Code)
}
