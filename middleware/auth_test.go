package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter(adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthRequired(testSecret)}
	if adminOnly {
		handlers = append(handlers, AdminOnly())
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id, "isAdmin": IsAdmin(c)})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_ValidToken(t *testing.T) {
	userID := uuid.NewString()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":      userID,
		"email":    "jane@example.com",
		"is_admin": false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(newAuthRouter(false), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID)
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	w := doRequest(newAuthRouter(false), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(false), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(false), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_MissingSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(false), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_RejectsNonAdmin(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":      uuid.NewString(),
		"is_admin": false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(true), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":      uuid.NewString(),
		"is_admin": true,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(true), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly_RejectsStringCoercedClaim(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":      uuid.NewString(),
		"is_admin": "true",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(true), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
