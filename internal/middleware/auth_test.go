package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/ivcho02/mechanic-api/internal/config"
	"github.com/ivcho02/mechanic-api/internal/models"
)

func testRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	secured := r.Group("/", AuthMiddleware(cfg))
	secured.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.MustGet(ContextUserEmail),
			"role":  c.MustGet(ContextUserRole),
		})
	})
	secured.GET("/admin", AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   float64(7),
		"email": "ivan@example.com",
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", models.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", models.RoleCustomer))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ivan@example.com")
	assert.Contains(t, w.Body.String(), models.RoleCustomer)
}

func TestAdminOnly(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", models.RoleCustomer))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", models.RoleAdmin))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
