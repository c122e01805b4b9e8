package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestManager() *auth.JWTManager {
	return auth.NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "Storefront Backend"},
		JWT: config.JWTConfig{
			Secret:            "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry: time.Hour,
		},
	})
}

func authTestRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw)
	r.GET("/whoami", func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		email, _ := GetUserEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "email": email})
	})
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	manager := authTestManager()
	router := authTestRouter(AuthMiddleware(manager))

	token, err := manager.GenerateToken("user-1", "ana@example.com", "Ana Cruz")
	require.NoError(t, err)

	w := doGet(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddlewareRejects(t *testing.T) {
	router := authTestRouter(AuthMiddleware(authTestManager()))

	assert.Equal(t, http.StatusUnauthorized, doGet(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "token-without-scheme").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "Bearer not.a.token").Code)
}

func TestOptionalAuthMiddlewarePassesThrough(t *testing.T) {
	manager := authTestManager()
	router := authTestRouter(OptionalAuthMiddleware(manager))

	// Anonymous requests proceed with no identity attached.
	w := doGet(router, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":""`)

	// Invalid tokens are ignored, not rejected.
	w = doGet(router, "Bearer garbage")
	assert.Equal(t, http.StatusOK, w.Code)

	token, err := manager.GenerateToken("user-1", "ana@example.com", "Ana Cruz")
	require.NoError(t, err)
	w = doGet(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}
