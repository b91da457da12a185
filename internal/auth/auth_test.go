package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/config"
)

func loginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, config.AdminConfig{
		Token:     "admin-token",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}, zap.NewNop().Sugar())
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_ValidToken(t *testing.T) {
	w := postLogin(loginRouter(), `{"token":"admin-token"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
}

func TestLogin_WrongToken(t *testing.T) {
	w := postLogin(loginRouter(), `{"token":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingToken(t *testing.T) {
	w := postLogin(loginRouter(), `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
