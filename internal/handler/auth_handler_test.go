package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sauvetage/config"
	"sauvetage/internal/auth"
	"sauvetage/internal/domain"
	"sauvetage/internal/middleware"
	"sauvetage/internal/models"
	"sauvetage/internal/repository"
	"sauvetage/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "sauvetage"},
	}
}

func newAuthRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	cfg := testConfig()

	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		Email: "admin@assoc.test", PasswordHash: string(hash),
		Prenom: "Claire", Nom: "Bodin", Role: domain.RoleSuperAdmin,
	}).Error)

	adminRepo := repository.NewAdminRepository(db)
	svc := service.NewAuthService(cfg, adminRepo)
	h := NewAuthHandler(svc, adminRepo, 3600)

	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	protected := r.Group("/api/admin", middleware.AuthRequired(&cfg.JWT))
	protected.GET("/me", h.Me)
	protected.PATCH("/change-password", h.ChangePassword)
	return r, cfg
}

func login(t *testing.T, r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"`+email+`","password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newAuthRouter(t)
	w := login(t, r, "admin@assoc.test", "mauvais")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginIssuesUsableToken(t *testing.T) {
	r, cfg := newAuthRouter(t)
	w := login(t, r, "admin@assoc.test", "motdepasse")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ParseToken(&cfg.JWT, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, claims.Role)

	// bearer header
	mw := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	r.ServeHTTP(mw, req)
	assert.Equal(t, http.StatusOK, mw.Code)

	// session cookie fallback
	cw := httptest.NewRecorder()
	creq := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	creq.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: resp.Token})
	r.ServeHTTP(cw, creq)
	assert.Equal(t, http.StatusOK, cw.Code)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	r, _ := newAuthRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword(t *testing.T) {
	r, _ := newAuthRouter(t)
	token := func() string {
		w := login(t, r, "admin@assoc.test", "motdepasse")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Token
	}()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/change-password",
		strings.NewReader(`{"currentPassword":"motdepasse","newPassword":"nouveaumotdepasse"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusUnauthorized, login(t, r, "admin@assoc.test", "motdepasse").Code)
	assert.Equal(t, http.StatusOK, login(t, r, "admin@assoc.test", "nouveaumotdepasse").Code)
}
