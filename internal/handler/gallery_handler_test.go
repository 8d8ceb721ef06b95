package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sauvetage/internal/domain"
	"sauvetage/internal/models"
	"sauvetage/internal/repository"
	"sauvetage/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGalleryRouter(t *testing.T) (*gin.Engine, *repository.ImageRepository, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	dir := t.TempDir()
	store, err := storage.New(dir, testLogger())
	require.NoError(t, err)
	repo := repository.NewImageRepository(db)
	h := NewGalleryHandler(repo, store, 5<<20)
	r := gin.New()
	r.GET("/api/galerie", h.List)
	r.POST("/api/admin/galerie", h.Create)
	r.PUT("/api/admin/galerie/:id", h.Update)
	r.DELETE("/api/admin/galerie/:id", h.Delete)
	return r, repo, dir
}

func TestGalleryCreateRejectsBadMIME(t *testing.T) {
	r, repo, _ := newGalleryRouter(t)

	body, ct := multipartBody(t, "file", "doc.gif", "image/gif", []byte("gif"), map[string]string{
		"alt": "photo", "categorie": domain.CategorieFormation,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/galerie", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Details)
	assert.Contains(t, strings.Join(resp.Details, " "), "jpeg")

	images, err := repo.List("")
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestGalleryCreateRejectsOversizeFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	store, err := storage.New(t.TempDir(), testLogger())
	require.NoError(t, err)
	// Small ceiling so the test does not allocate 5MB.
	h := NewGalleryHandler(repository.NewImageRepository(db), store, 16)
	r := gin.New()
	r.POST("/api/admin/galerie", h.Create)

	body, ct := multipartBody(t, "file", "big.jpg", "image/jpeg", make([]byte, 64), map[string]string{
		"alt": "photo", "categorie": domain.CategorieFormation,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/galerie", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGalleryCreateAndList(t *testing.T) {
	r, _, dir := newGalleryRouter(t)

	body, ct := multipartBody(t, "file", "Plage Été.JPG", "image/jpeg", []byte("jpegdata"), map[string]string{
		"alt": "entrainement plage", "categorie": domain.CategorieSauvetageSportif,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/galerie", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var img models.Image
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &img))
	assert.Equal(t, domain.CategorieSauvetageSportif, img.Categorie)
	assert.True(t, strings.HasSuffix(img.Filename, ".jpg"), "extension should be lowercased: %s", img.Filename)

	// file landed on disk
	_, err := os.Stat(filepath.Join(dir, img.Filename))
	require.NoError(t, err)

	// category filter
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/galerie?categorie=SAUVETAGE_SPORTIF", nil))
	require.Equal(t, http.StatusOK, w2.Code)
	var list []models.Image
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/api/galerie?categorie=EVENEMENT", nil))
	var empty []models.Image
	require.NoError(t, json.Unmarshal(w3.Body.Bytes(), &empty))
	assert.Empty(t, empty)
}

func TestGalleryUpdateNotFound(t *testing.T) {
	r, _, _ := newGalleryRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/galerie/999", strings.NewReader(`{"alt":"x","categorie":"FORMATION"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGalleryDeleteSurvivesMissingFile(t *testing.T) {
	r, repo, _ := newGalleryRouter(t)

	img := &models.Image{Filename: "gone.jpg", Alt: "x", Categorie: domain.CategorieEvenement}
	require.NoError(t, repo.Create(img))

	// No file was ever written; the row must still be removable.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/galerie/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	images, err := repo.List("")
	require.NoError(t, err)
	assert.Empty(t, images)
}
