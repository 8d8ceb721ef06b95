package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sauvetage/internal/domain"
	"sauvetage/internal/models"
	"sauvetage/internal/repository"
	"sauvetage/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var allowedImageMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type GalleryHandler struct {
	repo     *repository.ImageRepository
	store    *storage.Store
	maxBytes int64
}

func NewGalleryHandler(repo *repository.ImageRepository, store *storage.Store, maxBytes int64) *GalleryHandler {
	return &GalleryHandler{repo: repo, store: store, maxBytes: maxBytes}
}

// List is public; optional ?categorie= filter, newest first.
func (h *GalleryHandler) List(c *gin.Context) {
	categorie := c.Query("categorie")
	if categorie != "" && !domain.ImageCategories[categorie] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categorie"})
		return
	}
	images, err := h.repo.List(categorie)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *GalleryHandler) Create(c *gin.Context) {
	alt := c.PostForm("alt")
	categorie := c.PostForm("categorie")
	fh, fileErr := c.FormFile("file")

	var details []string
	if fileErr != nil {
		details = append(details, "file is required")
	}
	if alt == "" {
		details = append(details, "alt is required")
	}
	if !domain.ImageCategories[categorie] {
		details = append(details, "categorie must be one of FORMATION, SAUVETAGE_SPORTIF, EVENEMENT")
	}
	if fh != nil {
		if !allowedImageMIME[fh.Header.Get("Content-Type")] {
			details = append(details, "file type must be jpeg, png or webp")
		}
		if fh.Size > h.maxBytes {
			details = append(details, "file exceeds the 5MB limit")
		}
	}
	if len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": details})
		return
	}

	filename, err := h.store.Save(fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store file"})
		return
	}
	img := &models.Image{Filename: filename, Alt: alt, Categorie: categorie}
	if err := h.repo.Create(img); err != nil {
		h.store.Remove(filename)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create image"})
		return
	}
	c.JSON(http.StatusCreated, img)
}

type updateImageRequest struct {
	Alt       string `json:"alt" binding:"required"`
	Categorie string `json:"categorie" binding:"required"`
}

func (h *GalleryHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req updateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ImageCategories[req.Categorie] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categorie"})
		return
	}
	img, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load image"})
		return
	}
	img.Alt = req.Alt
	img.Categorie = req.Categorie
	if err := h.repo.Update(img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update image"})
		return
	}
	c.JSON(http.StatusOK, img)
}

// Delete removes the row first; the file unlink is best effort so a missing
// file never blocks the delete.
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	img, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load image"})
		return
	}
	if err := h.repo.Delete(img.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete image"})
		return
	}
	h.store.Remove(img.Filename)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
