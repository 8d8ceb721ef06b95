package handler

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"sauvetage/internal/domain"
	"sauvetage/internal/models"
	"sauvetage/internal/repository"
	"sauvetage/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var allowedDocumentMIME = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

type DocumentHandler struct {
	repo     *repository.DocumentRepository
	store    *storage.Store
	maxBytes int64
}

func NewDocumentHandler(repo *repository.DocumentRepository, store *storage.Store, maxBytes int64) *DocumentHandler {
	return &DocumentHandler{repo: repo, store: store, maxBytes: maxBytes}
}

func (h *DocumentHandler) List(c *gin.Context) {
	categorie := c.Query("categorie")
	if categorie != "" && !domain.DocumentCategories[categorie] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categorie"})
		return
	}
	docs, err := h.repo.List(categorie)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list documents"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) Create(c *gin.Context) {
	titre := c.PostForm("titre")
	categorie := c.PostForm("categorie")
	description := c.PostForm("description")
	fh, fileErr := c.FormFile("file")

	var details []string
	if fileErr != nil {
		details = append(details, "file is required")
	}
	if titre == "" {
		details = append(details, "titre is required")
	}
	if !domain.DocumentCategories[categorie] {
		details = append(details, "invalid categorie")
	}
	if fh != nil {
		if !allowedDocumentMIME[fh.Header.Get("Content-Type")] {
			details = append(details, "file type must be pdf or an office document")
		}
		if fh.Size > h.maxBytes {
			details = append(details, "file exceeds the 10MB limit")
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
	doc := &models.Document{
		Titre:       titre,
		Filename:    filename,
		Categorie:   categorie,
		TailleBytes: fh.Size,
		Description: description,
	}
	if err := h.repo.Create(doc); err != nil {
		h.store.Remove(filename)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create document"})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

type updateDocumentRequest struct {
	Titre       string  `json:"titre" binding:"required"`
	Categorie   string  `json:"categorie" binding:"required"`
	Description *string `json:"description"`
}

func (h *DocumentHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req updateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.DocumentCategories[req.Categorie] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categorie"})
		return
	}
	doc, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load document"})
		return
	}
	doc.Titre = req.Titre
	doc.Categorie = req.Categorie
	if req.Description != nil {
		doc.Description = *req.Description
	}
	if err := h.repo.Update(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update document"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	doc, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load document"})
		return
	}
	if err := h.repo.Delete(doc.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete document"})
		return
	}
	h.store.Remove(doc.Filename)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Download streams the stored file and bumps the download counter.
func (h *DocumentHandler) Download(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	doc, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load document"})
		return
	}
	path := h.store.Path(doc.Filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	_ = h.repo.IncrementDownloads(doc.ID)
	c.FileAttachment(path, doc.Filename)
}
