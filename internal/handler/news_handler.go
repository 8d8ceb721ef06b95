package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sauvetage/internal/models"
	"sauvetage/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NewsHandler struct {
	repo *repository.NewsRepository
}

func NewNewsHandler(repo *repository.NewsRepository) *NewsHandler {
	return &NewsHandler{repo: repo}
}

// ListPublic returns published news only.
func (h *NewsHandler) ListPublic(c *gin.Context) {
	list, err := h.repo.List(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list news"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListAll returns every item, drafts included, for the dashboard.
func (h *NewsHandler) ListAll(c *gin.Context) {
	list, err := h.repo.List(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list news"})
		return
	}
	c.JSON(http.StatusOK, list)
}

type newsRequest struct {
	Titre   string `json:"titre" binding:"required"`
	Contenu string `json:"contenu" binding:"required"`
	Image   string `json:"image"`
	Publiee bool   `json:"publiee"`
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n := &models.News{Titre: req.Titre, Contenu: req.Contenu, Image: req.Image, Publiee: req.Publiee}
	if err := h.repo.Create(n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create news"})
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	n, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load news"})
		return
	}
	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n.Titre = req.Titre
	n.Contenu = req.Contenu
	n.Image = req.Image
	n.Publiee = req.Publiee
	if err := h.repo.Update(n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update news"})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load news"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete news"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
