package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sauvetage/internal/domain"
	"sauvetage/internal/models"
	"sauvetage/internal/repository"
	"sauvetage/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TemplateHandler struct {
	repo *repository.EmailTemplateRepository
}

func NewTemplateHandler(repo *repository.EmailTemplateRepository) *TemplateHandler {
	return &TemplateHandler{repo: repo}
}

func (h *TemplateHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list templates"})
		return
	}
	c.JSON(http.StatusOK, list)
}

type templateRequest struct {
	Nom   string `json:"nom" binding:"required"`
	Sujet string `json:"sujet" binding:"required"`
	Corps string `json:"corps" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Actif *bool  `json:"actif"`
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.TemplateTypes[req.Type] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template type"})
		return
	}
	t := &models.EmailTemplate{Nom: req.Nom, Sujet: req.Sujet, Corps: req.Corps, Type: req.Type, Actif: true}
	if req.Actif != nil {
		t.Actif = *req.Actif
	}
	if err := h.repo.Create(t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create template"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	t, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load template"})
		return
	}
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.TemplateTypes[req.Type] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template type"})
		return
	}
	t.Nom = req.Nom
	t.Sujet = req.Sujet
	t.Corps = req.Corps
	t.Type = req.Type
	if req.Actif != nil {
		t.Actif = *req.Actif
	}
	if err := h.repo.Update(t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update template"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load template"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete template"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type previewRequest struct {
	Vars map[string]string `json:"vars"`
}

// Preview renders a template with sample values so the dashboard can show
// the final mail.
func (h *TemplateHandler) Preview(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	t, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load template"})
		return
	}
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sujet": service.Render(t.Sujet, req.Vars),
		"corps": service.Render(t.Corps, req.Vars),
	})
}
