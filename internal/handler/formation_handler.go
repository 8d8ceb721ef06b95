package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sauvetage/internal/domain"
	"sauvetage/internal/models"
	"sauvetage/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FormationHandler struct {
	repo *repository.FormationRepository
}

func NewFormationHandler(repo *repository.FormationRepository) *FormationHandler {
	return &FormationHandler{repo: repo}
}

// List feeds the public agenda; optional ?type= and ?statut= filters.
func (h *FormationHandler) List(c *gin.Context) {
	typ := c.Query("type")
	statut := c.Query("statut")
	if typ != "" && !domain.FormationTypes[typ] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type"})
		return
	}
	if statut != "" && !domain.FormationStatuses[statut] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid statut"})
		return
	}
	list, err := h.repo.List(typ, statut)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list formations"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FormationHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	f, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "formation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load formation"})
		return
	}
	c.JSON(http.StatusOK, f)
}

type formationRequest struct {
	Titre       string          `json:"titre" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	DateDebut   time.Time       `json:"dateDebut" binding:"required"`
	DateFin     *time.Time      `json:"dateFin"`
	DureeHeures int             `json:"dureeHeures" binding:"required,min=1"`
	PlacesTotal int             `json:"placesTotal" binding:"required,min=1"`
	Prix        decimal.Decimal `json:"prix"`
	Lieu        string          `json:"lieu" binding:"required"`
	Formateur   string          `json:"formateur"`
	Statut      string          `json:"statut"`
}

func (h *FormationHandler) Create(c *gin.Context) {
	var req formationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.FormationTypes[req.Type] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type"})
		return
	}
	if req.Statut == "" {
		req.Statut = domain.FormationPlanifiee
	}
	if !domain.FormationStatuses[req.Statut] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid statut"})
		return
	}
	f := &models.Formation{
		Titre:             req.Titre,
		Type:              req.Type,
		DateDebut:         req.DateDebut,
		DateFin:           req.DateFin,
		DureeHeures:       req.DureeHeures,
		PlacesTotal:       req.PlacesTotal,
		PlacesDisponibles: req.PlacesTotal,
		Prix:              req.Prix,
		Lieu:              req.Lieu,
		Formateur:         req.Formateur,
		Statut:            req.Statut,
	}
	if err := h.repo.Create(f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create formation"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FormationHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	f, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "formation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load formation"})
		return
	}
	var req formationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.FormationTypes[req.Type] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type"})
		return
	}
	if req.Statut != "" && !domain.FormationStatuses[req.Statut] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid statut"})
		return
	}
	delta := req.PlacesTotal - f.PlacesTotal
	f.Titre = req.Titre
	f.Type = req.Type
	f.DateDebut = req.DateDebut
	f.DateFin = req.DateFin
	f.DureeHeures = req.DureeHeures
	f.Prix = req.Prix
	f.Lieu = req.Lieu
	f.Formateur = req.Formateur
	if req.Statut != "" {
		f.Statut = req.Statut
	}
	if err := h.repo.Update(f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update formation"})
		return
	}
	// Growing or shrinking the session moves free seats by the same delta,
	// applied in one statement so a registration racing this update is kept.
	if err := h.repo.ResizeSeats(f.ID, delta, req.PlacesTotal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update formation"})
		return
	}
	f, err = h.repo.GetByID(f.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load formation"})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormationHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "formation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load formation"})
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete formation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
