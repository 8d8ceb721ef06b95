package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sauvetage/internal/domain"
	"sauvetage/internal/models"
	"sauvetage/internal/repository"
	"sauvetage/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InscriptionHandler struct {
	repo          *repository.InscriptionRepository
	formationRepo *repository.FormationRepository
	settings      *repository.SettingRepository
	mailer        *service.MailService
	adminEmail    string
}

func NewInscriptionHandler(repo *repository.InscriptionRepository, formationRepo *repository.FormationRepository, settings *repository.SettingRepository, mailer *service.MailService, adminEmail string) *InscriptionHandler {
	return &InscriptionHandler{repo: repo, formationRepo: formationRepo, settings: settings, mailer: mailer, adminEmail: adminEmail}
}

type createInscriptionRequest struct {
	Prenom        string `json:"prenom" binding:"required"`
	Nom           string `json:"nom" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Telephone     string `json:"telephone" binding:"required"`
	DateNaissance string `json:"dateNaissance" binding:"required"` // YYYY-MM-DD
	Message       string `json:"message"`
	FormationID   uint   `json:"formationId" binding:"required"`
}

// Create is the public registration endpoint. The seat is reserved with an
// atomic conditional decrement before the row is written; when no seat is
// left the request is rejected and nothing is created or sent.
func (h *InscriptionHandler) Create(c *gin.Context) {
	var req createInscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []string{err.Error()}})
		return
	}
	naissance, err := time.Parse("2006-01-02", req.DateNaissance)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []string{"dateNaissance must be YYYY-MM-DD"}})
		return
	}
	if !h.settings.Enabled(domain.SettingInscriptionsOuverte) {
		c.JSON(http.StatusForbidden, gin.H{"error": "inscriptions are closed"})
		return
	}
	formation, err := h.formationRepo.GetByID(req.FormationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "formation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load formation"})
		return
	}

	if err := h.formationRepo.ReserveSeat(formation.ID); err != nil {
		if errors.Is(err, repository.ErrNoSeats) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []string{"no seats available for this formation"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reserve seat"})
		return
	}

	ins := &models.Inscription{
		Prenom:        req.Prenom,
		Nom:           req.Nom,
		Email:         req.Email,
		Telephone:     req.Telephone,
		DateNaissance: naissance,
		Message:       req.Message,
		Statut:        domain.InscriptionEnAttente,
		FormationID:   formation.ID,
	}
	if err := h.repo.Create(ins); err != nil {
		_ = h.formationRepo.ReleaseSeat(formation.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create inscription"})
		return
	}

	vars := templateVars(ins, formation)
	_ = h.mailer.SendTemplate(domain.TemplateConfirmationInscription, ins.Email, vars)
	if h.settings.Enabled(domain.SettingNotificationsEmail) {
		_ = h.mailer.SendTemplate(domain.TemplateNotificationAdmin, h.adminEmail, vars)
	}

	c.JSON(http.StatusCreated, ins)
}

func (h *InscriptionHandler) List(c *gin.Context) {
	formationID, _ := strconv.ParseUint(c.Query("formationId"), 10, 64)
	statut := c.Query("statut")
	if statut != "" && !domain.InscriptionStatuses[statut] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid statut"})
		return
	}
	list, err := h.repo.List(uint(formationID), statut)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list inscriptions"})
		return
	}
	c.JSON(http.StatusOK, list)
}

type updateStatusRequest struct {
	Statut string `json:"statut" binding:"required"`
}

// UpdateStatus transitions an inscription; moving to ACCEPTEE or REFUSEE
// notifies the registrant with the matching template. Seat counts are not
// re-validated here.
func (h *InscriptionHandler) UpdateStatus(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.InscriptionStatuses[req.Statut] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid statut"})
		return
	}
	ins, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load inscription"})
		return
	}
	previous := ins.Statut
	if err := h.repo.UpdateStatus(ins.ID, req.Statut); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update inscription"})
		return
	}
	ins.Statut = req.Statut

	if previous != req.Statut {
		vars := templateVars(ins, ins.Formation)
		switch req.Statut {
		case domain.InscriptionAcceptee:
			_ = h.mailer.SendTemplate(domain.TemplateInscriptionAcceptee, ins.Email, vars)
		case domain.InscriptionRefusee:
			_ = h.mailer.SendTemplate(domain.TemplateInscriptionRefusee, ins.Email, vars)
		}
	}
	c.JSON(http.StatusOK, ins)
}

// Delete removes an inscription. An accepted one held a confirmed seat, so
// the seat is released and the registrant is told the booking was cancelled;
// any other status leaves the count untouched.
func (h *InscriptionHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	ins, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load inscription"})
		return
	}
	wasAccepted := ins.Statut == domain.InscriptionAcceptee
	if wasAccepted {
		_ = h.formationRepo.ReleaseSeat(ins.FormationID)
	}
	if err := h.repo.Delete(ins.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete inscription"})
		return
	}
	if wasAccepted {
		_ = h.mailer.SendTemplate(domain.TemplateAnnulationInscription, ins.Email, templateVars(ins, ins.Formation))
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func templateVars(ins *models.Inscription, f *models.Formation) map[string]string {
	vars := map[string]string{
		"prenom": ins.Prenom,
		"nom":    ins.Nom,
		"email":  ins.Email,
	}
	if f != nil {
		vars["formation"] = f.Titre
		vars["date"] = f.DateDebut.Format("02/01/2006")
	}
	return vars
}
