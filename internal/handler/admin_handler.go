package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sauvetage/internal/database"
	"sauvetage/internal/domain"
	"sauvetage/internal/middleware"
	"sauvetage/internal/repository"
	"sauvetage/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminHandler covers staff account management, dashboard stats and the
// database reset. Account management and reset are SUPER_ADMIN only (routed).
type AdminHandler struct {
	db              *gorm.DB
	adminRepo       *repository.AdminRepository
	authSvc         *service.AuthService
	formationRepo   *repository.FormationRepository
	inscriptionRepo *repository.InscriptionRepository
	imageRepo       *repository.ImageRepository
	documentRepo    *repository.DocumentRepository
	log             *zap.Logger
}

func NewAdminHandler(db *gorm.DB, adminRepo *repository.AdminRepository, authSvc *service.AuthService,
	formationRepo *repository.FormationRepository, inscriptionRepo *repository.InscriptionRepository,
	imageRepo *repository.ImageRepository, documentRepo *repository.DocumentRepository, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		db:              db,
		adminRepo:       adminRepo,
		authSvc:         authSvc,
		formationRepo:   formationRepo,
		inscriptionRepo: inscriptionRepo,
		imageRepo:       imageRepo,
		documentRepo:    documentRepo,
		log:             log,
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	formations, _ := h.formationRepo.Count()
	pending, _ := h.inscriptionRepo.CountByStatus(domain.InscriptionEnAttente)
	accepted, _ := h.inscriptionRepo.CountByStatus(domain.InscriptionAcceptee)
	images, _ := h.imageRepo.Count()
	documents, _ := h.documentRepo.Count()
	downloads, _ := h.documentRepo.TotalDownloads()
	c.JSON(http.StatusOK, gin.H{
		"formations":            formations,
		"inscriptionsEnAttente": pending,
		"inscriptionsAcceptees": accepted,
		"images":                images,
		"documents":             documents,
		"telechargements":       downloads,
	})
}

func (h *AdminHandler) ListAdmins(c *gin.Context) {
	list, err := h.adminRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list admins"})
		return
	}
	c.JSON(http.StatusOK, list)
}

type createAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Prenom   string `json:"prenom" binding:"required"`
	Nom      string `json:"nom" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=ADMIN SUPER_ADMIN"`
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.authSvc.CreateAdmin(req.Email, req.Password, req.Prenom, req.Nom, req.Role)
	if err != nil {
		if err == service.ErrEmailExists {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create admin"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

type updateAdminRequest struct {
	Prenom string `json:"prenom" binding:"required"`
	Nom    string `json:"nom" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=ADMIN SUPER_ADMIN"`
}

func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	a, err := h.adminRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load admin"})
		return
	}
	var req updateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Demoting the last super-admin would lock everyone out of this section.
	if a.Role == domain.RoleSuperAdmin && req.Role != domain.RoleSuperAdmin {
		count, _ := h.adminRepo.CountSuperAdmins()
		if count <= 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot demote the last super-admin"})
			return
		}
	}
	a.Prenom = req.Prenom
	a.Nom = req.Nom
	a.Role = req.Role
	if err := h.adminRepo.Update(a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update admin"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if uint(id) == middleware.GetAdminID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account"})
		return
	}
	a, err := h.adminRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load admin"})
		return
	}
	if err := h.adminRepo.Delete(a.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete admin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ResetDatabase empties content tables and re-seeds defaults. Admin accounts
// survive.
func (h *AdminHandler) ResetDatabase(c *gin.Context) {
	h.log.Warn("database reset requested", zap.Uint("admin_id", middleware.GetAdminID(c)))
	if err := database.Reset(h.db); err != nil {
		h.log.Error("database reset failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
