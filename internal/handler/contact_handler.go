package handler

import (
	"net/http"
	"strconv"

	"sauvetage/internal/domain"
	"sauvetage/internal/models"
	"sauvetage/internal/repository"
	"sauvetage/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	repo       *repository.ContactRepository
	settings   *repository.SettingRepository
	mailer     *service.MailService
	captcha    service.CaptchaVerifier
	adminEmail string
}

func NewContactHandler(repo *repository.ContactRepository, settings *repository.SettingRepository, mailer *service.MailService, captcha service.CaptchaVerifier, adminEmail string) *ContactHandler {
	return &ContactHandler{repo: repo, settings: settings, mailer: mailer, captcha: captcha, adminEmail: adminEmail}
}

type contactRequest struct {
	Prenom       string `json:"prenom" binding:"required"`
	Nom          string `json:"nom" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Telephone    string `json:"telephone"`
	Sujet        string `json:"sujet"`
	Message      string `json:"message" binding:"required"`
	CaptchaToken string `json:"captchaToken"`
}

// Contact handles the public contact form, Signalement the incident report
// form. Both are gated by the bot-protection token.
func (h *ContactHandler) Contact(c *gin.Context) {
	h.submit(c, domain.MessageContact, "Contact")
}

func (h *ContactHandler) Signalement(c *gin.Context) {
	h.submit(c, domain.MessageSignalement, "Signalement d'incident")
}

func (h *ContactHandler) submit(c *gin.Context, typ, defaultSujet string) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []string{err.Error()}})
		return
	}
	ok, err := h.captcha.Verify(c.Request.Context(), req.CaptchaToken, c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "captcha verification unavailable"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": []string{"captcha verification failed"}})
		return
	}
	if req.Sujet == "" {
		req.Sujet = defaultSujet
	}
	msg := &models.ContactMessage{
		Type:      typ,
		Prenom:    req.Prenom,
		Nom:       req.Nom,
		Email:     req.Email,
		Telephone: req.Telephone,
		Sujet:     req.Sujet,
		Message:   req.Message,
	}
	if err := h.repo.Create(msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save message"})
		return
	}
	// The message is stored regardless; the mail is only a notification and
	// can be switched off in the settings.
	if h.settings.Enabled(domain.SettingNotificationsEmail) {
		_ = h.mailer.SendTemplate(domain.TemplateContact, h.adminEmail, map[string]string{
			"prenom":  req.Prenom,
			"nom":     req.Nom,
			"email":   req.Email,
			"sujet":   req.Sujet,
			"message": req.Message,
		})
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ContactHandler) List(c *gin.Context) {
	typ := c.Query("type")
	if typ != "" && typ != domain.MessageContact && typ != domain.MessageSignalement {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type"})
		return
	}
	list, err := h.repo.List(typ)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list messages"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.MarkRead(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
