package router

import (
	"time"

	"sauvetage/config"
	"sauvetage/internal/domain"
	"sauvetage/internal/handler"
	"sauvetage/internal/middleware"
	"sauvetage/internal/repository"
	"sauvetage/internal/service"
	"sauvetage/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, store *storage.Store, sender service.Sender, captcha service.CaptchaVerifier, log *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	imageRepo := repository.NewImageRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	formationRepo := repository.NewFormationRepository(db)
	inscriptionRepo := repository.NewInscriptionRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	templateRepo := repository.NewEmailTemplateRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, adminRepo)
	mailer := service.NewMailService(templateRepo, sender, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, adminRepo, int(cfg.JWT.Expiry.Seconds()))
	galleryHandler := handler.NewGalleryHandler(imageRepo, store, cfg.Uploads.MaxImageBytes)
	documentHandler := handler.NewDocumentHandler(documentRepo, store, cfg.Uploads.MaxDocumentBytes)
	formationHandler := handler.NewFormationHandler(formationRepo)
	inscriptionHandler := handler.NewInscriptionHandler(inscriptionRepo, formationRepo, settingRepo, mailer, cfg.AdminNotificationEmail)
	newsHandler := handler.NewNewsHandler(newsRepo)
	templateHandler := handler.NewTemplateHandler(templateRepo)
	settingsHandler := handler.NewSettingsHandler(settingRepo)
	contactHandler := handler.NewContactHandler(contactRepo, settingRepo, mailer, captcha, cfg.AdminNotificationEmail)
	adminHandler := handler.NewAdminHandler(db, adminRepo, authSvc, formationRepo, inscriptionRepo, imageRepo, documentRepo, log)

	authMw := middleware.AuthRequired(&cfg.JWT)
	publicWriteMw := middleware.RateLimit(middleware.NewInMemoryRateLimiter(20, time.Minute))

	// Uploaded files live under the public web root.
	r.Static("/uploads", cfg.Uploads.Dir)

	api := r.Group("/api")
	{
		api.POST("/auth/login", publicWriteMw, authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		api.GET("/galerie", galleryHandler.List)
		api.GET("/documents", documentHandler.List)
		api.GET("/documents/:id/download", documentHandler.Download)
		api.GET("/formations", formationHandler.List)
		api.GET("/formations/:id", formationHandler.Get)
		api.GET("/actualites", newsHandler.ListPublic)

		api.POST("/inscriptions", publicWriteMw, inscriptionHandler.Create)
		api.POST("/contact", publicWriteMw, contactHandler.Contact)
		api.POST("/signalement", publicWriteMw, contactHandler.Signalement)

		admin := api.Group("/admin")
		admin.Use(authMw)
		{
			admin.GET("/me", authHandler.Me)
			admin.PATCH("/change-password", authHandler.ChangePassword)
			admin.GET("/stats", adminHandler.Stats)

			admin.POST("/galerie", galleryHandler.Create)
			admin.PUT("/galerie/:id", galleryHandler.Update)
			admin.DELETE("/galerie/:id", galleryHandler.Delete)

			admin.POST("/documents", documentHandler.Create)
			admin.PUT("/documents/:id", documentHandler.Update)
			admin.DELETE("/documents/:id", documentHandler.Delete)

			admin.POST("/formations", formationHandler.Create)
			admin.PUT("/formations/:id", formationHandler.Update)
			admin.DELETE("/formations/:id", formationHandler.Delete)

			admin.GET("/inscriptions", inscriptionHandler.List)
			admin.PUT("/inscriptions/:id/statut", inscriptionHandler.UpdateStatus)
			admin.DELETE("/inscriptions/:id", inscriptionHandler.Delete)

			admin.GET("/actualites", newsHandler.ListAll)
			admin.POST("/actualites", newsHandler.Create)
			admin.PUT("/actualites/:id", newsHandler.Update)
			admin.DELETE("/actualites/:id", newsHandler.Delete)

			admin.GET("/templates", templateHandler.List)
			admin.POST("/templates", templateHandler.Create)
			admin.PUT("/templates/:id", templateHandler.Update)
			admin.DELETE("/templates/:id", templateHandler.Delete)
			admin.POST("/templates/:id/preview", templateHandler.Preview)

			admin.GET("/parametres", settingsHandler.GetAll)
			admin.PUT("/parametres", settingsHandler.Update)

			admin.GET("/messages", contactHandler.List)
			admin.PUT("/messages/:id/lu", contactHandler.MarkRead)
			admin.DELETE("/messages/:id", contactHandler.Delete)

			super := admin.Group("")
			super.Use(middleware.RequireRole(domain.RoleSuperAdmin))
			{
				super.GET("/utilisateurs", adminHandler.ListAdmins)
				super.POST("/utilisateurs", adminHandler.CreateAdmin)
				super.PUT("/utilisateurs/:id", adminHandler.UpdateAdmin)
				super.DELETE("/utilisateurs/:id", adminHandler.DeleteAdmin)
				super.POST("/database/reset", adminHandler.ResetDatabase)
			}
		}
	}

	return r
}
