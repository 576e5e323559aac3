package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dclhub/dcl-hub-backend/config"
	_ "github.com/dclhub/dcl-hub-backend/docs"
	"github.com/dclhub/dcl-hub-backend/internal/auditlog"
	"github.com/dclhub/dcl-hub-backend/internal/auth"
	"github.com/dclhub/dcl-hub-backend/internal/backup"
	"github.com/dclhub/dcl-hub-backend/internal/contact"
	"github.com/dclhub/dcl-hub-backend/internal/donation"
	"github.com/dclhub/dcl-hub-backend/internal/eventregistration"
	"github.com/dclhub/dcl-hub-backend/internal/events"
	"github.com/dclhub/dcl-hub-backend/internal/idgen"
	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
	"github.com/dclhub/dcl-hub-backend/internal/partnership"
	"github.com/dclhub/dcl-hub-backend/internal/reports"
	"github.com/dclhub/dcl-hub-backend/internal/submission"
	"github.com/dclhub/dcl-hub-backend/internal/volunteer"
	"github.com/dclhub/dcl-hub-backend/middleware"
)

// Infra is the shared infrastructure every module is built on.
type Infra struct {
	Store     kvstore.Store
	Publisher events.Publisher
	AuditRepo auditlog.Repository
	Backups   backup.Destination // nil disables POST /admin/backups
	IDs       idgen.Generator
}

func Setup(r *gin.Engine, cfg *config.Config, infra Infra) {
	r.Use(middleware.CORS())
	r.Use(middleware.ClientIP())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ids := infra.IDs
	if ids == nil {
		ids = idgen.NanoID{}
	}
	publisher := infra.Publisher
	if publisher == nil {
		publisher = &events.NoopPublisher{}
	}
	counter := kvstore.NewCounter(infra.Store, kvstore.ParseCounterMode(cfg.CounterMode))

	api := r.Group(cfg.ServicePrefix)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// POSTs carry the public anon key; listings are open.
	public := middleware.PublicKeyAuth(cfg)

	// ========== Audit Log ==========
	auditSvc := auditlog.NewService(infra.AuditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)
	recorder := submission.NewRecorder(auditSvc, publisher)

	// ========== Event Registrations ==========
	eventRepo := eventregistration.NewRepository(infra.Store, counter)
	eventHandler := eventregistration.NewHandler(eventregistration.NewService(eventRepo, ids, recorder))
	api.POST("/event-registration", public, eventHandler.Register)
	api.GET("/event-registrations/:eventId", eventHandler.ListByEvent)
	api.GET("/event-stats/:eventId", eventHandler.GetEventStats)

	// ========== Donations ==========
	donationRepo := donation.NewRepository(infra.Store, counter)
	donationHandler := donation.NewHandler(donation.NewService(donationRepo, ids, recorder))
	api.POST("/donation", public, donationHandler.CreateDonation)
	api.GET("/donations", donationHandler.ListDonations)
	api.GET("/campaign-stats/:campaignId", donationHandler.GetCampaignStats)

	// ========== Volunteers ==========
	volunteerRepo := volunteer.NewRepository(infra.Store)
	volunteerHandler := volunteer.NewHandler(volunteer.NewService(volunteerRepo, ids, recorder))
	api.POST("/volunteer", public, volunteerHandler.Apply)
	api.GET("/volunteers", volunteerHandler.List)

	// ========== Partnerships ==========
	partnershipRepo := partnership.NewRepository(infra.Store)
	partnershipHandler := partnership.NewHandler(partnership.NewService(partnershipRepo, ids, recorder))
	api.POST("/partnership", public, partnershipHandler.CreateInquiry)
	api.GET("/partnerships", partnershipHandler.List)

	// ========== Contact ==========
	contactRepo := contact.NewRepository(infra.Store)
	contactHandler := contact.NewHandler(contact.NewService(contactRepo, ids, recorder))
	api.POST("/contact", public, contactHandler.Submit)
	api.GET("/contacts", contactHandler.List)

	// ========== Admin ==========
	authSvc := auth.NewService(cfg)
	authHandler := auth.NewHandler(authSvc)

	admin := api.Group("/admin")
	admin.Use(middleware.RateLimiter(cfg.AdminRateLimit))
	admin.POST("/login", authHandler.Login)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuth(authSvc))
	{
		protected.GET("/audit-logs", auditHandler.GetAuditLogs)

		sources := reports.Sources{
			EventRegistrations: eventRepo,
			Donations:          donationRepo,
			Volunteers:         volunteerRepo,
			Partnerships:       partnershipRepo,
			Contacts:           contactRepo,
			AuditLogs:          auditSvc,
		}
		reportsHandler := reports.NewHandler(reports.NewService(reports.NewReportExporter(), sources.Map()))
		protected.GET("/exports/:collection", reportsHandler.Export)

		backupHandler := backup.NewHandler(backup.NewService(infra.Store, infra.Backups, cfg.BackupPrefix))
		protected.POST("/backups", backupHandler.CreateBackup)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
