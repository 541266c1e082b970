package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/ivcho02/mechanic-api/internal/audit"
	"github.com/ivcho02/mechanic-api/internal/cache"
	"github.com/ivcho02/mechanic-api/internal/config"
	"github.com/ivcho02/mechanic-api/internal/handlers"
	infraRepo "github.com/ivcho02/mechanic-api/internal/infra/repository"
	"github.com/ivcho02/mechanic-api/internal/middleware"
	"github.com/ivcho02/mechanic-api/internal/quote"
	ucRepair "github.com/ivcho02/mechanic-api/internal/usecase/repair"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	mongoDB *mongo.Database,
	cfg *config.Config,
	log *logrus.Logger,
	catalog *cache.Catalog,
	archiver *quote.Archiver,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	shop := infraRepo.NewShop(mongoDB)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	renderer := quote.NewRenderer(cfg.QuoteFontPath, cfg.QuoteFontBoldPath)

	// ======================================================
	// USE CASES — REPAIRS
	// ======================================================
	listRepairsUC := ucRepair.NewListRepairs(shop)
	createRepairUC := ucRepair.NewCreateRepair(shop, auditDispatcher)
	updateRepairUC := ucRepair.NewUpdateRepair(shop, auditDispatcher)
	advanceStatusUC := ucRepair.NewAdvanceStatus(shop, auditDispatcher)
	cancelRepairUC := ucRepair.NewCancelRepair(shop, auditDispatcher)
	addServiceUC := ucRepair.NewAddService(shop, auditDispatcher)
	removeServiceUC := ucRepair.NewRemoveService(shop, auditDispatcher)
	myRepairsUC := ucRepair.NewMyRepairs(shop)
	generateQuoteUC := ucRepair.NewGenerateQuote(shop, renderer, archiver, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, shop, cfg, auditDispatcher, log)
	meHandler := handlers.NewMeHandler(db)
	profileHandler := handlers.NewProfileHandler(shop, log)

	clientHandler := handlers.NewClientHandler(shop, auditDispatcher, log)
	serviceHandler := handlers.NewServiceHandler(shop, catalog, auditDispatcher, log)

	repairHandler := handlers.NewRepairHandler(
		shop,
		auditDispatcher,
		log,
		listRepairsUC,
		createRepairUC,
		updateRepairUC,
		advanceStatusUC,
		cancelRepairUC,
		addServiceUC,
		removeServiceUC,
		myRepairsUC,
	)

	quoteHandler := handlers.NewQuoteHandler(generateQuoteUC, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/profile", profileHandler.Get)
			secured.PUT("/me/profile", profileHandler.Update)

			secured.GET("/me/repairs", repairHandler.MyRepairs)

			secured.GET("/services", serviceHandler.List)

			// ------------------------------
			// STAFF ONLY
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.AdminOnly())
			{
				staff.GET("/clients", clientHandler.List)
				staff.POST("/clients", clientHandler.Create)
				staff.GET("/clients/:id", clientHandler.Get)
				staff.PUT("/clients/:id", clientHandler.Update)
				staff.DELETE("/clients/:id", clientHandler.Delete)

				staff.POST("/services", serviceHandler.Create)
				staff.DELETE("/services/:id", serviceHandler.Delete)

				staff.GET("/repairs", repairHandler.List)
				staff.POST("/repairs", repairHandler.Create)
				staff.GET("/repairs/:id", repairHandler.Get)
				staff.PATCH("/repairs/:id", repairHandler.Update)
				staff.DELETE("/repairs/:id", repairHandler.Delete)

				staff.PATCH("/repairs/:id/advance", repairHandler.AdvanceStatus)
				staff.PATCH("/repairs/:id/cancel", repairHandler.Cancel)

				staff.POST("/repairs/:id/services", repairHandler.AddService)
				staff.DELETE("/repairs/:id/services/:serviceId", repairHandler.RemoveService)

				staff.GET("/repairs/:id/quote", quoteHandler.Download)

				staff.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
