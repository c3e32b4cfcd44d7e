package router

import (
	"time"

	"tiendapos/internal/config"
	"tiendapos/internal/handler"
	"tiendapos/internal/middleware"
	"tiendapos/internal/repository"
	"tiendapos/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	creditRepo := repository.NewCreditEntryRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, movementRepo, auditRepo, rdb)
	saleSvc := service.NewSaleService(saleRepo, productRepo, movementRepo, creditRepo, customerRepo, auditRepo)
	customerSvc := service.NewCustomerService(customerRepo, creditRepo, auditRepo)
	reportSvc := service.NewReportService(saleRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	creditH := handler.NewCreditHandler(saleSvc, customerSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	ledgerH := handler.NewLedgerHandler(movementRepo, auditRepo)
	priceH := handler.NewPriceCheckHandler(productRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/auth/refresh", authH.Refresh)
	r.GET("/price/:barcode", priceH.GetByBarcode)

	// Protected routes — the SPA obtains a token at login and sends it on
	// every call.
	api := r.Group("", middleware.JWTAuth(cfg.JWTSecret))
	{
		api.GET("/products", productsH.List)
		api.POST("/products", productsH.Create)
		api.PUT("/products/:id", productsH.Update)
		api.DELETE("/products/:id", productsH.Delete)

		api.POST("/sales", salesH.Register)

		api.GET("/customers/debts", customersH.ListDebts)
		api.POST("/customers", customersH.Create)
		api.DELETE("/customers/:id", customersH.Delete)
		api.GET("/customers/:id/movements", customersH.Movements)

		api.POST("/credit/bulk", creditH.Bulk)
		api.POST("/credit/payment", creditH.Payment)

		api.GET("/reports/sales", reportsH.Sales)
		api.GET("/reports/weekly-stats", reportsH.WeeklyStats)

		api.GET("/ledger", ledgerH.Movements)
		api.GET("/audit-log", ledgerH.AuditLog)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
