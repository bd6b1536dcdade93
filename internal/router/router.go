package router

import (
	"time"

	"github.com/manu1624/saborovejero/internal/config"
	"github.com/manu1624/saborovejero/internal/handler"
	"github.com/manu1624/saborovejero/internal/infra"
	"github.com/manu1624/saborovejero/internal/middleware"
	"github.com/manu1624/saborovejero/internal/repository"
	"github.com/manu1624/saborovejero/internal/service"
	"github.com/manu1624/saborovejero/internal/worker"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	printer := infra.NewLogPrinter()

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	utensilRepo := repository.NewUtensilRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	cashRepo := repository.NewCashRepository(db)
	reportRepo := repository.NewReportRepository(db)
	stockMovementRepo := repository.NewStockMovementRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	stockSvc := service.NewStockService(productRepo, stockMovementRepo)
	productSvc := service.NewProductService(productRepo, stockSvc)
	utensilSvc := service.NewUtensilService(utensilRepo)
	menuSvc := service.NewMenuService(menuRepo, productRepo)
	cashSvc := service.NewCashService(cashRepo, dispatcher)
	saleSvc := service.NewSaleService(saleRepo, menuSvc, stockSvc, cashSvc, printer, cfg.BusinessName)
	reportSvc := service.NewReportService(reportRepo, cashRepo, saleRepo, menuRepo, mailer, cfg.BusinessName, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc, stockSvc)
	utensilsH := handler.NewUtensilsHandler(utensilSvc)
	menuH := handler.NewMenuHandler(menuSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	cashH := handler.NewCashHandler(cashSvc)
	reportsH := handler.NewReportsHandler(reportSvc, dispatcher)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes. Roles: owner, cashier — declared per-endpoint.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		anyRole := middleware.RequireRole("owner", "cashier")
		ownerOnly := middleware.RequireRole("owner")

		v1.GET("/usuarios", ownerOnly, authH.ListUsers)

		// Inventory products (ingredients)
		v1.GET("/productos", anyRole, productsH.List)
		v1.GET("/productos/alertas", anyRole, productsH.Alerts)
		v1.GET("/productos/:id", anyRole, productsH.Get)
		v1.GET("/productos/:id/movimientos", anyRole, productsH.Movements)
		v1.PATCH("/productos/:id/stock", anyRole, productsH.AdjustStock)
		prods := v1.Group("/productos", ownerOnly)
		{
			prods.POST("", productsH.Create)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Delete)
		}

		// Equipment
		v1.GET("/utensilios", anyRole, utensilsH.List)
		v1.GET("/utensilios/:id", anyRole, utensilsH.Get)
		v1.PATCH("/utensilios/:id/cantidad", anyRole, utensilsH.AdjustQuantity)
		utensils := v1.Group("/utensilios", ownerOnly)
		{
			utensils.POST("", utensilsH.Create)
			utensils.PUT("/:id", utensilsH.Update)
			utensils.DELETE("/:id", utensilsH.Delete)
		}

		// Menu (sellable items with recipes)
		v1.GET("/menu", anyRole, menuH.List)
		v1.GET("/menu/:id", anyRole, menuH.Get)
		v1.GET("/menu/:id/disponibilidad", anyRole, menuH.Feasibility)
		menu := v1.Group("/menu", ownerOnly)
		{
			menu.POST("", menuH.Create)
			menu.PUT("/:id", menuH.Update)
			menu.DELETE("/:id", menuH.Delete)
		}

		// Sales
		v1.POST("/ventas", anyRole, salesH.RecordSale)
		v1.GET("/ventas", anyRole, salesH.List)
		v1.GET("/ventas/:id", anyRole, salesH.Get)
		v1.PATCH("/ventas/:id/cancelar", ownerOnly, salesH.Cancel)
		v1.DELETE("/ventas/:id", ownerOnly, salesH.Delete)

		// Cash register
		caja := v1.Group("/caja")
		{
			caja.POST("/abrir", anyRole, cashH.Open)
			caja.POST("/cerrar", anyRole, cashH.Close)
			caja.GET("/actual", anyRole, cashH.Current)
			caja.GET("/balance", anyRole, cashH.Balance)
			caja.POST("/movimiento", anyRole, cashH.RecordMovement)
			caja.GET("/historial", ownerOnly, cashH.History)
			caja.GET("/:id", anyRole, cashH.Get)
			caja.GET("/:id/movimientos", anyRole, cashH.Movements)
		}

		// Daily reports
		reports := v1.Group("/reportes", ownerOnly)
		{
			reports.GET("", reportsH.List)
			reports.POST("/generar", reportsH.Generate)
			reports.GET("/:id", reportsH.Get)
			reports.POST("/:id/enviar", reportsH.Send)
		}
	}

	return r
}
