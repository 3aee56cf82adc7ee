package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/7pessoal-source/noir-menu-v2/controllers"
	"github.com/7pessoal-source/noir-menu-v2/middlewares"
	"github.com/7pessoal-source/noir-menu-v2/repository"
	"github.com/7pessoal-source/noir-menu-v2/services"
	"github.com/7pessoal-source/noir-menu-v2/ws"
)

// App bundles the wired services so main can start the background loops.
type App struct {
	Sync *services.SyncService
	Hub  *ws.MenuHub
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB) *App {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// data source + change feed
	feed := repository.NewChangeFeed()
	catalogRepo := repository.NewCatalogRepository(db, feed)
	settingsRepo := repository.NewSettingsRepository(db, feed)

	// services
	syncSvc := services.NewSyncService(catalogRepo, settingsRepo, feed)
	cartSvc := services.NewCartService()
	checkoutSvc := services.NewCheckoutService(cartSvc, syncSvc)

	// realtime push
	hub := ws.NewMenuHub()
	syncSvc.OnApply(hub.NotifySnapshot)

	// controllers
	menuCtrl := controllers.NewMenuController(syncSvc)
	cartCtrl := controllers.NewCartController(cartSvc, syncSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	adminCtrl := controllers.NewAdminController(catalogRepo, settingsRepo)

	// Public menu
	r.GET("/menu", menuCtrl.Get)
	r.POST("/menu/refresh", menuCtrl.Refresh)
	r.GET("/payment-methods", menuCtrl.PaymentMethods)
	r.GET("/ws/menu", hub.HandleWebSocket)

	// Cart + checkout (session scoped)
	session := r.Group("/", middlewares.SessionMiddleware())
	{
		session.GET("/cart", cartCtrl.Get)
		session.POST("/cart/items", cartCtrl.Add)
		session.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		session.DELETE("/cart/items", cartCtrl.RemoveItem)
		session.DELETE("/cart", cartCtrl.Clear)

		session.POST("/checkout", checkoutCtrl.Submit)
	}

	// Admin panel API
	admin := r.Group("/admin")
	{
		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.PATCH("/categories/:id", adminCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", adminCtrl.DeleteCategory)

		admin.POST("/products", adminCtrl.CreateProduct)
		admin.PATCH("/products/:id", adminCtrl.UpdateProduct)
		admin.DELETE("/products/:id", adminCtrl.DeleteProduct)

		admin.GET("/settings", adminCtrl.ListSettings)
		admin.PUT("/settings/:key", adminCtrl.PutSetting)
		admin.DELETE("/settings/:key", adminCtrl.DeleteSetting)

		admin.PUT("/config", adminCtrl.PutLegacyConfig)
	}

	return &App{Sync: syncSvc, Hub: hub}
}
