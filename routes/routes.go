package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farhatamiine/restaurent-menu/cache"
	"github.com/farhatamiine/restaurent-menu/configs"
	"github.com/farhatamiine/restaurent-menu/controllers"
	"github.com/farhatamiine/restaurent-menu/events"
	"github.com/farhatamiine/restaurent-menu/middlewares"
	"github.com/farhatamiine/restaurent-menu/repository"
	"github.com/farhatamiine/restaurent-menu/services"
	"github.com/farhatamiine/restaurent-menu/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.FeedHub, bus *events.Bus) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	menuCache := cache.NewMenuCache()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	shopSvc := services.NewShopService(shopRepo, menuCache)
	menuSvc := services.NewMenuService(categoryRepo, shopRepo, menuCache)
	itemSvc := services.NewItemService(itemRepo, categoryRepo, menuCache, bus)
	seedSvc := services.NewSeedService(shopRepo, categoryRepo, itemRepo, menuCache, bus)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	shopCtrl := controllers.NewShopController(shopSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	itemCtrl := controllers.NewItemController(itemSvc)
	publicCtrl := controllers.NewPublicController(shopSvc, categoryRepo, menuCache)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir, cfg.PublicBase)
	seedCtrl := controllers.NewSeedController(seedSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Owner (menu builder)
	owner := r.Group("/owner", middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin"))
	{
		owner.GET("/shops", shopCtrl.List)
		owner.POST("/shops", shopCtrl.Create)
		owner.PATCH("/shops/:id/theme", shopCtrl.UpdateTheme)
		owner.GET("/shops/:id/menu", menuCtrl.GetMenu)
		owner.POST("/shops/:id/categories", menuCtrl.CreateCategory)
		owner.PUT("/shops/:id/categories/order", menuCtrl.ReorderCategories)
		owner.POST("/shops/:id/demo", seedCtrl.SeedDemoMenu)

		owner.PATCH("/categories/:id", menuCtrl.UpdateCategory)
		owner.DELETE("/categories/:id", menuCtrl.DeleteCategory)
		owner.POST("/categories/:id/items", itemCtrl.Create)
		owner.PUT("/categories/:id/items/order", itemCtrl.Reorder)

		owner.PATCH("/items/:id", itemCtrl.Update)
		owner.PATCH("/items/:id/availability", itemCtrl.SetAvailability)
		owner.DELETE("/items/:id", itemCtrl.Delete)

		owner.POST("/uploads", uploadCtrl.UploadImage)
	}

	// Public (customer menu)
	r.GET("/shops/:slug", publicCtrl.GetShop)
	r.GET("/shops/:slug/menu", publicCtrl.GetMenu)

	// Change feed: one shared stream, no per-shop filter. Clients drop events
	// for items they don't hold.
	r.GET("/ws/menu", hub.HandleWebSocket)
}
