package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/farhatamiine/restaurent-menu/cache"
	"github.com/farhatamiine/restaurent-menu/pkg/resp"
	"github.com/farhatamiine/restaurent-menu/repository"
	"github.com/farhatamiine/restaurent-menu/services"
)

// PublicController serves the customer-facing menu page. Reads go through the
// per-shop cache; mutations elsewhere invalidate it.
type PublicController struct {
	Shops      *services.ShopService
	Categories *repository.CategoryRepository
	Cache      *cache.MenuCache
}

func NewPublicController(shops *services.ShopService, categories *repository.CategoryRepository, menuCache *cache.MenuCache) *PublicController {
	return &PublicController{Shops: shops, Categories: categories, Cache: menuCache}
}

// GET /shops/:slug
func (ctl *PublicController) GetShop(c *gin.Context) {
	shop, err := ctl.Shops.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "shop not found")
		return
	}
	resp.OK(c, shop)
}

// GET /shops/:slug/menu
//
// Unavailable items are included: the client renders them as sold out and
// flips them live off the change feed.
func (ctl *PublicController) GetMenu(c *gin.Context) {
	shop, err := ctl.Shops.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "shop not found")
		return
	}

	if menu, ok := ctl.Cache.Get(shop.ID); ok {
		resp.OK(c, gin.H{"shop": shop, "categories": menu})
		return
	}

	menu, err := ctl.Categories.FindMenu(shop.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.Cache.Set(shop.ID, menu)

	resp.OK(c, gin.H{"shop": shop, "categories": menu})
}
