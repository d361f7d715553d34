package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/farhatamiine/restaurent-menu/pkg/resp"
	"github.com/farhatamiine/restaurent-menu/services"
	"github.com/farhatamiine/restaurent-menu/utils"
)

type ShopController struct {
	Service *services.ShopService
}

func NewShopController(service *services.ShopService) *ShopController {
	return &ShopController{Service: service}
}

// GET /owner/shops
func (ctl *ShopController) List(c *gin.Context) {
	shops, err := ctl.Service.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, shops)
}

// POST /owner/shops
func (ctl *ShopController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	shop, err := ctl.Service.Create(utils.CurrentUserID(c), req.Name, req.Type)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, shop)
}

// PATCH /owner/shops/:id/theme
func (ctl *ShopController) UpdateTheme(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		ThemeConfig json.RawMessage `json:"themeConfig" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.UpdateTheme(utils.CurrentUserID(c), uint(id), req.ThemeConfig); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "theme updated"})
}
