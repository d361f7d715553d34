package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/farhatamiine/restaurent-menu/pkg/resp"
	"github.com/farhatamiine/restaurent-menu/services"
	"github.com/farhatamiine/restaurent-menu/utils"
)

type SeedController struct {
	Service *services.SeedService
}

func NewSeedController(service *services.SeedService) *SeedController {
	return &SeedController{Service: service}
}

// POST /owner/shops/:id/demo
func (ctl *SeedController) SeedDemoMenu(c *gin.Context) {
	shopID, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.SeedDemoMenu(utils.CurrentUserID(c), uint(shopID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "demo menu created"})
}
