package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/farhatamiine/restaurent-menu/pkg/apperr"
	"github.com/farhatamiine/restaurent-menu/pkg/resp"
	"github.com/farhatamiine/restaurent-menu/repository"
	"github.com/farhatamiine/restaurent-menu/services"
	"github.com/farhatamiine/restaurent-menu/utils"
)

// MenuController serves the admin menu builder: nested menu reads, category
// CRUD and reordering.
type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /owner/shops/:id/menu
func (ctl *MenuController) GetMenu(c *gin.Context) {
	shopID, _ := strconv.Atoi(c.Param("id"))

	categories, err := ctl.Service.GetMenu(utils.CurrentUserID(c), uint(shopID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": categories})
}

// POST /owner/shops/:id/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	shopID, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Name string `json:"name" binding:"required"`
		Icon string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := ctl.Service.CreateCategory(utils.CurrentUserID(c), uint(shopID), req.Name, req.Icon)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /owner/categories/:id
func (ctl *MenuController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Name string `json:"name" binding:"required"`
		Icon string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.UpdateCategory(utils.CurrentUserID(c), uint(id), req.Name, req.Icon); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category updated"})
}

// DELETE /owner/categories/:id
func (ctl *MenuController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.DeleteCategory(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

// PUT /owner/shops/:id/categories/order
//
// Body: the full ordered sequence of {id, order_index} pairs after the drag.
// The submitted array order is authoritative; positions are rewritten from it
// server-side. A partial fallback failure is logged and still answered with
// success — the client applied the order optimistically and a rollback would
// be worse than the divergence.
func (ctl *MenuController) ReorderCategories(c *gin.Context) {
	shopID, _ := strconv.Atoi(c.Param("id"))

	var updates []repository.OrderUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ids := make([]uint, len(updates))
	for i, u := range updates {
		ids[i] = u.ID
	}

	err := ctl.Service.ReorderCategories(utils.CurrentUserID(c), uint(shopID), ids)
	var partial *apperr.PartialReorder
	if errors.As(err, &partial) {
		log.Printf("reorder categories shop=%d: applied %d/%d rows: %v", shopID, partial.Applied, partial.Total, partial.Err)
		resp.OK(c, gin.H{"message": "order saved"})
		return
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order saved"})
}
