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

type ItemController struct {
	Service *services.ItemService
}

func NewItemController(service *services.ItemService) *ItemController {
	return &ItemController{Service: service}
}

// POST /owner/categories/:id/items
func (ctl *ItemController) Create(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Param("id"))

	var req services.ItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Create(utils.CurrentUserID(c), uint(categoryID), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /owner/items/:id
func (ctl *ItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.ItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Update(utils.CurrentUserID(c), uint(id), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /owner/items/:id/availability
func (ctl *ItemController) SetAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.SetAvailability(utils.CurrentUserID(c), uint(id), *req.IsAvailable)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /owner/items/:id
func (ctl *ItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item deleted"})
}

// PUT /owner/categories/:id/items/order
//
// Same payload shape as category reorder: the ordered {id, order_index}
// sequence after the drag.
func (ctl *ItemController) Reorder(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Param("id"))

	var updates []repository.OrderUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ids := make([]uint, len(updates))
	for i, u := range updates {
		ids[i] = u.ID
	}

	err := ctl.Service.Reorder(utils.CurrentUserID(c), uint(categoryID), ids)
	var partial *apperr.PartialReorder
	if errors.As(err, &partial) {
		log.Printf("reorder items category=%d: applied %d/%d rows: %v", categoryID, partial.Applied, partial.Total, partial.Err)
		resp.OK(c, gin.H{"message": "order saved"})
		return
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order saved"})
}
