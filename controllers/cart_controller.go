package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/7pessoal-source/noir-menu-v2/pkg/resp"
	"github.com/7pessoal-source/noir-menu-v2/services"
	"github.com/7pessoal-source/noir-menu-v2/utils"
)

type CartController struct {
	Carts *services.CartService
	Sync  *services.SyncService
}

func NewCartController(carts *services.CartService, sync *services.SyncService) *CartController {
	return &CartController{Carts: carts, Sync: sync}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	resp.OK(c, h.Carts.Get(sid))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, ok := h.Sync.Snapshot().Catalog.ProductByID(body.ProductID)
	if !ok {
		resp.NotFound(c, "product not found")
		return
	}
	resp.Created(c, h.Carts.Add(sid, p))
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		ProductID uint `json:"productId" binding:"required"`
		Qty       int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Carts.UpdateQuantity(sid, body.ProductID, body.Qty))
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var body struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Carts.Remove(sid, body.ProductID))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	h.Carts.Clear(sid)
	resp.OK(c, gin.H{"cleared": true})
}
