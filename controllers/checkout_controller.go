package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/pkg/resp"
	"github.com/7pessoal-source/noir-menu-v2/services"
	"github.com/7pessoal-source/noir-menu-v2/utils"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(svc *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: svc}
}

// POST /checkout
// 422 carries the ordered violation list; 200 carries the wa.me deep link
// the frontend opens. The cart is already cleared when 200 goes out.
func (h *CheckoutController) Submit(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var form entity.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, violations := h.Svc.Submit(sid, form)
	if len(violations) > 0 {
		resp.Violations(c, violations)
		return
	}
	resp.OK(c, result)
}
