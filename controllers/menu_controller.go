package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/7pessoal-source/noir-menu-v2/configs"
	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/pkg/resp"
	"github.com/7pessoal-source/noir-menu-v2/services"
)

type MenuController struct{ Sync *services.SyncService }

func NewMenuController(sync *services.SyncService) *MenuController {
	return &MenuController{Sync: sync}
}

// GET /menu
// Always serves the last good snapshot; a failed refresh only shows up in
// syncState/syncError so the frontend can offer a retry without blanking
// the catalog.
func (h *MenuController) Get(c *gin.Context) {
	snap := h.Sync.Snapshot()

	cfg := snap.Config
	if cfg == nil {
		cfg = configs.DefaultRestaurantConfig()
	}

	out := gin.H{
		"categories": snap.Catalog.Categories,
		"config":     cfg,
		"version":    snap.Version,
		"syncState":  h.Sync.State().String(),
	}
	if err := h.Sync.LastError(); err != nil {
		out["syncError"] = err.Error()
	}
	resp.OK(c, out)
}

// GET /payment-methods
func (h *MenuController) PaymentMethods(c *gin.Context) {
	methods := make([]entity.PaymentMethod, len(entity.PaymentMethods))
	for i, m := range entity.PaymentMethods {
		m.Icon = entity.NormalizeIcon(m.Icon)
		methods[i] = m
	}
	resp.OK(c, methods)
}

// POST /menu/refresh
func (h *MenuController) Refresh(c *gin.Context) {
	h.Sync.Refresh()
	resp.OK(c, gin.H{"syncState": h.Sync.State().String()})
}
