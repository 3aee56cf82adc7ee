package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
	"github.com/7pessoal-source/noir-menu-v2/pkg/resp"
	"github.com/7pessoal-source/noir-menu-v2/repository"
)

// AdminController manages the catalog and both configuration
// representations. Every write ends up on the change feed, which is what
// drives the live refresh on the customer side.
type AdminController struct {
	Catalog  *repository.CatalogRepository
	Settings *repository.SettingsRepository
}

func NewAdminController(catalog *repository.CatalogRepository, settings *repository.SettingsRepository) *AdminController {
	return &AdminController{Catalog: catalog, Settings: settings}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

type categoryIn struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

// POST /admin/categories
func (h *AdminController) CreateCategory(c *gin.Context) {
	var in categoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := entity.Category{Name: in.Name, SortOrder: in.SortOrder}
	if err := h.Catalog.CreateCategory(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /admin/categories/:id
func (h *AdminController) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in categoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var cat entity.Category
	if err := h.Catalog.DB.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	cat.Name = in.Name
	cat.SortOrder = in.SortOrder
	if err := h.Catalog.UpdateCategory(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/categories/:id
func (h *AdminController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteCategory(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type productIn struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Price       money.Money `json:"price"`
	ImageURL    string      `json:"imageUrl"`
	Available   *bool       `json:"available"`
	CategoryID  uint        `json:"categoryId" binding:"required"`
}

// POST /admin/products
func (h *AdminController) CreateProduct(c *gin.Context) {
	var in productIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Price.IsNegative() {
		resp.BadRequest(c, "price must not be negative")
		return
	}

	p := entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Available:   in.Available == nil || *in.Available,
		CategoryID:  in.CategoryID,
	}
	if err := h.Catalog.CreateProduct(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /admin/products/:id
func (h *AdminController) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in productIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Price.IsNegative() {
		resp.BadRequest(c, "price must not be negative")
		return
	}

	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.ImageURL = in.ImageURL
	if in.Available != nil {
		p.Available = *in.Available
	}
	p.CategoryID = in.CategoryID

	if err := h.Catalog.UpdateProduct(p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/products/:id
func (h *AdminController) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /admin/settings
func (h *AdminController) ListSettings(c *gin.Context) {
	rows, err := h.Settings.ListSettings()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// PUT /admin/settings/:key
func (h *AdminController) PutSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		resp.BadRequest(c, "missing key")
		return
	}

	var body struct {
		Value json.RawMessage `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Settings.UpsertSetting(key, string(body.Value)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"key": key})
}

// DELETE /admin/settings/:key
func (h *AdminController) DeleteSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		resp.BadRequest(c, "missing key")
		return
	}
	if err := h.Settings.DeleteSetting(key); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": key})
}

// PUT /admin/config — the legacy single-row representation
func (h *AdminController) PutLegacyConfig(c *gin.Context) {
	var in entity.MenuConfig
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	in.ID = 0
	if err := h.Settings.SaveLegacyConfig(&in); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, in)
}
