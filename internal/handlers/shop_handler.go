package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trimandtone/booking-api/internal/audit"
	"github.com/trimandtone/booking-api/internal/httperr"
	"github.com/trimandtone/booking-api/internal/httpresp"
	"github.com/trimandtone/booking-api/internal/middleware"
	"github.com/trimandtone/booking-api/internal/models"
	"github.com/trimandtone/booking-api/internal/store"
)

type ShopHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewShopHandler(st *store.Store, dispatcher *audit.Dispatcher) *ShopHandler {
	return &ShopHandler{store: st, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
}

type CreateShopRequest struct {
	Name        string         `json:"name" binding:"required"`
	Location    string         `json:"location" binding:"required"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	Services    []ServiceInput `json:"services" binding:"required,min=1,dive"`
}

// ======================================================
// PUBLIC
// ======================================================

// Search backs the home page: only active shops, query against name or tags,
// optional location filter ("all" disables it).
func (h *ShopHandler) Search(c *gin.Context) {
	query := c.Query("query")
	location := c.DefaultQuery("location", "all")

	httpresp.List(c, h.store.SearchShops(query, location))
}

func (h *ShopHandler) Get(c *gin.Context) {
	shop, ok := h.store.GetShop(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	httpresp.OK(c, shop)
}

// ======================================================
// BARBER (OWN SHOP)
// ======================================================

func (h *ShopHandler) CreateMyShop(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)
	ownerName := c.GetString(middleware.ContextUserName)

	if _, ok := h.store.GetBarberShop(ownerID); ok {
		httperr.Conflict(c, "shop_already_exists", "You already have a shop application.")
		return
	}

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid shop data.")
		return
	}

	services := make([]models.Service, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, models.Service{
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			Duration:    s.Duration,
		})
	}

	shop := h.store.AddShop(store.NewShop{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		OwnerID:     ownerID,
		OwnerName:   ownerName,
		Tags:        req.Tags,
		Services:    services,
	})

	h.audit.Dispatch(audit.Event{
		Actor:    ownerID,
		Action:   "shop_submitted",
		Entity:   "shop",
		EntityID: shop.ID,
		Metadata: gin.H{"name": shop.Name},
	})

	httpresp.Created(c, shop)
}

func (h *ShopHandler) GetMyShop(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	shop, ok := h.store.GetBarberShop(ownerID)
	if !ok {
		httperr.NotFound(c, "shop_not_found", "You have no shop yet.")
		return
	}

	httpresp.OK(c, shop)
}

func (h *ShopHandler) MyShopBookings(c *gin.Context) {
	ownerID := c.GetString(middleware.ContextUserID)

	shop, ok := h.store.GetBarberShop(ownerID)
	if !ok {
		httperr.NotFound(c, "shop_not_found", "You have no shop yet.")
		return
	}

	httpresp.List(c, h.store.GetShopBookings(shop.ID))
}
