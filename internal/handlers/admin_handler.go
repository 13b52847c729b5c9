package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trimandtone/booking-api/internal/audit"
	"github.com/trimandtone/booking-api/internal/httperr"
	"github.com/trimandtone/booking-api/internal/httpresp"
	"github.com/trimandtone/booking-api/internal/middleware"
	"github.com/trimandtone/booking-api/internal/models"
	"github.com/trimandtone/booking-api/internal/store"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	store *store.Store
	logs  *audit.Logger
	audit *audit.Dispatcher
}

func NewAdminHandler(st *store.Store, logger *audit.Logger, dispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{store: st, logs: logger, audit: dispatcher}
}

// ======================================================
// SHOP MODERATION
// ======================================================

// ListShops returns every shop regardless of status; ?status=pending backs
// the approval queue.
func (h *AdminHandler) ListShops(c *gin.Context) {
	status := c.Query("status")

	shops := h.store.Shops()
	if status != "" {
		filtered := []models.Shop{}
		for _, s := range shops {
			if s.Status == status {
				filtered = append(filtered, s)
			}
		}
		shops = filtered
	}

	httpresp.List(c, shops)
}

func (h *AdminHandler) ApproveShop(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetShop(id); !ok {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	h.store.ApproveShop(id)

	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextUserID),
		Action:   "shop_approved",
		Entity:   "shop",
		EntityID: id,
	})

	shop, _ := h.store.GetShop(id)
	c.JSON(http.StatusOK, shop)
}

func (h *AdminHandler) RejectShop(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.store.GetShop(id); !ok {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	h.store.RejectShop(id)

	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextUserID),
		Action:   "shop_rejected",
		Entity:   "shop",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// AUDIT LOGS
// ======================================================

func (h *AdminHandler) AuditLogs(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs := h.logs.List(action, entity, limit)

	c.JSON(http.StatusOK, gin.H{
		"limit": limit,
		"total": len(logs),
		"logs":  logs,
	})
}
