package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trimandtone/booking-api/internal/audit"
	domain "github.com/trimandtone/booking-api/internal/domain/appointment"
	"github.com/trimandtone/booking-api/internal/httperr"
	"github.com/trimandtone/booking-api/internal/httpresp"
	"github.com/trimandtone/booking-api/internal/middleware"
	"github.com/trimandtone/booking-api/internal/store"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewAppointmentHandler(st *store.Store, dispatcher *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{store: st, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ShopID       string   `json:"shop_id" binding:"required"`
	ServiceName  string   `json:"service_name" binding:"required"`
	ServiceNames []string `json:"service_names"`
	Price        string   `json:"price" binding:"required"`
	Date         string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string   `json:"time" binding:"required"` // HH:mm
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE (CUSTOMER)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	customerID := c.GetString(middleware.ContextUserID)
	customerName := c.GetString(middleware.ContextUserName)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	// The barber identity on a booking comes from the shop at creation time.
	shop, ok := h.store.GetShop(req.ShopID)
	if !ok {
		httperr.BadRequest(c, "shop_not_found", "Shop not found.")
		return
	}

	ap := h.store.AddAppointment(store.NewAppointment{
		ShopID:       shop.ID,
		ShopName:     shop.Name,
		BarberID:     shop.OwnerID,
		BarberName:   shop.OwnerName,
		CustomerID:   customerID,
		CustomerName: customerName,
		ServiceName:  req.ServiceName,
		ServiceNames: req.ServiceNames,
		Price:        req.Price,
		Date:         req.Date,
		Time:         req.Time,
	})

	h.audit.Dispatch(audit.Event{
		Actor:    customerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: gin.H{"shop_id": shop.ID, "service": req.ServiceName},
	})

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (CUSTOMER)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	customerID := c.GetString(middleware.ContextUserID)

	httpresp.List(c, h.store.GetCustomerBookings(customerID))
}

// ======================================================
// STATUS (BARBER / CUSTOMER)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status data.")
		return
	}

	if err := domain.KnownStatus(req.Status); err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
			return
		}
		httperr.Internal(c, "status_update_failed", "Could not update the appointment.")
		return
	}

	if _, ok := h.store.GetAppointment(id); !ok {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	h.store.UpdateAppointmentStatus(id, req.Status)

	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextUserID),
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: id,
		Metadata: gin.H{"status": req.Status},
	})

	ap, _ := h.store.GetAppointment(id)
	c.JSON(http.StatusOK, ap)
}
