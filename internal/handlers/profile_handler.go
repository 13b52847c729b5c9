package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trimandtone/booking-api/internal/audit"
	"github.com/trimandtone/booking-api/internal/httpresp"
	"github.com/trimandtone/booking-api/internal/middleware"
	"github.com/trimandtone/booking-api/internal/models"
	"github.com/trimandtone/booking-api/internal/store"
)

type ProfileHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewProfileHandler(st *store.Store, dispatcher *audit.Dispatcher) *ProfileHandler {
	return &ProfileHandler{store: st, audit: dispatcher}
}

type UpdateProfileRequest struct {
	FirstName    *string                           `json:"first_name"`
	LastName     *string                           `json:"last_name"`
	Bio          *string                           `json:"bio"`
	Specialties  *string                           `json:"specialties"`
	Availability map[string]models.DayAvailability `json:"availability"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.store.BarberProfile())
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	profile := h.store.UpdateBarberProfile(store.ProfilePatch{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Bio:          req.Bio,
		Specialties:  req.Specialties,
		Availability: req.Availability,
	})

	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextUserID),
		Action:   "profile_updated",
		Entity:   "barber_profile",
		EntityID: profile.ID,
	})

	c.JSON(http.StatusOK, profile)
}
