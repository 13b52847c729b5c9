package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/trimandtone/booking-api/internal/audit"
	"github.com/trimandtone/booking-api/internal/config"
	"github.com/trimandtone/booking-api/internal/httperr"
	"github.com/trimandtone/booking-api/internal/middleware"
	"github.com/trimandtone/booking-api/internal/models"
	"github.com/trimandtone/booking-api/internal/store"
)

type AuthHandler struct {
	store  *store.Store
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(st *store.Store, cfg *config.Config, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{store: st, config: cfg, audit: dispatcher}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=customer barber admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user := h.store.Signup(req.Name, email, req.Password, req.Role)
	if user == nil {
		httperr.Conflict(c, "email_already_registered", "This email is already registered.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create a session.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: user.ID,
		Metadata: gin.H{"role": user.Role},
	})

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user := h.store.Login(email, req.Password)
	if user == nil {
		// unknown email and wrong password are deliberately the same answer
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create a session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout()
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    c.GetString(middleware.ContextUserID),
			"name":  c.GetString(middleware.ContextUserName),
			"email": c.GetString(middleware.ContextUserEmail),
			"role":  c.GetString(middleware.ContextUserRole),
		},
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
