package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trimandtone/booking-api/internal/audit"
	"github.com/trimandtone/booking-api/internal/config"
	"github.com/trimandtone/booking-api/internal/handlers"
	"github.com/trimandtone/booking-api/internal/middleware"
	"github.com/trimandtone/booking-api/internal/models"
	"github.com/trimandtone/booking-api/internal/store"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New()
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(st, cfg, auditDispatcher)
	shopHandler := handlers.NewShopHandler(st, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(st, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(st, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(st, auditLogger, auditDispatcher)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC SHOP DISCOVERY
		// ------------------------------
		api.GET("/shops", shopHandler.Search)
		api.GET("/shops/:id", shopHandler.Get)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", authHandler.Me)

			secured.PATCH("/appointments/:id/status",
				middleware.RequireRole(models.RoleBarber, models.RoleCustomer),
				appointmentHandler.UpdateStatus,
			)

			// ------------------------------
			// CUSTOMER DASHBOARD
			// ------------------------------
			customer := secured.Group("/")
			customer.Use(middleware.RequireRole(models.RoleCustomer))
			{
				customer.POST("/me/appointments", appointmentHandler.Create)
				customer.GET("/me/appointments", appointmentHandler.ListMine)
			}

			// ------------------------------
			// BARBER DASHBOARD
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.RequireRole(models.RoleBarber))
			{
				barber.POST("/me/shop", shopHandler.CreateMyShop)
				barber.GET("/me/shop", shopHandler.GetMyShop)
				barber.GET("/me/shop/bookings", shopHandler.MyShopBookings)

				barber.GET("/me/profile", profileHandler.Get)
				barber.PATCH("/me/profile", profileHandler.Update)
			}

			// ------------------------------
			// ADMIN DASHBOARD
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/shops", adminHandler.ListShops)
				admin.PATCH("/shops/:id/approve", adminHandler.ApproveShop)
				admin.DELETE("/shops/:id", adminHandler.RejectShop)

				admin.GET("/audit-logs", adminHandler.AuditLogs)
			}
		}
	}
}
