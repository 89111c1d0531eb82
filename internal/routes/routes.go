package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaCutsHQ/barber-dashboard/internal/audit"
	"github.com/NovaCutsHQ/barber-dashboard/internal/blob"
	"github.com/NovaCutsHQ/barber-dashboard/internal/cache"
	"github.com/NovaCutsHQ/barber-dashboard/internal/config"
	"github.com/NovaCutsHQ/barber-dashboard/internal/handlers"
	infraRepo "github.com/NovaCutsHQ/barber-dashboard/internal/infra/repository"
	"github.com/NovaCutsHQ/barber-dashboard/internal/middleware"
	ucBooking "github.com/NovaCutsHQ/barber-dashboard/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	bookingCache *cache.BookingCache,
	uploader *blob.Uploader,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var bookingCacheIface ucBooking.Cache
	if bookingCache != nil {
		bookingCacheIface = bookingCache
	}

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	listBookingsUC := ucBooking.NewList(bookingRepo, bookingCacheIface)

	transitionBookingUC := ucBooking.NewTransition(
		bookingRepo,
		bookingCacheIface,
		auditDispatcher,
	)

	deleteBookingUC := ucBooking.NewDelete(
		bookingRepo,
		bookingCacheIface,
		auditDispatcher,
	)

	addNoteUC := ucBooking.NewAddNote(
		bookingRepo,
		bookingCacheIface,
		auditDispatcher,
	)

	analyticsUC := ucBooking.NewAnalytics(bookingRepo, bookingCacheIface)
	overviewUC := ucBooking.NewOverview(bookingRepo, bookingCacheIface)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		listBookingsUC,
		transitionBookingUC,
		deleteBookingUC,
		addNoteUC,
	)

	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUC, overviewUC)

	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, uploader, auditDispatcher)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	appWebHandler := handlers.NewAppWebHandler()

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	const loginPath = "/web/app/login"

	r.GET(loginPath, appWebHandler.LoginPage)

	webApp := r.Group("/web/app")
	webApp.Use(middleware.RequireTokenCookie(loginPath))
	{
		webApp.GET("/dashboard", appWebHandler.Dashboard)
		webApp.GET("/bookings", appWebHandler.Bookings)
		webApp.GET("/analytics", appWebHandler.Analytics)
		webApp.GET("/services", appWebHandler.Services)
		webApp.GET("/settings", appWebHandler.Settings)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.List)
			secured.GET("/me/bookings/today", bookingHandler.Today)
			secured.GET("/me/bookings/:id", bookingHandler.Get)
			secured.GET("/me/bookings/:id/conversation", bookingHandler.Conversation)
			secured.PATCH("/me/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.POST("/me/bookings/:id/notes", bookingHandler.AddNote)
			secured.DELETE("/me/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// ANALYTICS / DASHBOARD
			// ------------------------------
			secured.GET("/me/analytics", analyticsHandler.Get)
			secured.GET("/me/dashboard", analyticsHandler.Overview)

			// ------------------------------
			// STAFF
			// ------------------------------
			secured.GET("/me/barbers", barberHandler.List)
			secured.POST("/me/barbers", barberHandler.Create)
			secured.PATCH("/me/barbers/:id", barberHandler.Update)
			secured.DELETE("/me/barbers/:id", barberHandler.Delete)

			// ------------------------------
			// SERVICES / STYLES
			// ------------------------------
			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.POST("/me/services/:id/styles", serviceHandler.CreateStyle)
			secured.PATCH("/me/styles/:styleId", serviceHandler.UpdateStyle)
			secured.DELETE("/me/styles/:styleId", serviceHandler.DeleteStyle)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
