package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/config"
	h "github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/http/handlers"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.GET("", h.GetBookings)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.POST("", h.CreateBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.POST("/availability", h.CheckBookingAvailability)
		bookings.POST("/quote", h.QuoteBooking)
		bookings.POST("/:id/checklist", h.SaveBookingChecklist)
		bookings.POST("/:id/complete", h.CompleteBooking)
		bookings.DELETE("/:id", auth, middleware.RequireRoles("superadmin"), h.DeleteBooking)
		bookings.GET("/:id/invoice", h.GetBookingInvoicePDF)
		bookings.GET("/:id/receipt", h.GetBookingReceiptPDF)
		bookings.GET("/:id/whatsapp", h.GetBookingWhatsAppMessage)

		// Cars
		cars := api.Group("/cars")
		cars.GET("", h.GetCars)
		cars.GET("/:id", h.GetCarByID)
		cars.POST("", h.SaveCar)
		cars.PUT("/:id", h.SaveCar)
		cars.DELETE("/:id", h.DeleteCar)

		// Drivers
		drivers := api.Group("/drivers")
		drivers.GET("", h.GetDrivers)
		drivers.POST("", h.SaveDriver)
		drivers.PUT("/:id", h.SaveDriver)
		drivers.DELETE("/:id", h.DeleteDriver)

		// Customers
		customers := api.Group("/customers")
		customers.GET("", h.GetCustomers)
		customers.POST("", h.SaveCustomer)
		customers.PUT("/:id", h.SaveCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)

		// Partners
		partners := api.Group("/partners")
		partners.GET("", h.GetPartners)
		partners.POST("", h.SavePartner)
		partners.PUT("/:id", h.SavePartner)
		partners.DELETE("/:id", h.DeletePartner)

		// High seasons
		highSeasons := api.Group("/high-seasons")
		highSeasons.GET("", h.GetHighSeasons)
		highSeasons.POST("", h.SaveHighSeason)
		highSeasons.PUT("/:id", h.SaveHighSeason)
		highSeasons.DELETE("/:id", h.DeleteHighSeason)

		// Transactions
		transactions := api.Group("/transactions")
		transactions.GET("", h.GetTransactions)
		transactions.POST("", h.CreateTransaction)
		transactions.PUT("/:id/approve", h.ApproveTransaction)
		transactions.PUT("/:id/reject", h.RejectTransaction)
		transactions.DELETE("/:id", h.DeleteTransaction)

		// Settings
		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.SaveSettings)

		// Reports
		reports := api.Group("/reports")
		reports.GET("/finance", h.GetFinanceReport)
		reports.GET("/finance/export", h.ExportFinanceReport)
		reports.GET("/fleet", h.GetFleetReport)
	}

	return r
}
