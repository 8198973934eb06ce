package handlers

import (
	"net/http"
	"strconv"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/http/middleware"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/repositories"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:     repositories.BookingRepository{},
		Cars:         repositories.CarRepository{},
		Drivers:      repositories.DriverRepository{},
		HighSeasons:  repositories.HighSeasonRepository{},
		Transactions: repositories.TransactionRepository{},
		Settings:     repositories.SettingsRepository{},
		RequestID:    middleware.GetRequestID(c),
	}
}

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		Bookings:  repositories.BookingRepository{},
		Cars:      repositories.CarRepository{},
		Drivers:   repositories.DriverRepository{},
		Settings:  repositories.SettingsRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func reportsService() services.ReportsService {
	return services.ReportsService{
		TransactionRepo: repositories.TransactionRepository{},
		BookingRepo:     repositories.BookingRepository{},
		CarRepo:         repositories.CarRepository{},
	}
}

// queryInt reads an integer query param, 0 when absent or malformed.
func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}

// amountString normalizes a JSON field that may arrive as number or string.
func amountString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatInt(int64(val), 10)
	case nil:
		return ""
	default:
		return ""
	}
}
