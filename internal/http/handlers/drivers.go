package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type driverPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Image     string `json:"image"`
	DailyRate int64  `json:"dailyRate"`
}

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	drivers, err := (repositories.DriverRepository{}).List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data sopir", err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// POST /api/drivers dan PUT /api/drivers/:id
func SaveDriver(c *gin.Context) {
	var payload driverPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	id := c.Param("id")
	if id == "" {
		id = strings.TrimSpace(payload.ID)
	}
	if id == "" {
		id = uuid.NewString()
	}

	driver := domain.Driver{
		ID:        id,
		Name:      strings.TrimSpace(payload.Name),
		Phone:     strings.TrimSpace(payload.Phone),
		Image:     payload.Image,
		DailyRate: payload.DailyRate,
	}
	if err := (repositories.DriverRepository{}).Upsert(driver); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan sopir", err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	if err := (repositories.DriverRepository{}).Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "sopir"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus sopir", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sopir dihapus"})
}
