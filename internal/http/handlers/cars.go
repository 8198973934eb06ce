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

type carPayload struct {
	ID        string           `json:"id"`
	Name      string           `json:"name" binding:"required"`
	Plate     string           `json:"plate"`
	Type      string           `json:"type"`
	Image     string           `json:"image"`
	Status    string           `json:"status"`
	Price24h  int64            `json:"price24h"`
	Pricing   map[string]int64 `json:"pricing"`
	PartnerID string           `json:"partnerId"`
}

// GET /api/cars
func GetCars(c *gin.Context) {
	cars, err := (repositories.CarRepository{}).List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data mobil", err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// GET /api/cars/:id
func GetCarByID(c *gin.Context) {
	car, err := (repositories.CarRepository{}).GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "mobil"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data mobil", err)
		return
	}
	c.JSON(http.StatusOK, car)
}

// POST /api/cars dan PUT /api/cars/:id
func SaveCar(c *gin.Context) {
	var payload carPayload
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

	status := domain.CarStatus(payload.Status)
	if status == "" {
		status = domain.CarAvailable
	}

	car := domain.Car{
		ID:        id,
		Name:      strings.TrimSpace(payload.Name),
		Plate:     strings.TrimSpace(payload.Plate),
		Type:      payload.Type,
		Image:     payload.Image,
		Status:    status,
		Price24h:  payload.Price24h,
		Pricing:   payload.Pricing,
		PartnerID: payload.PartnerID,
	}
	if err := (repositories.CarRepository{}).Upsert(car); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan mobil", err)
		return
	}
	c.JSON(http.StatusOK, car)
}

// DELETE /api/cars/:id
func DeleteCar(c *gin.Context) {
	if err := (repositories.CarRepository{}).Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "mobil"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus mobil", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mobil dihapus"})
}
