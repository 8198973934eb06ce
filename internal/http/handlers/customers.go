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

type customerPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	IDCardNumber string `json:"idCardNumber"`
	Address      string `json:"address"`
}

// GET /api/customers?q=budi
func GetCustomers(c *gin.Context) {
	customers, err := (repositories.CustomerRepository{}).List(c.Query("q"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data pelanggan", err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// POST /api/customers dan PUT /api/customers/:id
func SaveCustomer(c *gin.Context) {
	var payload customerPayload
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

	customer := domain.Customer{
		ID:           id,
		Name:         strings.TrimSpace(payload.Name),
		Phone:        strings.TrimSpace(payload.Phone),
		IDCardNumber: payload.IDCardNumber,
		Address:      payload.Address,
	}
	if err := (repositories.CustomerRepository{}).Upsert(customer); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan pelanggan", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DELETE /api/customers/:id
func DeleteCustomer(c *gin.Context) {
	if err := (repositories.CustomerRepository{}).Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "pelanggan"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus pelanggan", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pelanggan dihapus"})
}
