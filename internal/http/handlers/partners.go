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

type partnerPayload struct {
	ID                  string `json:"id"`
	Name                string `json:"name" binding:"required"`
	Phone               string `json:"phone"`
	BankAccount         string `json:"bankAccount"`
	RevenueSharePercent int64  `json:"revenueSharePercent"`
	Notes               string `json:"notes"`
}

// GET /api/partners
func GetPartners(c *gin.Context) {
	partners, err := (repositories.PartnerRepository{}).List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data mitra", err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

// POST /api/partners dan PUT /api/partners/:id
func SavePartner(c *gin.Context) {
	var payload partnerPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if payload.RevenueSharePercent < 0 || payload.RevenueSharePercent > 100 {
		RespondDomainError(c, domain.ValidationError{Field: "revenueSharePercent", Msg: "harus di antara 0 dan 100"})
		return
	}

	id := c.Param("id")
	if id == "" {
		id = strings.TrimSpace(payload.ID)
	}
	if id == "" {
		id = uuid.NewString()
	}

	partner := domain.Partner{
		ID:                  id,
		Name:                strings.TrimSpace(payload.Name),
		Phone:               strings.TrimSpace(payload.Phone),
		BankAccount:         payload.BankAccount,
		RevenueSharePercent: payload.RevenueSharePercent,
		Notes:               payload.Notes,
	}
	if err := (repositories.PartnerRepository{}).Upsert(partner); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan mitra", err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// DELETE /api/partners/:id
func DeletePartner(c *gin.Context) {
	if err := (repositories.PartnerRepository{}).Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "mitra"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus mitra", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mitra dihapus"})
}
