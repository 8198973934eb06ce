package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/repositories"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type highSeasonPayload struct {
	ID            string `json:"id"`
	StartDate     string `json:"startDate" binding:"required"`
	EndDate       string `json:"endDate" binding:"required"`
	PriceIncrease int64  `json:"priceIncrease"`
}

// GET /api/high-seasons
func GetHighSeasons(c *gin.Context) {
	seasons, err := (repositories.HighSeasonRepository{}).List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data high season", err)
		return
	}
	c.JSON(http.StatusOK, seasons)
}

// POST /api/high-seasons dan PUT /api/high-seasons/:id
func SaveHighSeason(c *gin.Context) {
	var payload highSeasonPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	start, err := utils.ParseInstant(payload.StartDate)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "startDate", Msg: "format tanggal tidak valid"})
		return
	}
	end, err := utils.ParseInstant(payload.EndDate)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "endDate", Msg: "format tanggal tidak valid"})
		return
	}
	if !end.After(start) {
		RespondDomainError(c, domain.ValidationError{Field: "endDate", Msg: "tanggal selesai harus setelah tanggal mulai"})
		return
	}
	if payload.PriceIncrease < 0 {
		RespondDomainError(c, domain.ValidationError{Field: "priceIncrease", Msg: "tidak boleh negatif"})
		return
	}

	id := c.Param("id")
	if id == "" {
		id = strings.TrimSpace(payload.ID)
	}
	if id == "" {
		id = uuid.NewString()
	}

	hs := domain.HighSeason{
		ID:            id,
		StartDate:     start,
		EndDate:       end,
		PriceIncrease: payload.PriceIncrease,
	}
	if err := (repositories.HighSeasonRepository{}).Upsert(hs); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan high season", err)
		return
	}
	c.JSON(http.StatusOK, hs)
}

// DELETE /api/high-seasons/:id
func DeleteHighSeason(c *gin.Context) {
	if err := (repositories.HighSeasonRepository{}).Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "high season"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus high season", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "High season dihapus"})
}
