package handlers

import (
	"net/http"
	"strings"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/settings
func GetSettings(c *gin.Context) {
	settings, err := (repositories.SettingsRepository{}).Get()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil pengaturan", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PUT /api/settings
func SaveSettings(c *gin.Context) {
	var payload domain.AppSettings
	if !BindJSONOrError(c, &payload) {
		return
	}

	packages := make([]string, 0, len(payload.RentalPackages))
	for _, p := range payload.RentalPackages {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			packages = append(packages, trimmed)
		}
	}
	if len(packages) == 0 {
		RespondDomainError(c, domain.ValidationError{Field: "rentalPackages", Msg: "minimal satu paket sewa"})
		return
	}
	payload.RentalPackages = packages

	if err := (repositories.SettingsRepository{}).Save(payload); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan pengaturan", err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
