package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func reportPeriod(c *gin.Context) (int, int) {
	month := queryInt(c, "month")
	year := queryInt(c, "year")
	now := time.Now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year <= 0 {
		year = now.Year()
	}
	return month, year
}

// GET /api/reports/finance?month=8&year=2026
func GetFinanceReport(c *gin.Context) {
	month, year := reportPeriod(c)
	report, err := reportsService().GetFinanceReport(month, year)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/reports/fleet
func GetFleetReport(c *gin.Context) {
	report, err := reportsService().GetFleetReport()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/reports/finance/export
func ExportFinanceReport(c *gin.Context) {
	month, year := reportPeriod(c)
	data, filename, err := reportsService().ExportFinanceCSV(month, year)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
