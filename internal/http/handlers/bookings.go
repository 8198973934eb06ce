package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/repositories"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/services"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/utils"

	"github.com/gin-gonic/gin"
)

type bookingPayload struct {
	CarID         string `json:"carId"`
	DriverID      string `json:"driverId"`
	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	ActualReturnDate string `json:"actualReturnDate"`

	PackageType string `json:"packageType"`
	Destination string `json:"destination"`

	DeliveryFee      int64  `json:"deliveryFee"`
	OvertimeFee      int64  `json:"overtimeFee"`
	BaseRateOverride *int64 `json:"baseRateOverride"`
	AmountPaid       any    `json:"amountPaid"`
	ReceiptImage     string `json:"receiptImage"`
	Notes            string `json:"notes"`

	SecurityDepositType        string `json:"securityDepositType"`
	SecurityDepositValue       int64  `json:"securityDepositValue"`
	SecurityDepositDescription string `json:"securityDepositDescription"`
	SecurityDepositImage       string `json:"securityDepositImage"`
}

func (p bookingPayload) toForm() (services.BookingForm, error) {
	f := services.BookingForm{
		CarID:         strings.TrimSpace(p.CarID),
		DriverID:      strings.TrimSpace(p.DriverID),
		CustomerID:    strings.TrimSpace(p.CustomerID),
		CustomerName:  p.CustomerName,
		CustomerPhone: p.CustomerPhone,

		PackageType: strings.TrimSpace(p.PackageType),
		Destination: strings.TrimSpace(p.Destination),

		DeliveryFee:      p.DeliveryFee,
		OvertimeFee:      p.OvertimeFee,
		BaseRateOverride: p.BaseRateOverride,
		AmountPaid:       amountString(p.AmountPaid),
		ReceiptImage:     p.ReceiptImage,
		Notes:            p.Notes,

		SecurityDepositType:        p.SecurityDepositType,
		SecurityDepositValue:       p.SecurityDepositValue,
		SecurityDepositDescription: p.SecurityDepositDescription,
		SecurityDepositImage:       p.SecurityDepositImage,
	}

	if s := strings.TrimSpace(p.StartDate); s != "" {
		t, err := utils.ParseInstant(s)
		if err != nil {
			return f, domain.ValidationError{Field: "startDate", Msg: "format tanggal tidak valid"}
		}
		f.StartDate = t
	}
	if s := strings.TrimSpace(p.EndDate); s != "" {
		t, err := utils.ParseInstant(s)
		if err != nil {
			return f, domain.ValidationError{Field: "endDate", Msg: "format tanggal tidak valid"}
		}
		f.EndDate = t
	}
	if s := strings.TrimSpace(p.ActualReturnDate); s != "" {
		t, err := utils.ParseInstant(s)
		if err != nil {
			return f, domain.ValidationError{Field: "actualReturnDate", Msg: "format tanggal tidak valid"}
		}
		f.ActualReturnDate = &t
	}
	return f, nil
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	bookings, err := (repositories.BookingRepository{}).List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data booking", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	b, err := (repositories.BookingRepository{}).GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "booking"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	saveBooking(c, "")
}

// PUT /api/bookings/:id
func UpdateBooking(c *gin.Context) {
	saveBooking(c, c.Param("id"))
}

func saveBooking(c *gin.Context, editingID string) {
	var payload bookingPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	form, err := payload.toForm()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	result, err := bookingService(c).SaveBooking(form, editingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	status := http.StatusOK
	if editingID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"message":     result.Message,
		"booking":     result.Booking,
		"transaction": result.Transaction,
	})
}

type availabilityPayload struct {
	CarID            string `json:"carId"`
	DriverID         string `json:"driverId"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	ExcludeBookingID string `json:"excludeBookingId"`
}

// POST /api/bookings/availability
// Pre-check used by the booking form while the user changes dates.
func CheckBookingAvailability(c *gin.Context) {
	var payload availabilityPayload
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

	err = bookingService(c).CheckAvailability(payload.CarID, payload.DriverID, start, end, payload.ExcludeBookingID)
	if err != nil {
		if domain.IsConflict(err) {
			c.JSON(http.StatusOK, gin.H{"available": false, "reason": err.Error()})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true})
}

// POST /api/bookings/quote
// Prices the form without persisting.
func QuoteBooking(c *gin.Context) {
	var payload bookingPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	form, err := payload.toForm()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	breakdown, err := bookingService(c).Quote(form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

type checklistPayload struct {
	Odometer         int    `json:"odometer"`
	FuelLevel        string `json:"fuelLevel"`
	SpeedometerImage string `json:"speedometerImage"`
	FrontImage       string `json:"frontImage"`
	BackImage        string `json:"backImage"`
	LeftImage        string `json:"leftImage"`
	RightImage       string `json:"rightImage"`
	Notes            string `json:"notes"`
	CheckedBy        string `json:"checkedBy"`
}

// POST /api/bookings/:id/checklist
func SaveBookingChecklist(c *gin.Context) {
	var payload checklistPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	b, err := bookingService(c).SaveChecklist(c.Param("id"), services.ChecklistForm{
		Odometer:         payload.Odometer,
		FuelLevel:        payload.FuelLevel,
		SpeedometerImage: payload.SpeedometerImage,
		FrontImage:       payload.FrontImage,
		BackImage:        payload.BackImage,
		LeftImage:        payload.LeftImage,
		RightImage:       payload.RightImage,
		Notes:            payload.Notes,
		CheckedBy:        payload.CheckedBy,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Checklist tersimpan",
		"booking": b,
	})
}

// POST /api/bookings/:id/complete
func CompleteBooking(c *gin.Context) {
	b, err := bookingService(c).CompleteBooking(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking selesai",
		"booking": b,
	})
}

// DELETE /api/bookings/:id (superadmin only, gated at the router)
func DeleteBooking(c *gin.Context) {
	if err := bookingService(c).DeleteBooking(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking dihapus"})
}

// GET /api/bookings/:id/invoice
func GetBookingInvoicePDF(c *gin.Context) {
	pdf, filename, err := docsService(c).GenerateInvoice(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/bookings/:id/receipt
func GetBookingReceiptPDF(c *gin.Context) {
	pdf, filename, err := docsService(c).GenerateReceipt(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/bookings/:id/whatsapp
func GetBookingWhatsAppMessage(c *gin.Context) {
	msg, err := docsService(c).GenerateWhatsAppMessage(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
