package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/domain"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/repositories"
	"github.com/adiorta-glitch/Sewa-Kendaraan-sub000/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type transactionPayload struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Amount       any    `json:"amount"`
	Type         string `json:"type" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Description  string `json:"description"`
	BookingID    string `json:"bookingId"`
	ReceiptImage string `json:"receiptImage"`
	Status       string `json:"status"`
	RelatedID    string `json:"relatedId"`
}

// GET /api/transactions?month=8&year=2026&type=Expense&category=BBM&bookingId=x
func GetTransactions(c *gin.Context) {
	filter := repositories.TransactionFilter{
		Month:     queryInt(c, "month"),
		Year:      queryInt(c, "year"),
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		BookingID: c.Query("bookingId"),
	}
	txs, err := (repositories.TransactionRepository{}).List(filter)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data transaksi", err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

// POST /api/transactions
func CreateTransaction(c *gin.Context) {
	var payload transactionPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	txType := domain.TransactionType(payload.Type)
	if txType != domain.TxIncome && txType != domain.TxExpense {
		RespondDomainError(c, domain.ValidationError{Field: "type", Msg: "harus Income atau Expense"})
		return
	}

	amount := utils.ParseAmount(amountString(payload.Amount))
	if amount <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "amount", Msg: "harus lebih dari 0"})
		return
	}

	date := time.Now()
	if strings.TrimSpace(payload.Date) != "" {
		parsed, err := utils.ParseInstant(payload.Date)
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "date", Msg: "format tanggal tidak valid"})
			return
		}
		date = parsed
	}

	status := domain.TransactionStatus(payload.Status)
	if status != domain.TxPending {
		status = domain.TxPaid
	}

	id := strings.TrimSpace(payload.ID)
	if id == "" {
		id = uuid.NewString()
	}

	t := domain.Transaction{
		ID:           id,
		Date:         date,
		Amount:       amount,
		Type:         txType,
		Category:     strings.TrimSpace(payload.Category),
		Description:  payload.Description,
		BookingID:    payload.BookingID,
		ReceiptImage: payload.ReceiptImage,
		Status:       status,
		RelatedID:    payload.RelatedID,
	}
	if err := (repositories.TransactionRepository{}).Create(t); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan transaksi", err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// PUT /api/transactions/:id/approve
func ApproveTransaction(c *gin.Context) {
	setTransactionStatus(c, domain.TxPaid, "Transaksi disetujui")
}

// PUT /api/transactions/:id/reject deletes the pending record outright.
func RejectTransaction(c *gin.Context) {
	repo := repositories.TransactionRepository{}
	id := c.Param("id")

	t, err := repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "transaksi"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal mengambil transaksi", err)
		return
	}
	if t.Status != domain.TxPending {
		RespondDomainError(c, domain.ConflictError{Msg: "hanya transaksi pending yang bisa ditolak"})
		return
	}
	if err := repo.Delete(id); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menolak transaksi", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaksi ditolak"})
}

func setTransactionStatus(c *gin.Context, status domain.TransactionStatus, message string) {
	repo := repositories.TransactionRepository{}
	id := c.Param("id")

	t, err := repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "transaksi"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal mengambil transaksi", err)
		return
	}
	if t.Status != domain.TxPending {
		RespondDomainError(c, domain.ConflictError{Msg: "transaksi sudah diproses"})
		return
	}
	if err := repo.UpdateStatus(id, status); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal memperbarui transaksi", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// DELETE /api/transactions/:id
func DeleteTransaction(c *gin.Context) {
	if err := (repositories.TransactionRepository{}).Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "transaksi"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus transaksi", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaksi dihapus"})
}
