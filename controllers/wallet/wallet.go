package walletControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Arnav-0606/Nsut-cater/models"
	"github.com/Arnav-0606/Nsut-cater/store"
	"github.com/Arnav-0606/Nsut-cater/telem"
)

type RechargeInput struct {
	Amount float64 `json:"amount" binding:"required"`
}

// GET /user/wallet
func GetWallet(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := s.User()
		c.JSON(http.StatusOK, gin.H{
			"balance":         user.WalletBalance,
			"total_spent":     s.TotalsByType(models.TransactionDebit),
			"total_recharged": s.TotalsByType(models.TransactionCredit),
		})
	}
}

// POST /user/wallet/recharge
// Simulates the payment gateway: after a fixed processing delay the
// amount is credited and a ledger entry recorded. There is no real
// payment integration behind this.
func Recharge(s *store.Store, delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RechargeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid amount to recharge"})
			return
		}
		if input.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid amount to recharge"})
			return
		}

		time.Sleep(delay)

		txn, err := s.Recharge(input.Amount, time.Now())
		if err != nil {
			if errors.Is(err, store.ErrInvalidAmount) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid amount to recharge"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process recharge"})
			return
		}

		telem.WalletRecharges.Inc()
		telem.WalletRechargedAmount.Add(txn.Amount)

		c.JSON(http.StatusOK, gin.H{
			"message":     fmt.Sprintf("Recharge Successful! %.0f has been added to your wallet", txn.Amount),
			"transaction": txn,
			"balance":     s.User().WalletBalance,
		})
	}
}

// GET /user/wallet/transactions
func ListTransactions(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Transactions())
	}
}

// GET /user/wallet/transactions/export
func ExportTransactions(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		txns := s.Transactions()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Transactions")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Type", "Amount", "Description", "Date", "Status"} {
			headerRow.AddCell().SetValue(h)
		}
		for _, txn := range txns {
			row := sheet.AddRow()
			row.AddCell().SetValue(txn.ID)
			row.AddCell().SetValue(string(txn.Type))
			row.AddCell().SetValue(txn.Amount)
			row.AddCell().SetValue(txn.Description)
			row.AddCell().SetValue(txn.Date.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(string(txn.Status))
		}

		c.Header("Content-Disposition", "attachment; filename=transactions.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
