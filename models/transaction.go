package models

import "time"

type TransactionType string
type TransactionStatus string

const (
	TransactionCredit TransactionType = "credit" // wallet recharge
	TransactionDebit  TransactionType = "debit"  // spend on an order

	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction is a wallet ledger entry, immutable once created.
type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      float64           `json:"amount"` // always positive
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Status      TransactionStatus `json:"status"`
}
