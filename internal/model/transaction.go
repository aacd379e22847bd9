package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes service billing from counter sales.
type TransactionType string

const (
	TransactionService TransactionType = "Service"
	TransactionRetail  TransactionType = "Retail"
)

// TransactionItem is one line of a recorded transaction.
type TransactionItem struct {
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Price int64  `json:"price"`
}

// Transaction is an append-only record of a completed monetary event.
// Once recorded it is never updated or deleted; corrections require
// compensating entries.
type Transaction struct {
	ID      uuid.UUID         `json:"id"`
	Date    time.Time         `json:"date"`
	Total   int64             `json:"total"`
	Items   []TransactionItem `json:"items"`
	Type    TransactionType   `json:"type"`
	RefCode string            `json:"ref_code"`
}
