package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type AcceptanceEntity struct {
	ID              int64           `json:"id"`
	OperationDate   string          `json:"operationDate"`
	OperationNumber string          `json:"operationNumber"`
	Payer           string          `json:"payer"`
	Payee           string          `json:"payee"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	Channel         *string         `json:"channel"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// GroupEntity is one bucket of a grouped report: the literal group key, the
// per-group tallies and the member records.
type GroupEntity struct {
	Group string             `json:"group"`
	Count int                `json:"count"`
	Total decimal.Decimal    `json:"total"`
	Items []AcceptanceEntity `json:"items"`
}
