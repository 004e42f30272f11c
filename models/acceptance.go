package models

import (
	"time"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/Draxsd3/controle-aceites/controllers/entities"
	"github.com/Draxsd3/controle-aceites/models/concerns"
)

var precision_validator = &concerns.PrecisionValidator{}

type AcceptanceStatus = string

const (
	StatusAceiteOK       AcceptanceStatus = "ACEITE OK"
	StatusEmissaoOK      AcceptanceStatus = "EMISSÃO OK"
	StatusDispensado     AcceptanceStatus = "DISPENSADO"
	StatusPreFaturamento AcceptanceStatus = "PRÉ FATURAMENTO"
)

var Statuses = []AcceptanceStatus{
	StatusAceiteOK,
	StatusEmissaoOK,
	StatusDispensado,
	StatusPreFaturamento,
}

const (
	DateISO = "2006-01-02"
	DateBR  = "02/01/2006"
)

type Acceptance struct {
	ID              int64            `json:"id" gorm:"primaryKey"`
	OperationDate   time.Time        `json:"-" gorm:"type:date;not null"`
	OperationNumber string           `json:"operationNumber" gorm:"not null" validate:"required"`
	Payer           string           `json:"payer" gorm:"not null" validate:"required"`
	Payee           string           `json:"payee" gorm:"not null" validate:"required"`
	Amount          decimal.Decimal  `json:"amount" gorm:"type:numeric(14,2);not null" validate:"AmountVaildator"`
	Status          AcceptanceStatus `json:"status" gorm:"not null" validate:"required|StatusVaildator"`
	Channel         null.String      `json:"channel" validate:"ChannelVaildator"`
	CreatedAt       time.Time        `json:"createdAt"`
}

func (a Acceptance) Messages() map[string]string {
	invalid_message := "acceptance.invalid_{field}"

	return validate.MS{
		"required":         invalid_message,
		"AmountVaildator":  "acceptance.non_positive_amount",
		"StatusVaildator":  "acceptance.invalid_status",
		"ChannelVaildator": "acceptance.channel_required",
	}
}

func (a Acceptance) AmountVaildator(Amount decimal.Decimal) bool {
	if !Amount.IsPositive() {
		return false
	}

	// BRL cents only
	return precision_validator.LessThanOrEqTo(Amount, 2)
}

func (a Acceptance) StatusVaildator(Status AcceptanceStatus) bool {
	for _, s := range Statuses {
		if s == Status {
			return true
		}
	}

	return false
}

// Channel is mandatory unless the record is waived. A waived record never
// carries one.
func (a Acceptance) ChannelVaildator(Channel null.String) bool {
	if a.Status == StatusDispensado {
		return !Channel.Valid || len(Channel.String) == 0
	}

	return Channel.Valid && len(Channel.String) > 0
}

func (a Acceptance) IsDispensado() bool {
	return a.Status == StatusDispensado
}

// DisplayChannel is what exports render in the Canal column.
func (a Acceptance) DisplayChannel() string {
	if a.IsDispensado() {
		return "N/A"
	}

	return a.Channel.String
}

func (a *Acceptance) ToJSON() entities.AcceptanceEntity {
	var channel *string
	if a.Channel.Valid {
		channel = &a.Channel.String
	}

	return entities.AcceptanceEntity{
		ID:              a.ID,
		OperationDate:   a.OperationDate.Format(DateISO),
		OperationNumber: a.OperationNumber,
		Payer:           a.Payer,
		Payee:           a.Payee,
		Amount:          a.Amount,
		Status:          a.Status,
		Channel:         channel,
		CreatedAt:       a.CreatedAt,
	}
}

// ParseOperationDate accepts the canonical YYYY-MM-DD form or the DD/MM/YYYY
// form the UI sends.
func ParseOperationDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateISO, value); err == nil {
		return t, nil
	}

	return time.Parse(DateBR, value)
}
