package helpers

import (
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/Draxsd3/controle-aceites/models"
)

type AcceptanceParams struct {
	OperationDate   string          `json:"operationDate" form:"operationDate" validate:"required"`
	OperationNumber string          `json:"operationNumber" form:"operationNumber" validate:"required"`
	Payer           string          `json:"payer" form:"payer" validate:"required"`
	Payee           string          `json:"payee" form:"payee" validate:"required"`
	Amount          decimal.Decimal `json:"amount" form:"amount"`
	Status          string          `json:"status" form:"status" validate:"required"`
	Channel         string          `json:"channel" form:"channel"`
}

func (p AcceptanceParams) Messages() map[string]string {
	return validate.MS{
		"required": "acceptance.missing_{field}",
	}
}

// BuildAcceptance turns a validated request body into a model, enforcing the
// channel rule: a DISPENSADO record stores NULL whatever the client sent.
func (p AcceptanceParams) BuildAcceptance(err_src *Errors) *models.Acceptance {
	date, err := models.ParseOperationDate(p.OperationDate)
	if err != nil {
		err_src.Add("acceptance.invalid_operation_date")
		return nil
	}

	var channel null.String
	if p.Status != models.StatusDispensado {
		channel = null.StringFrom(p.Channel)
	}

	acceptance := &models.Acceptance{
		OperationDate:   date,
		OperationNumber: p.OperationNumber,
		Payer:           p.Payer,
		Payee:           p.Payee,
		Amount:          p.Amount,
		Status:          p.Status,
		Channel:         channel,
	}

	Vaildate(acceptance, err_src)

	if err_src.Size() > 0 {
		return nil
	}

	return acceptance
}
