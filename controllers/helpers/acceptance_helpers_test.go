package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Draxsd3/controle-aceites/models"
)

func validParams() AcceptanceParams {
	return AcceptanceParams{
		OperationDate:   "2024-01-15",
		OperationNumber: "OP-1",
		Payer:           "Empresa A",
		Payee:           "Empresa B",
		Amount:          decimal.NewFromInt(15000),
		Status:          models.StatusAceiteOK,
		Channel:         "PIX",
	}
}

func TestBuildAcceptance(t *testing.T) {
	errs := new(Errors)

	acceptance := validParams().BuildAcceptance(errs)
	require.Equal(t, 0, errs.Size(), "unexpected errors: %v", errs.Errors)
	require.NotNil(t, acceptance)
	assert.Equal(t, "2024-01-15", acceptance.OperationDate.Format(models.DateISO))
	assert.Equal(t, "PIX", acceptance.Channel.String)
}

func TestBuildAcceptanceBrazilianDate(t *testing.T) {
	params := validParams()
	params.OperationDate = "15/01/2024"

	errs := new(Errors)
	acceptance := params.BuildAcceptance(errs)
	require.NotNil(t, acceptance)
	assert.Equal(t, "2024-01-15", acceptance.OperationDate.Format(models.DateISO))
}

func TestBuildAcceptanceInvalidDate(t *testing.T) {
	params := validParams()
	params.OperationDate = "not-a-date"

	errs := new(Errors)
	assert.Nil(t, params.BuildAcceptance(errs))
	assert.Contains(t, errs.Errors, "acceptance.invalid_operation_date")
}

func TestBuildAcceptanceDispensadoDropsChannel(t *testing.T) {
	params := validParams()
	params.Status = models.StatusDispensado
	params.Channel = "PIX"

	errs := new(Errors)
	acceptance := params.BuildAcceptance(errs)
	require.Equal(t, 0, errs.Size(), "unexpected errors: %v", errs.Errors)
	require.NotNil(t, acceptance)
	assert.False(t, acceptance.Channel.Valid)
}

func TestBuildAcceptanceChannelRequired(t *testing.T) {
	params := validParams()
	params.Channel = ""

	errs := new(Errors)
	assert.Nil(t, params.BuildAcceptance(errs))
	assert.Contains(t, errs.Errors, "acceptance.channel_required")
}

func TestBuildAcceptanceRejectsUnknownStatus(t *testing.T) {
	params := validParams()
	params.Status = "PENDENTE"

	errs := new(Errors)
	assert.Nil(t, params.BuildAcceptance(errs))
	assert.Contains(t, errs.Errors, "acceptance.invalid_status")
}

func TestBuildAcceptanceRejectsZeroAmount(t *testing.T) {
	params := validParams()
	params.Amount = decimal.Zero

	errs := new(Errors)
	assert.Nil(t, params.BuildAcceptance(errs))
	assert.Contains(t, errs.Errors, "acceptance.non_positive_amount")
}
