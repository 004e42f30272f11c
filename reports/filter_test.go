package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Draxsd3/controle-aceites/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Acceptance{}))

	return db
}

func seedAcceptance(t *testing.T, db *gorm.DB, date, number, payer, payee, amount, status, channel string, createdAt time.Time) models.Acceptance {
	t.Helper()

	operationDate, err := models.ParseOperationDate(date)
	require.NoError(t, err)

	record := models.Acceptance{
		OperationDate:   operationDate,
		OperationNumber: number,
		Payer:           payer,
		Payee:           payee,
		Amount:          decimal.RequireFromString(amount),
		Status:          status,
		CreatedAt:       createdAt,
	}
	if status != models.StatusDispensado {
		record.Channel = null.StringFrom(channel)
	}

	require.NoError(t, db.Create(&record).Error)

	return record
}

func seedDefaultSet(t *testing.T, db *gorm.DB) {
	t.Helper()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seedAcceptance(t, db, "2024-01-15", "OP-1", "Alfa Ltda", "Beta SA", "15000", models.StatusAceiteOK, "PIX", base)
	seedAcceptance(t, db, "2024-01-20", "OP-2", "Gama Corp", "Delta ME", "500.50", models.StatusEmissaoOK, "E-mail", base.Add(time.Hour))
	seedAcceptance(t, db, "2024-02-01", "OP-3", "Alfa Filial", "Epsilon", "10000", models.StatusDispensado, "", base.Add(2*time.Hour))
	seedAcceptance(t, db, "2024-02-10", "OP-4", "Zeta", "Beta SA", "250", models.StatusAceiteOK, "Telefone", base.Add(3*time.Hour))
}

func runFilters(t *testing.T, db *gorm.DB, filters Filters) []models.Acceptance {
	t.Helper()

	tx, err := filters.Apply(db.Model(&models.Acceptance{}))
	require.NoError(t, err)

	var records []models.Acceptance
	require.NoError(t, tx.Find(&records).Error)

	return records
}

func operationNumbers(records []models.Acceptance) []string {
	numbers := make([]string, 0, len(records))
	for _, record := range records {
		numbers = append(numbers, record.OperationNumber)
	}

	return numbers
}

func TestApplyNoFilters(t *testing.T) {
	db := testDB(t)
	seedDefaultSet(t, db)

	records := runFilters(t, db, Filters{})

	// newest first
	assert.Equal(t, []string{"OP-4", "OP-3", "OP-2", "OP-1"}, operationNumbers(records))
}

func TestApplyDateBoundsInclusive(t *testing.T) {
	db := testDB(t)
	seedDefaultSet(t, db)

	records := runFilters(t, db, Filters{StartDate: "2024-01-15", EndDate: "2024-01-15"})
	assert.Equal(t, []string{"OP-1"}, operationNumbers(records))

	records = runFilters(t, db, Filters{StartDate: "2024-01-16"})
	assert.NotContains(t, operationNumbers(records), "OP-1")
}

func TestApplyBrazilianDateInput(t *testing.T) {
	db := testDB(t)
	seedDefaultSet(t, db)

	records := runFilters(t, db, Filters{StartDate: "01/02/2024"})
	assert.Equal(t, []string{"OP-4", "OP-3"}, operationNumbers(records))
}

func TestApplyInvalidDate(t *testing.T) {
	db := testDB(t)

	_, err := Filters{StartDate: "2024/01/15"}.Apply(db.Model(&models.Acceptance{}))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "report.invalid_start_date", verr.Key)
}

func TestApplyAmountBoundsInclusive(t *testing.T) {
	db := testDB(t)
	seedDefaultSet(t, db)

	records := runFilters(t, db, Filters{MinAmount: "10000"})
	assert.ElementsMatch(t, []string{"OP-1", "OP-3"}, operationNumbers(records))

	records = runFilters(t, db, Filters{MaxAmount: "500.50"})
	assert.ElementsMatch(t, []string{"OP-2", "OP-4"}, operationNumbers(records))
}

func TestApplyInvalidAmount(t *testing.T) {
	db := testDB(t)

	_, err := Filters{MinAmount: "dez mil"}.Apply(db.Model(&models.Acceptance{}))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "report.invalid_min_amount", verr.Key)
}

func TestApplySubstringMatchesCaseInsensitive(t *testing.T) {
	db := testDB(t)
	seedDefaultSet(t, db)

	records := runFilters(t, db, Filters{Payer: "alfa"})
	assert.ElementsMatch(t, []string{"OP-1", "OP-3"}, operationNumbers(records))

	records = runFilters(t, db, Filters{Payee: "BETA"})
	assert.ElementsMatch(t, []string{"OP-1", "OP-4"}, operationNumbers(records))

	records = runFilters(t, db, Filters{Channel: "pix"})
	assert.Equal(t, []string{"OP-1"}, operationNumbers(records))
}

func TestApplyStatusSet(t *testing.T) {
	db := testDB(t)
	seedDefaultSet(t, db)

	records := runFilters(t, db, Filters{Statuses: []string{models.StatusEmissaoOK, models.StatusDispensado}})
	assert.ElementsMatch(t, []string{"OP-2", "OP-3"}, operationNumbers(records))
}

func TestApplyOperationNumberExact(t *testing.T) {
	db := testDB(t)
	seedDefaultSet(t, db)

	records := runFilters(t, db, Filters{OperationNumber: "OP-2"})
	assert.Equal(t, []string{"OP-2"}, operationNumbers(records))

	records = runFilters(t, db, Filters{OperationNumber: "OP"})
	assert.Empty(t, records)
}

func TestApplyOrderByAscending(t *testing.T) {
	db := testDB(t)
	seedDefaultSet(t, db)

	records := runFilters(t, db, Filters{OrderBy: "asc"})
	assert.Equal(t, []string{"OP-1", "OP-2", "OP-3", "OP-4"}, operationNumbers(records))
}

func TestApplyInvalidOrderBy(t *testing.T) {
	db := testDB(t)

	_, err := Filters{OrderBy: "sideways"}.Apply(db.Model(&models.Acceptance{}))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "report.invalid_order_by", verr.Key)
}

func TestApplyGroupByOrdersAscending(t *testing.T) {
	db := testDB(t)
	seedDefaultSet(t, db)

	records := runFilters(t, db, Filters{GroupBy: "status"})
	require.Len(t, records, 4)

	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(t, records[i-1].Status, records[i].Status)
	}
}

func TestApplyGroupByNoneKeepsDefaultOrder(t *testing.T) {
	db := testDB(t)
	seedDefaultSet(t, db)

	records := runFilters(t, db, Filters{GroupBy: "none"})
	assert.Equal(t, []string{"OP-4", "OP-3", "OP-2", "OP-1"}, operationNumbers(records))
}

func TestApplyUnknownGroupBy(t *testing.T) {
	db := testDB(t)

	_, err := Filters{GroupBy: "amount; DROP TABLE acceptances"}.Apply(db.Model(&models.Acceptance{}))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "report.invalid_group_by", verr.Key)
}

// Every active filter contributes exactly one bound parameter and no raw
// filter text reaches the query body.
func TestApplyBindsEveryValue(t *testing.T) {
	db := testDB(t)

	filters := Filters{
		StartDate:       "2024-01-01",
		EndDate:         "2024-12-31",
		Status:          models.StatusAceiteOK,
		Payer:           "alfa'; --",
		Payee:           "beta",
		Channel:         "pix",
		OperationNumber: "OP-1",
		MinAmount:       "100",
		MaxAmount:       "90000",
	}

	tx, err := filters.Apply(db.Session(&gorm.Session{DryRun: true}).Model(&models.Acceptance{}))
	require.NoError(t, err)

	var records []models.Acceptance
	stmt := tx.Find(&records).Statement

	assert.Len(t, stmt.Vars, 9)
	assert.NotContains(t, stmt.SQL.String(), "alfa")
	assert.NotContains(t, stmt.SQL.String(), "OP-1")
}
