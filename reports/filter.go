package reports

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Draxsd3/controle-aceites/models"
	"github.com/Draxsd3/controle-aceites/types"
)

// ValidationError marks filter input the compiler refused. Controllers map it
// to a 400 with the key in the errors envelope.
type ValidationError struct {
	Key string
}

func (e *ValidationError) Error() string {
	return e.Key
}

// Filters carries every recognized report filter. All fields are optional;
// zero values mean "not filtered".
type Filters struct {
	StartDate       string
	EndDate         string
	Status          string
	Statuses        []string
	Payer           string
	Payee           string
	Channel         string
	OperationNumber string
	MinAmount       string
	MaxAmount       string
	GroupBy         string
	OrderBy         string
}

// group keys the compiler accepts, mapped to their column names. ORDER BY
// cannot take a bound parameter, so anything outside this table is rejected.
var groupColumns = map[string]string{
	"operationDate": "operation_date",
	"payer":         "payer",
	"payee":         "payee",
	"status":        "status",
	"channel":       "channel",
}

// Apply compiles the filters onto a gorm chain. Every value is bound as a
// statement parameter; date bounds and amount bounds are inclusive.
func (f Filters) Apply(tx *gorm.DB) (*gorm.DB, error) {
	if len(f.StartDate) > 0 {
		date, err := models.ParseOperationDate(f.StartDate)
		if err != nil {
			return nil, &ValidationError{Key: "report.invalid_start_date"}
		}

		tx = tx.Where("operation_date >= ?", date)
	}

	if len(f.EndDate) > 0 {
		date, err := models.ParseOperationDate(f.EndDate)
		if err != nil {
			return nil, &ValidationError{Key: "report.invalid_end_date"}
		}

		tx = tx.Where("operation_date <= ?", date)
	}

	if len(f.Status) > 0 {
		tx = tx.Where("status = ?", f.Status)
	}

	if len(f.Statuses) > 0 {
		tx = tx.Where("status IN ?", f.Statuses)
	}

	if len(f.Payer) > 0 {
		tx = tx.Where("LOWER(payer) LIKE ?", contains(f.Payer))
	}

	if len(f.Payee) > 0 {
		tx = tx.Where("LOWER(payee) LIKE ?", contains(f.Payee))
	}

	if len(f.Channel) > 0 {
		tx = tx.Where("LOWER(channel) LIKE ?", contains(f.Channel))
	}

	if len(f.OperationNumber) > 0 {
		tx = tx.Where("operation_number = ?", f.OperationNumber)
	}

	if len(f.MinAmount) > 0 {
		min, err := decimal.NewFromString(f.MinAmount)
		if err != nil {
			return nil, &ValidationError{Key: "report.invalid_min_amount"}
		}

		tx = tx.Where("amount >= ?", min)
	}

	if len(f.MaxAmount) > 0 {
		max, err := decimal.NewFromString(f.MaxAmount)
		if err != nil {
			return nil, &ValidationError{Key: "report.invalid_max_amount"}
		}

		tx = tx.Where("amount <= ?", max)
	}

	if f.Grouped() {
		column, ok := groupColumns[f.GroupBy]
		if !ok {
			return nil, &ValidationError{Key: "report.invalid_group_by"}
		}

		// pre-sorted input for the aggregator
		tx = tx.Order(column + " " + types.OrderByAsc)
	} else {
		direction := types.OrderByDesc
		switch f.OrderBy {
		case "", types.OrderByDesc:
		case types.OrderByAsc:
			direction = types.OrderByAsc
		default:
			return nil, &ValidationError{Key: "report.invalid_order_by"}
		}

		tx = tx.Order("created_at " + direction)
	}

	return tx, nil
}

func (f Filters) Grouped() bool {
	return len(f.GroupBy) > 0 && f.GroupBy != types.GroupByNone
}

func contains(value string) string {
	return "%" + strings.ToLower(value) + "%"
}
