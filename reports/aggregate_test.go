package reports

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"
	"gopkg.in/yaml.v2"

	"github.com/Draxsd3/controle-aceites/models"
)

type aggregateFixture struct {
	Records []struct {
		OperationDate   string `yaml:"operationDate"`
		OperationNumber string `yaml:"operationNumber"`
		Payer           string `yaml:"payer"`
		Payee           string `yaml:"payee"`
		Amount          string `yaml:"amount"`
		Status          string `yaml:"status"`
		Channel         string `yaml:"channel"`
	} `yaml:"records"`
	Cases []struct {
		Key    string `yaml:"key"`
		Groups []struct {
			Group string `yaml:"group"`
			Count int    `yaml:"count"`
			Total string `yaml:"total"`
		} `yaml:"groups"`
	} `yaml:"cases"`
}

func loadAggregateFixture(t *testing.T) (aggregateFixture, []models.Acceptance) {
	t.Helper()

	raw, err := os.ReadFile("fixtures/aggregate.yaml")
	require.NoError(t, err)

	var fixture aggregateFixture
	require.NoError(t, yaml.Unmarshal(raw, &fixture))

	records := make([]models.Acceptance, 0, len(fixture.Records))
	for _, row := range fixture.Records {
		date, err := models.ParseOperationDate(row.OperationDate)
		require.NoError(t, err)

		record := models.Acceptance{
			OperationDate:   date,
			OperationNumber: row.OperationNumber,
			Payer:           row.Payer,
			Payee:           row.Payee,
			Amount:          decimal.RequireFromString(row.Amount),
			Status:          row.Status,
		}
		if len(row.Channel) > 0 {
			record.Channel = null.StringFrom(row.Channel)
		}

		records = append(records, record)
	}

	return fixture, records
}

func TestGroupRecords(t *testing.T) {
	fixture, records := loadAggregateFixture(t)

	for _, tc := range fixture.Cases {
		t.Run(tc.Key, func(t *testing.T) {
			groups := GroupRecords(records, tc.Key)
			require.Len(t, groups, len(tc.Groups))

			counted := 0
			for i, expected := range tc.Groups {
				assert.Equal(t, expected.Group, groups[i].Key)
				assert.Equal(t, expected.Count, groups[i].Count)
				assert.True(t, groups[i].Total.Equal(decimal.RequireFromString(expected.Total)),
					"group %q total %s", expected.Group, groups[i].Total)
				assert.Len(t, groups[i].Items, groups[i].Count)
				counted += groups[i].Count
			}

			// no record lost, none duplicated
			assert.Equal(t, len(records), counted)
		})
	}
}

func TestGroupRecordsEmpty(t *testing.T) {
	assert.Empty(t, GroupRecords(nil, "status"))
}

func TestGroupRecordsKeepsItemOrder(t *testing.T) {
	_, records := loadAggregateFixture(t)

	groups := GroupRecords(records, "payer")
	require.NotEmpty(t, groups)
	require.Equal(t, "Alfa Ltda", groups[0].Key)

	numbers := make([]string, 0, len(groups[0].Items))
	for _, item := range groups[0].Items {
		numbers = append(numbers, item.OperationNumber)
	}
	assert.Equal(t, []string{"OP-1", "OP-3", "OP-5"}, numbers)
}

func TestGroupToJSON(t *testing.T) {
	_, records := loadAggregateFixture(t)

	groups := GroupRecords(records, "status")
	entity := groups[0].ToJSON()

	assert.Equal(t, "ACEITE OK", entity.Group)
	assert.Equal(t, 2, entity.Count)
	assert.Len(t, entity.Items, 2)
	assert.Equal(t, "2024-01-15", entity.Items[0].OperationDate)
}
