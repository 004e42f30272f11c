package reports

import (
	"github.com/shopspring/decimal"

	"github.com/Draxsd3/controle-aceites/controllers/entities"
	"github.com/Draxsd3/controle-aceites/models"
)

// Group is one bucket of a grouped report. Count and Total are derived while
// partitioning; Total is a decimal sum, never a float accumulation.
type Group struct {
	Key   string
	Count int
	Total decimal.Decimal
	Items []models.Acceptance
}

func (g Group) ToJSON() entities.GroupEntity {
	items := make([]entities.AcceptanceEntity, 0, len(g.Items))
	for i := range g.Items {
		items = append(items, g.Items[i].ToJSON())
	}

	return entities.GroupEntity{
		Group: g.Key,
		Count: g.Count,
		Total: g.Total,
		Items: items,
	}
}

// GroupRecords partitions records by the literal value of the group key.
// Groups appear in first-seen order and records keep their input order inside
// each group.
func GroupRecords(records []models.Acceptance, key string) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for _, record := range records {
		value := groupValue(record, key)

		i, ok := index[value]
		if !ok {
			i = len(groups)
			index[value] = i
			groups = append(groups, Group{Key: value, Total: decimal.Zero})
		}

		groups[i].Items = append(groups[i].Items, record)
		groups[i].Count++
		groups[i].Total = groups[i].Total.Add(record.Amount)
	}

	return groups
}

func groupValue(record models.Acceptance, key string) string {
	switch key {
	case "operationDate":
		return record.OperationDate.Format(models.DateISO)
	case "payer":
		return record.Payer
	case "payee":
		return record.Payee
	case "channel":
		return record.Channel.String
	default:
		return record.Status
	}
}
