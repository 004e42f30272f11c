package queries

// AcceptanceFilters is the grid filter subset exposed on the list endpoint.
type AcceptanceFilters struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Status    string `query:"status"`
	Payer     string `query:"payer"`
	MinAmount string `query:"minAmount"`
	MaxAmount string `query:"maxAmount"`
}

// ReportFilters is the full filter set accepted by the report and export
// endpoints. Statuses and Columns arrive comma separated.
type ReportFilters struct {
	StartDate       string `query:"startDate"`
	EndDate         string `query:"endDate"`
	Status          string `query:"status"`
	Statuses        string `query:"statuses"`
	Payer           string `query:"payer"`
	Payee           string `query:"payee"`
	Channel         string `query:"channel"`
	OperationNumber string `query:"operationNumber"`
	MinAmount       string `query:"minAmount"`
	MaxAmount       string `query:"maxAmount"`
	GroupBy         string `query:"groupBy"`
	OrderBy         string `query:"orderBy"`
	Columns         string `query:"columns"`
}
