package types

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)

type ReportFormat = string

var (
	FormatPDF   ReportFormat = "pdf"
	FormatExcel ReportFormat = "xlsx"
	FormatHTML  ReportFormat = "html"
)

// GroupByNone disables grouping on report endpoints.
var GroupByNone = "none"
