package reports

// Export scopes: which admin collection an export covers.
const (
	ScopeIncomes  = "incomes"
	ScopeExpenses = "expenses"
)

// ExportRequest travels bot -> reporter on the exports topic. It carries the
// requesting admin's bearer token so authorization stays with the API; the
// reporter holds no credentials of its own.
type ExportRequest struct {
	ChatID  int64      `json:"chatID"`
	Token   string     `json:"token"`
	Scope   string     `json:"scope"`
	Search  string     `json:"search"`
	Filters Filters    `json:"filters"`
	Sort    SortConfig `json:"sort"`
}

// ExportResult travels reporter -> bot on the results topic.
type ExportResult struct {
	ChatID   int64  `json:"chatID"`
	Scope    string `json:"scope"`
	Filename string `json:"filename"`
	CSV      string `json:"csv"`
	Err      string `json:"error,omitempty"`
}
