package record

// Expense mirrors Income with a category label instead of a source.
type Expense struct {
	ID       string `json:"_id"`
	Owner    *Owner `json:"userId"`
	Category string `json:"category"`
	Amount   Amount `json:"amount"`
	Date     Date   `json:"date"`
}

func (e Expense) OwnerEmail() string {
	if e.Owner == nil || e.Owner.Email == "" {
		return OwnerPlaceholder
	}
	return e.Owner.Email
}

type ExpenseDraft struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}
