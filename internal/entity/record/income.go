package record

// Income is a single income entry as returned by the finance API.
type Income struct {
	ID     string `json:"_id"`
	Owner  *Owner `json:"userId"`
	Source string `json:"source"`
	Amount Amount `json:"amount"`
	Date   Date   `json:"date"`
}

func (i Income) OwnerEmail() string {
	if i.Owner == nil || i.Owner.Email == "" {
		return OwnerPlaceholder
	}
	return i.Owner.Email
}

// IncomeDraft is the body of a create or update call.
type IncomeDraft struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}
