package record

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// OwnerPlaceholder is rendered when a record carries no resolvable owner.
const OwnerPlaceholder = "N/A"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// Amount is a non-negative monetary magnitude. The sign of a record is
// carried by its kind (income vs expense), never by the value. The server
// occasionally returns amounts as quoted strings, so decoding coerces:
// malformed or negative input becomes 0 instead of failing the whole
// collection.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

func (a Amount) Value() float64 {
	return float64(a)
}

// Date is a calendar date; the time component the server may attach is
// irrelevant to record semantics. Unknown formats decode to the zero time.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	d.Time = time.Time{}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

func (d Date) Valid() bool {
	return !d.IsZero()
}

// Owner is the record's owning user reference. The server returns it either
// populated ({_id, name, email}) or as a bare id string.
type Owner struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (o *Owner) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var id string
		if err := json.Unmarshal(data, &id); err == nil {
			o.ID = id
		}
		return nil
	}

	type plain Owner
	var p plain
	if err := json.Unmarshal(data, &p); err == nil {
		*o = Owner(p)
	}
	return nil
}
