package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Row is the common shape the admin tables and exports work on; income and
// expense collections are converted into it before filtering.
type Row struct {
	Label  string    `json:"label"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Owner  string    `json:"owner"`
}

// Filters are AND-combined; a nil/empty dimension constrains nothing.
type Filters struct {
	Label     string     `json:"label,omitempty"`
	MinAmount *float64   `json:"minAmount,omitempty"`
	MaxAmount *float64   `json:"maxAmount,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type SortKey string

const (
	SortByLabel  SortKey = "label"
	SortByAmount SortKey = "amount"
	SortByDate   SortKey = "date"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type SortConfig struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"direction"`
}

// DefaultSort is newest-first, the order the admin tables open with.
func DefaultSort() SortConfig {
	return SortConfig{Key: SortByDate, Direction: Desc}
}

// Toggle re-selects a sort column: the same key flips direction, a new key
// starts ascending.
func (c SortConfig) Toggle(key SortKey) SortConfig {
	if c.Key == key && c.Direction == Asc {
		return SortConfig{Key: key, Direction: Desc}
	}
	return SortConfig{Key: key, Direction: Asc}
}

// Filter keeps the rows passing every active predicate. The search term
// matches the label or the owner identifier, case-insensitively.
func Filter(rows []Row, searchTerm string, f Filters) []Row {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	label := strings.ToLower(strings.TrimSpace(f.Label))

	res := make([]Row, 0, len(rows))
	for _, r := range rows {
		if matches(r, term, label, f) {
			res = append(res, r)
		}
	}
	return res
}

func matches(r Row, term, label string, f Filters) bool {
	if term != "" &&
		!strings.Contains(strings.ToLower(r.Label), term) &&
		!strings.Contains(strings.ToLower(r.Owner), term) {
		return false
	}
	if label != "" && !strings.Contains(strings.ToLower(r.Label), label) {
		return false
	}
	if f.MinAmount != nil && r.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && r.Amount > *f.MaxAmount {
		return false
	}
	if f.StartDate != nil && dateOnly(r.Date).Before(dateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && dateOnly(r.Date).After(dateOnly(*f.EndDate)) {
		return false
	}
	return true
}

// dateOnly truncates to the calendar date; records compare by day, not by
// whatever time component the server stored.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Sort returns a stably sorted copy. Amounts compare numerically, dates by
// calendar value, labels by locale-aware collation.
func Sort(rows []Row, c SortConfig) []Row {
	res := make([]Row, len(rows))
	copy(res, rows)

	less := lessFunc(c.Key)
	if c.Direction == Desc {
		asc := less
		less = func(a, b Row) bool { return asc(b, a) }
	}
	sort.SliceStable(res, func(i, j int) bool {
		return less(res[i], res[j])
	})
	return res
}

func lessFunc(key SortKey) func(a, b Row) bool {
	switch key {
	case SortByAmount:
		return func(a, b Row) bool { return a.Amount < b.Amount }
	case SortByLabel:
		collator := collate.New(language.English, collate.IgnoreCase)
		return func(a, b Row) bool { return collator.CompareString(a.Label, b.Label) < 0 }
	default:
		return func(a, b Row) bool { return a.Date.Before(b.Date) }
	}
}

// Stats aggregates the filtered set; sort order never changes them.
type Stats struct {
	Total   float64
	Count   int
	Average float64
}

func Aggregate(rows []Row) Stats {
	s := Stats{Count: len(rows)}
	for _, r := range rows {
		s.Total += r.Amount
	}
	if s.Count > 0 {
		s.Average = s.Total / float64(s.Count)
	}
	return s
}

// PeriodStart maps a period preset onto a start-date filter.
func PeriodStart(period string) (time.Time, bool) {
	switch period {
	case "week":
		return now.BeginningOfWeek(), true
	case "month":
		return now.BeginningOfMonth(), true
	case "year":
		return now.BeginningOfYear(), true
	}
	return time.Time{}, false
}
