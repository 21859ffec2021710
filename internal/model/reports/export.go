package reports

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	exportDateLayout = "02.01.2006"
	invalidDateCell  = "invalid date"
)

// ExportCSV serializes a filtered+sorted set to CSV, one row per record.
// It always covers the whole set it is given, never a display page.
func ExportCSV(labelHeader string, rows []Row) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{labelHeader, "Amount", "Date", "User"}); err != nil {
		return "", errors.Wrap(err, "writing csv header")
	}
	for _, r := range rows {
		cells := []string{
			r.Label,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			formatDate(r.Date),
			r.Owner,
		}
		if err := w.Write(cells); err != nil {
			return "", errors.Wrap(err, "writing csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "flushing csv")
	}
	return buf.String(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return invalidDateCell
	}
	return t.Format(exportDateLayout)
}
