package messages

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"dhaqaaleeye/finance-bot/internal/entity/record"
	"dhaqaaleeye/finance-bot/internal/model/reports"
)

const (
	commandParts = 2
	dateLayout   = "02.01.2006"
)

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

// parseFilterArgs reads admin table arguments: bare tokens form the search
// term, key=value tokens set filters and sorting. Example:
//
//	salary min=100 max=2000 from=01.01.2024 sort=amount:desc
func parseFilterArgs(arg string) (search string, f reports.Filters, sc reports.SortConfig, err error) {
	sc = reports.DefaultSort()
	var terms []string

	for _, tok := range strings.Fields(arg) {
		key, value, found := strings.Cut(tok, "=")
		if !found {
			terms = append(terms, tok)
			continue
		}

		switch key {
		case "label":
			f.Label = value
		case "min":
			v, parseErr := strconv.ParseFloat(value, 64)
			if parseErr != nil {
				return "", f, sc, errors.Wrap(parseErr, "min amount")
			}
			f.MinAmount = &v
		case "max":
			v, parseErr := strconv.ParseFloat(value, 64)
			if parseErr != nil {
				return "", f, sc, errors.Wrap(parseErr, "max amount")
			}
			f.MaxAmount = &v
		case "from":
			t, parseErr := time.Parse(dateLayout, value)
			if parseErr != nil {
				return "", f, sc, errors.Wrap(parseErr, "start date")
			}
			f.StartDate = &t
		case "to":
			t, parseErr := time.Parse(dateLayout, value)
			if parseErr != nil {
				return "", f, sc, errors.Wrap(parseErr, "end date")
			}
			f.EndDate = &t
		case "period":
			t, ok := reports.PeriodStart(value)
			if !ok {
				return "", f, sc, errors.Errorf("period %s is not supported", value)
			}
			f.StartDate = &t
		case "sort":
			sc, err = parseSort(value)
			if err != nil {
				return "", f, sc, err
			}
		default:
			return "", f, sc, errors.Errorf("unknown filter %s", key)
		}
	}

	return strings.Join(terms, " "), f, sc, nil
}

var sortKeyAliases = map[string]reports.SortKey{
	"label":    reports.SortByLabel,
	"source":   reports.SortByLabel,
	"category": reports.SortByLabel,
	"amount":   reports.SortByAmount,
	"date":     reports.SortByDate,
}

func parseSort(value string) (reports.SortConfig, error) {
	keyPart, dirPart, hasDir := strings.Cut(value, ":")

	key, ok := sortKeyAliases[keyPart]
	if !ok {
		return reports.SortConfig{}, errors.Errorf("cannot sort by %s", keyPart)
	}

	dir := reports.Asc
	if hasDir {
		switch dirPart {
		case "asc":
		case "desc":
			dir = reports.Desc
		default:
			return reports.SortConfig{}, errors.Errorf("unknown sort direction %s", dirPart)
		}
	}
	return reports.SortConfig{Key: key, Direction: dir}, nil
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "invalid date"
	}
	return t.Format(dateLayout)
}

func formatRowTable(labelHeader string, rows []reports.Row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, fmt.Sprintf("%s | Amount | Date | User", labelHeader))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s | %s | %s | %s",
			r.Label, formatMoney(r.Amount), formatDate(r.Date), r.Owner))
	}
	return strings.Join(lines, "\n")
}

func formatStats(st reports.Stats) string {
	return fmt.Sprintf("Total: %s, records: %d, average: %s",
		formatMoney(st.Total), st.Count, formatMoney(st.Average))
}

func formatProfile(u record.User) string {
	status := "active"
	if !u.Active {
		status = "inactive"
	}
	return fmt.Sprintf("%s <%s>, role: %s, %s", u.Name, u.Email, u.Role, status)
}

// transaction is a dashboard line: income and expense records merged into
// one recency-ordered feed.
type transaction struct {
	label  string
	amount float64
	date   time.Time
	income bool
}

func mergeTransactions(incomes []record.Income, expenses []record.Expense, limit int) []transaction {
	merged := make([]transaction, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		merged = append(merged, transaction{
			label:  in.Source,
			amount: in.Amount.Value(),
			date:   in.Date.Time,
			income: true,
		})
	}
	for _, ex := range expenses {
		merged = append(merged, transaction{
			label:  ex.Category,
			amount: ex.Amount.Value(),
			date:   ex.Date.Time,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[j].date.Before(merged[i].date)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func formatTransactions(txs []transaction) string {
	lines := make([]string, 0, len(txs))
	for _, t := range txs {
		sign := "-"
		if t.income {
			sign = "+"
		}
		lines = append(lines, fmt.Sprintf("%s %s | %s | %s",
			sign, formatMoney(t.amount), t.label, formatDate(t.date)))
	}
	return strings.Join(lines, "\n")
}

func sumIncomes(incomes []record.Income) float64 {
	var total float64
	for _, in := range incomes {
		total += in.Amount.Value()
	}
	return total
}

func sumExpenses(expenses []record.Expense) float64 {
	var total float64
	for _, ex := range expenses {
		total += ex.Amount.Value()
	}
	return total
}
