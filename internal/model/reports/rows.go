package reports

import (
	"dhaqaaleeye/finance-bot/internal/entity/record"
)

func IncomeRows(incomes []record.Income) []Row {
	rows := make([]Row, 0, len(incomes))
	for _, in := range incomes {
		rows = append(rows, Row{
			Label:  in.Source,
			Amount: in.Amount.Value(),
			Date:   in.Date.Time,
			Owner:  in.OwnerEmail(),
		})
	}
	return rows
}

func ExpenseRows(expenses []record.Expense) []Row {
	rows := make([]Row, 0, len(expenses))
	for _, ex := range expenses {
		rows = append(rows, Row{
			Label:  ex.Category,
			Amount: ex.Amount.Value(),
			Date:   ex.Date.Time,
			Owner:  ex.OwnerEmail(),
		})
	}
	return rows
}
