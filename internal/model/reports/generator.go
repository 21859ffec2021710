package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dhaqaaleeye/finance-bot/internal/entity/record"
	"dhaqaaleeye/finance-bot/internal/logger"
)

type recordsGateway interface {
	ListAllIncomes(ctx context.Context, token string) ([]record.Income, error)
	ListAllExpenses(ctx context.Context, token string) ([]record.Expense, error)
}

// Generator is the reporter-side worker: it fetches the full admin
// collection, runs the filter/sort pipeline and renders the CSV.
type Generator struct {
	gateway recordsGateway
}

func NewGenerator(gateway recordsGateway) *Generator {
	return &Generator{gateway: gateway}
}

func (g *Generator) GenerateExport(ctx context.Context, req ExportRequest) ExportResult {
	logger.Info("GenerateExport - start",
		zap.Int64("chatID", req.ChatID), zap.String("scope", req.Scope))
	defer logger.Info("GenerateExport - end")

	res := ExportResult{ChatID: req.ChatID, Scope: req.Scope}

	rows, err := g.fetchRows(ctx, req)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	rows = Sort(Filter(rows, req.Search, req.Filters), req.Sort)

	csvText, err := ExportCSV(LabelHeader(req.Scope), rows)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	res.CSV = csvText
	res.Filename = fmt.Sprintf("%s_%s.csv", req.Scope, time.Now().Format("2006-01-02"))
	return res
}

func (g *Generator) fetchRows(ctx context.Context, req ExportRequest) ([]Row, error) {
	switch req.Scope {
	case ScopeIncomes:
		incomes, err := g.gateway.ListAllIncomes(ctx, req.Token)
		if err != nil {
			return nil, errors.Wrap(err, "generate export")
		}
		return IncomeRows(incomes), nil
	case ScopeExpenses:
		expenses, err := g.gateway.ListAllExpenses(ctx, req.Token)
		if err != nil {
			return nil, errors.Wrap(err, "generate export")
		}
		return ExpenseRows(expenses), nil
	default:
		return nil, errors.Wrap(
			fmt.Errorf("export scope %s is not supported", req.Scope),
			"generate export",
		)
	}
}

// LabelHeader names the free-text column for a scope: income sources vs
// expense categories.
func LabelHeader(scope string) string {
	if scope == ScopeExpenses {
		return "Category"
	}
	return "Source"
}
