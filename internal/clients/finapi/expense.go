package finapi

import (
	"context"
	"net/http"

	"dhaqaaleeye/finance-bot/internal/entity/record"
)

func (c *Client) ListExpenses(ctx context.Context, token string) ([]record.Expense, error) {
	var res []record.Expense
	err := c.do(ctx, http.MethodGet, "/api/expense", token, nil, &res)
	return res, err
}

func (c *Client) ListAllExpenses(ctx context.Context, token string) ([]record.Expense, error) {
	var res []record.Expense
	err := c.do(ctx, http.MethodGet, "/api/expense/admin", token, nil, &res)
	return res, err
}

func (c *Client) CreateExpense(ctx context.Context, token string, draft record.ExpenseDraft) error {
	return c.do(ctx, http.MethodPost, "/api/expense", token, draft, nil)
}

func (c *Client) UpdateExpense(ctx context.Context, token, id string, draft record.ExpenseDraft) error {
	return c.do(ctx, http.MethodPut, "/api/expense/"+id, token, draft, nil)
}

func (c *Client) DeleteExpense(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/expense/"+id, token, nil, nil)
}
