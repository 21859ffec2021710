package finapi

import (
	"context"
	"net/http"

	"dhaqaaleeye/finance-bot/internal/entity/record"
)

func (c *Client) ListIncomes(ctx context.Context, token string) ([]record.Income, error) {
	var res []record.Income
	err := c.do(ctx, http.MethodGet, "/api/income", token, nil, &res)
	return res, err
}

// ListAllIncomes returns income records across the whole user base.
// Admin role required; the API answers 403 otherwise.
func (c *Client) ListAllIncomes(ctx context.Context, token string) ([]record.Income, error) {
	var res []record.Income
	err := c.do(ctx, http.MethodGet, "/api/income/admin", token, nil, &res)
	return res, err
}

func (c *Client) CreateIncome(ctx context.Context, token string, draft record.IncomeDraft) error {
	return c.do(ctx, http.MethodPost, "/api/income", token, draft, nil)
}

func (c *Client) UpdateIncome(ctx context.Context, token, id string, draft record.IncomeDraft) error {
	return c.do(ctx, http.MethodPut, "/api/income/"+id, token, draft, nil)
}

func (c *Client) DeleteIncome(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/income/"+id, token, nil, nil)
}
