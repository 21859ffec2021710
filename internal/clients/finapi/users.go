package finapi

import (
	"context"
	"net/http"

	"dhaqaaleeye/finance-bot/internal/entity/record"
)

func (c *Client) ListUsers(ctx context.Context, token string) ([]record.User, error) {
	var res []record.User
	err := c.do(ctx, http.MethodGet, "/api/users", token, nil, &res)
	return res, err
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, draft record.UserDraft) error {
	return c.do(ctx, http.MethodPut, "/api/users/"+id, token, draft, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, token, nil, nil)
}
