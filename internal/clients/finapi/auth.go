package finapi

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"dhaqaaleeye/finance-bot/internal/entity/record"
)

type tokenResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var res tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		"", registerRequest{Name: name, Email: email, Password: password}, &res)
	if err != nil {
		return "", errors.Wrap(err, "register")
	}
	return res.Token, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var res tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		"", loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return "", errors.Wrap(err, "login")
	}
	return res.Token, nil
}

func (c *Client) Me(ctx context.Context, token string) (record.User, error) {
	var res record.User
	err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &res)
	if err != nil {
		return record.User{}, err
	}
	return res, nil
}
