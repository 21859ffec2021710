package finapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"dhaqaaleeye/finance-bot/internal/model/customerr"
)

const (
	authHeader   = "Authorization"
	bearerPrefix = "Bearer "
)

type config interface {
	BaseURL() string
	Timeout() int64
}

type apiError struct {
	Message string `json:"message"`
}

// Client is the only way this codebase reaches persistent data. Every entity
// lives behind the remote finance API; the client attaches the bearer
// credential and decodes responses into typed records.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(cfg config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.Timeout()) * time.Second},
		baseURL:    strings.TrimRight(cfg.BaseURL(), "/"),
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "apiCall")
	defer span.Finish()
	span.SetTag("method", method)
	span.SetTag("path", path)

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshalling request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(authHeader, bearerPrefix+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "api call")
	}
	defer func() {
		_ = res.Body.Close()
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading response")
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return &customerr.AuthError{Err: serverMessage(raw, "credential rejected")}
	case res.StatusCode == http.StatusForbidden:
		return &customerr.RoleError{Err: serverMessage(raw, "insufficient role")}
	case res.StatusCode >= http.StatusBadRequest:
		return errors.New(serverMessage(raw, fmt.Sprintf("api responded with status %d", res.StatusCode)))
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "unmarshalling response")
	}
	return nil
}

func serverMessage(raw []byte, fallback string) string {
	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
