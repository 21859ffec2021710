package finapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhaqaaleeye/finance-bot/internal/model/customerr"
)

type cfgStub struct {
	url string
}

func (c cfgStub) BaseURL() string { return c.url }
func (c cfgStub) Timeout() int64  { return 2 }

func Test_OnLogin_ShouldPostCredentialsAndReturnToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "alice@mail.com", body["email"])

		_, _ = w.Write([]byte(`{"token":"tok"}`))
	}))
	defer srv.Close()

	client := New(cfgStub{url: srv.URL})
	token, err := client.Login(context.Background(), "alice@mail.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func Test_OnUnauthorizedResponse_ShouldReturnAuthErrorWithServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	client := New(cfgStub{url: srv.URL})
	_, err := client.Login(context.Background(), "alice@mail.com", "wrong")

	require.Error(t, err)
	assert.True(t, customerr.IsAuth(err))
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func Test_OnForbiddenResponse_ShouldReturnRoleError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Admin access required"}`))
	}))
	defer srv.Close()

	client := New(cfgStub{url: srv.URL})
	_, err := client.ListAllIncomes(context.Background(), "user-token")

	require.Error(t, err)
	assert.True(t, customerr.IsRole(err))
	assert.False(t, customerr.IsAuth(err))
}

func Test_OnServerErrorWithoutMessage_ShouldFallBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(cfgStub{url: srv.URL})
	_, err := client.ListIncomes(context.Background(), "tok")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func Test_OnListAllIncomes_ShouldAttachBearerAndDecodeDefensively(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/income/admin", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"_id":"i1","userId":{"_id":"u1","email":"alice@mail.com"},"source":"Salary","amount":"3000","date":"2024-03-01T10:00:00Z"},
			{"_id":"i2","userId":"u2","source":"Bonus","amount":"oops","date":"garbage"}
		]`))
	}))
	defer srv.Close()

	client := New(cfgStub{url: srv.URL})
	incomes, err := client.ListAllIncomes(context.Background(), "admin-token")

	require.NoError(t, err)
	require.Len(t, incomes, 2)

	assert.Equal(t, "alice@mail.com", incomes[0].OwnerEmail())
	assert.Equal(t, 3000.0, incomes[0].Amount.Value())
	assert.True(t, incomes[0].Date.Valid())

	assert.Equal(t, "N/A", incomes[1].OwnerEmail())
	assert.Equal(t, 0.0, incomes[1].Amount.Value())
	assert.False(t, incomes[1].Date.Valid())
}

func Test_OnDeleteIncome_ShouldIssueDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(cfgStub{url: srv.URL})
	err := client.DeleteIncome(context.Background(), "tok", "i42")

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/income/i42", gotPath)
}
