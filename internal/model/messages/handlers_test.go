package messages

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhaqaaleeye/finance-bot/internal/entity/record"
	"dhaqaaleeye/finance-bot/internal/model/customerr"
	"dhaqaaleeye/finance-bot/internal/model/reports"
	"dhaqaaleeye/finance-bot/internal/model/session"
	"dhaqaaleeye/finance-bot/internal/model/storage"
)

type fakeSessions struct {
	sess      session.Session
	loggedOut bool
}

func (s *fakeSessions) Resolve(context.Context, int64) (session.Session, error) {
	return s.sess, nil
}

func (s *fakeSessions) Login(_ context.Context, _ int64, _, _ string) (record.User, error) {
	return s.sess.User, nil
}

func (s *fakeSessions) Register(_ context.Context, _ int64, _, _, _ string) (record.User, error) {
	return s.sess.User, nil
}

func (s *fakeSessions) Logout(context.Context, int64) error {
	s.loggedOut = true
	s.sess = session.Session{}
	return nil
}

type fakeGateway struct {
	incomes  []record.Income
	expenses []record.Expense
	users    []record.User
	err      error

	createdIncome   *record.IncomeDraft
	updatedIncomeID string
	deletedIncomeID string
	createdExpense  *record.ExpenseDraft
	updatedUserID   string
	updatedUser     *record.UserDraft
	deletedUserID   string
}

func (g *fakeGateway) ListIncomes(context.Context, string) ([]record.Income, error) {
	return g.incomes, g.err
}

func (g *fakeGateway) ListAllIncomes(context.Context, string) ([]record.Income, error) {
	return g.incomes, g.err
}

func (g *fakeGateway) CreateIncome(_ context.Context, _ string, draft record.IncomeDraft) error {
	g.createdIncome = &draft
	return g.err
}

func (g *fakeGateway) UpdateIncome(_ context.Context, _, id string, _ record.IncomeDraft) error {
	g.updatedIncomeID = id
	return g.err
}

func (g *fakeGateway) DeleteIncome(_ context.Context, _, id string) error {
	g.deletedIncomeID = id
	return g.err
}

func (g *fakeGateway) ListExpenses(context.Context, string) ([]record.Expense, error) {
	return g.expenses, g.err
}

func (g *fakeGateway) ListAllExpenses(context.Context, string) ([]record.Expense, error) {
	return g.expenses, g.err
}

func (g *fakeGateway) CreateExpense(_ context.Context, _ string, draft record.ExpenseDraft) error {
	g.createdExpense = &draft
	return g.err
}

func (g *fakeGateway) UpdateExpense(context.Context, string, string, record.ExpenseDraft) error {
	return g.err
}

func (g *fakeGateway) DeleteExpense(context.Context, string, string) error {
	return g.err
}

func (g *fakeGateway) ListUsers(context.Context, string) ([]record.User, error) {
	return g.users, g.err
}

func (g *fakeGateway) UpdateUser(_ context.Context, _, id string, draft record.UserDraft) error {
	g.updatedUserID = id
	g.updatedUser = &draft
	return g.err
}

func (g *fakeGateway) DeleteUser(_ context.Context, _, id string) error {
	g.deletedUserID = id
	return g.err
}

type fakeProducer struct {
	produced [][]byte
	err      error
}

func (p *fakeProducer) ProduceMessage(message []byte) error {
	p.produced = append(p.produced, message)
	return p.err
}

type cfgStub struct{}

func (cfgStub) RecentCount() int { return 5 }

func userSession() session.Session {
	return session.Session{
		Token: "tok",
		User:  record.User{ID: "u1", Name: "Alice", Email: "alice@mail.com", Role: record.RoleUser, Active: true},
	}
}

func adminSession() session.Session {
	s := userSession()
	s.User.Role = record.RoleAdmin
	return s
}

func newTestHandler(sess session.Session, gw *fakeGateway) (*HandlerService, *fakeSessions, *storage.InMemStorage, *fakeProducer) {
	sessions := &fakeSessions{sess: sess}
	store := storage.NewInMemStorage()
	producer := &fakeProducer{}
	h := NewHandler(sessions, gw, store, producer, cfgStub{})
	return h, sessions, store, producer
}

func Test_OnProtectedCommandWithoutSession_ShouldAskToLogin(t *testing.T) {
	h, _, _, _ := newTestHandler(session.Session{}, &fakeGateway{})

	resp, err := h.HandleMessage(context.Background(), "/dashboard", 123)

	require.NoError(t, err)
	assert.Equal(t, notLoggedInMessage, resp)
}

func Test_OnAdminCommandAsRegularUser_ShouldRefuse(t *testing.T) {
	h, _, _, _ := newTestHandler(userSession(), &fakeGateway{})

	resp, err := h.HandleMessage(context.Background(), "/incomes", 123)

	require.NoError(t, err)
	assert.Equal(t, adminOnlyMessage, resp)
}

func Test_OnIncomeAdd_ShouldCreateRecordAndDropCachedDashboard(t *testing.T) {
	gw := &fakeGateway{}
	h, _, store, _ := newTestHandler(userSession(), gw)
	require.NoError(t, store.CacheView(123, dashboardView, "stale"))

	resp, err := h.HandleMessage(context.Background(), "/income add salary 100 01.03.2024", 123)

	require.NoError(t, err)
	assert.Equal(t, okMessage, resp)
	require.NotNil(t, gw.createdIncome)
	assert.Equal(t, record.IncomeDraft{Source: "salary", Amount: 100, Date: "2024-03-01"}, *gw.createdIncome)

	_, err = store.GetView(123, dashboardView)
	assert.ErrorIs(t, err, storage.ErrNoView)
}

func Test_OnIncomeAddWithBadAmount_ShouldComplain(t *testing.T) {
	gw := &fakeGateway{}
	h, _, _, _ := newTestHandler(userSession(), gw)

	resp, err := h.HandleMessage(context.Background(), "/income add salary abc", 123)

	assert.Error(t, err)
	assert.Equal(t, incorrectAmountMessage, resp)
	assert.Nil(t, gw.createdIncome)
}

func Test_OnIncomeDel_ShouldPassID(t *testing.T) {
	gw := &fakeGateway{}
	h, _, _, _ := newTestHandler(userSession(), gw)

	resp, err := h.HandleMessage(context.Background(), "/income del i42", 123)

	require.NoError(t, err)
	assert.Equal(t, okMessage, resp)
	assert.Equal(t, "i42", gw.deletedIncomeID)
}

func Test_OnExpiredTokenDuringFetch_ShouldLogoutAndAskToRelogin(t *testing.T) {
	gw := &fakeGateway{err: &customerr.AuthError{Err: "jwt expired"}}
	h, sessions, _, _ := newTestHandler(userSession(), gw)

	resp, err := h.HandleMessage(context.Background(), "/income list", 123)

	assert.Error(t, err)
	assert.Equal(t, sessionExpiredMessage, resp)
	assert.True(t, sessions.loggedOut)
}

func Test_OnDashboard_ShouldRenderTotalsAndCacheView(t *testing.T) {
	gw := &fakeGateway{
		incomes: []record.Income{
			{Source: "Salary", Amount: 3000, Date: record.Date{Time: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}},
		},
		expenses: []record.Expense{
			{Category: "Rent", Amount: 1000, Date: record.Date{Time: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)}},
		},
	}
	h, _, store, _ := newTestHandler(userSession(), gw)

	resp, err := h.HandleMessage(context.Background(), "/dashboard", 123)

	require.NoError(t, err)
	assert.Contains(t, resp, "Welcome back, Alice!")
	assert.Contains(t, resp, "Balance: 2000.00")
	assert.Contains(t, resp, "Savings rate: 66.7%")
	assert.Contains(t, resp, "Rent")

	cached, err := store.GetView(123, dashboardView)
	require.NoError(t, err)
	assert.Equal(t, resp, cached)
}

func Test_OnDashboardWithCachedView_ShouldSkipGateway(t *testing.T) {
	gw := &fakeGateway{err: &customerr.AuthError{Err: "should not be called"}}
	h, _, store, _ := newTestHandler(userSession(), gw)
	require.NoError(t, store.CacheView(123, dashboardView, "cached dashboard"))

	resp, err := h.HandleMessage(context.Background(), "/dashboard", 123)

	require.NoError(t, err)
	assert.Equal(t, "cached dashboard", resp)
}

func Test_OnAdminIncomesWithFilters_ShouldRenderTableAndStats(t *testing.T) {
	gw := &fakeGateway{
		incomes: []record.Income{
			{
				Source: "Salary",
				Amount: 3000,
				Date:   record.Date{Time: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
				Owner:  &record.Owner{Email: "alice@mail.com"},
			},
			{
				Source: "Bonus",
				Amount: 500,
				Date:   record.Date{Time: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
				Owner:  &record.Owner{Email: "bob@mail.com"},
			},
		},
	}
	h, _, _, _ := newTestHandler(adminSession(), gw)

	resp, err := h.HandleMessage(context.Background(), "/incomes alice", 123)

	require.NoError(t, err)
	assert.Contains(t, resp, "Source | Amount | Date | User")
	assert.Contains(t, resp, "Salary")
	assert.NotContains(t, resp, "Bonus")
	assert.Contains(t, resp, "Total: 3000.00, records: 1, average: 3000.00")
}

func Test_OnAdminIncomesWithoutMatches_ShouldSayNoRecords(t *testing.T) {
	gw := &fakeGateway{}
	h, _, _, _ := newTestHandler(adminSession(), gw)

	resp, err := h.HandleMessage(context.Background(), "/incomes zzz", 123)

	require.NoError(t, err)
	assert.Equal(t, noMatchMessage, resp)
}

func Test_OnUsersWithRoleFilter_ShouldListMatching(t *testing.T) {
	gw := &fakeGateway{
		users: []record.User{
			{ID: "u1", Name: "Alice", Email: "alice@mail.com", Role: record.RoleAdmin, Active: true},
			{ID: "u2", Name: "Bob", Email: "bob@mail.com", Role: record.RoleUser, Active: false},
		},
	}
	h, _, _, _ := newTestHandler(adminSession(), gw)

	resp, err := h.HandleMessage(context.Background(), "/users role=user", 123)

	require.NoError(t, err)
	assert.Contains(t, resp, "Bob")
	assert.Contains(t, resp, "inactive")
	assert.NotContains(t, resp, "Alice")
}

func Test_OnUserRoleChange_ShouldPreserveOtherFields(t *testing.T) {
	gw := &fakeGateway{
		users: []record.User{
			{ID: "u2", Name: "Bob", Email: "bob@mail.com", Role: record.RoleUser, Active: true},
		},
	}
	h, _, _, _ := newTestHandler(adminSession(), gw)

	resp, err := h.HandleMessage(context.Background(), "/user role u2 admin", 123)

	require.NoError(t, err)
	assert.Equal(t, "Bob is now admin", resp)
	assert.Equal(t, "u2", gw.updatedUserID)
	require.NotNil(t, gw.updatedUser)
	assert.Equal(t, record.UserDraft{Name: "Bob", Email: "bob@mail.com", Role: record.RoleAdmin, Active: true}, *gw.updatedUser)
}

func Test_OnExport_ShouldQueueRequestWithAdminToken(t *testing.T) {
	h, _, _, producer := newTestHandler(adminSession(), &fakeGateway{})

	resp, err := h.HandleMessage(context.Background(), "/export incomes min=100 sort=amount:desc", 123)

	require.NoError(t, err)
	assert.Equal(t, exportQueuedMessage, resp)
	require.Len(t, producer.produced, 1)

	var req reports.ExportRequest
	require.NoError(t, json.Unmarshal(producer.produced[0], &req))
	assert.Equal(t, int64(123), req.ChatID)
	assert.Equal(t, "tok", req.Token)
	assert.Equal(t, reports.ScopeIncomes, req.Scope)
	require.NotNil(t, req.Filters.MinAmount)
	assert.Equal(t, 100.0, *req.Filters.MinAmount)
	assert.Equal(t, reports.SortConfig{Key: reports.SortByAmount, Direction: reports.Desc}, req.Sort)
}

func Test_OnExportWithUnknownScope_ShouldRefuse(t *testing.T) {
	h, _, _, producer := newTestHandler(adminSession(), &fakeGateway{})

	resp, err := h.HandleMessage(context.Background(), "/export users", 123)

	require.NoError(t, err)
	assert.Equal(t, incorrectUsageMessage, resp)
	assert.Empty(t, producer.produced)
}
