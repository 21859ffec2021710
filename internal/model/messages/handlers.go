package messages

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dhaqaaleeye/finance-bot/internal/entity/record"
	"dhaqaaleeye/finance-bot/internal/logger"
	"dhaqaaleeye/finance-bot/internal/model/customerr"
	"dhaqaaleeye/finance-bot/internal/model/session"
)

const apiDateLayout = "2006-01-02"

const (
	helloMessage = "Hello! I am the Dhaqaaleeye finance bot 🤖\n" +
		"Send /help to see what I can do."
	dontUnderstandMessage = "I don't understand you :( See /help"
	loveToTalkMessage     = "I would love to talk about it more!"
	okMessage             = "Gotcha!"
	somethingWrongMessage = "Sorry, something wrong happened..."

	notLoggedInMessage    = "Please /login first (or /register if you are new)"
	adminOnlyMessage      = "This command needs an admin account"
	sessionExpiredMessage = "Your session has expired. Please /login again"
	loginFailedMessage    = "Login failed. Check your email and password"
	registerFailedMessage = "Can't register this account atm. Try later"
	loggedOutMessage      = "Logged out. See you!"

	incorrectUsageMessage  = "That is an incorrect command usage. See /help"
	incorrectAmountMessage = "The amount is incorrect"
	incorrectDateMessage   = "The date is incorrect. Should be dd.mm.yyyy"
	incorrectFilterMessage = "Can't read those filters. Example: salary min=100 sort=amount:desc"

	cannotFetchMessage      = "Can't fetch your records atm. Try later"
	cannotSaveMessage       = "Can't save the record atm. Try later"
	cannotDeleteMessage     = "Can't delete the record atm. Try later"
	cannotFetchUsersMessage = "Can't fetch users atm. Try later"
	cannotExportMessage     = "Can't queue the export atm. Try later"

	noIncomesMessage  = "You have no incomes yet"
	noExpensesMessage = "You have no expenses yet"
	noMatchMessage    = "No records match your filters"
	noUsersMessage    = "No users match your search"

	exportQueuedMessage = "Export queued. I will send the file when it is ready"
)

const helpMessage = `Commands:
/register <email> <password> <name> — create an account
/login <email> <password>
/logout
/me — your profile
/income add <source> <amount> [dd.mm.yyyy]
/income list
/income edit <id> <source> <amount> [dd.mm.yyyy]
/income del <id>
/expense add|list|edit|del — same, with a category instead of a source
/dashboard — totals, savings rate and recent transactions

Admin:
/admin — overview across all users
/incomes [filters] — all income records
/expenses [filters] — all expense records
/users [search] [role=admin|user] [sort=name|email:asc|desc]
/user role <id> <admin|user>
/user del <id>
/export incomes|expenses [filters] — CSV export, sent as a file

Filters: free words search label and owner email; also
label=<text> min=<amount> max=<amount> from=<dd.mm.yyyy> to=<dd.mm.yyyy>
period=week|month|year sort=label|amount|date[:asc|desc]`

const dashboardView = "dashboard"

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type authedHandler func(ctx context.Context, sess session.Session, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type sessionManager interface {
	Resolve(ctx context.Context, userID int64) (session.Session, error)
	Login(ctx context.Context, userID int64, email, password string) (record.User, error)
	Register(ctx context.Context, userID int64, name, email, password string) (record.User, error)
	Logout(ctx context.Context, userID int64) error
}

type financeGateway interface {
	ListIncomes(ctx context.Context, token string) ([]record.Income, error)
	ListAllIncomes(ctx context.Context, token string) ([]record.Income, error)
	CreateIncome(ctx context.Context, token string, draft record.IncomeDraft) error
	UpdateIncome(ctx context.Context, token, id string, draft record.IncomeDraft) error
	DeleteIncome(ctx context.Context, token, id string) error

	ListExpenses(ctx context.Context, token string) ([]record.Expense, error)
	ListAllExpenses(ctx context.Context, token string) ([]record.Expense, error)
	CreateExpense(ctx context.Context, token string, draft record.ExpenseDraft) error
	UpdateExpense(ctx context.Context, token, id string, draft record.ExpenseDraft) error
	DeleteExpense(ctx context.Context, token, id string) error

	ListUsers(ctx context.Context, token string) ([]record.User, error)
	UpdateUser(ctx context.Context, token, id string, draft record.UserDraft) error
	DeleteUser(ctx context.Context, token, id string) error
}

type viewCache interface {
	CacheView(userID int64, view, text string) error
	GetView(userID int64, view string) (string, error)
	InvalidateViews(userID int64, views []string) error
}

type exportProducer interface {
	ProduceMessage(message []byte) error
}

type config interface {
	RecentCount() int
}

type HandlerService struct {
	handlersMap handlerMap
	sessions    sessionManager
	gateway     financeGateway
	cache       viewCache
	exports     exportProducer
	recentCount int
}

func NewHandler(sessions sessionManager, gateway financeGateway, cache viewCache, exports exportProducer, cfg config) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		sessions:    sessions,
		gateway:     gateway,
		cache:       cache,
		exports:     exports,
		recentCount: cfg.RecentCount(),
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m["/start"] = s.handleStart
	m["/help"] = s.handleHelp
	m["/register"] = s.handleRegister
	m["/login"] = s.handleLogin

	m["/logout"] = s.authorized(s.handleLogout)
	m["/me"] = s.authorized(s.handleMe)
	m["/income"] = s.authorized(s.handleIncome)
	m["/expense"] = s.authorized(s.handleExpense)
	m["/dashboard"] = s.authorized(s.handleDashboard)

	m["/admin"] = s.adminOnly(s.handleAdmin)
	m["/incomes"] = s.adminOnly(s.handleAdminIncomes)
	m["/expenses"] = s.adminOnly(s.handleAdminExpenses)
	m["/users"] = s.adminOnly(s.handleUsers)
	m["/user"] = s.adminOnly(s.handleUserCommand)
	m["/export"] = s.adminOnly(s.handleExport)

	m[""] = s.handleNoCommand

	return m
}

// authorized resolves the chat's session before the view runs; an
// unauthenticated chat gets a login prompt instead of the view.
func (s *HandlerService) authorized(h authedHandler) handler {
	return func(ctx context.Context, arg string, userID int64) (string, error) {
		sess, err := s.sessions.Resolve(ctx, userID)
		if err != nil {
			return somethingWrongMessage, errors.Wrap(err, "authorize")
		}
		if !sess.Authenticated() {
			return notLoggedInMessage, nil
		}
		return h(ctx, sess, arg, userID)
	}
}

func (s *HandlerService) adminOnly(h authedHandler) handler {
	return s.authorized(func(ctx context.Context, sess session.Session, arg string, userID int64) (string, error) {
		if !sess.Admin() {
			return adminOnlyMessage, nil
		}
		return h(ctx, sess, arg, userID)
	})
}

// failure maps a gateway error onto the user-visible reply. A rejected
// credential drops the session so the next command starts logged out.
func (s *HandlerService) failure(ctx context.Context, userID int64, err error, fallback string) (string, error) {
	if customerr.IsAuth(err) {
		_ = s.sessions.Logout(ctx, userID)
		return sessionExpiredMessage, err
	}
	if customerr.IsRole(err) {
		return adminOnlyMessage, err
	}
	return fallback, err
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ int64) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) handleRegister(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 3 {
		return incorrectUsageMessage, nil
	}
	email, password, name := args[0], args[1], strings.Join(args[2:], " ")

	u, err := s.sessions.Register(ctx, userID, name, email, password)
	if err != nil {
		return registerFailedMessage, errors.Wrap(err, "handle register")
	}
	return "Welcome, " + u.Name + "! You are registered and logged in.", nil
}

func (s *HandlerService) handleLogin(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 2 {
		return incorrectUsageMessage, nil
	}

	u, err := s.sessions.Login(ctx, userID, args[0], args[1])
	if err != nil {
		if customerr.IsAuth(err) {
			return loginFailedMessage, nil
		}
		return loginFailedMessage, errors.Wrap(err, "handle login")
	}

	resp := "Logged in as " + u.Name
	if u.IsAdmin() {
		resp += "\nYou have admin access, see /help for admin commands"
	}
	return resp, nil
}

func (s *HandlerService) handleLogout(ctx context.Context, _ session.Session, _ string, userID int64) (string, error) {
	if err := s.sessions.Logout(ctx, userID); err != nil {
		return somethingWrongMessage, errors.Wrap(err, "handle logout")
	}
	return loggedOutMessage, nil
}

func (s *HandlerService) handleMe(_ context.Context, sess session.Session, _ string, _ int64) (string, error) {
	return formatProfile(sess.User), nil
}

func splitSub(arg string) (sub, rest string) {
	arg = strings.TrimSpace(arg)
	sub, rest, found := strings.Cut(arg, " ")
	if !found {
		return arg, ""
	}
	return sub, strings.TrimSpace(rest)
}

func (s *HandlerService) handleIncome(ctx context.Context, sess session.Session, arg string, userID int64) (string, error) {
	sub, rest := splitSub(arg)
	switch sub {
	case "", "list":
		return s.listIncomes(ctx, sess, userID)
	case "add":
		return s.addIncome(ctx, sess, rest, userID)
	case "edit":
		return s.editIncome(ctx, sess, rest, userID)
	case "del":
		return s.deleteIncome(ctx, sess, rest, userID)
	}
	return incorrectUsageMessage, nil
}

func (s *HandlerService) listIncomes(ctx context.Context, sess session.Session, userID int64) (string, error) {
	incomes, err := s.gateway.ListIncomes(ctx, sess.Token)
	if err != nil {
		return s.failure(ctx, userID, err, cannotFetchMessage)
	}
	if len(incomes) == 0 {
		return noIncomesMessage, nil
	}

	lines := make([]string, 0, len(incomes)+1)
	lines = append(lines, "ID | Source | Amount | Date")
	for _, in := range incomes {
		lines = append(lines, in.ID+" | "+in.Source+
			" | +"+formatMoney(in.Amount.Value())+" | "+formatDate(in.Date.Time))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) addIncome(ctx context.Context, sess session.Session, rest string, userID int64) (string, error) {
	args := strings.Fields(rest)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}
	amount, date, msg, err := parseAmountAndDate(args[1:])
	if err != nil {
		return msg, errors.Wrap(err, "handle income add")
	}

	draft := record.IncomeDraft{
		Source: args[0],
		Amount: amount,
		Date:   date.Format(apiDateLayout),
	}
	if err = s.gateway.CreateIncome(ctx, sess.Token, draft); err != nil {
		return s.failure(ctx, userID, err, cannotSaveMessage)
	}
	s.invalidateDashboard(userID)
	return okMessage, nil
}

func (s *HandlerService) editIncome(ctx context.Context, sess session.Session, rest string, userID int64) (string, error) {
	args := strings.Fields(rest)
	if len(args) < 3 {
		return incorrectUsageMessage, nil
	}
	amount, date, msg, err := parseAmountAndDate(args[2:])
	if err != nil {
		return msg, errors.Wrap(err, "handle income edit")
	}

	draft := record.IncomeDraft{
		Source: args[1],
		Amount: amount,
		Date:   date.Format(apiDateLayout),
	}
	if err = s.gateway.UpdateIncome(ctx, sess.Token, args[0], draft); err != nil {
		return s.failure(ctx, userID, err, cannotSaveMessage)
	}
	s.invalidateDashboard(userID)
	return okMessage, nil
}

func (s *HandlerService) deleteIncome(ctx context.Context, sess session.Session, rest string, userID int64) (string, error) {
	if rest == "" || len(strings.Fields(rest)) != 1 {
		return incorrectUsageMessage, nil
	}
	if err := s.gateway.DeleteIncome(ctx, sess.Token, rest); err != nil {
		return s.failure(ctx, userID, err, cannotDeleteMessage)
	}
	s.invalidateDashboard(userID)
	return okMessage, nil
}

func (s *HandlerService) handleExpense(ctx context.Context, sess session.Session, arg string, userID int64) (string, error) {
	sub, rest := splitSub(arg)
	switch sub {
	case "", "list":
		return s.listExpenses(ctx, sess, userID)
	case "add":
		return s.addExpense(ctx, sess, rest, userID)
	case "edit":
		return s.editExpense(ctx, sess, rest, userID)
	case "del":
		return s.deleteExpense(ctx, sess, rest, userID)
	}
	return incorrectUsageMessage, nil
}

func (s *HandlerService) listExpenses(ctx context.Context, sess session.Session, userID int64) (string, error) {
	expenses, err := s.gateway.ListExpenses(ctx, sess.Token)
	if err != nil {
		return s.failure(ctx, userID, err, cannotFetchMessage)
	}
	if len(expenses) == 0 {
		return noExpensesMessage, nil
	}

	lines := make([]string, 0, len(expenses)+1)
	lines = append(lines, "ID | Category | Amount | Date")
	for _, ex := range expenses {
		lines = append(lines, ex.ID+" | "+ex.Category+
			" | -"+formatMoney(ex.Amount.Value())+" | "+formatDate(ex.Date.Time))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) addExpense(ctx context.Context, sess session.Session, rest string, userID int64) (string, error) {
	args := strings.Fields(rest)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}
	amount, date, msg, err := parseAmountAndDate(args[1:])
	if err != nil {
		return msg, errors.Wrap(err, "handle expense add")
	}

	draft := record.ExpenseDraft{
		Category: args[0],
		Amount:   amount,
		Date:     date.Format(apiDateLayout),
	}
	if err = s.gateway.CreateExpense(ctx, sess.Token, draft); err != nil {
		return s.failure(ctx, userID, err, cannotSaveMessage)
	}
	s.invalidateDashboard(userID)
	return okMessage, nil
}

func (s *HandlerService) editExpense(ctx context.Context, sess session.Session, rest string, userID int64) (string, error) {
	args := strings.Fields(rest)
	if len(args) < 3 {
		return incorrectUsageMessage, nil
	}
	amount, date, msg, err := parseAmountAndDate(args[2:])
	if err != nil {
		return msg, errors.Wrap(err, "handle expense edit")
	}

	draft := record.ExpenseDraft{
		Category: args[1],
		Amount:   amount,
		Date:     date.Format(apiDateLayout),
	}
	if err = s.gateway.UpdateExpense(ctx, sess.Token, args[0], draft); err != nil {
		return s.failure(ctx, userID, err, cannotSaveMessage)
	}
	s.invalidateDashboard(userID)
	return okMessage, nil
}

func (s *HandlerService) deleteExpense(ctx context.Context, sess session.Session, rest string, userID int64) (string, error) {
	if rest == "" || len(strings.Fields(rest)) != 1 {
		return incorrectUsageMessage, nil
	}
	if err := s.gateway.DeleteExpense(ctx, sess.Token, rest); err != nil {
		return s.failure(ctx, userID, err, cannotDeleteMessage)
	}
	s.invalidateDashboard(userID)
	return okMessage, nil
}

func parseAmountAndDate(args []string) (amount float64, date time.Time, msg string, err error) {
	amount, err = strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		if err == nil {
			err = errors.New("amount must be positive")
		}
		return 0, time.Time{}, incorrectAmountMessage, errors.Wrap(err, "parse amount")
	}

	date = time.Now()
	if len(args) > 1 {
		date, err = time.Parse(dateLayout, args[1])
		if err != nil {
			return 0, time.Time{}, incorrectDateMessage, errors.Wrap(err, "parse date")
		}
	}
	return amount, date, "", nil
}

func (s *HandlerService) handleDashboard(ctx context.Context, sess session.Session, _ string, userID int64) (string, error) {
	if cached, err := s.cache.GetView(userID, dashboardView); err == nil && cached != "" {
		return cached, nil
	}

	incomes, expenses, err := s.fetchOwnRecords(ctx, sess.Token)
	if err != nil {
		return s.failure(ctx, userID, err, cannotFetchMessage)
	}

	text := s.renderDashboard(sess.User, incomes, expenses)
	if err = s.cache.CacheView(userID, dashboardView, text); err != nil {
		logger.Warn("cannot cache dashboard", zap.Error(err))
	}
	return text, nil
}

// fetchOwnRecords issues both list calls concurrently and waits for both
// before rendering anything.
func (s *HandlerService) fetchOwnRecords(ctx context.Context, token string) ([]record.Income, []record.Expense, error) {
	var (
		incomes  []record.Income
		expenses []record.Expense
	)
	errs := make(chan error, 2)

	go func() {
		var err error
		incomes, err = s.gateway.ListIncomes(ctx, token)
		errs <- err
	}()
	go func() {
		var err error
		expenses, err = s.gateway.ListExpenses(ctx, token)
		errs <- err
	}()

	var firstErr error
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}
	return incomes, expenses, nil
}

func (s *HandlerService) renderDashboard(u record.User, incomes []record.Income, expenses []record.Expense) string {
	totalIncome := sumIncomes(incomes)
	totalExpense := sumExpenses(expenses)
	balance := totalIncome - totalExpense

	savingsRate := 0.0
	if totalIncome > 0 {
		savingsRate = balance / totalIncome * 100
	}

	name := u.Name
	if name == "" {
		name = "User"
	}

	lines := []string{
		"Welcome back, " + name + "!",
		"Balance: " + formatMoney(balance),
		"Total income: " + formatMoney(totalIncome),
		"Total expenses: " + formatMoney(totalExpense),
		"Savings rate: " + strconv.FormatFloat(savingsRate, 'f', 1, 64) + "%",
	}

	txs := mergeTransactions(incomes, expenses, s.recentCount)
	if len(txs) > 0 {
		lines = append(lines, "", "Recent transactions:", formatTransactions(txs))
	}
	return strings.Join(lines, "\n")
}

func (s *HandlerService) invalidateDashboard(userID int64) {
	if err := s.cache.InvalidateViews(userID, []string{dashboardView}); err != nil {
		logger.Warn("cannot invalidate dashboard", zap.Error(err))
	}
}
