package messages

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"dhaqaaleeye/finance-bot/internal/entity/record"
	"dhaqaaleeye/finance-bot/internal/model/reports"
	"dhaqaaleeye/finance-bot/internal/model/session"
)

func (s *HandlerService) handleAdmin(ctx context.Context, sess session.Session, _ string, userID int64) (string, error) {
	var (
		users    []record.User
		incomes  []record.Income
		expenses []record.Expense
	)
	errs := make(chan error, 3)

	go func() {
		var err error
		users, err = s.gateway.ListUsers(ctx, sess.Token)
		errs <- err
	}()
	go func() {
		var err error
		incomes, err = s.gateway.ListAllIncomes(ctx, sess.Token)
		errs <- err
	}()
	go func() {
		var err error
		expenses, err = s.gateway.ListAllExpenses(ctx, sess.Token)
		errs <- err
	}()

	var firstErr error
	for i := 0; i < 3; i++ {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return s.failure(ctx, userID, firstErr, cannotFetchMessage)
	}

	lines := []string{
		"Admin overview",
		fmt.Sprintf("Users: %d", len(users)),
		fmt.Sprintf("Income records: %d, total: %s", len(incomes), formatMoney(sumIncomes(incomes))),
		fmt.Sprintf("Expense records: %d, total: %s", len(expenses), formatMoney(sumExpenses(expenses))),
	}

	txs := mergeTransactions(incomes, expenses, s.recentCount)
	if len(txs) > 0 {
		lines = append(lines, "", "Recent transactions:", formatTransactions(txs))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *HandlerService) handleAdminIncomes(ctx context.Context, sess session.Session, arg string, userID int64) (string, error) {
	return s.adminTable(ctx, sess, arg, userID, reports.ScopeIncomes)
}

func (s *HandlerService) handleAdminExpenses(ctx context.Context, sess session.Session, arg string, userID int64) (string, error) {
	return s.adminTable(ctx, sess, arg, userID, reports.ScopeExpenses)
}

func (s *HandlerService) adminTable(ctx context.Context, sess session.Session, arg string, userID int64, scope string) (string, error) {
	search, filters, sc, err := parseFilterArgs(arg)
	if err != nil {
		return incorrectFilterMessage, errors.Wrap(err, "admin table")
	}

	rows, err := s.fetchRows(ctx, sess.Token, scope)
	if err != nil {
		return s.failure(ctx, userID, err, cannotFetchMessage)
	}

	rows = reports.Filter(rows, search, filters)
	if len(rows) == 0 {
		return noMatchMessage, nil
	}

	stats := reports.Aggregate(rows)
	rows = reports.Sort(rows, sc)

	return formatRowTable(reports.LabelHeader(scope), rows) + "\n\n" + formatStats(stats), nil
}

func (s *HandlerService) fetchRows(ctx context.Context, token, scope string) ([]reports.Row, error) {
	if scope == reports.ScopeExpenses {
		expenses, err := s.gateway.ListAllExpenses(ctx, token)
		if err != nil {
			return nil, err
		}
		return reports.ExpenseRows(expenses), nil
	}
	incomes, err := s.gateway.ListAllIncomes(ctx, token)
	if err != nil {
		return nil, err
	}
	return reports.IncomeRows(incomes), nil
}

func (s *HandlerService) handleUsers(ctx context.Context, sess session.Session, arg string, userID int64) (string, error) {
	search, role, field, asc, err := parseUserArgs(arg)
	if err != nil {
		return incorrectFilterMessage, errors.Wrap(err, "handle users")
	}

	users, err := s.gateway.ListUsers(ctx, sess.Token)
	if err != nil {
		return s.failure(ctx, userID, err, cannotFetchUsersMessage)
	}

	users = filterUsers(users, search, role)
	if len(users) == 0 {
		return noUsersMessage, nil
	}
	sortUsers(users, field, asc)

	lines := make([]string, 0, len(users)+2)
	lines = append(lines, fmt.Sprintf("Users: %d", len(users)))
	lines = append(lines, "ID | Name | Email | Role | Status")
	for _, u := range users {
		status := "active"
		if !u.Active {
			status = "inactive"
		}
		lines = append(lines, fmt.Sprintf("%s | %s | %s | %s | %s",
			u.ID, u.Name, u.Email, u.Role, status))
	}
	return strings.Join(lines, "\n"), nil
}

// parseUserArgs reads /users arguments: bare tokens form the search term,
// role= narrows by role and sort=name|email[:asc|desc] picks the order.
func parseUserArgs(arg string) (search, role, field string, asc bool, err error) {
	field, asc = "name", true
	var terms []string

	for _, tok := range strings.Fields(arg) {
		key, value, found := strings.Cut(tok, "=")
		if !found {
			terms = append(terms, tok)
			continue
		}

		switch key {
		case "role":
			if value != string(record.RoleAdmin) && value != string(record.RoleUser) {
				return "", "", "", false, errors.Errorf("unknown role %s", value)
			}
			role = value
		case "sort":
			keyPart, dirPart, hasDir := strings.Cut(value, ":")
			if keyPart != "name" && keyPart != "email" {
				return "", "", "", false, errors.Errorf("cannot sort users by %s", keyPart)
			}
			field = keyPart
			if hasDir {
				switch dirPart {
				case "asc":
				case "desc":
					asc = false
				default:
					return "", "", "", false, errors.Errorf("unknown sort direction %s", dirPart)
				}
			}
		default:
			return "", "", "", false, errors.Errorf("unknown filter %s", key)
		}
	}
	return strings.Join(terms, " "), role, field, asc, nil
}

func filterUsers(users []record.User, search, role string) []record.User {
	search = strings.ToLower(search)

	res := make([]record.User, 0, len(users))
	for _, u := range users {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		if role != "" && string(u.Role) != role {
			continue
		}
		res = append(res, u)
	}
	return res
}

func sortUsers(users []record.User, field string, asc bool) {
	sort.SliceStable(users, func(i, j int) bool {
		a, b := users[i].Name, users[j].Name
		if field == "email" {
			a, b = users[i].Email, users[j].Email
		}
		less := strings.ToLower(a) < strings.ToLower(b)
		if !asc {
			return !less
		}
		return less
	})
}

func (s *HandlerService) handleUserCommand(ctx context.Context, sess session.Session, arg string, userID int64) (string, error) {
	sub, rest := splitSub(arg)
	switch sub {
	case "role":
		return s.changeUserRole(ctx, sess, rest, userID)
	case "del":
		return s.deleteUser(ctx, sess, rest, userID)
	}
	return incorrectUsageMessage, nil
}

func (s *HandlerService) changeUserRole(ctx context.Context, sess session.Session, rest string, userID int64) (string, error) {
	args := strings.Fields(rest)
	if len(args) != 2 {
		return incorrectUsageMessage, nil
	}
	id, role := args[0], args[1]
	if role != string(record.RoleAdmin) && role != string(record.RoleUser) {
		return incorrectUsageMessage, nil
	}

	users, err := s.gateway.ListUsers(ctx, sess.Token)
	if err != nil {
		return s.failure(ctx, userID, err, cannotFetchUsersMessage)
	}

	var target *record.User
	for i := range users {
		if users[i].ID == id {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return "There is no user with this id", nil
	}

	draft := record.UserDraft{
		Name:   target.Name,
		Email:  target.Email,
		Role:   record.Role(role),
		Active: target.Active,
	}
	if err = s.gateway.UpdateUser(ctx, sess.Token, id, draft); err != nil {
		return s.failure(ctx, userID, err, cannotSaveMessage)
	}
	return fmt.Sprintf("%s is now %s", target.Name, role), nil
}

func (s *HandlerService) deleteUser(ctx context.Context, sess session.Session, rest string, userID int64) (string, error) {
	if rest == "" || len(strings.Fields(rest)) != 1 {
		return incorrectUsageMessage, nil
	}
	if err := s.gateway.DeleteUser(ctx, sess.Token, rest); err != nil {
		return s.failure(ctx, userID, err, cannotDeleteMessage)
	}
	return "User deleted", nil
}

// handleExport queues the export for the reporter instead of generating the
// file inline, the finished CSV comes back through the results topic.
func (s *HandlerService) handleExport(ctx context.Context, sess session.Session, arg string, userID int64) (string, error) {
	scope, rest := splitSub(arg)
	if scope != reports.ScopeIncomes && scope != reports.ScopeExpenses {
		return incorrectUsageMessage, nil
	}

	search, filters, sc, err := parseFilterArgs(rest)
	if err != nil {
		return incorrectFilterMessage, errors.Wrap(err, "handle export")
	}

	req := reports.ExportRequest{
		ChatID:  userID,
		Token:   sess.Token,
		Scope:   scope,
		Search:  search,
		Filters: filters,
		Sort:    sc,
	}
	raw, err := json.Marshal(req)
	if err != nil {
		return somethingWrongMessage, errors.Wrap(err, "marshal export request")
	}

	if err = s.exports.ProduceMessage(raw); err != nil {
		return cannotExportMessage, errors.Wrap(err, "queue export")
	}
	return exportQueuedMessage, nil
}
