package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/cache"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)(?::([^}]+))?\}\}`)

func (t *testContext) theCurrentDateIs(date string) error {
	day, err := valueobject.ParseDate(date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) theExportLimitIs(limit int) error {
	t.cfg.Export.RateLimit = limit
	return nil
}

func (t *testContext) ownerID(name string) uuid.UUID {
	id, ok := t.owners[name]
	if !ok {
		id = uuid.New()
		t.owners[name] = id
	}
	return id
}

func (t *testContext) iAmTheOwner(name string) error {
	t.owner = t.ownerID(name)
	t.headers[middleware.OwnerHeader] = t.owner.String()
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) requireOwner() error {
	if t.owner == uuid.Nil {
		return errors.New("no owner selected, use: I am the owner \"name\"")
	}
	return nil
}

func (t *testContext) theOwnerHasAnAccount(name, accountType, balance string) error {
	return t.createAccount(name, entity.AccountType(accountType), balance, true)
}

func (t *testContext) theOwnerHasAnInactiveAccount(name, balance string) error {
	return t.createAccount(name, entity.AccountTypeSavings, balance, false)
}

func (t *testContext) createAccount(name string, accountType entity.AccountType, balance string, active bool) error {
	if err := t.requireOwner(); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	account := entity.NewAccount(t.owner, name, accountType, amount, nil, nil)
	account.IsActive = active
	if err := t.db.DbConn.Create(model.AccountFromEntity(account)).Error; err != nil {
		return err
	}
	t.accounts[name] = account.ID
	return nil
}

func (t *testContext) theOwnerHasACategory(name, categoryType string) error {
	if err := t.requireOwner(); err != nil {
		return err
	}
	category := entity.NewCategory(t.owner, name, entity.CategoryType(categoryType), nil, nil, nil)
	if err := t.db.DbConn.Create(model.CategoryFromEntity(category)).Error; err != nil {
		return err
	}
	t.categories[name] = category.ID
	return nil
}

// theOwnerHasTheTransactions seeds rows of a table with the columns
// date, description, amount, type, category (optional) and account.
func (t *testContext) theOwnerHasTheTransactions(table *godog.Table) error {
	if err := t.requireOwner(); err != nil {
		return err
	}
	if len(table.Rows) < 2 {
		return errors.New("transaction table needs a header and at least one row")
	}

	rows := make([][]string, 0, len(table.Rows))
	for _, r := range table.Rows {
		cells := make([]string, len(r.Cells))
		for i, cell := range r.Cells {
			cells[i] = strings.TrimSpace(cell.Value)
		}
		rows = append(rows, cells)
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		columns[name] = i
	}
	value := func(row []string, column string) string {
		if i, ok := columns[column]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	for _, row := range rows[1:] {
		date, err := valueobject.ParseDate(value(row, "date"))
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		amount, err := decimal.NewFromString(value(row, "amount"))
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		accountID, ok := t.accounts[value(row, "account")]
		if !ok {
			return fmt.Errorf("unknown account %q", value(row, "account"))
		}

		var categoryID *uuid.UUID
		if name := value(row, "category"); name != "" {
			id, ok := t.categories[name]
			if !ok {
				return fmt.Errorf("unknown category %q", name)
			}
			categoryID = &id
		}

		tx := entity.NewTransaction(t.owner, accountID, categoryID, value(row, "description"), amount,
			entity.TransactionType(value(row, "type")), date)
		if err := t.db.DbConn.Create(model.TransactionFromEntity(tx)).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theOwnerHasABudget(amount, categoryName string, month, year int) error {
	if err := t.requireOwner(); err != nil {
		return err
	}
	limit, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	categoryID, ok := t.categories[categoryName]
	if !ok {
		return fmt.Errorf("unknown category %q", categoryName)
	}
	budget := entity.NewBudget(t.owner, categoryID, month, year, limit)
	return t.db.DbConn.Create(model.BudgetFromEntity(budget)).Error
}

func (t *testContext) theOwnerHasAGoal(title, target, current string) error {
	if err := t.requireOwner(); err != nil {
		return err
	}
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", target, err)
	}
	currentAmount, err := decimal.NewFromString(current)
	if err != nil {
		return fmt.Errorf("invalid current amount %q: %w", current, err)
	}
	goal := entity.NewGoal(t.owner, title, nil, targetAmount, currentAmount, nil)
	if err := t.db.DbConn.Create(model.GoalFromEntity(goal)).Error; err != nil {
		return err
	}
	t.goals[title] = goal.ID
	return nil
}

// theCategoryIsDeleted soft-deletes the category directly in storage,
// leaving its transactions and budgets pointing at it.
func (t *testContext) theCategoryIsDeleted(name string) error {
	id, ok := t.categories[name]
	if !ok {
		return fmt.Errorf("unknown category %q", name)
	}
	return t.db.DbConn.Delete(&model.CategoryModel{}, "id = ?", id).Error
}

// replacePlaceholders resolves {{last_id}}, {{owner}}, {{owner:name}},
// {{account:name}}, {{category:name}} and {{goal:title}}.
func (t *testContext) replacePlaceholders(content string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := placeholderPattern.FindStringSubmatch(match)
		kind, name := parts[1], parts[2]
		switch kind {
		case "last_id":
			return t.lastID.String()
		case "owner":
			if name == "" {
				return t.owner.String()
			}
			return t.ownerID(name).String()
		case "account":
			return t.accounts[name].String()
		case "category":
			return t.categories[name].String()
		case "goal":
			return t.goals[name].String()
		}
		return match
	})
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if t.server == nil {
		return errors.New("the API server is not running")
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, t.server.URL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode, header: resp.Header, raw: bodyBytes}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}
	return nil
}

func (t *testContext) theReportCacheExpires() error {
	t.redis.FastForward(t.cfg.Redis.TTL + time.Second)
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %s", t.response.raw)
	}
	return body, nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	_, err := t.jsonBody()
	return err
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

// theResponseFieldShouldEqualAmount compares decimals numerically, so "42.1"
// matches "42.10".
func (t *testContext) theResponseFieldShouldEqualAmount(field, expected string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actual, err := decimal.NewFromString(fmt.Sprintf("%v", value))
	if err != nil {
		return fmt.Errorf("field '%s' is not a number: %v", field, value)
	}
	want, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid expected amount %q: %w", expected, err)
	}
	if !actual.Equal(want) {
		return fmt.Errorf("field '%s' expected %s, got %s", field, want, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldBe(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if got := t.response.header.Get(header); got != expected {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", header, expected, got)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldBe(content *godog.DocString) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	want := strings.TrimSpace(t.replacePlaceholders(content.Content))
	got := strings.TrimSpace(strings.ReplaceAll(string(t.response.raw), "\r\n", "\n"))
	if got != want {
		return fmt.Errorf("body mismatch.\nexpected:\n%s\ngot:\n%s", want, got)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

// countRows counts live rows of table matching criteria.
func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	m, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(m).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Model(m)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theReportCacheShouldHoldEntries(count int) error {
	keys, err := t.redisCli.Keys(context.Background(), cache.Key(t.owner, "*")).Result()
	if err != nil {
		return err
	}
	if len(keys) != count {
		return fmt.Errorf("expected %d cached reports, got %d: %v", count, len(keys), keys)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
