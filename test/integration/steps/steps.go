package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finex/backend/internal/domain/entity"
	"github.com/finex/backend/internal/domain/valueobject"
	"github.com/finex/backend/internal/integration/persistence/model"
)

func (t *testContext) todayIs(date string) error {
	day, err := time.ParseInLocation(valueobject.DateLayout, date, time.UTC)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) anOperatorNamedExists(username, name string) error {
	operator := entity.NewOperator(username, name, entity.OperatorColorBlue)
	if err := t.db.DbConn.Create(model.OperatorFromEntity(operator)).Error; err != nil {
		return err
	}
	t.operatorIDs[operator.Username] = operator.ID
	return nil
}

func (t *testContext) iAmLoggedInAs(username string) error {
	password := t.cfg.Auth.PasswordPrefix + strconv.Itoa(t.timeMock.Now().Year())
	payload, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})

	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login as %s failed with status %d: %v", username, t.response.status, t.response.body)
	}

	token, ok := getFieldValue(t.response.body, "token").(string)
	if !ok || token == "" {
		return fmt.Errorf("login response carries no token: %v", t.response.body)
	}
	t.accessToken = token
	t.response = nil
	return nil
}

// theOperatorHasTheProducts seeds rows from a table with columns name, code, kind and active.
// An empty code cell stores NULL.
func (t *testContext) theOperatorHasTheProducts(username string, table *godog.Table) error {
	operatorID, ok := t.operatorIDs[username]
	if !ok {
		return fmt.Errorf("operator %q was not created in this scenario", username)
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, row := range rows {
		product := &model.ProductModel{
			ID:         uuid.New(),
			Name:       row["name"],
			OperatorID: &operatorID,
			Kind:       model.KindToColumn(entity.Kind(row["kind"])),
			Active:     row["active"] != "false",
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if code := row["code"]; code != "" {
			product.Code = &code
		}
		if err := t.db.DbConn.Create(product).Error; err != nil {
			return err
		}
	}
	return nil
}

// theFollowingMovementsExist seeds rows from a table with columns date, kind, amount and operator.
func (t *testContext) theFollowingMovementsExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		date, err := time.ParseInLocation(valueobject.DateLayout, row["date"], time.UTC)
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return err
		}

		movement := &model.MovementModel{
			ID:        uuid.New(),
			Kind:      model.KindToColumn(entity.Kind(row["kind"])),
			Amount:    amount,
			Date:      date,
			CreatedAt: time.Now().UTC(),
		}
		if username := row["operator"]; username != "" {
			operatorID, ok := t.operatorIDs[username]
			if !ok {
				return fmt.Errorf("operator %q was not created in this scenario", username)
			}
			movement.OperatorID = &operatorID
		}
		if err := t.db.DbConn.Create(movement).Error; err != nil {
			return err
		}
	}
	return nil
}

func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) == 0 {
		return nil, errors.New("table has no header row")
	}

	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, r := range table.Rows[1:] {
		row := make(map[string]string, len(header))
		for i, cell := range r.Cells {
			row[header[i].Value] = cell.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
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

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID)
	for username, id := range t.operatorIDs {
		content = strings.ReplaceAll(content, "{{operator_id:"+username+"}}", id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

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

	t.response = &response{
		status: resp.StatusCode,
		header: resp.Header,
		raw:    bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	if id, ok := responseBody["id"].(string); ok {
		t.lastID = id
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	actual := t.response.header.Get(header)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

// theResponseBodyShouldBeAWorkbook checks the zip signature every xlsx file starts with.
func (t *testContext) theResponseBodyShouldBeAWorkbook() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !bytes.HasPrefix(t.response.raw, []byte("PK\x03\x04")) {
		return fmt.Errorf("response is not a workbook (%d bytes)", len(t.response.raw))
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

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	tableModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entitySlicePtr := reflect.New(reflect.SliceOf(reflect.TypeOf(tableModel).Elem()))

	query := t.db.DbConn.Unscoped()
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

func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object

	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}

