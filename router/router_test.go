package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgetapp/config"
	"budgetapp/database/dbtest"
	"budgetapp/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode, CORSOrigins: []string{"http://localhost:5173"}},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	return SetupRouter(cfg, dbtest.New(t), logger.Nop())
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

type authBody struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

func register(t *testing.T, r http.Handler, email string) authBody {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "name": "Ana", "password": "Lozinka123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var res authBody
	decode(t, w, &res)
	return res
}

func categoryID(t *testing.T, r http.Handler, token, name, typ string) float64 {
	t.Helper()
	w := do(t, r, http.MethodGet, "/api/categories/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cats []map[string]any
	decode(t, w, &cats)
	for _, c := range cats {
		if c["name"] == name && c["type"] == typ {
			return c["id"].(float64)
		}
	}
	t.Fatalf("category %s/%s not found", name, typ)
	return 0
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, testConfig())
	for _, path := range []string{"/health", "/api/health"} {
		w := do(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	}
}

func TestEndToEnd_IncomeOverview(t *testing.T) {
	r := newTestRouter(t, testConfig())
	a := register(t, r, "a@example.com")

	w := do(t, r, http.MethodPost, "/api/categories/", a.AccessToken, map[string]string{"name": "Bonus", "type": "INCOME"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var bonus struct {
		ID   uint   `json:"id"`
		Type string `json:"type"`
	}
	decode(t, w, &bonus)
	assert.Equal(t, "INCOME", bonus.Type)

	w = do(t, r, http.MethodPost, "/api/transactions/", a.AccessToken, map[string]any{
		"type": "INCOME", "category_id": bonus.ID, "amount": 100, "date": "2025-02-10T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/overview?month=2025-02", a.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var ov struct {
		Month         string  `json:"month"`
		IncomeTotal   float64 `json:"income_total"`
		SpendingTotal float64 `json:"spending_total"`
		Balance       float64 `json:"balance"`
		PieBreakdown  []any   `json:"pie_breakdown"`
		Latest        []struct {
			Date string `json:"date"`
		} `json:"latest"`
	}
	decode(t, w, &ov)
	assert.Equal(t, 100.0, ov.IncomeTotal)
	assert.Equal(t, 100.0, ov.Balance)
	assert.Equal(t, 0.0, ov.SpendingTotal)
	assert.NotNil(t, ov.PieBreakdown)
	require.Len(t, ov.Latest, 1)
	assert.Equal(t, "2025-02-10T00:00:00", ov.Latest[0].Date)
}

func TestAuth(t *testing.T) {
	r := newTestRouter(t, testConfig())

	weak := []string{"abcdefg1", "ABCDEFGH", "abcdefgh1", "ABCDEFGH1", "Abcdefgh"}
	for _, p := range weak {
		w := do(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "w@example.com", "name": "W", "password": p})
		assert.Equal(t, http.StatusBadRequest, w.Code, p)
	}
	w := do(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "w@example.com", "password": "Abcdefgh1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, r, http.MethodPost, "/api/auth/register", "", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	a := register(t, r, "a@example.com")
	assert.NotEmpty(t, a.AccessToken)
	assert.Equal(t, "a@example.com", a.User.Email)
	assert.Equal(t, "Ana", a.User.Name)

	w = do(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "a@example.com", "name": "Ana", "password": "Lozinka123"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// 默认类别
	w = do(t, r, http.MethodGet, "/api/categories", a.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cats []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	decode(t, w, &cats)
	assert.Equal(t, []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}{{"Hrana", "EXPENSE"}, {"Plata", "INCOME"}, {"Prevoz", "EXPENSE"}, {"Stanarina", "EXPENSE"}}, cats)

	w = do(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@example.com", "password": "Lozinka123"})
	require.Equal(t, http.StatusOK, w.Code)
	var login authBody
	decode(t, w, &login)
	assert.Equal(t, a.User.ID, login.User.ID)

	wrongPass := do(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@example.com", "password": "Nope12345"})
	noUser := do(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "b@example.com", "password": "Lozinka123"})
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, noUser.Code)
	assert.Equal(t, wrongPass.Body.String(), noUser.Body.String())

	w = do(t, r, http.MethodGet, "/api/auth/me", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"email":"a@example.com","name":"Ana"}`, a.User.ID), w.Body.String())

	for _, token := range []string{"", "garbage"} {
		w = do(t, r, http.MethodGet, "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body map[string]any
		decode(t, w, &body)
		assert.Equal(t, 401.0, body["code"])
		assert.NotEmpty(t, body["message"])
	}
}

func TestCategories(t *testing.T) {
	r := newTestRouter(t, testConfig())
	a := register(t, r, "a@example.com")

	w := do(t, r, http.MethodPost, "/api/categories", a.AccessToken, map[string]string{"name": "Hrana", "type": "EXPENSE"})
	assert.Equal(t, http.StatusConflict, w.Code)
	// 名称相同类型不同可以创建
	w = do(t, r, http.MethodPost, "/api/categories", a.AccessToken, map[string]string{"name": "Hrana", "type": "INCOME"})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/api/categories/", a.AccessToken, map[string]string{"name": " ", "type": "INCOME"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, r, http.MethodPost, "/api/categories/", a.AccessToken, map[string]string{"name": "Bonus", "type": "GIFT"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactions(t *testing.T) {
	r := newTestRouter(t, testConfig())
	a := register(t, r, "a@example.com")
	b := register(t, r, "b@example.com")
	food := categoryID(t, r, a.AccessToken, "Hrana", "EXPENSE")
	salary := categoryID(t, r, a.AccessToken, "Plata", "INCOME")
	foreign := categoryID(t, r, b.AccessToken, "Hrana", "EXPENSE")

	w := do(t, r, http.MethodPost, "/api/transactions/", a.AccessToken, map[string]any{
		"type": "EXPENSE", "category_id": food, "amount": "12.5", "date": "2025-03-01T10:00:00Z", "title": "Ručak", "note": "",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]any
	decode(t, w, &created)
	assert.Equal(t, "2025-03-01T10:00:00", created["date"])
	assert.Equal(t, 12.5, created["amount"])
	assert.Nil(t, created["note"])

	// 类型与类别不一致，无论其他字段是否合法
	for _, body := range []map[string]any{
		{"type": "INCOME", "category_id": food, "amount": 10},
		{"type": "EXPENSE", "category_id": salary, "amount": 0, "date": "2025-01-01"},
	} {
		w = do(t, r, http.MethodPost, "/api/transactions/", a.AccessToken, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	invalid := []struct {
		body   map[string]any
		status int
	}{
		{map[string]any{"type": "LOAN", "category_id": food, "amount": 1}, http.StatusBadRequest},
		{map[string]any{"type": "EXPENSE", "category_id": food, "amount": "abc"}, http.StatusBadRequest},
		{map[string]any{"type": "EXPENSE", "category_id": food, "amount": -1}, http.StatusBadRequest},
		{map[string]any{"type": "EXPENSE", "category_id": "x", "amount": 1}, http.StatusBadRequest},
		{map[string]any{"type": "EXPENSE", "category_id": 99999, "amount": 1}, http.StatusNotFound},
		{map[string]any{"type": "EXPENSE", "category_id": foreign, "amount": 1}, http.StatusNotFound},
	}
	for _, tc := range invalid {
		w = do(t, r, http.MethodPost, "/api/transactions", a.AccessToken, tc.body)
		assert.Equal(t, tc.status, w.Code, tc.body)
	}

	w = do(t, r, http.MethodPost, "/api/transactions", a.AccessToken, map[string]any{
		"type": "INCOME", "category_id": salary, "amount": 1000, "date": "2025-03-02T09:00:00+02:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	list := func(query string) []map[string]any {
		w := do(t, r, http.MethodGet, "/api/transactions/"+query, a.AccessToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out []map[string]any
		decode(t, w, &out)
		return out
	}
	all := list("")
	require.Len(t, all, 2)
	assert.Equal(t, "2025-03-02T07:00:00", all[0]["date"])
	assert.Len(t, list("?type=EXPENSE"), 1)
	assert.Len(t, list(fmt.Sprintf("?category_id=%d", int(salary))), 1)
	assert.Len(t, list("?from=2025-03-02T00:00:00Z"), 1)
	assert.Len(t, list("?date_to=2025-03-01T10:00:00"), 1)
	assert.Len(t, list("?type=bogus&category_id=abc"), 2)

	w = do(t, r, http.MethodGet, "/api/transactions/?from=yesterday", a.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 其他用户看不到
	w = do(t, r, http.MethodGet, "/api/transactions/", b.AccessToken, nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestTransactionExport(t *testing.T) {
	r := newTestRouter(t, testConfig())
	a := register(t, r, "a@example.com")
	food := categoryID(t, r, a.AccessToken, "Hrana", "EXPENSE")
	w := do(t, r, http.MethodPost, "/api/transactions/", a.AccessToken, map[string]any{"type": "EXPENSE", "category_id": food, "amount": 5})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/api/transactions/export?format=csv", a.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, w.Body.String(), "Hrana")

	w = do(t, r, http.MethodGet, "/api/transactions/export", a.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")

	w = do(t, r, http.MethodGet, "/api/transactions/export?format=pdf", a.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBudgets(t *testing.T) {
	r := newTestRouter(t, testConfig())
	a := register(t, r, "a@example.com")
	b := register(t, r, "b@example.com")
	food := categoryID(t, r, a.AccessToken, "Hrana", "EXPENSE")
	rent := categoryID(t, r, a.AccessToken, "Stanarina", "EXPENSE")

	body := map[string]any{"category_id": food, "month": "2025-01", "limit_amount": 300}
	w := do(t, r, http.MethodPost, "/api/budgets/", a.AccessToken, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var budget struct {
		ID          uint    `json:"id"`
		CategoryID  uint    `json:"category_id"`
		Month       string  `json:"month"`
		LimitAmount float64 `json:"limit_amount"`
	}
	decode(t, w, &budget)
	assert.Equal(t, 300.0, budget.LimitAmount)

	w = do(t, r, http.MethodPost, "/api/budgets/", a.AccessToken, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	for _, bad := range []map[string]any{
		{"category_id": food, "month": "2025-1", "limit_amount": 1},
		{"category_id": food, "month": "2025-02", "limit_amount": -1},
		{"category_id": food, "month": "2025-02", "limit_amount": "many"},
		{"category_id": "food", "month": "2025-02", "limit_amount": 1},
	} {
		w = do(t, r, http.MethodPost, "/api/budgets", a.AccessToken, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}

	_ = do(t, r, http.MethodPost, "/api/budgets", a.AccessToken, map[string]any{"category_id": rent, "month": "2025-01", "limit_amount": "450.75"})

	// 没有支出时 spent 为 0，remaining 等于 limit
	w = do(t, r, http.MethodGet, "/api/budgets/summary?month=2025-01", a.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary []struct {
		CategoryName string  `json:"category_name"`
		LimitAmount  float64 `json:"limit_amount"`
		Spent        float64 `json:"spent"`
		Remaining    float64 `json:"remaining"`
	}
	decode(t, w, &summary)
	require.Len(t, summary, 2)
	for _, s := range summary {
		assert.Equal(t, 0.0, s.Spent, s.CategoryName)
		assert.Equal(t, s.LimitAmount, s.Remaining, s.CategoryName)
	}

	w = do(t, r, http.MethodGet, "/api/budgets/summary?month=January", a.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	path := fmt.Sprintf("/api/budgets/%d", budget.ID)
	w = do(t, r, http.MethodPatch, path, a.AccessToken, map[string]any{"limit_amount": 120})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &budget)
	assert.Equal(t, 120.0, budget.LimitAmount)
	assert.Equal(t, "2025-01", budget.Month)

	w = do(t, r, http.MethodPut, path, a.AccessToken, map[string]any{"month": "2025-02"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &budget)
	assert.Equal(t, "2025-02", budget.Month)

	w = do(t, r, http.MethodPut, path, a.AccessToken, map[string]any{"month": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 空请求体不修改任何字段
	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		w = do(t, r, method, path, a.AccessToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		decode(t, w, &budget)
		assert.Equal(t, 120.0, budget.LimitAmount)
		assert.Equal(t, "2025-02", budget.Month)
	}

	// 其他用户无法修改或删除
	w = do(t, r, http.MethodPatch, path, b.AccessToken, map[string]any{"limit_amount": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodDelete, path, b.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/budgets", a.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	decode(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-02", list[0]["month"])

	w = do(t, r, http.MethodDelete, path, a.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	w = do(t, r, http.MethodDelete, path, a.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodDelete, "/api/budgets/abc", a.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOverview(t *testing.T) {
	r := newTestRouter(t, testConfig())
	a := register(t, r, "a@example.com")
	food := categoryID(t, r, a.AccessToken, "Hrana", "EXPENSE")
	rent := categoryID(t, r, a.AccessToken, "Stanarina", "EXPENSE")

	w := do(t, r, http.MethodGet, "/api/overview/chart?month=2025-02", a.AccessToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	for _, tx := range []map[string]any{
		{"type": "EXPENSE", "category_id": food, "amount": 10, "date": "2025-02-01T00:00:00Z"},
		{"type": "EXPENSE", "category_id": rent, "amount": 20, "date": "2025-02-28T23:59:59Z"},
	} {
		w = do(t, r, http.MethodPost, "/api/transactions/", a.AccessToken, tx)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/overview/?month=2025-02", a.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ov struct {
		SpendingTotal float64 `json:"spending_total"`
		Balance       float64 `json:"balance"`
		PieBreakdown  []struct {
			Category string  `json:"category"`
			Share    float64 `json:"share"`
		} `json:"pie_breakdown"`
	}
	decode(t, w, &ov)
	assert.Equal(t, 30.0, ov.SpendingTotal)
	assert.Equal(t, -30.0, ov.Balance)
	require.Len(t, ov.PieBreakdown, 2)
	assert.Equal(t, "Stanarina", ov.PieBreakdown[0].Category)
	assert.InDelta(t, 100.0, ov.PieBreakdown[0].Share+ov.PieBreakdown[1].Share, 0.05)

	w = do(t, r, http.MethodGet, "/api/overview/chart?month=2025-02", a.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\x89PNG"))

	// 月份无法解析时返回 0 汇总
	w = do(t, r, http.MethodGet, "/api/overview/?month=2025-2", a.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var empty struct {
		Month         string            `json:"month"`
		SpendingTotal float64           `json:"spending_total"`
		PieBreakdown  []json.RawMessage `json:"pie_breakdown"`
		Latest        []json.RawMessage `json:"latest"`
	}
	decode(t, w, &empty)
	assert.Equal(t, "2025-2", empty.Month)
	assert.Zero(t, empty.SpendingTotal)
	assert.NotNil(t, empty.PieBreakdown)
	assert.Empty(t, empty.PieBreakdown)
	assert.NotEmpty(t, empty.Latest)

	w = do(t, r, http.MethodGet, "/api/overview/chart?month=2025-2", a.AccessToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, "/api/overview/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Security.LoginRateLimit = 2
	r := newTestRouter(t, cfg)

	creds := map[string]string{"email": "nobody@example.com", "password": "Lozinka123"}
	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodPost, "/api/auth/login", "", creds).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodPost, "/api/auth/login", "", creds).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, r, http.MethodPost, "/api/auth/login", "", creds).Code)
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/categories/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
