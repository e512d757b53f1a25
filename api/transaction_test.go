package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgetapp/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gormDB, mock
}

// asUser 跳过令牌校验，直接设置当前用户
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", id)
		c.Next()
	}
}

func TestTransactionHandler_CreateIntegrityFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	h := NewTransactionHandler(service.NewTransactionService(db))

	r := gin.New()
	r.POST("/api/transactions/", asUser(1), h.Create)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type"}).
			AddRow(3, 1, "Hrana", "EXPENSE"))
	// 类别在并发请求中被删除，插入时外键失败
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"})
	mock.ExpectRollback()

	body := `{"type":"EXPENSE","amount":12.5,"category_id":3,"date":"2025-03-01T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "保存收支记录失败")
	assert.Contains(t, resp.Message, "foreign key constraint fails")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_CategoryLookupFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	h := NewTransactionHandler(service.NewTransactionService(db))

	r := gin.New()
	r.POST("/api/transactions/", asUser(1), h.Create)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnError(&mysqldriver.MySQLError{Number: 2013, Message: "Lost connection to MySQL server during query"})
	mock.ExpectRollback()

	body := `{"type":"EXPENSE","amount":1,"category_id":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterFromQuery(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?type=INCOME&category_id=4&date_from=2025-01-01&to=2025-02-01&date_to=2025-12-31", nil)

	f := filterFromQuery(c)
	assert.Equal(t, service.TransactionFilter{
		Type:       "INCOME",
		CategoryID: "4",
		From:       "2025-01-01",
		To:         "2025-02-01",
	}, f)
}
