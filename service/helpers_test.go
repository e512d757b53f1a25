package service

import (
	"context"
	"fmt"
	"testing"

	"budgetapp/database/dbtest"
	"budgetapp/logger"
	"budgetapp/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTokens struct{}

func (fakeTokens) GenerateToken(userID uint) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}

type fakeMailer struct {
	sent chan string
	err  error
}

func newFakeMailer(err error) *fakeMailer {
	return &fakeMailer{sent: make(chan string, 4), err: err}
}

func (m *fakeMailer) SendWelcomeEmail(toEmail, _ string) error {
	m.sent <- toEmail
	return m.err
}

type fixture struct {
	db   *gorm.DB
	auth *AuthService
	cats *CategoryService
	txs  *TransactionService
	bud  *BudgetService
	ov   *OverviewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	return &fixture{
		db:   db,
		auth: NewAuthService(db, fakeTokens{}, nil, logger.Nop()),
		cats: NewCategoryService(db),
		txs:  NewTransactionService(db),
		bud:  NewBudgetService(db),
		ov:   NewOverviewService(db),
	}
}

// register 注册用户并返回用户 ID
func (f *fixture) register(t *testing.T, email string) uint {
	t.Helper()
	res, err := f.auth.Register(context.Background(), email, "Test User", "Secret123")
	require.NoError(t, err)
	return res.User.ID
}

// category 按名称和类型取用户的类别 ID
func (f *fixture) category(t *testing.T, userID uint, name string, typ models.TxType) uint {
	t.Helper()
	var cat models.Category
	require.NoError(t, f.db.Where("user_id = ? AND name = ? AND type = ?", userID, name, typ).First(&cat).Error)
	return cat.ID
}

func (f *fixture) addTx(t *testing.T, userID uint, typ models.TxType, categoryID uint, amount any, date string) *models.Transaction {
	t.Helper()
	tx, err := f.txs.Create(context.Background(), userID, TransactionInput{
		Type:       string(typ),
		Amount:     amount,
		CategoryID: float64(categoryID),
		Date:       date,
	})
	require.NoError(t, err)
	return tx
}

func strPtr(s string) *string { return &s }
