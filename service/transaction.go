package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"budgetapp/apperr"
	"budgetapp/models"

	"gorm.io/gorm"
)

// TransactionFilter 列表筛选条件，均为查询参数原文
type TransactionFilter struct {
	Type       string
	CategoryID string
	From       string
	To         string
}

// TransactionInput 创建收支记录的请求体
// 数值字段保持原始 JSON 值，由服务层校验
type TransactionInput struct {
	Type       string  `json:"type" example:"EXPENSE"`
	Amount     any     `json:"amount" swaggertype:"number" example:"12.5"`
	CategoryID any     `json:"category_id" swaggertype:"integer" example:"2"`
	Date       any     `json:"date" swaggertype:"string" example:"2025-03-01T10:00:00Z"`
	Title      *string `json:"title" example:"午饭"`
	Note       *string `json:"note"`
}

// TransactionService 收支记录
type TransactionService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// List 按筛选条件列出记录，日期倒序，同一时间按 ID 倒序
// 起止时间无法解析时返回 400
func (s *TransactionService) List(ctx context.Context, userID uint, f TransactionFilter) ([]models.Transaction, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if f.Type == string(models.TypeIncome) || f.Type == string(models.TypeExpense) {
		q = q.Where("type = ?", f.Type)
	}
	if cid, err := strconv.ParseInt(strings.TrimSpace(f.CategoryID), 10, 64); err == nil && cid > 0 {
		q = q.Where("category_id = ?", cid)
	}
	if f.From != "" {
		from, ok := models.ParseISOTime(f.From)
		if !ok {
			return nil, apperr.Validation("from/date_from 不是有效的 ISO 时间")
		}
		q = q.Where("date >= ?", from)
	}
	if f.To != "" {
		to, ok := models.ParseISOTime(f.To)
		if !ok {
			return nil, apperr.Validation("to/date_to 不是有效的 ISO 时间")
		}
		q = q.Where("date <= ?", to)
	}

	list := make([]models.Transaction, 0)
	if err := q.Order("date DESC, id DESC").Find(&list).Error; err != nil {
		return nil, apperr.Internal("查询收支记录失败", err)
	}
	return list, nil
}

// Create 创建收支记录，类型必须与类别类型一致
func (s *TransactionService) Create(ctx context.Context, userID uint, in TransactionInput) (*models.Transaction, error) {
	txType, ok := models.ParseTxType(in.Type)
	if !ok {
		return nil, apperr.Validation("type 必须是 INCOME 或 EXPENSE")
	}

	amount, err := models.ParseAmount(in.Amount)
	if err != nil {
		return nil, apperr.Validation("amount 必须是数字")
	}
	if amount.IsNegative() {
		return nil, apperr.Validation("amount 不能小于 0")
	}
	if !models.MoneyInRange(amount) {
		return nil, apperr.Validation("amount 不能超过 999999999999.99")
	}

	categoryID, err := models.ParseInt(in.CategoryID)
	if err != nil {
		return nil, apperr.Validation("category_id 必须是整数")
	}

	date := s.now().Truncate(time.Microsecond)
	if raw, ok := in.Date.(string); ok {
		if parsed, ok := models.ParseISOTime(raw); ok {
			date = parsed
		}
	}

	record := models.Transaction{
		UserID: userID,
		Type:   txType,
		Title:  blankToNil(in.Title),
		Amount: models.RoundMoney(amount),
		Date:   date,
		Note:   blankToNil(in.Note),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cat, err := ownedCategory(ctx, tx, userID, categoryID)
		if err != nil {
			return err
		}
		if cat.Type != txType {
			return apperr.Validation("收支类型 (" + string(txType) + ") 与类别类型 (" + string(cat.Type) + ") 不一致")
		}
		record.CategoryID = cat.ID

		if err := tx.Create(&record).Error; err != nil {
			return apperr.Integrity("保存收支记录失败", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
