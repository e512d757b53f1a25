package service

import (
	"context"
	"errors"
	"strings"

	"budgetapp/apperr"
	"budgetapp/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetInput 创建预算的请求体
type BudgetInput struct {
	CategoryID  any `json:"category_id" swaggertype:"integer" example:"2"`
	Month       any `json:"month" swaggertype:"string" example:"2025-01"`
	LimitAmount any `json:"limit_amount" swaggertype:"number" example:"300"`
}

// BudgetSummary 预算执行情况
type BudgetSummary struct {
	Month        string          `json:"month" example:"2025-01"`
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category_name"`
	LimitAmount  decimal.Decimal `json:"limit_amount"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
}

// BudgetService 月度分类预算
type BudgetService struct {
	db *gorm.DB
}

func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{db: db}
}

// List 按月份倒序列出预算
func (s *BudgetService) List(ctx context.Context, userID uint) ([]models.Budget, error) {
	list := make([]models.Budget, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("month DESC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, apperr.Internal("查询预算失败", err)
	}
	return list, nil
}

// Create 创建预算，同一类别同一月份只能有一条
func (s *BudgetService) Create(ctx context.Context, userID uint, in BudgetInput) (*models.Budget, error) {
	categoryID, err := models.ParseInt(in.CategoryID)
	if err != nil {
		return nil, apperr.Validation("category_id（整数）和 limit_amount（数字）不能为空")
	}
	limit, err := models.ParseAmount(in.LimitAmount)
	if err != nil {
		return nil, apperr.Validation("category_id（整数）和 limit_amount（数字）不能为空")
	}
	if limit.IsNegative() {
		return nil, apperr.Validation("limit_amount 不能小于 0")
	}
	if !models.MoneyInRange(limit) {
		return nil, apperr.Validation("limit_amount 不能超过 999999999999.99")
	}
	month, err := parseMonthField(in.Month)
	if err != nil {
		return nil, err
	}

	budget := models.Budget{UserID: userID, Month: month, LimitAmount: models.RoundMoney(limit)}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cat, err := ownedCategory(ctx, tx, userID, categoryID)
		if err != nil {
			return err
		}
		budget.CategoryID = cat.ID

		if err := ensureBudgetUnique(tx, userID, cat.ID, month, 0); err != nil {
			return err
		}
		if err := tx.Create(&budget).Error; err != nil {
			if isUniqueViolation(err) {
				return errBudgetExists
			}
			return apperr.Internal("创建预算失败", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// Update 部分更新预算，只处理请求中出现的字段
// 类别或月份变化后同样检查唯一性
func (s *BudgetService) Update(ctx context.Context, userID, id uint, fields map[string]any) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := loadBudget(tx, userID, id, &budget); err != nil {
			return err
		}

		if raw, ok := fields["limit_amount"]; ok {
			limit, err := models.ParseAmount(raw)
			if err != nil {
				return apperr.Validation("limit_amount 必须是数字")
			}
			if limit.IsNegative() {
				return apperr.Validation("limit_amount 不能小于 0")
			}
			if !models.MoneyInRange(limit) {
				return apperr.Validation("limit_amount 不能超过 999999999999.99")
			}
			budget.LimitAmount = models.RoundMoney(limit)
		}
		if raw, ok := fields["month"]; ok {
			month, err := parseMonthField(raw)
			if err != nil {
				return err
			}
			budget.Month = month
		}
		if raw, ok := fields["category_id"]; ok {
			categoryID, err := models.ParseInt(raw)
			if err != nil {
				return apperr.Validation("category_id 必须是整数")
			}
			cat, err := ownedCategory(ctx, tx, userID, categoryID)
			if err != nil {
				return err
			}
			budget.CategoryID = cat.ID
		}

		if err := ensureBudgetUnique(tx, userID, budget.CategoryID, budget.Month, budget.ID); err != nil {
			return err
		}
		if err := tx.Save(&budget).Error; err != nil {
			if isUniqueViolation(err) {
				return errBudgetExists
			}
			return apperr.Internal("更新预算失败", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// Delete 删除预算
func (s *BudgetService) Delete(ctx context.Context, userID, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := loadBudget(tx, userID, id, &budget); err != nil {
			return err
		}
		if err := tx.Delete(&budget).Error; err != nil {
			return apperr.Internal("删除预算失败", err)
		}
		return nil
	})
}

// Summary 统计某月每条预算的已用和剩余金额
// month 为空时使用当前 UTC 月份
func (s *BudgetService) Summary(ctx context.Context, userID uint, month string) ([]BudgetSummary, error) {
	if month == "" {
		month = models.CurrentMonth()
	}
	start, end, ok := models.MonthRange(month)
	if !ok {
		return nil, apperr.Validation("month 格式必须为 YYYY-MM")
	}

	out := make([]BudgetSummary, 0)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var budgets []models.Budget
		if err := tx.Where("user_id = ? AND month = ?", userID, month).Order("id ASC").Find(&budgets).Error; err != nil {
			return apperr.Internal("查询预算失败", err)
		}
		if len(budgets) == 0 {
			return nil
		}

		var spentRows []struct {
			CategoryID uint
			Spent      decimal.Decimal
		}
		err := tx.Model(&models.Transaction{}).
			Select("category_id, COALESCE(SUM(amount), 0) AS spent").
			Where("user_id = ? AND type = ? AND date >= ? AND date <= ?", userID, models.TypeExpense, start, end).
			Group("category_id").
			Scan(&spentRows).Error
		if err != nil {
			return apperr.Internal("统计支出失败", err)
		}
		spent := make(map[uint]decimal.Decimal, len(spentRows))
		for _, row := range spentRows {
			spent[row.CategoryID] = row.Spent
		}

		var cats []models.Category
		if err := tx.Where("user_id = ?", userID).Find(&cats).Error; err != nil {
			return apperr.Internal("查询类别失败", err)
		}
		names := make(map[uint]string, len(cats))
		for _, c := range cats {
			names[c.ID] = c.Name
		}

		for _, b := range budgets {
			used := spent[b.CategoryID]
			name, ok := names[b.CategoryID]
			if !ok {
				name = models.MissingCategoryName
			}
			out = append(out, BudgetSummary{
				Month:        month,
				CategoryID:   b.CategoryID,
				CategoryName: name,
				LimitAmount:  b.LimitAmount,
				Spent:        models.RoundMoney(used),
				Remaining:    models.RoundMoney(b.LimitAmount.Sub(used)),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

var errBudgetExists = apperr.Conflict("该类别在该月份已有预算")

func loadBudget(tx *gorm.DB, userID, id uint, out *models.Budget) error {
	err := tx.Where("id = ? AND user_id = ?", id, userID).First(out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("预算不存在")
	}
	if err != nil {
		return apperr.Internal("查询预算失败", err)
	}
	return nil
}

// ensureBudgetUnique 检查 (user, category, month) 是否已被其他预算占用
func ensureBudgetUnique(tx *gorm.DB, userID, categoryID uint, month string, exceptID uint) error {
	var count int64
	err := tx.Model(&models.Budget{}).
		Where("user_id = ? AND category_id = ? AND month = ? AND id <> ?", userID, categoryID, month, exceptID).
		Count(&count).Error
	if err != nil {
		return apperr.Internal("查询预算失败", err)
	}
	if count > 0 {
		return errBudgetExists
	}
	return nil
}

// parseMonthField 月份字段只检查形状，不校验日历
func parseMonthField(v any) (string, error) {
	s, ok := v.(string)
	month := strings.TrimSpace(s)
	if !ok || !models.ValidMonthShape(month) {
		return "", apperr.Validation("month 格式必须为 YYYY-MM")
	}
	return month, nil
}
