package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"budgetapp/apperr"
	"budgetapp/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// latestLimit 概览中最近记录的条数
const latestLimit = 5

// BreakdownItem 某个支出类别在当月支出中的占比
type BreakdownItem struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Share    decimal.Decimal `json:"share"`
}

// LatestItem 最近一条记录
type LatestItem struct {
	ID     uint            `json:"id"`
	Title  *string         `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date" example:"2025-03-01T10:00:00"`
}

// Overview 月度概览
type Overview struct {
	Month         string          `json:"month" example:"2025-02"`
	IncomeTotal   decimal.Decimal `json:"income_total"`
	SpendingTotal decimal.Decimal `json:"spending_total"`
	Balance       decimal.Decimal `json:"balance"`
	PieBreakdown  []BreakdownItem `json:"pie_breakdown"`
	Latest        []LatestItem    `json:"latest"`
}

// OverviewService 月度收支汇总
type OverviewService struct {
	db *gorm.DB
}

func NewOverviewService(db *gorm.DB) *OverviewService {
	return &OverviewService{db: db}
}

// Overview 统计某月收入、支出、结余和支出分类占比
// 月份按完整的起止时间范围过滤，最近记录不限月份
// 月份无法解析时各项合计为 0，仍返回最近记录
func (s *OverviewService) Overview(ctx context.Context, userID uint, month string) (*Overview, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		month = models.CurrentMonth()
	}
	out := &Overview{
		Month:        month,
		PieBreakdown: make([]BreakdownItem, 0),
		Latest:       make([]LatestItem, 0),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if start, end, ok := models.MonthRange(month); ok {
			if err := s.monthTotals(tx, userID, start, end, out); err != nil {
				return err
			}
		}

		var latest []models.Transaction
		if err := tx.Where("user_id = ?", userID).
			Order("date DESC, id DESC").
			Limit(latestLimit).
			Find(&latest).Error; err != nil {
			return apperr.Internal("查询最近记录失败", err)
		}
		for _, t := range latest {
			out.Latest = append(out.Latest, LatestItem{
				ID:     t.ID,
				Title:  t.Title,
				Amount: t.Amount,
				Date:   models.FormatNaive(t.Date),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// monthTotals 填充某月的收支合计和支出分类占比
func (s *OverviewService) monthTotals(tx *gorm.DB, userID uint, start, end time.Time, out *Overview) error {
	inMonth := func() *gorm.DB {
		return tx.Model(&models.Transaction{}).
			Where("transactions.user_id = ? AND transactions.date >= ? AND transactions.date <= ?", userID, start, end)
	}

	var totals []struct {
		Type  models.TxType
		Total decimal.Decimal
	}
	if err := inMonth().Select("transactions.type AS type, COALESCE(SUM(transactions.amount), 0) AS total").
		Group("transactions.type").Scan(&totals).Error; err != nil {
		return apperr.Internal("统计收支失败", err)
	}
	spending := decimal.Zero
	for _, t := range totals {
		switch t.Type {
		case models.TypeIncome:
			out.IncomeTotal = models.RoundMoney(t.Total)
		case models.TypeExpense:
			spending = t.Total
			out.SpendingTotal = models.RoundMoney(t.Total)
		}
	}
	out.Balance = out.IncomeTotal.Sub(out.SpendingTotal)

	var rows []struct {
		Name   string
		Amount decimal.Decimal
	}
	if err := inMonth().
		Select("categories.name AS name, COALESCE(SUM(transactions.amount), 0) AS amount").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.type = ?", models.TypeExpense).
		Group("categories.name").
		Scan(&rows).Error; err != nil {
		return apperr.Internal("统计支出分类失败", err)
	}
	for _, r := range rows {
		out.PieBreakdown = append(out.PieBreakdown, BreakdownItem{
			Category: r.Name,
			Amount:   models.RoundMoney(r.Amount),
			Share:    share(r.Amount, spending),
		})
	}
	sortBreakdown(out.PieBreakdown)
	return nil
}

var hundred = decimal.NewFromInt(100)

// share 百分比，总额为 0 时返回 0
func share(amount, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return amount.Div(total).Mul(hundred).Round(2)
}

// sortBreakdown 金额倒序，金额相同按名称
func sortBreakdown(items []BreakdownItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if c := items[i].Amount.Cmp(items[j].Amount); c != 0 {
			return c > 0
		}
		return items[i].Category < items[j].Category
	})
}
