package models

import "github.com/shopspring/decimal"

// Budget 某个类别在某个月的支出上限，(user_id, category_id, month) 唯一
type Budget struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"-" gorm:"not null;uniqueIndex:uq_budgets_user_category_month,priority:1"`
	CategoryID  uint            `json:"category_id" gorm:"not null;uniqueIndex:uq_budgets_user_category_month,priority:2"`
	Month       string          `json:"month" gorm:"size:7;not null;uniqueIndex:uq_budgets_user_category_month,priority:3" example:"2025-01"`
	LimitAmount decimal.Decimal `json:"limit_amount" gorm:"type:decimal(14,2);not null"`
}

func (Budget) TableName() string {
	return "budgets"
}
