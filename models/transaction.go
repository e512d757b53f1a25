package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction 收支记录
// Date 统一保存为不带时区的 UTC 时间
type Transaction struct {
	ID         uint            `gorm:"primaryKey"`
	UserID     uint            `gorm:"index;not null"`
	CategoryID uint            `gorm:"index;not null"`
	Type       TxType          `gorm:"size:10;not null"`
	Title      *string         `gorm:"size:120"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Date       time.Time       `gorm:"index;not null"`
	Note       *string         `gorm:"size:255"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionView 接口返回的收支记录
type TransactionView struct {
	ID         uint            `json:"id"`
	Type       TxType          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID uint            `json:"category_id"`
	Date       string          `json:"date" example:"2025-03-01T10:00:00"`
	Title      *string         `json:"title"`
	Note       *string         `json:"note"`
}

// View 转换为接口返回格式
func (t Transaction) View() TransactionView {
	return TransactionView{
		ID:         t.ID,
		Type:       t.Type,
		Amount:     t.Amount,
		CategoryID: t.CategoryID,
		Date:       FormatNaive(t.Date),
		Title:      t.Title,
		Note:       t.Note,
	}
}
