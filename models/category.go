package models

import "strings"

// TxType 收支类型
type TxType string

const (
	TypeIncome  TxType = "INCOME"
	TypeExpense TxType = "EXPENSE"
)

// ParseTxType 去掉首尾空白并转大写后解析收支类型
func ParseTxType(s string) (TxType, bool) {
	switch t := TxType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TypeIncome, TypeExpense:
		return t, true
	default:
		return "", false
	}
}

// Category 用户自己的收支类别，(user_id, name, type) 唯一
type Category struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"-" gorm:"not null;uniqueIndex:uq_categories_user_name_type,priority:1"`
	Name   string `json:"name" gorm:"size:80;not null;uniqueIndex:uq_categories_user_name_type,priority:2"`
	Type   TxType `json:"type" gorm:"size:10;not null;uniqueIndex:uq_categories_user_name_type,priority:3"`
}

func (Category) TableName() string {
	return "categories"
}

// DefaultCategory 注册时自动创建的类别
type DefaultCategory struct {
	Name string
	Type TxType
}

// DefaultCategories 注册时为新用户创建的默认类别
func DefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{"Plata", TypeIncome},
		{"Hrana", TypeExpense},
		{"Prevoz", TypeExpense},
		{"Stanarina", TypeExpense},
	}
}

// MissingCategoryName 类别不存在时显示的名称
const MissingCategoryName = "—"
