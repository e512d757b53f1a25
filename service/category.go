package service

import (
	"context"
	"strings"

	"budgetapp/apperr"
	"budgetapp/models"

	"gorm.io/gorm"
)

// CategoryService 收支类别
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List 按名称升序列出用户的类别
func (s *CategoryService) List(ctx context.Context, userID uint) ([]models.Category, error) {
	list := make([]models.Category, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, apperr.Internal("查询类别失败", err)
	}
	return list, nil
}

// Create 创建类别，同一用户下名称和类型的组合不能重复
func (s *CategoryService) Create(ctx context.Context, userID uint, name, typ string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	txType, ok := models.ParseTxType(typ)
	if name == "" || !ok {
		return nil, apperr.Validation("name 和 type（INCOME/EXPENSE）不能为空")
	}

	cat := models.Category{UserID: userID, Name: name, Type: txType}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Category{}).
			Where("user_id = ? AND name = ? AND type = ?", userID, name, txType).
			Count(&count).Error
		if err != nil {
			return apperr.Internal("查询类别失败", err)
		}
		if count > 0 {
			return apperr.Conflict("该类型下已存在同名类别")
		}

		if err := tx.Create(&cat).Error; err != nil {
			if isUniqueViolation(err) {
				return apperr.Conflict("该类型下已存在同名类别")
			}
			return apperr.Internal("创建类别失败", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
