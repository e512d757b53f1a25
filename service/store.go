package service

import (
	"context"
	"errors"
	"strings"

	"budgetapp/apperr"
	"budgetapp/models"

	"gorm.io/gorm"
)

// isUniqueViolation 判断是否违反唯一约束
// 开启 TranslateError 后多数驱动返回 gorm.ErrDuplicatedKey，其余按错误文本判断
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

// ownedCategory 查询属于用户的类别，不存在时返回 404
func ownedCategory(ctx context.Context, tx *gorm.DB, userID uint, categoryID int64) (*models.Category, error) {
	if categoryID <= 0 {
		return nil, apperr.NotFound("类别不存在或不属于当前用户")
	}
	var cat models.Category
	err := tx.WithContext(ctx).
		Where("id = ? AND user_id = ?", categoryID, userID).
		First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("类别不存在或不属于当前用户")
	}
	if err != nil {
		return nil, apperr.Internal("查询类别失败", err)
	}
	return &cat, nil
}
