package api

import (
	"budgetapp/middleware"
	"budgetapp/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 收支类别
type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// CategoryCreateRequest 创建类别请求
type CategoryCreateRequest struct {
	Name string `json:"name" example:"Bonus"`
	Type string `json:"type" example:"INCOME"`
}

// List 列出当前用户的类别
// @Summary 获取类别列表
// @Description 按名称升序返回当前用户的全部类别
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Category "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/categories/ [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.categories.List(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, list)
}

// Create 创建类别
// @Summary 创建类别
// @Description 同一用户下名称和类型的组合不能重复
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 201 {object} models.Category "创建成功"
// @Failure 400 {object} Response "名称为空或类型无效"
// @Failure 401 {object} Response "未授权"
// @Failure 409 {object} Response "类别已存在"
// @Router /api/categories/ [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.categories.Create(c.Request.Context(), middleware.GetCurrentUserID(c), req.Name, req.Type)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, cat)
}
