package api

import (
	"strconv"

	"budgetapp/middleware"
	"budgetapp/service"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 月度预算
type BudgetHandler struct {
	budgets *service.BudgetService
}

func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// BudgetUpdateRequest 更新预算请求，只更新出现的字段
type BudgetUpdateRequest struct {
	CategoryID  int     `json:"category_id,omitempty" example:"2"`
	Month       string  `json:"month,omitempty" example:"2025-02"`
	LimitAmount float64 `json:"limit_amount,omitempty" example:"250"`
}

// budgetID 路径中的预算 ID，不是正整数时按不存在处理
func budgetID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		NotFound(c, "预算不存在")
		return 0, false
	}
	return uint(id), true
}

// List 预算列表
// @Summary 获取预算列表
// @Description 按月份倒序返回当前用户的预算
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Budget "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/budgets/ [get]
func (h *BudgetHandler) List(c *gin.Context) {
	list, err := h.budgets.List(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, list)
}

// Create 创建预算
// @Summary 创建预算
// @Description 同一类别同一月份只能有一条预算
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.BudgetInput true "预算信息"
// @Success 201 {object} models.Budget "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "类别不存在"
// @Failure 409 {object} Response "预算已存在"
// @Router /api/budgets/ [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var in service.BudgetInput
	if !bindJSON(c, &in) {
		return
	}

	budget, err := h.budgets.Create(c.Request.Context(), middleware.GetCurrentUserID(c), in)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, budget)
}

// Update 更新预算
// @Summary 更新预算
// @Description 支持 PUT 和 PATCH，未提供的字段保持不变
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算 ID"
// @Param request body BudgetUpdateRequest true "要修改的字段"
// @Success 200 {object} models.Budget "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "预算或类别不存在"
// @Failure 409 {object} Response "预算已存在"
// @Router /api/budgets/{id} [put]
// @Router /api/budgets/{id} [patch]
func (h *BudgetHandler) Update(c *gin.Context) {
	id, ok := budgetID(c)
	if !ok {
		return
	}
	var fields map[string]any
	if !bindOptionalJSON(c, &fields) {
		return
	}

	budget, err := h.budgets.Update(c.Request.Context(), middleware.GetCurrentUserID(c), id, fields)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, budget)
}

// Delete 删除预算
// @Summary 删除预算
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算 ID"
// @Success 200 {object} OKResponse "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "预算不存在"
// @Router /api/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := budgetID(c)
	if !ok {
		return
	}

	if err := h.budgets.Delete(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		Fail(c, err)
		return
	}
	OK(c, OKResponse{OK: true})
}

// Summary 预算执行情况
// @Summary 预算执行情况
// @Description 统计某月每条预算的已用金额和剩余金额，剩余可以为负数
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Param month query string false "月份 YYYY-MM，默认当前月份"
// @Success 200 {array} service.BudgetSummary "获取成功"
// @Failure 400 {object} Response "月份格式错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/budgets/summary [get]
func (h *BudgetHandler) Summary(c *gin.Context) {
	rows, err := h.budgets.Summary(c.Request.Context(), middleware.GetCurrentUserID(c), c.Query("month"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, rows)
}
