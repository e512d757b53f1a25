package api

import (
	"net/http"

	"budgetapp/middleware"
	"budgetapp/service"

	"github.com/gin-gonic/gin"
)

// OverviewHandler 月度概览
type OverviewHandler struct {
	overview *service.OverviewService
	charts   *service.ChartService
}

func NewOverviewHandler(overview *service.OverviewService, charts *service.ChartService) *OverviewHandler {
	return &OverviewHandler{overview: overview, charts: charts}
}

// Get 月度概览
// @Summary 月度概览
// @Description 某月收入、支出、结余、支出分类占比以及最近 5 条记录
// @Tags 概览
// @Produce json
// @Security BearerAuth
// @Param month query string false "月份 YYYY-MM，默认当前月份"
// @Success 200 {object} service.Overview "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/overview/ [get]
func (h *OverviewHandler) Get(c *gin.Context) {
	ov, err := h.overview.Overview(c.Request.Context(), middleware.GetCurrentUserID(c), c.Query("month"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, ov)
}

// Chart 支出饼图
// @Summary 支出分类饼图
// @Description 把某月支出分类占比渲染为 PNG，没有支出时返回 204
// @Tags 概览
// @Produce image/png
// @Security BearerAuth
// @Param month query string false "月份 YYYY-MM，默认当前月份"
// @Success 200 {file} file "PNG 图片"
// @Success 204 "当月没有支出"
// @Failure 401 {object} Response "未授权"
// @Router /api/overview/chart [get]
func (h *OverviewHandler) Chart(c *gin.Context) {
	data, err := h.charts.BreakdownPNG(c.Request.Context(), middleware.GetCurrentUserID(c), c.Query("month"))
	if err != nil {
		Fail(c, err)
		return
	}
	if data == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

// Health 健康检查
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]string "服务正常"
// @Router /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
