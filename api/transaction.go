package api

import (
	"fmt"
	"net/http"

	"budgetapp/middleware"
	"budgetapp/models"
	"budgetapp/service"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 收支记录
type TransactionHandler struct {
	txs *service.TransactionService
}

func NewTransactionHandler(txs *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txs: txs}
}

// filterFromQuery 读取列表筛选参数，from/to 也接受 date_from/date_to
func filterFromQuery(c *gin.Context) service.TransactionFilter {
	f := service.TransactionFilter{
		Type:       c.Query("type"),
		CategoryID: c.Query("category_id"),
		From:       c.Query("from"),
		To:         c.Query("to"),
	}
	if f.From == "" {
		f.From = c.Query("date_from")
	}
	if f.To == "" {
		f.To = c.Query("date_to")
	}
	return f
}

// List 收支记录列表
// @Summary 获取收支记录
// @Description 条件可以组合使用，结果按日期倒序，日期相同按 ID 倒序
// @Tags 收支记录
// @Produce json
// @Security BearerAuth
// @Param type query string false "INCOME 或 EXPENSE"
// @Param category_id query int false "类别 ID"
// @Param from query string false "开始时间 ISO-8601，别名 date_from"
// @Param to query string false "结束时间 ISO-8601，别名 date_to"
// @Success 200 {array} models.TransactionView "获取成功"
// @Failure 400 {object} Response "时间格式错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/transactions/ [get]
func (h *TransactionHandler) List(c *gin.Context) {
	list, err := h.txs.List(c.Request.Context(), middleware.GetCurrentUserID(c), filterFromQuery(c))
	if err != nil {
		Fail(c, err)
		return
	}

	views := make([]models.TransactionView, 0, len(list))
	for _, t := range list {
		views = append(views, t.View())
	}
	OK(c, views)
}

// Create 创建收支记录
// @Summary 创建收支记录
// @Description type 必须与类别类型一致；date 缺省或无法解析时使用当前时间
// @Tags 收支记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.TransactionInput true "收支记录"
// @Success 201 {object} models.TransactionView "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/transactions/ [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var in service.TransactionInput
	if !bindJSON(c, &in) {
		return
	}

	tx, err := h.txs.Create(c.Request.Context(), middleware.GetCurrentUserID(c), in)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, tx.View())
}

// Export 导出收支记录
// @Summary 导出收支记录
// @Description 使用与列表相同的筛选条件，导出为 Excel 或 CSV 文件
// @Tags 收支记录
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Security BearerAuth
// @Param format query string false "xlsx（默认）或 csv"
// @Param type query string false "INCOME 或 EXPENSE"
// @Param category_id query int false "类别 ID"
// @Param from query string false "开始时间 ISO-8601"
// @Param to query string false "结束时间 ISO-8601"
// @Success 200 {file} file "导出文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/transactions/export [get]
func (h *TransactionHandler) Export(c *gin.Context) {
	file, err := h.txs.Export(c.Request.Context(), middleware.GetCurrentUserID(c), filterFromQuery(c), c.Query("format"))
	if err != nil {
		Fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
