package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"budgetapp/apperr"
	"budgetapp/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// 导出格式
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// ExportFile 导出结果
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

var exportHeaders = []string{"ID", "日期", "类型", "类别", "标题", "金额", "备注"}

type exportRow struct {
	tx       models.Transaction
	category string
}

// Export 按列表的筛选条件导出收支记录
func (s *TransactionService) Export(ctx context.Context, userID uint, f TransactionFilter, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatXLSX
	}
	if format != FormatXLSX && format != FormatCSV {
		return nil, apperr.Validation("format 只支持 xlsx 或 csv")
	}

	list, err := s.List(ctx, userID, f)
	if err != nil {
		return nil, err
	}

	var cats []models.Category
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&cats).Error; err != nil {
		return nil, apperr.Internal("查询类别失败", err)
	}
	names := make(map[uint]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}

	rows := make([]exportRow, 0, len(list))
	for _, t := range list {
		name, ok := names[t.CategoryID]
		if !ok {
			name = models.MissingCategoryName
		}
		rows = append(rows, exportRow{tx: t, category: name})
	}

	base := "transactions_" + exportTimestamp(s.now())
	if format == FormatCSV {
		data, err := renderCSV(rows)
		if err != nil {
			return nil, apperr.Internal("生成 CSV 失败", err)
		}
		return &ExportFile{Name: base + ".csv", ContentType: "text/csv; charset=utf-8", Data: data}, nil
	}

	data, err := renderXLSX(rows)
	if err != nil {
		return nil, apperr.Internal("生成 Excel 失败", err)
	}
	return &ExportFile{
		Name:        base + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func renderCSV(rows []exportRow) ([]byte, error) {
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.tx.Amount)
		record := []string{
			strconv.FormatUint(uint64(r.tx.ID), 10),
			models.FormatNaive(r.tx.Date),
			string(r.tx.Type),
			r.category,
			deref(r.tx.Title),
			r.tx.Amount.StringFixed(models.MoneyPlaces),
			deref(r.tx.Note),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"合计", "", "", "", fmt.Sprintf("共 %d 条记录", len(rows)), total.StringFixed(models.MoneyPlaces), ""}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(rows []exportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "收支记录"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	})
	moneyFormat := "#,##0.00"
	moneyStyle, _ := f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       border,
		CustomNumFmt: &moneyFormat,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment:    &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:       border,
		CustomNumFmt: &moneyFormat,
	})

	widths := map[string]float64{"A": 8, "B": 22, "C": 10, "D": 16, "E": 24, "F": 14, "G": 30}
	for col, w := range widths {
		_ = f.SetColWidth(sheetName, col, col, w)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}
	_ = f.SetCellStyle(sheetName, "A1", "G1", headerStyle)

	total := decimal.Zero
	for i, r := range rows {
		row := i + 2
		values := []any{
			r.tx.ID,
			models.FormatNaive(r.tx.Date),
			string(r.tx.Type),
			r.category,
			deref(r.tx.Title),
			r.tx.Amount.InexactFloat64(),
			deref(r.tx.Note),
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &values); err != nil {
			return nil, err
		}
		_ = f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)
		_ = f.SetCellStyle(sheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), moneyStyle)
		total = total.Add(r.tx.Amount)
	}

	// 汇总行
	summaryRow := len(rows) + 2
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	_ = f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow))
	_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(rows)))
	_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow), total.InexactFloat64())
	_ = f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportTimestamp 导出文件名中的时间
func exportTimestamp(t time.Time) string {
	return t.UTC().Format("20060102_150405")
}
