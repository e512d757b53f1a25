package service

import (
	"bytes"
	"context"
	"fmt"

	"budgetapp/apperr"

	"github.com/wcharczuk/go-chart/v2"
)

// ChartService 把月度支出分类占比渲染为 PNG 饼图
type ChartService struct {
	overview *OverviewService
	width    int
	height   int
}

func NewChartService(overview *OverviewService) *ChartService {
	return &ChartService{overview: overview, width: 800, height: 600}
}

// BreakdownPNG 渲染某月支出饼图，没有支出时返回 nil
func (s *ChartService) BreakdownPNG(ctx context.Context, userID uint, month string) ([]byte, error) {
	ov, err := s.overview.Overview(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	data, err := renderPie(ov.PieBreakdown, s.width, s.height)
	if err != nil {
		return nil, apperr.Internal("生成图表失败", err)
	}
	return data, nil
}

func renderPie(items []BreakdownItem, width, height int) ([]byte, error) {
	values := make([]chart.Value, 0, len(items))
	for _, it := range items {
		if !it.Amount.IsPositive() {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%s%%)", it.Category, it.Amount.StringFixed(2), it.Share.StringFixed(1)),
			Value: it.Amount.InexactFloat64(),
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  width,
		Height: height,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   40,
				Right:  40,
				Bottom: 40,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buf := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("渲染饼图失败: %w", err)
	}
	return buf.Bytes(), nil
}
