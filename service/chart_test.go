package service

import (
	"bytes"
	"context"
	"testing"

	"budgetapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChart_BreakdownPNG(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uid := f.register(t, "chart@example.com")
	f.addTx(t, uid, models.TypeExpense, f.category(t, uid, "Hrana", models.TypeExpense), 30.0, "2025-02-02T00:00:00Z")
	f.addTx(t, uid, models.TypeExpense, f.category(t, uid, "Prevoz", models.TypeExpense), 10.0, "2025-02-03T00:00:00Z")

	charts := NewChartService(f.ov)
	data, err := charts.BreakdownPNG(ctx, uid, "2025-02")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestChart_NoSpending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uid := f.register(t, "chart@example.com")
	f.addTx(t, uid, models.TypeExpense, f.category(t, uid, "Hrana", models.TypeExpense), 0.0, "2025-02-02T00:00:00Z")

	charts := NewChartService(f.ov)
	data, err := charts.BreakdownPNG(ctx, uid, "2025-02")
	require.NoError(t, err)
	assert.Nil(t, data)

	// 月份无法解析时没有支出数据
	data, err = charts.BreakdownPNG(ctx, uid, "02-2025")
	require.NoError(t, err)
	assert.Nil(t, data)
}
