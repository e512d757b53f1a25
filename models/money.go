package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// 金额在 JSON 中以数字输出
	decimal.MarshalJSONWithoutQuotes = true
}

// MoneyPlaces 金额保留的小数位数
const MoneyPlaces = 2

var (
	errNotNumber  = errors.New("not a number")
	errNotInteger = errors.New("not an integer")
)

// ParseAmount 把 JSON 中的金额（数字或数字字符串）解析为定点数
func ParseAmount(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, errNotNumber
		}
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Zero, errNotNumber
		}
		return decimal.NewFromString(s)
	default:
		return decimal.Zero, errNotNumber
	}
}

// ParseInt 把 JSON 中的整数（数字或数字字符串）解析为 int64
// 带小数的数字按截断处理，字符串必须是十进制整数
func ParseInt(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, errNotInteger
		}
		return truncate(f)
	case float64:
		return truncate(n)
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, errNotInteger
		}
		return i, nil
	default:
		return 0, errNotInteger
	}
}

func truncate(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", errNotInteger, f)
	}
	return int64(f), nil
}

// RoundMoney 四舍五入到两位小数
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// MaxMoney 金额列 NUMERIC(14, 2) 能精确保存的最大值
var MaxMoney = decimal.RequireFromString("999999999999.99")

// MoneyInRange 四舍五入后的金额绝对值不超过 MaxMoney
func MoneyInRange(d decimal.Decimal) bool {
	return RoundMoney(d).Abs().LessThanOrEqual(MaxMoney)
}
