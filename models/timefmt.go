package models

import (
	"strings"
	"time"
)

// 接受的 ISO-8601 格式，小数秒可省略
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseISOTime 解析 ISO-8601 时间，带时区的先换算到 UTC 再去掉时区
// 结果精确到微秒
func ParseISOTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Microsecond), true
		}
	}
	return time.Time{}, false
}

// FormatNaive 按不带时区的 ISO 格式输出 UTC 时间，例如 2025-03-01T10:00:00
// 有微秒时固定输出 6 位
func FormatNaive(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/1000 == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05.000000")
}

// MonthLayout 月份格式
const MonthLayout = "2006-01"

// CurrentMonth 当前 UTC 月份
func CurrentMonth() string {
	return time.Now().UTC().Format(MonthLayout)
}

// ValidMonthShape 只检查长度为 7 且包含 '-'，不校验日历
func ValidMonthShape(month string) bool {
	return len([]rune(month)) == 7 && strings.Contains(month, "-")
}

// MonthRange 返回月份的起止时间（都包含）
// 结束时间是最后一天 23:59:59.999000
func MonthRange(month string) (start, end time.Time, ok bool) {
	first, err := time.Parse(MonthLayout, strings.TrimSpace(month))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	start = first.UTC()
	lastDay := start.AddDate(0, 1, -1)
	end = time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), 23, 59, 59, 999000*1000, time.UTC)
	return start, end, true
}
