package timeutil

import (
	"time"
)

// DateLayout 报表日期格式
const DateLayout = "2006-01-02"

// ParseDate 解析 YYYY-MM-DD 日期，归一到本地零点
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// FormatDate 格式化为 YYYY-MM-DD（stat_date 统一口径）
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly 去掉时分秒，只留日期
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthRange 返回某年某月的首末两天
func MonthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// DaysInMonth 某年某月的天数
func DaysInMonth(year, month int) int {
	_, last := MonthRange(year, month)
	return last.Day()
}

// ValidMonth 月份是否在 1-12
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}
