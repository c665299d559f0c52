package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// 金额统一保留一位小数，截断不四舍五入。
// 注意：截断方向是向负无穷（floor），负数会远离零，例如 -1.26 -> -1.3。
// 两套历史报表都按这个口径出数，未经业主确认不得改成向零截断。

// Truncate 金额截断到一位小数 floor(x*10)/10
func Truncate(d decimal.Decimal) decimal.Decimal {
	return d.Shift(1).Floor().Shift(-1)
}

// TruncateNull 可空金额截断，空值原样返回
func TruncateNull(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NullDecimal{Decimal: Truncate(d.Decimal), Valid: true}
}

// FromString 解析金额字符串并截断到一位小数
func FromString(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.New("金额格式错误")
	}
	return Truncate(d), nil
}

// DivTruncate 相除后截断，除数为零由调用方先行校验
func DivTruncate(a decimal.Decimal, b decimal.Decimal) decimal.Decimal {
	// decimal.Div 默认 16 位精度，足够覆盖一位小数的截断
	return Truncate(a.Div(b))
}

// OrZero 可空金额取值，空值按 0 计
func OrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
