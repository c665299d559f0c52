package logger

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// 账务写路径都要落审计日志：谁、哪个自然键、改了什么。
// 月末对账出现争议时以这里为准回溯。

// AuditIncomeSaved 营收记录写入
func AuditIncomeSaved(operator string, statDate string, vehicleNo string, revenue, netIncome decimal.Decimal) {
	if Audit == nil {
		return
	}
	Audit.WithFields(logrus.Fields{
		"op":         "income.saved",
		"operator":   operator,
		"stat_date":  statDate,
		"vehicle_no": vehicleNo,
		"revenue":    revenue.String(),
		"net_income": netIncome.String(),
	}).Info("营收记录写入")
}

// AuditIncomeDeleted 营收记录删除
func AuditIncomeDeleted(operator string, statDate string, vehicleNo string) {
	if Audit == nil {
		return
	}
	Audit.WithFields(logrus.Fields{
		"op":         "income.deleted",
		"operator":   operator,
		"stat_date":  statDate,
		"vehicle_no": vehicleNo,
	}).Info("营收记录删除")
}

// AuditBalanceSaved 补款结算保存
func AuditBalanceSaved(operator string, year, month int, managerSalary decimal.Decimal, manual decimal.NullDecimal) {
	if Audit == nil {
		return
	}
	fields := logrus.Fields{
		"op":             "balance.saved",
		"operator":       operator,
		"year":           year,
		"month":          month,
		"manager_salary": managerSalary.String(),
	}
	if manual.Valid {
		fields["manual_average"] = manual.Decimal.String()
	}
	Audit.WithFields(fields).Info("补款结算保存")
}
