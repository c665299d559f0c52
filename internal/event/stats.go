package event

import (
	"time"

	"github.com/shopspring/decimal"

	"fleet-ledger-api/internal/mq"
)

// 账务审计事件异步发布，失败只记日志不影响主流程

// PublishIncomeSaved 营收记录写入事件
func PublishIncomeSaved(vehicleNo, statDate string, revenue, netIncome decimal.Decimal) {
	evt := mq.IncomeSavedEvent{
		VehicleNo: vehicleNo,
		StatDate:  statDate,
		Revenue:   revenue.String(),
		NetIncome: netIncome.String(),
		SavedAt:   time.Now().Unix(),
	}
	go func() { _ = mq.Publish("income.saved", evt) }()
}

// PublishDayRecomputed 日统计重算事件
func PublishDayRecomputed(statDate string, recordCount int) {
	evt := mq.DayRecomputedEvent{
		StatDate:    statDate,
		RecordCount: recordCount,
		At:          time.Now().Unix(),
	}
	go func() { _ = mq.Publish("stats.day.recomputed", evt) }()
}

// PublishBalanceSaved 结算快照保存事件
func PublishBalanceSaved(year, month int, operator string) {
	evt := mq.BalanceSavedEvent{
		Year:     year,
		Month:    month,
		Operator: operator,
		At:       time.Now().Unix(),
	}
	go func() { _ = mq.Publish("balance.saved", evt) }()
}
