package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"fleet-ledger-api/internal/dal"
)

// 审计事件是事后通知，尽力而为；日汇总重算本身始终同步完成，不依赖 MQ。

type IncomeSavedEvent struct {
	VehicleNo string `json:"vehicle_no"`
	StatDate  string `json:"stat_date"`
	Revenue   string `json:"revenue"`
	NetIncome string `json:"net_income"`
	SavedAt   int64  `json:"saved_at"`
}

type DayRecomputedEvent struct {
	StatDate    string `json:"stat_date"`
	RecordCount int    `json:"record_count"`
	At          int64  `json:"at"`
}

type BalanceSavedEvent struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Operator string `json:"operator"`
	At       int64  `json:"at"`
}

// Publish 发布车队账务事件到 fleet_events exchange
func Publish(routingKey string, evt any) error {
	if !dal.MQReady() {
		return nil
	}
	b, _ := json.Marshal(evt)
	err := dal.GetChannel().Publish(
		"fleet_events",
		routingKey,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", routingKey, err)
	}
	return err
}
