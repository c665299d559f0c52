package dto

import "github.com/shopspring/decimal"

// DailyStatsVo 日统计视图
type DailyStatsVo struct {
	StatDate         string          `json:"statDate"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalNetIncome   decimal.Decimal `json:"totalNetIncome"`
	VehicleCount     int             `json:"vehicleCount"` // 当天有记录的车辆数
	AverageRevenue   decimal.Decimal `json:"averageRevenue"`
	AverageNetIncome decimal.Decimal `json:"averageNetIncome"`
}

// MonthlyVehicleVo 单车月度聚合。趟次金额取当月各槽位最大值（单趟最高），不是合计
type MonthlyVehicleVo struct {
	VehicleID   uint64 `json:"vehicleId"`
	VehicleNo   string `json:"vehicleNo"`
	ConductorNo string `json:"conductorNo,omitempty"`

	Revenue       decimal.Decimal `json:"revenue"`
	NetIncome     decimal.Decimal `json:"netIncome"`
	TurnCount     int             `json:"turnCount"`
	WechatAmount  decimal.Decimal `json:"wechatAmount"`
	FuelSubsidy   decimal.Decimal `json:"fuelSubsidy"`
	RewardPenalty decimal.Decimal `json:"rewardPenalty"`

	Turn1Max decimal.NullDecimal `json:"turn1Max"`
	Turn2Max decimal.NullDecimal `json:"turn2Max"`
	Turn3Max decimal.NullDecimal `json:"turn3Max"`
	Turn4Max decimal.NullDecimal `json:"turn4Max"`
	Turn5Max decimal.NullDecimal `json:"turn5Max"`

	HasIncome    bool `json:"hasIncome"`
	IsOvertime   bool `json:"isOvertime"` // 当月任一记录加班即为真
	RecordCount  int  `json:"recordCount"`
	RestDayCount int  `json:"restDayCount"` // 当月天数 - 出车天数
}

// RankItemVo 排行榜条目。IsEllipsis 为真时表示窗口截断处的省略行
type RankItemVo struct {
	Rank       int             `json:"rank"`
	IsEllipsis bool            `json:"isEllipsis,omitempty"`
	VehicleNo  string          `json:"vehicleNo,omitempty"`
	Value      decimal.Decimal `json:"value"`
	TurnSlot   int             `json:"turnSlot,omitempty"` // 单趟榜：第几趟
	StatDate   string          `json:"statDate,omitempty"` // 奖罚榜：哪一天
}

// MonthlyStatsVo 月统计视图，按需计算，不落库
type MonthlyStatsVo struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalNetIncome decimal.Decimal `json:"totalNetIncome"`
	RecordCount    int             `json:"recordCount"`
	RestDayCount   int             `json:"restDayCount"`
	OvertimeCount  int             `json:"overtimeCount"`

	Vehicles []MonthlyVehicleVo `json:"vehicles"`

	RevenueRanking       []RankItemVo `json:"revenueRanking"`
	SingleTurnRanking    []RankItemVo `json:"singleTurnRanking"`
	AvgPerTurnRanking    []RankItemVo `json:"avgPerTurnRanking"`
	RewardPenaltyRanking []RankItemVo `json:"rewardPenaltyRanking"`
}
