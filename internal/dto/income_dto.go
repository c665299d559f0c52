package dto

import "github.com/shopspring/decimal"

// SaveIncomeReq 单车单日营收录入，金额一律用字符串传递，避免二进制浮点
type SaveIncomeReq struct {
	StatDate  string `json:"statDate" binding:"required"` // YYYY-MM-DD
	VehicleNo string `json:"vehicleNo" binding:"required"`

	// 五趟金额，未跑传 null
	Turn1 *string `json:"turn1"`
	Turn2 *string `json:"turn2"`
	Turn3 *string `json:"turn3"`
	Turn4 *string `json:"turn4"`
	Turn5 *string `json:"turn5"`

	WechatAmount  string `json:"wechatAmount"`
	FuelSubsidy   string `json:"fuelSubsidy"`
	RewardPenalty string `json:"rewardPenalty"`
	IsOvertime    bool   `json:"isOvertime"`
	Remark        string `json:"remark"`
}

// BatchIncomeEntry 批量录入单条，日期取批次级的 statDate
type BatchIncomeEntry struct {
	VehicleNo     string  `json:"vehicleNo" binding:"required"`
	Turn1         *string `json:"turn1"`
	Turn2         *string `json:"turn2"`
	Turn3         *string `json:"turn3"`
	Turn4         *string `json:"turn4"`
	Turn5         *string `json:"turn5"`
	WechatAmount  string  `json:"wechatAmount"`
	FuelSubsidy   string  `json:"fuelSubsidy"`
	RewardPenalty string  `json:"rewardPenalty"`
	IsOvertime    bool    `json:"isOvertime"`
	Remark        string  `json:"remark"`
}

// BatchSaveIncomeReq 一天多车批量录入，整批一个事务，日汇总只在批后重算一次
type BatchSaveIncomeReq struct {
	StatDate string             `json:"statDate" binding:"required"`
	Records  []BatchIncomeEntry `json:"records" binding:"required"`
}

// IncomeRecordVo 营收记录视图，含派生字段
type IncomeRecordVo struct {
	StatDate  string `json:"statDate"`
	VehicleNo string `json:"vehicleNo"`

	Turn1 decimal.NullDecimal `json:"turn1"`
	Turn2 decimal.NullDecimal `json:"turn2"`
	Turn3 decimal.NullDecimal `json:"turn3"`
	Turn4 decimal.NullDecimal `json:"turn4"`
	Turn5 decimal.NullDecimal `json:"turn5"`

	WechatAmount  decimal.Decimal `json:"wechatAmount"`
	FuelSubsidy   decimal.Decimal `json:"fuelSubsidy"`
	RewardPenalty decimal.Decimal `json:"rewardPenalty"`
	IsOvertime    bool            `json:"isOvertime"`

	Revenue   decimal.Decimal `json:"revenue"`
	NetIncome decimal.Decimal `json:"netIncome"`
	TurnCount int             `json:"turnCount"`

	Operator string `json:"operator"`
	Remark   string `json:"remark"`
}
