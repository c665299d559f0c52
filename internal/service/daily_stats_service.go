package service

import (
	"time"

	"github.com/shopspring/decimal"

	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/dto"
	"fleet-ledger-api/internal/event"
	mainmodel "fleet-ledger-api/internal/model/main"
	"fleet-ledger-api/internal/money"
	"fleet-ledger-api/internal/utils/timeutil"
)

type DailyStatsService struct {
	incomes  IncomeStore
	stats    DailyStatsStore
	vehicles VehicleStore
}

func NewDailyStatsService(incomes IncomeStore, stats DailyStatsStore, vehicles VehicleStore) *DailyStatsService {
	return &DailyStatsService{
		incomes:  incomes,
		stats:    stats,
		vehicles: vehicles,
	}
}

// RecomputeDay 整日重算：读当天全部营收记录从头算，不做增量修补，
// 乱序写入和半途失败都不会留下漂移。均值分母是注册活跃车辆数，不是当天出车数。
func (s *DailyStatsService) RecomputeDay(date time.Time) (dto.DailyStatsVo, error) {
	var vo dto.DailyStatsVo

	active, err := s.vehicles.ListActive()
	if err != nil {
		return vo, err
	}
	// 活跃车辆数为 0 时均值无定义，日均 0 是合法值，这里必须报错而不是默认成 0
	if len(active) == 0 {
		return vo, constant.NewError(constant.CodeNoActiveVehicle)
	}

	records, err := s.incomes.ListByDate(date)
	if err != nil {
		return vo, err
	}

	totalRevenue, totalNetIncome := decimal.Zero, decimal.Zero
	for _, rec := range records {
		totalRevenue = totalRevenue.Add(rec.Revenue)
		totalNetIncome = totalNetIncome.Add(rec.NetIncome)
	}
	totalRevenue = money.Truncate(totalRevenue)
	totalNetIncome = money.Truncate(totalNetIncome)

	activeCount := decimal.NewFromInt(int64(len(active)))
	stats := &mainmodel.DailyStatistics{
		StatDate:         date,
		TotalRevenue:     totalRevenue,
		TotalNetIncome:   totalNetIncome,
		VehicleCount:     len(records),
		AverageRevenue:   money.DivTruncate(totalRevenue, activeCount),
		AverageNetIncome: money.DivTruncate(totalNetIncome, activeCount),
	}
	if err := s.stats.Upsert(stats); err != nil {
		return vo, err
	}

	event.PublishDayRecomputed(timeutil.FormatDate(date), len(records))
	return dailyVo(stats), nil
}

// GetDay 查询某天的日统计。没有统计行是 NotFound，和"有行但全为 0"是两回事
func (s *DailyStatsService) GetDay(statDate string) (dto.DailyStatsVo, error) {
	var vo dto.DailyStatsVo
	date, err := timeutil.ParseDate(statDate)
	if err != nil {
		return vo, constant.NewError(constant.CodeIncomeDateInvalid)
	}
	stats, err := s.stats.Get(date)
	if err != nil {
		return vo, err
	}
	if stats == nil {
		return vo, constant.NewError(constant.CodeDailyStatsNotFound)
	}
	return dailyVo(stats), nil
}

func dailyVo(stats *mainmodel.DailyStatistics) dto.DailyStatsVo {
	return dto.DailyStatsVo{
		StatDate:         timeutil.FormatDate(stats.StatDate),
		TotalRevenue:     stats.TotalRevenue,
		TotalNetIncome:   stats.TotalNetIncome,
		VehicleCount:     stats.VehicleCount,
		AverageRevenue:   stats.AverageRevenue,
		AverageNetIncome: stats.AverageNetIncome,
	}
}
