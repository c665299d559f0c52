package service

import (
	"github.com/shopspring/decimal"

	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/dto"
	mainmodel "fleet-ledger-api/internal/model/main"
	"fleet-ledger-api/internal/money"
	"fleet-ledger-api/internal/ranking"
	"fleet-ledger-api/internal/utils/timeutil"
)

type MonthlyStatsService struct {
	incomes   IncomeStore
	vehicles  VehicleStore
	schedules ScheduleStore
}

func NewMonthlyStatsService(incomes IncomeStore, vehicles VehicleStore, schedules ScheduleStore) *MonthlyStatsService {
	return &MonthlyStatsService{
		incomes:   incomes,
		vehicles:  vehicles,
		schedules: schedules,
	}
}

// ComputeMonth 月统计按需现算，不落库不缓存，任何时刻都和营收记录一致。
// 单车金额按月合计，趟次金额取槽位最大值（单趟最高），四个榜单见各 build 函数。
func (s *MonthlyStatsService) ComputeMonth(year, month int) (dto.MonthlyStatsVo, error) {
	var vo dto.MonthlyStatsVo
	if !timeutil.ValidMonth(month) || year <= 0 {
		return vo, constant.NewError(constant.CodeMonthInvalid)
	}

	first, last := timeutil.MonthRange(year, month)
	records, err := s.incomes.ListByRange(first, last)
	if err != nil {
		return vo, err
	}
	roster, err := s.vehicles.ListActive()
	if err != nil {
		return vo, err
	}
	schedules, err := s.schedules.ListByMonth(year, month)
	if err != nil {
		return vo, err
	}
	conductorByVehicle := make(map[uint64]string, len(schedules))
	for _, sch := range schedules {
		conductorByVehicle[sch.VehicleID] = sch.ConductorNo
	}

	vo.Year, vo.Month = year, month
	daysInMonth := timeutil.DaysInMonth(year, month)

	// 名册顺序初始化单车聚合
	byVehicle := make(map[uint64]*dto.MonthlyVehicleVo, len(roster))
	vo.Vehicles = make([]dto.MonthlyVehicleVo, 0, len(roster))
	for _, v := range roster {
		vo.Vehicles = append(vo.Vehicles, dto.MonthlyVehicleVo{
			VehicleID:   v.VehicleID,
			VehicleNo:   v.VehicleNo,
			ConductorNo: conductorByVehicle[v.VehicleID],
		})
		byVehicle[v.VehicleID] = &vo.Vehicles[len(vo.Vehicles)-1]
	}

	totalRevenue, totalNetIncome := decimal.Zero, decimal.Zero
	for i := range records {
		rec := &records[i]
		totalRevenue = totalRevenue.Add(rec.Revenue)
		totalNetIncome = totalNetIncome.Add(rec.NetIncome)
		vo.RecordCount++
		if rec.IsOvertime {
			vo.OvertimeCount++
		}

		agg, ok := byVehicle[rec.VehicleID]
		if !ok {
			// 已停运车辆的历史记录计入月总额，但不进名册聚合
			continue
		}
		agg.HasIncome = true
		agg.RecordCount++
		agg.Revenue = money.Truncate(agg.Revenue.Add(rec.Revenue))
		agg.NetIncome = money.Truncate(agg.NetIncome.Add(rec.NetIncome))
		agg.TurnCount += rec.TurnCount
		agg.WechatAmount = money.Truncate(agg.WechatAmount.Add(rec.WechatAmount))
		agg.FuelSubsidy = money.Truncate(agg.FuelSubsidy.Add(rec.FuelSubsidy))
		agg.RewardPenalty = money.Truncate(agg.RewardPenalty.Add(rec.RewardPenalty))
		if rec.IsOvertime {
			agg.IsOvertime = true
		}

		turns := rec.Turns()
		maxes := []*decimal.NullDecimal{&agg.Turn1Max, &agg.Turn2Max, &agg.Turn3Max, &agg.Turn4Max, &agg.Turn5Max}
		for slot := range turns {
			if !turns[slot].Valid {
				continue
			}
			if !maxes[slot].Valid || turns[slot].Decimal.GreaterThan(maxes[slot].Decimal) {
				*maxes[slot] = turns[slot]
			}
		}
	}
	vo.TotalRevenue = money.Truncate(totalRevenue)
	vo.TotalNetIncome = money.Truncate(totalNetIncome)

	for i := range vo.Vehicles {
		vo.Vehicles[i].RestDayCount = daysInMonth - vo.Vehicles[i].RecordCount
		vo.RestDayCount += vo.Vehicles[i].RestDayCount
	}

	vo.RevenueRanking = buildRevenueRanking(vo.Vehicles)
	vo.SingleTurnRanking = buildSingleTurnRanking(records)
	vo.AvgPerTurnRanking = buildAvgPerTurnRanking(vo.Vehicles)
	vo.RewardPenaltyRanking = buildRewardPenaltyRanking(records)
	return vo, nil
}

// buildRevenueRanking 营业额榜：有收入的车降序在前，无收入的车按名册顺序接在后面，名次连续编号
func buildRevenueRanking(vehicles []dto.MonthlyVehicleVo) []dto.RankItemVo {
	ranked := make([]ranking.Item, 0, len(vehicles))
	tail := make([]ranking.Item, 0)
	for _, v := range vehicles {
		item := ranking.Item{VehicleID: v.VehicleID, VehicleNo: v.VehicleNo, Value: v.Revenue}
		if v.Revenue.IsPositive() {
			ranked = append(ranked, item)
		} else {
			tail = append(tail, item)
		}
	}
	ranking.SortDesc(ranked)
	ranked = append(ranked, tail...)
	ranking.Number(ranked)
	return rankVos(ranked, false)
}

// buildSingleTurnRanking 单趟榜：整月所有 (车, 趟, 金额>0) 摊平成独立条目，一辆车可多次上榜
func buildSingleTurnRanking(records []mainmodel.IncomeRecord) []dto.RankItemVo {
	items := make([]ranking.Item, 0)
	for i := range records {
		rec := &records[i]
		turns := rec.Turns()
		for slot := range turns {
			if turns[slot].Valid && turns[slot].Decimal.IsPositive() {
				items = append(items, ranking.Item{
					VehicleID: rec.VehicleID,
					VehicleNo: rec.VehicleNo,
					Value:     turns[slot].Decimal,
					TurnSlot:  slot + 1,
				})
			}
		}
	}
	ranking.SortDesc(items)
	ranking.Number(items)
	return rankVos(ranking.Window(items, ranking.SingleTurnWindow), false)
}

// buildAvgPerTurnRanking 趟均榜：revenue/turn_count 降序，没有趟次的车接在后面继续编号
func buildAvgPerTurnRanking(vehicles []dto.MonthlyVehicleVo) []dto.RankItemVo {
	ranked := make([]ranking.Item, 0, len(vehicles))
	tail := make([]ranking.Item, 0)
	for _, v := range vehicles {
		if v.TurnCount > 0 {
			ranked = append(ranked, ranking.Item{
				VehicleID: v.VehicleID,
				VehicleNo: v.VehicleNo,
				Value:     money.DivTruncate(v.Revenue, decimal.NewFromInt(int64(v.TurnCount))),
			})
		} else {
			tail = append(tail, ranking.Item{VehicleID: v.VehicleID, VehicleNo: v.VehicleNo})
		}
	}
	ranking.SortDesc(ranked)
	ranked = append(ranked, tail...)
	ranking.Number(ranked)
	return rankVos(ranked, false)
}

// buildRewardPenaltyRanking 奖罚榜：按单条记录不按车聚合，正数在前按绝对值降序
func buildRewardPenaltyRanking(records []mainmodel.IncomeRecord) []dto.RankItemVo {
	items := make([]ranking.Item, 0)
	for i := range records {
		rec := &records[i]
		if rec.RewardPenalty.IsZero() {
			continue
		}
		items = append(items, ranking.Item{
			VehicleID: rec.VehicleID,
			VehicleNo: rec.VehicleNo,
			Value:     rec.RewardPenalty,
			StatDate:  rec.StatDate,
		})
	}
	ranking.SortSigned(items)
	ranking.Number(items)
	return rankVos(ranking.Window(items, ranking.RewardPenaltyWindow), true)
}

func rankVos(items []ranking.Item, withDate bool) []dto.RankItemVo {
	vos := make([]dto.RankItemVo, 0, len(items))
	for _, item := range items {
		vo := dto.RankItemVo{
			Rank:       item.Rank,
			IsEllipsis: item.IsEllipsis,
			VehicleNo:  item.VehicleNo,
			Value:      item.Value,
			TurnSlot:   item.TurnSlot,
		}
		if withDate && !item.IsEllipsis {
			vo.StatDate = timeutil.FormatDate(item.StatDate)
		}
		vos = append(vos, vo)
	}
	return vos
}
