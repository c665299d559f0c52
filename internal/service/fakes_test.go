package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	mainmodel "fleet-ledger-api/internal/model/main"
	"fleet-ledger-api/internal/utils/timeutil"
)

// memStore 全部存储接口的内存假实现，测试不碰 MySQL/Redis
type memStore struct {
	nextID    uint64
	incomes   map[string]*mainmodel.IncomeRecord
	daily     map[string]*mainmodel.DailyStatistics
	vehicles  []mainmodel.Vehicle
	schedules []mainmodel.ConductorSchedule
	salary    decimal.Decimal
	balances  map[string]*mainmodel.PaymentBalance
}

func newMemStore(vehicles ...mainmodel.Vehicle) *memStore {
	return &memStore{
		incomes:  make(map[string]*mainmodel.IncomeRecord),
		daily:    make(map[string]*mainmodel.DailyStatistics),
		vehicles: vehicles,
		balances: make(map[string]*mainmodel.PaymentBalance),
	}
}

func fleet(nos ...string) []mainmodel.Vehicle {
	vehicles := make([]mainmodel.Vehicle, 0, len(nos))
	for i, no := range nos {
		vehicles = append(vehicles, mainmodel.Vehicle{
			VehicleID: uint64(i + 1),
			VehicleNo: no,
			Status:    mainmodel.VehicleStatusActive,
			SortOrder: i,
		})
	}
	return vehicles
}

func incomeKey(date time.Time, vehicleID uint64) string {
	return fmt.Sprintf("%s|%d", timeutil.FormatDate(date), vehicleID)
}

func balanceKey(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

func (m *memStore) id() uint64 {
	m.nextID++
	return m.nextID
}

// ---- IncomeStore ----

func (m *memStore) Get(date time.Time, vehicleID uint64) (*mainmodel.IncomeRecord, error) {
	rec, ok := m.incomes[incomeKey(date, vehicleID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memStore) ListByDate(date time.Time) ([]mainmodel.IncomeRecord, error) {
	var list []mainmodel.IncomeRecord
	for _, rec := range m.incomes {
		if rec.StatDate.Equal(date) {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (m *memStore) ListByRange(from, to time.Time) ([]mainmodel.IncomeRecord, error) {
	var list []mainmodel.IncomeRecord
	for _, rec := range m.incomes {
		if !rec.StatDate.Before(from) && !rec.StatDate.After(to) {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (m *memStore) Save(rec *mainmodel.IncomeRecord) error {
	if rec.ID == 0 {
		rec.ID = m.id()
	}
	cp := *rec
	m.incomes[incomeKey(rec.StatDate, rec.VehicleID)] = &cp
	return nil
}

func (m *memStore) SaveBatch(recs []*mainmodel.IncomeRecord) error {
	for _, rec := range recs {
		if err := m.Save(rec); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStore) Delete(date time.Time, vehicleID uint64) (bool, error) {
	key := incomeKey(date, vehicleID)
	if _, ok := m.incomes[key]; !ok {
		return false, nil
	}
	delete(m.incomes, key)
	return true, nil
}

// ---- DailyStatsStore ----

func (m *memStore) GetDaily(date time.Time) (*mainmodel.DailyStatistics, error) {
	stats, ok := m.daily[timeutil.FormatDate(date)]
	if !ok {
		return nil, nil
	}
	cp := *stats
	return &cp, nil
}

func (m *memStore) Upsert(stats *mainmodel.DailyStatistics) error {
	if stats.ID == 0 {
		stats.ID = m.id()
	}
	cp := *stats
	m.daily[timeutil.FormatDate(stats.StatDate)] = &cp
	return nil
}

// ---- VehicleStore ----

func (m *memStore) ListActive() ([]mainmodel.Vehicle, error) {
	var list []mainmodel.Vehicle
	for _, v := range m.vehicles {
		if v.Status == mainmodel.VehicleStatusActive {
			list = append(list, v)
		}
	}
	return list, nil
}

func (m *memStore) GetByNo(no string) (*mainmodel.Vehicle, error) {
	for i := range m.vehicles {
		if m.vehicles[i].VehicleNo == no {
			cp := m.vehicles[i]
			return &cp, nil
		}
	}
	return nil, nil
}

// ---- ScheduleStore ----

func (m *memStore) ListByMonth(year, month int) ([]mainmodel.ConductorSchedule, error) {
	var list []mainmodel.ConductorSchedule
	for _, sch := range m.schedules {
		if sch.Year == year && sch.Month == month {
			list = append(list, sch)
		}
	}
	return list, nil
}

func (m *memStore) SaveBatch2(items []*mainmodel.ConductorSchedule) error {
	for _, item := range items {
		item.ID = m.id()
		m.schedules = append(m.schedules, *item)
	}
	return nil
}

// ---- SettingStore ----

func (m *memStore) GetManagerSalary() (decimal.Decimal, error) {
	return m.salary, nil
}

func (m *memStore) SetManagerSalary(salary decimal.Decimal, operator string) error {
	m.salary = salary
	return nil
}

// ---- BalanceStore ----

func (m *memStore) GetBalance(year, month int) (*mainmodel.PaymentBalance, error) {
	b, ok := m.balances[balanceKey(year, month)]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memStore) UpsertBalance(b *mainmodel.PaymentBalance) error {
	if b.ID == 0 {
		b.ID = m.id()
	}
	cp := *b
	m.balances[balanceKey(b.Year, b.Month)] = &cp
	return nil
}

// ---- 接口适配：同名方法冲突用薄壳隔开 ----

type memIncome struct{ *memStore }

type memDaily struct{ *memStore }

func (m memDaily) Get(date time.Time) (*mainmodel.DailyStatistics, error) {
	return m.GetDaily(date)
}

type memSchedule struct{ *memStore }

func (m memSchedule) SaveBatch(items []*mainmodel.ConductorSchedule) error {
	return m.SaveBatch2(items)
}

type memBalance struct{ *memStore }

func (m memBalance) Get(year, month int) (*mainmodel.PaymentBalance, error) {
	return m.GetBalance(year, month)
}

func (m memBalance) Upsert(b *mainmodel.PaymentBalance) error {
	return m.UpsertBalance(b)
}

// newServices 用同一个内存存储拼出整套服务
func newServices(ms *memStore) (*IncomeService, *DailyStatsService, *MonthlyStatsService, *BalanceService) {
	daily := NewDailyStatsService(memIncome{ms}, memDaily{ms}, ms)
	income := NewIncomeService(memIncome{ms}, ms, daily)
	monthly := NewMonthlyStatsService(memIncome{ms}, ms, memSchedule{ms})
	balance := NewBalanceService(monthly, ms, memBalance{ms})
	return income, daily, monthly, balance
}
