package service

import (
	"time"

	"github.com/shopspring/decimal"

	mainmodel "fleet-ledger-api/internal/model/main"
	"fleet-ledger-api/internal/utils"
)

// 存储依赖全部走接口注入，dao 包给出 MySQL 实现，测试用内存假实现。
// 全局管理员工资也通过 SettingStore 显式传入，不做包级可变状态。

// IncomeStore 营收记录存储，自然键 (stat_date, vehicle_id)
type IncomeStore interface {
	Get(date time.Time, vehicleID uint64) (*mainmodel.IncomeRecord, error)
	ListByDate(date time.Time) ([]mainmodel.IncomeRecord, error)
	ListByRange(from, to time.Time) ([]mainmodel.IncomeRecord, error)
	Save(rec *mainmodel.IncomeRecord) error
	SaveBatch(recs []*mainmodel.IncomeRecord) error
	Delete(date time.Time, vehicleID uint64) (bool, error)
}

// DailyStatsStore 日统计存储，按日期唯一
type DailyStatsStore interface {
	Get(date time.Time) (*mainmodel.DailyStatistics, error)
	Upsert(stats *mainmodel.DailyStatistics) error
}

// VehicleStore 车辆名册，ListActive 按名册顺序返回
type VehicleStore interface {
	ListActive() ([]mainmodel.Vehicle, error)
	GetByNo(no string) (*mainmodel.Vehicle, error)
}

// ScheduleStore 售票员排班
type ScheduleStore interface {
	ListByMonth(year, month int) ([]mainmodel.ConductorSchedule, error)
	SaveBatch(items []*mainmodel.ConductorSchedule) error
}

// SettingStore 全局管理员工资。结算保存时读后写必须在调用方的锁内完成
type SettingStore interface {
	GetManagerSalary() (decimal.Decimal, error)
	SetManagerSalary(salary decimal.Decimal, operator string) error
}

// BalanceStore 结算快照存储，(year, month) 唯一
type BalanceStore interface {
	Get(year, month int) (*mainmodel.PaymentBalance, error)
	Upsert(b *mainmodel.PaymentBalance) error
}

// 写路径按键互斥：营收按日期（单笔与批量共用同一把锁），结算按 年-月，
// 工资读写单独一把
var keyLocks utils.KeyLock
