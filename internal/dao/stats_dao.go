package dao

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fleet-ledger-api/internal/dal"
	"fleet-ledger-api/internal/idgen"
	mainmodel "fleet-ledger-api/internal/model/main"
)

type StatsDao struct{}

// Get 查询某天的日统计，不存在返回 nil
func (r *StatsDao) Get(date time.Time) (*mainmodel.DailyStatistics, error) {
	var m mainmodel.DailyStatistics
	err := dal.MainDB.Where("stat_date=?", date).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert 按日期覆盖写入，日统计永远是整日重算的结果
func (r *StatsDao) Upsert(stats *mainmodel.DailyStatistics) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		var existing mainmodel.DailyStatistics
		err := tx.Where("stat_date=?", stats.StatDate).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			stats.ID = existing.ID
			stats.CreateTime = existing.CreateTime
			return tx.Save(stats).Error
		}
		stats.ID = idgen.New()
		return tx.Create(stats).Error
	})
}
