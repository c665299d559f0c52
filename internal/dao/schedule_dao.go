package dao

import (
	"errors"

	"gorm.io/gorm"

	"fleet-ledger-api/internal/dal"
	"fleet-ledger-api/internal/idgen"
	mainmodel "fleet-ledger-api/internal/model/main"
)

type ScheduleDao struct{}

// ListByMonth 查询某月全部排班
func (r *ScheduleDao) ListByMonth(year, month int) ([]mainmodel.ConductorSchedule, error) {
	var list []mainmodel.ConductorSchedule
	if err := dal.MainDB.Where("year=? AND month=?", year, month).
		Order("vehicle_no").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// SaveBatch 整月排班批量覆盖，一个事务
func (r *ScheduleDao) SaveBatch(items []*mainmodel.ConductorSchedule) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var existing mainmodel.ConductorSchedule
			err := tx.Where("vehicle_id=? AND year=? AND month=?", item.VehicleID, item.Year, item.Month).
				First(&existing).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err == nil {
				item.ID = existing.ID
				item.CreateTime = existing.CreateTime
				if err := tx.Save(item).Error; err != nil {
					return err
				}
				continue
			}
			item.ID = idgen.New()
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
