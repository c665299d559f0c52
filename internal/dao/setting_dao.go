package dao

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fleet-ledger-api/internal/config"
	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/dal"
	mainmodel "fleet-ledger-api/internal/model/main"
	"fleet-ledger-api/internal/system"
)

// SettingDao 全局管理员工资，落在 sys_config 表，读走缓存。
// 结算保存时的读后写由 service 层的锁保证原子。
type SettingDao struct{}

// GetManagerSalary 读当前全局工资，没配置过按 0 计
func (r *SettingDao) GetManagerSalary() (decimal.Decimal, error) {
	cfg := (&system.ConfigSystem{}).GetConfigCacheByConfigKey(config.C.Fleet.ManagerSalaryKey)
	if cfg.ConfigId == 0 || cfg.ConfigValue == "" {
		return decimal.Zero, nil
	}
	salary, err := decimal.NewFromString(cfg.ConfigValue)
	if err != nil {
		return decimal.Zero, constant.NewError(constant.CodeSalaryInvalid)
	}
	return salary, nil
}

// SetManagerSalary 更新全局工资并刷新缓存
func (r *SettingDao) SetManagerSalary(salary decimal.Decimal, operator string) error {
	key := config.C.Fleet.ManagerSalaryKey
	err := dal.MainDB.Transaction(func(tx *gorm.DB) error {
		var existing mainmodel.SysConfig
		err := tx.Where("config_key=?", key).Last(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			return tx.Model(&mainmodel.SysConfig{}).
				Where("config_id=?", existing.ConfigId).
				Updates(map[string]interface{}{
					"config_value": salary.String(),
					"update_by":    operator,
				}).Error
		}
		return tx.Create(&mainmodel.SysConfig{
			ConfigName:  "管理员工资",
			ConfigKey:   key,
			ConfigValue: salary.String(),
			CreateBy:    operator,
		}).Error
	})
	if err != nil {
		return err
	}
	(&system.ConfigSystem{}).RefreshConfigCache(key)
	return nil
}
