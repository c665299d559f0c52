package system

import (
	"log"

	"fleet-ledger-api/internal/config"
)

func Config() {

	salary := (&ConfigSystem{}).GetConfigCacheByConfigKey(config.C.Fleet.ManagerSalaryKey).ConfigValue

	log.Printf("当前管理员工资设置: %s", salary)

}
