package config

import (
	"flag"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RabbitCfg struct {
	URL string `mapstructure:"url"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"poolSize"`
}
type FleetCfg struct {
	// 结算快照里冻结的管理员工资在 sys_config 中的 key
	ManagerSalaryKey string `mapstructure:"managerSalaryKey"`
	// 营收日期允许回填的天数，0 表示不限制
	BackfillDays int `mapstructure:"backfillDays"`
}

type Root struct {
	Server    ServerCfg `mapstructure:"server"`
	MysqlMain MysqlCfg  `mapstructure:"mysql_main"`
	RabbitMQ  RabbitCfg `mapstructure:"rabbitmq"`
	Redis     RedisCfg  `mapstructure:"redis"`
	Fleet     FleetCfg  `mapstructure:"fleet"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile("config/config." + *env + ".yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config file failed: %v", err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}

	// sane defaults
	if strings.TrimSpace(C.Server.Port) == "" {
		C.Server.Port = "8080"
	}
	if strings.TrimSpace(C.Fleet.ManagerSalaryKey) == "" {
		C.Fleet.ManagerSalaryKey = "fleet.manager.salary"
	}
}
