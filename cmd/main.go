package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"fleet-ledger-api/internal/config"
	"fleet-ledger-api/internal/dal"
	"fleet-ledger-api/internal/handler"
	"fleet-ledger-api/internal/idgen"
	"fleet-ledger-api/internal/logger"
	"fleet-ledger-api/internal/middleware"
	"fleet-ledger-api/internal/system"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitMainDB()
	dal.InitRedis()
	if err := dal.InitRabbitMQ(); err != nil {
		// 审计事件尽力而为，MQ 不可用不阻塞启动
		log.Printf("rabbitmq init failed, audit events disabled: %v", err)
	}
	logger.InitLogger()
	system.Config()

	// idgen
	idgen.Init(1)
	go idgen.CheckSystemClock()

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// 设置可信代理 IP（如本地或内网）
	r.SetTrustedProxies([]string{"127.0.0.1", "192.168.0.0/16"})
	r.Use(middleware.Recover(), middleware.Operator(), middleware.Logger())

	v1 := r.Group("/api/v1")
	{
		ih := handler.NewIncomeHandler()
		v1.POST("/incomes", ih.Save)
		v1.POST("/incomes/batch", ih.SaveBatch)
		v1.GET("/incomes", ih.Get)
		v1.DELETE("/incomes", ih.Delete)

		sh := handler.NewStatsHandler()
		v1.GET("/stats/daily", sh.GetDaily)
		v1.POST("/stats/daily/recompute", sh.RecomputeDaily)
		v1.GET("/stats/monthly", sh.GetMonthly)

		bh := handler.NewBalanceHandler()
		v1.GET("/balance", bh.Get)
		v1.POST("/balance/preview", bh.Preview)
		v1.POST("/balance/save", bh.Save)

		fh := handler.NewFleetHandler()
		v1.GET("/vehicles", fh.ListVehicles)
		v1.GET("/schedules", fh.ListSchedules)
		v1.POST("/schedules", fh.SaveSchedules)
		v1.GET("/settings/manager-salary", fh.GetManagerSalary)
		v1.PUT("/settings/manager-salary", fh.SetManagerSalary)
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
