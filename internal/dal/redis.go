package dal

import (
	"context"
	"log"
	"time"

	"fleet-ledger-api/internal/config"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()

// InitRedis 缓存只承载 sys_config（管理员工资等全局设置），连接池不必大，
// 池参数从配置读，未配置用默认值
func InitRedis() {
	c := config.C.Redis
	poolSize := c.PoolSize
	if poolSize <= 0 {
		poolSize = 10
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		PoolSize:     poolSize,
		MinIdleConns: 2,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}
	log.Printf("[Redis] 连接成功: %s db=%d", c.Addr, c.DB)
}
