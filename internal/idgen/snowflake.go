package idgen

import (
	"log"
	"time"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init 初始化 Snowflake 节点，记录行主键统一从这里取号
func Init(nodeID int64) {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		log.Fatalf("[IDGen] snowflake init failed: %v", err)
	}
	node = n
}

// New 生成全局 ID
func New() uint64 {
	return uint64(node.Generate().Int64())
}

// CheckSystemClock 时间回拨保护机制,snowflake 本身不防止时间回拨，这里加一个守护
func CheckSystemClock() {
	last := time.Now().UnixMilli()
	ticker := time.NewTicker(time.Second)
	for now := range ticker.C {
		current := now.UnixMilli()
		if current < last {
			log.Fatalf("[IDGen] System clock moved backward: last=%d, now=%d", last, current)
		}
		last = current
	}
}
