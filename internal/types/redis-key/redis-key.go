package rediskey

const prefix = "fleet-ledger"

// SysConfigKey 配置表缓存 hash 的 key，field 是 config_key
func SysConfigKey() string {
	return prefix + ":system:config"
}
