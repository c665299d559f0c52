package dto

// ConfigDetailResponse 配置表查询结果
type ConfigDetailResponse struct {
	ConfigId    int    `json:"configId"`
	ConfigKey   string `json:"configKey"`
	ConfigValue string `json:"configValue"`
	Remark      string `json:"remark"`
}
