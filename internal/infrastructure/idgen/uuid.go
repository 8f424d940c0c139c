package idgen

import (
	"github.com/google/uuid"
)

// UUIDGenerator 基于UUIDv7的ID生成器
// v7前48位是毫秒时间戳,字典序即时间序
type UUIDGenerator struct{}

// New 创建ID生成器
func New() UUIDGenerator {
	return UUIDGenerator{}
}

// Generate 生成ID,v7失败(随机源异常)时退回v4
func (UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
