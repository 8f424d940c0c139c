package shared

import "time"

// IDGenerator 标识生成器
// 生成的ID全局唯一且按时间有序
type IDGenerator interface {
	Generate() string
}

// Clock 时钟(测试中替换为固定时间)
type Clock interface {
	Now() time.Time
}

// SystemClock 系统时钟,统一返回UTC时间
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
