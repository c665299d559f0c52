package utils

import "sync"

// KeyLock 按键互斥：同一天的营收写入、同一 (年,月) 的结算保存必须串行，
// 最终落库状态是某一个写入者的完整意图，不能交错。
type KeyLock struct {
	locks sync.Map // map[string]*sync.Mutex
}

// Lock 锁住 key，返回解锁函数
func (l *KeyLock) Lock(key string) func() {
	v, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
