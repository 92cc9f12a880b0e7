package router

import (
	"hash/fnv"
	"sync"
)

// stripedLock serializes work per key using a fixed set of mutexes.
// Different keys may share a stripe, the same key always maps to the same one.
type stripedLock struct {
	stripes []sync.Mutex
}

func newStripedLock(n int) *stripedLock {
	if n <= 0 {
		n = 1
	}
	return &stripedLock{stripes: make([]sync.Mutex, n)}
}

// lock acquires the stripe of key and returns its unlock func
func (l *stripedLock) lock(key string) (unlock func()) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	m := &l.stripes[h.Sum32()%uint32(len(l.stripes))]
	m.Lock()
	return m.Unlock
}
