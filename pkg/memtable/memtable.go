package memtable

import (
	"encoding/binary"
	"time"

	"github.com/coocood/freecache"
)

// MemTable is an in-process uint64 table whose entries expire after a ttl
type MemTable struct {
	cache      *freecache.Cache
	ttlSeconds int
}

// New creates freecache with size, ttl is rounded up to whole seconds
func New(size int, ttl time.Duration) *MemTable {
	ttlSeconds := int((ttl + time.Second - 1) / time.Second)
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}
	return &MemTable{
		cache:      freecache.NewCache(size),
		ttlSeconds: ttlSeconds,
	}
}

// GetNum ...
func (m *MemTable) GetNum(key string) (num uint64, ok bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return 0, false
	}
	if len(data) < 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data), true
}

// SetNum ...
func (m *MemTable) SetNum(key string, num uint64) {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], num)
	_ = m.cache.Set([]byte(key), data[:], m.ttlSeconds)
}
