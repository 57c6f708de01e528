package event

import (
	"strconv"
)

// SeqHeadCache is implemented by *memtable.MemTable
type SeqHeadCache interface {
	GetNum(key string) (uint64, bool)
	SetNum(key string, num uint64)
}

// seqHeads remembers the highest committed seq seen per world.
// Entries only move forward and expire with the cache ttl, so a poll at the
// cached head may miss rows committed by other processes for at most one ttl.
type seqHeads struct {
	cache SeqHeadCache
}

func seqHeadKey(worldID int64) string {
	return "seq:head:" + strconv.FormatInt(worldID, 10)
}

func (h seqHeads) get(worldID int64) (int64, bool) {
	if h.cache == nil {
		return 0, false
	}
	num, ok := h.cache.GetNum(seqHeadKey(worldID))
	if !ok {
		return 0, false
	}
	return int64(num), true
}

func (h seqHeads) advance(worldID int64, seq int64) {
	if h.cache == nil || seq <= 0 {
		return
	}
	if current, ok := h.get(worldID); ok && current >= seq {
		return
	}
	h.cache.SetNum(seqHeadKey(worldID), uint64(seq))
}
