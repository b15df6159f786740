package tether

import (
	"encoding/binary"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
	"weak"

	"github.com/cespare/xxhash/v2"
)

const (
	tableShards = 64
	shardMask   = tableShards - 1
)

// stored wraps one written ref so atomic cells can swap it as a single
// pointer.
type stored struct {
	ref any
}

// cell holds one association. Atomic cells swap through aref and never
// block readers; non-atomic cells keep ref under the shard lock.
type cell struct {
	atomic bool
	aref   atomic.Pointer[stored]
	ref    any
}

// hostEntry collects every association of one live host.
type hostEntry struct {
	assoc   map[*slot]*cell
	cleanup runtime.Cleanup
}

// purgeKey identifies a host's entry from the cleanup goroutine without
// keeping the host reachable.
type purgeKey struct {
	shard uint32
	key   any
}

// shard is one stripe of the side table.
type shard struct {
	mu    sync.RWMutex
	hosts map[any]*hostEntry
}

// table is the global side table: host entries striped over shards,
// each keyed by the host's weak handle. Weak handles compare equal
// exactly when made from the same live object, and a reused address
// gets a fresh handle, so no entry ever surfaces on a later occupant
// of the same memory.
type table struct {
	shards [tableShards]shard
}

var defaultTable = newTable()

func newTable() *table {
	t := &table{}
	for i := range t.shards {
		t.shards[i].hosts = make(map[any]*hostEntry)
	}
	return t
}

// locate picks the host's shard and builds its purge key. The address
// feeds distribution only; identity lives in the weak handle.
func locate[H any](t *table, host *H) (*shard, purgeKey) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(uintptr(unsafe.Pointer(host))))
	idx := uint32(xxhash.Sum64(b[:]) & shardMask)
	return &t.shards[idx], purgeKey{shard: idx, key: weak.Make(host)}
}

// tableGet reads the ref stored under (host, s).
func tableGet[H any](t *table, host *H, s *slot) (any, bool) {
	sh, pk := locate(t, host)

	sh.mu.RLock()
	e := sh.hosts[pk.key]
	if e == nil {
		sh.mu.RUnlock()
		return nil, false
	}
	c := e.assoc[s]
	if c == nil {
		sh.mu.RUnlock()
		return nil, false
	}
	var ref any
	if c.atomic {
		ref = c.aref.Load().ref
	} else {
		ref = c.ref
	}
	sh.mu.RUnlock()
	return ref, true
}

// tableWrite stores ref under (host, s), creating the host entry and
// cell on first use. With onlyIfAbsent, an existing live value is
// returned untouched; alive decides liveness (nil means always live).
// Reports the prior ref and whether one was present.
func tableWrite[H any](t *table, host *H, s *slot, ref any, onlyIfAbsent bool, alive func(any) bool) (any, bool) {
	sh, pk := locate(t, host)

	// Existing atomic cells swap under the read lock, so readers and
	// writers of the same association never queue behind each other.
	if s.policy.Atomic() && !onlyIfAbsent {
		sh.mu.RLock()
		if e := sh.hosts[pk.key]; e != nil {
			if c := e.assoc[s]; c != nil {
				prev := c.aref.Swap(&stored{ref: ref})
				sh.mu.RUnlock()
				return prev.ref, true
			}
		}
		sh.mu.RUnlock()
	}

	sh.mu.Lock()
	e := sh.hosts[pk.key]
	if e == nil {
		e = &hostEntry{assoc: make(map[*slot]*cell, 1)}
		e.cleanup = runtime.AddCleanup(host, t.purge, pk)
		sh.hosts[pk.key] = e
	}
	c := e.assoc[s]
	if c == nil {
		c = &cell{atomic: s.policy.Atomic()}
		if c.atomic {
			c.aref.Store(&stored{ref: ref})
		} else {
			c.ref = ref
		}
		e.assoc[s] = c
		sh.mu.Unlock()
		return nil, false
	}

	var prev any
	if c.atomic {
		prev = c.aref.Load().ref
	} else {
		prev = c.ref
	}
	if onlyIfAbsent && (alive == nil || alive(prev)) {
		sh.mu.Unlock()
		return prev, true
	}

	// Atomic writers hold at least the read lock, so storing under the
	// write lock cannot lose a concurrent swap.
	if c.atomic {
		c.aref.Store(&stored{ref: ref})
	} else {
		c.ref = ref
	}
	sh.mu.Unlock()
	if onlyIfAbsent {
		return nil, false
	}
	return prev, true
}

// tableClear removes the association under (host, s). Removing the
// last association drops the host entry and cancels its cleanup.
func tableClear[H any](t *table, host *H, s *slot) bool {
	sh, pk := locate(t, host)

	sh.mu.Lock()
	e := sh.hosts[pk.key]
	if e == nil {
		sh.mu.Unlock()
		return false
	}
	if _, ok := e.assoc[s]; !ok {
		sh.mu.Unlock()
		return false
	}
	delete(e.assoc, s)
	if len(e.assoc) == 0 {
		delete(sh.hosts, pk.key)
		e.cleanup.Stop()
	}
	sh.mu.Unlock()
	return true
}

// purge drops a collected host's entry. Runs on the cleanup goroutine;
// the host is already unreachable, so nothing can write to the entry
// concurrently.
func (t *table) purge(pk purgeKey) {
	sh := &t.shards[pk.shard]

	sh.mu.Lock()
	e, ok := sh.hosts[pk.key]
	if ok {
		delete(sh.hosts, pk.key)
	}
	sh.mu.Unlock()

	if ok {
		emitHostPurged(len(e.assoc))
	}
}
