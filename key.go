package tether

import (
	"context"
	"fmt"
	"weak"
)

// Key declares one association slot: a fixed value type and a fixed
// retention policy. Keys compare by identity; two keys never collide,
// whatever their names or value types. Create keys once, at package
// level, and share them.
//
// The zero Key is not usable; construct keys with NewKey, NewCopyKey,
// NewWeakKey, or NewBorrowKey.
type Key[V any] struct {
	slot   *slot
	wrap   func(V) any
	unwrap func(any) (V, bool)
	alive  func(any) bool
}

// NewKey creates a retaining key for values of type V. Stored values
// stay reachable until overwritten, cleared, or the host is collected.
func NewKey[V any](opts ...KeyOption) *Key[V] {
	cfg := applyOptions(opts)
	policy := PolicyRetain
	if cfg.atomic {
		policy = PolicyRetainAtomic
	}

	k := &Key[V]{slot: newSlotFor[V](cfg.name, policy)}
	if pointerShaped[V]() {
		k.wrap = func(v V) any { return v }
		k.unwrap = unwrapDirect[V]
	} else {
		k.wrap = func(v V) any { return &box[V]{v: v} }
		k.unwrap = unwrapBox[V]
	}
	return k
}

// NewCopyKey creates a copying key for values of type V. Every write
// stores a clone, so later mutation of the written value never leaks
// into the table; readers share the stored clone.
func NewCopyKey[V Cloner[V]](opts ...KeyOption) *Key[V] {
	cfg := applyOptions(opts)
	policy := PolicyCopy
	if cfg.atomic {
		policy = PolicyCopyAtomic
	}

	k := &Key[V]{slot: newSlotFor[V](cfg.name, policy)}
	if pointerShaped[V]() {
		k.wrap = func(v V) any { return v.Clone() }
		k.unwrap = unwrapDirect[V]
	} else {
		k.wrap = func(v V) any { return &box[V]{v: v.Clone()} }
		k.unwrap = unwrapBox[V]
	}
	return k
}

// NewWeakKey creates a weak key for values of type *T. The table holds
// the value weakly: once it is unreachable outside the table, reads
// report absence. Storing nil reads as absent. Weak keys force pointer
// value types; there is no weak reference to a bare value.
func NewWeakKey[T any](opts ...KeyOption) *Key[*T] {
	return newWeakKey[T](PolicyWeak, applyOptions(opts))
}

// NewBorrowKey creates a borrowing key for values of type *T. Borrow
// keys behave like weak keys but declare that the association never
// owned the value: the owner keeps it alive, the table only looks on.
func NewBorrowKey[T any](opts ...KeyOption) *Key[*T] {
	return newWeakKey[T](PolicyBorrow, applyOptions(opts))
}

func newWeakKey[T any](policy Policy, cfg keyConfig) *Key[*T] {
	if cfg.atomic {
		panic(newKeyError(ErrAtomicUnsupported, cfg.name, policy))
	}

	return &Key[*T]{
		slot:   newSlotFor[*T](cfg.name, policy),
		wrap:   func(p *T) any { return weak.Make(p) },
		unwrap: unwrapWeak[T],
		alive:  func(r any) bool { return r.(weak.Pointer[T]).Value() != nil },
	}
}

func unwrapDirect[V any](r any) (V, bool) {
	return r.(V), true
}

func unwrapBox[V any](r any) (V, bool) {
	return r.(*box[V]).v, true
}

func unwrapWeak[T any](r any) (*T, bool) {
	p := r.(weak.Pointer[T]).Value()
	return p, p != nil
}

// Info reports the key's registry entry.
func (k *Key[V]) Info() KeyInfo {
	s := k.slot
	return KeyInfo{
		ID:        s.id.String(),
		Name:      s.name,
		Policy:    s.policy,
		ValueType: s.valueType,
		Schema:    s.schema,
	}
}

func (k *Key[V]) String() string {
	return fmt.Sprintf("tether.Key[%s](%s)", k.slot.valueType, k.slot.policy)
}

// checkHost panics if host is nil. Operations never accept nil hosts:
// there is no object whose lifetime the association could follow.
func checkHost[V any, H any](k *Key[V], host *H) {
	if host == nil {
		panic(newKeyError(ErrNilHost, k.slot.name, k.slot.policy))
	}
}

// Get returns the value stored under k for host. The second result is
// false when nothing is stored, the association was cleared, or a
// weakly held value has been collected. Absence is not an error.
func Get[V any, H any](k *Key[V], host *H) (V, bool) {
	checkHost(k, host)

	ref, ok := tableGet(defaultTable, host, k.slot)
	if !ok {
		var zero V
		return zero, false
	}
	return k.unwrap(ref)
}

// Set stores value under k for host, replacing any previous value. The
// previous value, if retained, is released. The association lives until
// it is overwritten, cleared, or the host is collected.
func Set[V any, H any](k *Key[V], host *H, value V) {
	checkHost(k, host)

	tableWrite(defaultTable, host, k.slot, k.wrap(value), false, nil)
	emitValueSet(context.Background(), k.slot)
}

// Clear removes the value stored under k for host. Clearing an absent
// association is a no-op.
func Clear[V any, H any](k *Key[V], host *H) {
	checkHost(k, host)

	if tableClear(defaultTable, host, k.slot) {
		emitValueCleared(context.Background(), k.slot)
	}
}

// Swap stores value under k for host and returns the value it
// replaced. The second result is false when nothing was stored, or
// when a weakly held previous value had already been collected.
func Swap[V any, H any](k *Key[V], host *H, value V) (V, bool) {
	checkHost(k, host)

	prev, had := tableWrite(defaultTable, host, k.slot, k.wrap(value), false, nil)
	emitValueSet(context.Background(), k.slot)
	if !had {
		var zero V
		return zero, false
	}
	return k.unwrap(prev)
}

// LoadOrStore returns the value stored under k for host if one is
// present, otherwise it stores value and returns that. The second
// result is true when the value was already present. A weakly held
// value that has been collected counts as absent and is replaced.
func LoadOrStore[V any, H any](k *Key[V], host *H, value V) (V, bool) {
	checkHost(k, host)

	if ref, ok := tableGet(defaultTable, host, k.slot); ok {
		if v, live := k.unwrap(ref); live {
			return v, true
		}
	}

	prev, had := tableWrite(defaultTable, host, k.slot, k.wrap(value), true, k.alive)
	if had {
		return k.unwrap(prev)
	}
	emitValueSet(context.Background(), k.slot)
	return value, false
}
