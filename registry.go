package tether

import (
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// slot is the registry entry behind a Key. The side table stores
// associations under the slot, not under the generic Key wrapper, so
// every instantiation of a key shares one identity.
//
// Slots are pinned by the registry for the life of the process. A
// collected slot would let a later allocation impersonate an old key
// and surface its leftover associations, so reclamation is never
// allowed, even for keys no code references anymore.
type slot struct {
	id        uuid.UUID
	name      string
	policy    Policy
	valueType string
	schema    map[string]string
}

var (
	slotsMu sync.RWMutex
	slots   []*slot
)

// newSlot creates, pins, and registers a slot.
func newSlot(name string, policy Policy, valueType string, schema map[string]string) *slot {
	s := &slot{
		id:        uuid.New(),
		name:      name,
		policy:    policy,
		valueType: valueType,
		schema:    schema,
	}
	if s.name == "" {
		s.name = s.id.String()
	}

	// Tripwire: the registry holds s forever, so this cleanup must
	// never run. If it does, slot pinning is broken and association
	// state can no longer be trusted; crash instead of continuing.
	runtime.AddCleanup(s, func(name string) {
		panic(newKeyError(ErrSlotReclaimed, name, ""))
	}, s.name)

	slotsMu.Lock()
	slots = append(slots, s)
	slotsMu.Unlock()

	emitKeyCreated(s)
	return s
}

// newSlotFor registers a slot for value type V.
func newSlotFor[V any](name string, policy Policy) *slot {
	valueType, schema := describeValue[V]()
	return newSlot(name, policy, valueType, schema)
}

// KeyInfo describes a registered key.
type KeyInfo struct {
	ID        string            // Unique key identifier
	Name      string            // Diagnostic name (defaults to ID)
	Policy    Policy            // Retention policy
	ValueType string            // Value type, as reflect reports it
	Schema    map[string]string // Field name → type for struct values, nil otherwise
}

// Keys returns a snapshot of every key created since process start, in
// creation order. Keys are never unregistered, so the snapshot only
// grows. Callers must not modify the Schema maps.
func Keys() []KeyInfo {
	slotsMu.RLock()
	defer slotsMu.RUnlock()

	infos := make([]KeyInfo, len(slots))
	for i, s := range slots {
		infos[i] = KeyInfo{
			ID:        s.id.String(),
			Name:      s.name,
			Policy:    s.policy,
			ValueType: s.valueType,
			Schema:    s.schema,
		}
	}
	return infos
}
