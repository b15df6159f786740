package tether

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for association events.
var (
	SignalKeyCreated   = capitan.NewSignal("tether.key.created", "Key registered")
	SignalValueSet     = capitan.NewSignal("tether.value.set", "Association written")
	SignalValueCleared = capitan.NewSignal("tether.value.cleared", "Association removed")
	SignalHostPurged   = capitan.NewSignal("tether.host.purged", "Host collected, associations dropped")
)

// Keys for typed event data.
var (
	KeyKeyID        = capitan.NewStringKey("key_id")
	KeyKeyName      = capitan.NewStringKey("key_name")
	KeyPolicy       = capitan.NewStringKey("policy")
	KeyValueType    = capitan.NewStringKey("value_type")
	KeyClearedCount = capitan.NewIntKey("cleared_count")
)

// emitKeyCreated emits an event when a key is registered.
func emitKeyCreated(s *slot) {
	capitan.Emit(context.Background(), SignalKeyCreated,
		KeyKeyID.Field(s.id.String()),
		KeyKeyName.Field(s.name),
		KeyPolicy.Field(string(s.policy)),
		KeyValueType.Field(s.valueType),
	)
}

// emitValueSet emits an event when an association is written.
func emitValueSet(ctx context.Context, s *slot) {
	capitan.Emit(ctx, SignalValueSet,
		KeyKeyName.Field(s.name),
		KeyPolicy.Field(string(s.policy)),
		KeyValueType.Field(s.valueType),
	)
}

// emitValueCleared emits an event when an association is removed.
func emitValueCleared(ctx context.Context, s *slot) {
	capitan.Emit(ctx, SignalValueCleared,
		KeyKeyName.Field(s.name),
		KeyPolicy.Field(string(s.policy)),
	)
}

// emitHostPurged emits an event when a collected host's associations
// are dropped. Runs on the cleanup goroutine, after the host is gone.
func emitHostPurged(cleared int) {
	capitan.Emit(context.Background(), SignalHostPurged,
		KeyClearedCount.Field(cleared),
	)
}
