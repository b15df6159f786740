package tether

import (
	"context"
	"testing"
)

func testSlot() *slot {
	return &slot{name: "signal-test", policy: PolicyRetain, valueType: "int"}
}

func TestEmitKeyCreated(_ *testing.T) {
	// Should not panic
	emitKeyCreated(testSlot())
}

func TestEmitValueSet(_ *testing.T) {
	emitValueSet(context.Background(), testSlot())
}

func TestEmitValueCleared(_ *testing.T) {
	emitValueCleared(context.Background(), testSlot())
}

func TestEmitHostPurged(_ *testing.T) {
	emitHostPurged(3)
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalKeyCreated", SignalKeyCreated},
		{"SignalValueSet", SignalValueSet},
		{"SignalValueCleared", SignalValueCleared},
		{"SignalHostPurged", SignalHostPurged},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	// Verify keys are properly initialized
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyKeyID", KeyKeyID},
		{"KeyKeyName", KeyKeyName},
		{"KeyPolicy", KeyPolicy},
		{"KeyValueType", KeyValueType},
		{"KeyClearedCount", KeyClearedCount},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
