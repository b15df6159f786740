// Package tether provides type-safe associated values keyed to host objects.
//
// The package offers generic Keys for attaching typed values to any
// heap-allocated object at runtime, without modifying the host's type.
// Associations live exactly as long as the host: when the host becomes
// unreachable, its associated values are released automatically.
//
// # Keys
//
// A Key[V] declares a distinct association slot with a fixed value type
// and a fixed retention policy. Keys are created once, typically at
// package level, and compared by identity:
//
//	var colorKey = tether.NewKey[string](tether.WithName("color"))
//	var countKey = tether.NewKey[int]()
//
// Two keys never collide, even when they share a value type or a name.
// The value type is carried by the type parameter, so reads and writes
// are checked at compile time and no caller ever casts.
//
// # Policies
//
// Each constructor fixes how stored values are retained:
//
//   - NewKey: retain. The table holds the value strongly until it is
//     overwritten, cleared, or the host is collected.
//   - NewCopyKey: copy. The value is cloned on every write and every
//     read observes the stored clone. Requires Cloner[V].
//   - NewWeakKey: weak. The table holds the value weakly; once the
//     value becomes unreachable elsewhere, reads report absence.
//   - NewBorrowKey: borrow. Like weak, but declares that the table
//     never owned the value at all.
//
// Retain and copy keys accept the Atomic option, which makes reads and
// writes of that key lock-free with respect to each other. Weak and
// borrow keys do not retain, so atomicity does not apply to them.
//
// # Basic Usage
//
//	type Session struct{ ID string }
//
//	var tagKey = tether.NewKey[string](tether.WithName("tag"))
//
//	s := &Session{ID: "abc"}
//
//	tether.Set(tagKey, s, "primary")
//	tag, ok := tether.Get(tagKey, s) // "primary", true
//
//	tether.Clear(tagKey, s)
//	_, ok = tether.Get(tagKey, s) // false
//
// Absence is not an error: Get reports it through its second result,
// and Clear on an absent association is a no-op.
//
// # Host Identity
//
// Hosts are identified by object, not by address bits or by value.
// Distinct hosts never share associations, and a freshly allocated
// object never observes values left behind by a previous occupant of
// its address. Hosts must be pointers to live, non-zero-size,
// heap-allocated objects; pointers to package-level variables are not
// supported. Passing a nil host panics.
//
// # Concurrency
//
// All operations are safe for concurrent use. Keys created with Atomic
// guarantee that a read never blocks behind a writer of the same
// association; non-atomic keys serialize access per host shard. A
// retained value that points back to its own host keeps that host
// alive, exactly like any other cycle through a live root.
//
// # Diagnostics
//
// Keys registers every key ever created, with its name, policy, value
// type, and, for struct value types, a field schema. Operations emit
// capitan signals (key creation, writes, clears, host purges) that
// deployments can observe without changing call sites.
package tether
