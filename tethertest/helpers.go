// Package tethertest provides test utilities for tether.
//
// Association lifetimes follow garbage collection, so tests need two
// things ordinary assertions cannot give: proof that a value has been
// released, and a way to wait for the collector without sleeping blind.
// Witness covers the first, Settle the second.
package tethertest

import (
	"runtime"
	"time"
	"weak"
)

// Witness observes an object's liveness without keeping it alive.
// Create one, drop every strong reference to the object, then use
// Settle to wait for Alive to turn false.
type Witness[T any] struct {
	wk weak.Pointer[T]
}

// NewWitness starts observing p.
func NewWitness[T any](p *T) *Witness[T] {
	return &Witness[T]{wk: weak.Make(p)}
}

// Alive reports whether the observed object is still reachable.
func (w *Witness[T]) Alive() bool {
	return w.wk.Value() != nil
}

// Settle runs the garbage collector until cond holds or the timeout
// expires, and reports whether cond held. Cleanups run asynchronously
// after collection, so a single GC cycle is not enough; Settle keeps
// collecting and polling.
func Settle(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		runtime.GC()
		if cond() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}

// Note is a test type with value semantics and a trivial clone.
type Note struct {
	Text string
}

// Clone implements Cloner[Note].
func (n Note) Clone() Note { return n }

// Profile is a test type with reference fields and a deep clone.
type Profile struct {
	Name   string
	Labels []string
	Attrs  map[string]string
}

// Clone implements Cloner[Profile].
func (p Profile) Clone() Profile {
	labels := make([]string, len(p.Labels))
	copy(labels, p.Labels)

	attrs := make(map[string]string, len(p.Attrs))
	for k, v := range p.Attrs {
		attrs[k] = v
	}

	return Profile{
		Name:   p.Name,
		Labels: labels,
		Attrs:  attrs,
	}
}
