package tether_test

import (
	"testing"

	"github.com/zoobzio/tether"
	"github.com/zoobzio/tether/tethertest"
)

func BenchmarkSet_BoxedValue(b *testing.B) {
	k := tether.NewKey[int]()
	host := &session{id: "bench"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tether.Set(k, host, i)
	}
}

func BenchmarkGet_BoxedValue(b *testing.B) {
	k := tether.NewKey[int]()
	host := &session{id: "bench"}
	tether.Set(k, host, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tether.Get(k, host)
	}
}

func BenchmarkSet_Pointer(b *testing.B) {
	k := tether.NewKey[*tethertest.Note]()
	host := &session{id: "bench"}
	v := &tethertest.Note{Text: "payload"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tether.Set(k, host, v)
	}
}

func BenchmarkGet_Pointer(b *testing.B) {
	k := tether.NewKey[*tethertest.Note]()
	host := &session{id: "bench"}
	tether.Set(k, host, &tethertest.Note{Text: "payload"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tether.Get(k, host)
	}
}

func BenchmarkSet_Copy(b *testing.B) {
	k := tether.NewCopyKey[tethertest.Profile]()
	host := &session{id: "bench"}
	p := tethertest.Profile{
		Name:   "alice",
		Labels: []string{"admin", "ops"},
		Attrs:  map[string]string{"team": "core"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tether.Set(k, host, p)
	}
}

func BenchmarkGet_Atomic_Parallel(b *testing.B) {
	k := tether.NewKey[int](tether.WithAtomic())
	host := &session{id: "bench"}
	tether.Set(k, host, 42)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = tether.Get(k, host)
		}
	})
}

func BenchmarkSwap_Atomic(b *testing.B) {
	k := tether.NewKey[int](tether.WithAtomic())
	host := &session{id: "bench"}
	tether.Set(k, host, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tether.Swap(k, host, i)
	}
}
