package com

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
)

// Ptr owns one reference to an engine object.
//
// A Ptr is created with FromRaw (which adopts a reference the caller already
// holds) or Clone (which takes a new one). Release gives the reference back;
// calling it again on the same Ptr does nothing. A Ptr that becomes
// unreachable without Release is released by a cleanup and reported as a
// leak through the package logger.
type Ptr[T Unknown] struct {
	raw      T
	released atomic.Bool
	cleanup  runtime.Cleanup
}

// FromRaw adopts a reference to raw. raw must not be nil.
func FromRaw[T Unknown](raw T) *Ptr[T] {
	if any(raw) == nil {
		panic("com: FromRaw with nil object")
	}
	p := &Ptr[T]{raw: raw}
	p.cleanup = runtime.AddCleanup(p, releaseLeaked, Unknown(raw))
	return p
}

func releaseLeaked(u Unknown) {
	Logger().Warn("com: object garbage collected without Release",
		slog.String("type", fmt.Sprintf("%T", u)))
	u.Release()
}

// Get returns the underlying object without changing its reference count.
// It panics if p has been released.
func (p *Ptr[T]) Get() T {
	if p.released.Load() {
		panic("com: use of released object")
	}
	return p.raw
}

// Clone returns a new Ptr owning an additional reference to the same object.
func (p *Ptr[T]) Clone() *Ptr[T] {
	raw := p.Get()
	raw.AddRef()
	return FromRaw(raw)
}

// Release gives back the reference owned by p. Subsequent calls are no-ops,
// including calls racing with the first one.
func (p *Ptr[T]) Release() {
	if !p.released.CompareAndSwap(false, true) {
		return
	}
	p.cleanup.Stop()
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("com: release", slog.String("type", fmt.Sprintf("%T", p.raw)))
	}
	p.raw.Release()
}

// Released reports whether Release has been called on p.
func (p *Ptr[T]) Released() bool {
	return p.released.Load()
}

// Query asks the object owned by p for interface iid and returns a new Ptr
// owning the resulting reference. The object must implement U; otherwise
// NoInterface is returned.
func Query[U, T Unknown](p *Ptr[T], iid IID) (*Ptr[U], Status) {
	obj, st := p.Get().QueryInterface(iid)
	if st.Failed() {
		return nil, st
	}
	u, ok := obj.(U)
	if !ok {
		obj.Release()
		return nil, NoInterface
	}
	return FromRaw(u), OK
}

// Adopt wraps a reference returned together with a status. On failure no
// reference is adopted and nil is returned.
func Adopt[T Unknown](raw T, st Status) (*Ptr[T], Status) {
	if st.Failed() {
		return nil, st
	}
	return FromRaw(raw), st
}
