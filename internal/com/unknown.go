package com

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// IID identifies an interface implemented by an engine object.
type IID = uuid.UUID

// IIDUnknown is implemented by every object.
var IIDUnknown = uuid.MustParse("00000000-0000-0000-c000-000000000046")

// Unknown is the base interface of every reference-counted object.
//
// AddRef and Release return the new reference count. QueryInterface
// returns an object implementing the requested interface with one extra
// reference held by the caller, or NoInterface.
type Unknown interface {
	AddRef() uint32
	Release() uint32
	QueryInterface(iid IID) (Unknown, Status)
}

// RefCount is an embeddable reference counter.
// The zero value has no references; call Init before handing the object out.
type RefCount struct {
	n       atomic.Int32
	destroy func()
}

// Init sets the count to one and registers the function run when the last
// reference is released.
func (r *RefCount) Init(destroy func()) {
	r.destroy = destroy
	r.n.Store(1)
}

// AddRef increments the reference count.
func (r *RefCount) AddRef() uint32 {
	n := r.n.Add(1)
	if n <= 1 {
		panic("com: AddRef on destroyed object")
	}
	return uint32(n)
}

// Release decrements the reference count and destroys the object when it
// reaches zero.
func (r *RefCount) Release() uint32 {
	n := r.n.Add(-1)
	switch {
	case n == 0:
		if r.destroy != nil {
			r.destroy()
		}
	case n < 0:
		panic("com: Release on destroyed object")
	}
	return uint32(n)
}

// Count returns the current reference count. It is meant for tests and
// diagnostics only.
func (r *RefCount) Count() int32 {
	return r.n.Load()
}
