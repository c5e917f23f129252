package native

import (
	"slices"
	"sync/atomic"

	"github.com/gogpu/d2d/internal/com"
)

var liveObjects atomic.Int64

// LiveObjects returns the number of engine objects that have been created
// and not yet destroyed.
func LiveObjects() int64 {
	return liveObjects.Load()
}

// object is the reference-counted base of every engine object.
type object struct {
	com.RefCount
	self com.Unknown
	iids []com.IID
}

// init gives the object its first reference. self is the outer object
// returned from QueryInterface; destroy runs when the last reference goes.
func (o *object) init(self com.Unknown, destroy func(), iids ...com.IID) {
	o.self = self
	o.iids = iids
	liveObjects.Add(1)
	o.RefCount.Init(func() {
		if destroy != nil {
			destroy()
		}
		liveObjects.Add(-1)
	})
}

func (o *object) QueryInterface(iid com.IID) (com.Unknown, com.Status) {
	if iid != com.IIDUnknown && !slices.Contains(o.iids, iid) {
		return nil, com.NoInterface
	}
	o.AddRef()
	return o.self, com.OK
}

// result converts a constructor's concrete result to the interface I so a
// failure yields a nil interface rather than a typed nil.
func result[I any, T com.Unknown](obj T, st com.Status) (I, com.Status) {
	var zero I
	if st.Failed() {
		return zero, st
	}
	return any(obj).(I), st
}

// resource is an object that keeps its factory alive.
type resource struct {
	object
	factory *factory
}

func (r *resource) initResource(self com.Unknown, f *factory, destroy func(), iids ...com.IID) {
	f.AddRef()
	r.factory = f
	r.init(self, func() {
		if destroy != nil {
			destroy()
		}
		f.Release()
	}, append(iids, IIDResource)...)
}

func (r *resource) lock() func() { return r.factory.lock() }

func (r *resource) GetFactory() Factory {
	r.factory.AddRef()
	return r.factory
}

// domain identifies the objects that may be used together for drawing.
// Every top-level render target and every device starts its own domain.
type domain struct {
	id uint64
}

var domainIDs atomic.Uint64

func newDomain() *domain {
	return &domain{id: domainIDs.Add(1)}
}

// serialized is implemented by the factory and every resource.
type serialized interface {
	lock() func()
}

// Lock acquires the lock of the factory that owns u when that factory is
// multi-threaded and returns the function releasing it. For other objects
// it does nothing.
//
// The engine does not lock on its own: callers hold Lock around every
// call on a factory, its resources and their geometry sinks. The lock is
// not reentrant. AddRef and Release need no lock.
func Lock(u com.Unknown) func() {
	if s, ok := u.(serialized); ok {
		return s.lock()
	}
	return func() {}
}
