package d2d

import (
	"reflect"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/native"
)

// handle owns one reference to an engine object.
type handle[T com.Unknown] struct {
	ptr *com.Ptr[T]
}

func (h handle[T]) raw() T { return h.ptr.Get() }

func (h handle[T]) clone() handle[T] {
	return handle[T]{ptr: h.ptr.Clone()}
}

// Release gives back the reference owned by the handle. Calling Release
// again on the same handle does nothing; other clones stay usable.
func (h handle[T]) Release() { h.ptr.Release() }

// Released reports whether Release has been called on the handle.
func (h handle[T]) Released() bool { return h.ptr.Released() }

// lock holds the lock of the object's factory while the factory is
// multi-threaded. Every engine call made through a handle runs under it.
func (h handle[T]) lock() func() { return native.Lock(h.raw()) }

// get returns fn applied to the object behind h, under the factory lock.
func get[T com.Unknown, R any](h handle[T], fn func(T) R) R {
	defer h.lock()()
	return fn(h.raw())
}

// set calls fn with v on the object behind h, under the factory lock.
func set[T com.Unknown, A any](h handle[T], fn func(T, A), v A) {
	defer h.lock()()
	fn(h.raw(), v)
}

// adopt takes ownership of a reference returned by an engine call.
func adopt[T com.Unknown](op string, raw T, st com.Status) (handle[T], error) {
	p, st := com.Adopt(raw, st)
	if err := check(op, st); err != nil {
		return handle[T]{}, err
	}
	return handle[T]{ptr: p}, nil
}

// wrap takes ownership of a reference returned by an infallible engine call.
func wrap[T com.Unknown](raw T) handle[T] {
	return handle[T]{ptr: com.FromRaw(raw)}
}

// query asks the object behind h for interface iid.
func query[U, T com.Unknown](h handle[T], iid com.IID) (handle[U], bool) {
	p, st := com.Query[U](h.ptr, iid)
	if st.Failed() {
		return handle[U]{}, false
	}
	return handle[U]{ptr: p}, true
}

// resource is a handle to an object created by a factory.
type resource[T native.Resource] struct {
	handle[T]
}

// Factory returns the factory that created the resource.
// The caller must Release the result.
func (r resource[T]) Factory() *Factory {
	return &Factory{wrap(r.raw().GetFactory())}
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
