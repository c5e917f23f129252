package d2d

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// NullDevice is a gpucontext.DeviceProvider with no GPU behind it. Devices
// created with it render on the CPU in the default pixel format.
type NullDevice struct{}

// Device returns nil for the null device.
func (NullDevice) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDevice) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDevice) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDevice) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo reports a software adapter for the null device.
func (NullDevice) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "d2d null device", Type: gpucontext.AdapterTypeSoftware}
}

var _ gpucontext.DeviceProvider = NullDevice{}

// Device owns a resource domain shared by the device contexts it creates.
// Bitmaps made by one of its contexts can be drawn by all of them.
type Device struct {
	resource[native.Device]
}

func (d *Device) Clone() *Device { return &Device{resource[native.Device]{d.clone()}} }

// CreateDeviceContext creates a render target that draws into a bitmap set
// with SetTarget.
func (d *Device) CreateDeviceContext(options DeviceContextOptions) (*DeviceContext, error) {
	defer d.lock()()
	raw, st := d.raw().CreateDeviceContext(options)
	h, err := adopt("CreateDeviceContext", native.RenderTarget(raw), st)
	if err != nil {
		return nil, err
	}
	return &DeviceContext{newRenderTarget(h)}, nil
}

// ClearResources releases cached resources unused for the given time.
func (d *Device) ClearResources(millisecondsSinceUse uint32) {
	defer d.lock()()
	d.raw().ClearResources(millisecondsSinceUse)
}

func (d *Device) MaximumTextureMemory() uint64     { return get(d.handle, native.Device.GetMaximumTextureMemory) }
func (d *Device) SetMaximumTextureMemory(n uint64) { set(d.handle, native.Device.SetMaximumTextureMemory, n) }
func (d *Device) Capabilities() DeviceCapabilities { return get(d.handle, native.Device.GetCapabilities) }

// DeviceContext is a RenderTarget drawing into a settable target bitmap.
// Drawing with no target set is reported by EndDraw as StatusWrongState.
type DeviceContext struct {
	RenderTarget
}

func (dc *DeviceContext) context() native.DeviceContext {
	return dc.raw().(native.DeviceContext)
}

func (dc *DeviceContext) Clone() *DeviceContext {
	return &DeviceContext{*dc.RenderTarget.Clone()}
}

// Device returns the device that created the context. The caller must
// Release the result.
func (dc *DeviceContext) Device() *Device {
	defer dc.lock()()
	return &Device{resource[native.Device]{wrap(dc.context().GetDevice())}}
}

// SetTarget directs drawing into img. A nil img clears the target.
func (dc *DeviceContext) SetTarget(img Image) {
	defer dc.lock()()
	if isNil(img) {
		dc.context().SetTarget(nil)
		return
	}
	dc.context().SetTarget(img.nativeImage())
}

// Target returns the current target, or nil when none is set. The caller
// must Release a non-nil result.
func (dc *DeviceContext) Target() Image {
	unlock := dc.lock()
	raw := dc.context().GetTarget()
	unlock()
	if raw == nil {
		return nil
	}
	bmp, ok := raw.(native.Bitmap)
	if !ok {
		raw.Release()
		return nil
	}
	return &Bitmap{resource[native.Bitmap]{wrap(bmp)}}
}

// CreateBitmapFromSurface creates a bitmap holding a snapshot of s. Nil
// props take the pixel format from the surface.
func (dc *DeviceContext) CreateBitmapFromSurface(s Surface, props *BitmapProperties) (*Bitmap, error) {
	if s == nil {
		return nil, &StatusError{Op: "CreateBitmapFromSurface", Code: StatusInvalidArg}
	}
	defer dc.lock()()
	raw, st := dc.context().CreateBitmapFromSurface(s, props)
	h, err := adopt("CreateBitmapFromSurface", raw, st)
	if err != nil {
		return nil, err
	}
	return &Bitmap{resource[native.Bitmap]{h}}, nil
}

// DrawImage composites the src rectangle of img, or all of it when src is
// nil, at offset.
func (dc *DeviceContext) DrawImage(img Image, offset *math2d.Point2F, src *math2d.RectF, interpolation InterpolationMode, mode CompositeMode) {
	dc.state.mustDraw("DrawImage")
	var raw native.Image
	if !isNil(img) {
		raw = img.nativeImage()
	}
	defer dc.lock()()
	dc.context().DrawImage(raw, offset, src, interpolation, mode)
}
