package native

import (
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/math2d"
)

// DefaultMaximumTextureMemory is the texture budget of a new device.
const DefaultMaximumTextureMemory = 128 << 20

// device owns a resource domain shared by its device contexts. The
// software engine renders on the CPU whatever the provider is; the provider
// only selects the default pixel format.
type device struct {
	resource
	dom       *domain
	provider  gpucontext.DeviceProvider
	format    Format
	maxMemory uint64
}

func newDevice(f *factory, provider gpucontext.DeviceProvider) (*device, com.Status) {
	if provider == nil {
		return nil, com.InvalidArg
	}
	format := FormatB8G8R8A8Unorm
	if sf := provider.SurfaceFormat(); sf != gputypes.TextureFormatUndefined {
		var ok bool
		if format, ok = surfaceFormat(sf); !ok {
			return nil, com.UnsupportedPixelFormat
		}
	}
	d := &device{dom: newDomain(), provider: provider, format: format, maxMemory: DefaultMaximumTextureMemory}
	d.initResource(d, f, nil, IIDDevice)
	f.logf(DebugLevelInformation, "native: device created",
		slog.Bool("software", software(provider)),
		slog.String("adapter", provider.AdapterInfo().Name))
	return d, com.OK
}

func (d *device) CreateDeviceContext(options DeviceContextOptions) (DeviceContext, com.Status) {
	if options > DeviceContextOptionsEnableMultithreadedOptimizations {
		return nil, com.InvalidArg
	}
	return newDeviceContext(d), com.OK
}

// ClearResources does nothing; the software engine keeps no caches.
func (d *device) ClearResources(uint32) {}

func (d *device) GetMaximumTextureMemory() uint64      { return d.maxMemory }
func (d *device) SetMaximumTextureMemory(bytes uint64) { d.maxMemory = bytes }

func (d *device) GetCapabilities() DeviceCapabilities {
	return DeviceCapabilities{
		MaxTextureSize: MaximumBitmapSize,
		SurfaceFormat:  d.format,
		Software:       software(d.provider),
	}
}

// software reports whether the host's adapter is a CPU renderer or absent.
func software(p gpucontext.DeviceProvider) bool {
	return p.Device() == nil || p.AdapterInfo().Type == gpucontext.AdapterTypeSoftware
}

// deviceContext draws into the bitmap set with SetTarget.
type deviceContext struct {
	target
	device *device
	image  *bitmap
}

func newDeviceContext(d *device) *deviceContext {
	d.AddRef()
	dc := &deviceContext{device: d}
	pf := PixelFormat{Format: d.format, AlphaMode: AlphaModePremultiplied}
	dc.initTarget(dc, d.factory, d.dom, nil, pf, DefaultDpi, DefaultDpi, func() {
		dc.setImage(nil)
		d.Release()
	}, IIDDeviceContext)
	return dc
}

func (dc *deviceContext) GetDevice() Device {
	dc.device.AddRef()
	return dc.device
}

func (dc *deviceContext) setImage(bmp *bitmap) {
	if bmp != nil {
		bmp.AddRef()
	}
	if dc.image != nil {
		dc.image.Release()
	}
	dc.image = bmp
	if bmp == nil {
		dc.pixels = nil
		return
	}
	dc.pixels = bmp.img
	dc.format = bmp.format
}

// SetTarget selects the bitmap drawn into. Only bitmaps created with
// BitmapOptionsTarget in the context's domain are accepted; nil clears the
// target. Failures are reported by the next Flush or EndDraw.
func (dc *deviceContext) SetTarget(img Image) {
	const op = "SetTarget"
	if len(dc.stack) > 0 {
		dc.fail(op, com.WrongState)
		return
	}
	if img == nil {
		dc.setImage(nil)
		return
	}
	b, ok := img.(Bitmap)
	if !ok {
		dc.fail(op, com.InvalidArg)
		return
	}
	bmp, st := dc.ownBitmap(b)
	if st.Failed() {
		dc.fail(op, st)
		return
	}
	if bmp.options&BitmapOptionsTarget == 0 {
		dc.fail(op, com.InvalidArg)
		return
	}
	dc.setImage(bmp)
}

func (dc *deviceContext) GetTarget() Image {
	if dc.image == nil {
		return nil
	}
	dc.image.AddRef()
	return dc.image
}

// CreateBitmap defaults to the device's format rather than the target's.
func (dc *deviceContext) CreateBitmap(size math2d.SizeU, src []byte, pitch uint32, props BitmapProperties) (Bitmap, com.Status) {
	return result[Bitmap](newBitmap(dc.factory, dc.dom, size, src, pitch, props, dc.device.format))
}

// CreateBitmapFromSurface copies the current contents of s into a new
// bitmap.
func (dc *deviceContext) CreateBitmapFromSurface(s Surface, props *BitmapProperties) (Bitmap, com.Status) {
	if s == nil {
		return nil, com.InvalidArg
	}
	format, ok := surfaceFormat(s.Format())
	if !ok {
		return nil, com.UnsupportedPixelFormat
	}
	var bp BitmapProperties
	if props != nil {
		bp = *props
	}
	if bp.PixelFormat.Format != FormatUnknown && bp.PixelFormat.Format != format {
		return nil, com.UnsupportedPixelFormat
	}
	bp.PixelFormat.Format = format
	if st := checkPixelSize(s.Width(), s.Height()); st.Failed() {
		return nil, st
	}
	size := math2d.SizeU{Width: uint32(s.Width()), Height: uint32(s.Height())}
	return result[Bitmap](newBitmap(dc.factory, dc.dom, size, s.Pixels(), uint32(s.Stride()), bp, format))
}

func (dc *deviceContext) DrawImage(img Image, offset *math2d.Point2F, src *math2d.RectF, interp InterpolationMode, mode CompositeMode) {
	dc.drawImage(img, offset, src, interp, mode)
}

