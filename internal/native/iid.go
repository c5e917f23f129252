package native

import "github.com/google/uuid"

// Interface identifiers.
var (
	IIDResource                 = uuid.MustParse("2cd90691-12e2-11dc-9fed-001143a055f9")
	IIDFactory                  = uuid.MustParse("06152247-6f50-465a-9245-118bfd3b6007")
	IIDGeometry                 = uuid.MustParse("2cd906a1-12e2-11dc-9fed-001143a055f9")
	IIDRectangleGeometry        = uuid.MustParse("2cd906a2-12e2-11dc-9fed-001143a055f9")
	IIDRoundedRectangleGeometry = uuid.MustParse("2cd906a3-12e2-11dc-9fed-001143a055f9")
	IIDEllipseGeometry          = uuid.MustParse("2cd906a4-12e2-11dc-9fed-001143a055f9")
	IIDGeometryGroup            = uuid.MustParse("2cd906a6-12e2-11dc-9fed-001143a055f9")
	IIDTransformedGeometry      = uuid.MustParse("2cd906bb-12e2-11dc-9fed-001143a055f9")
	IIDPathGeometry             = uuid.MustParse("2cd906a5-12e2-11dc-9fed-001143a055f9")
	IIDSimplifiedGeometrySink   = uuid.MustParse("2cd9069e-12e2-11dc-9fed-001143a055f9")
	IIDGeometrySink             = uuid.MustParse("2cd9069f-12e2-11dc-9fed-001143a055f9")
	IIDStrokeStyle              = uuid.MustParse("2cd9069d-12e2-11dc-9fed-001143a055f9")
	IIDBrush                    = uuid.MustParse("2cd906a8-12e2-11dc-9fed-001143a055f9")
	IIDSolidColorBrush          = uuid.MustParse("2cd906a9-12e2-11dc-9fed-001143a055f9")
	IIDGradientStopCollection   = uuid.MustParse("2cd906a7-12e2-11dc-9fed-001143a055f9")
	IIDLinearGradientBrush      = uuid.MustParse("2cd906ab-12e2-11dc-9fed-001143a055f9")
	IIDRadialGradientBrush      = uuid.MustParse("2cd906ac-12e2-11dc-9fed-001143a055f9")
	IIDBitmapBrush              = uuid.MustParse("2cd906aa-12e2-11dc-9fed-001143a055f9")
	IIDImage                    = uuid.MustParse("65019f75-8da2-497c-b32c-dfa34e48ede6")
	IIDBitmap                   = uuid.MustParse("a2296057-ea42-4099-983b-539fb6505426")
	IIDLayer                    = uuid.MustParse("2cd9069b-12e2-11dc-9fed-001143a055f9")
	IIDTextFormat               = uuid.MustParse("9c906818-31d7-4fd3-a151-7c5e225db55a")
	IIDRenderTarget             = uuid.MustParse("2cd90694-12e2-11dc-9fed-001143a055f9")
	IIDBitmapRenderTarget       = uuid.MustParse("2cd90695-12e2-11dc-9fed-001143a055f9")
	IIDWindowRenderTarget       = uuid.MustParse("2cd90698-12e2-11dc-9fed-001143a055f9")
	IIDDevice                   = uuid.MustParse("47dd575d-ac05-4cdd-8049-9b02cd16f44c")
	IIDDeviceContext            = uuid.MustParse("e8f7fe7a-191c-466d-ad95-975678bda998")
)
