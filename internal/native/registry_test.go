package native

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/math2d"
)

func TestSoftwareLibraryRegistered(t *testing.T) {
	if !IsRegistered(SoftwareLibrary) {
		t.Fatal("software library should be registered by default")
	}
	if !slices.Contains(Available(), SoftwareLibrary) {
		t.Errorf("Available() = %v, want it to contain %q", Available(), SoftwareLibrary)
	}
}

func TestOpenUnknownLibrary(t *testing.T) {
	_, err := Open("missing")
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("Open(missing) error = %v, want %v", err, ErrLibraryNotFound)
	}
}

func TestRegisterAndUnregister(t *testing.T) {
	loadErr := errors.New("load failed")
	Register("broken", func() (Library, error) { return nil, loadErr })
	defer Unregister("broken")

	if !IsRegistered("broken") {
		t.Fatal("IsRegistered(broken) = false after Register")
	}
	if _, err := Open("broken"); !errors.Is(err, loadErr) {
		t.Errorf("Open(broken) error = %v, want %v", err, loadErr)
	}
	Unregister("broken")
	if IsRegistered("broken") {
		t.Error("IsRegistered(broken) = true after Unregister")
	}
}

func TestCreateFactoryValidation(t *testing.T) {
	lib, err := Open(SoftwareLibrary)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		typ  FactoryType
		opts FactoryOptions
		want com.Status
	}{
		{"single threaded", FactoryTypeSingleThreaded, FactoryOptions{}, com.OK},
		{"multi threaded", FactoryTypeMultiThreaded, FactoryOptions{DebugLevel: DebugLevelInformation}, com.OK},
		{"bad type", FactoryType(7), FactoryOptions{}, com.InvalidArg},
		{"bad debug level", FactoryTypeSingleThreaded, FactoryOptions{DebugLevel: 9}, com.InvalidArg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, st := lib.CreateFactory(tt.typ, tt.opts)
			if st != tt.want {
				t.Fatalf("CreateFactory() = %v, want %v", st, tt.want)
			}
			if st.Failed() {
				if f != nil {
					t.Error("failed CreateFactory returned a factory")
				}
				return
			}
			defer f.Release()
			if f.GetType() != tt.typ {
				t.Errorf("GetType() = %v, want %v", f.GetType(), tt.typ)
			}
		})
	}
}

func TestQueryInterface(t *testing.T) {
	f := testFactory(t)
	g, st := f.CreateRectangleGeometry(math2d.Rect(0, 0, 1, 1))
	if st.Failed() {
		t.Fatal(st)
	}
	defer g.Release()

	u, st := g.QueryInterface(IIDGeometry)
	if st.Failed() {
		t.Fatalf("QueryInterface(IIDGeometry) = %v", st)
	}
	u.Release()
	if _, st := g.QueryInterface(IIDBitmap); st != com.NoInterface {
		t.Errorf("QueryInterface(IIDBitmap) = %v, want %v", st, com.NoInterface)
	}
}

func TestLiveObjectsReturnToBaseline(t *testing.T) {
	before := LiveObjects()

	lib, err := Open(SoftwareLibrary)
	if err != nil {
		t.Fatal(err)
	}
	f, _ := lib.CreateFactory(FactoryTypeSingleThreaded, FactoryOptions{})
	rt, _ := f.CreateSurfaceRenderTarget(newMemSurface(4, 4), RenderTargetProperties{})
	b, _ := rt.CreateSolidColorBrush(red, nil)
	g, _ := f.CreateEllipseGeometry(math2d.Circle(math2d.Pt(2, 2), 1))
	rt.BeginDraw()
	rt.FillGeometry(g, b, nil)
	endDraw(t, rt)

	// Objects keep their factory alive.
	f.Release()
	if got := LiveObjects() - before; got != 4 {
		t.Errorf("live objects after releasing the factory = %d, want 4", got)
	}
	b.Release()
	g.Release()
	rt.Release()
	if got := LiveObjects(); got != before {
		t.Errorf("LiveObjects() = %d, want %d", got, before)
	}
}

func TestLockFollowsFactoryType(t *testing.T) {
	lib, err := Open(SoftwareLibrary)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		typ    FactoryType
		blocks bool
	}{
		{"single-threaded", FactoryTypeSingleThreaded, false},
		{"multi-threaded", FactoryTypeMultiThreaded, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := lib.CreateFactory(tt.typ, FactoryOptions{})
			defer f.Release()
			g, _ := f.CreatePathGeometry()
			defer g.Release()
			sink, _ := g.Open()
			defer sink.Release()

			// Holding the lock through the factory excludes callers
			// locking through its resources.
			unlock := Lock(f)
			acquired := make(chan struct{})
			go func() {
				defer Lock(sink)()
				close(acquired)
			}()
			select {
			case <-acquired:
				if tt.blocks {
					t.Error("Lock(sink) acquired while the factory was locked")
				}
			case <-time.After(50 * time.Millisecond):
				if !tt.blocks {
					t.Error("Lock(sink) blocked on a single-threaded factory")
				}
			}
			unlock()
			<-acquired
		})
	}
	// Objects from outside the engine have nothing to lock.
	Lock(nil)()
}
