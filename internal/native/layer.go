package native

import (
	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/math2d"
)

// layer is the backing store token for PushLayer. A layer may be pushed at
// most once at a time.
type layer struct {
	resource
	dom   *domain
	size  math2d.SizeF
	inUse bool
}

func newLayer(f *factory, dom *domain, size *math2d.SizeF) (*layer, com.Status) {
	l := &layer{dom: dom}
	if size != nil {
		if !validFloat(size.Width) || !validFloat(size.Height) || size.Width < 0 || size.Height < 0 {
			return nil, com.InvalidArg
		}
		l.size = *size
	}
	l.initResource(l, f, nil, IIDLayer)
	return l, com.OK
}

func (l *layer) GetSize() math2d.SizeF { return l.size }
