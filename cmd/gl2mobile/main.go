//go:build darwin || linux || windows

// gl2mobile hosts the renderer in a gomobile app:
//
//	gomobile build -target=android ./cmd/gl2mobile
package main

import (
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/gl"

	"github.com/chwjbn/gl2-demo/glib"
	"github.com/chwjbn/gl2-demo/glog"
	"github.com/chwjbn/gl2-demo/render"
	"github.com/chwjbn/gl2-demo/render/gles/mobilegl"
)

type host struct {
	mRenderer   *render.FrameRenderer
	mSize       size.Event
	mInitFailed bool
}

func (h *host) onStart(glCtx gl.Context) {
	h.mRenderer = render.NewFrameRenderer(mobilegl.New(glCtx))
	h.mInitFailed = false
}

func (h *host) onStop() {
	if h.mRenderer != nil {
		h.mRenderer.Release()
	}
	h.mRenderer = nil
}

func (h *host) onSize(e size.Event) {
	h.mSize = e
	if h.mRenderer != nil {
		h.mRenderer.Resize(e.WidthPx, e.HeightPx)
	}
}

// onPaint reports whether a frame was drawn.
func (h *host) onPaint() bool {

	if h.mRenderer == nil || h.mInitFailed {
		return false
	}

	if h.mRenderer.State() != render.StateReady {
		xErr := h.mRenderer.Initialize(h.mSize.WidthPx, h.mSize.HeightPx)
		if xErr != nil {
			glog.ErrorF("renderer initialize error:[%v]", xErr.Error())
			h.mInitFailed = true
			return false
		}
	}

	return h.mRenderer.RenderFrame() == nil
}

func main() {

	glog.InfoF("app begin %s", glib.OsBanner())

	app.Main(func(a app.App) {

		xHost := new(host)

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glCtx, ok := e.DrawContext.(gl.Context)
					if !ok {
						glog.Error("draw context is not a gl.Context")
						continue
					}
					xHost.onStart(glCtx)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					xHost.onStop()
				}
			case size.Event:
				xHost.onSize(e)
			case paint.Event:
				if e.External {
					continue
				}
				if xHost.onPaint() {
					a.Publish()
					// one step per refresh
					a.Send(paint.Event{})
				}
			}
		}
	})

	glog.Info("app end")
}
