package main

import (
	"bytes"
	"image/png"
	"os"
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/pkg/errors"

	"github.com/chwjbn/gl2-demo/gconfig"
	"github.com/chwjbn/gl2-demo/glib"
	"github.com/chwjbn/gl2-demo/glog"
	"github.com/chwjbn/gl2-demo/render"
	"github.com/chwjbn/gl2-demo/render/gles/gogl"
)

func init() {
	// GL calls must stay on the thread that owns the context
	runtime.LockOSThread()
}

func main() {

	flags := gconfig.NewFlagSet(glib.AppFileName())
	if xErr := flags.Parse(os.Args[1:]); xErr != nil {
		glog.StdError(xErr.Error())
		os.Exit(2)
	}

	xConfig, xErr := gconfig.Load(flags)
	if xErr != nil {
		glog.StdError(xErr.Error())
		os.Exit(2)
	}

	xErr = glog.Setup(glog.Options{
		Mode:   xConfig.Log.Mode,
		Dir:    xConfig.Log.Dir,
		MaxAge: xConfig.Log.MaxAge,
	})
	if xErr != nil {
		glog.StdError(xErr.Error())
	}
	defer glog.Sync()

	glog.Info("app begin")
	glog.InfoF("app %s config=[%s]", glib.OsBanner(), glib.JsonFromStruct(xConfig))

	xErr = run(xConfig)
	if xErr != nil {
		glog.Error(xErr.Error())
		glog.Sync()
		os.Exit(1)
	}

	glog.Info("app end")
}

func run(cfg *gconfig.AppConfig) error {

	var xErr error

	xErr = glfw.Init()
	if xErr != nil {
		return errors.Wrap(xErr, "glfw.Init")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.DepthBits, 16)

	xWindow, xErr := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if xErr != nil {
		return errors.Wrap(xErr, "glfw.CreateWindow")
	}
	defer xWindow.Destroy()

	xWindow.MakeContextCurrent()
	glfw.SwapInterval(cfg.Window.SwapInterval)

	xErr = gl.Init()
	if xErr != nil {
		return errors.Wrap(xErr, "gl.Init")
	}

	xSources := render.LoadEffectSources(cfg.Render.EffectDir, cfg.Render.Effect)
	xRenderer := render.NewFrameRenderer(gogl.New(), render.WithShaderSources(xSources))

	// the framebuffer can be larger than the window on HiDPI screens
	fbWidth, fbHeight := xWindow.GetFramebufferSize()

	xErr = xRenderer.Initialize(fbWidth, fbHeight)
	if xErr != nil {
		return errors.Wrap(xErr, "renderer initialize")
	}
	defer xRenderer.Release()

	xWindow.SetFramebufferSizeCallback(func(w *glfw.Window, width int, height int) {
		xRenderer.Resize(width, height)
	})

	xFrames := 0
	xBackBufferFresh := false
	for !xWindow.ShouldClose() {

		xErr = drawFrame(xRenderer)
		if xErr != nil {
			return xErr
		}
		xFrames++

		if cfg.Render.MaxFrames > 0 && xFrames >= cfg.Render.MaxFrames {
			xBackBufferFresh = true
			break
		}

		xWindow.SwapBuffers()
		glfw.PollEvents()
	}

	glog.InfoF("rendered %d frames", xFrames)

	if len(cfg.Capture.Path) > 0 {
		if !xBackBufferFresh {
			xErr = drawFrame(xRenderer)
			if xErr != nil {
				return xErr
			}
		}
		xErr = saveSnapshot(xRenderer, cfg.Capture.Path)
		if xErr != nil {
			return xErr
		}
		glog.InfoF("snapshot written to %s", cfg.Capture.Path)
	}

	return nil
}

// saveSnapshot must run before the back buffer is swapped.
func saveSnapshot(r *render.FrameRenderer, path string) error {

	xImg, xErr := r.Snapshot()
	if xErr != nil {
		return errors.Wrap(xErr, "snapshot")
	}

	var xBuf bytes.Buffer
	xErr = png.Encode(&xBuf, xImg)
	if xErr != nil {
		return errors.Wrap(xErr, "png encode")
	}

	xErr = glib.FileWriteAll(path, xBuf.Bytes())
	if xErr != nil {
		return errors.Wrap(xErr, "write snapshot")
	}

	return nil
}

type frameDrawer interface {
	RenderFrame() error
}

// drawFrame renders one frame. Any failure, ErrNotReady included, ends the
// render loop.
func drawFrame(drawer frameDrawer) error {
	if xErr := drawer.RenderFrame(); xErr != nil {
		return errors.Wrap(xErr, "render frame")
	}
	return nil
}
