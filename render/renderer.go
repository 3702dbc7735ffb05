package render

import (
	"github.com/pkg/errors"

	"github.com/chwjbn/gl2-demo/glog"
	"github.com/chwjbn/gl2-demo/render/gles"
)

type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

var (
	ErrNotReady           = errors.New("renderer is not initialized")
	ErrAlreadyInitialized = errors.New("renderer is already initialized")
	ErrCreateBuffer       = errors.New("glGenBuffers returned 0")
)

const cameraDistance = -15.5

type Option func(*FrameRenderer)

// WithErrorHook replaces the hook that receives GL error codes after each
// call. A nil hook discards them.
func WithErrorHook(hook gles.ErrorHook) Option {
	return func(r *FrameRenderer) {
		r.mErrorHook = hook
	}
}

func WithShaderSources(sources ShaderSources) Option {
	return func(r *FrameRenderer) {
		r.mSources = sources
	}
}

// FrameRenderer holds everything that lives across frames. It must only be
// used from the thread that owns the GL context.
type FrameRenderer struct {
	mGL        gles.Context
	mErrorHook gles.ErrorHook
	mSources   ShaderSources

	mState        State
	mProgram      *gles.GlProgram
	mPositionLoc  int32
	mMvpLoc       int32
	mVertexBuffer uint32
	mWidth        int
	mHeight       int

	mAnim           Animation
	mMvp            Mat4
	mNotReadyLogged bool
}

func NewFrameRenderer(glCtx gles.Context, opts ...Option) *FrameRenderer {

	pThis := new(FrameRenderer)
	pThis.mGL = glCtx
	pThis.mErrorHook = gles.LogErrorHook
	pThis.mSources = DefaultShaderSources()
	pThis.mPositionLoc = -1
	pThis.mMvpLoc = -1
	pThis.mMvp = Identity()

	for _, opt := range opts {
		opt(pThis)
	}

	return pThis
}

func (r *FrameRenderer) checkError(op string) {
	gles.CheckError(r.mGL, op, r.mErrorHook)
}

func (r *FrameRenderer) printGLString(name string, s uint32) {
	glog.InfoF("GL %s = %s", name, r.mGL.GetString(s))
}

// Initialize builds the program, resolves the attribute and uniform
// locations, uploads the shape and sets the viewport. On error the renderer
// stays uninitialized and holds no GL objects.
func (r *FrameRenderer) Initialize(width int, height int) error {

	if r.mState == StateReady {
		return ErrAlreadyInitialized
	}

	if width < 0 || height < 0 {
		return errors.Errorf("invalid viewport size %dx%d", width, height)
	}

	r.printGLString("Version", gles.VERSION)
	r.printGLString("Vendor", gles.VENDOR)
	r.printGLString("Renderer", gles.RENDERER)
	r.printGLString("Extensions", gles.EXTENSIONS)

	glog.InfoF("setupGraphics(%d, %d)", width, height)

	prog, xErr := gles.NewProgramBuilder(r.mGL, r.mErrorHook).CreateProgram(r.mSources.Vertex, r.mSources.Fragment)
	if xErr != nil {
		glog.Error("Could not create program.")
		return errors.Wrap(xErr, "create program")
	}

	r.mPositionLoc = prog.GetAttribLocation(positionAttrib)
	r.checkError("glGetAttribLocation")
	glog.InfoF("glGetAttribLocation(\"%s\") = %d", positionAttrib, r.mPositionLoc)

	r.mMvpLoc = prog.GetUniformLocation(mvpUniform)
	r.checkError("glGetUniformLocation")
	if r.mMvpLoc < 0 {
		glog.WarnF("glGetUniformLocation(\"%s\") = %d, transform will not be applied", mvpUniform, r.mMvpLoc)
	}

	r.mVertexBuffer = r.mGL.CreateBuffer()
	if r.mVertexBuffer == 0 {
		glog.Error("Could not create vertex buffer.")
		prog.Delete()
		r.mPositionLoc = -1
		r.mMvpLoc = -1
		return ErrCreateBuffer
	}
	r.mGL.BindBuffer(gles.ARRAY_BUFFER, r.mVertexBuffer)
	r.mGL.BufferData(gles.ARRAY_BUFFER, shapeVertices[:], gles.STATIC_DRAW)
	r.checkError("glBufferData")

	r.mWidth = width
	r.mHeight = height
	r.mGL.Viewport(0, 0, int32(width), int32(height))
	r.checkError("glViewport")

	r.mProgram = prog
	r.mState = StateReady
	r.mNotReadyLogged = false

	return nil
}

// RenderFrame advances the animation by one step and draws it. Before a
// successful Initialize it issues no GL calls, leaves the animation alone and
// returns ErrNotReady.
func (r *FrameRenderer) RenderFrame() error {

	if r.mState != StateReady {
		if !r.mNotReadyLogged {
			glog.Error("renderFrame skipped: renderer is not initialized")
			r.mNotReadyLogged = true
		}
		return ErrNotReady
	}

	r.mAnim.Step()

	modelMat := r.mAnim.Rotation()
	projMat := Projection()
	cameraMat := Shift(0, 0, cameraDistance)

	modelCam := cameraMat.Mul(modelMat)
	r.mMvp = projMat.Mul(modelCam)

	grey := r.mAnim.Grey
	r.mGL.ClearColor(grey, grey, grey, 1.0)
	r.checkError("glClearColor")
	r.mGL.Clear(gles.DEPTH_BUFFER_BIT | gles.COLOR_BUFFER_BIT)
	r.checkError("glClear")

	r.mProgram.Use()
	r.checkError("glUseProgram")

	r.mGL.BindBuffer(gles.ARRAY_BUFFER, r.mVertexBuffer)

	// -1 means the attribute was optimised out; there is nothing to feed
	if r.mPositionLoc >= 0 {
		r.mGL.VertexAttribPointer(r.mPositionLoc, coordsPerVertex, gles.FLOAT, false, 0, 0)
		r.checkError("glVertexAttribPointer")
		r.mGL.EnableVertexAttribArray(r.mPositionLoc)
		r.checkError("glEnableVertexAttribArray")
	}

	// GL ignores location -1
	r.mGL.UniformMatrix4fv(r.mMvpLoc, r.mMvp[:])
	r.checkError("glUniformMatrix4fv")

	for _, drawRange := range shapeRanges {
		r.mGL.DrawArrays(shapeDrawMode, drawRange.First, drawRange.Count)
	}
	r.checkError("glDrawArrays")

	return nil
}

// Resize moves the viewport to the new framebuffer size.
func (r *FrameRenderer) Resize(width int, height int) {

	if width < 0 || height < 0 {
		return
	}

	r.mWidth = width
	r.mHeight = height

	if r.mState != StateReady {
		return
	}

	r.mGL.Viewport(0, 0, int32(width), int32(height))
	r.checkError("glViewport")
}

// Release deletes the GL objects owned by the renderer. It is meant for host
// teardown while the context is still current.
func (r *FrameRenderer) Release() {

	if r.mState != StateReady {
		return
	}

	r.mProgram.Delete()
	r.mProgram = nil

	if r.mVertexBuffer != 0 {
		r.mGL.DeleteBuffer(r.mVertexBuffer)
		r.mVertexBuffer = 0
	}

	r.mPositionLoc = -1
	r.mMvpLoc = -1
	r.mState = StateUninitialized
}

func (r *FrameRenderer) State() State {
	return r.mState
}

func (r *FrameRenderer) Animation() Animation {
	return r.mAnim
}

// MVP is the matrix uploaded by the last RenderFrame.
func (r *FrameRenderer) MVP() Mat4 {
	return r.mMvp
}

func (r *FrameRenderer) Program() *gles.GlProgram {
	return r.mProgram
}

func (r *FrameRenderer) PositionLocation() int32 {
	return r.mPositionLoc
}

func (r *FrameRenderer) MvpLocation() int32 {
	return r.mMvpLoc
}

func (r *FrameRenderer) Size() (int, int) {
	return r.mWidth, r.mHeight
}
