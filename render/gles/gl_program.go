package gles

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/chwjbn/gl2-demo/glog"
)

var ErrCreateProgram = errors.New("glCreateProgram returned 0")

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	if len(e.Log) < 1 {
		return "GlProgram::LINKING_FAILURE"
	}
	return fmt.Sprintf("GlProgram::LINKING_FAILURE: %s", e.Log)
}

// GlProgram is a successfully linked program. Its shaders stay attached until
// Delete.
type GlProgram struct {
	glCtx   Context
	handle  uint32
	shaders []*GlShader
}

func (prog *GlProgram) Handle() uint32 {
	return prog.handle
}

func (prog *GlProgram) Shaders() []*GlShader {
	return prog.shaders
}

func (prog *GlProgram) Use() {
	prog.glCtx.UseProgram(prog.handle)
}

func (prog *GlProgram) GetAttribLocation(name string) int32 {
	return prog.glCtx.GetAttribLocation(prog.handle, name)
}

func (prog *GlProgram) GetUniformLocation(name string) int32 {
	return prog.glCtx.GetUniformLocation(prog.handle, name)
}

func (prog *GlProgram) Delete() {
	if prog.handle != 0 {
		prog.glCtx.DeleteProgram(prog.handle)
		prog.handle = 0
	}
	for _, shader := range prog.shaders {
		shader.Delete()
	}
	prog.shaders = nil
}

type ProgramBuilder struct {
	mGL        Context
	mErrorHook ErrorHook
}

func NewProgramBuilder(glCtx Context, hook ErrorHook) *ProgramBuilder {
	return &ProgramBuilder{mGL: glCtx, mErrorHook: hook}
}

func (b *ProgramBuilder) CompileShader(kind ShaderKind, src string) (*GlShader, error) {
	return NewGlShader(b.mGL, kind, src)
}

// CreateProgram compiles both stages and links them. The fragment stage is
// not compiled when the vertex stage fails. Nothing created here survives a
// failure.
func (b *ProgramBuilder) CreateProgram(vertexSrc string, fragmentSrc string) (*GlProgram, error) {

	vertexShader, xErr := b.CompileShader(ShaderVertex, vertexSrc)
	if xErr != nil {
		return nil, xErr
	}

	fragmentShader, xErr := b.CompileShader(ShaderFragment, fragmentSrc)
	if xErr != nil {
		vertexShader.Delete()
		return nil, xErr
	}

	handle := b.mGL.CreateProgram()
	if handle == 0 {
		vertexShader.Delete()
		fragmentShader.Delete()
		return nil, ErrCreateProgram
	}

	prog := &GlProgram{glCtx: b.mGL, handle: handle}
	prog.attach(b.mErrorHook, vertexShader, fragmentShader)

	xErr = prog.link()
	if xErr != nil {
		prog.Delete()
		return nil, xErr
	}

	return prog, nil
}

func (prog *GlProgram) attach(hook ErrorHook, shaders ...*GlShader) {
	for _, shader := range shaders {
		prog.glCtx.AttachShader(prog.handle, shader.handle)
		CheckError(prog.glCtx, "glAttachShader", hook)
		prog.shaders = append(prog.shaders, shader)
	}
}

func (prog *GlProgram) link() error {

	prog.glCtx.LinkProgram(prog.handle)

	if prog.glCtx.GetProgrami(prog.handle, LINK_STATUS) == TRUE {
		return nil
	}

	infoLog := ""
	if prog.glCtx.GetProgrami(prog.handle, INFO_LOG_LENGTH) > 0 {
		infoLog = prog.glCtx.GetProgramInfoLog(prog.handle)
	}

	glog.ErrorF("Could not link program:\n%s", infoLog)

	return &LinkError{Log: infoLog}
}
