package gles

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/chwjbn/gl2-demo/glog"
)

type ShaderKind uint32

const (
	ShaderVertex   ShaderKind = VERTEX_SHADER
	ShaderFragment ShaderKind = FRAGMENT_SHADER
)

func (k ShaderKind) String() string {
	switch k {
	case ShaderVertex:
		return "vertex"
	case ShaderFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderKind(0x%x)", uint32(k))
	}
}

var ErrCreateShader = errors.New("glCreateShader returned 0")

type CompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	if len(e.Log) < 1 {
		return fmt.Sprintf("SHADER::COMPILE_FAILURE::%s", e.Kind)
	}
	return fmt.Sprintf("SHADER::COMPILE_FAILURE::%s: %s", e.Kind, e.Log)
}

type GlShader struct {
	glCtx  Context
	handle uint32
	kind   ShaderKind
}

func (shader *GlShader) Handle() uint32 {
	return shader.handle
}

func (shader *GlShader) Kind() ShaderKind {
	return shader.kind
}

func (shader *GlShader) Delete() {
	if shader.handle == 0 {
		return
	}
	shader.glCtx.DeleteShader(shader.handle)
	shader.handle = 0
}

// NewGlShader compiles src. A failed compile deletes the GL object, so the
// returned shader is either valid or nil.
func NewGlShader(glCtx Context, kind ShaderKind, src string) (*GlShader, error) {

	handle := glCtx.CreateShader(uint32(kind))
	if handle == 0 {
		return nil, errors.Wrapf(ErrCreateShader, "%s shader", kind)
	}

	glCtx.ShaderSource(handle, src)
	glCtx.CompileShader(handle)

	if glCtx.GetShaderi(handle, COMPILE_STATUS) == FALSE {

		infoLog := ""
		if glCtx.GetShaderi(handle, INFO_LOG_LENGTH) > 0 {
			infoLog = glCtx.GetShaderInfoLog(handle)
		}

		glog.ErrorF("Could not compile shader %s:\n%s", kind, infoLog)
		glCtx.DeleteShader(handle)

		return nil, &CompileError{Kind: kind, Log: infoLog}
	}

	return &GlShader{glCtx: glCtx, handle: handle, kind: kind}, nil
}
