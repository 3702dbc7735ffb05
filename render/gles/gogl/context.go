// Package gogl implements gles.Context over the go-gl GL ES 2.0 bindings.
// gl.Init must have succeeded on the current context before New is used.
package gogl

import (
	"strings"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/chwjbn/gl2-demo/render/gles"
)

type Context struct{}

var _ gles.Context = Context{}

func New() Context {
	return Context{}
}

type getObjIv func(uint32, uint32, *int32)
type getObjInfoLog func(uint32, int32, *int32, *uint8)

func getInfoLog(glHandle uint32, getObjIvFn getObjIv, getObjInfoLogFn getObjInfoLog) string {

	var logLength int32
	getObjIvFn(glHandle, gl.INFO_LOG_LENGTH, &logLength)

	if logLength < 1 {
		return ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	getObjInfoLogFn(glHandle, logLength, nil, log)

	return gl.GoStr(log)
}

func (Context) GetString(name uint32) string {
	v := gl.GetString(name)
	if v == nil {
		return ""
	}
	return gl.GoStr(v)
}

func (Context) GetError() uint32 {
	return gl.GetError()
}

func (Context) CreateShader(kind uint32) uint32 {
	return gl.CreateShader(kind)
}

func (Context) ShaderSource(shader uint32, src string) {
	glSrc, freeFn := gl.Strs(src + "\x00")
	defer freeFn()
	gl.ShaderSource(shader, 1, glSrc, nil)
}

func (Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Context) GetShaderi(shader uint32, pname uint32) int32 {
	var value int32
	gl.GetShaderiv(shader, pname, &value)
	return value
}

func (Context) GetShaderInfoLog(shader uint32) string {
	return getInfoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
}

func (Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Context) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Context) GetProgrami(program uint32, pname uint32) int32 {
	var value int32
	gl.GetProgramiv(program, pname, &value)
	return value
}

func (Context) GetProgramInfoLog(program uint32) string {
	return getInfoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
}

func (Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Context) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Context) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (Context) Clear(mask uint32) {
	gl.Clear(mask)
}

func (Context) CreateBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (Context) BindBuffer(target uint32, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (Context) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) < 1 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (Context) VertexAttribPointer(attrib int32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(attrib), size, xtype, normalized, stride, uintptr(offset))
}

func (Context) EnableVertexAttribArray(attrib int32) {
	gl.EnableVertexAttribArray(uint32(attrib))
}

func (Context) UniformMatrix4fv(location int32, value []float32) {
	gl.UniformMatrix4fv(location, int32(len(value)/16), false, &value[0])
}

func (Context) DrawArrays(mode uint32, first int32, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (Context) ReadPixels(dst []byte, x, y, width, height int32) {
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(dst))
}
