// Package mobilegl implements gles.Context over golang.org/x/mobile/gl, the
// context handed to gomobile apps on Android and iOS.
package mobilegl

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"

	"github.com/chwjbn/gl2-demo/render/gles"
)

type Context struct {
	glCtx gl.Context
}

var _ gles.Context = (*Context)(nil)

func New(glCtx gl.Context) *Context {
	return &Context{glCtx: glCtx}
}

func program(p uint32) gl.Program {
	return gl.Program{Init: true, Value: p}
}

// attrib keeps -1 from wrapping into a huge unsigned index.
func attrib(a int32) gl.Attrib {
	return gl.Attrib{Value: uint(uint32(a))}
}

func (c *Context) GetString(name uint32) string {
	return c.glCtx.GetString(gl.Enum(name))
}

func (c *Context) GetError() uint32 {
	return uint32(c.glCtx.GetError())
}

func (c *Context) CreateShader(kind uint32) uint32 {
	return c.glCtx.CreateShader(gl.Enum(kind)).Value
}

func (c *Context) ShaderSource(shader uint32, src string) {
	c.glCtx.ShaderSource(gl.Shader{Value: shader}, src)
}

func (c *Context) CompileShader(shader uint32) {
	c.glCtx.CompileShader(gl.Shader{Value: shader})
}

func (c *Context) GetShaderi(shader uint32, pname uint32) int32 {
	return int32(c.glCtx.GetShaderi(gl.Shader{Value: shader}, gl.Enum(pname)))
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	return c.glCtx.GetShaderInfoLog(gl.Shader{Value: shader})
}

func (c *Context) DeleteShader(shader uint32) {
	c.glCtx.DeleteShader(gl.Shader{Value: shader})
}

func (c *Context) CreateProgram() uint32 {
	return c.glCtx.CreateProgram().Value
}

func (c *Context) AttachShader(p uint32, shader uint32) {
	c.glCtx.AttachShader(program(p), gl.Shader{Value: shader})
}

func (c *Context) LinkProgram(p uint32) {
	c.glCtx.LinkProgram(program(p))
}

func (c *Context) GetProgrami(p uint32, pname uint32) int32 {
	return int32(c.glCtx.GetProgrami(program(p), gl.Enum(pname)))
}

func (c *Context) GetProgramInfoLog(p uint32) string {
	return c.glCtx.GetProgramInfoLog(program(p))
}

func (c *Context) DeleteProgram(p uint32) {
	c.glCtx.DeleteProgram(program(p))
}

func (c *Context) UseProgram(p uint32) {
	c.glCtx.UseProgram(gl.Program{Init: p != 0, Value: p})
}

func (c *Context) GetAttribLocation(p uint32, name string) int32 {
	return int32(c.glCtx.GetAttribLocation(program(p), name).Value)
}

func (c *Context) GetUniformLocation(p uint32, name string) int32 {
	return c.glCtx.GetUniformLocation(program(p), name).Value
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.glCtx.Viewport(int(x), int(y), int(width), int(height))
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.glCtx.ClearColor(red, green, blue, alpha)
}

func (c *Context) Clear(mask uint32) {
	c.glCtx.Clear(gl.Enum(mask))
}

func (c *Context) CreateBuffer() uint32 {
	return c.glCtx.CreateBuffer().Value
}

func (c *Context) BindBuffer(target uint32, buffer uint32) {
	c.glCtx.BindBuffer(gl.Enum(target), gl.Buffer{Value: buffer})
}

func (c *Context) BufferData(target uint32, data []float32, usage uint32) {
	c.glCtx.BufferData(gl.Enum(target), f32.Bytes(binary.LittleEndian, data...), gl.Enum(usage))
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.glCtx.DeleteBuffer(gl.Buffer{Value: buffer})
}

func (c *Context) VertexAttribPointer(a int32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	c.glCtx.VertexAttribPointer(attrib(a), int(size), gl.Enum(xtype), normalized, int(stride), offset)
}

func (c *Context) EnableVertexAttribArray(a int32) {
	c.glCtx.EnableVertexAttribArray(attrib(a))
}

func (c *Context) UniformMatrix4fv(location int32, value []float32) {
	c.glCtx.UniformMatrix4fv(gl.Uniform{Value: location}, value)
}

func (c *Context) DrawArrays(mode uint32, first int32, count int32) {
	c.glCtx.DrawArrays(gl.Enum(mode), int(first), int(count))
}

func (c *Context) ReadPixels(dst []byte, x, y, width, height int32) {
	c.glCtx.ReadPixels(dst, int(x), int(y), int(width), int(height), gl.RGBA, gl.UNSIGNED_BYTE)
}
