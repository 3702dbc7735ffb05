// Package glestest provides a recording gles.Context that needs no GPU.
package glestest

import (
	"github.com/chwjbn/gl2-demo/render/gles"
)

const (
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502
)

type DrawCall struct {
	Mode  uint32
	First int32
	Count int32
}

type AttribPointer struct {
	Attrib     int32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     int
	Buffer     uint32
}

type shaderObj struct {
	kind    uint32
	src     string
	status  int32
	deleted bool
}

type programObj struct {
	attached []uint32
	status   int32
	deleted  bool
}

// Context records every call. Failure switches are read at call time, so
// tests set them before driving the code under test.
type Context struct {
	FailCreateShader  map[uint32]bool
	FailCompile       map[uint32]bool
	CompileLog        string
	FailCreateProgram bool
	FailLink          bool
	LinkLog           string
	FailCreateBuffer  bool
	Attribs           map[string]int32
	Uniforms          map[string]int32
	Strings           map[uint32]string
	PendingErrors     []uint32
	Pixels            []byte

	Calls          []string
	Draws          []DrawCall
	Viewports      [][4]int32
	ClearColors    [][4]float32
	ClearMasks     []uint32
	UsedPrograms   []uint32
	AttribPointers []AttribPointer
	EnabledAttribs []int32
	UniformMats    map[int32][]float32
	UniformUploads int
	BufferContents map[uint32][]float32

	nextID      uint32
	shaders     map[uint32]*shaderObj
	programs    map[uint32]*programObj
	buffers     map[uint32]bool
	boundBuffer uint32
}

var _ gles.Context = (*Context)(nil)

// New returns a context where "vPosition" is attribute 0 and "mvp" is
// uniform 0, and every compile and link succeeds.
func New() *Context {
	return &Context{
		FailCreateShader: map[uint32]bool{},
		FailCompile:      map[uint32]bool{},
		Attribs:          map[string]int32{"vPosition": 0},
		Uniforms:         map[string]int32{"mvp": 0},
		Strings: map[uint32]string{
			gles.VERSION:    "OpenGL ES 2.0 glestest",
			gles.VENDOR:     "glestest",
			gles.RENDERER:   "glestest",
			gles.EXTENSIONS: "",
		},
		UniformMats:    map[int32][]float32{},
		BufferContents: map[uint32][]float32{},
		shaders:        map[uint32]*shaderObj{},
		programs:       map[uint32]*programObj{},
		buffers:        map[uint32]bool{},
	}
}

func (c *Context) record(name string) {
	c.Calls = append(c.Calls, name)
}

func (c *Context) pushError(code uint32) {
	c.PendingErrors = append(c.PendingErrors, code)
}

func (c *Context) newID() uint32 {
	c.nextID++
	return c.nextID
}

func (c *Context) CallCount(name string) int {
	n := 0
	for _, call := range c.Calls {
		if call == name {
			n++
		}
	}
	return n
}

func (c *Context) LiveShaders() int {
	n := 0
	for _, s := range c.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

func (c *Context) LivePrograms() int {
	n := 0
	for _, p := range c.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

func (c *Context) LiveBuffers() int {
	n := 0
	for _, live := range c.buffers {
		if live {
			n++
		}
	}
	return n
}

// ShaderKinds lists the kinds of all shaders ever created, in order.
func (c *Context) ShaderKinds() []uint32 {
	var kinds []uint32
	for id := uint32(1); id <= c.nextID; id++ {
		if s, ok := c.shaders[id]; ok {
			kinds = append(kinds, s.kind)
		}
	}
	return kinds
}

func (c *Context) Attached(program uint32) []uint32 {
	p, ok := c.programs[program]
	if !ok {
		return nil
	}
	return p.attached
}

func (c *Context) IsLinked(program uint32) bool {
	p, ok := c.programs[program]
	return ok && !p.deleted && p.status == gles.TRUE
}

func (c *Context) GetString(name uint32) string {
	c.record("glGetString")
	return c.Strings[name]
}

func (c *Context) GetError() uint32 {
	if len(c.PendingErrors) < 1 {
		return gles.NO_ERROR
	}
	code := c.PendingErrors[0]
	c.PendingErrors = c.PendingErrors[1:]
	return code
}

func (c *Context) CreateShader(kind uint32) uint32 {
	c.record("glCreateShader")
	if c.FailCreateShader[kind] {
		return 0
	}
	id := c.newID()
	c.shaders[id] = &shaderObj{kind: kind}
	return id
}

func (c *Context) ShaderSource(shader uint32, src string) {
	c.record("glShaderSource")
	if s, ok := c.shaders[shader]; ok {
		s.src = src
	}
}

func (c *Context) CompileShader(shader uint32) {
	c.record("glCompileShader")
	s, ok := c.shaders[shader]
	if !ok {
		c.pushError(INVALID_VALUE)
		return
	}
	s.status = gles.TRUE
	if c.FailCompile[s.kind] || len(s.src) < 1 {
		s.status = gles.FALSE
	}
}

func (c *Context) GetShaderi(shader uint32, pname uint32) int32 {
	s, ok := c.shaders[shader]
	if !ok {
		c.pushError(INVALID_VALUE)
		return 0
	}
	switch pname {
	case gles.COMPILE_STATUS:
		return s.status
	case gles.INFO_LOG_LENGTH:
		if s.status == gles.TRUE || len(c.CompileLog) < 1 {
			return 0
		}
		return int32(len(c.CompileLog) + 1)
	}
	return 0
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	if s, ok := c.shaders[shader]; ok && s.status == gles.FALSE {
		return c.CompileLog
	}
	return ""
}

func (c *Context) DeleteShader(shader uint32) {
	c.record("glDeleteShader")
	if s, ok := c.shaders[shader]; ok {
		s.deleted = true
	}
}

func (c *Context) CreateProgram() uint32 {
	c.record("glCreateProgram")
	if c.FailCreateProgram {
		return 0
	}
	id := c.newID()
	c.programs[id] = &programObj{}
	return id
}

func (c *Context) AttachShader(program uint32, shader uint32) {
	c.record("glAttachShader")
	p, ok := c.programs[program]
	if !ok {
		c.pushError(INVALID_VALUE)
		return
	}
	p.attached = append(p.attached, shader)
}

func (c *Context) LinkProgram(program uint32) {
	c.record("glLinkProgram")
	p, ok := c.programs[program]
	if !ok {
		c.pushError(INVALID_VALUE)
		return
	}
	p.status = gles.TRUE
	if c.FailLink || len(p.attached) != 2 {
		p.status = gles.FALSE
	}
}

func (c *Context) GetProgrami(program uint32, pname uint32) int32 {
	p, ok := c.programs[program]
	if !ok {
		c.pushError(INVALID_VALUE)
		return 0
	}
	switch pname {
	case gles.LINK_STATUS:
		return p.status
	case gles.INFO_LOG_LENGTH:
		if p.status == gles.TRUE || len(c.LinkLog) < 1 {
			return 0
		}
		return int32(len(c.LinkLog) + 1)
	}
	return 0
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	if p, ok := c.programs[program]; ok && p.status == gles.FALSE {
		return c.LinkLog
	}
	return ""
}

func (c *Context) DeleteProgram(program uint32) {
	c.record("glDeleteProgram")
	if p, ok := c.programs[program]; ok {
		p.deleted = true
	}
}

func (c *Context) UseProgram(program uint32) {
	c.record("glUseProgram")
	if program != 0 && !c.IsLinked(program) {
		c.pushError(INVALID_OPERATION)
		return
	}
	c.UsedPrograms = append(c.UsedPrograms, program)
}

func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	c.record("glGetAttribLocation")
	if !c.IsLinked(program) {
		c.pushError(INVALID_OPERATION)
		return -1
	}
	if loc, ok := c.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	c.record("glGetUniformLocation")
	if !c.IsLinked(program) {
		c.pushError(INVALID_OPERATION)
		return -1
	}
	if loc, ok := c.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("glViewport")
	c.Viewports = append(c.Viewports, [4]int32{x, y, width, height})
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.record("glClearColor")
	c.ClearColors = append(c.ClearColors, [4]float32{red, green, blue, alpha})
}

func (c *Context) Clear(mask uint32) {
	c.record("glClear")
	c.ClearMasks = append(c.ClearMasks, mask)
}

func (c *Context) CreateBuffer() uint32 {
	c.record("glGenBuffers")
	if c.FailCreateBuffer {
		return 0
	}
	id := c.newID()
	c.buffers[id] = true
	return id
}

func (c *Context) BindBuffer(target uint32, buffer uint32) {
	c.record("glBindBuffer")
	c.boundBuffer = buffer
}

func (c *Context) BufferData(target uint32, data []float32, usage uint32) {
	c.record("glBufferData")
	if c.boundBuffer == 0 {
		c.pushError(INVALID_OPERATION)
		return
	}
	c.BufferContents[c.boundBuffer] = append([]float32(nil), data...)
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.record("glDeleteBuffers")
	if c.buffers[buffer] {
		c.buffers[buffer] = false
	}
	if c.boundBuffer == buffer {
		c.boundBuffer = 0
	}
}

func (c *Context) VertexAttribPointer(attrib int32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	c.record("glVertexAttribPointer")
	if attrib < 0 {
		c.pushError(INVALID_VALUE)
		return
	}
	c.AttribPointers = append(c.AttribPointers, AttribPointer{
		Attrib:     attrib,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
		Buffer:     c.boundBuffer,
	})
}

func (c *Context) EnableVertexAttribArray(attrib int32) {
	c.record("glEnableVertexAttribArray")
	if attrib < 0 {
		c.pushError(INVALID_VALUE)
		return
	}
	c.EnabledAttribs = append(c.EnabledAttribs, attrib)
}

func (c *Context) UniformMatrix4fv(location int32, value []float32) {
	c.record("glUniformMatrix4fv")
	c.UniformUploads++
	if location < 0 {
		return
	}
	c.UniformMats[location] = append([]float32(nil), value...)
}

func (c *Context) DrawArrays(mode uint32, first int32, count int32) {
	c.record("glDrawArrays")
	c.Draws = append(c.Draws, DrawCall{Mode: mode, First: first, Count: count})
}

func (c *Context) ReadPixels(dst []byte, x, y, width, height int32) {
	c.record("glReadPixels")
	copy(dst, c.Pixels)
}
