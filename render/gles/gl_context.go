// Package gles wraps the OpenGL ES 2.0 calls the demo needs behind Context so
// the same renderer runs on go-gl (desktop) and x/mobile (Android/iOS)
// bindings, and against a recording fake in tests.
package gles

// GL ES 2.0 enum values used by the renderer.
const (
	NO_ERROR = 0
	FALSE    = 0
	TRUE     = 1

	DEPTH_BUFFER_BIT = 0x00000100
	COLOR_BUFFER_BIT = 0x00004000

	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005

	UNSIGNED_BYTE = 0x1401
	FLOAT         = 0x1406
	RGBA          = 0x1908

	VENDOR     = 0x1F00
	RENDERER   = 0x1F01
	VERSION    = 0x1F02
	EXTENSIONS = 0x1F03

	ARRAY_BUFFER = 0x8892
	STATIC_DRAW  = 0x88E4

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84
)

// Context is the current GL ES 2.0 context. Handles are plain object names;
// zero is never a valid shader, program or buffer. Locations are -1 when the
// name is not active in the program.
//
// Implementations must only be used from the thread that owns the context.
type Context interface {
	GetString(name uint32) string
	GetError() uint32

	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32

	Viewport(x, y, width, height int32)
	ClearColor(red, green, blue, alpha float32)
	Clear(mask uint32)

	CreateBuffer() uint32
	BindBuffer(target uint32, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	DeleteBuffer(buffer uint32)

	VertexAttribPointer(attrib int32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(attrib int32)
	UniformMatrix4fv(location int32, value []float32)
	DrawArrays(mode uint32, first int32, count int32)

	ReadPixels(dst []byte, x, y, width, height int32)
}
