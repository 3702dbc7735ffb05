package render

import "github.com/chwjbn/gl2-demo/render/gles"

const coordsPerVertex = 3

// shapeVertices is a unit cube centred on the origin laid out as triangle
// strips: the four sides wrap around in one strip, then top and bottom.
var shapeVertices = [...]float32{
	0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5, // first side
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5, // second side
	0.5, 0.5, 0.5, 0.5, -0.5, 0.5, // third side
	0.5, 0.5, -0.5, 0.5, -0.5, -0.5, // fourth side
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, 0.5, -0.5, // top
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5, // bottom
}

type DrawRange struct {
	Name  string
	First int32
	Count int32
}

// shapeRanges index into shapeVertices and must change with it.
var shapeRanges = [...]DrawRange{
	{Name: "sides", First: 0, Count: 10},
	{Name: "top", First: 10, Count: 4},
	{Name: "bottom", First: 14, Count: 4},
}

const shapeDrawMode = gles.TRIANGLE_STRIP

func ShapeVertices() []float32 {
	return append([]float32(nil), shapeVertices[:]...)
}

func ShapeRanges() []DrawRange {
	return append([]DrawRange(nil), shapeRanges[:]...)
}

func shapeVertexCount() int32 {
	return int32(len(shapeVertices) / coordsPerVertex)
}
