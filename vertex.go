package triangle

import "unsafe"

// Vertex is one interleaved position + color entry.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// triangleVertices is the triangle drawn every frame. Read it through Triangle.
var triangleVertices = [3]Vertex{
	{Position: [3]float32{-0.5, -0.5, 0.0}, Color: [3]float32{1.0, 0.0, 0.0}},
	{Position: [3]float32{0.5, -0.5, 0.0}, Color: [3]float32{0.0, 1.0, 0.0}},
	{Position: [3]float32{0.0, 0.5, 0.0}, Color: [3]float32{0.0, 0.0, 1.0}},
}

// Triangle returns a copy of the triangle drawn every frame.
func Triangle() [3]Vertex {
	return triangleVertices
}

// Attribute locations used by the shaders.
const (
	PositionLocation uint32 = 0
	ColorLocation    uint32 = 1
)

// VertexStride is the byte distance between consecutive vertices.
const VertexStride = int32(unsafe.Sizeof(Vertex{}))

// Attribute describes how a shader input reads from the vertex buffer.
// All components are float32.
type Attribute struct {
	Location   uint32
	Components int32
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// VertexLayout returns the position and color attributes of Vertex.
func VertexLayout() []Attribute {
	return []Attribute{
		{
			Location:   PositionLocation,
			Components: 3,
			Stride:     VertexStride,
			Offset:     unsafe.Offsetof(Vertex{}.Position),
		},
		{
			Location:   ColorLocation,
			Components: 3,
			Stride:     VertexStride,
			Offset:     unsafe.Offsetof(Vertex{}.Color),
		},
	}
}

// Flatten lays vertices out as interleaved float32s ready for upload.
func Flatten(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*6)
	for _, v := range vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Color[:]...)
	}
	return out
}
