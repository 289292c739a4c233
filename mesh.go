package triangle

// Mesh is an uploaded, immutable vertex array.
type Mesh struct {
	VertexArray VertexArray
	Buffer      Buffer
	Count       int
}

// UploadTriangle creates the vertex array and buffer for vertices,
// uploads them once and configures the attributes from VertexLayout.
func UploadTriangle(dev MeshDevice, vertices [3]Vertex) Mesh {
	m := Mesh{
		VertexArray: dev.CreateVertexArray(),
		Buffer:      dev.CreateBuffer(),
		Count:       len(vertices),
	}

	dev.BufferStaticData(m.VertexArray, m.Buffer, Flatten(vertices[:]))
	for _, attr := range VertexLayout() {
		dev.VertexAttrib(m.VertexArray, m.Buffer, attr)
	}

	return m
}
