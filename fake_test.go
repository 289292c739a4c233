package triangle

// fakeDevice is an in-memory Device that records calls.
type fakeDevice struct {
	next uint32

	// compile/link outcomes
	failStage  map[StageKind]bool
	failLink   bool
	stageLog   map[StageKind][]byte
	programLog []byte

	kinds          map[Shader]StageKind
	deleted        []Shader
	attached       map[Program][]Shader
	programs       int
	infoLogQueries int

	uploads []fakeUpload
	attribs []Attribute

	clears []Color
	draws  []fakeDraw
}

type fakeUpload struct {
	vao  VertexArray
	buf  Buffer
	data []float32
}

type fakeDraw struct {
	program     Program
	vao         VertexArray
	first, size int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		failStage: make(map[StageKind]bool),
		stageLog:  make(map[StageKind][]byte),
		kinds:     make(map[Shader]StageKind),
		attached:  make(map[Program][]Shader),
	}
}

func (d *fakeDevice) handle() uint32 {
	d.next++
	return d.next
}

// logLength reports len(log)+1 like a real driver (terminator included).
func logLength(log []byte) int {
	if len(log) == 0 {
		return 0
	}
	return len(log) + 1
}

func (d *fakeDevice) CreateShader(kind StageKind) Shader {
	s := Shader(d.handle())
	d.kinds[s] = kind
	return s
}

func (d *fakeDevice) ShaderSource(Shader, string) {}
func (d *fakeDevice) CompileShader(Shader)        {}

func (d *fakeDevice) ShaderCompiled(s Shader) bool {
	return !d.failStage[d.kinds[s]]
}

func (d *fakeDevice) ShaderInfoLogLength(s Shader) int {
	d.infoLogQueries++
	return logLength(d.stageLog[d.kinds[s]])
}

func (d *fakeDevice) ShaderInfoLog(s Shader, buf []byte) int {
	return copy(buf, d.stageLog[d.kinds[s]])
}

func (d *fakeDevice) DeleteShader(s Shader) {
	d.deleted = append(d.deleted, s)
}

func (d *fakeDevice) CreateProgram() Program {
	d.programs++
	return Program(d.handle())
}

func (d *fakeDevice) AttachShader(p Program, s Shader) {
	d.attached[p] = append(d.attached[p], s)
}

func (d *fakeDevice) LinkProgram(Program) {}

func (d *fakeDevice) ProgramLinked(Program) bool { return !d.failLink }

func (d *fakeDevice) ProgramInfoLogLength(Program) int {
	d.infoLogQueries++
	return logLength(d.programLog)
}

func (d *fakeDevice) ProgramInfoLog(_ Program, buf []byte) int {
	return copy(buf, d.programLog)
}

func (d *fakeDevice) CreateVertexArray() VertexArray { return VertexArray(d.handle()) }
func (d *fakeDevice) CreateBuffer() Buffer           { return Buffer(d.handle()) }

func (d *fakeDevice) BufferStaticData(vao VertexArray, buf Buffer, data []float32) {
	d.uploads = append(d.uploads, fakeUpload{vao: vao, buf: buf, data: data})
}

func (d *fakeDevice) VertexAttrib(_ VertexArray, _ Buffer, attr Attribute) {
	d.attribs = append(d.attribs, attr)
}

func (d *fakeDevice) Clear(c Color) { d.clears = append(d.clears, c) }

func (d *fakeDevice) DrawTriangles(p Program, vao VertexArray, first, count int) {
	d.draws = append(d.draws, fakeDraw{program: p, vao: vao, first: first, size: count})
}

// fakeWindow replays a scripted list of event batches, one per poll.
type fakeWindow struct {
	close   bool
	batches [][]KeyEvent
	polls   int
	swaps   int
}

func (w *fakeWindow) ShouldClose() bool     { return w.close }
func (w *fakeWindow) SetShouldClose(v bool) { w.close = v }
func (w *fakeWindow) SwapBuffers()          { w.swaps++ }

func (w *fakeWindow) PollEvents() []KeyEvent {
	defer func() { w.polls++ }()
	if w.polls < len(w.batches) {
		return w.batches[w.polls]
	}
	// Out of script: close so tests can't spin forever.
	w.close = true
	return nil
}
