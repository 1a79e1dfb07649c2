// rdp_backend_recording.go - Call-Recording Backend for Unit Tests

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionUltra

License: GPLv3 or later
*/

/*
rdp_backend_recording.go - Recording Backend

A RenderBackend implementation that performs no rendering and instead
records every capability call it receives. The interpreter and batch tests
assert against the recorded calls: how many draws happened, what vertex
data was uploaded, which uniforms and pipeline state were in effect. It
also implements the optional texture capability so the TMEM load path can
be exercised without a rasterizer.
*/

package main

import "fmt"

// BackendCall is one recorded capability invocation.
type BackendCall struct {
	Op   string
	Args string
}

// RecordingBackend records the capability calls made against it.
type RecordingBackend struct {
	Calls []BackendCall

	Width, Height int
	Initialized   bool
	Destroyed     bool

	nextBuffer  int
	liveBuffers map[int]bool
	boundBuffer int

	// Last observed values, for direct assertions
	LastVertexData []float32
	LastState      RenderState
	LastLayout     int
	Uniforms       map[string]any

	DrawCalls  int
	DrawCounts []int

	// Texture capability recording
	TexW, TexH   int
	TexPixels    []byte
	TexEnabled   bool
	TexClampS    bool
	TexClampT    bool
}

// NewRecordingBackend returns an empty recorder.
func NewRecordingBackend() *RecordingBackend {
	return &RecordingBackend{
		liveBuffers: make(map[int]bool),
		Uniforms:    make(map[string]any),
	}
}

func (r *RecordingBackend) record(op, format string, args ...any) {
	r.Calls = append(r.Calls, BackendCall{Op: op, Args: fmt.Sprintf(format, args...)})
}

func (r *RecordingBackend) Init(width, height int) error {
	r.Width, r.Height = width, height
	r.Initialized = true
	r.record("Init", "%dx%d", width, height)
	return nil
}

func (r *RecordingBackend) Destroy() {
	r.Destroyed = true
	r.record("Destroy", "")
}

func (r *RecordingBackend) CreateBuffer() (int, error) {
	r.nextBuffer++
	r.liveBuffers[r.nextBuffer] = true
	r.record("CreateBuffer", "id=%d", r.nextBuffer)
	return r.nextBuffer, nil
}

func (r *RecordingBackend) UpdateBuffer(id int, data []float32) error {
	if !r.liveBuffers[id] {
		return &RenderError{Operation: "update buffer", Details: fmt.Sprintf("unknown buffer %d", id)}
	}
	r.LastVertexData = append(r.LastVertexData[:0], data...)
	r.record("UpdateBuffer", "id=%d floats=%d", id, len(data))
	return nil
}

func (r *RecordingBackend) DestroyBuffer(id int) {
	delete(r.liveBuffers, id)
	r.record("DestroyBuffer", "id=%d", id)
}

func (r *RecordingBackend) BindBuffer(id int) {
	r.boundBuffer = id
	r.record("BindBuffer", "id=%d", id)
}

func (r *RecordingBackend) SetVertexLayout(floatsPerVertex int) {
	r.LastLayout = floatsPerVertex
	r.record("SetVertexLayout", "floats=%d", floatsPerVertex)
}

func (r *RecordingBackend) SetRenderState(state RenderState) {
	r.LastState = state
	r.record("SetRenderState", "%+v", state)
}

func (r *RecordingBackend) SetUniformInt(name string, v int) {
	r.Uniforms[name] = v
	r.record("SetUniformInt", "%s=%d", name, v)
}

func (r *RecordingBackend) SetUniformFloat(name string, v float32) {
	r.Uniforms[name] = v
	r.record("SetUniformFloat", "%s=%g", name, v)
}

func (r *RecordingBackend) SetUniformVec2(name string, x, y float32) {
	r.Uniforms[name] = [2]float32{x, y}
	r.record("SetUniformVec2", "%s=(%g,%g)", name, x, y)
}

func (r *RecordingBackend) SetUniformVec3(name string, x, y, z float32) {
	r.Uniforms[name] = [3]float32{x, y, z}
	r.record("SetUniformVec3", "%s=(%g,%g,%g)", name, x, y, z)
}

func (r *RecordingBackend) SetUniformVec4(name string, x, y, z, w float32) {
	r.Uniforms[name] = [4]float32{x, y, z, w}
	r.record("SetUniformVec4", "%s=(%g,%g,%g,%g)", name, x, y, z, w)
}

func (r *RecordingBackend) SetUniformMat4(name string, m [16]float32) {
	r.Uniforms[name] = m
	r.record("SetUniformMat4", "%s", name)
}

func (r *RecordingBackend) Draw(first, count int) {
	r.DrawCalls++
	r.DrawCounts = append(r.DrawCounts, count)
	r.record("Draw", "first=%d count=%d", first, count)
}

// Texture capability

func (r *RecordingBackend) SetTextureData(width, height int, pix []byte) {
	r.TexW, r.TexH = width, height
	r.TexPixels = append(r.TexPixels[:0], pix...)
	r.record("SetTextureData", "%dx%d bytes=%d", width, height, len(pix))
}

func (r *RecordingBackend) SetTextureEnabled(enabled bool) {
	r.TexEnabled = enabled
	r.record("SetTextureEnabled", "%t", enabled)
}

func (r *RecordingBackend) SetTextureWrapMode(clampS, clampT bool) {
	r.TexClampS, r.TexClampT = clampS, clampT
	r.record("SetTextureWrapMode", "s=%t t=%t", clampS, clampT)
}
