// rdp_backend.go - Renderer Backend Capability Interface

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
rdp_backend.go - Renderer Backend Interface

The translation core consumes, but does not implement, a modern-rendering
capability set: buffer management, render state, uniforms and draw
submission. Any implementation can sit behind it - the software rasterizer
in rdp_backend_software.go, the recording backend the tests use, or an
external GPU-accelerated backend. The engine and the batcher only ever talk
to this interface, which keeps the command interpretation testable without a
graphics context.
*/

package main

import "fmt"

// RenderError provides detailed error context for backend operations
type RenderError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("render %s failed: %s", e.Operation, e.Details)
}

// RenderState is the per-flush pipeline state derived from the shadowed
// geometry-mode and other-mode words.
type RenderState struct {
	DepthTest      bool // Z compare enabled
	DepthWrite     bool // Z update enabled
	AlphaBlend     bool // Framebuffer blending forced on
	SmoothShading  bool // Gouraud (vs flat) shading
	CullFront      bool
	CullBack       bool
	TextureEnabled bool
	Scissor        Rect
}

// RenderBackend is the capability set the translation core draws through.
type RenderBackend interface {
	// Lifecycle
	Init(width, height int) error
	Destroy()

	// Buffer management. One dynamic vertex buffer is created at engine
	// init and reused for every flush.
	CreateBuffer() (int, error)
	UpdateBuffer(id int, data []float32) error
	DestroyBuffer(id int)
	BindBuffer(id int)

	// Pipeline state
	SetVertexLayout(floatsPerVertex int)
	SetRenderState(state RenderState)

	// Uniforms
	SetUniformInt(name string, v int)
	SetUniformFloat(name string, v float32)
	SetUniformVec2(name string, x, y float32)
	SetUniformVec3(name string, x, y, z float32)
	SetUniformVec4(name string, x, y, z, w float32)
	SetUniformMat4(name string, m [16]float32)

	// Draw submission: count vertices starting at first in the bound buffer
	Draw(first, count int)
}

// TextureBackend is an optional capability for backends that can sample
// decoded RGBA textures. Backends without it still draw untextured geometry.
type TextureBackend interface {
	SetTextureData(width, height int, pix []byte)
	SetTextureEnabled(enabled bool)
	SetTextureWrapMode(clampS, clampT bool)
}

// FrameBackend is an optional capability for backends that can hand back a
// finished RGBA frame for display or inspection.
type FrameBackend interface {
	GetFrame() []byte
	ClearFrame(r, g, b, a uint8)
}

// Predefined render backend types
const (
	RENDER_BACKEND_SOFTWARE  = iota // Pure Go software rasterizer
	RENDER_BACKEND_RECORDING        // Call recorder for unit tests
)

// NewRenderBackend creates a render backend instance of the specified type.
func NewRenderBackend(backend int) (RenderBackend, error) {
	switch backend {
	case RENDER_BACKEND_SOFTWARE:
		return NewSoftwareBackend(), nil
	case RENDER_BACKEND_RECORDING:
		return NewRecordingBackend(), nil
	default:
		return nil, &RenderError{
			Operation: "create",
			Details:   fmt.Sprintf("unknown backend type %d", backend),
		}
	}
}
