// rdp_state.go - Shadow Copy of the N64 RDP/RSP Graphics State

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
rdp_state.go - Console GPU State Store

RDPState mirrors the RCP state that the command stream mutates: image
descriptors, the eight tile descriptors, the color registers, the combined
render/geometry modes, scissor and viewport, the bounded modelview matrix
stack and the 64-slot vertex buffer. One RDPState instance is owned by one
RDPEngine; there is no package-level state, so independent engines can run
side by side in tests.
*/

package main

import "fmt"

// ImageDescriptor shadows a G_SETTIMG / G_SETCIMG / G_SETZIMG write.
// Fields are stored verbatim; conversion happens at texture load time.
type ImageDescriptor struct {
	Format uint8
	Size   uint8
	Width  uint16
	Data   []byte
}

// TileDescriptor is one of the eight hardware texture sampling slots.
type TileDescriptor struct {
	Format  uint8
	Size    uint8
	Line    uint16
	TMem    uint16
	Palette uint8
	CmS     uint8
	MaskS   uint8
	ShiftS  uint8
	CmT     uint8
	MaskT   uint8
	ShiftT  uint8

	// Bounds from G_SETTILESIZE, 10.2 fixed-point texels
	ULS, ULT, LRS, LRT uint16

	// Decoded RGBA32 texels for this tile after a load command, plus the
	// source dimensions. Nil until a load targets the tile.
	Pixels []byte
	PixW   int
	PixH   int
	Gap    bool // True when the source format is a known capability gap
}

// WidthTexels returns the tile width implied by the SETTILESIZE bounds.
func (t *TileDescriptor) WidthTexels() int {
	return int(t.LRS>>2) - int(t.ULS>>2) + 1
}

// HeightTexels returns the tile height implied by the SETTILESIZE bounds.
func (t *TileDescriptor) HeightTexels() int {
	return int(t.LRT>>2) - int(t.ULT>>2) + 1
}

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	ULX, ULY, LRX, LRY int
}

// Viewport is the decoded viewport transform.
type Viewport struct {
	Scale [4]float32
	Trans [4]float32
}

// RDPState aggregates the mutable hardware state consumed by the dispatcher.
type RDPState struct {
	TextureImage ImageDescriptor
	ColorImage   ImageDescriptor
	DepthImage   ImageDescriptor

	Tiles [RDP_TILE_COUNT]TileDescriptor

	PrimColor  ColorParams
	EnvColor   ColorParams
	BlendColor ColorParams
	FogColor   ColorParams
	FillColor  uint32

	CombineHi uint32
	CombineLo uint32

	OtherModeH uint32
	OtherModeL uint32

	GeometryMode uint32

	Scissor  Rect
	Viewport Viewport

	TexScaleS float32
	TexScaleT float32
	TexTile   uint8
	TexOn     bool

	// Projection matrix and bounded modelview stack. MtxStackDepth indexes
	// the active modelview matrix; the top of the stack is the transform
	// the renderer consumes.
	Projection    [16]float32
	MtxStack      [RDP_MATRIX_STACK_SIZE][16]float32
	MtxStackDepth int

	// Vertex buffer and the highest slot filled by G_VTX this list
	VertexBuffer [RDP_VERTEX_BUFFER_SIZE]Vtx
	VertexCount  int
}

// NewRDPState returns a state store with hardware reset values.
func NewRDPState() *RDPState {
	s := &RDPState{}
	s.Reset(RDP_DEFAULT_WIDTH, RDP_DEFAULT_HEIGHT)
	return s
}

// Reset restores frame-boundary defaults. Width and height bound the default
// scissor and viewport.
func (s *RDPState) Reset(width, height int) {
	s.GeometryMode = 0
	s.OtherModeH = 0
	s.OtherModeL = 0
	s.VertexCount = 0
	s.MtxStackDepth = 0
	s.MtxStack[0] = identityMatrix()
	s.Projection = identityMatrix()
	s.Scissor = Rect{0, 0, width, height}
	s.Viewport = Viewport{
		Scale: [4]float32{float32(width) / 2, float32(height) / 2, 511, 0},
		Trans: [4]float32{float32(width) / 2, float32(height) / 2, 511, 0},
	}
	s.TexScaleS = 1
	s.TexScaleT = 1
	s.TexOn = false
}

// ModelView returns the active modelview matrix.
func (s *RDPState) ModelView() *[16]float32 {
	return &s.MtxStack[s.MtxStackDepth]
}

// Tile returns the tile descriptor at index, or an error when the index is
// outside the eight hardware slots.
func (s *RDPState) Tile(index uint8) (*TileDescriptor, error) {
	if int(index) >= RDP_TILE_COUNT {
		return nil, fmt.Errorf("tile index %d out of range", index)
	}
	return &s.Tiles[index], nil
}

func identityMatrix() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
