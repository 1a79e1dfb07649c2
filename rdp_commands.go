// rdp_commands.go - N64 Display List Command Records and Builders

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
rdp_commands.go - Display List Command Records

A display list is a slice of GfxCommand records. Each record carries an 8-bit
opcode plus the parameter group for that opcode; the layout mirrors the
union-by-opcode wire format produced by unmodified game code, so only the
group matching the opcode is ever meaningful. The builder functions at the
bottom are the Go equivalents of the GBI display list macros and are used by
tests and the demo list in main.go.
*/

package main

// Vtx is one vertex as it appears in game memory: positions in quarter
// units, texture coordinates in 1/32 units, and a packed color/normal.
type Vtx struct {
	X, Y, Z    int16  // Position, s13.2 fixed point
	Flag       uint16 // Unused by the translation layer, carried verbatim
	S, T       int16  // Texture coordinates, s10.5 fixed point
	R, G, B, A uint8  // Color or packed normal plus alpha
}

// Mtx is a 4x4 matrix of 16.16 fixed-point values as stored in game memory.
type Mtx [4][4]int32

// ImageParams carries G_SETTIMG / G_SETZIMG / G_SETCIMG parameters.
type ImageParams struct {
	Format uint8  // G_IM_FMT_*
	Size   uint8  // G_IM_SIZ_*
	Width  uint16 // Row width in texels
	Data   []byte // Image memory (the "address" of the legacy stream)
}

// TileParams carries G_SETTILE parameters for one tile descriptor slot.
type TileParams struct {
	Tile    uint8  // Destination slot, 0-7
	Format  uint8  // G_IM_FMT_*
	Size    uint8  // G_IM_SIZ_*
	Line    uint16 // TMEM words per row
	TMem    uint16 // TMEM address in 64-bit words
	Palette uint8  // Palette index for 4-bit CI textures
	CmS     uint8  // S axis clamp/mirror (G_TX_*)
	MaskS   uint8  // S axis wrap mask
	ShiftS  uint8  // S axis coordinate shift
	CmT     uint8  // T axis clamp/mirror
	MaskT   uint8  // T axis wrap mask
	ShiftT  uint8  // T axis coordinate shift
}

// TileSizeParams carries G_SETTILESIZE / G_LOADTILE / G_LOADBLOCK bounds,
// all in 10.2 fixed-point texels.
type TileSizeParams struct {
	Tile uint8
	ULS  uint16
	ULT  uint16
	LRS  uint16
	LRT  uint16
}

// ColorParams carries the SET*COLOR family. Packed is the raw 32-bit word
// (fill color uses it directly); R/G/B/A are the unpacked channels.
type ColorParams struct {
	R, G, B, A uint8
	Packed     uint32
}

// ModeParams carries geometry-mode, other-mode and combiner words.
type ModeParams struct {
	Clear uint32 // G_GEOMETRYMODE: bits to clear
	Set   uint32 // G_GEOMETRYMODE: bits to set
	Hi    uint32 // G_RDPSETOTHERMODE / G_SETCOMBINE high word
	Lo    uint32 // G_RDPSETOTHERMODE / G_SETCOMBINE low word
	Shift uint8  // G_SETOTHERMODE_L/H field shift
	Len   uint8  // G_SETOTHERMODE_L/H field length
	Bits  uint32 // G_SETOTHERMODE_L/H replacement bits
}

// VtxParams carries G_VTX parameters.
type VtxParams struct {
	Src   []Vtx // Source vertices in game memory
	N     uint8 // Number of vertices to load
	Index uint8 // First destination slot in the vertex buffer
}

// TriParams carries G_TRI1 / G_TRI2 / G_QUAD vertex buffer indices.
type TriParams struct {
	V [8]uint8 // TRI1 uses V[0:3], TRI2 uses V[0:3] and V[4:7], QUAD uses V[0:4]
}

// MtxParams carries G_MTX / G_POPMTX parameters.
type MtxParams struct {
	Src    *Mtx  // Matrix in game memory (G_MTX)
	Params uint8 // G_MTX_* flag combination
}

// DlParams carries G_DL parameters.
type DlParams struct {
	Target []GfxCommand // Sub display list
	Push   bool         // True to return here after the sub list ends
}

// ScissorParams carries G_SETSCISSOR bounds in 10.2 fixed-point pixels.
type ScissorParams struct {
	Mode uint8
	ULX  uint16
	ULY  uint16
	LRX  uint16
	LRY  uint16
}

// ViewportParams carries the G_MOVEMEM viewport payload: scale and
// translate vectors in s13.2 fixed point.
type ViewportParams struct {
	Scale [4]int16
	Trans [4]int16
}

// TextureParams carries G_TEXTURE scaling state.
type TextureParams struct {
	ScaleS uint16 // 0.16 fixed-point S scale
	ScaleT uint16 // 0.16 fixed-point T scale
	Tile   uint8  // Active tile descriptor
	On     bool   // Texturing enabled
}

// RectParams carries G_FILLRECT bounds in 10.2 fixed-point pixels.
type RectParams struct {
	ULX uint16
	ULY uint16
	LRX uint16
	LRY uint16
}

// GfxCommand is one display list record: an opcode plus the parameter group
// for that opcode. Groups other than the one selected by Opcode are zero and
// must never be read, matching the union layout of the legacy stream.
type GfxCommand struct {
	Opcode   uint8
	Length   uint8
	Image    ImageParams
	Tile     TileParams
	TileSize TileSizeParams
	Color    ColorParams
	Mode     ModeParams
	Vtx      VtxParams
	Tri      TriParams
	Mtx      MtxParams
	Dl       DlParams
	Scissor  ScissorParams
	Viewport ViewportParams
	Texture  TextureParams
	Rect     RectParams
}

// Display list builders (GBI macro equivalents)

func GsSPVertex(src []Vtx, n, index uint8) GfxCommand {
	return GfxCommand{Opcode: G_VTX, Vtx: VtxParams{Src: src, N: n, Index: index}}
}

func GsSP1Triangle(v0, v1, v2 uint8) GfxCommand {
	return GfxCommand{Opcode: G_TRI1, Tri: TriParams{V: [8]uint8{v0, v1, v2}}}
}

func GsSP2Triangles(v0, v1, v2, v3, v4, v5 uint8) GfxCommand {
	return GfxCommand{Opcode: G_TRI2, Tri: TriParams{V: [8]uint8{v0, v1, v2, 0, v3, v4, v5, 0}}}
}

func GsSPQuadrangle(v0, v1, v2, v3 uint8) GfxCommand {
	return GfxCommand{Opcode: G_QUAD, Tri: TriParams{V: [8]uint8{v0, v1, v2, v3}}}
}

func GsSPGeometryMode(clear, set uint32) GfxCommand {
	return GfxCommand{Opcode: G_GEOMETRYMODE, Mode: ModeParams{Clear: clear, Set: set}}
}

func GsSPMatrix(src *Mtx, params uint8) GfxCommand {
	return GfxCommand{Opcode: G_MTX, Mtx: MtxParams{Src: src, Params: params}}
}

func GsSPPopMatrix() GfxCommand {
	return GfxCommand{Opcode: G_POPMTX}
}

func GsSPDisplayList(target []GfxCommand) GfxCommand {
	return GfxCommand{Opcode: G_DL, Dl: DlParams{Target: target, Push: true}}
}

func GsSPBranchList(target []GfxCommand) GfxCommand {
	return GfxCommand{Opcode: G_DL, Dl: DlParams{Target: target, Push: false}}
}

func GsSPTexture(scaleS, scaleT uint16, tile uint8, on bool) GfxCommand {
	return GfxCommand{Opcode: G_TEXTURE, Texture: TextureParams{ScaleS: scaleS, ScaleT: scaleT, Tile: tile, On: on}}
}

func GsSPEndDisplayList() GfxCommand {
	return GfxCommand{Opcode: G_ENDDL}
}

func GsDPSetTextureImage(format, size uint8, width uint16, data []byte) GfxCommand {
	return GfxCommand{Opcode: G_SETTIMG, Image: ImageParams{Format: format, Size: size, Width: width, Data: data}}
}

func GsDPSetColorImage(format, size uint8, width uint16, data []byte) GfxCommand {
	return GfxCommand{Opcode: G_SETCIMG, Image: ImageParams{Format: format, Size: size, Width: width, Data: data}}
}

func GsDPSetDepthImage(data []byte) GfxCommand {
	return GfxCommand{Opcode: G_SETZIMG, Image: ImageParams{Data: data}}
}

func GsDPSetTile(format, size uint8, line, tmem uint16, tile, palette,
	cmT, maskT, shiftT, cmS, maskS, shiftS uint8) GfxCommand {
	return GfxCommand{Opcode: G_SETTILE, Tile: TileParams{
		Tile: tile, Format: format, Size: size, Line: line, TMem: tmem,
		Palette: palette, CmS: cmS, MaskS: maskS, ShiftS: shiftS,
		CmT: cmT, MaskT: maskT, ShiftT: shiftT,
	}}
}

func GsDPSetTileSize(tile uint8, uls, ult, lrs, lrt uint16) GfxCommand {
	return GfxCommand{Opcode: G_SETTILESIZE, TileSize: TileSizeParams{Tile: tile, ULS: uls, ULT: ult, LRS: lrs, LRT: lrt}}
}

func GsDPLoadBlock(tile uint8, uls, ult, lrs, dxt uint16) GfxCommand {
	return GfxCommand{Opcode: G_LOADBLOCK, TileSize: TileSizeParams{Tile: tile, ULS: uls, ULT: ult, LRS: lrs, LRT: dxt}}
}

func GsDPSetPrimColor(r, g, b, a uint8) GfxCommand {
	return GfxCommand{Opcode: G_SETPRIMCOLOR, Color: colorParams(r, g, b, a)}
}

func GsDPSetEnvColor(r, g, b, a uint8) GfxCommand {
	return GfxCommand{Opcode: G_SETENVCOLOR, Color: colorParams(r, g, b, a)}
}

func GsDPSetBlendColor(r, g, b, a uint8) GfxCommand {
	return GfxCommand{Opcode: G_SETBLENDCOLOR, Color: colorParams(r, g, b, a)}
}

func GsDPSetFogColor(r, g, b, a uint8) GfxCommand {
	return GfxCommand{Opcode: G_SETFOGCOLOR, Color: colorParams(r, g, b, a)}
}

func GsDPSetFillColor(packed uint32) GfxCommand {
	return GfxCommand{Opcode: G_SETFILLCOLOR, Color: ColorParams{Packed: packed}}
}

func GsDPSetCombineRaw(hi, lo uint32) GfxCommand {
	return GfxCommand{Opcode: G_SETCOMBINE, Mode: ModeParams{Hi: hi, Lo: lo}}
}

func GsDPSetOtherMode(hi, lo uint32) GfxCommand {
	return GfxCommand{Opcode: G_RDPSETOTHERMODE, Mode: ModeParams{Hi: hi, Lo: lo}}
}

func GsSPSetOtherModeL(shift, length uint8, bits uint32) GfxCommand {
	return GfxCommand{Opcode: G_SETOTHERMODE_L, Mode: ModeParams{Shift: shift, Len: length, Bits: bits}}
}

func GsSPSetOtherModeH(shift, length uint8, bits uint32) GfxCommand {
	return GfxCommand{Opcode: G_SETOTHERMODE_H, Mode: ModeParams{Shift: shift, Len: length, Bits: bits}}
}

func GsDPSetScissor(mode uint8, ulx, uly, lrx, lry uint16) GfxCommand {
	return GfxCommand{Opcode: G_SETSCISSOR, Scissor: ScissorParams{Mode: mode, ULX: ulx, ULY: uly, LRX: lrx, LRY: lry}}
}

func GsSPViewport(scale, trans [4]int16) GfxCommand {
	return GfxCommand{Opcode: G_MOVEMEM, Viewport: ViewportParams{Scale: scale, Trans: trans}}
}

func GsDPFillRectangle(ulx, uly, lrx, lry uint16) GfxCommand {
	return GfxCommand{Opcode: G_FILLRECT, Rect: RectParams{ULX: ulx, ULY: uly, LRX: lrx, LRY: lry}}
}

func GsDPPipeSync() GfxCommand { return GfxCommand{Opcode: G_RDPPIPESYNC} }
func GsDPLoadSync() GfxCommand { return GfxCommand{Opcode: G_RDPLOADSYNC} }
func GsDPTileSync() GfxCommand { return GfxCommand{Opcode: G_RDPTILESYNC} }
func GsDPFullSync() GfxCommand { return GfxCommand{Opcode: G_RDPFULLSYNC} }

func colorParams(r, g, b, a uint8) ColorParams {
	packed := uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
	return ColorParams{R: r, G: g, B: b, A: a, Packed: packed}
}
