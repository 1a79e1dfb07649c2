// rdp_constants.go - N64 RDP/RSP Display List Opcode and Bit Field Definitions

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
rdp_constants.go - N64 Reality Display Processor Command Definitions

This file contains display list opcode values and bit field definitions for
the N64 RDP/RSP graphics command translation layer. Opcode numbers are sourced
from the F3DEX2 microcode GBI for hardware accuracy.

The N64 uses a display-list programming model where the game builds a stream
of fixed-size graphics commands in memory (set texture image, set tile, load
vertices, draw triangle) which the RSP/RDP consume sequentially. This layer
interprets the same command stream and redraws it through a modern backend.

Reference: F3DEX2 gbi.h / Reality Coprocessor programming manual
*/

package main

// RSP opcodes (geometry path)
const (
	G_NOOP         = 0x00 // No operation
	G_VTX          = 0x01 // Load vertices into the vertex buffer
	G_MODIFYVTX    = 0x02 // Patch a loaded vertex (unsupported, skipped)
	G_CULLDL       = 0x03 // Volume cull test (unsupported, skipped)
	G_TRI1         = 0x05 // Draw one triangle
	G_TRI2         = 0x06 // Draw two triangles
	G_QUAD         = 0x07 // Draw one quadrilateral (split into two triangles)
	G_TEXTURE      = 0xD7 // Set texture scaling state
	G_POPMTX       = 0xD8 // Pop the modelview matrix stack
	G_GEOMETRYMODE = 0xD9 // Clear then set geometry mode bits
	G_MTX          = 0xDA // Load or multiply a matrix
	G_MOVEMEM      = 0xDC // Move memory block (viewport payload only)
	G_DL           = 0xDE // Branch to a sub display list
	G_ENDDL        = 0xDF // End of display list sentinel
	G_SPNOOP       = 0xE0 // RSP no operation
)

// RDP opcodes (raster path)
const (
	G_SETOTHERMODE_L  = 0xE2 // Masked update of the other-mode low word
	G_SETOTHERMODE_H  = 0xE3 // Masked update of the other-mode high word
	G_RDPLOADSYNC     = 0xE6 // Load sync (no-op on a modern backend)
	G_RDPPIPESYNC     = 0xE7 // Pipe sync (no-op on a modern backend)
	G_RDPTILESYNC     = 0xE8 // Tile sync (no-op on a modern backend)
	G_RDPFULLSYNC     = 0xE9 // Full sync (no-op on a modern backend)
	G_SETSCISSOR      = 0xED // Set the scissor rectangle
	G_RDPSETOTHERMODE = 0xEF // Set both other-mode words verbatim
	G_LOADTLUT        = 0xF0 // Load palette (capability gap, skipped)
	G_SETTILESIZE     = 0xF2 // Set the bounds of a tile descriptor
	G_LOADBLOCK       = 0xF3 // Load texels into TMEM as one run
	G_LOADTILE        = 0xF4 // Load texels into TMEM as a rectangle
	G_SETTILE         = 0xF5 // Configure a tile descriptor
	G_FILLRECT        = 0xF6 // Fill rectangle
	G_SETFILLCOLOR    = 0xF7 // Set the fill color
	G_SETFOGCOLOR     = 0xF8 // Set the fog color
	G_SETBLENDCOLOR   = 0xF9 // Set the blend color
	G_SETPRIMCOLOR    = 0xFA // Set the primitive color
	G_SETENVCOLOR     = 0xFB // Set the environment color
	G_SETCOMBINE      = 0xFC // Set the color combiner mode
	G_SETTIMG         = 0xFD // Set the texture image descriptor
	G_SETZIMG         = 0xFE // Set the depth image descriptor
	G_SETCIMG         = 0xFF // Set the color image descriptor
)

// Texture image formats
const (
	G_IM_FMT_RGBA = 0 // Red/green/blue/alpha
	G_IM_FMT_YUV  = 1 // Luma/chroma (capability gap)
	G_IM_FMT_CI   = 2 // Color indexed (capability gap)
	G_IM_FMT_IA   = 3 // Intensity/alpha
	G_IM_FMT_I    = 4 // Intensity
)

// Texture image bit depths
const (
	G_IM_SIZ_4b  = 0 // 4 bits per texel
	G_IM_SIZ_8b  = 1 // 8 bits per texel
	G_IM_SIZ_16b = 2 // 16 bits per texel
	G_IM_SIZ_32b = 3 // 32 bits per texel
)

// Geometry mode bits
const (
	G_ZBUFFER            = 1 << 0  // Enable depth buffering
	G_SHADE              = 1 << 2  // Enable vertex shading
	G_CULL_FRONT         = 1 << 9  // Cull front-facing triangles
	G_CULL_BACK          = 1 << 10 // Cull back-facing triangles
	G_FOG                = 1 << 16 // Enable fog
	G_LIGHTING           = 1 << 17 // Enable lighting
	G_TEXTURE_GEN        = 1 << 18 // Generate texture coordinates
	G_TEXTURE_GEN_LINEAR = 1 << 19 // Linear texture coordinate generation
	G_SHADING_SMOOTH     = 1 << 21 // Gouraud (vs flat) shading
	G_CLIPPING           = 1 << 23 // Enable clipping
)

// Matrix command parameter bits
const (
	G_MTX_NOPUSH     = 0x00 // Replace the stack top in place
	G_MTX_PUSH       = 0x01 // Push the stack before applying
	G_MTX_MUL        = 0x00 // Multiply into the current matrix
	G_MTX_LOAD       = 0x02 // Load, replacing the current matrix
	G_MTX_MODELVIEW  = 0x00 // Target the modelview stack
	G_MTX_PROJECTION = 0x04 // Target the projection matrix
)

// Tile clamp/mirror bits (per axis, cms/cmt fields)
const (
	G_TX_WRAP   = 0 // Wrap the coordinate at the mask boundary
	G_TX_MIRROR = 1 // Mirror the coordinate at the mask boundary
	G_TX_CLAMP  = 2 // Clamp the coordinate to the tile bounds
)

// Other-mode low word bits consumed by the pipeline state mapping. The
// full render-mode word is shadowed verbatim; only these bits drive backend
// state, the rest belongs to the (external) combiner emulation.
const (
	Z_CMP    = 0x00000010 // Depth compare enabled
	Z_UPD    = 0x00000020 // Depth write enabled
	FORCE_BL = 0x00004000 // Framebuffer blend forced on
)

// Hardware capacities. These are mandated by the RCP and must not change:
// the command stream produced by unmodified game code assumes them.
const (
	RDP_TILE_COUNT         = 8  // Tile descriptor slots
	RDP_VERTEX_BUFFER_SIZE = 64 // Vertex buffer slots
	RDP_MATRIX_STACK_SIZE  = 32 // Modelview matrix stack depth
)

// Safety cap for display list interpretation. The stream has no length field,
// only the G_ENDDL sentinel, so a malformed list would otherwise loop forever.
// The legacy interpreter capped at 1000 commands; 4096 leaves headroom for
// legitimate long lists while still bounding runaway interpretation.
const RDP_MAX_DL_COMMANDS = 4096

// Triangle batch limits
const (
	RDP_MAX_BATCH_TRIANGLES = 4096 // Maximum triangles per flush
	RDP_MAX_BATCH_VERTICES  = RDP_MAX_BATCH_TRIANGLES * 3
)

// Backend vertex layout: x, y, z, s, t, r, g, b, a
const RDP_VERTEX_FLOATS = 9

// Fixed-point scale factors used by the command stream
const (
	RDP_POS_SCALE = 4.0     // Vertex positions are quarter units
	RDP_TEX_SCALE = 32.0    // Texture coordinates are 1/32 units
	RDP_MTX_SCALE = 65536.0 // Matrices are 16.16 fixed point
)

// Default output dimensions (NTSC framebuffer)
const (
	RDP_DEFAULT_WIDTH  = 320
	RDP_DEFAULT_HEIGHT = 240
)
