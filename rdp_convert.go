// rdp_convert.go - Fixed-Point and Texel Format Conversion

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
rdp_convert.go - Format Converters

Pure, stateless conversions between the RCP's fixed-point/packed
representations and the float/byte representations the backend consumes:

- Vertex positions: s13.2 quarter units, divide by 4
- Texture coordinates: s10.5, divide by 32
- Colors: byte / 255
- Matrices: 16.16, divide by 65536
- Texels: RGBA16 (5551), IA16, IA8, IA4, I8, I4 expanded to RGBA32

Color-indexed and YUV textures need external palette/colorspace tables and
are reported as capability gaps. Any other unrecognized format/size pair
decodes to solid magenta so bad data shows up on screen instead of reading
out of bounds.
*/

package main

// VertexPosToFloat converts an s13.2 quarter-unit position field.
func VertexPosToFloat(v int16) float32 {
	return float32(v) / RDP_POS_SCALE
}

// VertexTexToFloat converts an s10.5 texture coordinate field.
func VertexTexToFloat(v int16) float32 {
	return float32(v) / RDP_TEX_SCALE
}

// ColorByteToFloat converts an 8-bit color channel to the 0.0-1.0 range.
func ColorByteToFloat(v uint8) float32 {
	return float32(v) / 255.0
}

// MtxToFloat converts a 16.16 fixed-point matrix to row-major floats.
func MtxToFloat(m *Mtx) [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = float32(m[r][c]) / RDP_MTX_SCALE
		}
	}
	return out
}

// expand5to8 widens a 5-bit channel to 8 bits, replicating the top bits
// into the low bits so 0x1F maps to 0xFF.
func expand5to8(v uint8) uint8 {
	return (v << 3) | (v >> 2)
}

// expand4to8 widens a 4-bit channel to 8 bits.
func expand4to8(v uint8) uint8 {
	return (v << 4) | v
}

// expand3to8 widens a 3-bit channel to 8 bits.
func expand3to8(v uint8) uint8 {
	return (v << 5) | (v << 2) | (v >> 1)
}

// RGBA16ToRGBA32 expands one 5-5-5-1 texel to four 8-bit channels.
func RGBA16ToRGBA32(texel uint16) (r, g, b, a uint8) {
	r = expand5to8(uint8(texel >> 11 & 0x1F))
	g = expand5to8(uint8(texel >> 6 & 0x1F))
	b = expand5to8(uint8(texel >> 1 & 0x1F))
	if texel&1 != 0 {
		a = 0xFF
	}
	return
}

// IA16ToRGBA32 expands an intensity/alpha byte pair.
func IA16ToRGBA32(texel uint16) (r, g, b, a uint8) {
	i := uint8(texel >> 8)
	return i, i, i, uint8(texel)
}

// IA8ToRGBA32 expands a 4-bit intensity / 4-bit alpha texel.
func IA8ToRGBA32(texel uint8) (r, g, b, a uint8) {
	i := expand4to8(texel >> 4)
	return i, i, i, expand4to8(texel & 0x0F)
}

// IA4ToRGBA32 expands a 3-bit intensity / 1-bit alpha nibble.
func IA4ToRGBA32(nibble uint8) (r, g, b, a uint8) {
	i := expand3to8(nibble >> 1)
	if nibble&1 != 0 {
		a = 0xFF
	}
	return i, i, i, a
}

// I8ToRGBA32 replicates an 8-bit intensity with full alpha.
func I8ToRGBA32(texel uint8) (r, g, b, a uint8) {
	return texel, texel, texel, 0xFF
}

// I4ToRGBA32 replicates an expanded 4-bit intensity with full alpha.
func I4ToRGBA32(nibble uint8) (r, g, b, a uint8) {
	i := expand4to8(nibble & 0x0F)
	return i, i, i, 0xFF
}

const (
	diagR = 0xFF
	diagG = 0x00
	diagB = 0xFF
)

// DecodeTexture converts count texels of the given format/size pair from src
// into a freshly allocated RGBA32 buffer. The gap return is true for formats
// this layer knowingly cannot decode (color-indexed, YUV); those and any
// unrecognized pair fill with diagnostic magenta. Reads past the end of src
// produce magenta texels instead of faulting.
func DecodeTexture(format, size uint8, src []byte, count int) (pix []byte, gap bool) {
	pix = make([]byte, count*4)

	put := func(idx int, r, g, b, a uint8) {
		pix[idx*4+0] = r
		pix[idx*4+1] = g
		pix[idx*4+2] = b
		pix[idx*4+3] = a
	}
	magenta := func(from int) {
		for i := from; i < count; i++ {
			put(i, diagR, diagG, diagB, 0xFF)
		}
	}

	switch {
	case format == G_IM_FMT_RGBA && size == G_IM_SIZ_16b:
		for i := 0; i < count; i++ {
			if i*2+1 >= len(src) {
				magenta(i)
				return pix, false
			}
			texel := uint16(src[i*2])<<8 | uint16(src[i*2+1])
			r, g, b, a := RGBA16ToRGBA32(texel)
			put(i, r, g, b, a)
		}
	case format == G_IM_FMT_RGBA && size == G_IM_SIZ_32b:
		for i := 0; i < count; i++ {
			if i*4+3 >= len(src) {
				magenta(i)
				return pix, false
			}
			put(i, src[i*4], src[i*4+1], src[i*4+2], src[i*4+3])
		}
	case format == G_IM_FMT_IA && size == G_IM_SIZ_16b:
		for i := 0; i < count; i++ {
			if i*2+1 >= len(src) {
				magenta(i)
				return pix, false
			}
			texel := uint16(src[i*2])<<8 | uint16(src[i*2+1])
			r, g, b, a := IA16ToRGBA32(texel)
			put(i, r, g, b, a)
		}
	case format == G_IM_FMT_IA && size == G_IM_SIZ_8b:
		for i := 0; i < count; i++ {
			if i >= len(src) {
				magenta(i)
				return pix, false
			}
			r, g, b, a := IA8ToRGBA32(src[i])
			put(i, r, g, b, a)
		}
	case format == G_IM_FMT_IA && size == G_IM_SIZ_4b:
		for i := 0; i < count; i++ {
			if i/2 >= len(src) {
				magenta(i)
				return pix, false
			}
			// Two texels per byte, upper nibble first
			nib := src[i/2]
			if i%2 == 0 {
				nib >>= 4
			}
			r, g, b, a := IA4ToRGBA32(nib & 0x0F)
			put(i, r, g, b, a)
		}
	case format == G_IM_FMT_I && size == G_IM_SIZ_8b:
		for i := 0; i < count; i++ {
			if i >= len(src) {
				magenta(i)
				return pix, false
			}
			r, g, b, a := I8ToRGBA32(src[i])
			put(i, r, g, b, a)
		}
	case format == G_IM_FMT_I && size == G_IM_SIZ_4b:
		for i := 0; i < count; i++ {
			if i/2 >= len(src) {
				magenta(i)
				return pix, false
			}
			nib := src[i/2]
			if i%2 == 0 {
				nib >>= 4
			}
			r, g, b, a := I4ToRGBA32(nib & 0x0F)
			put(i, r, g, b, a)
		}
	case format == G_IM_FMT_CI, format == G_IM_FMT_YUV:
		// Known capability gap: needs palette / colorspace tables
		magenta(0)
		return pix, true
	default:
		magenta(0)
	}
	return pix, false
}
