// rdp_convert_test.go - Fixed-point and texel format conversion tests

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

package main

import (
	"math"
	"testing"
)

// =============================================================================
// Vertex and Matrix Conversion Tests
// =============================================================================

func TestConvert_VertexPosition(t *testing.T) {
	cases := []struct {
		in   int16
		want float32
	}{
		{0, 0},
		{4, 1},
		{-4, -1},
		{100, 25},
		{2, 0.5},
		{-1, -0.25},
	}
	for _, c := range cases {
		if got := VertexPosToFloat(c.in); got != c.want {
			t.Errorf("VertexPosToFloat(%d) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestConvert_TextureCoordinate(t *testing.T) {
	cases := []struct {
		in   int16
		want float32
	}{
		{0, 0},
		{32, 1},
		{-32, -1},
		{16, 0.5},
		{992, 31},
	}
	for _, c := range cases {
		if got := VertexTexToFloat(c.in); got != c.want {
			t.Errorf("VertexTexToFloat(%d) = %g, want %g", c.in, got, c.want)
		}
	}
}

// Both position and texture scales are powers of two, so dividing and
// multiplying back is exact in float32: the round trip must reproduce
// every representable input.
func TestConvert_FixedPointRoundTrip(t *testing.T) {
	for i := -32768; i <= 32767; i++ {
		v := int16(i)
		if got := int16(VertexPosToFloat(v) * RDP_POS_SCALE); got != v {
			t.Fatalf("position %d round-tripped to %d", v, got)
		}
		if got := int16(VertexTexToFloat(v) * RDP_TEX_SCALE); got != v {
			t.Fatalf("texture coordinate %d round-tripped to %d", v, got)
		}
	}
}

func TestConvert_ColorChannel(t *testing.T) {
	if got := ColorByteToFloat(0); got != 0 {
		t.Errorf("ColorByteToFloat(0) = %g, want 0", got)
	}
	if got := ColorByteToFloat(255); got != 1 {
		t.Errorf("ColorByteToFloat(255) = %g, want 1", got)
	}
	if got := ColorByteToFloat(128); math.Abs(float64(got-128.0/255.0)) > 1e-6 {
		t.Errorf("ColorByteToFloat(128) = %g, want %g", got, 128.0/255.0)
	}
}

func TestConvert_MatrixFixedPoint(t *testing.T) {
	var m Mtx
	m[0][0] = 1 << 16      // 1.0
	m[1][1] = 3 << 15      // 1.5
	m[2][2] = -(2 << 16)   // -2.0
	m[3][0] = 1 << 8       // 1/256
	m[3][3] = 1 << 16

	f := MtxToFloat(&m)
	checks := []struct {
		idx  int
		want float32
	}{
		{0, 1.0},
		{5, 1.5},
		{10, -2.0},
		{12, 1.0 / 256.0},
		{15, 1.0},
		{1, 0},
	}
	for _, c := range checks {
		if f[c.idx] != c.want {
			t.Errorf("MtxToFloat element %d = %g, want %g", c.idx, f[c.idx], c.want)
		}
	}
}

// =============================================================================
// Texel Format Tests
// =============================================================================

func TestConvert_RGBA16Extremes(t *testing.T) {
	r, g, b, a := RGBA16ToRGBA32(0xFFFF)
	if r != 0xFF || g != 0xFF || b != 0xFF || a != 0xFF {
		t.Errorf("RGBA16(0xFFFF) = %d,%d,%d,%d, want 255,255,255,255", r, g, b, a)
	}

	r, g, b, a = RGBA16ToRGBA32(0x0000)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("RGBA16(0x0000) = %d,%d,%d,%d, want 0,0,0,0", r, g, b, a)
	}

	// Pure red, opaque: 11111 00000 00000 1
	r, g, b, a = RGBA16ToRGBA32(0xF801)
	if r != 0xFF || g != 0 || b != 0 || a != 0xFF {
		t.Errorf("RGBA16(0xF801) = %d,%d,%d,%d, want 255,0,0,255", r, g, b, a)
	}
}

// Expanding a 5-bit channel and truncating back must be lossless for every
// representable value, and 31 must map to a full 255.
func TestConvert_RGBA16ChannelRoundTrip(t *testing.T) {
	for v := uint16(0); v < 32; v++ {
		texel := v<<11 | v<<6 | v<<1
		r, g, b, _ := RGBA16ToRGBA32(texel)
		if r != g || g != b {
			t.Fatalf("channel %d expanded unevenly: %d,%d,%d", v, r, g, b)
		}
		if uint16(r>>3) != v {
			t.Errorf("channel %d did not round-trip: expanded to %d, truncates to %d", v, r, r>>3)
		}
	}
}

func TestConvert_IAFormats(t *testing.T) {
	r, g, b, a := IA16ToRGBA32(0x80FF)
	if r != 0x80 || g != 0x80 || b != 0x80 || a != 0xFF {
		t.Errorf("IA16(0x80FF) = %d,%d,%d,%d, want 128,128,128,255", r, g, b, a)
	}

	r, g, b, a = IA8ToRGBA32(0xF0)
	if r != 0xFF || g != 0xFF || b != 0xFF || a != 0 {
		t.Errorf("IA8(0xF0) = %d,%d,%d,%d, want 255,255,255,0", r, g, b, a)
	}

	// 3-bit intensity 7, alpha bit set
	r, g, b, a = IA4ToRGBA32(0x0F)
	if r != 0xFF || g != 0xFF || b != 0xFF || a != 0xFF {
		t.Errorf("IA4(0x0F) = %d,%d,%d,%d, want 255,255,255,255", r, g, b, a)
	}
	_, _, _, a = IA4ToRGBA32(0x0E)
	if a != 0 {
		t.Errorf("IA4(0x0E) alpha = %d, want 0", a)
	}
}

func TestConvert_IFormats(t *testing.T) {
	r, g, b, a := I8ToRGBA32(0x42)
	if r != 0x42 || g != 0x42 || b != 0x42 || a != 0xFF {
		t.Errorf("I8(0x42) = %d,%d,%d,%d, want 66,66,66,255", r, g, b, a)
	}

	r, _, _, a = I4ToRGBA32(0x0F)
	if r != 0xFF || a != 0xFF {
		t.Errorf("I4(0x0F) = %d alpha %d, want 255 alpha 255", r, a)
	}
}

// =============================================================================
// DecodeTexture Tests
// =============================================================================

func TestConvert_DecodeRGBA16(t *testing.T) {
	// Two texels, big-endian: white opaque then black transparent
	src := []byte{0xFF, 0xFF, 0x00, 0x00}
	pix, gap := DecodeTexture(G_IM_FMT_RGBA, G_IM_SIZ_16b, src, 2)
	if gap {
		t.Fatal("RGBA16 decode reported a capability gap")
	}
	if len(pix) != 8 {
		t.Fatalf("expected 8 bytes of RGBA32, got %d", len(pix))
	}
	if pix[0] != 0xFF || pix[1] != 0xFF || pix[2] != 0xFF || pix[3] != 0xFF {
		t.Errorf("texel 0 = %v, want white opaque", pix[0:4])
	}
	if pix[4] != 0 || pix[7] != 0 {
		t.Errorf("texel 1 = %v, want black transparent", pix[4:8])
	}
}

func TestConvert_DecodeIA4PairOrder(t *testing.T) {
	// One byte holds two texels, upper nibble first: intensity 7 opaque,
	// then intensity 0 transparent.
	src := []byte{0xF0}
	pix, _ := DecodeTexture(G_IM_FMT_IA, G_IM_SIZ_4b, src, 2)
	if pix[0] != 0xFF || pix[3] != 0xFF {
		t.Errorf("first nibble decoded to %v, want white opaque", pix[0:4])
	}
	if pix[4] != 0 || pix[7] != 0 {
		t.Errorf("second nibble decoded to %v, want black transparent", pix[4:8])
	}
}

// One texel through each intensity-family arm of the decoder, against the
// values the scalar converters produce.
func TestConvert_DecodeIntensityFormats(t *testing.T) {
	cases := []struct {
		format uint8
		size   uint8
		src    []byte
		want   [4]byte
	}{
		{G_IM_FMT_IA, G_IM_SIZ_16b, []byte{0x80, 0xFF}, [4]byte{0x80, 0x80, 0x80, 0xFF}},
		{G_IM_FMT_IA, G_IM_SIZ_8b, []byte{0xF0}, [4]byte{0xFF, 0xFF, 0xFF, 0x00}},
		{G_IM_FMT_I, G_IM_SIZ_8b, []byte{0x42}, [4]byte{0x42, 0x42, 0x42, 0xFF}},
		{G_IM_FMT_I, G_IM_SIZ_4b, []byte{0xF0}, [4]byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, c := range cases {
		pix, gap := DecodeTexture(c.format, c.size, c.src, 1)
		if gap {
			t.Errorf("format %d/%d decode reported a capability gap", c.format, c.size)
		}
		if got := [4]byte{pix[0], pix[1], pix[2], pix[3]}; got != c.want {
			t.Errorf("format %d/%d texel = %v, want %v", c.format, c.size, got, c.want)
		}
	}
}

func TestConvert_DecodeUnsupportedIsMagenta(t *testing.T) {
	pix, gap := DecodeTexture(G_IM_FMT_CI, G_IM_SIZ_8b, []byte{1, 2, 3, 4}, 4)
	if !gap {
		t.Error("color-indexed decode did not report a capability gap")
	}
	for i := 0; i < 4; i++ {
		if pix[i*4] != 0xFF || pix[i*4+1] != 0x00 || pix[i*4+2] != 0xFF || pix[i*4+3] != 0xFF {
			t.Fatalf("texel %d = %v, want magenta placeholder", i, pix[i*4:i*4+4])
		}
	}
}

func TestConvert_DecodeShortSourceIsMagenta(t *testing.T) {
	// Four texels requested, only one texel of source data
	src := []byte{0xFF, 0xFF}
	pix, gap := DecodeTexture(G_IM_FMT_RGBA, G_IM_SIZ_16b, src, 4)
	if gap {
		t.Fatal("short source must not report a capability gap")
	}
	if pix[0] != 0xFF || pix[1] != 0xFF || pix[2] != 0xFF {
		t.Errorf("texel 0 = %v, want decoded white", pix[0:4])
	}
	for i := 1; i < 4; i++ {
		if pix[i*4] != 0xFF || pix[i*4+1] != 0x00 || pix[i*4+2] != 0xFF {
			t.Fatalf("out-of-source texel %d = %v, want magenta", i, pix[i*4:i*4+4])
		}
	}
}
