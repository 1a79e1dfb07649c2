// rdp_backend_software.go - Software Rasterizer Render Backend

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
rdp_backend_software.go - Software Reference Backend

A pure Go implementation of the render backend capability set. It keeps
vertex buffers in memory and rasterizes each Draw call into an RGBA
framebuffer with a scanline edge-function walk: Gouraud or flat shading,
depth test, scissor clipping, alpha blending and point-sampled texturing
with modulate combine. It exists so the translation layer runs end to end
without a GPU and so the demo has something to put on screen; a
GPU-accelerated backend would implement the same interface.

Vertices arrive in the batch layout (x, y, z, s, t, r, g, b, a). Positions
are transformed by the projection and modelview uniforms; a resulting W
other than 1 triggers a perspective divide and NDC-to-screen mapping,
otherwise coordinates are taken as screen space.
*/

package main

import "math"

// SoftwareBackend implements RenderBackend by rasterizing on the CPU.
type SoftwareBackend struct {
	width, height int

	colorBuffer []byte
	depthBuffer []float32

	buffers     map[int][]float32
	nextBuffer  int
	boundBuffer int
	layout      int

	state      RenderState
	projection [16]float32
	modelView  [16]float32

	textureData    []byte
	textureWidth   int
	textureHeight  int
	textureEnabled bool
	textureClampS  bool
	textureClampT  bool
}

// NewSoftwareBackend creates an uninitialized software backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{
		buffers:    make(map[int][]float32),
		projection: identityMatrix(),
		modelView:  identityMatrix(),
		layout:     RDP_VERTEX_FLOATS,
	}
}

func (b *SoftwareBackend) Init(width, height int) error {
	b.width = width
	b.height = height
	b.colorBuffer = make([]byte, width*height*4)
	b.depthBuffer = make([]float32, width*height)
	b.state.Scissor = Rect{0, 0, width, height}
	b.ClearFrame(0, 0, 0, 0xFF)
	return nil
}

func (b *SoftwareBackend) Destroy() {
	b.colorBuffer = nil
	b.depthBuffer = nil
	b.buffers = nil
}

func (b *SoftwareBackend) CreateBuffer() (int, error) {
	b.nextBuffer++
	b.buffers[b.nextBuffer] = nil
	return b.nextBuffer, nil
}

func (b *SoftwareBackend) UpdateBuffer(id int, data []float32) error {
	if _, ok := b.buffers[id]; !ok {
		return &RenderError{Operation: "update buffer", Details: "unknown buffer id"}
	}
	b.buffers[id] = append(b.buffers[id][:0], data...)
	return nil
}

func (b *SoftwareBackend) DestroyBuffer(id int) {
	delete(b.buffers, id)
}

func (b *SoftwareBackend) BindBuffer(id int) {
	b.boundBuffer = id
}

func (b *SoftwareBackend) SetVertexLayout(floatsPerVertex int) {
	b.layout = floatsPerVertex
}

func (b *SoftwareBackend) SetRenderState(state RenderState) {
	b.state = state
}

func (b *SoftwareBackend) SetUniformInt(name string, v int) {}

func (b *SoftwareBackend) SetUniformFloat(name string, v float32) {}

func (b *SoftwareBackend) SetUniformVec2(name string, x, y float32) {}

func (b *SoftwareBackend) SetUniformVec3(name string, x, y, z float32) {}

func (b *SoftwareBackend) SetUniformVec4(name string, x, y, z, w float32) {}

func (b *SoftwareBackend) SetUniformMat4(name string, m [16]float32) {
	switch name {
	case "uProjection":
		b.projection = m
	case "uModelView":
		b.modelView = m
	}
}

// Texture capability

func (b *SoftwareBackend) SetTextureData(width, height int, pix []byte) {
	b.textureWidth = width
	b.textureHeight = height
	b.textureData = append(b.textureData[:0], pix...)
}

func (b *SoftwareBackend) SetTextureEnabled(enabled bool) {
	b.textureEnabled = enabled
}

func (b *SoftwareBackend) SetTextureWrapMode(clampS, clampT bool) {
	b.textureClampS = clampS
	b.textureClampT = clampT
}

// Frame capability

func (b *SoftwareBackend) GetFrame() []byte {
	return b.colorBuffer
}

func (b *SoftwareBackend) ClearFrame(r, g, bl, a uint8) {
	for i := 0; i < len(b.colorBuffer); i += 4 {
		b.colorBuffer[i+0] = r
		b.colorBuffer[i+1] = g
		b.colorBuffer[i+2] = bl
		b.colorBuffer[i+3] = a
	}
	for i := range b.depthBuffer {
		b.depthBuffer[i] = math.MaxFloat32
	}
}

// swVertex is one vertex after buffer unpacking and transform.
type swVertex struct {
	X, Y, Z    float32
	S, T       float32
	R, G, B, A float32
}

// Draw rasterizes count vertices from the bound buffer as triangles.
func (b *SoftwareBackend) Draw(first, count int) {
	data := b.buffers[b.boundBuffer]
	stride := b.layout
	if stride <= 0 || b.colorBuffer == nil {
		return
	}
	for tri := 0; tri+3 <= count; tri += 3 {
		base := (first + tri) * stride
		if base+3*stride > len(data) {
			return
		}
		v0 := b.unpackVertex(data[base : base+stride])
		v1 := b.unpackVertex(data[base+stride : base+2*stride])
		v2 := b.unpackVertex(data[base+2*stride : base+3*stride])
		b.rasterizeTriangle(&v0, &v1, &v2)
	}
}

func (b *SoftwareBackend) unpackVertex(f []float32) swVertex {
	v := swVertex{
		X: f[0], Y: f[1], Z: f[2],
		S: f[3], T: f[4],
		R: f[5], G: f[6], B: f[7], A: f[8],
	}
	x, y, z, w := transformPoint(&b.projection, &b.modelView, v.X, v.Y, v.Z)
	if w != 0 && math.Abs(float64(w-1)) > 1e-6 {
		// Clip space: divide and map NDC to the framebuffer
		x /= w
		y /= w
		z /= w
		x = (x + 1) * 0.5 * float32(b.width)
		y = (1 - y) * 0.5 * float32(b.height)
	}
	v.X, v.Y, v.Z = x, y, z
	return v
}

// transformPoint applies modelview then projection to a point.
func transformPoint(proj, mv *[16]float32, x, y, z float32) (float32, float32, float32, float32) {
	mvp := matrixMul(mv, proj)
	ox := x*mvp[0] + y*mvp[4] + z*mvp[8] + mvp[12]
	oy := x*mvp[1] + y*mvp[5] + z*mvp[9] + mvp[13]
	oz := x*mvp[2] + y*mvp[6] + z*mvp[10] + mvp[14]
	ow := x*mvp[3] + y*mvp[7] + z*mvp[11] + mvp[15]
	return ox, oy, oz, ow
}

// sampleTexture point-samples the current texture at the given coordinates,
// in texels, honoring the wrap mode.
func (b *SoftwareBackend) sampleTexture(s, t float32) (r, g, bl, a float32) {
	if b.textureData == nil || b.textureWidth == 0 || b.textureHeight == 0 {
		return 1, 1, 1, 1
	}

	u := s / float32(b.textureWidth)
	v := t / float32(b.textureHeight)

	if b.textureClampS {
		u = clampf(u, 0, 1)
	} else {
		u = u - float32(math.Floor(float64(u)))
	}
	if b.textureClampT {
		v = clampf(v, 0, 1)
	} else {
		v = v - float32(math.Floor(float64(v)))
	}

	texX := int(u * float32(b.textureWidth))
	texY := int(v * float32(b.textureHeight))
	if texX >= b.textureWidth {
		texX = b.textureWidth - 1
	}
	if texY >= b.textureHeight {
		texY = b.textureHeight - 1
	}

	idx := (texY*b.textureWidth + texX) * 4
	if idx+3 >= len(b.textureData) {
		return 1, 1, 1, 1
	}
	return float32(b.textureData[idx+0]) / 255.0,
		float32(b.textureData[idx+1]) / 255.0,
		float32(b.textureData[idx+2]) / 255.0,
		float32(b.textureData[idx+3]) / 255.0
}

// rasterizeTriangle walks the bounding box with edge functions and writes
// shaded pixels.
func (b *SoftwareBackend) rasterizeTriangle(v0, v1, v2 *swVertex) {
	minX := int(math.Floor(float64(min3f(v0.X, v1.X, v2.X))))
	maxX := int(math.Ceil(float64(max3f(v0.X, v1.X, v2.X))))
	minY := int(math.Floor(float64(min3f(v0.Y, v1.Y, v2.Y))))
	maxY := int(math.Ceil(float64(max3f(v0.Y, v1.Y, v2.Y))))

	sc := b.state.Scissor
	if minX < sc.ULX {
		minX = sc.ULX
	}
	if minY < sc.ULY {
		minY = sc.ULY
	}
	if maxX > sc.LRX {
		maxX = sc.LRX
	}
	if maxY > sc.LRY {
		maxY = sc.LRY
	}
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > b.width {
		maxX = b.width
	}
	if maxY > b.height {
		maxY = b.height
	}

	area := edgeFunction(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if area == 0 {
		return
	}
	// Flat shading takes the first submitted vertex, not whichever vertex
	// the winding fixup below leaves in front.
	flat := *v0
	if area < 0 {
		if b.state.CullBack {
			return
		}
		v0, v2 = v2, v0
		area = -area
	} else if b.state.CullFront {
		return
	}
	invArea := 1.0 / area

	textured := b.textureEnabled && b.state.TextureEnabled

	for y := minY; y < maxY; y++ {
		rowBase := y * b.width
		py := float32(y) + 0.5

		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5

			w0 := edgeFunction(v1.X, v1.Y, v2.X, v2.Y, px, py)
			w1 := edgeFunction(v2.X, v2.Y, v0.X, v0.Y, px, py)
			w2 := edgeFunction(v0.X, v0.Y, v1.X, v1.Y, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			w0 *= invArea
			w1 *= invArea
			w2 *= invArea

			z := w0*v0.Z + w1*v1.Z + w2*v2.Z
			pixelIndex := rowBase + x
			if b.state.DepthTest && z > b.depthBuffer[pixelIndex] {
				continue
			}

			var r, g, bl, a float32
			if b.state.SmoothShading {
				r = w0*v0.R + w1*v1.R + w2*v2.R
				g = w0*v0.G + w1*v1.G + w2*v2.G
				bl = w0*v0.B + w1*v1.B + w2*v2.B
				a = w0*v0.A + w1*v1.A + w2*v2.A
			} else {
				r, g, bl, a = flat.R, flat.G, flat.B, flat.A
			}

			if textured {
				s := w0*v0.S + w1*v1.S + w2*v2.S
				t := w0*v0.T + w1*v1.T + w2*v2.T
				texR, texG, texB, texA := b.sampleTexture(s, t)
				// Modulate combine
				r *= texR
				g *= texG
				bl *= texB
				a *= texA
			}

			r = clampf(r, 0, 1)
			g = clampf(g, 0, 1)
			bl = clampf(bl, 0, 1)
			a = clampf(a, 0, 1)

			bufIdx := pixelIndex * 4
			if b.state.AlphaBlend {
				inv := 1 - a
				r = r*a + float32(b.colorBuffer[bufIdx+0])/255.0*inv
				g = g*a + float32(b.colorBuffer[bufIdx+1])/255.0*inv
				bl = bl*a + float32(b.colorBuffer[bufIdx+2])/255.0*inv
				a = 1
			}

			b.colorBuffer[bufIdx+0] = uint8(r * 255)
			b.colorBuffer[bufIdx+1] = uint8(g * 255)
			b.colorBuffer[bufIdx+2] = uint8(bl * 255)
			b.colorBuffer[bufIdx+3] = uint8(a * 255)

			if b.state.DepthWrite {
				b.depthBuffer[pixelIndex] = z
			}
		}
	}
}

// edgeFunction computes the signed parallelogram area of (a, b, p).
func edgeFunction(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3f(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3f(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
