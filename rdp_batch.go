// rdp_batch.go - Triangle Accumulation and Draw Call Batching

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
rdp_batch.go - Vertex Batching Engine

Decoded triangles are accumulated into one growable-in-place float buffer
and submitted to the backend as a single draw call. The backing GPU buffer
is created once and reused across flushes; a flush uploads the accumulated
vertex data, applies pipeline state through the prepare hook, issues one
draw and resets the counters. Appending a triangle that would overflow the
fixed capacity first flushes the existing batch, so triangle order is
preserved and vertex count stays a multiple of three at every boundary.
*/

package main

import "fmt"

// BatchVertex is one backend-ready vertex: position, texture coordinates
// and color, all converted to float.
type BatchVertex struct {
	X, Y, Z    float32
	S, T       float32
	R, G, B, A float32
}

// VertexBatch accumulates converted triangles between flushes.
type VertexBatch struct {
	backend  RenderBackend
	bufferID int

	data        []float32 // vertexCount * RDP_VERTEX_FLOATS valid floats
	vertexCount int
	triCount    int
	flushCount  uint64

	// prepare is invoked at the start of every non-empty flush, before the
	// draw is submitted. The engine hooks pipeline state and uniform
	// updates here so auto-flushes behave exactly like frame flushes.
	prepare func()
}

// NewVertexBatch creates the batch and its single reusable backend buffer.
func NewVertexBatch(backend RenderBackend) (*VertexBatch, error) {
	id, err := backend.CreateBuffer()
	if err != nil {
		return nil, &RenderError{Operation: "batch init", Details: "vertex buffer creation", Err: err}
	}
	backend.SetVertexLayout(RDP_VERTEX_FLOATS)
	return &VertexBatch{
		backend:  backend,
		bufferID: id,
		data:     make([]float32, 0, RDP_MAX_BATCH_VERTICES*RDP_VERTEX_FLOATS),
	}, nil
}

// convertVertex applies the fixed-point contracts to one buffered vertex.
func convertVertex(v *Vtx) BatchVertex {
	return BatchVertex{
		X: VertexPosToFloat(v.X),
		Y: VertexPosToFloat(v.Y),
		Z: VertexPosToFloat(v.Z),
		S: VertexTexToFloat(v.S),
		T: VertexTexToFloat(v.T),
		R: ColorByteToFloat(v.R),
		G: ColorByteToFloat(v.G),
		B: ColorByteToFloat(v.B),
		A: ColorByteToFloat(v.A),
	}
}

// AddTriangle fetches three vertex buffer slots, converts them and appends
// one triangle. Index validation against the loaded count is the
// dispatcher's job; slot bounds are still enforced here.
func (b *VertexBatch) AddTriangle(vb *[RDP_VERTEX_BUFFER_SIZE]Vtx, i0, i1, i2 uint8) error {
	for _, i := range [3]uint8{i0, i1, i2} {
		if int(i) >= RDP_VERTEX_BUFFER_SIZE {
			return fmt.Errorf("vertex slot %d out of range", i)
		}
	}
	b.AddConverted(convertVertex(&vb[i0]), convertVertex(&vb[i1]), convertVertex(&vb[i2]))
	return nil
}

// AddConverted appends one already-converted triangle, flushing first when
// the triangle would overflow the batch capacity.
func (b *VertexBatch) AddConverted(v0, v1, v2 BatchVertex) {
	if b.vertexCount+3 > RDP_MAX_BATCH_VERTICES {
		b.Flush()
	}
	b.appendVertex(v0)
	b.appendVertex(v1)
	b.appendVertex(v2)
	b.triCount++
}

func (b *VertexBatch) appendVertex(v BatchVertex) {
	b.data = append(b.data,
		v.X, v.Y, v.Z,
		v.S, v.T,
		v.R, v.G, v.B, v.A)
	b.vertexCount++
}

// Flush uploads the accumulated vertices and issues one draw call. A flush
// of an empty batch is a no-op. The backend buffer is reused, never
// reallocated.
func (b *VertexBatch) Flush() {
	if b.vertexCount == 0 {
		return
	}
	if b.prepare != nil {
		b.prepare()
	}
	if err := b.backend.UpdateBuffer(b.bufferID, b.data); err != nil {
		fmt.Printf("[RDP] batch upload failed, dropping %d triangles: %v\n", b.triCount, err)
	} else {
		b.backend.BindBuffer(b.bufferID)
		b.backend.Draw(0, b.vertexCount)
	}
	b.data = b.data[:0]
	b.vertexCount = 0
	b.triCount = 0
	b.flushCount++
}

// VertexCount returns the number of vertices pending in the batch.
func (b *VertexBatch) VertexCount() int { return b.vertexCount }

// TriangleCount returns the number of triangles pending in the batch.
func (b *VertexBatch) TriangleCount() int { return b.triCount }

// FlushCount returns the number of non-empty flushes since creation.
func (b *VertexBatch) FlushCount() uint64 { return b.flushCount }

// Destroy releases the backend buffer.
func (b *VertexBatch) Destroy() {
	if b.backend != nil {
		b.backend.DestroyBuffer(b.bufferID)
		b.backend = nil
	}
}
