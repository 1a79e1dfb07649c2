// rdp_batch_test.go - Vertex batching engine tests

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

import "testing"

func newTestBatch(t *testing.T) (*VertexBatch, *RecordingBackend) {
	t.Helper()
	rec := NewRecordingBackend()
	if err := rec.Init(RDP_DEFAULT_WIDTH, RDP_DEFAULT_HEIGHT); err != nil {
		t.Fatalf("recording backend Init failed: %v", err)
	}
	batch, err := NewVertexBatch(rec)
	if err != nil {
		t.Fatalf("NewVertexBatch failed: %v", err)
	}
	return batch, rec
}

func testTriangle(x float32) (BatchVertex, BatchVertex, BatchVertex) {
	return BatchVertex{X: x, Y: 0, A: 1},
		BatchVertex{X: x + 1, Y: 0, A: 1},
		BatchVertex{X: x, Y: 1, A: 1}
}

// =============================================================================
// Flush Boundary Tests
// =============================================================================

func TestBatch_EmptyFlushIsNoop(t *testing.T) {
	batch, rec := newTestBatch(t)
	defer batch.Destroy()

	batch.Flush()
	batch.Flush()
	if rec.DrawCalls != 0 {
		t.Errorf("empty flush issued %d draw calls, want 0", rec.DrawCalls)
	}
	if batch.FlushCount() != 0 {
		t.Errorf("empty flush counted as %d flushes, want 0", batch.FlushCount())
	}
}

func TestBatch_FlushDrawsAndResets(t *testing.T) {
	batch, rec := newTestBatch(t)
	defer batch.Destroy()

	batch.AddConverted(testTriangle(0))
	batch.AddConverted(testTriangle(10))
	if batch.VertexCount() != 6 || batch.TriangleCount() != 2 {
		t.Fatalf("pending %d vertices / %d triangles, want 6 / 2", batch.VertexCount(), batch.TriangleCount())
	}

	batch.Flush()
	if rec.DrawCalls != 1 {
		t.Fatalf("flush issued %d draw calls, want 1", rec.DrawCalls)
	}
	if rec.DrawCounts[0] != 6 {
		t.Errorf("draw covered %d vertices, want 6", rec.DrawCounts[0])
	}
	if batch.VertexCount() != 0 || batch.TriangleCount() != 0 {
		t.Errorf("counters not reset after flush: %d vertices / %d triangles",
			batch.VertexCount(), batch.TriangleCount())
	}
	if len(rec.LastVertexData) != 6*RDP_VERTEX_FLOATS {
		t.Errorf("uploaded %d floats, want %d", len(rec.LastVertexData), 6*RDP_VERTEX_FLOATS)
	}
}

func TestBatch_VertexCountMultipleOfThree(t *testing.T) {
	batch, rec := newTestBatch(t)
	defer batch.Destroy()

	for i := 0; i < 100; i++ {
		batch.AddConverted(testTriangle(float32(i)))
		if batch.VertexCount()%3 != 0 {
			t.Fatalf("vertex count %d not a multiple of 3 after triangle %d", batch.VertexCount(), i)
		}
	}
	batch.Flush()
	for _, count := range rec.DrawCounts {
		if count%3 != 0 {
			t.Errorf("draw call with %d vertices, not a multiple of 3", count)
		}
	}
}

// =============================================================================
// Capacity Tests
// =============================================================================

func TestBatch_ExactCapacityDoesNotFlush(t *testing.T) {
	batch, rec := newTestBatch(t)
	defer batch.Destroy()

	for i := 0; i < RDP_MAX_BATCH_TRIANGLES; i++ {
		batch.AddConverted(testTriangle(float32(i)))
	}
	if rec.DrawCalls != 0 {
		t.Errorf("filling to exact capacity issued %d draw calls, want 0", rec.DrawCalls)
	}
	if batch.VertexCount() != RDP_MAX_BATCH_VERTICES {
		t.Errorf("pending %d vertices, want %d", batch.VertexCount(), RDP_MAX_BATCH_VERTICES)
	}
}

func TestBatch_OverflowFlushesFullBatchFirst(t *testing.T) {
	batch, rec := newTestBatch(t)
	defer batch.Destroy()

	for i := 0; i < RDP_MAX_BATCH_TRIANGLES+1; i++ {
		batch.AddConverted(testTriangle(float32(i)))
	}
	if rec.DrawCalls != 1 {
		t.Fatalf("overflow issued %d draw calls, want exactly 1", rec.DrawCalls)
	}
	if rec.DrawCounts[0] != RDP_MAX_BATCH_VERTICES {
		t.Errorf("overflow flush drew %d vertices, want %d", rec.DrawCounts[0], RDP_MAX_BATCH_VERTICES)
	}
	if batch.VertexCount() != 3 {
		t.Errorf("overflowing triangle left %d vertices pending, want 3", batch.VertexCount())
	}
}

// =============================================================================
// Buffer Reuse and Prepare Hook Tests
// =============================================================================

func TestBatch_BackendBufferIsReused(t *testing.T) {
	batch, rec := newTestBatch(t)
	defer batch.Destroy()

	countCreates := func() int {
		creates := 0
		for _, call := range rec.Calls {
			if call.Op == "CreateBuffer" {
				creates++
			}
		}
		return creates
	}
	if got := countCreates(); got != 1 {
		t.Fatalf("batch created %d buffers at init, want 1", got)
	}

	for frame := 0; frame < 5; frame++ {
		batch.AddConverted(testTriangle(float32(frame)))
		batch.Flush()
	}
	if got := countCreates(); got != 1 {
		t.Fatalf("batch recreated its buffer across flushes: %d creates", got)
	}
	if batch.FlushCount() != 5 {
		t.Errorf("counted %d flushes, want 5", batch.FlushCount())
	}
}

func TestBatch_PrepareRunsBeforeEveryDraw(t *testing.T) {
	batch, rec := newTestBatch(t)
	defer batch.Destroy()

	prepared := 0
	batch.prepare = func() {
		prepared++
		if batch.VertexCount() == 0 {
			t.Error("prepare hook ran with an empty batch")
		}
	}

	batch.AddConverted(testTriangle(0))
	batch.Flush()
	batch.Flush() // empty, must not prepare
	if prepared != 1 {
		t.Errorf("prepare hook ran %d times, want 1", prepared)
	}
	if rec.DrawCalls != 1 {
		t.Errorf("draw calls %d, want 1", rec.DrawCalls)
	}
}
