// main.go - Intuition Ultra entry point and demo display list

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
	"flag"
	"fmt"
	"io"
	"math"
	"os"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████\033[0m\n\033[38;2;255;50;147m▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀\033[0m\n\033[38;2;255;80;147m▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███\033[0m\n\033[38;2;255;110;147m░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄\033[0m\n\033[38;2;255;140;147m░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒\033[0m\n\033[38;2;255;170;147m░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░\033[0m\n\033[38;2;255;200;147m ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░\033[0m\n\033[38;2;255;230;147m ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░\033[0m\n\033[38;2;255;255;147m ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░\033[0m")
	fmt.Println("\nA display list translation layer bridging classic console GPU commands to modern rendering backends.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionUltra")
	fmt.Println("Buy me a coffee: https://ko-fi.com/intuition/tip")
	fmt.Println("License: GPLv3 or later")
}

// mtxFromFloat packs a float matrix into the 16.16 fixed-point wire format.
func mtxFromFloat(f [16]float32) Mtx {
	var m Mtx
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[row][col] = int32(f[row*4+col] * 65536.0)
		}
	}
	return m
}

// spinMatrix rotates by angle radians around the screen-space point (cx, cy).
// The w column stays untouched so rotated vertices remain screen coordinates.
func spinMatrix(angle float64, cx, cy float32) Mtx {
	sin := float32(math.Sin(angle))
	cos := float32(math.Cos(angle))
	return mtxFromFloat([16]float32{
		cos, sin, 0, 0,
		-sin, cos, 0, 0,
		0, 0, 1, 0,
		cx - cx*cos + cy*sin, cy - cx*sin - cy*cos, 0, 1,
	})
}

// checkerTexture builds a width x height RGBA16 checkerboard in the
// big-endian byte order of texture memory.
func checkerTexture(width, height int) []byte {
	data := make([]byte, width*height*2)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var texel uint16
			if (x/4+y/4)%2 == 0 {
				texel = 0xFFFF // White, opaque
			} else {
				texel = 0x07C1 // Pure green 5-5-5-1, opaque
			}
			i := (y*width + x) * 2
			data[i] = byte(texel >> 8)
			data[i+1] = byte(texel)
		}
	}
	return data
}

// quarter converts a screen coordinate to s13.2 vertex units.
func quarter(v int) int16 { return int16(v * 4) }

// texel32 converts a texel coordinate to s10.5 texture units.
func texel32(v int) int16 { return int16(v * 32) }

// demoTextureList loads the checkerboard into tile 0. Called once through
// G_DL so the sub-list walk gets exercised every frame.
func demoTextureList(texture []byte) []GfxCommand {
	return []GfxCommand{
		GsDPSetTextureImage(G_IM_FMT_RGBA, G_IM_SIZ_16b, 32, texture),
		GsDPSetTile(G_IM_FMT_RGBA, G_IM_SIZ_16b, 8, 0, 0, 0,
			G_TX_WRAP, 5, 0, G_TX_WRAP, 5, 0),
		GsDPLoadSync(),
		GsDPLoadBlock(0, 0, 0, 32*32-1, 0),
		GsDPTileSync(),
		GsDPSetTileSize(0, 0, 0, uint16(texel32(31)), uint16(texel32(31))),
		GsSPEndDisplayList(),
	}
}

// demoFrameList builds the per-frame list: a spinning textured quad and a
// Gouraud triangle in front of it.
func demoFrameList(textureList []GfxCommand, spin *Mtx, width, height int) []GfxCommand {
	quad := []Vtx{
		{X: quarter(60), Y: quarter(40), Z: 200, S: 0, T: 0, R: 255, G: 255, B: 255, A: 255},
		{X: quarter(260), Y: quarter(40), Z: 200, S: texel32(31), T: 0, R: 255, G: 255, B: 255, A: 255},
		{X: quarter(260), Y: quarter(200), Z: 200, S: texel32(31), T: texel32(31), R: 255, G: 255, B: 255, A: 255},
		{X: quarter(60), Y: quarter(200), Z: 200, S: 0, T: texel32(31), R: 255, G: 255, B: 255, A: 255},
	}
	tri := []Vtx{
		{X: quarter(160), Y: quarter(50), Z: 100, R: 255, G: 0, B: 0, A: 255},
		{X: quarter(240), Y: quarter(190), Z: 100, R: 0, G: 255, B: 0, A: 255},
		{X: quarter(80), Y: quarter(190), Z: 100, R: 0, G: 0, B: 255, A: 255},
	}

	return []GfxCommand{
		GsDPSetScissor(0, 0, 0, uint16(width*4), uint16(height*4)),
		GsSPGeometryMode(0, G_ZBUFFER|G_SHADING_SMOOTH),
		GsSPSetOtherModeL(0, 6, Z_CMP|Z_UPD),
		GsSPMatrix(spin, G_MTX_MODELVIEW|G_MTX_LOAD|G_MTX_NOPUSH),

		GsSPDisplayList(textureList),
		GsSPTexture(0xFFFF, 0xFFFF, 0, true),
		GsSPVertex(quad, 4, 0),
		GsSPQuadrangle(0, 1, 2, 3),

		GsSPTexture(0xFFFF, 0xFFFF, 0, false),
		GsSPVertex(tri, 3, 4),
		GsSP1Triangle(4, 5, 6),

		GsDPFullSync(),
		GsSPEndDisplayList(),
	}
}

func main() {
	boilerPlate()

	var (
		width      int
		height     int
		scale      int
		fullscreen bool
		headless   bool
		frames     int
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&width, "width", RDP_DEFAULT_WIDTH, "Framebuffer width in pixels")
	flagSet.IntVar(&height, "height", RDP_DEFAULT_HEIGHT, "Framebuffer height in pixels")
	flagSet.IntVar(&scale, "scale", 2, "Integer window scaling factor")
	flagSet.BoolVar(&fullscreen, "fullscreen", false, "Start in fullscreen mode")
	flagSet.BoolVar(&headless, "headless", false, "Render without opening a window")
	flagSet.IntVar(&frames, "frames", 0, "Stop after this many frames (0 = run until closed)")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./intuition_ultra [-width 320] [-height 240] [-scale 2] [-fullscreen] [-headless] [-frames N]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	renderBackend, err := NewRenderBackend(RENDER_BACKEND_SOFTWARE)
	if err != nil {
		fmt.Printf("Failed to initialize render backend: %v\n", err)
		os.Exit(1)
	}

	engine, err := NewRDPEngine(renderBackend, width, height)
	if err != nil {
		fmt.Printf("Failed to initialize RDP engine: %v\n", err)
		os.Exit(1)
	}
	defer engine.Destroy()

	videoBackend := VIDEO_BACKEND_EBITEN
	if headless {
		videoBackend = VIDEO_BACKEND_HEADLESS
	}
	video, err := NewVideoOutput(videoBackend)
	if err != nil {
		fmt.Printf("Failed to initialize video: %v\n", err)
		os.Exit(1)
	}
	if err := video.SetDisplayConfig(DisplayConfig{
		Width:      width,
		Height:     height,
		Scale:      scale,
		Fullscreen: fullscreen,
		VSync:      true,
	}); err != nil {
		fmt.Printf("Failed to configure video: %v\n", err)
		os.Exit(1)
	}

	if eo, ok := video.(*EbitenOutput); ok {
		eo.SetStatusProvider(func() RenderStats {
			return RenderStats{
				Frames:      engine.FrameCount(),
				Triangles:   engine.Batch().TriangleCount(),
				Flushes:     engine.Batch().FlushCount(),
				DroppedTris: engine.DroppedTriangles(),
				UnknownOps:  engine.UnknownOpcodes(),
				Textured:    engine.State().TexOn,
			}
		})
	}

	if err := video.Start(); err != nil {
		fmt.Printf("Failed to start video: %v\n", err)
		os.Exit(1)
	}
	defer video.Close()

	frameSource, hasFrames := renderBackend.(FrameBackend)
	texture := checkerTexture(32, 32)
	textureList := demoTextureList(texture)

	angle := 0.0
	for frame := 0; frames == 0 || frame < frames; frame++ {
		if !video.IsStarted() {
			break
		}

		spin := spinMatrix(angle, float32(width)/2, float32(height)/2)
		angle += 0.01
		list := demoFrameList(textureList, &spin, width, height)

		if hasFrames {
			frameSource.ClearFrame(24, 24, 40, 255)
		}
		engine.BeginFrame()
		engine.ProcessDisplayList(list)
		engine.EndFrame()

		if hasFrames {
			if err := video.UpdateFrame(frameSource.GetFrame()); err != nil {
				fmt.Printf("Frame update error: %v\n", err)
				break
			}
		}
		if err := video.WaitForVSync(); err != nil {
			break
		}
	}

	fmt.Printf("[RDP] %d frames rendered, %d flushes, %d dropped triangles, %d unknown opcodes\n",
		engine.FrameCount(), engine.Batch().FlushCount(),
		engine.DroppedTriangles(), engine.UnknownOpcodes())
}
