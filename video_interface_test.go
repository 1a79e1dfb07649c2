// video_interface_test.go - Display output interface tests

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

func TestVideo_HeadlessLifecycle(t *testing.T) {
	video, err := NewVideoOutput(VIDEO_BACKEND_HEADLESS)
	if err != nil {
		t.Fatalf("NewVideoOutput failed: %v", err)
	}
	defer video.Close()

	if video.IsStarted() {
		t.Error("headless output started before Start")
	}
	if err := video.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !video.IsStarted() {
		t.Error("headless output not started after Start")
	}

	config := DisplayConfig{Width: 320, Height: 240, Scale: 2, VSync: true}
	if err := video.SetDisplayConfig(config); err != nil {
		t.Fatalf("SetDisplayConfig failed: %v", err)
	}
	if got := video.GetDisplayConfig(); got != config {
		t.Errorf("config %+v, want %+v", got, config)
	}

	frame := make([]byte, 320*240*4)
	for i := 0; i < 3; i++ {
		if err := video.UpdateFrame(frame); err != nil {
			t.Fatalf("UpdateFrame failed: %v", err)
		}
	}
	if got := video.GetFrameCount(); got != 3 {
		t.Errorf("frame count %d, want 3", got)
	}
	if video.GetRefreshRate() <= 0 {
		t.Error("refresh rate must be positive")
	}
}

func TestVideo_UnknownBackendRejected(t *testing.T) {
	_, err := NewVideoOutput(99)
	if err == nil {
		t.Fatal("unknown backend type did not error")
	}
	if _, ok := err.(*VideoError); !ok {
		t.Errorf("error type %T, want *VideoError", err)
	}
}

func TestVideo_ClampScale(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1}, {-3, 1}, {1, 1}, {4, 4}, {8, 8}, {20, 8},
	}
	for _, c := range cases {
		if got := ClampScale(c.in); got != c.want {
			t.Errorf("ClampScale(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
