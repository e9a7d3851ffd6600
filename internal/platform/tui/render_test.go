package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/powerpong/internal/config"
	"github.com/vovakirdan/powerpong/internal/core"
	"github.com/vovakirdan/powerpong/internal/games/powerpong"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(0, 1, "red", core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "plain") || !strings.Contains(out, "red") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", got)
	}
}

func TestRenderSnapshot(t *testing.T) {
	cfg := config.DefaultPowerPongConfig()
	res := powerpong.RunHeadless(cfg, powerpong.RunOptions{Seed: 4, MaxFrames: 300})

	screen := RenderSnapshot(cfg, res.Final, previewWidth, previewRows)
	if screen.Width() != previewWidth || screen.Height() != previewRows {
		t.Fatalf("screen = %dx%d", screen.Width(), screen.Height())
	}
	if !strings.Contains(screen.String(), string(powerpong.CharBall)) {
		t.Error("snapshot preview should show a ball")
	}
	if !strings.Contains(screen.Row(0), "AUTO") {
		t.Errorf("HUD row = %q, expected AUTO mode", screen.Row(0))
	}
}
