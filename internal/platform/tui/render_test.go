package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/merge2048/internal/core"
)

func TestRenderScreenPlainProfile(t *testing.T) {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.Ascii)
	r := NewRenderer(lr)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawTextColored(0, 1, "[  2 ]", core.Color(223))

	if got, want := r.RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenColors(t *testing.T) {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.ANSI256)
	r := NewRenderer(lr)

	s := core.NewScreen(3, 1)
	s.DrawTextColored(0, 0, "x", core.Color(208))

	got := r.RenderScreen(s)
	if got == s.String() {
		t.Error("colored cell should be styled")
	}
}
