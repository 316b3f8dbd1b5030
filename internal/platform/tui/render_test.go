package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 2)
	scr.DrawStyled(0, 0, "Attack", core.ColorBrightRed, core.AttrBold)
	scr.DrawStyled(7, 0, "42", core.ColorBrightRed, 0)
	scr.DrawStyled(0, 1, "[T]", core.ColorBrightYellow, core.AttrReverse)

	out := RenderScreen(scr)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d has width %d, want 12", i, w)
		}
	}
	for _, want := range []string{"Attack", "42", "[T]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCellStyleAttributes(t *testing.T) {
	tests := []struct {
		attr                 core.Attr
		bold, reverse, faint bool
	}{
		{0, false, false, false},
		{core.AttrBold, true, false, false},
		{core.AttrReverse | core.AttrFaint, false, true, true},
		{core.AttrBold | core.AttrReverse | core.AttrFaint, true, true, true},
	}
	for _, tt := range tests {
		s := cellStyle(core.ColorCyan, tt.attr)
		if s.GetBold() != tt.bold || s.GetReverse() != tt.reverse || s.GetFaint() != tt.faint {
			t.Errorf("attr %b: bold=%v reverse=%v faint=%v", tt.attr, s.GetBold(), s.GetReverse(), s.GetFaint())
		}
	}

	if cellStyle(core.Color(200), 0).GetForeground() != colorStyles[core.ColorDefault].GetForeground() {
		t.Error("unknown color should fall back to the default style")
	}
}
