package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("size = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(-1, 0, 'A')
	s.Set(4, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 4, 'A')

	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out-of-bounds Set leaked into the buffer")
	}
	if s.Get(10, 10) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenColoredText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(1, 0, "2048", ColorYellow)

	if s.Row(0) != " 2048     " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	for x := 1; x <= 4; x++ {
		if s.GetCell(x, 0).Color != ColorYellow {
			t.Errorf("cell %d color = %d, expected %d", x, s.GetCell(x, 0).Color, ColorYellow)
		}
	}
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("neighbouring cell picked up color")
	}
}

func TestScreenDrawTextCountsRunes(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "│ab│")
	if s.Row(0) != "│ab│  " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3))

	expected := "┌──┐\n│  │\n└──┘"
	if s.String() != expected {
		t.Errorf("DrawBox produced:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestScreenResizeAndClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(1, 1, 'X')
	s.Resize(5, 2)

	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("Resize gave %dx%d", s.Width(), s.Height())
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("Resize should blank the buffer")
	}

	s.DrawText(0, 0, "hello")
	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Clear left content behind")
	}
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	if r.Right() != 12 || r.Bottom() != 7 {
		t.Errorf("Right/Bottom = %d/%d", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 7 || y != 5 {
		t.Errorf("Center = (%d, %d)", x, y)
	}
	inner := r.CenteredIn(4, 2)
	if inner != NewRect(5, 4, 4, 2) {
		t.Errorf("CenteredIn = %+v", inner)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has does not reflect Set")
	}
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear did not reset the frame")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame reports actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame lost the action")
	}
	if ActionStats.String() != "Stats" {
		t.Errorf("ActionStats.String() = %q", ActionStats.String())
	}
}
