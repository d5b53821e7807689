package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '@', ColorGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != '@' {
		t.Errorf("GetCell rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell color = %v, expected ColorGreen", cell.Color)
	}

	// Out-of-bounds writes are ignored, reads return a default cell
	s.SetCell(-1, 0, 'x', ColorRed)
	s.SetCell(10, 0, 'x', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected default cell", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, '#', ColorRed)

	s.Clear()

	if cell := s.GetCell(2, 2); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear() should reset cells, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "score", ColorYellow)

	for i, r := range "score" {
		cell := s.GetCell(2+i, 1)
		if cell.Rune != r {
			t.Errorf("cell (%d, 1) = %q, expected %q", 2+i, cell.Rune, r)
		}
		if cell.Color != ColorYellow {
			t.Errorf("cell (%d, 1) color = %v, expected ColorYellow", 2+i, cell.Color)
		}
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(5, 3)
	// Must not panic; overflow is dropped
	s.DrawText(3, 1, "overflowing")

	if s.Get(3, 1) != 'o' || s.Get(4, 1) != 'v' {
		t.Error("visible prefix should be drawn")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 3, 4, 2), '█', ColorGreen)

	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if s.Get(x, y) != '█' {
				t.Errorf("cell (%d, %d) = %q, expected filled", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 3) != ' ' || s.Get(6, 3) != ' ' {
		t.Error("fill should not bleed outside the rect")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(2, 2, '#', ColorRed)

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize() dimensions = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if cell := s.GetCell(2, 2); cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("content should survive resize, got %+v", cell)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() should have 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", got)
	}
}
