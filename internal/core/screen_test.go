package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	c := Cell{Rune: '▀', Fg: ColorWhite, Bg: ColorBlack}
	s.Set(5, 5, c)
	if s.GetCell(5, 5) != c {
		t.Errorf("GetCell(5, 5) = %+v, expected %+v", s.GetCell(5, 5), c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, c)
	s.Set(100, 0, c)
	s.Set(0, -1, c)
	s.Set(0, 100, c)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(0, 0, Cell{Rune: 'X'})

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(0, 0).Rune != ' ' {
		t.Error("Resize should reset content")
	}

	s.Resize(-3, 2)
	if s.Width() != 0 {
		t.Errorf("Negative width should clamp to 0, got %d", s.Width())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill(Cell{Rune: '#'})
	s.Set(1, 1, Cell{Rune: '.'})

	expected := "###\n#.#"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}
