package viz

import (
	"strings"
	"testing"
)

func countDots(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			bits := int(r - blank)
			for ; bits > 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

func TestCanvas_Set(t *testing.T) {
	c := NewCanvas(4, 2)
	c.SetPen("#ff0000")
	c.Set(3, 5)

	if c.Grid[1][1] != blank+0x10 {
		t.Errorf("expected dot 5 in cell (1,1), got %U", c.Grid[1][1])
	}
	if c.Colors[1][1] != "#ff0000" {
		t.Errorf("expected pen colour recorded, got %q", c.Colors[1][1])
	}

	c.Set(-1, 0)
	c.Set(100, 100)
	if countDots(c) != 1 {
		t.Errorf("out of range dots should be ignored, got %d dots", countDots(c))
	}
}

func TestCanvas_FillCircle(t *testing.T) {
	c := NewCanvas(20, 10)

	c.FillCircle(20, 20, 0.3)
	if countDots(c) != 1 {
		t.Fatalf("tiny circle should set one dot, got %d", countDots(c))
	}

	c.Clear()
	c.FillCircle(20, 20, 5)
	got := countDots(c)
	// area is about 78.5 sub-pixels
	if got < 70 || got > 90 {
		t.Errorf("expected about 78 dots, got %d", got)
	}

	c.Clear()
	c.FillCircle(-100, -100, 5)
	if countDots(c) != 0 {
		t.Error("off-canvas circle should draw nothing")
	}
}

func TestCanvas_StrokeCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.StrokeCircle(20, 20, 8)

	if c.Grid[5][10] != blank {
		t.Errorf("ring centre should stay empty, got %U", c.Grid[5][10])
	}
	got := countDots(c)
	if got < 30 || got > 60 {
		t.Errorf("expected a ring of about 50 dots, got %d", got)
	}
}

func TestCanvas_RenderPlain(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawLine(0, 0, 5, 7)

	want := strings.TrimSuffix(c.String(), "\n")
	if got := c.Render(); got != want {
		t.Errorf("uncoloured render mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestCanvas_Resize(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0)
	c.Resize(5, 4)

	if c.Width != 5 || c.Height != 4 || len(c.Grid) != 4 || len(c.Grid[0]) != 5 {
		t.Fatalf("unexpected size %dx%d", c.Width, c.Height)
	}
	if countDots(c) != 0 {
		t.Error("resized canvas should start empty")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 4); got != "────" {
		t.Errorf("empty sparkline = %q", got)
	}
	if got := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8); got != "▁▂▃▄▅▆▇█" {
		t.Errorf("ramp sparkline = %q", got)
	}
}
