package raster

import (
	"testing"

	"github.com/32bitkid/raster/pixel"
)

func TestHorizontalLine(t *testing.T) {
	buf := newCanvas(10, 3, pixel.Black)
	DrawLine(Line{Start: Pt(0, 0), End: Pt(5, 0), Color: pixel.Green}, buf)

	for x := 0; x < 10; x++ {
		want := pixel.Black
		if x <= 5 {
			want = pixel.Green
		}
		if c := buf.ColorAt(x, 0); c != want {
			t.Errorf("(%d,0): expected(%v) != actual(%v)", x, want, c)
		}
		if c := buf.ColorAt(x, 1); c != pixel.Black {
			t.Errorf("(%d,1): row 1 must be untouched, got %v", x, c)
		}
	}
}

func TestVerticalLineReversed(t *testing.T) {
	rec := newRecorder()
	DrawLine(Line{Start: Pt(4, 6), End: Pt(4, 2), Color: pixel.Blue}, rec)

	if rec.count != 5 {
		t.Fatalf("expected(5) != actual(%d)", rec.count)
	}
	for y := 2; y <= 6; y++ {
		if _, ok := rec.writes[Pt(4, y)]; !ok {
			t.Errorf("missing (4,%d)", y)
		}
	}
}

func TestDiagonalLine(t *testing.T) {
	rec := newRecorder()
	DrawLine(Line{Start: Pt(0, 0), End: Pt(4, 4), Color: pixel.Red}, rec)

	expected := []Coordinate{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	if rec.count != len(expected) {
		t.Fatalf("expected(%d) != actual(%d): %v", len(expected), rec.count, rec.writes)
	}
	for _, c := range expected {
		if _, ok := rec.writes[c]; !ok {
			t.Errorf("missing %v", c)
		}
	}
	if _, ok := rec.writes[Pt(4, 4)]; ok {
		t.Error("end pixel must be excluded")
	}
}

func TestShallowLine(t *testing.T) {
	rec := newRecorder()
	DrawLine(Line{Start: Pt(0, 0), End: Pt(4, 2), Color: pixel.Red}, rec)

	expected := []Coordinate{{0, 0}, {1, 0}, {2, 1}, {3, 1}}
	if rec.count != len(expected) {
		t.Fatalf("expected(%d) != actual(%d): %v", len(expected), rec.count, rec.writes)
	}
	for _, c := range expected {
		if _, ok := rec.writes[c]; !ok {
			t.Errorf("missing %v", c)
		}
	}
}

func TestSteepLine(t *testing.T) {
	rec := newRecorder()
	DrawLine(Line{Start: Pt(5, 0), End: Pt(3, 4), Color: pixel.Red}, rec)

	expected := []Coordinate{{5, 0}, {5, 1}, {4, 2}, {4, 3}}
	if rec.count != len(expected) {
		t.Fatalf("expected(%d) != actual(%d): %v", len(expected), rec.count, rec.writes)
	}
	for _, c := range expected {
		if _, ok := rec.writes[c]; !ok {
			t.Errorf("missing %v", c)
		}
	}
}

func TestLineStepsDrivingAxisOnce(t *testing.T) {
	ends := []Coordinate{
		{7, 3}, {-7, 3}, {7, -3}, {-7, -3},
		{3, 7}, {-3, 7}, {3, -7}, {-3, -7},
		{9, 1}, {1, -9},
	}
	for _, end := range ends {
		rec := newRecorder()
		DrawLine(Line{Start: Pt(0, 0), End: end, Color: pixel.White}, rec)

		steps := absInt(end.X)
		if absInt(end.Y) > steps {
			steps = absInt(end.Y)
		}
		if rec.count != steps {
			t.Errorf("%v: expected(%d) != actual(%d)", end, steps, rec.count)
		}
		if _, ok := rec.writes[Pt(0, 0)]; !ok {
			t.Errorf("%v: start pixel missing", end)
		}
		for c := range rec.writes {
			if absInt(c.X) > absInt(end.X) || absInt(c.Y) > absInt(end.Y) {
				t.Errorf("%v: pixel %v escapes the bounding box", end, c)
			}
		}
	}
}

func TestLineClipsPerPixel(t *testing.T) {
	buf := newCanvas(5, 5, pixel.Black)
	DrawLine(Line{Start: Pt(-3, 2), End: Pt(8, 2), Color: pixel.Yellow}, buf)
	for x := 0; x < 5; x++ {
		if c := buf.ColorAt(x, 2); c != pixel.Yellow {
			t.Errorf("(%d,2): expected(%v) != actual(%v)", x, pixel.Yellow, c)
		}
	}

	buf = newCanvas(5, 5, pixel.Black)
	DrawLine(Line{Start: Pt(-2, -2), End: Pt(7, 7), Color: pixel.Yellow}, buf)
	for i := 0; i < 5; i++ {
		if c := buf.ColorAt(i, i); c != pixel.Yellow {
			t.Errorf("(%d,%d): expected(%v) != actual(%v)", i, i, pixel.Yellow, c)
		}
	}
	if changed := diff(buf, newCanvas(5, 5, pixel.Black)); len(changed) != 5 {
		t.Errorf("expected(5) != actual(%d)", len(changed))
	}
}
