package palette

import (
	"image/color"
	"testing"
)

func TestFromHSV(t *testing.T) {
	tests := []struct {
		h, s, v  float64
		expected color.RGBA
	}{
		{0, 1, 1, color.RGBA{255, 0, 0, 255}},
		{60, 1, 1, color.RGBA{255, 255, 0, 255}},
		{120, 1, 1, color.RGBA{0, 255, 0, 255}},
		{240, 1, 1, color.RGBA{0, 0, 255, 255}},
		{0, 0, 1, color.RGBA{255, 255, 255, 255}},
		{180, 1, 0, color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		if got := FromHSV(tt.h, tt.s, tt.v); got != tt.expected {
			t.Errorf("FromHSV(%g,%g,%g): expected %+v, got %+v", tt.h, tt.s, tt.v, tt.expected, got)
		}
	}
}

func TestSchemesRenderInsideBlack(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}

	for _, name := range Names() {
		scheme, err := Get(name)
		if err != nil {
			t.Fatalf("get %s failed: %v", name, err)
		}
		if got := scheme(100, 100); got != black {
			t.Errorf("%s: expected black for inside-set points, got %+v", name, got)
		}
	}
}

func TestSpectrumHueWrap(t *testing.T) {
	// iterations == maxIterations computes hue 360; the wrap to 0 must
	// still come out black because value is 0.
	if got := Spectrum(100, 100); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("expected black, got %+v", got)
	}

	// An escaped point keeps full value.
	if got := Spectrum(0, 100); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("expected full red at hue 0, got %+v", got)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("nonexistent"); err == nil {
		t.Error("expected error for unknown palette")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 4 {
		t.Fatalf("expected at least 4 palettes, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
