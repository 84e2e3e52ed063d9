package explore

import (
	"image"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/fractview/internal/fractal"
)

func sized(t *testing.T) Model {
	t.Helper()
	m := New(100, 1, "spectrum")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	return updated.(Model)
}

func TestWindowSizeAllocatesRaster(t *testing.T) {
	m := sized(t)

	img := m.vp.Image()
	if img == nil {
		t.Fatal("expected raster after window size message")
	}
	// One pixel per column, two per row, minus chrome rows.
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Errorf("expected 40x20 raster, got %v", img.Bounds())
	}
}

func TestZoomKeyShrinksWindow(t *testing.T) {
	m := sized(t)
	before := m.vp.Window()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	m = updated.(Model)

	after := m.vp.Window()
	if after.SpanX() >= before.SpanX() || after.SpanY() >= before.SpanY() {
		t.Errorf("zoom key did not shrink window: %+v -> %+v", before, after)
	}
}

func TestResetKeyRestoresDefault(t *testing.T) {
	m := sized(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)

	if m.vp.Window() != fractal.DefaultWindow() {
		t.Errorf("expected default window after reset, got %+v", m.vp.Window())
	}
}

func TestMouseDragZooms(t *testing.T) {
	m := sized(t)
	before := m.vp.Window()

	press := tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	motion := tea.MouseMsg{X: 25, Y: 8, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: 25, Y: 8, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	for _, msg := range []tea.MouseMsg{press, motion, release} {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}

	after := m.vp.Window()
	if !before.Contains(after) || after == before {
		t.Errorf("drag selection did not zoom: %+v -> %+v", before, after)
	}
}

func TestPanKeepsSpan(t *testing.T) {
	m := sized(t)
	before := m.vp.Window()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)

	after := m.vp.Window()
	if after.XStart <= before.XStart {
		t.Error("right pan should shift the window right")
	}
	diff := after.SpanX() - before.SpanX()
	if diff > 1e-12 || diff < -1e-12 {
		t.Errorf("pan changed the x span: %g -> %g", before.SpanX(), after.SpanX())
	}
}

func TestOnBorder(t *testing.T) {
	r := image.Rect(2, 2, 8, 6)

	if !onBorder(r, 2, 4) || !onBorder(r, 8, 4) || !onBorder(r, 5, 2) || !onBorder(r, 5, 6) {
		t.Error("edge pixels should be on the border")
	}
	if onBorder(r, 5, 4) {
		t.Error("interior pixel is not on the border")
	}
	if onBorder(r, 1, 4) || onBorder(r, 5, 7) {
		t.Error("outside pixel is not on the border")
	}
}
