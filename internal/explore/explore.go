package explore

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fractview/internal/fractal"
	"github.com/san-kum/fractview/internal/palette"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	selectionColor = lipgloss.Color("#3366ff")
)

// chrome rows reserved above and below the raster area.
const chromeRows = 2

// iterStep is the +/- adjustment applied to the iteration budget.
const iterStep = 50

// Model is the Bubble Tea model driving the explorer. It owns the
// viewport and translates terminal events into engine operations.
type Model struct {
	vp       *fractal.Viewport
	palettes []string
	palIdx   int

	width, height int // terminal cells

	dragging         bool
	selStart, selEnd image.Point // raster pixel coordinates
	lastRecompute    time.Duration
}

// New builds an explorer model. The viewport starts with the default
// window and no raster; the first window-size message allocates it.
func New(maxIterations, workers int, paletteName string) Model {
	vp := fractal.New()
	if workers > 0 {
		vp.SetWorkers(workers)
	}
	if maxIterations > 0 {
		vp.SetMaxIterations(maxIterations)
	}

	names := palette.Names()
	palIdx := 0
	for i, name := range names {
		if name == paletteName {
			palIdx = i
		}
	}
	if scheme, err := palette.Get(names[palIdx]); err == nil {
		vp.SetPalette(scheme)
	}

	return Model{vp: vp, palettes: names, palIdx: palIdx}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rasterW := m.width
		rasterH := 2 * (m.height - chromeRows)
		if rasterW > 0 && rasterH > 0 {
			m.timed(func() { _ = m.vp.SetSize(rasterW, rasterH) })
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	img := m.vp.Image()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.timed(m.vp.Reset)
	case "z":
		if img != nil {
			w, h := img.Bounds().Dx(), img.Bounds().Dy()
			m.zoom(image.Rect(w/4, h/4, 3*w/4, 3*h/4))
		}
	case "x":
		if img != nil {
			w, h := img.Bounds().Dx(), img.Bounds().Dy()
			m.zoom(image.Rect(-w/2, -h/2, w+w/2, h+h/2))
		}
	case "up":
		m.pan(0, -1)
	case "down":
		m.pan(0, 1)
	case "left":
		m.pan(-1, 0)
	case "right":
		m.pan(1, 0)
	case "+", "=":
		m.timed(func() { m.vp.SetMaxIterations(m.vp.MaxIterations() + iterStep) })
	case "-":
		if m.vp.MaxIterations() > iterStep {
			m.timed(func() { m.vp.SetMaxIterations(m.vp.MaxIterations() - iterStep) })
		}
	case "p":
		m.palIdx = (m.palIdx + 1) % len(m.palettes)
		if scheme, err := palette.Get(m.palettes[m.palIdx]); err == nil {
			m.timed(func() { m.vp.SetPalette(scheme) })
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.vp.Image() == nil {
		return m, nil
	}
	pt := image.Pt(msg.X, (msg.Y-1)*2)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.selStart, m.selEnd = pt, pt
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.selEnd = pt
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		sel := image.Rectangle{Min: m.selStart, Max: m.selEnd}.Canon()
		if sel.Dx() > 0 && sel.Dy() > 0 {
			m.zoom(sel)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		m.timed(m.vp.Reset)
	}
	return m, nil
}

// pan shifts the view by a quarter of the raster in the given
// direction, expressed as an equal-size zoom rectangle.
func (m *Model) pan(dx, dy int) {
	img := m.vp.Image()
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	ox, oy := dx*w/4, dy*h/4
	m.zoom(image.Rect(ox, oy, w+ox, h+oy))
}

func (m *Model) zoom(r image.Rectangle) {
	m.timed(func() { _ = m.vp.Zoom(r) })
}

func (m *Model) timed(op func()) {
	start := time.Now()
	op()
	m.lastRecompute = time.Since(start)
}

func (m Model) View() string {
	img := m.vp.Image()
	if img == nil {
		return labelStyle.Render("waiting for terminal size...")
	}

	var sb strings.Builder
	sb.WriteString(m.header())
	sb.WriteByte('\n')

	sel := image.Rectangle{Min: m.selStart, Max: m.selEnd}.Canon()
	bounds := img.Bounds()

	for cy := 0; cy < bounds.Dy()/2; cy++ {
		for cx := 0; cx < bounds.Dx(); cx++ {
			top := img.RGBAAt(cx, 2*cy)
			bottom := img.RGBAAt(cx, 2*cy+1)

			fg := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))
			bg := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bottom.R, bottom.G, bottom.B))
			if m.dragging && (onBorder(sel, cx, 2*cy) || onBorder(sel, cx, 2*cy+1)) {
				fg, bg = selectionColor, selectionColor
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(fg).Background(bg).Render("▀"))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(helpStyle.Render("drag: zoom  right-click/r: reset  arrows: pan  z/x: in/out  +/-: iterations  p: palette  q: quit"))
	return sb.String()
}

func (m Model) header() string {
	w := m.vp.Window()
	return headerStyle.Render("fractview") + "  " +
		labelStyle.Render("x:") + valueStyle.Render(fmt.Sprintf("[%.6g,%.6g]", w.XStart, w.XEnd)) + "  " +
		labelStyle.Render("y:") + valueStyle.Render(fmt.Sprintf("[%.6g,%.6g]", w.YStart, w.YEnd)) + "  " +
		labelStyle.Render("iter:") + valueStyle.Render(fmt.Sprintf("%d", m.vp.MaxIterations())) + "  " +
		labelStyle.Render("palette:") + valueStyle.Render(m.palettes[m.palIdx]) + "  " +
		labelStyle.Render("render:") + valueStyle.Render(m.lastRecompute.Round(time.Millisecond).String())
}

// onBorder reports whether raster pixel (px,py) lies on the outline
// of the selection rectangle.
func onBorder(r image.Rectangle, px, py int) bool {
	if px < r.Min.X || px > r.Max.X || py < r.Min.Y || py > r.Max.Y {
		return false
	}
	return px == r.Min.X || px == r.Max.X || py == r.Min.Y || py == r.Max.Y
}
