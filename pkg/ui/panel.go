// Package ui holds the small immediate-mode widgets of the simulation
// window: sliders and checkboxes stacked inside a panel. No retained
// layout, every frame repositions and redraws.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything the panel can stack vertically.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	setPosition(x, y float64)
}

// row is one vertical slot: either a section header or a widget.
type row struct {
	section string
	widget  Widget
}

// Panel stacks widgets in named sections and routes input to them.
type Panel struct {
	X, Y          float64
	Width, Height float64
	rows          []row

	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewPanel creates an empty panel at the given position.
func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection adds a section header row.
func (p *Panel) AddSection(title string) {
	p.rows = append(p.rows, row{section: title})
}

// EndSection exists for call-site symmetry; sections end where the next
// one starts.
func (p *Panel) EndSection() {}

// AddSlider appends a slider to the current section and returns it so the
// caller can read its Value each frame.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.rows = append(p.rows, row{widget: s})
	return s
}

// AddCheckbox appends a checkbox to the current section.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.rows = append(p.rows, row{widget: c})
	return c
}

// Update lays the rows out and forwards input to every widget. Layout runs
// before input handling so widgets are hit-tested at the position they were
// last drawn at.
func (p *Panel) Update() {
	p.layout()
	for _, r := range p.rows {
		if r.widget != nil {
			r.widget.Update()
		}
	}
}

// Draw renders the panel background and all rows.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, "Configuration", int(p.X+10), int(p.Y+5))

	p.layout()
	y := p.Y + 30
	for _, r := range p.rows {
		if r.section != "" {
			vector.FillRect(screen,
				float32(p.X+5), float32(y),
				float32(p.Width-10), 18,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, r.section, int(p.X+10), int(y+2))
			y += 24
			continue
		}
		r.widget.Draw(screen)
		y += r.widget.Height()
	}
}

// layout assigns each widget its stacked position.
func (p *Panel) layout() {
	y := p.Y + 30
	for _, r := range p.rows {
		if r.section != "" {
			y += 24
			continue
		}
		r.widget.setPosition(p.X+10, y)
		y += r.widget.Height()
	}
}
