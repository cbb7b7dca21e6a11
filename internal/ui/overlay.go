//go:build ebiten

package ui

import (
	"image/color"

	"cavemap/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type agentProvider interface {
	AgentCell() (int, int)
}

// Overlay draws optional debugging visuals on top of the base map view.
// Right now that is the carving agent's cursor, toggled with A.
type Overlay struct {
	sim       core.Sim
	scale     int
	showAgent bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showAgent: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.showAgent = !o.showAgent
	}
}

// Draw paints the enabled overlays onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showAgent {
		return
	}
	provider, ok := o.sim.(agentProvider)
	if !ok {
		return
	}
	x, y := provider.AgentCell()
	size := o.sim.Size()
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	op.GeoM.Translate(float64(x*o.scale), float64(y*o.scale))
	op.ColorM.Scale(0.9, 0.2, 0.2, 0.9)
	screen.DrawImage(o.pixel, op)
}
