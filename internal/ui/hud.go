//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"cavemap/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the generator parameter panel to the right of the map view.
// Up/Down selects a control, Left/Right adjusts it through the setter
// interfaces the generator exposes.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls    []hudControlState
	selected    int
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	title       string
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

const (
	panelPadding = 12
	lineHeight   = 16
	headerGap    = 10
)

// NewHUD constructs a HUD for the provided generator and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: "cave controls"}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles key input.
func (h *HUD) Update(int) {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += headerGap

	for i := range h.controls {
		y += lineHeight
		if y >= height {
			break
		}
		st := &h.controls[i]
		fg := color.RGBA{R: 170, G: 170, B: 180, A: 255}
		marker := "  "
		if i == h.selected {
			fg = color.RGBA{R: 240, G: 240, B: 250, A: 255}
			marker = "> "
		}
		line := fmt.Sprintf("%s%s %s", marker, st.control.Label, st.value)
		text.Draw(h.panel, line, face, panelPadding, y, fg)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	if len(h.controls) == 0 {
		return
	}
	paramMap := map[string]core.Parameter{}
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			paramMap[param.Key] = param
		}
	}
	for i := range h.controls {
		st := &h.controls[i]
		param, ok := paramMap[st.control.Key]
		if !ok {
			st.hasValue = false
			st.value = "--"
			continue
		}
		switch st.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				st.hasValue = false
				st.value = "--"
				continue
			}
			st.intValue = parsed
			st.floatValue = float64(parsed)
			st.value = strconv.Itoa(parsed)
			st.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				st.hasValue = false
				st.value = "--"
				continue
			}
			st.floatValue = parsed
			st.value = strconv.FormatFloat(parsed, 'f', 2, 64)
			st.hasValue = true
		default:
			st.hasValue = false
			st.value = "--"
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		h.adjust(&h.controls[h.selected], -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		h.adjust(&h.controls[h.selected], 1)
	}
}

func (h *HUD) adjust(st *hudControlState, direction int) {
	if st == nil || !st.hasValue {
		return
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		step := int(math.Round(st.control.Step))
		if step <= 0 {
			step = 1
		}
		target := st.intValue + direction*step
		if st.control.HasMin && target < int(math.Round(st.control.Min)) {
			target = int(math.Round(st.control.Min))
		}
		if st.control.HasMax && target > int(math.Round(st.control.Max)) {
			target = int(math.Round(st.control.Max))
		}
		if target != st.intValue && h.intSetter.SetIntParameter(st.control.Key, target) {
			st.intValue = target
			st.value = strconv.Itoa(target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		step := st.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := st.floatValue + float64(direction)*step
		if st.control.HasMin && target < st.control.Min {
			target = st.control.Min
		}
		if st.control.HasMax && target > st.control.Max {
			target = st.control.Max
		}
		if math.Abs(target-st.floatValue) > 1e-9 && h.floatSetter.SetFloatParameter(st.control.Key, target) {
			st.floatValue = target
			st.value = strconv.FormatFloat(target, 'f', 2, 64)
		}
	}
}
