package widgets

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/ricochet-research/internal/vis/draw"
	"github.com/elektrokombinacija/ricochet-research/internal/vis/interact"
	"github.com/elektrokombinacija/ricochet-research/internal/vis/state"
)

// Workspace is the board view: it owns the camera interaction and
// draws the board, the target and the animated robots.
type Workspace struct {
	state  *state.State
	camera *interact.Camera
	fitted bool
}

// NewWorkspace creates a workspace over the visualizer state.
func NewWorkspace(st *state.State, camera *interact.Camera) *Workspace {
	return &Workspace{state: st, camera: camera}
}

// Layout renders the workspace.
func (w *Workspace) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	size := gtx.Constraints.Max

	// Fit the whole board on first layout
	if !w.fitted {
		side := float64(w.state.Problem.Board.Size()) * draw.CellSize
		w.camera.FitBoard(side, float32(size.X), float32(size.Y), 40)
		w.fitted = true
	}

	w.handlePointerEvents(gtx, size)

	draw.Board(gtx, w.state.Problem.Board, w.camera)
	draw.Target(gtx, w.state.Problem.Goal, w.camera)
	draw.Robots(gtx, w.state.PositionsAt(w.state.Playback.CurrentTime), w.camera)

	return layout.Dimensions{Size: size}
}

func (w *Workspace) handlePointerEvents(gtx layout.Context, size image.Point) {
	area := clip.Rect(image.Rect(0, 0, size.X, size.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:       w,
			Kinds:        pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
			ScrollBounds: image.Rect(-10, -10, 10, 10),
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			w.camera.HandleEvent(gtx, pe)
		}
	}
}
