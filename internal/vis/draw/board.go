// Package draw renders boards, walls, robots and targets with Gio
// vector operations.
package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/vis/interact"
	"github.com/elektrokombinacija/ricochet-research/internal/vis/state"
)

// CellSize is the world-space size of one board cell.
const CellSize = 50.0

// Robot colors.
var (
	ColorRed    = color.NRGBA{R: 225, G: 70, B: 70, A: 255}
	ColorBlue   = color.NRGBA{R: 80, G: 130, B: 255, A: 255}
	ColorGreen  = color.NRGBA{R: 70, G: 190, B: 100, A: 255}
	ColorYellow = color.NRGBA{R: 235, G: 200, B: 60, A: 255}

	colorBoard    = color.NRGBA{R: 45, G: 48, B: 54, A: 255}
	colorGrid     = color.NRGBA{R: 70, G: 74, B: 82, A: 255}
	colorWall     = color.NRGBA{R: 220, G: 220, B: 225, A: 255}
	colorWildcard = color.NRGBA{R: 210, G: 210, B: 215, A: 255}
)

// RobotColor returns the display color for a robot.
func RobotColor(c board.Color) color.NRGBA {
	switch c {
	case board.Red:
		return ColorRed
	case board.Blue:
		return ColorBlue
	case board.Green:
		return ColorGreen
	case board.Yellow:
		return ColorYellow
	default:
		return colorWildcard
	}
}

// Board draws the board background, grid lines and all walls.
func Board(gtx layout.Context, b *board.Board, camera *interact.Camera) {
	n := b.Size()
	side := float64(n) * CellSize

	// Board background
	x0, y0 := camera.WorldToScreen(0, 0)
	x1, y1 := camera.WorldToScreen(side, side)
	fillQuad(gtx, x0, y0, x1, y1, colorBoard)

	// Grid lines
	gridWidth := float32(1) * camera.Zoom
	for i := 1; i < n; i++ {
		w := float64(i) * CellSize
		sx, sy := camera.WorldToScreen(w, 0)
		_, ey := camera.WorldToScreen(w, side)
		drawLine(gtx, sx, sy, sx, ey, gridWidth, colorGrid)
		sx2, sy2 := camera.WorldToScreen(0, w)
		ex2, _ := camera.WorldToScreen(side, w)
		drawLine(gtx, sx2, sy2, ex2, sy2, gridWidth, colorGrid)
	}

	// Boundary
	wallWidth := float32(4) * camera.Zoom
	drawLine(gtx, x0, y0, x1, y0, wallWidth, colorWall)
	drawLine(gtx, x1, y0, x1, y1, wallWidth, colorWall)
	drawLine(gtx, x1, y1, x0, y1, wallWidth, colorWall)
	drawLine(gtx, x0, y1, x0, y0, wallWidth, colorWall)

	// Interior walls, each drawn on the south or east edge of its cell
	for _, w := range b.Walls() {
		cx := float64(w.Cell.X) * CellSize
		cy := float64(w.Cell.Y) * CellSize
		var sx, sy, ex, ey float32
		if w.Dir == board.South {
			sx, sy = camera.WorldToScreen(cx, cy+CellSize)
			ex, ey = camera.WorldToScreen(cx+CellSize, cy+CellSize)
		} else {
			sx, sy = camera.WorldToScreen(cx+CellSize, cy)
			ex, ey = camera.WorldToScreen(cx+CellSize, cy+CellSize)
		}
		drawLine(gtx, sx, sy, ex, ey, wallWidth, colorWall)
	}
}

// Target draws the goal cell marker, a diamond in the goal color or in
// neutral gray for a wildcard target.
func Target(gtx layout.Context, goal board.Goal, camera *interact.Camera) {
	cx, cy := cellCenter(goal.Cell.X, goal.Cell.Y, camera)
	r := float32(CellSize*0.32) * camera.Zoom

	col := colorWildcard
	if !goal.Any {
		col = RobotColor(goal.Color)
	}
	col.A = 170

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(cx, cy-r))
	path.LineTo(f32.Pt(cx+r, cy))
	path.LineTo(f32.Pt(cx, cy+r))
	path.LineTo(f32.Pt(cx-r, cy))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// Robots draws the four robots at the given fractional cell positions.
func Robots(gtx layout.Context, pts [4]state.Point, camera *interact.Camera) {
	r := float32(CellSize*0.36) * camera.Zoom
	for _, c := range board.Colors {
		pt := pts[c.Index()-1]
		cx, cy := camera.WorldToScreen((pt.X+0.5)*CellSize, (pt.Y+0.5)*CellSize)
		drawFilledCircle(gtx, cx, cy, r, RobotColor(c))
	}
}

func cellCenter(x, y int, camera *interact.Camera) (float32, float32) {
	return camera.WorldToScreen((float64(x)+0.5)*CellSize, (float64(y)+0.5)*CellSize)
}

func fillQuad(gtx layout.Context, x0, y0, x1, y1 float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x0, y0))
	path.LineTo(f32.Pt(x1, y0))
	path.LineTo(f32.Pt(x1, y1))
	path.LineTo(f32.Pt(x0, y1))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawLine(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}

	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+radius, cy))

	segments := 24
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
