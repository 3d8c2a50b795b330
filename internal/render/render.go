// Package render draws boards as fixed-width ASCII art.
package render

import (
	"strings"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

// Compact renders the board one character per cell: robots as digits
// 1-4, the goal as a-d (or * for a wildcard goal), a robot standing on
// its own goal as A-D, and walls as x.
func Compact(b *board.Board, robots board.RobotPositions, goal board.Goal) string {
	var sb strings.Builder
	size := b.Size()

	// Top border row.
	for x := 0; x < size; x++ {
		sb.WriteByte('+')
		writeEdge(&sb, b, board.Pos{X: x, Y: 0}, board.North, "x", "-")
	}
	sb.WriteString("+\n")

	for y := 0; y < size; y++ {
		writeEdge(&sb, b, board.Pos{X: 0, Y: y}, board.West, "x", "|")
		for x := 0; x < size; x++ {
			sb.WriteString(cellGlyph(board.Pos{X: x, Y: y}, robots, goal))
			writeEdge(&sb, b, board.Pos{X: x, Y: y}, board.East, "x", "|")
		}
		sb.WriteByte('\n')

		for x := 0; x < size; x++ {
			sb.WriteByte('+')
			writeEdge(&sb, b, board.Pos{X: x, Y: y}, board.South, "x", "-")
		}
		sb.WriteString("+\n")
	}
	return sb.String()
}

func cellGlyph(p board.Pos, robots board.RobotPositions, goal board.Goal) string {
	robot, occupied := robots.RobotAt(p)
	onGoal := goal.Cell == p

	switch {
	case occupied && onGoal && (goal.Any || goal.Color == robot):
		return string(rune('A' + robot))
	case occupied:
		return string(rune('1' + robot))
	case onGoal && goal.Any:
		return "*"
	case onGoal:
		return string(rune('a' + goal.Color))
	default:
		return " "
	}
}

// Wide renders the board two characters per cell with R<n> robots and
// G<n> goal markers, every line prefixed with prefix. The PDDL encoder
// embeds this form in problem headers with a ";; " prefix.
func Wide(b *board.Board, robots board.RobotPositions, goal board.Goal, prefix string) string {
	var sb strings.Builder
	size := b.Size()

	sb.WriteString(prefix)
	for x := 0; x < size; x++ {
		sb.WriteByte('+')
		writeEdge(&sb, b, board.Pos{X: x, Y: 0}, board.North, "xx", "--")
	}
	sb.WriteString("+\n")

	for y := 0; y < size; y++ {
		sb.WriteString(prefix)
		writeEdge(&sb, b, board.Pos{X: 0, Y: y}, board.West, "x", "|")
		for x := 0; x < size; x++ {
			sb.WriteString(wideGlyph(board.Pos{X: x, Y: y}, robots, goal))
			writeEdge(&sb, b, board.Pos{X: x, Y: y}, board.East, "x", "|")
		}
		sb.WriteByte('\n')

		sb.WriteString(prefix)
		for x := 0; x < size; x++ {
			sb.WriteByte('+')
			writeEdge(&sb, b, board.Pos{X: x, Y: y}, board.South, "xx", "--")
		}
		sb.WriteString("+\n")
	}
	return sb.String()
}

func wideGlyph(p board.Pos, robots board.RobotPositions, goal board.Goal) string {
	if robot, ok := robots.RobotAt(p); ok {
		return "R" + string(rune('1'+robot))
	}
	if goal.Cell == p {
		if goal.Any {
			return "G*"
		}
		return "G" + string(rune('1'+goal.Color))
	}
	return "  "
}

func writeEdge(sb *strings.Builder, b *board.Board, p board.Pos, d board.Direction, wall, open string) {
	if b.WallBetween(p, d) {
		sb.WriteString(wall)
	} else {
		sb.WriteString(open)
	}
}

// SideBySide splices two rendered boards next to each other with a
// text column in between, used for before/after move traces. The text
// column is padded to its widest line; boards of unequal height are
// padded with blank lines.
func SideBySide(left, right, text string) string {
	leftLines := strings.Split(strings.TrimRight(left, "\n"), "\n")
	rightLines := strings.Split(strings.TrimRight(right, "\n"), "\n")
	textLines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	gap := 0
	for _, l := range textLines {
		if len(l) > gap {
			gap = len(l)
		}
	}
	leftWidth := 0
	for _, l := range leftLines {
		if len(l) > leftWidth {
			leftWidth = len(l)
		}
	}

	rows := len(leftLines)
	if len(rightLines) > rows {
		rows = len(rightLines)
	}

	var sb strings.Builder
	for i := 0; i < rows; i++ {
		var l, r, t string
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			r = rightLines[i]
		}
		if i < len(textLines) {
			t = textLines[i]
		}
		sb.WriteString(l)
		sb.WriteString(strings.Repeat(" ", leftWidth-len(l)))
		sb.WriteString("    ")
		sb.WriteString(t)
		sb.WriteString(strings.Repeat(" ", gap-len(t)))
		sb.WriteString("    ")
		sb.WriteString(r)
		sb.WriteByte('\n')
	}
	return sb.String()
}
