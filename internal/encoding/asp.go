package encoding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

// aspWildcard is the color name used for any-robot targets in target/3
// facts. Colored targets carry their color name instead.
const aspWildcard = "any"

// EncodeASP serializes a problem as ASP facts, one per line: barriers
// in canonical south/east form, board dimensions, robot positions and
// the target. The output is deterministic and 1-indexed.
func EncodeASP(p *board.Problem) (string, error) {
	if err := validate(p, FormatASP); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, w := range p.Board.Walls() {
		fmt.Fprintf(&sb, "barrier(%d,%d,%s).\n", w.Cell.X+1, w.Cell.Y+1, w.Dir)
	}
	for i := 1; i <= p.Board.Size(); i++ {
		fmt.Fprintf(&sb, "dim(%d).\n", i)
	}
	for _, c := range board.Colors {
		fmt.Fprintf(&sb, "pos(%s,%d,%d).\n", c, p.Robots[c].X+1, p.Robots[c].Y+1)
	}
	name := aspWildcard
	if !p.Goal.Any {
		name = p.Goal.Color.String()
	}
	fmt.Fprintf(&sb, "target(%s,%d,%d).\n", name, p.Goal.Cell.X+1, p.Goal.Cell.Y+1)
	return sb.String(), nil
}

var (
	patDim     = regexp.MustCompile(`^dim\(([0-9]+)\)\.$`)
	patBarrier = regexp.MustCompile(`^barrier\(([0-9]+), *([0-9]+), *(south|north|east|west)\)\.$`)
	patPos     = regexp.MustCompile(`^pos\(([a-z_]+), *([0-9]+), *([0-9]+)\)\.$`)
	patTarget  = regexp.MustCompile(`^target\(([a-z_]+), *([0-9]+), *([0-9]+)\)\.$`)
)

// DecodeASP parses ASP facts back into a problem. Barriers may appear
// in either of their two mirrored forms; both normalize to the same
// wall. Lines that match no known fact are ignored, as solver inputs
// commonly mix in comments and unrelated facts.
func DecodeASP(text string) (*board.Problem, error) {
	lines := splitFacts(text)

	size := 0
	for _, l := range lines {
		if m := patDim.FindStringSubmatch(l.text); m != nil {
			d, _ := strconv.Atoi(m[1])
			if d > size {
				size = d
			}
		}
	}
	if size == 0 {
		return nil, &DecodeError{Format: FormatASP, Reason: "no dim/1 facts found"}
	}

	b, err := board.NewBoard(size)
	if err != nil {
		return nil, err
	}

	var (
		robots   board.RobotPositions
		seen     [4]bool
		goal     board.Goal
		goalSeen bool
	)
	for _, l := range lines {
		switch {
		case patBarrier.MatchString(l.text):
			m := patBarrier.FindStringSubmatch(l.text)
			cell, perr := parseCell(m[1], m[2], size)
			if perr != nil {
				return nil, &DecodeError{Format: FormatASP, Line: l.num, Reason: perr.Error()}
			}
			dir, _ := board.ParseDirection(m[3])
			if err := b.SetWall(cell, dir); err != nil {
				return nil, &DecodeError{Format: FormatASP, Line: l.num, Reason: err.Error()}
			}

		case patPos.MatchString(l.text):
			m := patPos.FindStringSubmatch(l.text)
			c, cerr := board.ParseColor(m[1])
			if cerr != nil {
				return nil, &DecodeError{Format: FormatASP, Line: l.num, Reason: cerr.Error()}
			}
			if seen[c] {
				return nil, &DecodeError{Format: FormatASP, Line: l.num, Reason: fmt.Sprintf("duplicate pos fact for %s", c)}
			}
			cell, perr := parseCell(m[2], m[3], size)
			if perr != nil {
				return nil, &DecodeError{Format: FormatASP, Line: l.num, Reason: perr.Error()}
			}
			robots[c] = cell
			seen[c] = true

		case patTarget.MatchString(l.text):
			m := patTarget.FindStringSubmatch(l.text)
			if goalSeen {
				return nil, &DecodeError{Format: FormatASP, Line: l.num, Reason: "multiple target facts"}
			}
			cell, perr := parseCell(m[2], m[3], size)
			if perr != nil {
				return nil, &DecodeError{Format: FormatASP, Line: l.num, Reason: perr.Error()}
			}
			if m[1] == aspWildcard {
				goal = board.Goal{Any: true, Cell: cell}
			} else {
				c, cerr := board.ParseColor(m[1])
				if cerr != nil {
					return nil, &DecodeError{Format: FormatASP, Line: l.num, Reason: cerr.Error()}
				}
				goal = board.Goal{Color: c, Cell: cell}
			}
			goalSeen = true
		}
	}

	for _, c := range board.Colors {
		if !seen[c] {
			return nil, &DecodeError{Format: FormatASP, Reason: fmt.Sprintf("missing pos fact for %s", c)}
		}
	}
	if !goalSeen {
		return nil, &DecodeError{Format: FormatASP, Reason: "missing target fact"}
	}
	return board.NewProblem(b, robots, goal)
}

type factLine struct {
	num  int
	text string
}

// splitFacts trims input lines and drops blanks and % comments.
func splitFacts(text string) []factLine {
	var lines []factLine
	for i, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "%") {
			continue
		}
		lines = append(lines, factLine{num: i + 1, text: l})
	}
	return lines
}

// parseCell converts 1-indexed fact coordinates to a board position.
func parseCell(xs, ys string, size int) (board.Pos, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return board.Pos{}, err
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return board.Pos{}, err
	}
	if x < 1 || x > size || y < 1 || y > size {
		return board.Pos{}, fmt.Errorf("cell (%d,%d) outside %dx%d board", x, y, size, size)
	}
	return board.Pos{X: x - 1, Y: y - 1}, nil
}
