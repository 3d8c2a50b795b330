package encoding

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/render"
)

// EncodePDDL serializes a problem for the fixed ricochet-robots PDDL
// domain: NEXT adjacency facts, BLOCKED facts for the boundary and for
// both sides of every wall, free-cell facts, robot positions and the
// cost fluents, with an ASCII rendering of the board in the comment
// header.
//
// The problem name carries a hash of the canonical ASP encoding
// instead of a random suffix, so re-encoding is byte-stable.
func EncodePDDL(p *board.Problem) (string, error) {
	if err := validate(p, FormatPDDL); err != nil {
		return "", err
	}
	if p.Goal.Any {
		// Representable, but only with a disjunctive goal.
		return encodePDDL(p, goalDisjunction(p))
	}
	goal := []string{atFact(p.Goal.Color, p.Goal.Cell, false)}
	return encodePDDL(p, goal)
}

func encodePDDL(p *board.Problem, goal []string) (string, error) {
	dim := p.Board.Size()

	var cells []string
	for x := 1; x <= dim; x++ {
		for y := 1; y <= dim; y++ {
			cells = append(cells, cellName(board.Pos{X: x - 1, Y: y - 1}))
		}
	}

	var robots []string
	for _, c := range board.Colors {
		robots = append(robots, robotName(c))
	}

	var next []string
	for x := 1; x <= dim; x++ {
		for y := 1; y < dim; y++ {
			next = append(next, fmt.Sprintf("(NEXT cell-%d-%d cell-%d-%d south)", x, y, x, y+1))
		}
	}
	for x := 1; x <= dim; x++ {
		for y := dim; y > 1; y-- {
			next = append(next, fmt.Sprintf("(NEXT cell-%d-%d cell-%d-%d north)", x, y, x, y-1))
		}
	}
	for y := 1; y <= dim; y++ {
		for x := 1; x < dim; x++ {
			next = append(next, fmt.Sprintf("(NEXT cell-%d-%d cell-%d-%d east)", x, y, x+1, y))
		}
	}
	for y := 1; y <= dim; y++ {
		for x := dim; x > 1; x-- {
			next = append(next, fmt.Sprintf("(NEXT cell-%d-%d cell-%d-%d west)", x, y, x-1, y))
		}
	}

	var blocked []string
	for x := 1; x <= dim; x++ {
		blocked = append(blocked, fmt.Sprintf("(BLOCKED cell-%d-1 north)", x))
		blocked = append(blocked, fmt.Sprintf("(BLOCKED cell-%d-%d south)", x, dim))
	}
	for y := 1; y <= dim; y++ {
		blocked = append(blocked, fmt.Sprintf("(BLOCKED cell-1-%d west)", y))
		blocked = append(blocked, fmt.Sprintf("(BLOCKED cell-%d-%d east)", dim, y))
	}
	for _, w := range p.Board.Walls() {
		// Both sides of the wall are blocked.
		mirror := w.Cell.Step(w.Dir)
		blocked = append(blocked,
			fmt.Sprintf("(BLOCKED %s %s)", cellName(w.Cell), w.Dir),
			fmt.Sprintf("(BLOCKED %s %s)", cellName(mirror), w.Dir.Opposite()))
	}

	var free []string
	for x := 0; x < dim; x++ {
		for y := 0; y < dim; y++ {
			if !p.Robots.Occupied(board.Pos{X: x, Y: y}) {
				free = append(free, fmt.Sprintf("(free %s)", cellName(board.Pos{X: x, Y: y})))
			}
		}
	}

	var at []string
	for _, c := range board.Colors {
		at = append(at, atFact(c, p.Robots[c], true))
	}

	asp, err := EncodeASP(p)
	if err != nil {
		return "", err
	}
	h := fnv.New32a()
	h.Write([]byte(asp))
	name := fmt.Sprintf("ricochet-robots-%dx%d-%08x", dim, dim, h.Sum32())

	var sb strings.Builder
	sb.WriteString(";; Ricochet Robots problem\n")
	sb.WriteString(";;\n")
	sb.WriteString(render.Wide(p.Board, p.Robots, p.Goal, ";; "))
	fmt.Fprintf(&sb, `(define (problem %s)
(:domain ricochet-robots)

(:objects
    %s - cell
    %s - robot
    west east north south - direction
)

(:init
    %s

    %s

    %s

    %s

    (nothing-is-moving)

    (= (total-cost) 0)
    (= (go-cost) 1)
    (= (step-cost) 0)
    (= (stop-cost) 0)
)
(:goal
    (and
        %s
        (nothing-is-moving)
    )
)
(:metric minimize (total-cost))
)
`,
		name,
		strings.Join(cells, " "),
		strings.Join(robots, " "),
		strings.Join(next, "\n    "),
		strings.Join(blocked, "\n    "),
		strings.Join(free, "\n    "),
		strings.Join(at, "\n    "),
		strings.Join(goal, "\n        "))
	return sb.String(), nil
}

func cellName(p board.Pos) string {
	return fmt.Sprintf("cell-%d-%d", p.X+1, p.Y+1)
}

func robotName(c board.Color) string {
	return fmt.Sprintf("robot-%d", c.Index())
}

func atFact(c board.Color, p board.Pos, comment bool) string {
	s := fmt.Sprintf("(at %s %s)", robotName(c), cellName(p))
	if comment {
		s += " ;; " + c.String()
	}
	return s
}

func goalDisjunction(p *board.Problem) []string {
	var alts []string
	for _, c := range board.Colors {
		alts = append(alts, atFact(c, p.Goal.Cell, false))
	}
	return []string{"(or " + strings.Join(alts, " ") + ")"}
}

var (
	patPDDLBlocked = regexp.MustCompile(`(?i)\(\s*BLOCKED\s+cell-([0-9]+)-([0-9]+)\s+(north|south|east|west)\s*\)`)
	patPDDLAt      = regexp.MustCompile(`(?i)\(\s*at\s+robot-([0-9]+)\s+cell-([0-9]+)-([0-9]+)\s*\)`)
	patPDDLCell    = regexp.MustCompile(`cell-([0-9]+)-([0-9]+)`)
)

// DecodePDDL parses a problem file back into the board model. It does
// not structurally parse PDDL: it scans the :init and :goal sections
// for BLOCKED and at facts and derives the board size from the cell
// names.
func DecodePDDL(text string) (*board.Problem, error) {
	type sectionFact struct {
		num  int
		text string
	}
	var initLines, goalLines []sectionFact

	inInit, inGoal := false, false
	for i, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "(:init") {
			inInit, inGoal = true, false
		}
		if strings.Contains(line, "(:goal") {
			inInit, inGoal = false, true
		}
		if inInit {
			initLines = append(initLines, sectionFact{num: i + 1, text: line})
		}
		if inGoal {
			goalLines = append(goalLines, sectionFact{num: i + 1, text: line})
		}
	}
	if len(initLines) == 0 {
		return nil, &DecodeError{Format: FormatPDDL, Reason: "no (:init section found"}
	}

	dim := 0
	for _, l := range initLines {
		for _, m := range patPDDLCell.FindAllStringSubmatch(l.text, -1) {
			x, _ := strconv.Atoi(m[1])
			y, _ := strconv.Atoi(m[2])
			if x > dim {
				dim = x
			}
			if y > dim {
				dim = y
			}
		}
	}
	if dim == 0 {
		return nil, &DecodeError{Format: FormatPDDL, Reason: "no cell objects found in :init"}
	}

	b, err := board.NewBoard(dim)
	if err != nil {
		return nil, err
	}

	for _, l := range initLines {
		for _, m := range patPDDLBlocked.FindAllStringSubmatch(l.text, -1) {
			x, _ := strconv.Atoi(m[1])
			y, _ := strconv.Atoi(m[2])
			dir, _ := board.ParseDirection(strings.ToLower(m[3]))
			if isBoundaryEdge(board.Pos{X: x - 1, Y: y - 1}, dir, dim) {
				continue
			}
			// Both sides of each wall appear as BLOCKED facts; SetWall
			// normalizes them to a single stored wall.
			if err := b.SetWall(board.Pos{X: x - 1, Y: y - 1}, dir); err != nil {
				return nil, &DecodeError{Format: FormatPDDL, Line: l.num, Reason: err.Error()}
			}
		}
	}

	var (
		robots board.RobotPositions
		seen   [4]bool
	)
	for _, l := range initLines {
		for _, m := range patPDDLAt.FindAllStringSubmatch(l.text, -1) {
			idx, _ := strconv.Atoi(m[1])
			c, cerr := board.ColorFromIndex(idx)
			if cerr != nil {
				return nil, &DecodeError{Format: FormatPDDL, Line: l.num, Reason: cerr.Error()}
			}
			if seen[c] {
				return nil, &DecodeError{Format: FormatPDDL, Line: l.num, Reason: fmt.Sprintf("duplicate at fact for %s", c)}
			}
			x, _ := strconv.Atoi(m[2])
			y, _ := strconv.Atoi(m[3])
			robots[c] = board.Pos{X: x - 1, Y: y - 1}
			seen[c] = true
		}
	}
	for _, c := range board.Colors {
		if !seen[c] {
			return nil, &DecodeError{Format: FormatPDDL, Reason: fmt.Sprintf("missing at fact for %s in :init", c)}
		}
	}

	type goalAt struct {
		color board.Color
		cell  board.Pos
	}
	var goals []goalAt
	for _, l := range goalLines {
		for _, m := range patPDDLAt.FindAllStringSubmatch(l.text, -1) {
			idx, _ := strconv.Atoi(m[1])
			c, cerr := board.ColorFromIndex(idx)
			if cerr != nil {
				return nil, &DecodeError{Format: FormatPDDL, Line: l.num, Reason: cerr.Error()}
			}
			x, _ := strconv.Atoi(m[2])
			y, _ := strconv.Atoi(m[3])
			goals = append(goals, goalAt{color: c, cell: board.Pos{X: x - 1, Y: y - 1}})
		}
	}

	var goal board.Goal
	switch {
	case len(goals) == 0:
		return nil, &DecodeError{Format: FormatPDDL, Reason: "no at fact found in :goal"}
	case len(goals) == 1:
		goal = board.Goal{Color: goals[0].color, Cell: goals[0].cell}
	default:
		// A disjunctive goal over all robots on one cell is the
		// wildcard target.
		for _, g := range goals[1:] {
			if g.cell != goals[0].cell {
				return nil, &DecodeError{Format: FormatPDDL, Reason: "goal facts reference different cells"}
			}
		}
		goal = board.Goal{Any: true, Cell: goals[0].cell}
	}

	return board.NewProblem(b, robots, goal)
}

// isBoundaryEdge reports whether the edge is part of the implicit
// outer wall, which BLOCKED facts always include.
func isBoundaryEdge(p board.Pos, d board.Direction, dim int) bool {
	switch d {
	case board.North:
		return p.Y == 0
	case board.South:
		return p.Y == dim-1
	case board.East:
		return p.X == dim-1
	default:
		return p.X == 0
	}
}
