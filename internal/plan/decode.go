package plan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

// DecodeASPOutput extracts a plan from raw ASP solver output. Action
// facts go(<color>,<direction>,<time>) may appear anywhere in the text;
// they are ordered by their time index. The result is not yet
// validated against a board; see Replay.
func DecodeASPOutput(text string) (Plan, error) {
	atoms := scanGoAtoms(text)
	if len(atoms) == 0 {
		return nil, &InvalidPlanError{Reason: "no go/3 action facts found in solver output"}
	}
	return orderByTime(atoms)
}

var patPlanLine = regexp.MustCompile(`^\(go\s+robot-([0-9]+)\s+(north|south|east|west)\s*\)`)

// DecodePlanFile parses a PDDL plan file: one "(go robot-N <dir>)"
// skeleton action per line, in plan order. Comment-only and empty
// lines are skipped; ";;" trailers on action lines are ignored.
func DecodePlanFile(text string) (Plan, error) {
	var p Plan
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";;") {
			continue
		}
		m := patPlanLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		idx, _ := strconv.Atoi(m[1])
		c, err := board.ColorFromIndex(idx)
		if err != nil {
			return nil, &InvalidPlanError{Step: i + 1, Reason: err.Error()}
		}
		d, _ := board.ParseDirection(m[2])
		p = append(p, board.Move{Robot: c, Dir: d})
	}
	if len(p) == 0 {
		return nil, &InvalidPlanError{Reason: "no (go ...) actions found in plan file"}
	}
	return p, nil
}

// DeclaredCost extracts the ";; Optimal cost: N" header a plan file may
// carry. ok is false when the header is absent.
func DeclaredCost(text string) (cost int, ok bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		var n int
		if _, err := fmt.Sscanf(line, ";; Optimal cost: %d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Solver-speak used by the domain-dependent solver's output.
var (
	solverColors = map[string]board.Color{
		"Red":    board.Red,
		"Blue":   board.Blue,
		"Green":  board.Green,
		"Yellow": board.Yellow,
	}
	solverDirections = map[string]board.Direction{
		"Up":    board.North,
		"Down":  board.South,
		"Left":  board.West,
		"Right": board.East,
	}
)

// DecodeSolverOutput parses the domain-dependent solver's stdout: the
// plan cost on the first line, then one "Red Right" move per line,
// optionally prefixed with a step number.
func DecodeSolverOutput(text string) (Plan, int, error) {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, 0, &InvalidPlanError{Reason: "empty solver output"}
	}

	cost, err := strconv.Atoi(lines[0])
	if err != nil {
		return nil, 0, &InvalidPlanError{Reason: "expected plan cost on first output line, got " + strconv.Quote(lines[0])}
	}

	var p Plan
	for i, l := range lines[1:] {
		fields := strings.Fields(l)
		if len(fields) == 3 {
			// Leading step number from verbose output.
			fields = fields[1:]
		}
		if len(fields) != 2 {
			return nil, 0, &InvalidPlanError{Step: i + 1, Reason: "malformed move line " + strconv.Quote(l)}
		}
		c, ok := solverColors[fields[0]]
		if !ok {
			return nil, 0, &InvalidPlanError{Step: i + 1, Reason: "unknown robot " + strconv.Quote(fields[0])}
		}
		d, ok := solverDirections[fields[1]]
		if !ok {
			return nil, 0, &InvalidPlanError{Step: i + 1, Reason: "unknown direction " + strconv.Quote(fields[1])}
		}
		p = append(p, board.Move{Robot: c, Dir: d})
	}

	if len(p) != cost {
		return nil, 0, &InvalidPlanError{
			Reason: fmt.Sprintf("solver declared cost %d but emitted %d moves", cost, len(p)),
		}
	}
	return p, cost, nil
}
