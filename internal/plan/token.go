package plan

import (
	"fmt"
	"sort"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

// goAtom is one go(<color>,<direction>,<time>) action fact found in
// solver output.
type goAtom struct {
	move board.Move
	time int
}

// scanGoAtoms tokenizes free-form solver output and extracts every
// well-formed go/3 action fact. Solver logs interleave facts with
// arbitrary text, so anything that is not a complete atom with a known
// color and direction is skipped rather than reported.
func scanGoAtoms(text string) []goAtom {
	var atoms []goAtom
	s := scanner{input: text}
	for {
		atom, ok := s.next()
		if !ok {
			break
		}
		atoms = append(atoms, atom)
	}
	return atoms
}

// scanner walks the input looking for go( heads and parsing their
// argument lists.
type scanner struct {
	input string
	pos   int
}

// next advances to the next well-formed atom. ok is false at end of
// input.
func (s *scanner) next() (goAtom, bool) {
	for {
		start := s.findHead()
		if start < 0 {
			return goAtom{}, false
		}
		// Attempt the argument list; on failure resume scanning right
		// after the head so overlapping candidates are not lost.
		atom, end, ok := s.parseArgs(start)
		if ok {
			s.pos = end
			return atom, true
		}
	}
}

// findHead locates the next "go(" not embedded in a longer identifier
// and positions the scanner after it. Returns the offset of the
// argument list, or -1.
func (s *scanner) findHead() int {
	for i := s.pos; i+3 <= len(s.input); i++ {
		if s.input[i:i+2] != "go" {
			continue
		}
		if i > 0 && isIdent(s.input[i-1]) {
			continue
		}
		j := skipSpace(s.input, i+2)
		if j < len(s.input) && s.input[j] == '(' {
			s.pos = i + 2
			return j + 1
		}
	}
	s.pos = len(s.input)
	return -1
}

// parseArgs parses "<color>,<direction>,<time>)" starting at i.
func (s *scanner) parseArgs(i int) (goAtom, int, bool) {
	colorTok, i, ok := lexIdent(s.input, i)
	if !ok {
		return goAtom{}, 0, false
	}
	i, ok = lexComma(s.input, i)
	if !ok {
		return goAtom{}, 0, false
	}
	dirTok, i, ok := lexIdent(s.input, i)
	if !ok {
		return goAtom{}, 0, false
	}
	i, ok = lexComma(s.input, i)
	if !ok {
		return goAtom{}, 0, false
	}
	timeVal, i, ok := lexNumber(s.input, i)
	if !ok {
		return goAtom{}, 0, false
	}
	i = skipSpace(s.input, i)
	if i >= len(s.input) || s.input[i] != ')' {
		return goAtom{}, 0, false
	}

	color, err := board.ParseColor(colorTok)
	if err != nil {
		return goAtom{}, 0, false
	}
	dir, err := board.ParseDirection(dirTok)
	if err != nil {
		return goAtom{}, 0, false
	}
	return goAtom{move: board.Move{Robot: color, Dir: dir}, time: timeVal}, i + 1, true
}

func lexIdent(s string, i int) (string, int, bool) {
	i = skipSpace(s, i)
	start := i
	for i < len(s) && isIdent(s[i]) {
		i++
	}
	if i == start {
		return "", 0, false
	}
	return s[start:i], i, true
}

func lexComma(s string, i int) (int, bool) {
	i = skipSpace(s, i)
	if i >= len(s) || s[i] != ',' {
		return 0, false
	}
	return i + 1, true
}

func lexNumber(s string, i int) (int, int, bool) {
	i = skipSpace(s, i)
	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, 0, false
	}
	return n, i, true
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func isIdent(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

// orderByTime sorts atoms by ascending time index. A duplicate time
// index is a solver-format violation and is reported, never resolved
// by picking an arbitrary order.
func orderByTime(atoms []goAtom) (Plan, error) {
	sorted := make([]goAtom, len(atoms))
	copy(sorted, atoms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].time < sorted[j].time
	})

	p := make(Plan, 0, len(sorted))
	for i, a := range sorted {
		if i > 0 && a.time == sorted[i-1].time {
			return nil, &InvalidPlanError{
				Step:   i + 1,
				Move:   a.move,
				Reason: fmt.Sprintf("duplicate time index %d", a.time),
			}
		}
		p = append(p, a.move)
	}
	return p, nil
}
