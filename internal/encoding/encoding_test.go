package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

// sampleProblem builds an 8x8 problem with two walls, the robots in
// distinct cells and a green target.
func sampleProblem(t *testing.T) *board.Problem {
	t.Helper()
	b, err := board.NewBoard(8)
	require.NoError(t, err)
	require.NoError(t, b.SetWall(board.Pos{X: 2, Y: 3}, board.South))
	require.NoError(t, b.SetWall(board.Pos{X: 5, Y: 1}, board.East))

	robots := board.RobotPositions{
		board.Red:    {X: 0, Y: 0},
		board.Blue:   {X: 7, Y: 0},
		board.Green:  {X: 3, Y: 4},
		board.Yellow: {X: 6, Y: 6},
	}
	p, err := board.NewProblem(b, robots, board.Goal{Color: board.Green, Cell: board.Pos{X: 1, Y: 6}})
	require.NoError(t, err)
	return p
}

// canonical reduces a problem to its canonical ASP text for equality
// checks across formats.
func canonical(t *testing.T, p *board.Problem) string {
	t.Helper()
	s, err := EncodeASP(p)
	require.NoError(t, err)
	return s
}

func TestASP_RoundTrip(t *testing.T) {
	p := sampleProblem(t)

	text, err := EncodeASP(p)
	require.NoError(t, err)

	decoded, err := DecodeASP(text)
	require.NoError(t, err)

	assert.Equal(t, p.Robots, decoded.Robots)
	assert.Equal(t, p.Goal, decoded.Goal)
	assert.Equal(t, p.Board.Walls(), decoded.Board.Walls())

	// Re-encoding the decoded problem is byte-identical.
	again, err := EncodeASP(decoded)
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestASP_EncodeIsOneIndexed(t *testing.T) {
	p := sampleProblem(t)

	text, err := EncodeASP(p)
	require.NoError(t, err)

	assert.Contains(t, text, "pos(red,1,1).")
	assert.Contains(t, text, "barrier(3,4,south).")
	assert.Contains(t, text, "target(green,2,7).")
	assert.Contains(t, text, "dim(8).")
	assert.NotContains(t, text, "dim(9).")
}

func TestASP_MirroredBarrierNormalizes(t *testing.T) {
	base := "dim(1).\ndim(2).\ndim(3).\ndim(4).\n" +
		"pos(red,1,1).\npos(blue,4,1).\npos(green,1,4).\npos(yellow,4,4).\n" +
		"target(red,2,2).\n"

	south, err := DecodeASP(base + "barrier(2,1,south).\n")
	require.NoError(t, err)
	north, err := DecodeASP(base + "barrier(2,2,north).\n")
	require.NoError(t, err)

	assert.Equal(t, canonical(t, south), canonical(t, north))
}

func TestASP_WildcardTarget(t *testing.T) {
	p := sampleProblem(t)
	p.Goal = board.Goal{Any: true, Cell: board.Pos{X: 4, Y: 4}}

	text, err := EncodeASP(p)
	require.NoError(t, err)
	assert.Contains(t, text, "target(any,5,5).")

	decoded, err := DecodeASP(text)
	require.NoError(t, err)
	assert.True(t, decoded.Goal.Any)
	assert.Equal(t, board.Pos{X: 4, Y: 4}, decoded.Goal.Cell)
}

func TestASP_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no dims", "pos(red,1,1).\n"},
		{"missing robot", "dim(1).\ndim(2).\npos(red,1,1).\ntarget(red,2,2).\n"},
		{"barrier outside", "dim(1).\ndim(2).\n" +
			"pos(red,1,1).\npos(blue,2,1).\npos(green,1,2).\npos(yellow,2,2).\n" +
			"barrier(5,5,south).\ntarget(red,2,2).\n"},
		{"duplicate target", "dim(1).\ndim(2).\n" +
			"pos(red,1,1).\npos(blue,2,1).\npos(green,1,2).\npos(yellow,2,2).\n" +
			"target(red,1,2).\ntarget(blue,2,2).\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeASP(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestPDDL_RoundTrip(t *testing.T) {
	p := sampleProblem(t)

	text, err := EncodePDDL(p)
	require.NoError(t, err)

	decoded, err := DecodePDDL(text)
	require.NoError(t, err)
	assert.Equal(t, canonical(t, p), canonical(t, decoded))

	again, err := EncodePDDL(decoded)
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestPDDL_EncodeShape(t *testing.T) {
	p := sampleProblem(t)

	text, err := EncodePDDL(p)
	require.NoError(t, err)

	// Wall at (2,3) south, 1-indexed (3,4): both sides blocked.
	assert.Contains(t, text, "(BLOCKED cell-3-4 south)")
	assert.Contains(t, text, "(BLOCKED cell-3-5 north)")
	// Boundary facts.
	assert.Contains(t, text, "(BLOCKED cell-1-1 north)")
	assert.Contains(t, text, "(BLOCKED cell-8-8 east)")
	// Robots with color comments, goal, metric.
	assert.Contains(t, text, "(at robot-1 cell-1-1) ;; red")
	assert.Contains(t, text, "(at robot-3 cell-2-7)")
	assert.Contains(t, text, "(:metric minimize (total-cost))")
	// ASCII board header.
	assert.True(t, strings.HasPrefix(text, ";; Ricochet Robots problem\n"))
	assert.Contains(t, text, ";; xR1")

	// Occupied cells are not free.
	assert.NotContains(t, text, "(free cell-1-1)")
	assert.Contains(t, text, "(free cell-2-1)")
}

func TestPDDL_WildcardGoalRoundTrip(t *testing.T) {
	p := sampleProblem(t)
	p.Goal = board.Goal{Any: true, Cell: board.Pos{X: 4, Y: 4}}

	text, err := EncodePDDL(p)
	require.NoError(t, err)
	assert.Contains(t, text, "(or (at robot-1 cell-5-5) (at robot-2 cell-5-5) (at robot-3 cell-5-5) (at robot-4 cell-5-5))")

	decoded, err := DecodePDDL(text)
	require.NoError(t, err)
	assert.True(t, decoded.Goal.Any)
	assert.Equal(t, board.Pos{X: 4, Y: 4}, decoded.Goal.Cell)
}

func TestCompact_RoundTrip(t *testing.T) {
	p := sampleProblem(t)

	text, err := EncodeCompact(p)
	require.NoError(t, err)

	decoded, err := DecodeCompact(text)
	require.NoError(t, err)
	assert.Equal(t, canonical(t, p), canonical(t, decoded))

	again, err := EncodeCompact(decoded)
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestCompact_EncodeShape(t *testing.T) {
	p := sampleProblem(t)

	text, err := EncodeCompact(p)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(t, "8", lines[0])
	assert.Contains(t, lines, "2 3 d")
	assert.Contains(t, lines, "5 1 r")
	assert.Contains(t, lines, "T")
	// Target precedes the robot lines.
	ti := indexOf(lines, "T")
	require.NotEqual(t, -1, ti)
	assert.Equal(t, "1 6 g", lines[ti+1])
	assert.Equal(t, "0 0 r", lines[ti+2]) // red robot
	assert.Equal(t, "6 6 y", lines[ti+5]) // yellow robot last
}

func TestCompact_WildcardRejected(t *testing.T) {
	p := sampleProblem(t)
	p.Goal = board.Goal{Any: true, Cell: board.Pos{X: 4, Y: 4}}

	_, err := EncodeCompact(p)
	var ee *EncodeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, FormatCompact, ee.Format)
}

func TestCompact_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no separator", "4\n1 1 d\n"},
		{"missing robot", "4\nT\n1 1 r\n0 0 r\n1 0 b\n2 0 g\n"},
		{"bad wall tag", "4\n1 1 q\nT\n1 1 r\n0 0 r\n1 0 b\n2 0 g\n3 0 y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCompact(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestCrossFormatConsistency(t *testing.T) {
	p := sampleProblem(t)
	want := canonical(t, p)

	pddl, err := EncodePDDL(p)
	require.NoError(t, err)
	fromPDDL, err := DecodePDDL(pddl)
	require.NoError(t, err)

	compact, err := EncodeCompact(fromPDDL)
	require.NoError(t, err)
	fromCompact, err := DecodeCompact(compact)
	require.NoError(t, err)

	assert.Equal(t, want, canonical(t, fromCompact))
}

func TestEncode_RejectsInconsistentProblem(t *testing.T) {
	p := sampleProblem(t)
	p.Goal.Cell = board.Pos{X: 99, Y: 0}

	for name, encode := range map[string]func(*board.Problem) (string, error){
		FormatASP:     EncodeASP,
		FormatPDDL:    EncodePDDL,
		FormatCompact: EncodeCompact,
	} {
		out, err := encode(p)
		var ee *EncodeError
		assert.ErrorAs(t, err, &ee, name)
		assert.Empty(t, out, name)
	}
}

func indexOf(lines []string, want string) int {
	for i, l := range lines {
		if l == want {
			return i
		}
	}
	return -1
}
