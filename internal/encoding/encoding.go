// Package encoding converts problems between the internal board model
// and the three external text formats: ASP facts, PDDL problems and
// the compact input of the domain-dependent solver.
//
// All three codecs read and write the same board.Problem, so the
// formats cannot drift apart: decoding any one of them and re-encoding
// yields the same canonical text.
package encoding

import (
	"fmt"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

// Format names used in error reporting.
const (
	FormatASP     = "asp"
	FormatPDDL    = "pddl"
	FormatCompact = "compact"
)

// EncodeError reports a problem that cannot be serialized consistently.
// No partial output is emitted when encoding fails.
type EncodeError struct {
	Format string
	Reason string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %s", e.Format, e.Reason)
}

// DecodeError reports malformed input text. Line is 1-based; 0 means
// the error is not tied to a single line.
type DecodeError struct {
	Format string
	Line   int
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("decode %s: line %d: %s", e.Format, e.Line, e.Reason)
	}
	return fmt.Sprintf("decode %s: %s", e.Format, e.Reason)
}

// validate re-checks problem consistency before any encoder emits
// output. Encoders do not trust their callers to have gone through
// board.NewProblem.
func validate(p *board.Problem, format string) error {
	if p == nil || p.Board == nil {
		return &EncodeError{Format: format, Reason: "nil problem"}
	}
	if _, err := board.NewProblem(p.Board, p.Robots, p.Goal); err != nil {
		return &EncodeError{Format: format, Reason: err.Error()}
	}
	return nil
}
