// Package plan extracts move sequences from solver output and
// validates them against the board model.
package plan

import (
	"fmt"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

// Plan is an ordered move sequence. Its cost is its length: every
// sliding move costs one, regardless of travel distance.
type Plan []board.Move

// Cost returns the number of moves.
func (p Plan) Cost() int {
	return len(p)
}

// InvalidPlanError reports a plan that the board model rejects. Step is
// the 1-based position of the offending move; 0 when the plan as a
// whole is at fault (for example an unreached goal).
type InvalidPlanError struct {
	Step   int
	Move   board.Move
	Reason string
}

func (e *InvalidPlanError) Error() string {
	if e.Step > 0 {
		return fmt.Sprintf("invalid plan: step %d %v: %s", e.Step, e.Move, e.Reason)
	}
	return "invalid plan: " + e.Reason
}
