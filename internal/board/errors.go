package board

import "errors"

// ErrNoEffect marks a move whose slide stops on its start cell. It is a
// recoverable signal: plan validation turns it into a plan error, move
// enumeration simply skips the move.
var ErrNoEffect = errors.New("move has no effect")

// MalformedBoardError reports a structural problem in board geometry,
// robot placement or the goal, detected at construction time.
type MalformedBoardError struct {
	Reason string
}

func (e *MalformedBoardError) Error() string {
	return "malformed board: " + e.Reason
}
