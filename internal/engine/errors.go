package engine

import "errors"

// Move rejections, one per validation gate. AttemptMove reports the
// first gate that fails and leaves the game untouched; callers match
// with errors.Is.
var (
	ErrOutOfRange      = errors.New("square out of range")
	ErrNoPieceAtSource = errors.New("no piece at source square")
	ErrWrongTurn       = errors.New("not this side's turn")
	ErrFriendlyCapture = errors.New("cannot capture own piece")
	ErrIllegalMove     = errors.New("illegal move for piece")
)
