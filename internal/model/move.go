package model

import (
	"errors"

	"github.com/pseudo-shadow/chess-oopc/internal/engine"
)

// MoveRequest is the wire form of a move attempt, shared by the REST
// endpoint and the WebSocket "move" message.
type MoveRequest struct {
	From engine.Coord `json:"from"`
	To   engine.Coord `json:"to"`
}

// MoveRecord is the last applied move as reported to clients.
type MoveRecord struct {
	From    string        `json:"from"` // algebraic, e.g. "e2"
	To      string        `json:"to"`
	Piece   engine.Piece  `json:"piece"`
	Capture *engine.Piece `json:"capture"` // nil when nothing was taken
}

// Rejection pairs a stable machine-readable reason code with the
// human-readable message for a refused move.
type Rejection struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// ReasonCode maps an engine rejection to its wire code.
func ReasonCode(err error) string {
	switch {
	case errors.Is(err, engine.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, engine.ErrNoPieceAtSource):
		return "no_piece_at_source"
	case errors.Is(err, engine.ErrWrongTurn):
		return "wrong_turn"
	case errors.Is(err, engine.ErrFriendlyCapture):
		return "friendly_capture"
	case errors.Is(err, engine.ErrIllegalMove):
		return "illegal_move"
	}
	return "internal"
}
