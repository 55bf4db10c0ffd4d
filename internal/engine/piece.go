package engine

// Color identifies a side. The JSON encoding matches what clients
// display, so the constants are lowercase words rather than numbers.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceType is the closed set of piece variants. The empty string is
// the "no piece" case, which makes the zero Piece an empty square.
type PieceType string

const (
	None   PieceType = ""
	Pawn   PieceType = "pawn"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Rook   PieceType = "rook"
	Queen  PieceType = "queen"
	King   PieceType = "king"
)

// Piece is a value-like descriptor: variant plus color, nothing else.
// Pieces never move themselves; the board relocates them.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

func (p Piece) IsEmpty() bool { return p.Type == None }

// Symbol returns the one-letter board symbol, uppercase for White and
// lowercase for Black, or 0 for an empty square.
func (p Piece) Symbol() byte {
	var s byte
	switch p.Type {
	case Pawn:
		s = 'p'
	case Knight:
		s = 'n'
	case Bishop:
		s = 'b'
	case Rook:
		s = 'r'
	case Queen:
		s = 'q'
	case King:
		s = 'k'
	default:
		return 0
	}
	if p.Color == White {
		s -= 'a' - 'A'
	}
	return s
}
