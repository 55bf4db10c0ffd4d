package engine

// Game holds the board and the side to move. It carries no internal
// locking: a Game shared across goroutines must have its move attempts
// serialized by the caller (the session layer wraps each game in a
// mutex).
type Game struct {
	board       Board
	whiteToMove bool
}

// NewGame returns a game in the standard starting position with White
// to move.
func NewGame() *Game {
	return &Game{board: newBoard(), whiteToMove: true}
}

// Applied describes a successfully executed move.
type Applied struct {
	Piece    Piece `json:"piece"`
	From     Coord `json:"from"`
	To       Coord `json:"to"`
	Captured Piece `json:"captured"` // zero value when the destination was empty
}

func (a Applied) IsCapture() bool { return !a.Captured.IsEmpty() }

// AttemptMove validates and executes a single move. The gates run in a
// fixed order and stop at the first failure: bounds, source occupancy,
// turn, friendly fire, then the piece's own rule. Either every gate
// passes and exactly one relocation (plus at most one capture) occurs,
// or the game is left untouched and the failing gate's error comes
// back.
func (g *Game) AttemptMove(from, to Coord) (Applied, error) {
	if !from.InBounds() || !to.InBounds() {
		return Applied{}, ErrOutOfRange
	}

	mover := g.board.at(from)
	if mover.IsEmpty() {
		return Applied{}, ErrNoPieceAtSource
	}

	if (mover.Color == White) != g.whiteToMove {
		return Applied{}, ErrWrongTurn
	}

	target := g.board.at(to)
	if !target.IsEmpty() && target.Color == mover.Color {
		return Applied{}, ErrFriendlyCapture
	}

	if !pieceRule(&g.board, mover, from, to) {
		return Applied{}, ErrIllegalMove
	}

	// A captured piece is simply discarded; no capture list is kept.
	g.board[to.Rank][to.File] = mover
	g.board[from.Rank][from.File] = Piece{}
	g.whiteToMove = !g.whiteToMove

	return Applied{Piece: mover, From: from, To: to, Captured: target}, nil
}

// ToMove returns the color whose turn it is.
func (g *Game) ToMove() Color {
	if g.whiteToMove {
		return White
	}
	return Black
}

// PieceAt returns the piece on c, or the zero Piece if the square is
// empty or out of range.
func (g *Game) PieceAt(c Coord) Piece {
	if !c.InBounds() {
		return Piece{}
	}
	return g.board.at(c)
}

// EachSquare visits all 64 squares in reading order (rank 0 file 0
// through rank 7 file 7), passing the zero Piece for empty squares.
// Renderers and state snapshots are built on this.
func (g *Game) EachSquare(fn func(c Coord, p Piece)) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			fn(Coord{File: file, Rank: rank}, g.board[rank][file])
		}
	}
}

// IsGameOver reports whether either king has been captured. Kings only
// leave the board through capture, but the check rescans all 64
// squares each call rather than caching a flag.
func (g *Game) IsGameOver() bool {
	var white, black bool
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := g.board[rank][file]
			if p.Type != King {
				continue
			}
			if p.Color == White {
				white = true
			} else {
				black = true
			}
		}
	}
	return !white || !black
}
