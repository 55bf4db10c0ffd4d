package engine

// Board is the 8x8 grid, indexed [rank][file]. Squares hold Piece
// values directly; the zero Piece marks an empty square.
type Board [8][8]Piece

func (b *Board) at(c Coord) Piece { return b[c.Rank][c.File] }

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard() Board {
	var b Board
	for file, t := range backRank {
		b[0][file] = Piece{Type: t, Color: Black}
		b[7][file] = Piece{Type: t, Color: White}
	}
	for file := 0; file < 8; file++ {
		b[1][file] = Piece{Type: Pawn, Color: Black}
		b[6][file] = Piece{Type: Pawn, Color: White}
	}
	return b
}
