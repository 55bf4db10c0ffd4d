package engine

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// pathClear reports whether every square strictly between from and to
// is empty. The two squares must share a rank, a file, or a diagonal;
// only the sliding rules below ever call it. Occupancy of the
// endpoints themselves is the caller's concern.
func pathClear(b *Board, from, to Coord) bool {
	dx := sign(to.File - from.File)
	dy := sign(to.Rank - from.Rank)

	x, y := from.File+dx, from.Rank+dy
	for x != to.File || y != to.Rank {
		if b[y][x].Type != None {
			return false
		}
		x += dx
		y += dy
	}
	return true
}

// pieceRule decides geometric and occupancy legality for a single
// piece. It assumes from != to and that a destination occupant, if
// any, belongs to the opponent; AttemptMove establishes both before
// dispatching here.
func pieceRule(b *Board, p Piece, from, to Coord) bool {
	dx := abs(to.File - from.File)
	dy := abs(to.Rank - from.Rank)

	switch p.Type {
	case Pawn:
		return pawnRule(b, p.Color, from, to)
	case Knight:
		return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
	case Bishop:
		if dx != dy {
			return false
		}
		return pathClear(b, from, to)
	case Rook:
		if from.File != to.File && from.Rank != to.Rank {
			return false
		}
		return pathClear(b, from, to)
	case Queen:
		diagonal := dx == dy
		straight := from.File == to.File || from.Rank == to.Rank
		if !diagonal && !straight {
			return false
		}
		return pathClear(b, from, to)
	case King:
		return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
	}
	return false
}

// pawnRule is the one irregular rule: direction and home rank depend
// on color, forward moves need empty squares, and captures are
// diagonal only.
func pawnRule(b *Board, c Color, from, to Coord) bool {
	dir, home := 1, 1 // Black advances toward rank 7
	if c == White {
		dir, home = -1, 6
	}

	// Single advance onto an empty square.
	if to.File == from.File && to.Rank == from.Rank+dir && b.at(to).Type == None {
		return true
	}

	// Double advance from the home rank; the crossed square and the
	// destination must both be empty.
	if to.File == from.File && from.Rank == home && to.Rank == from.Rank+2*dir &&
		b.at(to).Type == None && b[from.Rank+dir][from.File].Type == None {
		return true
	}

	// Diagonal capture, single step, only onto an opposing piece.
	if abs(to.File-from.File) == 1 && to.Rank == from.Rank+dir {
		target := b.at(to)
		return target.Type != None && target.Color != c
	}

	return false
}
