// Package render draws a game as the classic ASCII board diagram:
// file and rank legends, uppercase letters for White, lowercase for
// Black, and a dotted checkerboard for the empty squares.
package render

import (
	"fmt"
	"strings"

	"github.com/pseudo-shadow/chess-oopc/internal/engine"
)

const fileLegend = "   a b c d e f g h\n"

// Text renders the current position followed by the side to move.
func Text(g *engine.Game) string {
	var sb strings.Builder

	sb.WriteByte('\n')
	sb.WriteString(fileLegend)
	sb.WriteString("  +-----------------+\n")

	for rank := 0; rank < 8; rank++ {
		fmt.Fprintf(&sb, "%d |", 8-rank)
		for file := 0; file < 8; file++ {
			p := g.PieceAt(engine.Coord{File: file, Rank: rank})
			switch {
			case !p.IsEmpty():
				sb.WriteByte(p.Symbol())
			case (rank+file)%2 == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "| %d\n", 8-rank)
	}

	sb.WriteString("  +-----------------+\n")
	sb.WriteString(fileLegend)

	side := "White"
	if g.ToMove() == engine.Black {
		side = "Black"
	}
	fmt.Fprintf(&sb, "\n%s to move\n", side)

	return sb.String()
}
