// Package notation maps algebraic square labels ("a1".."h8") to board
// coordinates and back. The mapping is total and injective over the 64
// legal squares; anything else is rejected here so the engine never
// sees an unparsed label.
package notation

import (
	"fmt"
	"strings"

	"github.com/pseudo-shadow/chess-oopc/internal/engine"
)

var (
	labelToCoord = make(map[string]engine.Coord, 64)
	coordToLabel = make(map[engine.Coord]string, 64)
)

func init() {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			label := fmt.Sprintf("%c%c", 'a'+file, '8'-rank)
			c := engine.Coord{File: file, Rank: rank}
			labelToCoord[label] = c
			coordToLabel[c] = label
		}
	}
}

// ParseSquare resolves an algebraic label, case-insensitively.
func ParseSquare(s string) (engine.Coord, error) {
	c, ok := labelToCoord[strings.ToLower(s)]
	if !ok {
		return engine.Coord{}, fmt.Errorf("invalid square %q", s)
	}
	return c, nil
}

// Square returns the algebraic label for c, or "" if c is off the
// board.
func Square(c engine.Coord) string {
	return coordToLabel[c]
}
